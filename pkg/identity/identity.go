// Package identity carries the acting user through a request. The actor is an
// explicit context value set once at the HTTP boundary and read by mutating
// use cases to stamp audit columns. There is no package-level current user.
package identity

import "context"

type contextKey struct{}

// Anonymous is the actor id recorded when a request carries no identity.
const Anonymous int64 = 0

// WithActor returns a context carrying the acting user's id.
func WithActor(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// ActorFrom extracts the acting user's id, or Anonymous when unset.
func ActorFrom(ctx context.Context) int64 {
	if id, ok := ctx.Value(contextKey{}).(int64); ok {
		return id
	}
	return Anonymous
}
