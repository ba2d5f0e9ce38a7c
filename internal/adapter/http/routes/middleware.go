package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qwhomes/proposal-service/pkg/identity"
)

const (
	headerRequestID = "X-Request-ID"
	headerUserID    = "X-User-ID"
)

// requestIDMiddleware tags every request with a correlation id, keeping the
// caller's when one is supplied.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// identityMiddleware resolves the acting user from the X-User-ID header set
// by the auth gateway and threads it through the request context for audit
// stamping. Requests without an identity run as anonymous.
func identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(headerUserID); raw != "" {
			if userID, err := strconv.ParseInt(raw, 10, 64); err == nil && userID > 0 {
				ctx := identity.WithActor(c.Request.Context(), userID)
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}
