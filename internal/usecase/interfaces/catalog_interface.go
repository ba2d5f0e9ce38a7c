package interfaces

import (
	"context"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

// ICatalogLookup resolves references held by a proposal to their current
// catalog attributes. ResolveProduct supplies the price snapshotted into a new
// line item; the other two only supply display names.
//
// Missing references resolve to the zero value (ID == 0).

type ICatalogLookup interface {
	ResolveProduct(ctx context.Context, id int64) (entities.CatalogProduct, error)
	ResolveApartmentType(ctx context.Context, id int64) (entities.CatalogRef, error)
	ResolveClient(ctx context.Context, id int64) (entities.CatalogRef, error)
}
