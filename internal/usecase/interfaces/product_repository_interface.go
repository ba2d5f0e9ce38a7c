package interfaces

import (
	"context"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

// IProductRepository serves the read-only product listing used both by the
// general catalog browse endpoint and by proposal building. Filtering goes
// through the facet builder; every supplied facet narrows the result (AND).

type IProductRepository interface {
	List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error)
	GetByID(ctx context.Context, id int64) (entities.Product, error)
}
