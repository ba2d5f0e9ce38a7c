package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// CatalogPostgresRepository resolves proposal references against the catalog
// tables. ResolveProduct returns the live price that gets snapshotted into a
// line item; missing rows resolve to the zero value.

type CatalogPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICatalogLookup = (*CatalogPostgresRepository)(nil)

func NewCatalogPostgresRepository(db *sql.DB) *CatalogPostgresRepository {
	return &CatalogPostgresRepository{db: db}
}

func (r *CatalogPostgresRepository) ResolveProduct(ctx context.Context, id int64) (entities.CatalogProduct, error) {
	var p entities.CatalogProduct
	err := r.db.QueryRowContext(ctx,
		`SELECT product_id, name, sku, price FROM product WHERE product_id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.SKU, &p.Price)
	if err == sql.ErrNoRows {
		return entities.CatalogProduct{}, nil
	}
	if err != nil {
		return entities.CatalogProduct{}, fmt.Errorf("failed to resolve product %d: %w", id, err)
	}
	return p, nil
}

func (r *CatalogPostgresRepository) ResolveApartmentType(ctx context.Context, id int64) (entities.CatalogRef, error) {
	return r.resolveRef(ctx,
		`SELECT apartment_type_id, name FROM apartment_type WHERE apartment_type_id = $1`, id, "apartment type")
}

func (r *CatalogPostgresRepository) ResolveClient(ctx context.Context, id int64) (entities.CatalogRef, error) {
	return r.resolveRef(ctx,
		`SELECT client_id, name FROM client WHERE client_id = $1`, id, "client")
}

func (r *CatalogPostgresRepository) resolveRef(ctx context.Context, query string, id int64, kind string) (entities.CatalogRef, error) {
	var ref entities.CatalogRef
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ref.ID, &ref.Name)
	if err == sql.ErrNoRows {
		return entities.CatalogRef{}, nil
	}
	if err != nil {
		return entities.CatalogRef{}, fmt.Errorf("failed to resolve %s %d: %w", kind, id, err)
	}
	return ref, nil
}
