package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// ProductPostgresRepository reads the catalog product table. The service never
// writes products; catalog maintenance happens elsewhere.

type ProductPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IProductRepository = (*ProductPostgresRepository)(nil)

func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{db: db}
}

const productSelect = `
	SELECT p.product_id, p.name, p.sku, COALESCE(p.description, ''), p.price,
	       COALESCE(p.height, 0), COALESCE(p.length, 0), COALESCE(p.width, 0),
	       p.status, COALESCE(ff.name, ''), COALESCE(fsf.name, ''), COALESCE(s.name, ''),
	       p.created_at
	FROM product p
	LEFT JOIN furniture_family ff ON ff.family_id = p.family_id
	LEFT JOIN furniture_subfamily fsf ON fsf.subfamily_id = p.subfamily_id
	LEFT JOIN supplier s ON s.supplier_id = p.supplier_id`

func (r *ProductPostgresRepository) List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error) {
	where, args := BuildProductFilter(filter)
	clause := ""
	if where != "" {
		clause = " WHERE " + where
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM product p"+clause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	page, size := normalizePage(filter.Page, filter.Size)
	args = append(args, size, (page-1)*size)
	query := fmt.Sprintf("%s%s ORDER BY p.product_id LIMIT $%d OFFSET $%d",
		productSelect, clause, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []entities.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, total, nil
}

func (r *ProductPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+" WHERE p.product_id = $1", id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return entities.Product{}, nil
	}
	if err != nil {
		return entities.Product{}, err
	}

	if p.Colours, err = r.names(ctx,
		`SELECT c.name FROM product_colour pc JOIN colour c ON c.colour_id = pc.colour_id
		 WHERE pc.product_id = $1 ORDER BY c.name`, id); err != nil {
		return entities.Product{}, err
	}
	if p.Materials, err = r.names(ctx,
		`SELECT m.name FROM product_material pm JOIN material m ON m.material_id = pm.material_id
		 WHERE pm.product_id = $1 ORDER BY m.name`, id); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductPostgresRepository) names(ctx context.Context, query string, id int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product associations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (entities.Product, error) {
	var p entities.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price,
		&p.Height, &p.Length, &p.Width,
		&p.Status, &p.FamilyName, &p.SubFamilyName, &p.SupplierName,
		&p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return entities.Product{}, err
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}
