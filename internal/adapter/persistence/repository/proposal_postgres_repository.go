package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// ProposalPostgresRepository persists the Proposal aggregate in the
// proposal, proposal_product and proposal_file tables.
//
// Writes go through a single transaction per call so a reconciliation diff is
// applied all-or-nothing. Update and UpdateStatus are guarded by the version
// column: the UPDATE matches the expected version and increments it, and zero
// affected rows on an existing proposal means a concurrent writer won.

type ProposalPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IProposalRepository = (*ProposalPostgresRepository)(nil)

func NewProposalPostgresRepository(db *sql.DB) *ProposalPostgresRepository {
	return &ProposalPostgresRepository{db: db}
}

const proposalSelect = `
	SELECT p.proposal_id, p.name, p.apartment_type_id, apt.name, p.client_id, cl.name,
	       p.status, COALESCE(p.discount, 0), p.total_price,
	       p.created_at, COALESCE(p.created_by, 0), p.updated_at, COALESCE(p.updated_by, 0), p.version
	FROM proposal p
	JOIN apartment_type apt ON apt.apartment_type_id = p.apartment_type_id
	JOIN client cl ON cl.client_id = p.client_id`

func (r *ProposalPostgresRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO proposal (name, apartment_type_id, client_id, status, discount, total_price,
		                      created_at, created_by, updated_at, updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING proposal_id`,
		p.Name, p.ApartmentTypeID, p.ClientID, string(p.Status), p.Discount, p.TotalPrice,
		p.CreatedAt, p.CreatedBy, p.UpdatedAt, p.UpdatedBy, p.Version,
	).Scan(&p.ID)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to insert proposal: %w", err)
	}

	for i := range p.LineItems {
		p.LineItems[i].ProposalID = p.ID
		if err := insertLineItem(ctx, tx, &p.LineItems[i]); err != nil {
			return entities.Proposal{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to commit proposal: %w", err)
	}
	return p, nil
}

func (r *ProposalPostgresRepository) GetByID(ctx context.Context, id int64) (entities.Proposal, error) {
	var p entities.Proposal
	var status string
	err := r.db.QueryRowContext(ctx, proposalSelect+` WHERE p.proposal_id = $1`, id).Scan(
		&p.ID, &p.Name, &p.ApartmentTypeID, &p.ApartmentTypeName, &p.ClientID, &p.ClientName,
		&status, &p.Discount, &p.TotalPrice,
		&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy, &p.Version,
	)
	if err == sql.ErrNoRows {
		return entities.Proposal{}, nil
	}
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to fetch proposal: %w", err)
	}
	if p.Status, err = entities.ParseProposalStatus(status); err != nil {
		return entities.Proposal{}, fmt.Errorf("proposal %d: %w", id, err)
	}

	if p.LineItems, err = r.lineItems(ctx, id); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalPostgresRepository) lineItems(ctx context.Context, proposalID int64) ([]entities.ProposalLineItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pp.proposal_product_id, pp.product_id, pp.quantity, pp.price, pp.total_price,
		       pr.name, pr.sku
		FROM proposal_product pp
		JOIN product pr ON pr.product_id = pp.product_id
		WHERE pp.proposal_id = $1
		ORDER BY pp.proposal_product_id`, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch line items: %w", err)
	}
	defer rows.Close()

	var items []entities.ProposalLineItem
	for rows.Next() {
		it := entities.ProposalLineItem{ProposalID: proposalID}
		if err := rows.Scan(&it.ID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.LineTotal,
			&it.ProductName, &it.ProductSKU); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}
	return items, nil
}

func (r *ProposalPostgresRepository) List(ctx context.Context, filter entities.ProposalListFilter) ([]entities.Proposal, int64, error) {
	var conds []string
	var args []any
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, "%"+s+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("p.status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM proposal p"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	page, size := normalizePage(filter.Page, filter.Size)
	args = append(args, size, (page-1)*size)
	query := fmt.Sprintf("%s%s ORDER BY p.proposal_id DESC LIMIT $%d OFFSET $%d",
		proposalSelect, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	proposals, err := scanProposals(rows)
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (r *ProposalPostgresRepository) ListAll(ctx context.Context) ([]entities.Proposal, error) {
	rows, err := r.db.QueryContext(ctx, proposalSelect+" ORDER BY p.proposal_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()
	return scanProposals(rows)
}

func scanProposals(rows *sql.Rows) ([]entities.Proposal, error) {
	var proposals []entities.Proposal
	for rows.Next() {
		var p entities.Proposal
		var status string
		if err := rows.Scan(
			&p.ID, &p.Name, &p.ApartmentTypeID, &p.ApartmentTypeName, &p.ClientID, &p.ClientName,
			&status, &p.Discount, &p.TotalPrice,
			&p.CreatedAt, &p.CreatedBy, &p.UpdatedAt, &p.UpdatedBy, &p.Version,
		); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		var err error
		if p.Status, err = entities.ParseProposalStatus(status); err != nil {
			return nil, fmt.Errorf("proposal %d: %w", p.ID, err)
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate proposals: %w", err)
	}
	return proposals, nil
}

// Update writes the proposal row and its line-item diff atomically. The
// proposal UPDATE doubles as the optimistic lock check.
func (r *ProposalPostgresRepository) Update(ctx context.Context, p entities.Proposal, diff entities.LineItemDiff) (entities.Proposal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE proposal
		SET name = $1, apartment_type_id = $2, client_id = $3, discount = $4, total_price = $5,
		    updated_at = $6, updated_by = $7, version = version + 1
		WHERE proposal_id = $8 AND version = $9`,
		p.Name, p.ApartmentTypeID, p.ClientID, p.Discount, p.TotalPrice,
		p.UpdatedAt, p.UpdatedBy, p.ID, p.Version)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to update proposal: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Proposal{}, entities.ErrVersionConflict
	}

	for _, id := range diff.Remove {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM proposal_product WHERE proposal_product_id = $1`, id); err != nil {
			return entities.Proposal{}, fmt.Errorf("failed to remove line item: %w", err)
		}
	}
	for _, it := range diff.Update {
		if _, err := tx.ExecContext(ctx,
			`UPDATE proposal_product SET quantity = $1, total_price = $2 WHERE proposal_product_id = $3`,
			it.Quantity, it.LineTotal, it.ID); err != nil {
			return entities.Proposal{}, fmt.Errorf("failed to update line item: %w", err)
		}
	}
	for i := range diff.Add {
		diff.Add[i].ProposalID = p.ID
		if err := insertLineItem(ctx, tx, &diff.Add[i]); err != nil {
			return entities.Proposal{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to commit proposal update: %w", err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProposalPostgresRepository) UpdateStatus(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE proposal
		SET status = $1, updated_at = $2, updated_by = $3, version = version + 1
		WHERE proposal_id = $4 AND version = $5`,
		string(p.Status), p.UpdatedAt, p.UpdatedBy, p.ID, p.Version)
	if err != nil {
		return entities.Proposal{}, fmt.Errorf("failed to update proposal status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entities.Proposal{}, entities.ErrVersionConflict
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProposalPostgresRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM proposal_product WHERE proposal_id = $1`,
		`DELETE FROM proposal_file WHERE proposal_id = $1`,
		`DELETE FROM proposal WHERE proposal_id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to delete proposal: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit proposal delete: %w", err)
	}
	return nil
}

func (r *ProposalPostgresRepository) Metadata(ctx context.Context) (entities.ProposalDashboard, error) {
	var d entities.ProposalDashboard
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'DRAFT'),
		       COUNT(*) FILTER (WHERE status = 'FINALIZED'),
		       COUNT(*) FILTER (WHERE status = 'APPROVED')
		FROM proposal`).Scan(&d.Total, &d.Draft, &d.Finalized, &d.Approved)
	if err != nil {
		return entities.ProposalDashboard{}, fmt.Errorf("failed to fetch proposal metadata: %w", err)
	}
	return d, nil
}

func (r *ProposalPostgresRepository) AddFile(ctx context.Context, f entities.ProposalFile) (entities.ProposalFile, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO proposal_file (proposal_id, file_path, file_format, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING file_id`,
		f.ProposalID, f.FilePath, string(f.Format), f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		return entities.ProposalFile{}, fmt.Errorf("failed to record proposal file: %w", err)
	}
	return f, nil
}

func insertLineItem(ctx context.Context, tx *sql.Tx, it *entities.ProposalLineItem) error {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO proposal_product (proposal_id, product_id, quantity, price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING proposal_product_id`,
		it.ProposalID, it.ProductID, it.Quantity, it.UnitPrice, it.LineTotal,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("failed to insert line item: %w", err)
	}
	return nil
}
