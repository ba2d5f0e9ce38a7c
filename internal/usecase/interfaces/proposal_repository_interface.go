package interfaces

import (
	"context"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

// IProposalRepository abstracts Postgres persistence for the Proposal
// aggregate (proposal + proposal_product + proposal_file).
//
// Conventions:
//   - lookups return the zero value (ID == 0) when nothing matched
//   - Update and UpdateStatus are compare-and-swap on the proposal version;
//     a stale version yields entities.ErrVersionConflict
//   - Update applies the line-item diff and the recomputed totals in one
//     transaction

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id int64) (entities.Proposal, error)
	List(ctx context.Context, filter entities.ProposalListFilter) ([]entities.Proposal, int64, error)
	ListAll(ctx context.Context) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal, diff entities.LineItemDiff) (entities.Proposal, error)
	UpdateStatus(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	Delete(ctx context.Context, id int64) error
	Metadata(ctx context.Context) (entities.ProposalDashboard, error)
	AddFile(ctx context.Context, f entities.ProposalFile) (entities.ProposalFile, error)
}
