package interfaces

import (
	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// ProposalDocument is the fully resolved snapshot handed to a renderer:
// line items joined with product names, reference names resolved, totals
// already computed. Renderers must treat it as read-only.
type ProposalDocument struct {
	ID            int64
	Name          string
	ApartmentType string
	Client        string
	Status        string
	Discount      decimal.Decimal
	TotalPrice    decimal.Decimal
	Lines         []ProposalDocumentLine
}

type ProposalDocumentLine struct {
	ProductName string
	ProductSKU  string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// IProposalRenderer turns a resolved proposal into an opaque document. A
// renderer never touches persistence; a render error surfaces as an export
// failure and leaves the proposal untouched.

type IProposalRenderer interface {
	Format() entities.FileFormat
	Render(doc ProposalDocument) ([]byte, error)
}

// IRegisterRenderer renders the full proposal register (one row per
// proposal) for the bulk spreadsheet export.

type IRegisterRenderer interface {
	RenderRegister(proposals []entities.Proposal) ([]byte, error)
}

// IFileStore persists rendered documents and returns the stored path recorded
// on the proposal_file row.

type IFileStore interface {
	Save(name string, data []byte) (string, error)
}
