package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus is the lifecycle of a sales proposal.
//
// The flow is strictly forward: DRAFT -> FINALIZED -> APPROVED. There is no
// reverse transition and no cancellation state. A proposal is only mutable
// (line items, name, discount) while it is still a DRAFT.

type ProposalStatus string

const (
	ProposalStatusDraft     ProposalStatus = "DRAFT"
	ProposalStatusFinalized ProposalStatus = "FINALIZED"
	ProposalStatusApproved  ProposalStatus = "APPROVED"
)

// ParseProposalStatus validates a persisted status string. Unknown values are
// rejected rather than defaulted so a corrupted row fails loudly.
func ParseProposalStatus(s string) (ProposalStatus, error) {
	switch ProposalStatus(s) {
	case ProposalStatusDraft, ProposalStatusFinalized, ProposalStatusApproved:
		return ProposalStatus(s), nil
	}
	return "", fmt.Errorf("unknown proposal status %q", s)
}

// ErrVersionConflict is returned when a write carries a stale optimistic
// version. The caller must re-read and retry; the engine never retries.
var ErrVersionConflict = errors.New("proposal version conflict")

// InvalidTransitionError reports an illegal lifecycle move.
type InvalidTransitionError struct {
	Required ProposalStatus
	Target   ProposalStatus
	Actual   ProposalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("proposal must be %s to become %s, but is %s", e.Required, e.Target, e.Actual)
}

// NotEditableError reports a mutation attempted outside DRAFT.
type NotEditableError struct {
	Status ProposalStatus
}

func (e *NotEditableError) Error() string {
	return fmt.Sprintf("proposal is %s and can no longer be modified", e.Status)
}

// Proposal is the aggregate root persisted in the "proposal" table.
//
// TotalPrice is derived from the line items and the discount but persisted as
// a cache. Version is the optimistic lock counter; every successful write
// increments it.
type Proposal struct {
	ID                int64
	Name              string
	ApartmentTypeID   int64
	ApartmentTypeName string
	ClientID          int64
	ClientName        string
	Status            ProposalStatus
	Discount          decimal.Decimal
	TotalPrice        decimal.Decimal
	LineItems         []ProposalLineItem

	CreatedAt time.Time
	CreatedBy int64
	UpdatedAt time.Time
	UpdatedBy int64
	Version   int64
}

// EnsureEditable gates update and delete. Only DRAFT proposals may change.
func (p *Proposal) EnsureEditable() error {
	if p.Status != ProposalStatusDraft {
		return &NotEditableError{Status: p.Status}
	}
	return nil
}

// Finalize moves DRAFT -> FINALIZED.
func (p *Proposal) Finalize() error {
	if p.Status != ProposalStatusDraft {
		return &InvalidTransitionError{
			Required: ProposalStatusDraft,
			Target:   ProposalStatusFinalized,
			Actual:   p.Status,
		}
	}
	p.Status = ProposalStatusFinalized
	return nil
}

// Approve moves FINALIZED -> APPROVED.
func (p *Proposal) Approve() error {
	if p.Status != ProposalStatusFinalized {
		return &InvalidTransitionError{
			Required: ProposalStatusFinalized,
			Target:   ProposalStatusApproved,
			Actual:   p.Status,
		}
	}
	p.Status = ProposalStatusApproved
	return nil
}

// ProposalLineItem is one product entry in a proposal, persisted in
// "proposal_product". UnitPrice is the catalog price snapshotted when the item
// was added; a later quantity change recomputes LineTotal against the stored
// snapshot, it does not re-read the catalog.
type ProposalLineItem struct {
	ID         int64
	ProposalID int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal

	// Resolved via join for display and export; never persisted here.
	ProductName string
	ProductSKU  string
}

// FileFormat is the export document format.
type FileFormat string

const (
	FileFormatPDF   FileFormat = "PDF"
	FileFormatExcel FileFormat = "EXCEL"
)

func ParseFileFormat(s string) (FileFormat, error) {
	switch FileFormat(s) {
	case FileFormatPDF, FileFormatExcel:
		return FileFormat(s), nil
	}
	return "", fmt.Errorf("unknown file format %q", s)
}

// ProposalFile records one successful export. Files are append-only history:
// exporting the same proposal again adds a new record, it never overwrites.
type ProposalFile struct {
	ID         int64
	ProposalID int64
	FilePath   string
	Format     FileFormat
	CreatedAt  time.Time
}

// LineItemDiff is the outcome of reconciling a desired line-item set against
// the stored one. The three operation sets are persisted together in a single
// transaction; a partially applied diff must never be observable.
type LineItemDiff struct {
	Add    []ProposalLineItem
	Update []ProposalLineItem
	Remove []int64 // line item ids
}

// Empty reports whether the diff would change nothing.
func (d LineItemDiff) Empty() bool {
	return len(d.Add) == 0 && len(d.Update) == 0 && len(d.Remove) == 0
}

// ProposalDashboard is the aggregate view behind GET /proposals/metadata.
type ProposalDashboard struct {
	Total     int64
	Draft     int64
	Finalized int64
	Approved  int64
}

// ProposalListFilter narrows the proposal listing. Zero values filter nothing.
type ProposalListFilter struct {
	Search string
	Status ProposalStatus
	Page   int
	Size   int
}
