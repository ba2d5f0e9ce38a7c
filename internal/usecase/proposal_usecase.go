package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
	"github.com/qwhomes/proposal-service/pkg/identity"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrApartmentTypeNotFound = errors.New("apartment type not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidProposalName   = errors.New("invalid proposal name")
	ErrNoLineItems           = errors.New("proposal needs at least one line item")
	ErrInvalidQuantity       = errors.New("line item quantity must be positive")
	ErrDuplicateLineItem     = errors.New("duplicate product in line items")
	ErrInvalidDiscount       = errors.New("discount must be between 0 and 100")
	ErrRendererNotConfigured = errors.New("no renderer for requested format")
	ErrRenderFailed          = errors.New("failed to render proposal document")
)

// ProposalInput carries a create or full-update request. On update the line
// items are the complete desired set; the stored set is reconciled against it.
type ProposalInput struct {
	Name            string
	ApartmentTypeID int64
	ClientID        int64
	Discount        decimal.Decimal
	LineItems       []ProposalLineItemInput
}

// ExportResult is a rendered document plus its recorded file row.
type ExportResult struct {
	File     entities.ProposalFile
	FileName string
	Data     []byte
}

// IProposalUseCase exposes the proposal engine operations.
//
//   - Create/Update run catalog resolution, line-item reconciliation and the
//     pricing calculator before persisting
//   - Finalize/Approve drive the DRAFT -> FINALIZED -> APPROVED lifecycle
//   - Export renders a document and appends a proposal_file record without
//     touching pricing or items

type IProposalUseCase interface {
	Create(ctx context.Context, in ProposalInput) (entities.Proposal, error)
	Update(ctx context.Context, id int64, in ProposalInput) (entities.Proposal, error)
	Get(ctx context.Context, id int64) (entities.Proposal, error)
	List(ctx context.Context, filter entities.ProposalListFilter) ([]entities.Proposal, int64, error)
	Delete(ctx context.Context, id int64) error
	Finalize(ctx context.Context, id int64) (entities.Proposal, error)
	Approve(ctx context.Context, id int64) (entities.Proposal, error)
	Export(ctx context.Context, id int64, format entities.FileFormat) (ExportResult, error)
	Metadata(ctx context.Context) (entities.ProposalDashboard, error)
	ExportRegister(ctx context.Context) ([]byte, error)
}

type ProposalUseCase struct {
	repo      interfaces.IProposalRepository
	catalog   interfaces.ICatalogLookup
	renderers map[entities.FileFormat]interfaces.IProposalRenderer
	register  interfaces.IRegisterRenderer
	files     interfaces.IFileStore
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	catalog interfaces.ICatalogLookup,
	renderers []interfaces.IProposalRenderer,
	register interfaces.IRegisterRenderer,
	files interfaces.IFileStore,
) *ProposalUseCase {
	byFormat := make(map[entities.FileFormat]interfaces.IProposalRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ProposalUseCase{repo: repo, catalog: catalog, renderers: byFormat, register: register, files: files}
}

func (u *ProposalUseCase) Create(ctx context.Context, in ProposalInput) (entities.Proposal, error) {
	if err := validateInput(in); err != nil {
		log.Printf("[proposal][usecase] create rejected: %v", err)
		return entities.Proposal{}, err
	}

	apartmentType, client, err := u.resolveReferences(ctx, in)
	if err != nil {
		return entities.Proposal{}, err
	}

	diff, items, err := reconcileLineItems(ctx, u.catalog, 0, nil, in.LineItems)
	if err != nil {
		log.Printf("[proposal][usecase] create failed resolving products: %v", err)
		return entities.Proposal{}, err
	}
	_ = diff // a fresh proposal persists the final set directly

	now := time.Now().UTC()
	actor := identity.ActorFrom(ctx)
	p := entities.Proposal{
		Name:              strings.TrimSpace(in.Name),
		ApartmentTypeID:   apartmentType.ID,
		ApartmentTypeName: apartmentType.Name,
		ClientID:          client.ID,
		ClientName:        client.Name,
		Status:            entities.ProposalStatusDraft,
		Discount:          in.Discount,
		TotalPrice:        TotalPrice(items, in.Discount),
		LineItems:         items,
		CreatedAt:         now,
		CreatedBy:         actor,
		UpdatedAt:         now,
		UpdatedBy:         actor,
		Version:           1,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] create persist failed: %v", err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%d items=%d total=%s", created.ID, len(created.LineItems), created.TotalPrice)
	return created, nil
}

func (u *ProposalUseCase) Update(ctx context.Context, id int64, in ProposalInput) (entities.Proposal, error) {
	if err := validateInput(in); err != nil {
		log.Printf("[proposal][usecase] update rejected proposal_id=%d: %v", id, err)
		return entities.Proposal{}, err
	}

	p, err := u.load(ctx, id, "update")
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := p.EnsureEditable(); err != nil {
		log.Printf("[proposal][usecase] update refused proposal_id=%d status=%s", id, p.Status)
		return entities.Proposal{}, err
	}

	apartmentType, client, err := u.resolveReferences(ctx, in)
	if err != nil {
		return entities.Proposal{}, err
	}

	diff, items, err := reconcileLineItems(ctx, u.catalog, p.ID, p.LineItems, in.LineItems)
	if err != nil {
		log.Printf("[proposal][usecase] update failed reconciling proposal_id=%d: %v", id, err)
		return entities.Proposal{}, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.ApartmentTypeID = apartmentType.ID
	p.ApartmentTypeName = apartmentType.Name
	p.ClientID = client.ID
	p.ClientName = client.Name
	p.Discount = in.Discount
	p.LineItems = items
	p.TotalPrice = TotalPrice(items, in.Discount)
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = identity.ActorFrom(ctx)

	updated, err := u.repo.Update(ctx, p, diff)
	if err != nil {
		log.Printf("[proposal][usecase] update persist failed proposal_id=%d: %v", id, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] updated proposal_id=%d add=%d update=%d remove=%d total=%s",
		id, len(diff.Add), len(diff.Update), len(diff.Remove), updated.TotalPrice)
	return updated, nil
}

func (u *ProposalUseCase) Get(ctx context.Context, id int64) (entities.Proposal, error) {
	return u.load(ctx, id, "get")
}

func (u *ProposalUseCase) List(ctx context.Context, filter entities.ProposalListFilter) ([]entities.Proposal, int64, error) {
	return u.repo.List(ctx, filter)
}

func (u *ProposalUseCase) Delete(ctx context.Context, id int64) error {
	p, err := u.load(ctx, id, "delete")
	if err != nil {
		return err
	}
	if err := p.EnsureEditable(); err != nil {
		log.Printf("[proposal][usecase] delete refused proposal_id=%d status=%s", id, p.Status)
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[proposal][usecase] delete failed proposal_id=%d: %v", id, err)
		return err
	}
	log.Printf("[proposal][usecase] deleted proposal_id=%d", id)
	return nil
}

func (u *ProposalUseCase) Finalize(ctx context.Context, id int64) (entities.Proposal, error) {
	return u.transition(ctx, id, "finalize", (*entities.Proposal).Finalize)
}

func (u *ProposalUseCase) Approve(ctx context.Context, id int64) (entities.Proposal, error) {
	return u.transition(ctx, id, "approve", (*entities.Proposal).Approve)
}

func (u *ProposalUseCase) transition(
	ctx context.Context,
	id int64,
	op string,
	move func(*entities.Proposal) error,
) (entities.Proposal, error) {
	p, err := u.load(ctx, id, op)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := move(&p); err != nil {
		log.Printf("[proposal][usecase] %s refused proposal_id=%d: %v", op, id, err)
		return entities.Proposal{}, err
	}
	p.UpdatedAt = time.Now().UTC()
	p.UpdatedBy = identity.ActorFrom(ctx)

	updated, err := u.repo.UpdateStatus(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] %s persist failed proposal_id=%d: %v", op, id, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] %s done proposal_id=%d status=%s", op, id, updated.Status)
	return updated, nil
}

// Export renders the proposal in the requested format, stores the artifact and
// appends a proposal_file record. Export is legal in every lifecycle state and
// must never change pricing or line items.
func (u *ProposalUseCase) Export(ctx context.Context, id int64, format entities.FileFormat) (ExportResult, error) {
	p, err := u.load(ctx, id, "export")
	if err != nil {
		return ExportResult{}, err
	}

	renderer, ok := u.renderers[format]
	if !ok {
		return ExportResult{}, fmt.Errorf("%w: %s", ErrRendererNotConfigured, format)
	}

	data, err := renderer.Render(buildDocument(p))
	if err != nil {
		log.Printf("[proposal][usecase] export render failed proposal_id=%d format=%s: %v", id, format, err)
		return ExportResult{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	name := exportFileName(p.ID, format)
	path, err := u.files.Save(name, data)
	if err != nil {
		log.Printf("[proposal][usecase] export store failed proposal_id=%d format=%s: %v", id, format, err)
		return ExportResult{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	file, err := u.repo.AddFile(ctx, entities.ProposalFile{
		ProposalID: p.ID,
		FilePath:   path,
		Format:     format,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[proposal][usecase] export record failed proposal_id=%d format=%s: %v", id, format, err)
		return ExportResult{}, err
	}

	log.Printf("[proposal][usecase] exported proposal_id=%d format=%s path=%s", id, format, path)
	return ExportResult{File: file, FileName: name, Data: data}, nil
}

func (u *ProposalUseCase) Metadata(ctx context.Context) (entities.ProposalDashboard, error) {
	return u.repo.Metadata(ctx)
}

// ExportRegister renders the whole proposal register as one spreadsheet.
func (u *ProposalUseCase) ExportRegister(ctx context.Context) ([]byte, error) {
	proposals, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	data, err := u.register.RenderRegister(proposals)
	if err != nil {
		log.Printf("[proposal][usecase] register render failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return data, nil
}

func (u *ProposalUseCase) load(ctx context.Context, id int64, op string) (entities.Proposal, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[proposal][usecase] %s load failed proposal_id=%d: %v", op, id, err)
		return entities.Proposal{}, err
	}
	if p.ID == 0 {
		log.Printf("[proposal][usecase] %s proposal not found proposal_id=%d", op, id)
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) resolveReferences(ctx context.Context, in ProposalInput) (entities.CatalogRef, entities.CatalogRef, error) {
	apartmentType, err := u.catalog.ResolveApartmentType(ctx, in.ApartmentTypeID)
	if err != nil {
		return entities.CatalogRef{}, entities.CatalogRef{}, err
	}
	if apartmentType.ID == 0 {
		log.Printf("[proposal][usecase] apartment type not found apartment_type_id=%d", in.ApartmentTypeID)
		return entities.CatalogRef{}, entities.CatalogRef{}, fmt.Errorf("apartment type %d: %w", in.ApartmentTypeID, ErrApartmentTypeNotFound)
	}
	client, err := u.catalog.ResolveClient(ctx, in.ClientID)
	if err != nil {
		return entities.CatalogRef{}, entities.CatalogRef{}, err
	}
	if client.ID == 0 {
		log.Printf("[proposal][usecase] client not found client_id=%d", in.ClientID)
		return entities.CatalogRef{}, entities.CatalogRef{}, fmt.Errorf("client %d: %w", in.ClientID, ErrClientNotFound)
	}
	return apartmentType, client, nil
}

// validateInput enforces the request-level rules before any catalog or
// database access: non-empty name, at least one line item, positive
// quantities, no duplicate products, discount within 0..100.
func validateInput(in ProposalInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidProposalName
	}
	if len(in.LineItems) == 0 {
		return ErrNoLineItems
	}
	seen := make(map[int64]struct{}, len(in.LineItems))
	for _, item := range in.LineItems {
		if item.Quantity <= 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrInvalidQuantity)
		}
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrDuplicateLineItem)
		}
		seen[item.ProductID] = struct{}{}
	}
	if in.Discount.IsNegative() || in.Discount.GreaterThan(oneHundred) {
		return ErrInvalidDiscount
	}
	return nil
}

func buildDocument(p entities.Proposal) interfaces.ProposalDocument {
	doc := interfaces.ProposalDocument{
		ID:            p.ID,
		Name:          p.Name,
		ApartmentType: p.ApartmentTypeName,
		Client:        p.ClientName,
		Status:        string(p.Status),
		Discount:      p.Discount,
		TotalPrice:    p.TotalPrice,
	}
	for _, it := range p.LineItems {
		doc.Lines = append(doc.Lines, interfaces.ProposalDocumentLine{
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return doc
}

func exportFileName(proposalID int64, format entities.FileFormat) string {
	ext := "pdf"
	if format == entities.FileFormatExcel {
		ext = "xlsx"
	}
	stamp := time.Now().UTC().Format("20060102150405")
	return fmt.Sprintf("proposal_%d_%s_%s.%s", proposalID, stamp, uuid.NewString()[:8], ext)
}
