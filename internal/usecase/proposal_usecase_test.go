package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
	mock_interfaces "github.com/qwhomes/proposal-service/internal/usecase/interfaces/mocks"
	"github.com/qwhomes/proposal-service/pkg/identity"
)

type proposalMocks struct {
	repo     *mock_interfaces.MockIProposalRepository
	catalog  *mock_interfaces.MockICatalogLookup
	renderer *mock_interfaces.MockIProposalRenderer
	register *mock_interfaces.MockIRegisterRenderer
	files    *mock_interfaces.MockIFileStore
}

func newProposalUseCase(t *testing.T) (*ProposalUseCase, proposalMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := proposalMocks{
		repo:     mock_interfaces.NewMockIProposalRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogLookup(ctrl),
		renderer: mock_interfaces.NewMockIProposalRenderer(ctrl),
		register: mock_interfaces.NewMockIRegisterRenderer(ctrl),
		files:    mock_interfaces.NewMockIFileStore(ctrl),
	}
	m.renderer.EXPECT().Format().Return(entities.FileFormatPDF)
	uc := NewProposalUseCase(m.repo, m.catalog, []interfaces.IProposalRenderer{m.renderer}, m.register, m.files)
	return uc, m, ctrl
}

func validInput() ProposalInput {
	return ProposalInput{
		Name:            "Apartment 42 refit",
		ApartmentTypeID: 7,
		ClientID:        9,
		Discount:        decimal.NewFromInt(10),
		LineItems: []ProposalLineItemInput{
			{ProductID: 101, Quantity: 2},
			{ProductID: 102, Quantity: 1},
		},
	}
}

func expectReferences(m proposalMocks) {
	m.catalog.EXPECT().ResolveApartmentType(gomock.Any(), int64(7)).Return(entities.CatalogRef{ID: 7, Name: "T2"}, nil)
	m.catalog.EXPECT().ResolveClient(gomock.Any(), int64(9)).Return(entities.CatalogRef{ID: 9, Name: "Acme Interiors"}, nil)
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("validation rejections", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*ProposalInput)
			wantErr error
		}{
			{"blank name", func(in *ProposalInput) { in.Name = "   " }, ErrInvalidProposalName},
			{"no line items", func(in *ProposalInput) { in.LineItems = nil }, ErrNoLineItems},
			{"zero quantity", func(in *ProposalInput) { in.LineItems[0].Quantity = 0 }, ErrInvalidQuantity},
			{"negative quantity", func(in *ProposalInput) { in.LineItems[1].Quantity = -2 }, ErrInvalidQuantity},
			{"duplicate product", func(in *ProposalInput) { in.LineItems[1].ProductID = 101 }, ErrDuplicateLineItem},
			{"negative discount", func(in *ProposalInput) { in.Discount = decimal.NewFromInt(-1) }, ErrInvalidDiscount},
			{"discount above 100", func(in *ProposalInput) { in.Discount = decimal.NewFromInt(101) }, ErrInvalidDiscount},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, _, ctrl := newProposalUseCase(t)
				defer ctrl.Finish()

				in := validInput()
				tc.mutate(&in)
				_, err := uc.Create(context.Background(), in)
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("apartment type not found", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.catalog.EXPECT().ResolveApartmentType(gomock.Any(), int64(7)).Return(entities.CatalogRef{}, nil)

		_, err := uc.Create(context.Background(), validInput())
		if !errors.Is(err, ErrApartmentTypeNotFound) {
			t.Fatalf("expected ErrApartmentTypeNotFound, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.catalog.EXPECT().ResolveApartmentType(gomock.Any(), int64(7)).Return(entities.CatalogRef{ID: 7, Name: "T2"}, nil)
		m.catalog.EXPECT().ResolveClient(gomock.Any(), int64(9)).Return(entities.CatalogRef{}, nil)

		_, err := uc.Create(context.Background(), validInput())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		expectReferences(m)
		m.catalog.EXPECT().ResolveProduct(gomock.Any(), int64(101)).Return(entities.CatalogProduct{}, nil)

		_, err := uc.Create(context.Background(), validInput())
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("create success snapshots prices and computes total", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		expectReferences(m)
		m.catalog.EXPECT().ResolveProduct(gomock.Any(), int64(101)).Return(entities.CatalogProduct{
			ID: 101, Name: "Sofa", SKU: "SOFA-101", Price: decimal.RequireFromString("100.00"),
		}, nil)
		m.catalog.EXPECT().ResolveProduct(gomock.Any(), int64(102)).Return(entities.CatalogProduct{
			ID: 102, Name: "Lamp", SKU: "LAMP-102", Price: decimal.RequireFromString("50.00"),
		}, nil)

		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusDraft {
					t.Fatalf("expected draft status, got %s", p.Status)
				}
				if p.Version != 1 {
					t.Fatalf("expected version 1, got %d", p.Version)
				}
				if !p.TotalPrice.Equal(decimal.RequireFromString("225.00")) {
					t.Fatalf("expected total 225.00, got %s", p.TotalPrice)
				}
				if len(p.LineItems) != 2 || !p.LineItems[0].UnitPrice.Equal(decimal.RequireFromString("100.00")) {
					t.Fatalf("unexpected line items: %+v", p.LineItems)
				}
				if p.CreatedBy != 55 || p.UpdatedBy != 55 {
					t.Fatalf("expected actor 55, got created_by=%d updated_by=%d", p.CreatedBy, p.UpdatedBy)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				p.ID = 1
				return p, nil
			},
		)

		ctx := identity.WithActor(context.Background(), 55)
		created, err := uc.Create(ctx, validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 {
			t.Fatalf("expected id 1, got %d", created.ID)
		}
	})
}

func TestProposalUseCase_Update(t *testing.T) {
	stored := entities.Proposal{
		ID:              1,
		Name:            "Apartment 42 refit",
		ApartmentTypeID: 7,
		ClientID:        9,
		Status:          entities.ProposalStatusDraft,
		Version:         3,
		LineItems: []entities.ProposalLineItem{
			{ID: 11, ProposalID: 1, ProductID: 101, Quantity: 2,
				UnitPrice: decimal.RequireFromString("100.00"),
				LineTotal: decimal.RequireFromString("200.00")},
		},
	}

	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Proposal{}, nil)

		_, err := uc.Update(context.Background(), 1, validInput())
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("finalized proposal is not editable", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		locked := stored
		locked.Status = entities.ProposalStatusFinalized
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(locked, nil)

		_, err := uc.Update(context.Background(), 1, validInput())
		var notEditable *entities.NotEditableError
		if !errors.As(err, &notEditable) {
			t.Fatalf("expected NotEditableError, got %v", err)
		}
		if notEditable.Status != entities.ProposalStatusFinalized {
			t.Fatalf("unexpected status in error: %s", notEditable.Status)
		}
	})

	t.Run("update reconciles and keeps price snapshot", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		expectReferences(m)
		m.catalog.EXPECT().ResolveProduct(gomock.Any(), int64(102)).Return(entities.CatalogProduct{
			ID: 102, Name: "Lamp", SKU: "LAMP-102", Price: decimal.RequireFromString("50.00"),
		}, nil)

		in := validInput()
		in.LineItems = []ProposalLineItemInput{
			{ProductID: 101, Quantity: 4},
			{ProductID: 102, Quantity: 1},
		}

		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal, diff entities.LineItemDiff) (entities.Proposal, error) {
				if len(diff.Update) != 1 || !diff.Update[0].UnitPrice.Equal(decimal.RequireFromString("100.00")) {
					t.Fatalf("expected quantity change on stored snapshot, got %+v", diff.Update)
				}
				if len(diff.Add) != 1 || diff.Add[0].ProductID != 102 {
					t.Fatalf("expected product 102 added, got %+v", diff.Add)
				}
				// 400 + 50 = 450, minus 10% = 405.00
				if !p.TotalPrice.Equal(decimal.RequireFromString("405.00")) {
					t.Fatalf("expected total 405.00, got %s", p.TotalPrice)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(context.Background(), 1, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("version conflict surfaces unchanged", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		expectReferences(m)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Proposal{}, entities.ErrVersionConflict)

		in := validInput()
		in.LineItems = []ProposalLineItemInput{{ProductID: 101, Quantity: 2}}
		_, err := uc.Update(context.Background(), 1, in)
		if !errors.Is(err, entities.ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestProposalUseCase_Lifecycle(t *testing.T) {
	t.Run("finalize draft", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Proposal{ID: 1, Status: entities.ProposalStatusDraft}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusFinalized {
					t.Fatalf("expected finalized, got %s", p.Status)
				}
				return p, nil
			},
		)

		got, err := uc.Finalize(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ProposalStatusFinalized {
			t.Fatalf("expected finalized, got %s", got.Status)
		}
	})

	t.Run("approve requires finalized", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Proposal{ID: 1, Status: entities.ProposalStatusDraft}, nil)

		_, err := uc.Approve(context.Background(), 1)
		var invalid *entities.InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("finalize twice", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Proposal{ID: 1, Status: entities.ProposalStatusFinalized}, nil)

		_, err := uc.Finalize(context.Background(), 1)
		var invalid *entities.InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("only drafts can be deleted", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Proposal{ID: 1, Status: entities.ProposalStatusApproved}, nil)

		err := uc.Delete(context.Background(), 1)
		var notEditable *entities.NotEditableError
		if !errors.As(err, &notEditable) {
			t.Fatalf("expected NotEditableError, got %v", err)
		}
	})

	t.Run("delete draft", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Proposal{ID: 1, Status: entities.ProposalStatusDraft}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		if err := uc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_Export(t *testing.T) {
	stored := entities.Proposal{
		ID:     1,
		Name:   "Apartment 42 refit",
		Status: entities.ProposalStatusApproved,
	}

	t.Run("renderer not configured", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)

		_, err := uc.Export(context.Background(), 1, entities.FileFormatExcel)
		if !errors.Is(err, ErrRendererNotConfigured) {
			t.Fatalf("expected ErrRendererNotConfigured, got %v", err)
		}
	})

	t.Run("render failure records nothing", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		m.renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("font missing"))

		_, err := uc.Export(context.Background(), 1, entities.FileFormatPDF)
		if !errors.Is(err, ErrRenderFailed) {
			t.Fatalf("expected ErrRenderFailed, got %v", err)
		}
	})

	t.Run("export stores artifact and appends file record", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(stored, nil)
		m.renderer.EXPECT().Render(gomock.Any()).DoAndReturn(
			func(doc interfaces.ProposalDocument) ([]byte, error) {
				if doc.ID != 1 || doc.Name != "Apartment 42 refit" {
					t.Fatalf("unexpected document: %+v", doc)
				}
				return []byte("%PDF"), nil
			},
		)
		m.files.EXPECT().Save(gomock.Any(), []byte("%PDF")).DoAndReturn(
			func(name string, _ []byte) (string, error) {
				if !strings.HasPrefix(name, "proposal_1_") || !strings.HasSuffix(name, ".pdf") {
					t.Fatalf("unexpected file name: %s", name)
				}
				return "exports/" + name, nil
			},
		)
		m.repo.EXPECT().AddFile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.ProposalFile) (entities.ProposalFile, error) {
				if f.ProposalID != 1 || f.Format != entities.FileFormatPDF {
					t.Fatalf("unexpected file record: %+v", f)
				}
				f.ID = 77
				return f, nil
			},
		)

		res, err := uc.Export(context.Background(), 1, entities.FileFormatPDF)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.File.ID != 77 || string(res.Data) != "%PDF" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProposalUseCase_ExportRegister(t *testing.T) {
	t.Run("renders all proposals", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		proposals := []entities.Proposal{{ID: 1}, {ID: 2}}
		m.repo.EXPECT().ListAll(gomock.Any()).Return(proposals, nil)
		m.register.EXPECT().RenderRegister(proposals).Return([]byte("xlsx"), nil)

		data, err := uc.ExportRegister(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "xlsx" {
			t.Fatalf("unexpected data: %s", data)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		uc, m, ctrl := newProposalUseCase(t)
		defer ctrl.Finish()
		m.repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		m.register.EXPECT().RenderRegister(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := uc.ExportRegister(context.Background())
		if !errors.Is(err, ErrRenderFailed) {
			t.Fatalf("expected ErrRenderFailed, got %v", err)
		}
	})
}
