package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	mock_interfaces "github.com/qwhomes/proposal-service/internal/usecase/interfaces/mocks"
)

func TestReconcileLineItems(t *testing.T) {
	storedA := entities.ProposalLineItem{
		ID:         11,
		ProposalID: 1,
		ProductID:  101,
		Quantity:   2,
		UnitPrice:  decimal.RequireFromString("100.00"),
		LineTotal:  decimal.RequireFromString("200.00"),
	}
	storedB := entities.ProposalLineItem{
		ID:         12,
		ProposalID: 1,
		ProductID:  102,
		Quantity:   3,
		UnitPrice:  decimal.RequireFromString("50.00"),
		LineTotal:  decimal.RequireFromString("150.00"),
	}

	t.Run("add update and remove in one pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogLookup(ctrl)

		// Only the new product hits the catalog.
		catalog.EXPECT().ResolveProduct(gomock.Any(), int64(103)).Return(entities.CatalogProduct{
			ID:    103,
			Name:  "Oak Shelf",
			SKU:   "OAK-103",
			Price: decimal.RequireFromString("75.50"),
		}, nil)

		desired := []ProposalLineItemInput{
			{ProductID: 101, Quantity: 4},
			{ProductID: 103, Quantity: 1},
		}
		diff, final, err := reconcileLineItems(context.Background(), catalog, 1,
			[]entities.ProposalLineItem{storedA, storedB}, desired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(diff.Remove) != 1 || diff.Remove[0] != storedB.ID {
			t.Fatalf("expected item %d removed, got %v", storedB.ID, diff.Remove)
		}
		if len(diff.Add) != 1 || diff.Add[0].ProductID != 103 {
			t.Fatalf("expected product 103 added, got %+v", diff.Add)
		}
		if !diff.Add[0].LineTotal.Equal(decimal.RequireFromString("75.50")) {
			t.Fatalf("expected fresh snapshot line total 75.50, got %s", diff.Add[0].LineTotal)
		}
		if len(diff.Update) != 1 || diff.Update[0].ID != storedA.ID {
			t.Fatalf("expected item %d updated, got %+v", storedA.ID, diff.Update)
		}
		// Quantity change keeps the stored price snapshot.
		if !diff.Update[0].UnitPrice.Equal(storedA.UnitPrice) {
			t.Fatalf("expected stored unit price %s, got %s", storedA.UnitPrice, diff.Update[0].UnitPrice)
		}
		if !diff.Update[0].LineTotal.Equal(decimal.RequireFromString("400.00")) {
			t.Fatalf("expected line total 400.00, got %s", diff.Update[0].LineTotal)
		}

		if len(final) != 2 || final[0].ProductID != 101 || final[1].ProductID != 103 {
			t.Fatalf("expected final set in desired order, got %+v", final)
		}
	})

	t.Run("equal quantity leaves item untouched", func(t *testing.T) {
		desired := []ProposalLineItemInput{{ProductID: 101, Quantity: 2}}
		diff, final, err := reconcileLineItems(context.Background(), nil, 1,
			[]entities.ProposalLineItem{storedA}, desired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !diff.Empty() {
			t.Fatalf("expected empty diff, got %+v", diff)
		}
		if len(final) != 1 || !final[0].LineTotal.Equal(storedA.LineTotal) {
			t.Fatalf("unexpected final set: %+v", final)
		}
	})

	t.Run("unknown product aborts the whole reconciliation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogLookup(ctrl)
		catalog.EXPECT().ResolveProduct(gomock.Any(), int64(999)).Return(entities.CatalogProduct{}, nil)

		desired := []ProposalLineItemInput{
			{ProductID: 101, Quantity: 9},
			{ProductID: 999, Quantity: 1},
		}
		diff, final, err := reconcileLineItems(context.Background(), catalog, 1,
			[]entities.ProposalLineItem{storedA, storedB}, desired)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if !diff.Empty() || final != nil {
			t.Fatalf("expected no partial diff, got %+v / %+v", diff, final)
		}
	})

	t.Run("catalog error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogLookup(ctrl)
		catalog.EXPECT().ResolveProduct(gomock.Any(), int64(103)).Return(entities.CatalogProduct{}, errors.New("db"))

		_, _, err := reconcileLineItems(context.Background(), catalog, 1, nil,
			[]ProposalLineItemInput{{ProductID: 103, Quantity: 1}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty current set adds everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogLookup(ctrl)
		catalog.EXPECT().ResolveProduct(gomock.Any(), int64(101)).Return(entities.CatalogProduct{
			ID: 101, Name: "Sofa", SKU: "SOFA-101", Price: decimal.RequireFromString("100.00"),
		}, nil)

		diff, final, err := reconcileLineItems(context.Background(), catalog, 0, nil,
			[]ProposalLineItemInput{{ProductID: 101, Quantity: 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(diff.Add) != 1 || len(diff.Update) != 0 || len(diff.Remove) != 0 {
			t.Fatalf("expected a single add, got %+v", diff)
		}
		if !final[0].LineTotal.Equal(decimal.RequireFromString("200.00")) {
			t.Fatalf("expected line total 200.00, got %s", final[0].LineTotal)
		}
	})
}
