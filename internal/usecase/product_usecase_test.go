package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	mock_interfaces "github.com/qwhomes/proposal-service/internal/usecase/interfaces/mocks"
)

func TestProductUseCase_List(t *testing.T) {
	t.Run("delegates filter to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		filter := entities.ProductFilter{Family: "Sofas", Page: 2, Size: 10}
		repo.EXPECT().List(gomock.Any(), filter).Return([]entities.Product{{ID: 1}}, int64(21), nil)

		products, total, err := uc.List(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 1 || total != 21 {
			t.Fatalf("unexpected page: %d items, total %d", len(products), total)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("db"))

		_, _, err := uc.List(context.Background(), entities.ProductFilter{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProductUseCase_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Product{ID: 5, Name: "Sofa"}, nil)

		p, err := uc.Get(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Sofa" {
			t.Fatalf("unexpected product: %+v", p)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewProductUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Product{}, nil)

		_, err := uc.Get(context.Background(), 5)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
