package usecase

import (
	"context"
	"log"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

// IProductUseCase serves the faceted product listing used for browsing the
// catalog and for picking products into a proposal.

type IProductUseCase interface {
	List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error)
	Get(ctx context.Context, id int64) (entities.Product, error)
}

type ProductUseCase struct {
	repo interfaces.IProductRepository
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

func (u *ProductUseCase) List(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, int64, error) {
	return u.repo.List(ctx, filter)
}

func (u *ProductUseCase) Get(ctx context.Context, id int64) (entities.Product, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[product][usecase] get failed product_id=%d: %v", id, err)
		return entities.Product{}, err
	}
	if p.ID == 0 {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}
