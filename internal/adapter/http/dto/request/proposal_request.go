package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
	"github.com/qwhomes/proposal-service/internal/usecase"
)

// ProposalLineItemRequest is one (product, quantity) pair of the desired
// line-item set.
type ProposalLineItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// ProposalRequest is the payload for creating a proposal and for the full
// update: the products array is the complete desired set, not a patch.
type ProposalRequest struct {
	Name            string                    `json:"name" binding:"required"`
	ApartmentTypeID int64                     `json:"apartment_type_id" binding:"required"`
	ClientID        int64                     `json:"client_id" binding:"required"`
	Discount        *float64                  `json:"discount"`
	Products        []ProposalLineItemRequest `json:"products" binding:"required"`
}

func (r ProposalRequest) ToInput() usecase.ProposalInput {
	in := usecase.ProposalInput{
		Name:            strings.TrimSpace(r.Name),
		ApartmentTypeID: r.ApartmentTypeID,
		ClientID:        r.ClientID,
	}
	if r.Discount != nil {
		in.Discount = decimal.NewFromFloat(*r.Discount)
	}
	for _, p := range r.Products {
		in.LineItems = append(in.LineItems, usecase.ProposalLineItemInput{
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
		})
	}
	return in
}

// ProposalListRequest carries the proposal listing query. Status, when
// supplied, must be one of the known lifecycle states.
type ProposalListRequest struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Page   int    `form:"page"`
	Size   int    `form:"size"`
}

func (r ProposalListRequest) ToFilter() (entities.ProposalListFilter, error) {
	filter := entities.ProposalListFilter{
		Search: strings.TrimSpace(r.Search),
		Page:   r.Page,
		Size:   r.Size,
	}
	if s := strings.TrimSpace(r.Status); s != "" {
		status, err := entities.ParseProposalStatus(s)
		if err != nil {
			return entities.ProposalListFilter{}, err
		}
		filter.Status = status
	}
	return filter, nil
}
