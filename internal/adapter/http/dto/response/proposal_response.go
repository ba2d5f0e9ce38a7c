package response

import (
	"time"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

type ProposalLineItemResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	ProductSKU  string  `json:"product_sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type ProposalResponse struct {
	ID                int64                      `json:"id"`
	Name              string                     `json:"name"`
	ApartmentTypeID   int64                      `json:"apartment_type_id"`
	ApartmentTypeName string                     `json:"apartment_type_name"`
	ClientID          int64                      `json:"client_id"`
	ClientName        string                     `json:"client_name"`
	Status            string                     `json:"status"`
	Discount          float64                    `json:"discount"`
	TotalPrice        float64                    `json:"total_price"`
	Products          []ProposalLineItemResponse `json:"products"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
	Version           int64                      `json:"version"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:                p.ID,
		Name:              p.Name,
		ApartmentTypeID:   p.ApartmentTypeID,
		ApartmentTypeName: p.ApartmentTypeName,
		ClientID:          p.ClientID,
		ClientName:        p.ClientName,
		Status:            string(p.Status),
		Discount:          p.Discount.InexactFloat64(),
		TotalPrice:        p.TotalPrice.InexactFloat64(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Version:           p.Version,
	}
	for _, it := range p.LineItems {
		res.Products = append(res.Products, ProposalLineItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.InexactFloat64(),
			LineTotal:   it.LineTotal.InexactFloat64(),
		})
	}
	return res
}

type ProposalPageResponse struct {
	Content       []ProposalResponse `json:"content"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"total_elements"`
	TotalPages    int64              `json:"total_pages"`
}

func ProposalPage(proposals []entities.Proposal, page, size int, total int64) ProposalPageResponse {
	page, size = normalizePage(page, size)
	res := ProposalPageResponse{
		Content:       []ProposalResponse{},
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
	}
	for _, p := range proposals {
		res.Content = append(res.Content, FromProposal(p))
	}
	return res
}

type ProposalDashboardResponse struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Finalized int64 `json:"finalized"`
	Approved  int64 `json:"approved"`
}

func FromDashboard(d entities.ProposalDashboard) ProposalDashboardResponse {
	return ProposalDashboardResponse{
		Total:     d.Total,
		Draft:     d.Draft,
		Finalized: d.Finalized,
		Approved:  d.Approved,
	}
}

func totalPages(total int64, size int) int64 {
	if size <= 0 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}

// normalizePage mirrors the repository paging defaults so the envelope
// reports the page that was actually served.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 200 {
		size = 200
	}
	return page, size
}
