package response

import (
	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

type ProductResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Height      float64  `json:"height,omitempty"`
	Length      float64  `json:"length,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Status      string   `json:"status"`
	Family      string   `json:"family,omitempty"`
	SubFamily   string   `json:"subfamily,omitempty"`
	Supplier    string   `json:"supplier,omitempty"`
	Colours     []string `json:"colours,omitempty"`
	Materials   []string `json:"materials,omitempty"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Height:      p.Height,
		Length:      p.Length,
		Width:       p.Width,
		Status:      p.Status,
		Family:      p.FamilyName,
		SubFamily:   p.SubFamilyName,
		Supplier:    p.SupplierName,
		Colours:     p.Colours,
		Materials:   p.Materials,
	}
}

type ProductPageResponse struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int64             `json:"total_pages"`
}

func ProductPage(products []entities.Product, page, size int, total int64) ProductPageResponse {
	page, size = normalizePage(page, size)
	res := ProductPageResponse{
		Content:       []ProductResponse{},
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages(total, size),
	}
	for _, p := range products {
		res.Content = append(res.Content, FromProduct(p))
	}
	return res
}
