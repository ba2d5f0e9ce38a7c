package request

import (
	"github.com/shopspring/decimal"

	"github.com/qwhomes/proposal-service/internal/domain/entities"
)

// ProductFilterRequest binds the product listing query string. Every field is
// optional; absent facets never narrow the result.
type ProductFilterRequest struct {
	Search    string   `form:"search"`
	Family    string   `form:"family"`
	SubFamily string   `form:"subfamily"`
	Colour    string   `form:"colour"`
	Material  string   `form:"material"`
	Supplier  string   `form:"supplier"`
	PriceMin  *float64 `form:"price_min"`
	PriceMax  *float64 `form:"price_max"`
	HeightMin *float64 `form:"height_min"`
	WidthMin  *float64 `form:"width_min"`
	LengthMax *float64 `form:"length_max"`
	Page      int      `form:"page"`
	Size      int      `form:"size"`
}

func (r ProductFilterRequest) ToFilter() entities.ProductFilter {
	f := entities.ProductFilter{
		Search:    r.Search,
		Family:    r.Family,
		SubFamily: r.SubFamily,
		Colour:    r.Colour,
		Material:  r.Material,
		Supplier:  r.Supplier,
		HeightMin: r.HeightMin,
		WidthMin:  r.WidthMin,
		LengthMax: r.LengthMax,
		Page:      r.Page,
		Size:      r.Size,
	}
	if r.PriceMin != nil {
		min := decimal.NewFromFloat(*r.PriceMin)
		f.PriceMin = &min
	}
	if r.PriceMax != nil {
		max := decimal.NewFromFloat(*r.PriceMax)
		f.PriceMax = &max
	}
	return f
}
