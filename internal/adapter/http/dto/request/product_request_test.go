package request

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductFilterRequest_ToFilter(t *testing.T) {
	priceMin := 50.0
	priceMax := 500.0
	heightMin := 1.2
	r := ProductFilterRequest{
		Search:    "oak",
		Family:    "Tables",
		Colour:    "brown",
		PriceMin:  &priceMin,
		PriceMax:  &priceMax,
		HeightMin: &heightMin,
		Page:      3,
		Size:      25,
	}

	f := r.ToFilter()
	if f.Search != "oak" || f.Family != "Tables" || f.Colour != "brown" {
		t.Fatalf("unexpected facets: %+v", f)
	}
	if f.PriceMin == nil || !f.PriceMin.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected price_min: %+v", f.PriceMin)
	}
	if f.PriceMax == nil || !f.PriceMax.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected price_max: %+v", f.PriceMax)
	}
	if f.HeightMin == nil || *f.HeightMin != 1.2 {
		t.Fatalf("unexpected height_min: %+v", f.HeightMin)
	}
	if f.Page != 3 || f.Size != 25 {
		t.Fatalf("unexpected paging: %+v", f)
	}
}

func TestProductFilterRequest_ToFilterEmpty(t *testing.T) {
	f := ProductFilterRequest{}.ToFilter()
	if f.PriceMin != nil || f.PriceMax != nil || f.HeightMin != nil || f.WidthMin != nil || f.LengthMax != nil {
		t.Fatalf("expected nil bounds, got %+v", f)
	}
}
