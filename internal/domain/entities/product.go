package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-only projection of the catalog "product" table. Catalog
// maintenance (families, colours, materials, suppliers) lives outside this
// service; proposals only consume products.
type Product struct {
	ID          int64
	Name        string
	SKU         string
	Description string
	Price       decimal.Decimal
	Height      float64
	Length      float64
	Width       float64
	Status      string

	FamilyName    string
	SubFamilyName string
	SupplierName  string
	Colours       []string
	Materials     []string

	CreatedAt time.Time
}

// CatalogProduct is what the catalog lookup resolves for a line item: the
// current attributes used to snapshot a price at reconciliation time.
type CatalogProduct struct {
	ID    int64
	Name  string
	SKU   string
	Price decimal.Decimal
}

// CatalogRef resolves an apartment type or client reference to its name.
type CatalogRef struct {
	ID   int64
	Name string
}

// ProductFilter is the closed set of optional listing facets. Absent facets
// (zero values / nil pointers) contribute no predicate; all present facets
// must hold simultaneously. Search matches name or SKU.
type ProductFilter struct {
	Search    string
	Family    string
	SubFamily string
	Colour    string
	Material  string
	Supplier  string

	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal

	// Dimension bounds: minimum height and width, maximum length.
	HeightMin *float64
	WidthMin  *float64
	LengthMax *float64

	Page int
	Size int
}
