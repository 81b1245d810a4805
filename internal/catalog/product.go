package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jdclothing/storefront-backend/pkg/enums"
)

// ColorVariant is one selectable color of a product.
type ColorVariant struct {
	Name string `json:"name" validate:"required"`
	Hex  string `json:"hex"`
}

// Product mirrors one record of the upstream catalog document. Products are
// immutable once loaded; the cart snapshots what it needs at add time.
type Product struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Gender      enums.Gender    `json:"gender" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Material    string          `json:"material"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Colors      []ColorVariant  `json:"color" validate:"required,min=1,dive"`
	Sizes       []string        `json:"sizes" validate:"required,min=1,dive,required"`
}

// HasColor reports whether the product offers a color variant with the name.
func (p Product) HasColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is available in the size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// FilterCriteria describes one browse request. Empty sets leave their axis
// unconstrained; a product must satisfy every non-empty axis, matching any
// value within it.
type FilterCriteria struct {
	Gender     *enums.Gender
	Categories []string
	Colors     []string
	Sizes      []string
}
