package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jdclothing/storefront-backend/pkg/enums"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
)

// Line is the pricing view of one cart line: the snapshotted unit price and
// the quantity.
type Line struct {
	Price    decimal.Decimal
	Quantity int
}

// Totals is the full order summary, every amount rounded to cents.
type Totals struct {
	Merchandise decimal.Decimal `json:"merchandise"`
	Shipping    decimal.Decimal `json:"shipping"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Quote derives merchandise, shipping, tax, and grand total for the lines.
// Shipping is free above the threshold; tax applies to domestic destinations
// only. Enum inputs are validated here so the rate table lookup cannot miss.
func Quote(lines []Line, destination enums.Destination, method enums.ShippingMethod) (Totals, error) {
	if !destination.IsValid() {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid destination")
	}
	if !method.IsValid() {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipping method")
	}

	merchandise := decimal.Zero
	for _, line := range lines {
		merchandise = merchandise.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	merchandise = merchandise.Round(2)

	shipping := decimal.Zero
	if merchandise.LessThanOrEqual(freeShippingThreshold) {
		shipping = shippingRates[method][destination]
	}

	tax := decimal.Zero
	if destination == enums.DestinationDomestic {
		tax = merchandise.Mul(domesticTaxRate).Round(2)
	}

	return Totals{
		Merchandise: merchandise,
		Shipping:    shipping,
		Tax:         tax,
		Total:       merchandise.Add(shipping).Add(tax),
	}, nil
}
