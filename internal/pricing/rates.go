package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jdclothing/storefront-backend/pkg/enums"
)

// Orders above this merchandise total ship for free.
var freeShippingThreshold = decimal.NewFromInt(500)

// Flat tax applied to domestic destinations only.
var domesticTaxRate = decimal.RequireFromString("0.05")

// shippingRates is the fixed rate table keyed by (method, destination).
// Every enumerated pairing has an entry.
var shippingRates = map[enums.ShippingMethod]map[enums.Destination]decimal.Decimal{
	enums.ShippingStandard: {
		enums.DestinationDomestic:      decimal.NewFromInt(10),
		enums.DestinationCrossBorder:   decimal.NewFromInt(15),
		enums.DestinationInternational: decimal.NewFromInt(20),
	},
	enums.ShippingExpress: {
		enums.DestinationDomestic:      decimal.NewFromInt(25),
		enums.DestinationCrossBorder:   decimal.NewFromInt(25),
		enums.DestinationInternational: decimal.NewFromInt(30),
	},
	enums.ShippingPriority: {
		enums.DestinationDomestic:      decimal.NewFromInt(35),
		enums.DestinationCrossBorder:   decimal.NewFromInt(50),
		enums.DestinationInternational: decimal.NewFromInt(50),
	},
}
