package checkout

import (
	"time"

	"github.com/jdclothing/storefront-backend/internal/pricing"
)

// QuoteInput selects the shipping terms to price the cart against.
type QuoteInput struct {
	Destination string `json:"destination" validate:"required"`
	Method      string `json:"method" validate:"required"`
}

// Summary is a priced view of the cart under the chosen shipping terms.
type Summary struct {
	Items  int            `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

// Order is the receipt returned when checkout completes.
type Order struct {
	Reference   string         `json:"reference"`
	PlacedAt    time.Time      `json:"placed_at"`
	Items       int            `json:"items"`
	Destination string         `json:"destination"`
	Method      string         `json:"method"`
	Totals      pricing.Totals `json:"totals"`
}
