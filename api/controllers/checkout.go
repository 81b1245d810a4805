package controllers

import (
	"context"
	"net/http"

	"github.com/jdclothing/storefront-backend/api/middleware"
	"github.com/jdclothing/storefront-backend/api/responses"
	"github.com/jdclothing/storefront-backend/api/validators"
	checkoutsvc "github.com/jdclothing/storefront-backend/internal/checkout"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
	"github.com/jdclothing/storefront-backend/pkg/logger"
)

// quoteService is the slice of the checkout service the cart quote endpoint
// needs.
type quoteService interface {
	Quote(ctx context.Context, token string, in checkoutsvc.QuoteInput) (*checkoutsvc.Summary, error)
}

func decodeQuoteInput(r *http.Request) (checkoutsvc.QuoteInput, error) {
	var payload checkoutsvc.QuoteInput
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return checkoutsvc.QuoteInput{}, err
	}
	return payload, nil
}

// Checkout places the order and empties the cart.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		payload, err := decodeQuoteInput(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), middleware.CartTokenFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
