package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jdclothing/storefront-backend/api/middleware"
	"github.com/jdclothing/storefront-backend/api/responses"
	"github.com/jdclothing/storefront-backend/api/validators"
	cartsvc "github.com/jdclothing/storefront-backend/internal/cart"
	"github.com/jdclothing/storefront-backend/pkg/db/models"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
	"github.com/jdclothing/storefront-backend/pkg/logger"
)

// CartLineView is one cart line as served to clients. Index is the stable
// handle used by the quantity and removal endpoints.
type CartLineView struct {
	Index     int             `json:"index"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the full cart payload.
type CartView struct {
	Token         string          `json:"token"`
	Lines         []CartLineView  `json:"lines"`
	TotalQuantity int             `json:"total_quantity"`
	Merchandise   decimal.Decimal `json:"merchandise"`
}

func newCartView(cart *models.Cart) CartView {
	lines := make([]CartLineView, 0, len(cart.Lines))
	merchandise := decimal.Zero
	for _, line := range cart.Lines {
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		merchandise = merchandise.Add(lineTotal)
		lines = append(lines, CartLineView{
			Index:     line.Position,
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
	}

	return CartView{
		Token:         cart.Token,
		Lines:         lines,
		TotalQuantity: cartsvc.TotalQuantity(cart),
		Merchandise:   merchandise.Round(2),
	}
}

// CartFetch serves the caller's cart, creating it on first contact.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := svc.Get(r.Context(), middleware.CartTokenFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(cart))
	}
}

// CartAddLine adds a variant to the cart. A missing or non-positive quantity
// is treated as one, matching the storefront's add buttons.
func CartAddLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ProductID string `json:"product_id" validate:"required"`
			Color     string `json:"color" validate:"required"`
			Size      string `json:"size" validate:"required"`
			Quantity  int    `json:"quantity"`
		}
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Quantity < 1 {
			payload.Quantity = 1
		}

		cart, err := svc.AddItem(r.Context(), middleware.CartTokenFromContext(r.Context()), cartsvc.AddItemInput{
			ProductID: payload.ProductID,
			Color:     payload.Color,
			Size:      payload.Size,
			Quantity:  payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(cart))
	}
}

// CartQuickAdd adds one unit of a product's default variant.
func CartQuickAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartsvc.QuickAddInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.QuickAdd(r.Context(), middleware.CartTokenFromContext(r.Context()), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, newCartView(cart))
	}
}

// CartSetQuantity replaces one line's quantity; zero or less removes it.
func CartSetQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := validators.ParseLineIndex(chi.URLParam(r, "index"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartsvc.SetQuantityInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.SetQuantity(r.Context(), middleware.CartTokenFromContext(r.Context()), index, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(cart))
	}
}

// CartRemoveLine deletes one line.
func CartRemoveLine(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, err := validators.ParseLineIndex(chi.URLParam(r, "index"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.RemoveItem(r.Context(), middleware.CartTokenFromContext(r.Context()), index)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(cart))
	}
}

// CartQuote prices the cart under the requested shipping terms.
func CartQuote(svc quoteService, logg *logger.Logger) http.HandlerFunc {
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

		summary, err := svc.Quote(r.Context(), middleware.CartTokenFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}
