package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jdclothing/storefront-backend/internal/cart"
	"github.com/jdclothing/storefront-backend/internal/pricing"
	"github.com/jdclothing/storefront-backend/pkg/db/models"
	"github.com/jdclothing/storefront-backend/pkg/enums"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
	"github.com/jdclothing/storefront-backend/pkg/logger"
)

// Service prices carts and turns them into orders.
type Service interface {
	Quote(ctx context.Context, token string, in QuoteInput) (*Summary, error)
	Checkout(ctx context.Context, token string, in QuoteInput) (*Order, error)
}

type service struct {
	carts    cart.Service
	logg     *logger.Logger
	validate *validator.Validate
}

// NewService builds a checkout service over the cart service.
func NewService(carts cart.Service, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	return &service{
		carts:    carts,
		logg:     logg,
		validate: validator.New(),
	}, nil
}

// Quote prices the current cart under the chosen terms without changing it.
func (s *service) Quote(ctx context.Context, token string, in QuoteInput) (*Summary, error) {
	current, destination, method, err := s.load(ctx, token, in)
	if err != nil {
		return nil, err
	}

	totals, err := pricing.Quote(toPricingLines(current), destination, method)
	if err != nil {
		return nil, err
	}

	return &Summary{Items: cart.TotalQuantity(current), Totals: totals}, nil
}

// Checkout prices the cart, issues an order reference, and empties the cart.
// The demo has no payment step, so placing the order always succeeds once the
// cart and terms are valid.
func (s *service) Checkout(ctx context.Context, token string, in QuoteInput) (*Order, error) {
	current, destination, method, err := s.load(ctx, token, in)
	if err != nil {
		return nil, err
	}
	if len(current.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	totals, err := pricing.Quote(toPricingLines(current), destination, method)
	if err != nil {
		return nil, err
	}

	order := &Order{
		Reference:   uuid.NewString(),
		PlacedAt:    time.Now().UTC(),
		Items:       cart.TotalQuantity(current),
		Destination: destination.String(),
		Method:      method.String(),
		Totals:      totals,
	}

	if _, err := s.carts.Clear(ctx, token); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clearing cart after checkout")
	}

	if s.logg != nil {
		fields := map[string]any{
			"order_reference": order.Reference,
			"items":           order.Items,
			"total":           order.Totals.Total.String(),
		}
		s.logg.Info(s.logg.WithFields(ctx, fields), "order placed")
	}
	return order, nil
}

func (s *service) load(ctx context.Context, token string, in QuoteInput) (*models.Cart, enums.Destination, enums.ShippingMethod, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping terms").
			WithDetails(err.Error())
	}

	destination, err := enums.ParseDestination(in.Destination)
	if err != nil {
		return nil, "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid destination").
			WithDetails(err.Error())
	}
	method, err := enums.ParseShippingMethod(in.Method)
	if err != nil {
		return nil, "", "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping method").
			WithDetails(err.Error())
	}

	current, err := s.carts.Get(ctx, token)
	if err != nil {
		return nil, "", "", err
	}
	return current, destination, method, nil
}

func toPricingLines(c *models.Cart) []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, pricing.Line{Price: line.Price, Quantity: line.Quantity})
	}
	return lines
}
