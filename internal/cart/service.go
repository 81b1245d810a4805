package cart

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jdclothing/storefront-backend/internal/catalog"
	"github.com/jdclothing/storefront-backend/pkg/db/models"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
)

// productGetter is the slice of the catalog the cart needs: variant lookup
// for validation and price snapshotting.
type productGetter interface {
	Get(id string) (catalog.Product, bool)
}

// Service owns all cart mutations. Every operation addresses the cart by its
// token and returns the cart as persisted after the change.
type Service interface {
	Get(ctx context.Context, token string) (*models.Cart, error)
	AddItem(ctx context.Context, token string, in AddItemInput) (*models.Cart, error)
	QuickAdd(ctx context.Context, token string, productID string) (*models.Cart, error)
	SetQuantity(ctx context.Context, token string, index int, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, token string, index int) (*models.Cart, error)
	Clear(ctx context.Context, token string) (*models.Cart, error)
}

type service struct {
	repo     Repository
	products productGetter
	validate *validator.Validate
}

// NewService builds a cart service.
func NewService(repo Repository, products productGetter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product getter required")
	}
	return &service{
		repo:     repo,
		products: products,
		validate: validator.New(),
	}, nil
}

// TotalQuantity sums the quantities across all lines.
func TotalQuantity(cart *models.Cart) int {
	if cart == nil {
		return 0
	}
	total := 0
	for _, line := range cart.Lines {
		total += line.Quantity
	}
	return total
}

func (s *service) Get(ctx context.Context, token string) (*models.Cart, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token required")
	}
	cart, err := s.repo.FindOrCreateByToken(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading cart")
	}
	return cart, nil
}

// AddItem adds a variant to the cart, merging into an existing line when the
// same (product, color, size) is already present.
func (s *service) AddItem(ctx context.Context, token string, in AddItemInput) (*models.Cart, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid add request").
			WithDetails(err.Error())
	}

	product, ok := s.products.Get(in.ProductID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	if !product.HasColor(in.Color) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "color not offered for product").
			WithDetails(map[string]string{"color": in.Color})
	}
	if !product.HasSize(in.Size) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size not offered for product").
			WithDetails(map[string]string{"size": in.Size})
	}

	cart, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	lines := cart.Lines
	merged := false
	for i := range lines {
		if lines[i].ProductID == in.ProductID && lines[i].Color == in.Color && lines[i].Size == in.Size {
			lines[i].Quantity += in.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Color:     in.Color,
			Size:      in.Size,
			Quantity:  in.Quantity,
		})
	}

	return s.persist(ctx, cart, lines)
}

// QuickAdd adds one unit of the product's first color and size, matching the
// listing page's one-click add.
func (s *service) QuickAdd(ctx context.Context, token string, productID string) (*models.Cart, error) {
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product_id required")
	}
	product, ok := s.products.Get(productID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	return s.AddItem(ctx, token, AddItemInput{
		ProductID: productID,
		Color:     product.Colors[0].Name,
		Size:      product.Sizes[0],
		Quantity:  1,
	})
}

// SetQuantity replaces a line's quantity. A quantity below one removes the
// line entirely.
func (s *service) SetQuantity(ctx context.Context, token string, index int, quantity int) (*models.Cart, error) {
	cart, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart.Lines) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "line index out of range")
	}

	lines := cart.Lines
	if quantity < 1 {
		lines = append(lines[:index], lines[index+1:]...)
	} else {
		lines[index].Quantity = quantity
	}

	return s.persist(ctx, cart, lines)
}

// RemoveItem deletes the line at the index; remaining lines keep their order.
func (s *service) RemoveItem(ctx context.Context, token string, index int) (*models.Cart, error) {
	cart, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart.Lines) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "line index out of range")
	}

	lines := append(cart.Lines[:index], cart.Lines[index+1:]...)
	return s.persist(ctx, cart, lines)
}

// Clear empties the cart.
func (s *service) Clear(ctx context.Context, token string) (*models.Cart, error) {
	cart, err := s.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.persist(ctx, cart, nil)
}

// persist writes the line set and returns the cart as stored.
func (s *service) persist(ctx context.Context, cart *models.Cart, lines []models.CartLine) (*models.Cart, error) {
	if err := s.repo.ReplaceLines(ctx, cart.ID, lines); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "saving cart")
	}

	fresh, err := s.repo.FindOrCreateByToken(ctx, cart.Token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reloading cart")
	}
	return fresh, nil
}
