package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdclothing/storefront-backend/internal/catalog"
	"github.com/jdclothing/storefront-backend/pkg/db/models"
	"github.com/jdclothing/storefront-backend/pkg/enums"
	pkgerrors "github.com/jdclothing/storefront-backend/pkg/errors"
)

// memoryRepository keeps carts in a map so service tests run without a
// database.
type memoryRepository struct {
	carts map[string]*models.Cart
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{carts: map[string]*models.Cart{}}
}

func (m *memoryRepository) FindOrCreateByToken(_ context.Context, token string) (*models.Cart, error) {
	if cart, ok := m.carts[token]; ok {
		copied := *cart
		copied.Lines = append([]models.CartLine(nil), cart.Lines...)
		return &copied, nil
	}
	cart := &models.Cart{ID: uuid.New(), Token: token, Lines: []models.CartLine{}}
	m.carts[token] = cart
	copied := *cart
	return &copied, nil
}

func (m *memoryRepository) ReplaceLines(_ context.Context, cartID uuid.UUID, lines []models.CartLine) error {
	for _, cart := range m.carts {
		if cart.ID != cartID {
			continue
		}
		stored := make([]models.CartLine, len(lines))
		for i, line := range lines {
			if line.ID == uuid.Nil {
				line.ID = uuid.New()
			}
			line.CartID = cartID
			line.Position = i
			stored[i] = line
		}
		cart.Lines = stored
		return nil
	}
	return nil
}

func testProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:       "hoodie-01",
			Name:     "Fleece Hoodie",
			Gender:   enums.GenderMens,
			Category: "hoodies",
			Price:    decimal.RequireFromString("29.99"),
			Image:    "hoodie.jpg",
			Colors:   []catalog.ColorVariant{{Name: "black", Hex: "#000"}, {Name: "grey", Hex: "#888"}},
			Sizes:    []string{"s", "m", "l"},
		},
		{
			ID:       "tee-01",
			Name:     "Logo Tee",
			Gender:   enums.GenderWomens,
			Category: "tees",
			Price:    decimal.RequireFromString("19.50"),
			Image:    "tee.jpg",
			Colors:   []catalog.ColorVariant{{Name: "white", Hex: "#fff"}},
			Sizes:    []string{"m"},
		},
	}
}

func newTestService(t *testing.T) Service {
	t.Helper()
	store := catalog.NewStore()
	store.Replace(testProducts())

	svc, err := NewService(newMemoryRepository(), store)
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestAddItemCreatesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "tok-1", AddItemInput{
		ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}
	line := cart.Lines[0]
	if line.ProductID != "hoodie-01" || line.Quantity != 2 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if !line.Price.Equal(decimal.RequireFromString("29.99")) {
		t.Fatalf("expected snapshotted price, got %s", line.Price)
	}
	if line.Name != "Fleece Hoodie" || line.Image != "hoodie.jpg" {
		t.Fatalf("expected name and image snapshot, got %+v", line)
	}
}

func TestAddItemMergesSameVariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in := AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 1}
	if _, err := svc.AddItem(ctx, "tok-1", in); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := svc.AddItem(ctx, "tok-1", in)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Lines[0].Quantity)
	}
}

func TestAddItemDifferentSizeIsNewLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 1}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "l", Quantity: 1})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Position != 0 || cart.Lines[1].Position != 1 {
		t.Fatalf("expected dense positions, got %d and %d", cart.Lines[0].Position, cart.Lines[1].Position)
	}
}

func TestAddItemRejectsUnknownVariant(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "purple", Size: "m", Quantity: 1})
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for color, got %v", err)
	}

	_, err = svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "xxl", Quantity: 1})
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for size, got %v", err)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem(context.Background(), "tok-1", AddItemInput{ProductID: "nope", Color: "black", Size: "m", Quantity: 1})
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuickAddUsesFirstVariant(t *testing.T) {
	svc := newTestService(t)

	cart, err := svc.QuickAdd(context.Background(), "tok-1", "hoodie-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}
	line := cart.Lines[0]
	if line.Color != "black" || line.Size != "s" || line.Quantity != 1 {
		t.Fatalf("expected first variant with quantity 1, got %+v", line)
	}
}

func TestSetQuantityBelowOneRemovesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 3}); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := svc.SetQuantity(ctx, "tok-1", 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := svc.SetQuantity(ctx, "tok-1", 0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Lines[0].Quantity)
	}
}

func TestSetQuantityIndexOutOfRange(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SetQuantity(context.Background(), "tok-1", 3, 1)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRemoveItemReindexesRemainingLines(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "tee-01", Color: "white", Size: "m", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := svc.RemoveItem(ctx, "tok-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].ProductID != "tee-01" || cart.Lines[0].Position != 0 {
		t.Fatalf("expected tee at position 0, got %+v", cart.Lines[0])
	}
}

func TestClearEmptiesCart(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-1", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := svc.Clear(ctx, "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
}

func TestTotalQuantity(t *testing.T) {
	cart := &models.Cart{Lines: []models.CartLine{{Quantity: 2}, {Quantity: 3}}}
	if got := TotalQuantity(cart); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := TotalQuantity(nil); got != 0 {
		t.Fatalf("expected 0 for nil cart, got %d", got)
	}
}

func TestCartsAreIsolatedByToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok-a", AddItemInput{ProductID: "hoodie-01", Color: "black", Size: "m", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	other, err := svc.Get(ctx, "tok-b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other.Lines) != 0 {
		t.Fatalf("expected empty cart for other token, got %d lines", len(other.Lines))
	}
}
