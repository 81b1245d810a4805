package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdclothing/storefront-backend/pkg/db"
	"github.com/jdclothing/storefront-backend/pkg/db/models"
)

// Repository persists carts keyed by the client-held token.
type Repository interface {
	FindOrCreateByToken(ctx context.Context, token string) (*models.Cart, error)
	ReplaceLines(ctx context.Context, cartID uuid.UUID, lines []models.CartLine) error
}

type gormRepository struct {
	client *db.Client
}

// NewRepository builds a cart repository over the shared database client.
func NewRepository(client *db.Client) (Repository, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &gormRepository{client: client}, nil
}

// FindOrCreateByToken loads the cart for the token, creating an empty one on
// first sight. Lines come back in position order.
func (r *gormRepository) FindOrCreateByToken(ctx context.Context, token string) (*models.Cart, error) {
	var cart models.Cart
	err := r.client.DB().WithContext(ctx).
		Preload("Lines", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("token = ?", token).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loading cart: %w", err)
	}

	cart = models.Cart{ID: uuid.New(), Token: token, Lines: []models.CartLine{}}
	if err := r.client.DB().WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("creating cart: %w", err)
	}
	return &cart, nil
}

// ReplaceLines swaps the cart's entire line set atomically. Positions and ids
// are assigned here so callers only order the slice.
func (r *gormRepository) ReplaceLines(ctx context.Context, cartID uuid.UUID, lines []models.CartLine) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartLine{}).Error; err != nil {
			return fmt.Errorf("clearing cart lines: %w", err)
		}

		for i := range lines {
			if lines[i].ID == uuid.Nil {
				lines[i].ID = uuid.New()
			}
			lines[i].CartID = cartID
			lines[i].Position = i
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return fmt.Errorf("writing cart lines: %w", err)
			}
		}

		if err := tx.Model(&models.Cart{}).
			Where("id = ?", cartID).
			Update("updated_at", time.Now().UTC()).Error; err != nil {
			return fmt.Errorf("touching cart: %w", err)
		}
		return nil
	})
}
