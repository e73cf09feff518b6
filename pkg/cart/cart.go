// Package cart implements the per-user cart: a single document of line
// items with a denormalized total recomputed on every mutation.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/example/homeli/pkg/models"
)

// ErrNotFound is returned when no cart document exists for a user.
var ErrNotFound = errors.New("cart not found")

// Store is the persistence surface for carts, keyed by user id.
type Store interface {
	// Find returns the user's cart or ErrNotFound.
	Find(ctx context.Context, userID string) (*models.Cart, error)
	// Save upserts the cart keyed by its UserID.
	Save(ctx context.Context, cart *models.Cart) error
}

// Service applies cart mutations. Every mutation persists the whole
// document and returns the full updated cart, never a partial diff.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := s.store.Find(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		c = models.NewCart(userID)
		if err := s.store.Save(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AddItem adds one unit of the item, creating the cart if needed.
func (s *Service) AddItem(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	c, err := s.store.Find(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		c = models.NewCart(userID)
	} else if err != nil {
		return nil, err
	}

	c.AddItem(item)
	c.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity sets a line's quantity; zero or below removes the line.
// An absent line is a silent no-op, an absent cart is ErrNotFound.
func (s *Service) SetQuantity(ctx context.Context, userID, foodItemID string, quantity int) (*models.Cart, error) {
	c, err := s.store.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.SetQuantity(foodItemID, quantity)
	c.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem drops a line from the cart. An absent cart is ErrNotFound.
func (s *Service) RemoveItem(ctx context.Context, userID, foodItemID string) (*models.Cart, error) {
	c, err := s.store.Find(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(foodItemID)
	c.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart. Clearing a cart that was never created succeeds
// and reports an already-empty cart.
func (s *Service) Clear(ctx context.Context, userID string) (*models.Cart, error) {
	c, err := s.store.Find(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return models.NewCart(userID), nil
	}
	if err != nil {
		return nil, err
	}

	c.Clear()
	c.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
