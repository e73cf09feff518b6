package cart

import (
	"context"
	"sync"

	"github.com/example/homeli/pkg/models"
)

// MemoryStore keeps carts in a map, used by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryStore) Find(ctx context.Context, userID string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	cp.Items = append([]models.CartItem{}, c.Items...)
	return &cp, nil
}

func (s *MemoryStore) Save(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *cart
	cp.Items = append([]models.CartItem{}, cart.Items...)
	s.carts[cart.UserID] = cp
	return nil
}
