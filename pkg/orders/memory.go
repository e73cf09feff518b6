package orders

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/example/homeli/pkg/models"
)

// MemoryStore keeps orders in insertion order, used by tests.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []models.Order
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(ctx context.Context, order *models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	order.ID = fmt.Sprintf("order-%d", s.nextID)
	s.orders = append(s.orders, cloneOrder(order))
	return order.ID, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.orders)), nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := cloneOrder(&s.orders[i])
			return &o, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Update(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = cloneOrder(order)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) FindByPhone(ctx context.Context, phone string, limit int64) ([]models.Order, error) {
	return s.filter(func(o *models.Order) bool { return o.PhoneNumber == phone }, limit), nil
}

func (s *MemoryStore) FindByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error) {
	return s.filter(func(o *models.Order) bool { return o.UserID == userID }, limit), nil
}

func (s *MemoryStore) List(ctx context.Context, q ListQuery) ([]models.Order, int64, error) {
	matching := s.filter(func(o *models.Order) bool {
		return q.Status == "" || o.OrderStatus == q.Status
	}, int64(len(s.orders)))

	total := int64(len(matching))
	start := (q.Page - 1) * q.Limit
	if start >= len(matching) {
		return []models.Order{}, total, nil
	}
	end := start + q.Limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end], total, nil
}

func (s *MemoryStore) filter(keep func(*models.Order) bool, limit int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Order{}
	for i := range s.orders {
		if keep(&s.orders[i]) {
			out = append(out, cloneOrder(&s.orders[i]))
		}
	}
	// Most recent first, matching the mongo sort on createdAt.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func cloneOrder(o *models.Order) models.Order {
	cp := *o
	cp.Items = append([]models.OrderItem{}, o.Items...)
	if o.DeliveredAt != nil {
		t := *o.DeliveredAt
		cp.DeliveredAt = &t
	}
	if o.CancelledAt != nil {
		t := *o.CancelledAt
		cp.CancelledAt = &t
	}
	return cp
}
