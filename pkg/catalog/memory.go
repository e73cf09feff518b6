package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/example/homeli/pkg/models"
)

// MemoryStore is an in-process Store used by tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	items []models.FoodItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List(ctx context.Context, q Query) ([]models.FoodItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.FoodItem{}
	for _, item := range s.items {
		if !item.IsAvailable {
			continue
		}
		if q.Category != "" && q.Category != "more" && item.Category != strings.ToLower(q.Category) {
			continue
		}
		if q.Search != "" && !matches(item, q.Search) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out, nil
}

func (s *MemoryStore) ReplaceAll(ctx context.Context, items []models.FoodItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.FoodItem{}, items...)
	return nil
}

func matches(item models.FoodItem, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Category), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}
