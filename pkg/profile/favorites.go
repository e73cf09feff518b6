package profile

import (
	"context"
	"errors"

	"github.com/example/homeli/pkg/models"
)

func (s *Service) Favorites(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	return s.loadFavorites(ctx, userID)
}

// ToggleFavorite removes the item when already present, otherwise prepends
// it. The second return value reports whether the item is a favorite after
// the toggle.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, item models.FavoriteItem) ([]models.FavoriteItem, bool, error) {
	list, err := s.loadFavorites(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	present := false
	kept := make([]models.FavoriteItem, 0, len(list))
	for _, f := range list {
		if f.ID == item.ID {
			present = true
			continue
		}
		kept = append(kept, f)
	}
	if !present {
		kept = append([]models.FavoriteItem{item}, kept...)
	}

	if err := s.kv.SetJSON(ctx, keyFavorites+userID, kept); err != nil {
		return nil, false, err
	}
	return kept, !present, nil
}

func (s *Service) IsFavorite(ctx context.Context, userID, itemID string) (bool, error) {
	list, err := s.loadFavorites(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, f := range list {
		if f.ID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) loadFavorites(ctx context.Context, userID string) ([]models.FavoriteItem, error) {
	list := []models.FavoriteItem{}
	err := s.kv.GetJSON(ctx, keyFavorites+userID, &list)
	if err != nil && !errors.Is(err, s.notFound) {
		return nil, err
	}
	return list, nil
}
