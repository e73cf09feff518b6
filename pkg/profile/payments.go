package profile

import (
	"context"
	"errors"

	"github.com/example/homeli/pkg/models"
)

func (s *Service) Cards(ctx context.Context, userID string) ([]models.SavedCard, error) {
	return s.loadCards(ctx, userID)
}

func (s *Service) AddCard(ctx context.Context, userID string, card models.SavedCard) ([]models.SavedCard, error) {
	list, err := s.loadCards(ctx, userID)
	if err != nil {
		return nil, err
	}

	card.ID = s.newID()
	list = append(list, card)
	if card.IsDefault {
		for i := range list {
			list[i].IsDefault = list[i].ID == card.ID
		}
	}

	if err := s.kv.SetJSON(ctx, keyCards+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) DeleteCard(ctx context.Context, userID, id string) ([]models.SavedCard, error) {
	list, err := s.loadCards(ctx, userID)
	if err != nil {
		return nil, err
	}

	wasDefault := false
	kept := list[:0]
	for _, c := range list {
		if c.ID == id {
			wasDefault = c.IsDefault
			continue
		}
		kept = append(kept, c)
	}
	if wasDefault && len(kept) > 0 {
		kept[0].IsDefault = true
	}

	if err := s.kv.SetJSON(ctx, keyCards+userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) SetDefaultCard(ctx context.Context, userID, id string) ([]models.SavedCard, error) {
	list, err := s.loadCards(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].IsDefault = list[i].ID == id
	}

	if err := s.kv.SetJSON(ctx, keyCards+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) UPIs(ctx context.Context, userID string) ([]models.SavedUPI, error) {
	return s.loadUPIs(ctx, userID)
}

func (s *Service) AddUPI(ctx context.Context, userID string, upi models.SavedUPI) ([]models.SavedUPI, error) {
	list, err := s.loadUPIs(ctx, userID)
	if err != nil {
		return nil, err
	}

	upi.ID = s.newID()
	list = append(list, upi)
	if upi.IsDefault {
		for i := range list {
			list[i].IsDefault = list[i].ID == upi.ID
		}
	}

	if err := s.kv.SetJSON(ctx, keyUPIs+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) DeleteUPI(ctx context.Context, userID, id string) ([]models.SavedUPI, error) {
	list, err := s.loadUPIs(ctx, userID)
	if err != nil {
		return nil, err
	}

	wasDefault := false
	kept := list[:0]
	for _, u := range list {
		if u.ID == id {
			wasDefault = u.IsDefault
			continue
		}
		kept = append(kept, u)
	}
	if wasDefault && len(kept) > 0 {
		kept[0].IsDefault = true
	}

	if err := s.kv.SetJSON(ctx, keyUPIs+userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) SetDefaultUPI(ctx context.Context, userID, id string) ([]models.SavedUPI, error) {
	list, err := s.loadUPIs(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].IsDefault = list[i].ID == id
	}

	if err := s.kv.SetJSON(ctx, keyUPIs+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) loadCards(ctx context.Context, userID string) ([]models.SavedCard, error) {
	list := []models.SavedCard{}
	err := s.kv.GetJSON(ctx, keyCards+userID, &list)
	if err != nil && !errors.Is(err, s.notFound) {
		return nil, err
	}
	return list, nil
}

func (s *Service) loadUPIs(ctx context.Context, userID string) ([]models.SavedUPI, error) {
	list := []models.SavedUPI{}
	err := s.kv.GetJSON(ctx, keyUPIs+userID, &list)
	if err != nil && !errors.Is(err, s.notFound) {
		return nil, err
	}
	return list, nil
}
