package profile

import (
	"context"
	"errors"

	"github.com/example/homeli/pkg/models"
)

// ErrEntryNotFound is returned when an id does not exist in a collection.
var ErrEntryNotFound = errors.New("entry not found")

// AddressUpdate is a partial update; nil fields are left untouched.
type AddressUpdate struct {
	Type      *string `json:"type,omitempty"`
	Address   *string `json:"address,omitempty"`
	Pincode   *string `json:"pincode,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

func (s *Service) Addresses(ctx context.Context, userID string) ([]models.Address, error) {
	return s.loadAddresses(ctx, userID)
}

// AddAddress appends a new address with a generated id. When the new entry
// is marked default, the default flag is cleared from all siblings in the
// same write.
func (s *Service) AddAddress(ctx context.Context, userID string, addr models.Address) ([]models.Address, error) {
	list, err := s.loadAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	addr.ID = s.newID()
	list = append(list, addr)
	if addr.IsDefault {
		for i := range list {
			list[i].IsDefault = list[i].ID == addr.ID
		}
	}

	if err := s.kv.SetJSON(ctx, keyAddresses+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) UpdateAddress(ctx context.Context, userID, id string, upd AddressUpdate) ([]models.Address, error) {
	list, err := s.loadAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range list {
		if list[i].ID != id {
			continue
		}
		found = true
		if upd.Type != nil {
			list[i].Type = *upd.Type
		}
		if upd.Address != nil {
			list[i].Address = *upd.Address
		}
		if upd.Pincode != nil {
			list[i].Pincode = *upd.Pincode
		}
		if upd.IsDefault != nil {
			list[i].IsDefault = *upd.IsDefault
		}
	}
	if !found {
		return nil, ErrEntryNotFound
	}

	// Becoming the default demotes every other entry.
	if upd.IsDefault != nil && *upd.IsDefault {
		for i := range list {
			list[i].IsDefault = list[i].ID == id
		}
	}

	if err := s.kv.SetJSON(ctx, keyAddresses+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteAddress removes the entry; when the removed entry was the default
// and others remain, the first remaining entry is promoted.
func (s *Service) DeleteAddress(ctx context.Context, userID, id string) ([]models.Address, error) {
	list, err := s.loadAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	wasDefault := false
	kept := list[:0]
	for _, a := range list {
		if a.ID == id {
			wasDefault = a.IsDefault
			continue
		}
		kept = append(kept, a)
	}
	if wasDefault && len(kept) > 0 {
		kept[0].IsDefault = true
	}

	if err := s.kv.SetJSON(ctx, keyAddresses+userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// SetDefaultAddress makes id the single default entry.
func (s *Service) SetDefaultAddress(ctx context.Context, userID, id string) ([]models.Address, error) {
	list, err := s.loadAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].IsDefault = list[i].ID == id
	}

	if err := s.kv.SetJSON(ctx, keyAddresses+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) loadAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	list := []models.Address{}
	err := s.kv.GetJSON(ctx, keyAddresses+userID, &list)
	if err != nil && !errors.Is(err, s.notFound) {
		return nil, err
	}
	return list, nil
}
