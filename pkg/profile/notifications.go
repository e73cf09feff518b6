package profile

import (
	"context"
	"errors"
	"time"

	"github.com/example/homeli/pkg/models"
)

func (s *Service) Notifications(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.loadNotifications(ctx, userID)
}

// AddNotification prepends a new unread notification, newest first.
func (s *Service) AddNotification(ctx context.Context, userID string, n models.Notification) ([]models.Notification, error) {
	list, err := s.loadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	n.ID = s.newID()
	n.Timestamp = time.Now()
	n.Read = false
	list = append([]models.Notification{n}, list...)

	if err := s.kv.SetJSON(ctx, keyNotifications+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, userID, id string) ([]models.Notification, error) {
	list, err := s.loadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
		}
	}

	if err := s.kv.SetJSON(ctx, keyNotifications+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context, userID string) ([]models.Notification, error) {
	list, err := s.loadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].Read = true
	}

	if err := s.kv.SetJSON(ctx, keyNotifications+userID, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) ClearNotification(ctx context.Context, userID, id string) ([]models.Notification, error) {
	list, err := s.loadNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := list[:0]
	for _, n := range list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	if err := s.kv.SetJSON(ctx, keyNotifications+userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Service) ClearAllNotifications(ctx context.Context, userID string) error {
	return s.kv.SetJSON(ctx, keyNotifications+userID, []models.Notification{})
}

// UnreadCount is derived on read, never stored.
func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	list, err := s.loadNotifications(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *Service) loadNotifications(ctx context.Context, userID string) ([]models.Notification, error) {
	list := []models.Notification{}
	err := s.kv.GetJSON(ctx, keyNotifications+userID, &list)
	if err != nil && !errors.Is(err, s.notFound) {
		return nil, err
	}
	return list, nil
}
