// Package profile stores the per-user collections the mobile client keeps
// locally: addresses, favorites, notifications and saved payment methods.
// Each collection is one JSON list per user; every mutation rewrites the
// whole list (last write wins).
package profile

import (
	"context"
	"strconv"
	"time"
)

// KV is the persistence surface: whole-value JSON reads and writes.
// GetJSON returns ErrKeyNotFound (from the backing store) for keys never
// written; callers treat that as an empty collection.
type KV interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// Storage key prefixes, one collection each.
const (
	keyAddresses     = "addresses:"
	keyFavorites     = "favorites:"
	keyNotifications = "notifications:"
	keyCards         = "saved_cards:"
	keyUPIs          = "saved_upis:"
)

type Service struct {
	kv       KV
	notFound error
	newID    func() string
}

// NewService builds a profile service over kv. notFound is the sentinel kv
// returns for missing keys.
func NewService(kv KV, notFound error) *Service {
	return &Service{
		kv:       kv,
		notFound: notFound,
		newID:    timestampID,
	}
}

// WithIDGenerator overrides entry id generation, for tests.
func (s *Service) WithIDGenerator(fn func() string) *Service {
	s.newID = fn
	return s
}

// Entry ids are timestamp-derived strings, matching the client's
// Date.now() convention.
func timestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
