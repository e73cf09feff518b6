// Package catalog exposes the food menu: a read-mostly collection queried
// by category and free-text search, repopulated only by the bulk seed.
package catalog

import (
	"context"

	"github.com/example/homeli/pkg/models"
)

// Query filters a catalog listing. A Category of "more" (the client's
// catch-all tab) means no category filter.
type Query struct {
	Category string
	Search   string
}

// Store is the persistence surface for the catalog.
type Store interface {
	// List returns available items matching the query, highest rated first.
	List(ctx context.Context, q Query) ([]models.FoodItem, error)
	// ReplaceAll drops every item and inserts the given set.
	ReplaceAll(ctx context.Context, items []models.FoodItem) error
}
