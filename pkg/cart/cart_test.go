package cart

import (
	"context"
	"testing"

	"github.com/example/homeli/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreatesEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store)

	c, err := svc.Get(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, "guest", c.UserID)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalAmount)

	// The lazily created cart is persisted, not ephemeral.
	persisted, err := store.Find(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, "guest", persisted.UserID)
}

func TestAddItemCreatesCartAndIncrements(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	item := models.CartItem{FoodItemID: "breakfast-2", Name: "Masala Dosa", Price: 55, Image: "breakfast/masaladosa.png"}

	c, err := svc.AddItem(ctx, "guest", item)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 55.0, c.TotalAmount)

	c, err = svc.AddItem(ctx, "guest", item)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 110.0, c.TotalAmount)
}

func TestSetQuantityMissingCart(t *testing.T) {
	svc := NewService(NewMemoryStore())
	_, err := svc.SetQuantity(context.Background(), "guest", "breakfast-2", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	_, err := svc.AddItem(ctx, "guest", models.CartItem{FoodItemID: "a", Name: "A", Price: 50})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "guest", models.CartItem{FoodItemID: "b", Name: "B", Price: 30})
	require.NoError(t, err)

	c, err := svc.RemoveItem(ctx, "guest", "a")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].FoodItemID)
	assert.Equal(t, 30.0, c.TotalAmount)

	// Removing from a user with no cart is an error.
	_, err = svc.RemoveItem(ctx, "someone-else", "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearMissingCartIsNoop(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store)

	c, err := svc.Clear(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalAmount)

	// Clearing must not create a cart document.
	_, err = store.Find(ctx, "guest")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearExistingCart(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	_, err := svc.AddItem(ctx, "guest", models.CartItem{FoodItemID: "a", Name: "A", Price: 50})
	require.NoError(t, err)

	c, err := svc.Clear(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalAmount)

	// The cart document survives, emptied.
	c, err = svc.Get(ctx, "guest")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
