package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64) CartItem {
	return CartItem{FoodItemID: id, Name: "item " + id, Price: price, Image: id + ".png"}
}

func TestCartTotalInvariant(t *testing.T) {
	c := NewCart("guest")

	c.AddItem(item("a", 50))
	c.AddItem(item("b", 30))
	c.AddItem(item("a", 50))
	c.SetQuantity("b", 4)
	c.RemoveItem("a")

	var want float64
	for _, it := range c.Items {
		want += it.Price * float64(it.Quantity)
	}
	assert.Equal(t, want, c.TotalAmount)
	assert.Equal(t, 120.0, c.TotalAmount)
}

func TestCartAddSameItemTwice(t *testing.T) {
	c := NewCart("guest")

	c.AddItem(item("a", 50))
	c.AddItem(item("a", 50))

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 100.0, c.TotalAmount)

	c.SetQuantity("a", 0)

	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalAmount)
}

func TestCartSetQuantity(t *testing.T) {
	c := NewCart("guest")
	c.AddItem(item("a", 10))
	c.AddItem(item("b", 20))

	c.SetQuantity("a", 3)
	assert.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 50.0, c.TotalAmount)

	// Zero and below remove the line without touching others.
	c.SetQuantity("a", -1)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].FoodItemID)
	assert.Equal(t, 20.0, c.TotalAmount)

	// Absent lines are a silent no-op.
	c.SetQuantity("missing", 5)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 20.0, c.TotalAmount)
}

func TestCartClear(t *testing.T) {
	c := NewCart("guest")
	c.AddItem(item("a", 10))
	c.Clear()

	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.TotalAmount)
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD000001", FormatOrderNumber(1))
	assert.Equal(t, "ORD000042", FormatOrderNumber(42))
	assert.Equal(t, "ORD123456", FormatOrderNumber(123456))
}

func TestCanCancel(t *testing.T) {
	cases := map[string]bool{
		OrderPending:        true,
		OrderConfirmed:      true,
		OrderPreparing:      false,
		OrderOutForDelivery: false,
		OrderDelivered:      false,
		OrderCancelled:      false,
	}
	for status, want := range cases {
		o := Order{OrderStatus: status}
		assert.Equal(t, want, o.CanCancel(), "status %s", status)
	}
}
