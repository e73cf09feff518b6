package models

import (
	"time"
)

// CartItem is one line in a cart: a food item, its unit price and quantity.
type CartItem struct {
	FoodItemID string  `bson:"foodItemId" json:"foodItemId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Image      string  `bson:"image" json:"image"`
}

// Cart holds a user's pending line items. TotalAmount is denormalized and
// recomputed inside every mutation; a caller-supplied total is never trusted.
type Cart struct {
	ID          string     `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID      string     `bson:"userId" json:"userId"`
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount float64    `bson:"totalAmount" json:"totalAmount"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

func NewCart(userID string) *Cart {
	now := time.Now()
	return &Cart{
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem increments the quantity of an existing line or appends a new one
// with quantity 1, then recomputes the total.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].FoodItemID == item.FoodItemID {
			c.Items[i].Quantity++
			c.recompute()
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
	c.recompute()
}

// SetQuantity sets the quantity of a line, removing it when quantity drops
// to zero or below. Absent lines are left alone.
func (c *Cart) SetQuantity(foodItemID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].FoodItemID != foodItemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = quantity
		}
		break
	}
	c.recompute()
}

// RemoveItem drops the line for the given food item if present.
func (c *Cart) RemoveItem(foodItemID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.FoodItemID != foodItemID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.recompute()
}

// Clear empties the cart and zeroes the total.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.TotalAmount = 0
}

func (c *Cart) recompute() {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	c.TotalAmount = total
}
