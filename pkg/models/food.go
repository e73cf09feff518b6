package models

import (
	"time"
)

// Food categories recognized by the catalog.
const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategoryDessert   = "dessert"
)

type FoodItem struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Rating      float64   `bson:"rating" json:"rating"`
	Image       string    `bson:"image" json:"image"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	IsAvailable bool      `bson:"isAvailable" json:"isAvailable"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
