package models

import (
	"time"
)

// Profile collections mirror what the mobile client keeps in local storage:
// flat lists keyed by a timestamp-derived id. Collections with an isDefault
// flag allow at most one default entry at a time.

type Address struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

// Card types accepted for saved cards.
const (
	CardVisa       = "visa"
	CardMastercard = "mastercard"
	CardRupay      = "rupay"
	CardAmex       = "amex"
)

// SavedCard stores display metadata only; CardNumber carries the last 4
// digits, never the full PAN.
type SavedCard struct {
	ID         string `json:"id"`
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	CardType   string `json:"cardType"`
	IsDefault  bool   `json:"isDefault"`
}

type SavedUPI struct {
	ID        string `json:"id"`
	UPIID     string `json:"upiId"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
}

type FavoriteItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Notification kinds.
const (
	NotificationOrder        = "order"
	NotificationStatusUpdate = "status_update"
	NotificationAdminMessage = "admin_message"
	NotificationPromotional  = "promotional"
)

type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"orderId,omitempty"`
	OrderNumber string    `json:"orderNumber,omitempty"`
	Message     string    `json:"message"`
	Status      string    `json:"status,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
}
