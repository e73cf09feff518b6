package models

import (
	"fmt"
	"time"
)

// Payment methods.
const (
	PaymentUPI  = "upi"
	PaymentCard = "card"
	PaymentCOD  = "cod"
)

// Payment statuses.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
)

// Order statuses. pending → confirmed → preparing → out_for_delivery →
// delivered, with a side-exit to cancelled from pending or confirmed.
const (
	OrderPending        = "pending"
	OrderConfirmed      = "confirmed"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

// EstimatedDeliveryWindow is added to the creation time to produce the ETA.
const EstimatedDeliveryWindow = 45 * time.Minute

// OrderItem is a snapshot of a cart line at checkout time, decoupled from
// the live cart.
type OrderItem struct {
	FoodItemID string  `bson:"foodItemId" json:"foodItemId"`
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Quantity   int     `bson:"quantity" json:"quantity"`
	Image      string  `bson:"image" json:"image"`
}

type Order struct {
	ID                    string      `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID                string      `bson:"userId,omitempty" json:"userId,omitempty"`
	CustomerName          string      `bson:"customerName" json:"customerName"`
	PhoneNumber           string      `bson:"phoneNumber" json:"phoneNumber"`
	DeliveryAddress       string      `bson:"deliveryAddress" json:"deliveryAddress"`
	Pincode               string      `bson:"pincode" json:"pincode"`
	Items                 []OrderItem `bson:"items" json:"items"`
	Subtotal              float64     `bson:"subtotal" json:"subtotal"`
	DeliveryCharge        float64     `bson:"deliveryCharge" json:"deliveryCharge"`
	TotalAmount           float64     `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod         string      `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus         string      `bson:"paymentStatus" json:"paymentStatus"`
	OrderStatus           string      `bson:"orderStatus" json:"orderStatus"`
	TransactionID         string      `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	UPIID                 string      `bson:"upiId,omitempty" json:"upiId,omitempty"`
	CardLast4             string      `bson:"cardLast4,omitempty" json:"cardLast4,omitempty"`
	OrderNumber           string      `bson:"orderNumber" json:"orderNumber"`
	EstimatedDeliveryTime time.Time   `bson:"estimatedDeliveryTime" json:"estimatedDeliveryTime"`
	DeliveredAt           *time.Time  `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CancelledAt           *time.Time  `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancellationReason    string      `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt             time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// CanCancel reports whether the order may still be cancelled; only orders
// that have not started preparation qualify.
func (o *Order) CanCancel() bool {
	return o.OrderStatus == OrderPending || o.OrderStatus == OrderConfirmed
}

// FormatOrderNumber renders the human-readable sequence number, e.g.
// FormatOrderNumber(7) == "ORD000007".
func FormatOrderNumber(seq int64) string {
	return fmt.Sprintf("ORD%06d", seq)
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentUPI, PaymentCard, PaymentCOD:
		return true
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
