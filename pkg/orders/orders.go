// Package orders implements the order lifecycle: creation with sequential
// order numbers, payment patches, status transitions and the cancellation
// guard.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/example/homeli/pkg/models"
)

var (
	// ErrNotFound is returned when no order exists for the given id.
	ErrNotFound = errors.New("order not found")
	// ErrNotCancellable is returned when cancellation is attempted after
	// the order has started preparation.
	ErrNotCancellable = errors.New("order cannot be cancelled at this stage")
)

// DefaultQueryLimit caps the phone and user history queries.
const DefaultQueryLimit = 50

// ListQuery selects a page of the admin order listing.
type ListQuery struct {
	Status string
	Page   int
	Limit  int
}

// PaymentPatch carries the payment fields settable after creation. Nil
// fields are left untouched. There is deliberately no state-machine guard
// on this path: any payment status can be written at any time.
type PaymentPatch struct {
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	TransactionID *string `json:"transactionId,omitempty"`
	UPIID         *string `json:"upiId,omitempty"`
	CardLast4     *string `json:"cardLast4,omitempty"`
}

// Store is the persistence surface for orders.
type Store interface {
	Insert(ctx context.Context, order *models.Order) (string, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	FindByPhone(ctx context.Context, phone string, limit int64) ([]models.Order, error)
	FindByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error)
	List(ctx context.Context, q ListQuery) ([]models.Order, int64, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithClock overrides the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create validates required fields, assigns the order number from the
// running count and stamps the estimated delivery time. The caller-supplied
// payment and order statuses are persisted as given.
//
// The count-then-insert sequence is not atomic; two racing creations can
// draw the same number. This mirrors the original contract.
func (s *Service) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := validateDraft(order); err != nil {
		return nil, err
	}

	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderPending
	}

	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	now := s.now()
	order.OrderNumber = models.FormatOrderNumber(count + 1)
	order.EstimatedDeliveryTime = now.Add(models.EstimatedDeliveryWindow)
	order.CreatedAt = now
	order.UpdatedAt = now

	id, err := s.store.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	order.ID = id
	return order, nil
}

// UpdatePayment merges the patch into the order. No guard: this is the
// settlement callback path of the simulated gateway.
func (s *Service) UpdatePayment(ctx context.Context, id string, patch PaymentPatch) (*models.Order, error) {
	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.PaymentStatus != nil {
		order.PaymentStatus = *patch.PaymentStatus
	}
	if patch.PaymentMethod != nil {
		order.PaymentMethod = *patch.PaymentMethod
	}
	if patch.TransactionID != nil {
		order.TransactionID = *patch.TransactionID
	}
	if patch.UPIID != nil {
		order.UPIID = *patch.UPIID
	}
	if patch.CardLast4 != nil {
		order.CardLast4 = *patch.CardLast4
	}
	order.UpdatedAt = s.now()

	if err := s.store.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the order status, stamping deliveredAt or cancelledAt
// when the new status is delivered or cancelled. The transition table is
// not enforced on this path; only Cancel guards it.
func (s *Service) UpdateStatus(ctx context.Context, id, status, cancellationReason string) (*models.Order, error) {
	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.OrderStatus = status
	if cancellationReason != "" {
		order.CancellationReason = cancellationReason
	}

	now := s.now()
	switch status {
	case models.OrderDelivered:
		order.DeliveredAt = &now
	case models.OrderCancelled:
		order.CancelledAt = &now
	}
	order.UpdatedAt = now

	if err := s.store.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel cancels the order if it is still pending or confirmed; later
// stages fail with ErrNotCancellable and leave the order untouched.
func (s *Service) Cancel(ctx context.Context, id, reason string) (*models.Order, error) {
	order, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.CanCancel() {
		return nil, ErrNotCancellable
	}

	now := s.now()
	order.OrderStatus = models.OrderCancelled
	order.CancelledAt = &now
	if reason == "" {
		reason = "No reason provided"
	}
	order.CancellationReason = reason
	order.UpdatedAt = now

	if err := s.store.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.store.FindByID(ctx, id)
}

// ByPhone returns the most recent orders placed with the phone number.
func (s *Service) ByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	return s.store.FindByPhone(ctx, phone, DefaultQueryLimit)
}

// ByUser returns the most recent orders placed by the user.
func (s *Service) ByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.store.FindByUser(ctx, userID, DefaultQueryLimit)
}

// List returns one page of the admin listing plus the total match count.
func (s *Service) List(ctx context.Context, q ListQuery) ([]models.Order, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 100
	}
	return s.store.List(ctx, q)
}

// ValidationError reports a draft order that fails schema-level checks.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validateDraft(o *models.Order) error {
	switch {
	case o.CustomerName == "":
		return &ValidationError{Reason: "customerName is required"}
	case o.PhoneNumber == "":
		return &ValidationError{Reason: "phoneNumber is required"}
	case o.DeliveryAddress == "":
		return &ValidationError{Reason: "deliveryAddress is required"}
	case o.Pincode == "":
		return &ValidationError{Reason: "pincode is required"}
	case len(o.Items) == 0:
		return &ValidationError{Reason: "items are required"}
	case o.Subtotal < 0:
		return &ValidationError{Reason: "subtotal must be non-negative"}
	case o.TotalAmount < 0:
		return &ValidationError{Reason: "totalAmount must be non-negative"}
	case !models.ValidPaymentMethod(o.PaymentMethod):
		return &ValidationError{Reason: "paymentMethod must be one of upi, card, cod"}
	}
	for _, it := range o.Items {
		if it.FoodItemID == "" || it.Name == "" || it.Quantity < 1 {
			return &ValidationError{Reason: "order items need foodItemId, name and quantity >= 1"}
		}
	}
	if o.OrderStatus != "" && !models.ValidOrderStatus(o.OrderStatus) {
		return &ValidationError{Reason: "invalid orderStatus"}
	}
	return nil
}
