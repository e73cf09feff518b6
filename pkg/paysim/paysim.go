// Package paysim simulates the payment gateway for upi and card orders:
// a fixed settlement delay, a biased coin, then a single unguarded payment
// patch. There is no retry, no idempotency key and no reconciliation; if
// the process dies mid-flight the order stays in processing forever.
package paysim

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/example/homeli/pkg/models"
	"github.com/example/homeli/pkg/orders"
	"github.com/example/homeli/pkg/profile"
	"go.uber.org/zap"
)

// SettlePayment asks the simulator to settle one order.
type SettlePayment struct {
	OrderID     string
	OrderNumber string
	UserID      string
	Method      string // upi or card
	UPIID       string
	CardLast4   string
	Amount      float64
}

// Processor holds the settlement logic, separate from the actor so tests
// can drive it synchronously.
type Processor struct {
	orders      *orders.Service
	profile     *profile.Service
	logger      *zap.Logger
	delay       time.Duration
	failureRate float64
	rand        func() float64
}

func NewProcessor(ordersSvc *orders.Service, profileSvc *profile.Service, logger *zap.Logger, delay time.Duration, failureRate float64) *Processor {
	return &Processor{
		orders:      ordersSvc,
		profile:     profileSvc,
		logger:      logger,
		delay:       delay,
		failureRate: failureRate,
		rand:        rand.Float64,
	}
}

// WithRand overrides the coin flip source, for tests.
func (p *Processor) WithRand(fn func() float64) *Processor {
	p.rand = fn
	return p
}

// Process waits the settlement delay, flips the coin and writes the
// outcome. It runs detached from the originating request, so the order is
// mutated even if the caller has long since moved on.
func (p *Processor) Process(msg *SettlePayment) {
	time.Sleep(p.delay)

	ctx := context.Background()
	if p.rand() < p.failureRate {
		failed := models.PaymentFailed
		if _, err := p.orders.UpdatePayment(ctx, msg.OrderID, orders.PaymentPatch{PaymentStatus: &failed}); err != nil {
			p.logger.Error("Failed to record payment failure",
				zap.String("order_id", msg.OrderID), zap.Error(err))
			return
		}
		p.logger.Info("Payment failed",
			zap.String("order_id", msg.OrderID),
			zap.String("order_number", msg.OrderNumber))
		return
	}

	completed := models.PaymentCompleted
	txn := transactionID(msg.Method)
	patch := orders.PaymentPatch{
		PaymentStatus: &completed,
		TransactionID: &txn,
	}
	if msg.UPIID != "" {
		patch.UPIID = &msg.UPIID
	}
	if msg.CardLast4 != "" {
		patch.CardLast4 = &msg.CardLast4
	}

	if _, err := p.orders.UpdatePayment(ctx, msg.OrderID, patch); err != nil {
		p.logger.Error("Failed to record payment success",
			zap.String("order_id", msg.OrderID), zap.Error(err))
		return
	}

	_, err := p.profile.AddNotification(ctx, msg.UserID, models.Notification{
		Type:        models.NotificationOrder,
		OrderID:     msg.OrderID,
		OrderNumber: msg.OrderNumber,
		Message:     fmt.Sprintf("Payment successful! Your order #%s has been confirmed.", msg.OrderNumber),
		Status:      models.OrderConfirmed,
	})
	if err != nil {
		p.logger.Warn("Failed to add payment notification",
			zap.String("order_id", msg.OrderID), zap.Error(err))
	}

	p.logger.Info("Payment completed",
		zap.String("order_id", msg.OrderID),
		zap.String("order_number", msg.OrderNumber),
		zap.String("transaction_id", txn))
}

func transactionID(method string) string {
	return fmt.Sprintf("%s%d", strings.ToUpper(method), time.Now().UnixMilli())
}
