package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SimPaypl/simpay-payment-gateway/internal/metrics"
	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrMissingTransactionID = errors.New("missing transaction id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// OrderStore defines the persistence operations the reconciliation logic
// needs from the order database.
type OrderStore interface {
	// FindByID returns nil without error when no order has the id; errors
	// mean the store itself failed.
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	// FindByTransactionID returns the most recent order carrying the given
	// SimPay transaction id, or nil when none matches.
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Order, error)
	Save(ctx context.Context, order *models.Order) error
	AddNote(ctx context.Context, orderID uint, note string) error
	Refunds(ctx context.Context, orderID uint) ([]models.Refund, error)
	CreateRefund(ctx context.Context, refund *models.Refund) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// OrderService applies validated IPN events to order and refund state.
// Every handler is idempotent: SimPay delivers at least once and may replay
// or reorder notifications, so a repeated event must never re-apply an
// already-applied transition.
type OrderService struct {
	Store     OrderStore
	Publisher Publisher
}

func NewOrderService(store OrderStore, publisher Publisher) *OrderService {
	return &OrderService{
		Store:     store,
		Publisher: publisher,
	}
}

// HandleTransactionStatusChanged marks an order as paid on a
// "transaction_paid" status. Gates, in order: status, control resolves to an
// order, order not already paid, transaction id present, paid amount covers
// the order total. A shortfall rejects the payment and annotates the order;
// overpayment is accepted as is.
func (s *OrderService) HandleTransactionStatusChanged(ctx context.Context, data models.TransactionEventData) error {
	if data.Status != models.StatusTransactionPaid {
		logrus.Infof("Transaction status changed: %s", data.Status)
		return nil
	}

	orderID := parseOrderID(data.Control)
	if orderID == 0 {
		logrus.Warn("Transaction event without order control field")
		return nil
	}

	order, err := s.Store.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("error loading order #%d: %w", orderID, err)
	}
	if order == nil {
		return fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}

	// Idempotency gate: a replayed delivery of an already-confirmed payment
	// must not mutate the order again.
	if order.IsPaid() {
		logrus.Infof("Order #%d already processed", orderID)
		return nil
	}

	if data.ID == "" {
		logrus.Errorf("Order #%d cannot be processed, transaction id missing", orderID)
		return ErrMissingTransactionID
	}

	paidAmount := data.Amount.FinalValue
	if paidAmount < order.Total {
		note := fmt.Sprintf(
			"SimPay: Invalid payment amount. Expected %v %s, got %v %s.",
			order.Total, order.Currency, paidAmount, data.Amount.FinalCurrency,
		)
		if err := s.Store.AddNote(ctx, order.ID, note); err != nil {
			logrus.Errorf("Error adding order note: %s", err.Error())
		}
		return ErrInvalidPaymentAmount
	}

	order.MarkPaid(data.ID)
	if err := s.Store.Save(ctx, order); err != nil {
		return fmt.Errorf("error saving order #%d: %w", order.ID, err)
	}

	note := fmt.Sprintf(
		"SimPay: Payment completed. Amount: %v %s, Channel: %s, Transaction ID: %s",
		paidAmount, data.Amount.FinalCurrency, data.Channel(), data.ID,
	)
	if err := s.Store.AddNote(ctx, order.ID, note); err != nil {
		logrus.Errorf("Error adding order note: %s", err.Error())
	}

	metrics.PaidAmounts.WithLabelValues(data.Amount.FinalCurrency).Observe(paidAmount)

	s.publish(ctx, models.TopicOrderPaid, models.OrderPaidEvent{
		OrderID:       order.ID,
		TransactionID: data.ID,
		Amount:        paidAmount,
		Currency:      data.Amount.FinalCurrency,
		Channel:       data.Channel(),
		PaidAt:        time.Now(),
	})

	return nil
}

// HandleRefundStatusChanged creates a refund record for a "refund_completed"
// status. The provider refund id is the idempotency key; an already-known id
// only appends an audit note. A store failure while creating the refund is
// recorded as a note and swallowed, so SimPay does not redeliver a
// permanently failing refund forever.
func (s *OrderService) HandleRefundStatusChanged(ctx context.Context, data models.RefundEventData) error {
	if data.Status != models.StatusRefundCompleted {
		return nil
	}

	transactionID := data.Transaction.ID
	simpayRefundID := data.ID
	refundAmount := data.Amount.Value
	if transactionID == "" || simpayRefundID == "" || refundAmount <= 0 {
		return nil
	}

	order, err := s.Store.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("error looking up order by transaction %s: %w", transactionID, err)
	}
	if order == nil {
		logrus.Warnf("No order found for SimPay transaction %s", transactionID)
		return nil
	}

	currency := data.Amount.Currency
	if currency == "" {
		currency = order.Currency
	}

	refunds, err := s.Store.Refunds(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("error listing refunds for order #%d: %w", order.ID, err)
	}
	for _, existing := range refunds {
		if existing.SimpayRefundID == simpayRefundID {
			note := fmt.Sprintf(
				"SimPay: Refund already processed. Amount: %v %s, SimPay refund ID: %s",
				refundAmount, currency, simpayRefundID,
			)
			if err := s.Store.AddNote(ctx, order.ID, note); err != nil {
				logrus.Errorf("Error adding order note: %s", err.Error())
			}
			return nil
		}
	}

	refund := &models.Refund{
		OrderID:        order.ID,
		Amount:         refundAmount,
		Currency:       currency,
		SimpayRefundID: simpayRefundID,
		Reason:         fmt.Sprintf("SimPay - automatic refund (ID: %s)", simpayRefundID),
	}
	if err := s.Store.CreateRefund(ctx, refund); err != nil {
		note := fmt.Sprintf(
			"SimPay: Failed to create refund. Amount: %v %s, SimPay refund ID: %s, Error: %s",
			refundAmount, currency, simpayRefundID, err.Error(),
		)
		if err := s.Store.AddNote(ctx, order.ID, note); err != nil {
			logrus.Errorf("Error adding order note: %s", err.Error())
		}
		return nil
	}

	note := fmt.Sprintf(
		"SimPay: Refund completed. Amount: %v %s, SimPay refund ID: %s, Refund ID: %s",
		refundAmount, currency, simpayRefundID, refund.ID,
	)
	if err := s.Store.AddNote(ctx, order.ID, note); err != nil {
		logrus.Errorf("Error adding order note: %s", err.Error())
	}

	s.publish(ctx, models.TopicOrderRefunded, models.OrderRefundedEvent{
		OrderID:        order.ID,
		RefundID:       refund.ID,
		SimpayRefundID: simpayRefundID,
		Amount:         refundAmount,
		Currency:       currency,
		RefundedAt:     time.Now(),
	})

	return nil
}

// HandleTestNotification acknowledges the SimPay test ping. No state change;
// it only has to succeed so the provider's connectivity check reports green.
func (s *OrderService) HandleTestNotification(ctx context.Context, data models.TestEventData) error {
	logrus.Infof("SimPay IPN v2 test notification received for service: %s", data.ServiceID)
	return nil
}

// publish sends a domain event. Publishing is best effort: a broker outage
// must not turn an already-applied state transition into a 400 that SimPay
// would redeliver.
func (s *OrderService) publish(ctx context.Context, topic string, event interface{}) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, topic, event); err != nil {
		logrus.Errorf("Error publishing to %s: %s", topic, err.Error())
	}
}

func parseOrderID(control string) uint {
	id, err := strconv.ParseUint(control, 10, 64)
	if err != nil {
		return 0
	}

	return uint(id)
}
