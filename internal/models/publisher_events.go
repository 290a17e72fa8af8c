package models

import (
	"strconv"
	"time"
)

const (
	TopicOrderPaymentPending = "orders.payment_pending"
	TopicOrderPaid           = "orders.paid"
	TopicOrderRefunded       = "orders.refunded"
)

// Events partition by order id so all events of one order land on the same
// partition and stay ordered relative to each other.

// OrderPaymentPendingEvent is published when an outbound SimPay transaction
// was created and the buyer is about to be redirected.
type OrderPaymentPendingEvent struct {
	OrderID       uint      `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

func (e OrderPaymentPendingEvent) PartitionKey() string {
	return strconv.FormatUint(uint64(e.OrderID), 10)
}

// OrderPaidEvent is published after a paid notification was reconciled.
type OrderPaidEvent struct {
	OrderID       uint      `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Channel       string    `json:"channel"`
	PaidAt        time.Time `json:"paid_at"`
}

func (e OrderPaidEvent) PartitionKey() string {
	return strconv.FormatUint(uint64(e.OrderID), 10)
}

// OrderRefundedEvent is published after a refund notification created a
// refund record.
type OrderRefundedEvent struct {
	OrderID        uint      `json:"order_id"`
	RefundID       string    `json:"refund_id"`
	SimpayRefundID string    `json:"simpay_refund_id"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	RefundedAt     time.Time `json:"refunded_at"`
}

func (e OrderRefundedEvent) PartitionKey() string {
	return strconv.FormatUint(uint64(e.OrderID), 10)
}
