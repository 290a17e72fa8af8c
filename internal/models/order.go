package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Address holds billing or shipping details forwarded to SimPay when a
// transaction is created.
type Address struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Company    string `json:"company"`
}

// Order is the storefront order this service reconciles payment state for.
// TransactionID links it to the SimPay transaction once checkout starts and
// is the lookup key for refund notifications.
type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	Status        OrderStatus `json:"status"`
	Total         float64     `json:"total"`
	Currency      string      `json:"currency"`
	TransactionID string      `json:"transaction_id" gorm:"column:simpay_transaction_id;index"`

	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	CustomerIP        string  `json:"customer_ip"`
	CustomerUserAgent string  `json:"customer_user_agent"`
	Billing           Address `json:"billing" gorm:"embedded;embeddedPrefix:billing_"`
	Shipping          Address `json:"shipping" gorm:"embedded;embeddedPrefix:shipping_"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsPaid reports whether the order already went through payment completion.
// Both statuses count: "processing" is the immediate post-payment state,
// "completed" means fulfilment finished.
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusProcessing || o.Status == OrderStatusCompleted
}

// MarkPaid records the SimPay transaction id and moves the order into the
// post-payment state. The caller persists the change.
func (o *Order) MarkPaid(transactionID string) {
	now := time.Now()
	o.TransactionID = transactionID
	o.Status = OrderStatusProcessing
	o.PaidAt = &now
}

// Refund is a partial or full refund created from a SimPay refund
// notification. SimpayRefundID is the provider-side id and the idempotency
// key: the same provider refund never creates two rows.
type Refund struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	OrderID        uint      `json:"order_id" gorm:"index"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	SimpayRefundID string    `json:"simpay_refund_id" gorm:"column:simpay_refund_id;index"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *Refund) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}

// OrderNote is a human-readable audit entry attached to an order.
type OrderNote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"index"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// Setting is a key/value merchant configuration entry. Credentials live here
// so a rotated IPN key is picked up on the next inbound call.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;column:key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MerchantCredentials is the per-call snapshot of the merchant configuration
// read from the settings store.
type MerchantCredentials struct {
	ServiceID       string
	BearerToken     string
	IPNSignatureKey string
	ValidateIP      bool
}

func (c MerchantCredentials) Configured() bool {
	return c.ServiceID != "" && c.IPNSignatureKey != ""
}
