package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// IPN v2 event types sent by SimPay.
const (
	EventTransactionStatusChanged = "transaction:status_changed"
	EventRefundStatusChanged      = "transaction_refund:status_changed"
	EventIPNTest                  = "ipn:test"
	EventBlikCodeStatusChanged    = "transaction_blik_level0:code_status_changed"
)

// Transaction statuses this service reacts to.
const (
	StatusTransactionPaid = "transaction_paid"
	StatusRefundCompleted = "refund_completed"
)

// Notification is the IPN v2 envelope. Data stays raw until the dispatcher
// knows the event type; the envelope is never mutated after decoding.
type Notification struct {
	Type           string          `json:"type"`
	NotificationID string          `json:"notification_id"`
	Date           string          `json:"date"`
	Data           json.RawMessage `json:"data"`
	Signature      string          `json:"signature"`
}

var ErrMissingFields = errors.New("invalid payload - missing required fields")

// Validate checks the envelope only. Event-specific fields are validated by
// the handler that consumes them, since SimPay sends partial updates.
func (n *Notification) Validate() error {
	if n.Type == "" ||
		n.NotificationID == "" ||
		n.Date == "" ||
		emptyData(n.Data) ||
		n.Signature == "" {
		return ErrMissingFields
	}

	return nil
}

// emptyData reports whether the data member is absent or carries no content.
// A null or empty object is as useless to a handler as a missing one.
func emptyData(data json.RawMessage) bool {
	compact := string(bytes.Join(bytes.Fields(data), nil))
	switch compact {
	case "", "null", "{}", "[]":
		return true
	}

	return false
}

// ServiceID extracts data.service_id when present, empty string otherwise.
func (n *Notification) ServiceID() string {
	var data struct {
		ServiceID string `json:"service_id"`
	}
	if err := json.Unmarshal(n.Data, &data); err != nil {
		return ""
	}

	return data.ServiceID
}

// TransactionEventData is the data object of "transaction:status_changed".
// Missing optional fields decode to zero values.
type TransactionEventData struct {
	ID        string `json:"id"`
	ServiceID string `json:"service_id"`
	Status    string `json:"status"`
	Control   string `json:"control"`
	Amount    struct {
		Value         float64 `json:"value"`
		Currency      string  `json:"currency"`
		FinalValue    float64 `json:"final_value"`
		FinalCurrency string  `json:"final_currency"`
	} `json:"amount"`
	Payment struct {
		Channel string `json:"channel"`
	} `json:"payment"`
}

// Channel returns the payment channel or "unknown" when SimPay omitted it.
func (d TransactionEventData) Channel() string {
	if d.Payment.Channel == "" {
		return "unknown"
	}

	return d.Payment.Channel
}

// RefundEventData is the data object of "transaction_refund:status_changed".
type RefundEventData struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	Status      string `json:"status"`
	Transaction struct {
		ID string `json:"id"`
	} `json:"transaction"`
	Amount struct {
		Value    float64 `json:"value"`
		Currency string  `json:"currency"`
	} `json:"amount"`
}

// TestEventData is the data object of "ipn:test".
type TestEventData struct {
	ServiceID string `json:"service_id"`
}
