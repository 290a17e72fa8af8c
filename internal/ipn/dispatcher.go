package ipn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/sirupsen/logrus"
)

// SupportedVersion is the only IPN protocol version this dispatcher speaks.
// Other versions get their own endpoint deployment, not content negotiation.
const SupportedVersion = "2.0"

var ErrUnknownEventType = errors.New("unknown event type")

// OrderEvents is the reconciliation surface the dispatcher routes into.
type OrderEvents interface {
	HandleTransactionStatusChanged(ctx context.Context, data models.TransactionEventData) error
	HandleRefundStatusChanged(ctx context.Context, data models.RefundEventData) error
	HandleTestNotification(ctx context.Context, data models.TestEventData) error
}

// Dispatcher maps a validated notification to a domain event handler.
type Dispatcher struct {
	Orders OrderEvents
}

func NewDispatcher(orders OrderEvents) *Dispatcher {
	return &Dispatcher{Orders: orders}
}

// Dispatch routes by envelope type. The handler receives only the decoded
// data object. An unrecognized type is an error the caller must surface:
// it means the provider protocol drifted and the integrator has to know.
func (d *Dispatcher) Dispatch(ctx context.Context, notification *models.Notification) error {
	switch notification.Type {
	case models.EventTransactionStatusChanged:
		var data models.TransactionEventData
		if err := json.Unmarshal(notification.Data, &data); err != nil {
			return fmt.Errorf("error parsing transaction event data: %w", err)
		}
		return d.Orders.HandleTransactionStatusChanged(ctx, data)

	case models.EventRefundStatusChanged:
		var data models.RefundEventData
		if err := json.Unmarshal(notification.Data, &data); err != nil {
			return fmt.Errorf("error parsing refund event data: %w", err)
		}
		return d.Orders.HandleRefundStatusChanged(ctx, data)

	case models.EventIPNTest:
		var data models.TestEventData
		if err := json.Unmarshal(notification.Data, &data); err != nil {
			return fmt.Errorf("error parsing test event data: %w", err)
		}
		return d.Orders.HandleTestNotification(ctx, data)

	case models.EventBlikCodeStatusChanged:
		// Acknowledged but no action needed.
		logrus.Infof("BLIK level0 code status changed, notification %s", notification.NotificationID)
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnknownEventType, notification.Type)
	}
}
