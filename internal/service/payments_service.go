package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/SimPaypl/simpay-payment-gateway/internal/simpay"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownGateway        = errors.New("unknown gateway")
	ErrIncompleteTransaction = errors.New("transaction response missing redirect url or transaction id")
)

// SimPayAPI is the outbound provider surface the payments flow needs.
type SimPayAPI interface {
	CreateTransaction(ctx context.Context, payload simpay.TransactionRequest) (*simpay.TransactionResponse, error)
}

// CheckoutResult is handed back to the storefront so it can redirect the
// buyer to SimPay.
type CheckoutResult struct {
	RedirectURL   string `json:"redirect_url"`
	TransactionID string `json:"transaction_id"`
}

// PaymentsService starts payments against SimPay. It shares the order store
// and publisher with the reconciliation flow but is otherwise independent of
// the inbound pipeline.
type PaymentsService struct {
	API       SimPayAPI
	Store     OrderStore
	Publisher Publisher
}

func NewPaymentsService(api SimPayAPI, store OrderStore, publisher Publisher) *PaymentsService {
	return &PaymentsService{
		API:       api,
		Store:     store,
		Publisher: publisher,
	}
}

// CreateTransaction builds and sends the create-transaction call for an
// order. Both a redirect URL and a transaction id are required in the
// response; missing either is a failed checkout the storefront must show to
// the buyer. On success the order moves to pending payment carrying the new
// transaction id, anticipating the asynchronous IPN that confirms or times
// out later.
func (s *PaymentsService) CreateTransaction(ctx context.Context, orderID uint, gatewayID, returnURL string) (*CheckoutResult, error) {
	if !simpay.KnownGateway(gatewayID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGateway, gatewayID)
	}

	order, err := s.Store.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("error loading order #%d: %w", orderID, err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}

	payload := buildTransactionPayload(order, simpay.DirectChannel(gatewayID), returnURL)
	response, err := s.API.CreateTransaction(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("error creating SimPay transaction: %w", err)
	}

	if response.RedirectURL == "" || response.TransactionID == "" {
		return nil, ErrIncompleteTransaction
	}

	order.TransactionID = response.TransactionID
	order.Status = models.OrderStatusPending
	if err := s.Store.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("error saving order #%d: %w", order.ID, err)
	}
	if err := s.Store.AddNote(ctx, order.ID, "SimPay ID: "+response.TransactionID); err != nil {
		logrus.Errorf("Error adding order note: %s", err.Error())
	}

	if s.Publisher != nil {
		event := models.OrderPaymentPendingEvent{
			OrderID:       order.ID,
			TransactionID: response.TransactionID,
			Amount:        order.Total,
			Currency:      order.Currency,
			CreatedAt:     time.Now(),
		}
		if err := s.Publisher.Publish(ctx, models.TopicOrderPaymentPending, event); err != nil {
			logrus.Errorf("Error publishing to %s: %s", models.TopicOrderPaymentPending, err.Error())
		}
	}

	return &CheckoutResult{
		RedirectURL:   response.RedirectURL,
		TransactionID: response.TransactionID,
	}, nil
}

func buildTransactionPayload(order *models.Order, directChannel, returnURL string) simpay.TransactionRequest {
	return simpay.TransactionRequest{
		Amount:      order.Total,
		Currency:    order.Currency,
		Description: fmt.Sprintf("Order #%d", order.ID),
		Control:     fmt.Sprintf("%d", order.ID),
		Customer: simpay.Customer{
			Name:  strings.TrimSpace(order.CustomerName),
			Email: order.CustomerEmail,
			IP:    order.CustomerIP,
		},
		Antifraud: simpay.Antifraud{
			UserAgent: order.CustomerUserAgent,
		},
		Billing:  toAddressDetails(order.Billing),
		Shipping: toAddressDetails(order.Shipping),
		Returns: simpay.Returns{
			Success: returnURL,
			Failure: returnURL,
		},
		DirectChannel: directChannel,
	}
}

func toAddressDetails(address models.Address) simpay.AddressDetails {
	return simpay.AddressDetails{
		Name:       address.Name,
		Surname:    address.Surname,
		Street:     strings.TrimSpace(address.Street),
		City:       address.City,
		PostalCode: address.PostalCode,
		Country:    address.Country,
		Company:    address.Company,
	}
}
