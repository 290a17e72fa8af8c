package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/SimPaypl/simpay-payment-gateway/internal/metrics"
	"github.com/SimPaypl/simpay-payment-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentsService starts a SimPay transaction for an order.
type PaymentsService interface {
	CreateTransaction(ctx context.Context, orderID uint, gatewayID, returnURL string) (*service.CheckoutResult, error)
}

// CheckoutHandler is the storefront-facing surface that starts a payment.
type CheckoutHandler struct {
	Service PaymentsService
}

func NewCheckoutHandler(s PaymentsService) *CheckoutHandler {
	return &CheckoutHandler{Service: s}
}

type checkoutRequest struct {
	OrderID   uint   `json:"order_id" binding:"required"`
	GatewayID string `json:"gateway_id" binding:"required"`
	ReturnURL string `json:"return_url" binding:"required"`
}

// POST /checkout
func (h *CheckoutHandler) CreateTransaction(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Service.CreateTransaction(c.Request.Context(), req.OrderID, req.GatewayID, req.ReturnURL)
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failure").Inc()
		logrus.Errorf("Error creating transaction for order #%d: %s", req.OrderID, err.Error())

		switch {
		case errors.Is(err, service.ErrUnknownGateway):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			// The buyer must not be redirected on a half-created
			// transaction; the storefront shows an error instead.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	metrics.CheckoutsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, result)
}
