package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/SimPaypl/simpay-payment-gateway/internal/ipn"
	"github.com/SimPaypl/simpay-payment-gateway/internal/metrics"
	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CredentialsLoader loads the merchant credentials for the current call.
type CredentialsLoader interface {
	Load(ctx context.Context) (models.MerchantCredentials, error)
}

// IPAllowlist answers whether an IP is a known SimPay sender.
type IPAllowlist interface {
	IsAllowed(ctx context.Context, ip string) bool
}

// Dispatcher routes a validated notification to its domain handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, notification *models.Notification) error
}

// IPNHandler is the inbound webhook boundary. It runs the gate sequence and
// owns the HTTP response contract: plain-text "OK" with 200 on success,
// plain-text reason with 400 on any failure. It never retries anything;
// redelivery is SimPay's job.
type IPNHandler struct {
	Credentials CredentialsLoader
	Allowlist   IPAllowlist
	Dispatcher  Dispatcher
}

func NewIPNHandler(credentials CredentialsLoader, allowlist IPAllowlist, dispatcher Dispatcher) *IPNHandler {
	return &IPNHandler{
		Credentials: credentials,
		Allowlist:   allowlist,
		Dispatcher:  dispatcher,
	}
}

// POST /ipn/v2
func (h *IPNHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	creds, err := h.Credentials.Load(ctx)
	if err != nil || !creds.Configured() {
		h.reject(c, "config", "Missing API configuration")
		return
	}

	// Version check from UA: "SimPay-IPN/2.0"
	version := clientVersion(c.GetHeader("User-Agent"))
	if version != ipn.SupportedVersion {
		h.reject(c, "version", fmt.Sprintf("IPN version is not supported (v: %s)", version))
		return
	}

	if creds.ValidateIP {
		ip := clientIP(c)
		if !h.Allowlist.IsAllowed(ctx, ip) {
			h.reject(c, "ip", "Invalid IP address: "+ip)
			return
		}
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		h.reject(c, "payload", "Cannot read payload")
		return
	}

	var notification models.Notification
	if err := json.Unmarshal(body, &notification); err != nil {
		h.reject(c, "payload", "Cannot read payload")
		return
	}

	if err := notification.Validate(); err != nil {
		h.reject(c, "schema", "Invalid payload - missing required fields")
		return
	}

	if !ipn.VerifySignature(body, creds.IPNSignatureKey) {
		h.reject(c, "signature", "Invalid signature")
		return
	}

	if serviceID := notification.ServiceID(); serviceID != "" && serviceID != creds.ServiceID {
		h.reject(c, "service_id", "Invalid service_id")
		return
	}

	if err := h.Dispatcher.Dispatch(ctx, &notification); err != nil {
		logrus.Errorf("Error dispatching notification %s: %s", notification.NotificationID, err.Error())
		h.reject(c, "dispatch", err.Error())
		return
	}

	metrics.NotificationsTotal.WithLabelValues(notification.Type, "ok").Inc()
	c.String(http.StatusOK, "OK")
}

func (h *IPNHandler) reject(c *gin.Context, reason, message string) {
	logrus.Warnf("IPN rejected (%s): %s", reason, message)
	metrics.NotificationRejections.WithLabelValues(reason).Inc()
	c.String(http.StatusBadRequest, message)
}

// clientVersion extracts the protocol version from a "name/version" client
// identifier.
func clientVersion(userAgent string) string {
	parts := strings.SplitN(userAgent, "/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "N/A"
	}

	return parts[1]
}

// clientIP resolves the caller address, preferring proxy headers the same
// way the hosting stack sets them.
func clientIP(c *gin.Context) string {
	if ip := c.GetHeader("Client-Ip"); ip != "" {
		return strings.TrimSpace(ip)
	}
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return host
}
