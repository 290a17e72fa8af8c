package handlers_test

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers"
	"github.com/SimPaypl/simpay-payment-gateway/internal/ipallowlist"
	ipallowlistmocks "github.com/SimPaypl/simpay-payment-gateway/internal/ipallowlist/mocks"
	"github.com/SimPaypl/simpay-payment-gateway/internal/ipn"
	"github.com/SimPaypl/simpay-payment-gateway/internal/models"
	"github.com/SimPaypl/simpay-payment-gateway/internal/service"
	"github.com/SimPaypl/simpay-payment-gateway/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testServiceID    = "srv-1"
	testSignatureKey = "ipn-signature-key"
)

type ipnFixture struct {
	router   *gin.Engine
	settings *mocks.MockSettingsStore
	store    *mocks.MockOrderStore
	lister   *ipallowlistmocks.MockIPLister
}

// newIPNFixture wires the real pipeline (credentials service, allowlist,
// dispatcher, order service) over mocked storage and provider surfaces.
func newIPNFixture(t *testing.T) *ipnFixture {
	gin.SetMode(gin.TestMode)

	settings := mocks.NewMockSettingsStore(t)
	store := mocks.NewMockOrderStore(t)
	lister := ipallowlistmocks.NewMockIPLister(t)

	credentials := service.NewCredentialsService(settings)
	allowlist := ipallowlist.NewService(lister)
	orders := service.NewOrderService(store, nil)
	dispatcher := ipn.NewDispatcher(orders)
	handler := handlers.NewIPNHandler(credentials, allowlist, dispatcher)

	router := gin.New()
	router.POST("/ipn/v2", handler.Handle)

	return &ipnFixture{
		router:   router,
		settings: settings,
		store:    store,
		lister:   lister,
	}
}

func (f *ipnFixture) expectCredentials(checkIP string) {
	f.settings.EXPECT().Get(mock.Anything, service.SettingServiceID, "").Return(testServiceID, nil).Once()
	f.settings.EXPECT().Get(mock.Anything, service.SettingAPIPassword, "").Return("api-password", nil).Once()
	f.settings.EXPECT().Get(mock.Anything, service.SettingIPNSignatureKey, "").Return(testSignatureKey, nil).Once()
	f.settings.EXPECT().Get(mock.Anything, service.SettingIPNCheckIP, "0").Return(checkIP, nil).Once()
}

func (f *ipnFixture) post(body, userAgent string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/ipn/v2", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if userAgent != "" {
		request.Header.Set("User-Agent", userAgent)
	}
	request.RemoteAddr = "203.0.113.9:51234"

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func signIPN(key string, leaves ...string) string {
	joined := strings.Join(append(leaves, key), "|")
	sum := sha256.Sum256([]byte(joined))
	return hex.EncodeToString(sum[:])
}

// paidNotificationBody builds a transaction:status_changed envelope for a
// 99.00 PLN payment. The signature covers the leaves in document order with
// numbers rendered as decoded values, so the amount hashes as "99".
func paidNotificationBody(key, control, txID string) string {
	signature := signIPN(key,
		"transaction:status_changed", "n-1", "2026-01-01 10:00:00",
		"transaction_paid", control, txID, "99", "PLN", "blik",
	)
	return fmt.Sprintf(`{
		"type": "transaction:status_changed",
		"notification_id": "n-1",
		"date": "2026-01-01 10:00:00",
		"data": {
			"status": "transaction_paid",
			"control": "%s",
			"id": "%s",
			"amount": {"final_value": 99.00, "final_currency": "PLN"},
			"payment": {"channel": "blik"}
		},
		"signature": "%s"
	}`, control, txID, signature)
}

func testNotificationBody(key, serviceID string) string {
	signature := signIPN(key, "ipn:test", "n-2", "2026-01-01 10:00:00", serviceID)
	return fmt.Sprintf(`{
		"type": "ipn:test",
		"notification_id": "n-2",
		"date": "2026-01-01 10:00:00",
		"data": {"service_id": "%s"},
		"signature": "%s"
	}`, serviceID, signature)
}

func TestIPNHandler_PaidNotification(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	fixture.store.EXPECT().
		FindByID(mock.Anything, uint(42)).
		Return(&models.Order{ID: 42, Status: models.OrderStatusPending, Total: 99.00, Currency: "PLN"}, nil).
		Once()
	fixture.store.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(order *models.Order) bool {
			return order.TransactionID == "tx-9" && order.Status == models.OrderStatusProcessing
		})).
		Return(nil).
		Once()
	fixture.store.EXPECT().
		AddNote(mock.Anything, uint(42), mock.MatchedBy(func(note string) bool {
			return strings.Contains(note, "Payment completed") && strings.Contains(note, "tx-9")
		})).
		Return(nil).
		Once()

	recorder := fixture.post(paidNotificationBody(testSignatureKey, "42", "tx-9"), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestIPNHandler_DuplicateDelivery(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	fixture.store.EXPECT().
		FindByID(mock.Anything, uint(42)).
		Return(&models.Order{ID: 42, Status: models.OrderStatusProcessing, Total: 99.00, Currency: "PLN"}, nil).
		Once()

	recorder := fixture.post(paidNotificationBody(testSignatureKey, "42", "tx-9"), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
	fixture.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIPNHandler_MissingConfiguration(t *testing.T) {
	fixture := newIPNFixture(t)

	fixture.settings.EXPECT().Get(mock.Anything, service.SettingServiceID, "").Return("", nil).Once()
	fixture.settings.EXPECT().Get(mock.Anything, service.SettingAPIPassword, "").Return("", nil).Once()
	fixture.settings.EXPECT().Get(mock.Anything, service.SettingIPNSignatureKey, "").Return("", nil).Once()
	fixture.settings.EXPECT().Get(mock.Anything, service.SettingIPNCheckIP, "0").Return("0", nil).Once()

	recorder := fixture.post(testNotificationBody(testSignatureKey, testServiceID), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Missing API configuration", recorder.Body.String())
}

func TestIPNHandler_UnsupportedVersion(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	recorder := fixture.post(testNotificationBody(testSignatureKey, testServiceID), "SimPay-IPN/1.9")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "IPN version is not supported (v: 1.9)", recorder.Body.String())
}

func TestIPNHandler_MissingUserAgent(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	recorder := fixture.post(testNotificationBody(testSignatureKey, testServiceID), "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "IPN version is not supported (v: N/A)", recorder.Body.String())
}

func TestIPNHandler_InvalidSignature(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	recorder := fixture.post(testNotificationBody("wrong-key", testServiceID), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid signature", recorder.Body.String())
}

func TestIPNHandler_ServiceIDMismatch(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	recorder := fixture.post(testNotificationBody(testSignatureKey, "srv-other"), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid service_id", recorder.Body.String())
}

func TestIPNHandler_MalformedPayload(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	recorder := fixture.post(`{"type":`, "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Cannot read payload", recorder.Body.String())
}

func TestIPNHandler_MissingRequiredFields(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	recorder := fixture.post(`{"type": "ipn:test", "data": {}}`, "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid payload - missing required fields", recorder.Body.String())
}

func TestIPNHandler_UnknownEventType(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("0")

	signature := signIPN(testSignatureKey, "foo:bar", "n-3", "2026-01-01 10:00:00", testServiceID)
	body := fmt.Sprintf(`{
		"type": "foo:bar",
		"notification_id": "n-3",
		"date": "2026-01-01 10:00:00",
		"data": {"service_id": "%s"},
		"signature": "%s"
	}`, testServiceID, signature)

	recorder := fixture.post(body, "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "foo:bar")
}

func TestIPNHandler_RejectsUnknownIP(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("1")

	fixture.lister.EXPECT().
		AllowedIPs(mock.Anything).
		Return([]string{"185.1.2.3"}, nil).
		Once()

	recorder := fixture.post(testNotificationBody(testSignatureKey, testServiceID), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid IP address: 203.0.113.9", recorder.Body.String())
}

func TestIPNHandler_AllowlistFetchFailureLetsCallThrough(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("1")

	fixture.lister.EXPECT().
		AllowedIPs(mock.Anything).
		Return(nil, fmt.Errorf("HTTP 503: unavailable")).
		Once()

	recorder := fixture.post(testNotificationBody(testSignatureKey, testServiceID), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestIPNHandler_AllowedIPPasses(t *testing.T) {
	fixture := newIPNFixture(t)
	fixture.expectCredentials("1")

	fixture.lister.EXPECT().
		AllowedIPs(mock.Anything).
		Return([]string{"203.0.113.9"}, nil).
		Once()

	recorder := fixture.post(testNotificationBody(testSignatureKey, testServiceID), "SimPay-IPN/2.0")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
