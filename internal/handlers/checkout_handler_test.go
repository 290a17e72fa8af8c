package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers"
	"github.com/SimPaypl/simpay-payment-gateway/internal/handlers/mocks"
	"github.com/SimPaypl/simpay-payment-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCheckoutRouter(payments *mocks.MockPaymentsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/checkout", handlers.NewCheckoutHandler(payments).CreateTransaction)
	return router
}

func postCheckout(router *gin.Engine, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestCheckout_Success(t *testing.T) {
	payments := mocks.NewMockPaymentsService(t)
	router := newCheckoutRouter(payments)

	payments.EXPECT().
		CreateTransaction(mock.Anything, uint(7), "simpay_blik", "https://shop.example/return").
		Return(&service.CheckoutResult{
			RedirectURL:   "https://secure.simpay.pl/tx-55",
			TransactionID: "tx-55",
		}, nil).
		Once()

	recorder := postCheckout(router, `{"order_id": 7, "gateway_id": "simpay_blik", "return_url": "https://shop.example/return"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"redirect_url": "https://secure.simpay.pl/tx-55", "transaction_id": "tx-55"}`, recorder.Body.String())
}

func TestCheckout_InvalidBody(t *testing.T) {
	payments := mocks.NewMockPaymentsService(t)
	router := newCheckoutRouter(payments)

	recorder := postCheckout(router, `{"order_id": 7}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	payments.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_UnknownGateway(t *testing.T) {
	payments := mocks.NewMockPaymentsService(t)
	router := newCheckoutRouter(payments)

	payments.EXPECT().
		CreateTransaction(mock.Anything, uint(7), "stripe", "https://shop.example/return").
		Return(nil, fmt.Errorf("%w: stripe", service.ErrUnknownGateway)).
		Once()

	recorder := postCheckout(router, `{"order_id": 7, "gateway_id": "stripe", "return_url": "https://shop.example/return"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCheckout_OrderNotFound(t *testing.T) {
	payments := mocks.NewMockPaymentsService(t)
	router := newCheckoutRouter(payments)

	payments.EXPECT().
		CreateTransaction(mock.Anything, uint(404), "simpay_payment", "https://shop.example/return").
		Return(nil, fmt.Errorf("%w: 404", service.ErrOrderNotFound)).
		Once()

	recorder := postCheckout(router, `{"order_id": 404, "gateway_id": "simpay_payment", "return_url": "https://shop.example/return"}`)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCheckout_ProviderFailure(t *testing.T) {
	payments := mocks.NewMockPaymentsService(t)
	router := newCheckoutRouter(payments)

	payments.EXPECT().
		CreateTransaction(mock.Anything, uint(7), "simpay_payment", "https://shop.example/return").
		Return(nil, service.ErrIncompleteTransaction).
		Once()

	recorder := postCheckout(router, `{"order_id": 7, "gateway_id": "simpay_payment", "return_url": "https://shop.example/return"}`)

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}
