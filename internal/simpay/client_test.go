package simpay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SimPaypl/simpay-payment-gateway/internal/simpay"
	"github.com/stretchr/testify/assert"
)

type staticCredentials struct {
	serviceID   string
	bearerToken string
}

func (c staticCredentials) APICredentials(ctx context.Context) (string, string, error) {
	return c.serviceID, c.bearerToken, nil
}

func TestCreateTransaction(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload simpay.TransactionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"transactionId": "tx-55", "redirectUrl": "https://secure.simpay.pl/tx-55"}}`))
	}))
	defer server.Close()

	client := simpay.NewClient(simpay.NewHTTPClient(), server.URL, staticCredentials{"srv-1", "bearer-token"})

	response, err := client.CreateTransaction(context.Background(), simpay.TransactionRequest{
		Amount:   99.00,
		Currency: "PLN",
		Control:  "42",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/payment/srv-1/transactions", gotPath)
	assert.Equal(t, "Bearer bearer-token", gotAuth)
	assert.Equal(t, "42", gotPayload.Control)
	assert.Equal(t, "tx-55", response.TransactionID)
	assert.Equal(t, "https://secure.simpay.pl/tx-55", response.RedirectURL)
}

func TestCreateTransaction_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "unauthorized"}`))
	}))
	defer server.Close()

	client := simpay.NewClient(simpay.NewHTTPClient(), server.URL, staticCredentials{"srv-1", "bad-token"})

	response, err := client.CreateTransaction(context.Background(), simpay.TransactionRequest{})

	assert.Nil(t, response)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestAllowedIPs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ip", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": ["185.1.2.3", "185.1.2.4"]}`))
	}))
	defer server.Close()

	client := simpay.NewClient(simpay.NewHTTPClient(), server.URL, staticCredentials{"srv-1", "bearer-token"})

	ips, err := client.AllowedIPs(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"185.1.2.3", "185.1.2.4"}, ips)
}

func TestDirectChannel(t *testing.T) {
	assert.Equal(t, "blik", simpay.DirectChannel(simpay.GatewayBlik))
	assert.Equal(t, "blik-paylater", simpay.DirectChannel(simpay.GatewayBlikPayLater))
	assert.Equal(t, "paypo", simpay.DirectChannel(simpay.GatewayPayPo))
	assert.Equal(t, "", simpay.DirectChannel(simpay.GatewayPayment))

	assert.True(t, simpay.KnownGateway(simpay.GatewayPayment))
	assert.False(t, simpay.KnownGateway("stripe"))
}
