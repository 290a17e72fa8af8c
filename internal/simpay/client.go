package simpay

import (
	"context"
	"encoding/json"
	"fmt"
)

// Transport abstracts the JSON HTTP layer so tests can run without the
// network.
type Transport interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, error)
}

// CredentialsSource yields the bearer token and service id for a call.
// It is consulted on every request so rotated credentials apply immediately.
type CredentialsSource interface {
	APICredentials(ctx context.Context) (serviceID, bearerToken string, err error)
}

// Client talks to the SimPay REST API.
type Client struct {
	http        Transport
	baseURL     string
	credentials CredentialsSource
}

func NewClient(http Transport, baseURL string, credentials CredentialsSource) *Client {
	return &Client{
		http:        http,
		baseURL:     baseURL,
		credentials: credentials,
	}
}

// TransactionRequest is the payload of POST /payment/{service_id}/transactions.
type TransactionRequest struct {
	Amount      float64        `json:"amount"`
	Currency    string         `json:"currency"`
	Description string         `json:"description"`
	Control     string         `json:"control"`
	Customer    Customer       `json:"customer"`
	Antifraud   Antifraud      `json:"antifraud"`
	Billing     AddressDetails `json:"billing"`
	Shipping    AddressDetails `json:"shipping"`
	Returns     Returns        `json:"returns"`
	// DirectChannel skips the SimPay channel chooser when the storefront
	// gateway maps to a single payment channel.
	DirectChannel string `json:"directChannel,omitempty"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	IP    string `json:"ip"`
}

type Antifraud struct {
	UserAgent string `json:"useragent"`
}

type AddressDetails struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Company    string `json:"company"`
}

type Returns struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
}

// TransactionResponse is the data object SimPay returns for a created
// transaction.
type TransactionResponse struct {
	TransactionID string `json:"transactionId"`
	RedirectURL   string `json:"redirectUrl"`
}

func (c *Client) authHeaders(bearerToken string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + bearerToken,
	}
}

// CreateTransaction starts a payment and returns the redirect target.
func (c *Client) CreateTransaction(ctx context.Context, payload TransactionRequest) (*TransactionResponse, error) {
	serviceID, bearerToken, err := c.credentials.APICredentials(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/payment/%s/transactions", c.baseURL, serviceID)
	raw, err := c.http.Post(ctx, url, payload, c.authHeaders(bearerToken))
	if err != nil {
		return nil, err
	}

	var response struct {
		Data TransactionResponse `json:"data"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("error parsing transaction response: %w", err)
	}

	return &response.Data, nil
}

// AllowedIPs fetches the published list of SimPay notification sender IPs.
func (c *Client) AllowedIPs(ctx context.Context) ([]string, error) {
	_, bearerToken, err := c.credentials.APICredentials(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := c.http.Get(ctx, c.baseURL+"/ip", c.authHeaders(bearerToken))
	if err != nil {
		return nil, err
	}

	var response struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("error parsing ip list response: %w", err)
	}

	return response.Data, nil
}
