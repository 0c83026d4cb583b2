// Package paygate wraps the hosted-invoice payment API. It translates an
// internal create-invoice request into the provider's shape and normalizes
// the response; webhook callback tokens are verified here as well.
package paygate

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const invoiceDurationSeconds = 86400 // invoices expire after 24 hours

type InvoiceItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type CreateInvoiceRequest struct {
	ExternalID         string
	Amount             int64
	Description        string
	CustomerName       string
	CustomerPhone      string
	Items              []InvoiceItem
	SuccessRedirectURL string
	FailureRedirectURL string
}

type Invoice struct {
	ID         string
	InvoiceURL string
	ExpiryDate time.Time
}

type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error)
}

type CallbackVerifier interface {
	VerifyCallbackToken(token string) bool
}

type Client struct {
	baseURL       string
	apiKey        string
	callbackToken string
	http          *resty.Client
}

func NewClient(baseURL, apiKey, callbackToken string) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		callbackToken: callbackToken,
		http:          resty.New().SetTimeout(30 * time.Second),
	}
}

func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	body := map[string]any{
		"external_id":      req.ExternalID,
		"amount":           req.Amount,
		"currency":         "IDR",
		"invoice_duration": invoiceDurationSeconds,
		"description":      req.Description,
		"customer": map[string]any{
			"given_names":   req.CustomerName,
			"mobile_number": req.CustomerPhone,
		},
		"items":                req.Items,
		"success_redirect_url": req.SuccessRedirectURL,
		"failure_redirect_url": req.FailureRedirectURL,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBasicAuth(c.apiKey, "").
		SetBody(body).
		Post(c.baseURL + "/v2/invoices")
	if err != nil {
		return nil, fmt.Errorf("invoice request failed: %w", err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("invoice request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var raw struct {
		ID         string    `json:"id"`
		InvoiceURL string    `json:"invoice_url"`
		ExpiryDate time.Time `json:"expiry_date"`
	}
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse invoice response: %w", err)
	}
	if raw.ID == "" || raw.InvoiceURL == "" {
		return nil, fmt.Errorf("incomplete invoice response: %s", string(resp.Body()))
	}

	return &Invoice{ID: raw.ID, InvoiceURL: raw.InvoiceURL, ExpiryDate: raw.ExpiryDate}, nil
}

// VerifyCallbackToken compares the webhook token against the configured
// shared secret. Plain equality is the provider's contract; there is no
// HMAC signature on these callbacks.
func (c *Client) VerifyCallbackToken(token string) bool {
	if c.callbackToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(c.callbackToken)) == 1
}
