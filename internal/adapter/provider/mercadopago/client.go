// Package mercadopago implements the payment processor client.
// It covers the two calls this backend needs: fetching authoritative payment
// detail by id, and creating a hosted checkout preference for an order.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.mercadopago.com"

// Client calls the Mercado Pago REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client with the default API URL.
func NewClient(accessToken string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, accessToken, timeout, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, accessToken string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
		log:         logger.With("adapter", "mercadopago"),
	}
}

// GetPayment fetches authoritative payment detail by payment id.
// Returns nil, nil if the processor has no record (HTTP 404).
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*PaymentDetail, error) {
	reqURL := c.baseURL + "/v1/payments/" + paymentID

	c.log.DebugContext(ctx, "mercadopago get payment", slog.String("payment_id", paymentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "mercadopago request failed",
			slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("mercadopago: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mercadopago: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: read body: %w", err)
	}

	var payment apiPayment
	if err := json.Unmarshal(body, &payment); err != nil {
		return nil, fmt.Errorf("mercadopago: decode json: %w", err)
	}

	detail := payment.toDetail()

	c.log.DebugContext(ctx, "mercadopago payment",
		slog.String("payment_id", paymentID),
		slog.String("status", detail.Status),
		slog.String("external_reference", detail.ExternalReference),
	)

	return detail, nil
}

// CreatePreference creates a hosted checkout preference and returns its id
// and redirect URL. externalReference must be the internal order id so the
// resulting payment can be reconciled back to the order.
func (c *Client) CreatePreference(ctx context.Context, pref PreferenceRequest) (*Preference, error) {
	reqURL := c.baseURL + "/checkout/preferences"

	payload, err := json.Marshal(newAPIPreference(pref))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: marshal preference: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mercadopago: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mercadopago: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mercadopago: read body: %w", err)
	}

	var created apiPreferenceResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("mercadopago: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "mercadopago preference created",
		slog.String("preference_id", created.ID),
		slog.String("external_reference", pref.ExternalReference),
	)

	return &Preference{ID: created.ID, InitPoint: created.InitPoint}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
// Only used for idempotent GETs.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.DebugContext(ctx, "mercadopago retrying", slog.String("reason", reason))

	return c.httpClient.Do(req)
}
