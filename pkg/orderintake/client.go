package orderintake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external order-intake service.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new order-intake client with the given configuration.
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// SubmitOrder sends a finalized order and returns the assigned identifier.
// A rejection by the service comes back as *APIError carrying the
// service-provided detail; a transport failure wraps ErrServiceUnreachable.
func (c *Client) SubmitOrder(ctx context.Context, order OrderRequest) (*SubmitResponse, error) {
	reqBody, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}

	url := fmt.Sprintf("%s/submit_order", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		detail := "order submission failed"
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var submitResp SubmitResponse
	if err := json.Unmarshal(body, &submitResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal submit response: %w", err)
	}
	return &submitResp, nil
}
