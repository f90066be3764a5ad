// Package push provides a client for the external notification gateway.
//
// The gateway accepts a destination token and a payload and reports the
// outcome per token. Permanently invalid tokens are surfaced as
// ErrInvalidToken so the caller can deactivate them; every other failure
// is transient and safe to retry.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// TypeMomentWindow is the payload type of a moment-window nudge. It must
// round-trip unchanged through the gateway to the device.
const TypeMomentWindow = "moment_window"

// ErrInvalidToken is returned when the gateway reports the destination
// token as permanently invalid.
var ErrInvalidToken = errors.New("device token is invalid")

// Payload is the notification body delivered to the device.
type Payload struct {
	Type string `json:"type"`
}

// Client represents a notification gateway client.
type Client struct {
	url       string       // gateway send endpoint
	serverKey string       // authorization key
	client    *http.Client // HTTP client used to make requests
}

// NewClient creates a new gateway Client instance.
func NewClient(url, serverKey string, timeout time.Duration) *Client {
	return &Client{
		url:       url,
		serverKey: serverKey,
		client:    &http.Client{Timeout: timeout},
	}
}

// sendRequest represents the payload for the gateway send API.
type sendRequest struct {
	To   string  `json:"to"`   // destination device token
	Data Payload `json:"data"` // notification payload
}

// sendResponse represents the per-token outcome reported by the gateway.
type sendResponse struct {
	Success int          `json:"success"`
	Failure int          `json:"failure"`
	Results []sendResult `json:"results"`
}

type sendResult struct {
	Error string `json:"error,omitempty"`
}

// Gateway error strings that mean the token will never work again.
const (
	errNotRegistered       = "NotRegistered"
	errInvalidRegistration = "InvalidRegistration"
)

// Send delivers the payload to a single device token.
func (c *Client) Send(ctx context.Context, token string, payload Payload) error {
	body, err := json.Marshal(sendRequest{To: token, Data: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create send request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if out.Failure == 0 {
		return nil
	}

	for _, res := range out.Results {
		switch res.Error {
		case "":
			continue
		case errNotRegistered, errInvalidRegistration:
			return ErrInvalidToken
		default:
			return fmt.Errorf("gateway error: %s", res.Error)
		}
	}

	return nil
}
