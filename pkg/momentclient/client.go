// Package momentclient provides an HTTP client for the moment scheduler
// API, used by client apps to request schedules and register device
// tokens.
package momentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ccandelora/randomment/internal/model"
)

// Client represents a moment scheduler API client.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a new API client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// envelope mirrors the API's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type ensureRequest struct {
	UserID   string `json:"user_id"`
	MinDelay string `json:"min_delay"`
	MaxDelay string `json:"max_delay"`
}

type registerRequest struct {
	UserID   string `json:"user_id"`
	Platform string `json:"platform"`
	Token    string `json:"token"`
}

// EnsureSchedule creates or refreshes the user's pending schedule.
func (c *Client) EnsureSchedule(
	ctx context.Context, userID uuid.UUID, minDelay, maxDelay time.Duration,
) (model.Schedule, error) {
	body := ensureRequest{
		UserID:   userID.String(),
		MinDelay: minDelay.String(),
		MaxDelay: maxDelay.String(),
	}

	var sched model.Schedule
	if err := c.do(ctx, http.MethodPost, "/api/moments/schedule", body, &sched); err != nil {
		return model.Schedule{}, fmt.Errorf("ensure schedule: %w", err)
	}

	return sched, nil
}

// CancelPending cancels the user's pending schedule, if any.
func (c *Client) CancelPending(ctx context.Context, userID uuid.UUID) error {
	path := "/api/moments/schedule/" + userID.String()
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("cancel pending: %w", err)
	}

	return nil
}

// RegisterToken registers a push delivery token for the user, typically
// right after notification permission is granted.
func (c *Client) RegisterToken(ctx context.Context, userID uuid.UUID, platform, token string) error {
	body := registerRequest{
		UserID:   userID.String(),
		Platform: platform,
		Token:    token,
	}

	if err := c.do(ctx, http.MethodPost, "/api/moments/tokens", body, nil); err != nil {
		return fmt.Errorf("register token: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, env.Error)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}
