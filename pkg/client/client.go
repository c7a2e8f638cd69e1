// Package client calls the gateway's action endpoint on behalf of the web
// client, the CLI and integration tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the path of the action endpoint.
const DefaultEndpoint = "/api/ai"

// APIError is a non-2xx answer from the gateway.
type APIError struct {
	StatusCode int
	Action     string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client posts action requests to the gateway. It issues exactly one request
// per call; there are no retries.
type Client struct {
	baseURL  string
	endpoint string
	http     *http.Client
	logger   *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithEndpoint overrides the action path.
func WithEndpoint(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.endpoint = path
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the gateway at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 90 * time.Second},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type actionRequest struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Call posts action with params and decodes a successful body into out.
// out may be nil when the result is not needed.
func (c *Client) Call(ctx context.Context, action string, params map[string]any, out any) error {
	if params == nil {
		params = map[string]any{}
	}
	payload, err := json.Marshal(actionRequest{Action: action, Params: params})
	if err != nil {
		return fmt.Errorf("failed to encode request for action '%s': %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request for action '%s': %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Error calling AI API", "action", action, "error", err)
		return fmt.Errorf("failed to contact the AI service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Action:     action,
			Message:    fmt.Sprintf("API call for action '%s' failed.", action),
		}
		var body errorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
		c.logger.Error("Error calling AI API", "action", action, "status", resp.StatusCode, "error", apiErr)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for action '%s': %w", action, err)
	}
	return nil
}

// Invoke calls action and decodes the result as T.
func Invoke[T any](ctx context.Context, c *Client, action string, params map[string]any) (T, error) {
	var out T
	err := c.Call(ctx, action, params, &out)
	return out, err
}
