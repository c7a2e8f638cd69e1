// Package platform is a client for the hosted data platform (database and auth)
// that stores WolfPad's user data. Access control is enforced by the platform;
// this client only carries the public key.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured is returned when the endpoint URL or the key is missing.
var ErrNotConfigured = errors.New("data platform URL and key must be provided")

// Error is a non-2xx answer from the platform.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("data platform error (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the platform's REST interface.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	baseURL *url.URL
	key     string
	http    *http.Client
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

// New creates a client for the platform at endpoint authenticated with key.
// Both values must come from runtime configuration.
func New(endpoint, key string, opts ...Option) (*Client, error) {
	if endpoint == "" || key == "" {
		return nil, ErrNotConfigured
	}
	u, err := url.Parse(strings.TrimRight(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid data platform url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid data platform url %q: scheme must be http or https", endpoint)
	}

	c := &Client{
		baseURL: u,
		key:     key,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the configured endpoint.
func (c *Client) URL() string {
	return c.baseURL.String()
}

// Ping checks that the REST interface answers with the configured key.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "/rest/v1/", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Select reads rows of table matching query (PostgREST filter syntax, e.g.
// "select=*", "user_id=eq.42") and decodes them into out.
func (c *Client) Select(ctx context.Context, table string, query url.Values, out any) error {
	if table == "" {
		return errors.New("table name is required")
	}
	resp, err := c.do(ctx, "/rest/v1/"+url.PathEscape(table), query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s rows: %w", table, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling data platform: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr struct {
			Message string `json:"message"`
		}
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	return resp, nil
}
