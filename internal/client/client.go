package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/exambank/backend/internal/app/models/dto"
	"github.com/exambank/backend/internal/pkg/auth"
)

const defaultTimeout = 15 * time.Second

// APIError is a request the server answered with a failure envelope or a
// non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Client calls the API on behalf of one logged-in account. Every request
// carries the role header plus the matching <role>-token header; the token
// comes from the injected source so a re-login is picked up automatically.
type Client struct {
	baseURL    string
	role       auth.Role
	token      func() string
	httpClient *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a client for the given portal role. tokenSource may return the
// empty string before login; only the login call itself works without one.
func New(baseURL string, role auth.Role, tokenSource func() string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		role:       role,
		token:      tokenSource,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates against POST /<role>/login and returns the issued
// token. The caller is responsible for storing it where tokenSource finds it.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	body, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var resp dto.LoginResponse
	err = c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/%s/login", c.role), "application/json", bytes.NewReader(body), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON sends a request with auth headers and decodes the envelope's data
// field into out. A call counts as successful only when the HTTP status is
// 2xx and the envelope's status flag is true; otherwise the envelope message
// comes back as an APIError. There are no retries, the caller decides.
func (c *Client) doJSON(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("role", string(c.role))
	if token := c.token(); token != "" {
		req.Header.Set(c.role.TokenHeader(), token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "malformed response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !envelope.Status {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// Get performs an authenticated GET and decodes the data field into out
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, "", nil, out)
}

// PostJSON performs an authenticated POST with a JSON body
func (c *Client) PostJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body), out)
}

// Delete performs an authenticated DELETE
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, "", nil, nil)
}
