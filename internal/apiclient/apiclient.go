// Package apiclient handles all communication with the GiftHarmony
// backend API. Every resource method funnels through one request
// pipeline: build URL and headers from current session state, issue the
// call, normalize the outcome into a typed value or an error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	internal_errors "github.com/giftharmony/giftharmony/internal/errors"
	"github.com/giftharmony/giftharmony/internal/logger"
	"github.com/giftharmony/giftharmony/internal/metrics"
	"github.com/giftharmony/giftharmony/internal/session"
)

// Client is a stateful wrapper around the HTTP transport. The base URL
// is resolved once at construction; the bearer token lives in the
// session manager and is read fresh for every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *session.Manager
}

type Option func(*Client)

// WithHTTPClient swaps the underlying transport. The pipeline itself
// enforces no timeout and no retries; configure those on the client you
// pass in, or drive cancellation through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend rooted at baseURL. The session
// manager has already restored any persisted token, so a client built
// over a warm store starts out authenticated.
func New(baseURL string, tokens *session.Manager, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken stores a new session token, durably and in memory.
func (c *Client) SetToken(token string) error {
	return c.tokens.SetToken(token)
}

// ClearToken drops the session token, returning the client to the
// unauthenticated state.
func (c *Client) ClearToken() error {
	return c.tokens.ClearToken()
}

// headers is a pure function of the session manager's current value:
// Content-Type always, Authorization iff a token is held.
func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if token, ok := c.tokens.Token(); ok {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// do executes one API call. path is relative to the base URL; query may
// be nil; a non-nil body is JSON-encoded; a non-nil out receives the
// decoded success payload. One attempt, no retries, no timeout — the
// context is the caller's only cancellation handle.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header = c.headers()
	requestId := uuid.NewString()
	req.Header.Set("X-Request-Id", requestId)

	done := metrics.RequestStarted(method)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		done(0)
		logger.Log.Debug("api request failed", "method", method, "path", path, "request_id", requestId, "error", err)
		return fmt.Errorf("backend unavailable: %w", err)
	}
	defer resp.Body.Close()
	done(resp.StatusCode)
	logger.Log.Debug("api request", "method", method, "path", path, "request_id", requestId, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response body: %w", err)
	}
	return nil
}

// errorFromResponse normalizes a non-ok response into a single
// message-bearing error: the server's message field when the body
// parses, a synthesized status line otherwise.
func errorFromResponse(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	message := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(bodyBytes, &payload); err == nil && payload.Message != "" {
		message = payload.Message
	}

	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: resp.StatusCode}
}
