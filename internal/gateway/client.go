// Package gateway is the HTTP/JSON client for the FitSync backend API.
//
// Every operation maps to one REST endpoint under the configured base path
// (default http://localhost:5000/api). All requests are sent with
// Content-Type: application/json and honor the caller's context, so an
// aborted interaction cancels its in-flight request instead of leaking it.
//
// Failures are reported as one of two kinds: ConnectivityError when the
// backend never answered (with guidance to start the server), or APIError
// carrying the status code and the message from the response body. Both map
// onto the package sentinel errors for errors.Is checks.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fitsync/internal/logger"
)

// Client talks to the FitSync backend gateway.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout overrides the default 30 second request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.Timeout = timeout }
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a gateway client for the given base URL, which should include
// the /api path segment.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logger.WithComponent("gateway"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one gateway call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	header http.Header
	body   any
}

// do performs the HTTP exchange and decodes the JSON response into out (which
// may be nil when the caller has no use for the body).
func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request body: %w", req.op, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", req.op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, values := range req.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Context errors belong to the caller, not the transport.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Error().
			Err(err).
			Str("op", req.op).
			Str("url", endpoint).
			Msg("Backend request failed at transport level")
		return &ConnectivityError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", req.op, err)
	}

	c.log.Debug().
		Str("op", req.op).
		Str("method", req.method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Gateway request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(req.op, resp.StatusCode, resp.Status, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", req.op, err)
	}
	return nil
}

// apiError builds an APIError from a non-2xx response, preferring the message
// field of the JSON error body over the HTTP status line.
func (c *Client) apiError(op string, statusCode int, status string, body []byte) error {
	message := status
	var errBody struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Message != "" {
			message = errBody.Message
		} else if errBody.Error != "" {
			message = errBody.Error
		}
	}

	c.log.Warn().
		Str("op", op).
		Int("status", statusCode).
		Str("message", message).
		Msg("Backend rejected request")

	return &APIError{Op: op, StatusCode: statusCode, Message: message}
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, request{op: op, method: http.MethodGet, path: path, query: query}, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, request{op: op, method: http.MethodPost, path: path, body: body}, out)
}

func (c *Client) put(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, request{op: op, method: http.MethodPut, path: path, body: body}, out)
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	return c.do(ctx, request{op: op, method: http.MethodDelete, path: path}, nil)
}
