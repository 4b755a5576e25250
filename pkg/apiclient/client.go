package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/maintboard/cmmskit/pkg/tokenstore"
)

// Client is the single HTTP entry point for all backend I/O. It owns the
// middleware chain; everything above it works with typed payloads and
// normalized errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures client creation.
type Option func(*options)

type options struct {
	log         *slog.Logger
	base        http.RoundTripper
	middlewares []Middleware
	onAuthError AuthErrorHandler
}

// WithLogger sets the structured logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithBaseTransport replaces the base http.RoundTripper under the middleware
// chain. Mainly useful in tests.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		if rt != nil {
			o.base = rt
		}
	}
}

// WithMiddleware appends extra middlewares outside the default auth chain.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(o *options) {
		o.middlewares = append(o.middlewares, middlewares...)
	}
}

// WithAuthErrorHandler sets the handler fired on unrecoverable auth failure.
func WithAuthErrorHandler(h AuthErrorHandler) Option {
	return func(o *options) {
		o.onAuthError = h
	}
}

// New creates a Client with the default middleware chain: refresh-on-401
// wrapping bearer injection. The bearer middleware reads the token store
// fresh on every request, so requests issued after a successful refresh
// always carry the new token.
func New(cfg Config, store tokenstore.Store, opts ...Option) *Client {
	o := &options{log: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	refresher := NewRefresher(cfg, store, o.onAuthError, o.log)

	chain := make([]Middleware, 0, len(o.middlewares)+2)
	chain = append(chain, o.middlewares...)
	chain = append(chain, WithTokenRefresh(refresher), WithBearerAuth(store))

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: Chain(o.base, chain...),
		},
		log: o.log,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, body)
}

// Patch issues a PATCH request with a JSON body and decodes the response into T.
func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPatch, path, body)
}

// Delete issues a DELETE request, discarding any response payload.
func Delete(ctx context.Context, c *Client, path string) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, path, nil)
	return err
}

// do runs one request through the middleware chain and normalizes every
// failure into *Error. It performs no retries of its own; the only automatic
// resubmission in the system is the refresh middleware's single 401 retry.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return zero, &Error{Message: err.Error()}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return zero, &Error{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, normalizeTransport(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, normalizeResponse(resp)
	}

	if resp.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(&zero); err != nil && !errors.Is(err, io.EOF) {
		return zero, &Error{Message: "failed to decode response", Status: resp.StatusCode}
	}
	return zero, nil
}
