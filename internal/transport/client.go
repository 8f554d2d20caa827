// Package transport provides the HTTP client used to fetch remote manifest
// and content files.
package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// Client fetches remote content over HTTP.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client with the default timeout.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
		userAgent:  "aiassisted",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches the body at url. Any transport failure or non-200 status is
// returned as a NetworkError.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetworkError(url, 0, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(url, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNetworkError(url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError(url, resp.StatusCode, err)
	}
	return body, nil
}
