package vault

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	kerrors "github.com/PolarWolf314/obslog/internal/errors"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	// DefaultEndpoint is the Local REST API plugin's plain HTTP listener.
	DefaultEndpoint = "http://127.0.0.1:27123"

	// DefaultTimeout bounds a single append request.
	DefaultTimeout = 3 * time.Second
)

// Option configures a Client built with NewClient.
type Option func(*Client)

// WithEndpoint sets the scheme, host and port requests are sent to.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is
// overwritten by the client's timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client appends text to notes in a vault.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
}

// Response is the vault's reply. The body is not interpreted.
type Response struct {
	StatusCode int
	Body       string
}

// NewClient returns a client for the local vault API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = cleanhttp.DefaultClient()
	}
	// Copy so a client passed to WithHTTPClient keeps its own timeout.
	hc := *c.http
	hc.Timeout = c.timeout
	c.http = &hc
	return c
}

// Endpoint returns the base URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// URL returns the full request URL for targetPath.
func (c *Client) URL(targetPath string) string {
	return c.endpoint + targetPath
}

// Append posts body to the note at targetPath, authenticated with apiKey.
// The request is made once. Any status code is returned as a response;
// only transport failures and timeouts are errors.
func (c *Client) Append(ctx context.Context, apiKey, body, targetPath string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(targetPath), strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %v: %w", targetPath, err, kerrors.ErrRequestFailed)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "text/markdown")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting to %s: %v: %w", targetPath, err, kerrors.ErrRequestFailed)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %v: %w", targetPath, err, kerrors.ErrRequestFailed)
	}

	return &Response{StatusCode: resp.StatusCode, Body: string(data)}, nil
}
