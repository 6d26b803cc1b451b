// Package render talks to a QuickChart-compatible rendering backend.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL  = "https://quickchart.io"
	DefaultMaxBytes = 10 << 20

	// chart.js major version requested from the backend
	chartVersion = "3"

	maxErrorBody = 512
)

// ErrEmptyImage is returned when the backend answers 2xx with no body.
var ErrEmptyImage = errors.New("backend returned an empty image")

// ErrImageTooLarge is returned when the image exceeds the client's limit.
var ErrImageTooLarge = errors.New("backend image exceeds size limit")

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Client renders chart specifications into PNG bytes. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxBytes   int64
	userAgent  string
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client; its Timeout is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request. Zero means no limit beyond the context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

func WithMaxBytes(n int64) Option {
	return func(c *Client) { c.maxBytes = n }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a client for the backend at baseURL. An empty baseURL
// selects the public QuickChart service.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		maxBytes:   DefaultMaxBytes,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render sends one GET request carrying chart (a JSON chart specification)
// and returns the image bytes.
func (c *Client) Render(ctx context.Context, chart []byte) ([]byte, error) {
	endpoint := c.baseURL + "/chart?v=" + chartVersion + "&c=" + escapeComponent(string(chart))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build render request: %w", err)
	}
	req.Header.Set("Accept", "image/png")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("backend rejected chart", "status", resp.StatusCode, "elapsed", time.Since(start))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	img, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read render response: %w", err)
	}
	if int64(len(img)) > c.maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrImageTooLarge, c.maxBytes)
	}
	if len(img) == 0 {
		return nil, ErrEmptyImage
	}

	c.logger.Debug("chart rendered", "bytes", len(img), "elapsed", time.Since(start))
	return img, nil
}

// escapeComponent encodes s as a query value with spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
