package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Client provides access to the market-data REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	maxAttempts    int
	retryBaseDelay time.Duration
	retryMaxDelay  time.Duration
	cooldown       time.Duration
	outputSize     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:         slog.Default(),
		maxAttempts:    3,
		retryBaseDelay: 4 * time.Second,
		retryMaxDelay:  60 * time.Second,
		cooldown:       65 * time.Second,
		outputSize:     "compact",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetryPolicy sets the attempt budget and backoff bounds.
func WithRetryPolicy(maxAttempts int, baseDelay, maxDelay time.Duration) ClientOption {
	return func(c *Client) {
		c.maxAttempts = maxAttempts
		c.retryBaseDelay = baseDelay
		c.retryMaxDelay = maxDelay
	}
}

// WithCooldown sets the sleep applied when the provider reports a soft rate
// limit or an exhausted quota.
func WithCooldown(d time.Duration) ClientOption {
	return func(c *Client) {
		c.cooldown = d
	}
}

// WithOutputSize sets the requested series size ("compact" or "full").
func WithOutputSize(size string) ClientOption {
	return func(c *Client) {
		c.outputSize = size
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
