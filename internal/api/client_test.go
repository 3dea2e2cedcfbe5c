package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"
)

// TestNewClient tests client construction with various options.
func TestNewClient(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := NewClient("https://api.example.com", "test-key")

		if c.baseURL != "https://api.example.com" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "https://api.example.com")
		}
		if c.apiKey != "test-key" {
			t.Errorf("apiKey = %q, want %q", c.apiKey, "test-key")
		}
		if c.httpClient.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 30*time.Second)
		}
		if c.maxAttempts != 3 {
			t.Errorf("maxAttempts = %d, want %d", c.maxAttempts, 3)
		}
		if c.retryBaseDelay != 4*time.Second {
			t.Errorf("retryBaseDelay = %v, want %v", c.retryBaseDelay, 4*time.Second)
		}
		if c.retryMaxDelay != 60*time.Second {
			t.Errorf("retryMaxDelay = %v, want %v", c.retryMaxDelay, 60*time.Second)
		}
		if c.cooldown != 65*time.Second {
			t.Errorf("cooldown = %v, want %v", c.cooldown, 65*time.Second)
		}
		if c.outputSize != "compact" {
			t.Errorf("outputSize = %q, want %q", c.outputSize, "compact")
		}
		if c.logger == nil {
			t.Error("logger should not be nil")
		}
	})

	t.Run("with timeout option", func(t *testing.T) {
		c := NewClient("https://api.example.com", "", WithTimeout(5*time.Second))
		if c.httpClient.Timeout != 5*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 5*time.Second)
		}
	})

	t.Run("with retry policy option", func(t *testing.T) {
		c := NewClient("https://api.example.com", "", WithRetryPolicy(5, 2*time.Second, 30*time.Second))
		if c.maxAttempts != 5 {
			t.Errorf("maxAttempts = %d, want %d", c.maxAttempts, 5)
		}
		if c.retryBaseDelay != 2*time.Second {
			t.Errorf("retryBaseDelay = %v, want %v", c.retryBaseDelay, 2*time.Second)
		}
		if c.retryMaxDelay != 30*time.Second {
			t.Errorf("retryMaxDelay = %v, want %v", c.retryMaxDelay, 30*time.Second)
		}
	})

	t.Run("with cooldown option", func(t *testing.T) {
		c := NewClient("https://api.example.com", "", WithCooldown(time.Second))
		if c.cooldown != time.Second {
			t.Errorf("cooldown = %v, want %v", c.cooldown, time.Second)
		}
	})

	t.Run("with output size option", func(t *testing.T) {
		c := NewClient("https://api.example.com", "", WithOutputSize("full"))
		if c.outputSize != "full" {
			t.Errorf("outputSize = %q, want %q", c.outputSize, "full")
		}
	})

	t.Run("with logger option", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		c := NewClient("https://api.example.com", "", WithLogger(logger))
		if c.logger != logger {
			t.Error("logger not set correctly")
		}
	})

	t.Run("with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		c := NewClient("https://api.example.com", "", WithHTTPClient(customClient))
		if c.httpClient != customClient {
			t.Error("custom HTTP client not set")
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		c := NewClient("https://api.example.com", "key",
			WithTimeout(15*time.Second),
			WithRetryPolicy(10, 500*time.Millisecond, 5*time.Second),
			WithLogger(logger),
		)
		if c.httpClient.Timeout != 15*time.Second {
			t.Errorf("Timeout = %v, want %v", c.httpClient.Timeout, 15*time.Second)
		}
		if c.maxAttempts != 10 {
			t.Errorf("maxAttempts = %d, want %d", c.maxAttempts, 10)
		}
		if c.logger != logger {
			t.Error("logger not set correctly")
		}
	})
}

// TestDoRequest tests the HTTP request functionality.
func TestDoRequest(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Accept") != "application/json" {
				t.Errorf("Accept header = %q, want %q", r.Header.Get("Accept"), "application/json")
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status": "ok"}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "test-key")
		body, err := c.doRequest(context.Background(), http.MethodGet, "/query", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != `{"status": "ok"}` {
			t.Errorf("body = %q, want %q", string(body), `{"status": "ok"}`)
		}
	})

	t.Run("request with query parameters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("function") != "TIME_SERIES_DAILY" {
				t.Errorf("function = %q, want %q", r.URL.Query().Get("function"), "TIME_SERIES_DAILY")
			}
			if r.URL.Query().Get("symbol") != "AAPL" {
				t.Errorf("symbol = %q, want %q", r.URL.Query().Get("symbol"), "AAPL")
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "key")
		query := url.Values{}
		query.Set("function", "TIME_SERIES_DAILY")
		query.Set("symbol", "AAPL")
		_, err := c.doRequest(context.Background(), http.MethodGet, "/query", query)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("4xx error returns APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "not found"}`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "key")
		_, err := c.doRequest(context.Background(), http.MethodGet, "/query", nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.StatusCode != 404 {
			t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, 404)
		}
		if !strings.Contains(string(apiErr.Body), "not found") {
			t.Errorf("Body should contain 'not found', got %q", string(apiErr.Body))
		}
	})

	t.Run("5xx error returns APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`internal error`))
		}))
		defer server.Close()

		c := NewClient(server.URL, "key")
		_, err := c.doRequest(context.Background(), http.MethodGet, "/query", nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}

		apiErr, ok := err.(*APIError)
		if !ok {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.StatusCode != 500 {
			t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, 500)
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		c := NewClient(server.URL, "key")
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := c.doRequest(ctx, http.MethodGet, "/query", nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "context canceled") {
			t.Errorf("error should contain 'context canceled', got %v", err)
		}
	})
}
