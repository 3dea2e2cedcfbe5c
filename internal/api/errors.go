package api

import (
	"context"
	"errors"
	"fmt"
)

// APIError represents an HTTP-level error from the market-data API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("market data api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// RateLimitError reports the provider's soft per-minute limit: the response
// is HTTP 200 but carries a "Note" payload instead of data.
type RateLimitError struct {
	Symbol string
	Note   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited fetching %s: %s", e.Symbol, e.Note)
}

// QuotaError reports an exhausted daily request quota.
type QuotaError struct {
	Symbol  string
	Message string
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("quota exhausted fetching %s: %s", e.Symbol, e.Message)
}

// CredentialError reports an invalid or demo API key. Never retried.
type CredentialError struct {
	Symbol  string
	Message string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("invalid api key fetching %s: %s", e.Symbol, e.Message)
}

// MalformedError reports a 200 response without the expected series payload.
type MalformedError struct {
	Symbol string
	Detail string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("unexpected api response for %s: %s", e.Symbol, e.Detail)
}

// retryable reports whether err should consume another fetch attempt.
// Transport failures and 5xx/429 responses are transient; soft limits and
// quota markers clear after a cooldown; credential and payload-shape errors
// never recover on their own.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}

	var credErr *CredentialError
	if errors.As(err, &credErr) {
		return false
	}

	var malErr *MalformedError
	if errors.As(err, &malErr) {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return true
}
