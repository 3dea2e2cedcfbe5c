package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// GetDailySeries fetches the daily OHLCV series for one symbol.
//
// Transient failures retry with exponential backoff up to the attempt budget.
// Soft rate limits and quota markers sleep the provider cooldown first; the
// cooldown happens inside the attempt, so it counts against the same budget
// as the request that observed the marker. Credential and payload-shape
// errors fail immediately.
func (c *Client) GetDailySeries(ctx context.Context, symbol string) (*DailySeries, error) {
	query := url.Values{}
	query.Set("function", "TIME_SERIES_DAILY")
	query.Set("symbol", symbol)
	query.Set("outputsize", c.outputSize)
	query.Set("apikey", c.apiKey)

	var series *DailySeries

	operation := func() error {
		body, err := c.doRequest(ctx, http.MethodGet, "/query", query)
		if err != nil {
			return classify(err)
		}

		parsed, err := ParseDailySeries(symbol, body)
		if err != nil {
			if cerr := c.coolDown(ctx, err); cerr != nil {
				return backoff.Permanent(cerr)
			}
			return classify(err)
		}

		series = parsed
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryBaseDelay
	bo.MaxInterval = c.retryMaxDelay
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying fetch",
			"symbol", symbol,
			"wait", wait,
			"error", err,
		)
	}

	retries := uint64(0)
	if c.maxAttempts > 1 {
		retries = uint64(c.maxAttempts - 1)
	}

	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, retries), ctx),
		notify,
	)
	if err != nil {
		return nil, fmt.Errorf("get daily series %s: %w", symbol, err)
	}

	return series, nil
}

// classify wraps fatal errors so the retry loop stops immediately.
func classify(err error) error {
	if retryable(err) {
		return err
	}
	return backoff.Permanent(err)
}

// coolDown sleeps the provider cooldown when err is a soft limit or quota
// marker. Returns early with the context error if the run is cancelled
// mid-sleep.
func (c *Client) coolDown(ctx context.Context, err error) error {
	var reason string

	var rateErr *RateLimitError
	var quotaErr *QuotaError
	switch {
	case errors.As(err, &rateErr):
		reason = "rate limit"
	case errors.As(err, &quotaErr):
		reason = "quota exhausted"
	default:
		return nil
	}

	c.logger.Warn("cooling down",
		"reason", reason,
		"cooldown", c.cooldown,
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.cooldown):
		return nil
	}
}
