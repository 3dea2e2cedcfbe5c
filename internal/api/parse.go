package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// seriesKey is the payload key holding the daily bars.
const seriesKey = "Time Series (Daily)"

// ParseDailySeries classifies and parses a TIME_SERIES_DAILY response body.
//
// The provider reports failures inside HTTP 200 bodies, so classification
// happens here rather than on status codes:
//   - "Note" marks the per-minute burst limit (RateLimitError)
//   - "Information" marks an invalid/demo key (CredentialError) or an
//     exhausted daily quota (QuotaError)
//   - a body without the series key is malformed (MalformedError)
func ParseDailySeries(symbol string, body []byte) (*DailySeries, error) {
	var env dailyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedError{Symbol: symbol, Detail: "invalid json: " + err.Error()}
	}

	if env.Note != "" {
		return nil, &RateLimitError{Symbol: symbol, Note: env.Note}
	}

	if env.Information != "" {
		lower := strings.ToLower(env.Information)
		if strings.Contains(lower, "demo") || strings.Contains(lower, "api key") {
			return nil, &CredentialError{Symbol: symbol, Message: env.Information}
		}
		return nil, &QuotaError{Symbol: symbol, Message: env.Information}
	}

	if env.TimeSeries == nil {
		detail := fmt.Sprintf("missing %q key, got %v", seriesKey, topLevelKeys(body))
		return nil, &MalformedError{Symbol: symbol, Detail: detail}
	}

	return &DailySeries{
		Symbol: symbol,
		Raw:    body,
		Meta:   env.MetaData,
		Bars:   env.TimeSeries,
	}, nil
}

// topLevelKeys lists the object's top-level keys for malformed-payload errors.
func topLevelKeys(body []byte) []string {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
