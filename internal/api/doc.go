// Package api provides the market-data API client for daily price history.
//
// Endpoint:
//   - GET {base_url}/query?function=TIME_SERIES_DAILY&symbol=...&outputsize=...&apikey=...
//
// The provider signals failures inside HTTP 200 bodies: a "Note" key marks
// the per-minute burst limit, an "Information" key marks quota exhaustion or
// an invalid key, and a body without the "Time Series (Daily)" key is
// malformed. ParseDailySeries performs the classification.
package api
