package api

// DailyBar is a single day of prices as returned by the API. The provider
// prefixes field names with ordinals, so the literal tags stay.
type DailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// DailySeries is a parsed TIME_SERIES_DAILY response for one symbol.
type DailySeries struct {
	Symbol string              // Requested symbol
	Raw    []byte              // Exact response body as received
	Meta   map[string]string   // "Meta Data" object
	Bars   map[string]DailyBar // Bars keyed by YYYY-MM-DD date string
}

// dailyEnvelope is the wire shape of a TIME_SERIES_DAILY response. Rate-limit
// and error markers arrive as HTTP 200 bodies with these keys in place of the
// series.
type dailyEnvelope struct {
	MetaData    map[string]string   `json:"Meta Data"`
	Note        string              `json:"Note"`
	Information string              `json:"Information"`
	TimeSeries  map[string]DailyBar `json:"Time Series (Daily)"`
}
