// Package catalog defines the static stock universe the pipeline ingests.
//
// The seed step loads these entries into raw.stocks; the daily job fetches
// prices for each symbol unless the config narrows the list.
package catalog

import "github.com/fintrade/market-ingest/internal/model"

// stocks is the built-in trading universe: fifteen large caps across the
// major sectors.
var stocks = []model.Stock{
	{Symbol: "AAPL", CompanyName: "Apple Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "MSFT", CompanyName: "Microsoft Corporation", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "GOOGL", CompanyName: "Alphabet Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "AMZN", CompanyName: "Amazon.com Inc.", Sector: "Consumer Discretionary", Exchange: "NASDAQ"},
	{Symbol: "META", CompanyName: "Meta Platforms Inc.", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "TSLA", CompanyName: "Tesla Inc.", Sector: "Consumer Discretionary", Exchange: "NASDAQ"},
	{Symbol: "NVDA", CompanyName: "NVIDIA Corporation", Sector: "Technology", Exchange: "NASDAQ"},
	{Symbol: "JPM", CompanyName: "JPMorgan Chase & Co.", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "BAC", CompanyName: "Bank of America Corporation", Sector: "Financials", Exchange: "NYSE"},
	{Symbol: "JNJ", CompanyName: "Johnson & Johnson", Sector: "Healthcare", Exchange: "NYSE"},
	{Symbol: "PFE", CompanyName: "Pfizer Inc.", Sector: "Healthcare", Exchange: "NYSE"},
	{Symbol: "XOM", CompanyName: "Exxon Mobil Corporation", Sector: "Energy", Exchange: "NYSE"},
	{Symbol: "CVX", CompanyName: "Chevron Corporation", Sector: "Energy", Exchange: "NYSE"},
	{Symbol: "WMT", CompanyName: "Walmart Inc.", Sector: "Consumer Staples", Exchange: "NYSE"},
	{Symbol: "KO", CompanyName: "The Coca-Cola Company", Sector: "Consumer Staples", Exchange: "NYSE"},
}

// Default returns the built-in stock universe in a fixed order.
func Default() []model.Stock {
	out := make([]model.Stock, len(stocks))
	copy(out, stocks)
	return out
}

// Symbols returns the ticker symbols of the built-in universe in order.
func Symbols() []string {
	out := make([]string, len(stocks))
	for i, s := range stocks {
		out[i] = s.Symbol
	}
	return out
}

// Lookup returns the catalog entry for symbol.
func Lookup(symbol string) (model.Stock, bool) {
	for _, s := range stocks {
		if s.Symbol == symbol {
			return s, true
		}
	}
	return model.Stock{}, false
}
