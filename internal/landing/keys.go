package landing

import (
	"fmt"
	"strings"
	"time"
)

const (
	rawJSONPrefix    = "raw/json"
	rawParquetPrefix = "raw/parquet"

	datePartLayout = "2006-01-02"
)

// RawJSONKey returns the landing key for a symbol's raw payload on a date.
func RawJSONKey(symbol string, date time.Time) string {
	return fmt.Sprintf("%s/symbol=%s/date=%s.json", rawJSONPrefix, symbol, date.Format(datePartLayout))
}

// ExtractKey returns the landing key for a symbol's columnar extract on a date.
func ExtractKey(symbol string, date time.Time) string {
	return fmt.Sprintf("%s/symbol=%s/date=%s.parquet", rawParquetPrefix, symbol, date.Format(datePartLayout))
}

// rawJSONSymbolPrefix returns the listing prefix covering every raw payload
// landed for one symbol.
func rawJSONSymbolPrefix(symbol string) string {
	return fmt.Sprintf("%s/symbol=%s/", rawJSONPrefix, symbol)
}

// ParseRawJSONKey recovers the symbol and date from a raw payload key.
func ParseRawJSONKey(key string) (string, time.Time, error) {
	rest, ok := strings.CutPrefix(key, rawJSONPrefix+"/")
	if !ok {
		return "", time.Time{}, fmt.Errorf("key %q outside prefix %s", key, rawJSONPrefix)
	}

	symbolPart, datePart, ok := strings.Cut(rest, "/")
	if !ok {
		return "", time.Time{}, fmt.Errorf("key %q missing date segment", key)
	}

	symbol, ok := strings.CutPrefix(symbolPart, "symbol=")
	if !ok || symbol == "" {
		return "", time.Time{}, fmt.Errorf("key %q missing symbol partition", key)
	}

	dateStr, ok := strings.CutPrefix(datePart, "date=")
	if !ok {
		return "", time.Time{}, fmt.Errorf("key %q missing date partition", key)
	}
	dateStr, ok = strings.CutSuffix(dateStr, ".json")
	if !ok {
		return "", time.Time{}, fmt.Errorf("key %q is not a json object", key)
	}

	date, err := time.Parse(datePartLayout, dateStr)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("key %q has invalid date: %w", key, err)
	}

	return symbol, date, nil
}
