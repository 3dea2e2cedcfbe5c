package api

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fintrade/market-ingest/internal/model"
)

// ToPriceRecords converts a parsed series into warehouse rows sorted by date
// ascending. Any unparseable field fails the whole series: a partially
// converted day must never land.
func ToPriceRecords(s *DailySeries) ([]model.PriceRecord, error) {
	records := make([]model.PriceRecord, 0, len(s.Bars))

	for dateStr, bar := range s.Bars {
		rec, err := toPriceRecord(s.Symbol, dateStr, bar)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", s.Symbol, err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

func toPriceRecord(symbol, dateStr string, bar DailyBar) (model.PriceRecord, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return model.PriceRecord{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}

	open, err := parsePrice("open", bar.Open)
	if err != nil {
		return model.PriceRecord{}, err
	}
	high, err := parsePrice("high", bar.High)
	if err != nil {
		return model.PriceRecord{}, err
	}
	low, err := parsePrice("low", bar.Low)
	if err != nil {
		return model.PriceRecord{}, err
	}
	closePrice, err := parsePrice("close", bar.Close)
	if err != nil {
		return model.PriceRecord{}, err
	}

	volume, err := strconv.ParseInt(bar.Volume, 10, 64)
	if err != nil {
		return model.PriceRecord{}, fmt.Errorf("parse volume %q: %w", bar.Volume, err)
	}

	return model.PriceRecord{
		Symbol: symbol,
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}

func parsePrice(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, value, err)
	}
	return f, nil
}
