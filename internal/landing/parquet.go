package landing

import (
	"bytes"
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/fintrade/market-ingest/internal/model"
)

// priceRow is the Parquet schema of the columnar extract. Column names match
// the warehouse table so downstream loads map one to one.
type priceRow struct {
	Symbol string  `parquet:"symbol"`
	Date   string  `parquet:"price_date"`
	Open   float64 `parquet:"open_price"`
	High   float64 `parquet:"high_price"`
	Low    float64 `parquet:"low_price"`
	Close  float64 `parquet:"close_price"`
	Volume int64   `parquet:"volume"`
}

// EncodeParquet encodes price records as a Parquet file in memory. Extracts
// are small (one symbol, at most a few thousand rows) so a single row group
// is enough.
func EncodeParquet(records []model.PriceRecord) ([]byte, error) {
	rows := make([]priceRow, len(records))
	for i, r := range records {
		rows[i] = priceRow{
			Symbol: r.Symbol,
			Date:   r.Date.Format(datePartLayout),
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		}
	}

	var buf bytes.Buffer
	w := parquet.NewGenericWriter[priceRow](&buf)
	if _, err := w.Write(rows); err != nil {
		return nil, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close parquet writer: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeParquet reads a landed extract back into price records.
func DecodeParquet(data []byte) ([]model.PriceRecord, error) {
	rows, err := parquet.Read[priceRow](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read parquet rows: %w", err)
	}

	records := make([]model.PriceRecord, len(rows))
	for i, r := range rows {
		date, err := time.Parse(datePartLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("parse price_date %q: %w", r.Date, err)
		}
		records[i] = model.PriceRecord{
			Symbol: r.Symbol,
			Date:   date,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		}
	}

	return records, nil
}
