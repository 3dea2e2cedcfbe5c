package loader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrade/market-ingest/internal/model"
)

const insertPriceSQL = `
	INSERT INTO raw.daily_prices (symbol, price_date, open_price, high_price, low_price, close_price, volume)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (symbol, price_date) DO NOTHING
`

// PriceLoader writes price records into raw.daily_prices.
type PriceLoader struct {
	db     *pgxpool.Pool
	logger *slog.Logger

	mu      sync.Mutex
	metrics LoadMetrics
}

// NewPriceLoader creates a new PriceLoader.
func NewPriceLoader(db *pgxpool.Pool, logger *slog.Logger) *PriceLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &PriceLoader{
		db:     db,
		logger: logger,
	}
}

// LoadPrices inserts rows with ON CONFLICT DO NOTHING and reports how many
// were new versus already present.
func (l *PriceLoader) LoadPrices(ctx context.Context, rows []model.PriceRecord) (LoadResult, error) {
	if len(rows) == 0 {
		return LoadResult{}, nil
	}

	start := time.Now()

	conflicts, err := execBatch(ctx, l.db, buildPriceBatch(rows), len(rows))
	if err != nil {
		l.mu.Lock()
		l.metrics.Errors++
		l.mu.Unlock()
		return LoadResult{}, fmt.Errorf("load prices: %w", err)
	}

	result := LoadResult{Inserted: len(rows) - conflicts, Skipped: conflicts}

	l.mu.Lock()
	l.metrics.Inserts += int64(result.Inserted)
	l.metrics.Conflicts += int64(conflicts)
	l.metrics.Batches++
	l.mu.Unlock()

	l.logger.Debug("loaded prices",
		"symbol", rows[0].Symbol,
		"count", len(rows),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)

	return result, nil
}

// Stats returns accumulated metrics.
func (l *PriceLoader) Stats() LoadMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.metrics
}

// buildPriceBatch queues one insert per record.
func buildPriceBatch(rows []model.PriceRecord) *pgx.Batch {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(insertPriceSQL, r.Symbol, r.Date, r.Open, r.High, r.Low, r.Close, r.Volume)
	}
	return batch
}

// execBatch sends a batch of n conflict-free inserts and counts the rows
// skipped on their natural key.
func execBatch(ctx context.Context, db *pgxpool.Pool, batch *pgx.Batch, n int) (conflicts int, err error) {
	results := db.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < n; i++ {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
