package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrade/market-ingest/internal/api"
	"github.com/fintrade/market-ingest/internal/loader"
	"github.com/fintrade/market-ingest/internal/model"
)

// Fetcher retrieves a symbol's daily series from the market-data API.
type Fetcher interface {
	GetDailySeries(ctx context.Context, symbol string) (*api.DailySeries, error)
}

// Landing persists raw payloads and extracts before any warehouse load.
type Landing interface {
	EnsureBucket(ctx context.Context) error
	PutRaw(ctx context.Context, symbol string, date time.Time, payload []byte, runID string) (string, error)
	PutExtract(ctx context.Context, symbol string, date time.Time, records []model.PriceRecord, runID string) (string, error)
}

// PriceSink loads converted price rows into the warehouse.
type PriceSink interface {
	LoadPrices(ctx context.Context, rows []model.PriceRecord) (loader.LoadResult, error)
}

// IncompleteError reports the symbols that failed after the run attempted
// every symbol.
type IncompleteError struct {
	Failed []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d symbols failed: %s", len(e.Failed), strings.Join(e.Failed, ", "))
}

// Pipeline runs the daily ingest over a fixed symbol list.
type Pipeline struct {
	fetcher Fetcher
	landing Landing
	sink    PriceSink
	symbols []string
	pacing  time.Duration
	logger  *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New assembles a Pipeline. A nil logger falls back to slog.Default().
func New(fetcher Fetcher, landing Landing, sink PriceSink, symbols []string, pacing time.Duration, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		fetcher: fetcher,
		landing: landing,
		sink:    sink,
		symbols: symbols,
		pacing:  pacing,
		logger:  logger,
		now:     time.Now,
		sleep:   sleepCtx,
	}
}

// Run executes one ingest pass. Symbols are processed sequentially with the
// pacing delay between them, and every symbol is attempted even when earlier
// ones fail. When any symbol fails the returned error is an *IncompleteError
// naming them.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.New().String()
	runDate := p.now().UTC().Truncate(24 * time.Hour)
	logger := p.logger.With("run_id", runID)

	start := time.Now()
	logger.Info("starting ingest run",
		"date", runDate.Format("2006-01-02"),
		"symbols", len(p.symbols))

	if err := p.landing.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("ensure landing bucket: %w", err)
	}

	var (
		failed   []string
		inserted int
		skipped  int
	)
	for i, symbol := range p.symbols {
		if i > 0 {
			if err := p.sleep(ctx, p.pacing); err != nil {
				return fmt.Errorf("run cancelled: %w", err)
			}
		}

		res, err := p.ingestSymbol(ctx, logger, symbol, runDate, runID)
		if err != nil {
			// Cancellation fails every remaining symbol too, so stop here
			// instead of reporting them all as data failures.
			if ctx.Err() != nil {
				return fmt.Errorf("run cancelled: %w", ctx.Err())
			}
			logger.Error("symbol failed", "symbol", symbol, "error", err)
			failed = append(failed, symbol)
			continue
		}
		inserted += res.Inserted
		skipped += res.Skipped
	}

	logger.Info("ingest run finished",
		"ok", len(p.symbols)-len(failed),
		"failed", len(failed),
		"rows_inserted", inserted,
		"rows_skipped", skipped,
		"duration", time.Since(start))

	if len(failed) > 0 {
		return &IncompleteError{Failed: failed}
	}
	return nil
}

// ingestSymbol moves one symbol through fetch, landing and load. The raw
// payload is landed before conversion so a conversion failure still leaves
// the payload replayable.
func (p *Pipeline) ingestSymbol(ctx context.Context, logger *slog.Logger, symbol string, runDate time.Time, runID string) (loader.LoadResult, error) {
	series, err := p.fetcher.GetDailySeries(ctx, symbol)
	if err != nil {
		return loader.LoadResult{}, err
	}

	rawKey, err := p.landing.PutRaw(ctx, symbol, runDate, series.Raw, runID)
	if err != nil {
		return loader.LoadResult{}, err
	}

	records, err := api.ToPriceRecords(series)
	if err != nil {
		return loader.LoadResult{}, err
	}

	if _, err := p.landing.PutExtract(ctx, symbol, runDate, records, runID); err != nil {
		return loader.LoadResult{}, err
	}

	res, err := p.sink.LoadPrices(ctx, records)
	if err != nil {
		// The landed copy is the recoverable truth; the rows can be rebuilt
		// with cmd/replay once the warehouse is reachable again.
		logger.Error("warehouse load failed after landing",
			"symbol", symbol,
			"key", rawKey,
			"error", err)
		return loader.LoadResult{}, err
	}

	logger.Info("ingested symbol",
		"symbol", symbol,
		"rows", len(records),
		"inserted", res.Inserted,
		"skipped", res.Skipped)
	return res, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
