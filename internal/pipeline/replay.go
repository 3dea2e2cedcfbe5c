package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fintrade/market-ingest/internal/api"
	"github.com/fintrade/market-ingest/internal/landing"
	"github.com/fintrade/market-ingest/internal/loader"
)

// ReplaySource reads back landed raw payloads.
type ReplaySource interface {
	GetRaw(ctx context.Context, symbol string, date time.Time) ([]byte, error)
	ListRawDates(ctx context.Context, symbol string) ([]time.Time, error)
}

// Replayer rebuilds warehouse rows from landed raw payloads. It runs the
// same parse, convert and load paths as the ingest pipeline but reads from
// the landing bucket instead of the API, so no quota is spent.
type Replayer struct {
	source ReplaySource
	sink   PriceSink
	logger *slog.Logger
}

// NewReplayer assembles a Replayer. A nil logger falls back to slog.Default().
func NewReplayer(source ReplaySource, sink PriceSink, logger *slog.Logger) *Replayer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Replayer{
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Replay loads the landed payloads for the given symbols and dates. An empty
// dates slice replays every date landed for each symbol. A date with no
// landed payload is skipped with a warning; parse and load failures fail the
// symbol, and failed symbols aggregate into an *IncompleteError after every
// symbol has been attempted.
func (r *Replayer) Replay(ctx context.Context, symbols []string, dates []time.Time) error {
	runID := uuid.New().String()
	logger := r.logger.With("run_id", runID)

	start := time.Now()
	logger.Info("starting replay", "symbols", len(symbols))

	var (
		failed   []string
		objects  int
		missing  int
		inserted int
		skipped  int
	)
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("replay cancelled: %w", err)
		}

		symbolDates := dates
		if len(symbolDates) == 0 {
			listed, err := r.source.ListRawDates(ctx, symbol)
			if err != nil {
				logger.Error("symbol failed", "symbol", symbol, "error", err)
				failed = append(failed, symbol)
				continue
			}
			symbolDates = listed
		}

		ok := true
		for _, date := range symbolDates {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("replay cancelled: %w", err)
			}

			res, err := r.replayOne(ctx, symbol, date)
			if err != nil {
				if errors.Is(err, landing.ErrNotFound) {
					logger.Warn("no raw payload landed",
						"symbol", symbol,
						"date", date.Format("2006-01-02"))
					missing++
					continue
				}
				logger.Error("replay failed",
					"symbol", symbol,
					"date", date.Format("2006-01-02"),
					"error", err)
				ok = false
				continue
			}
			objects++
			inserted += res.Inserted
			skipped += res.Skipped
		}
		if !ok {
			failed = append(failed, symbol)
		}
	}

	logger.Info("replay finished",
		"objects", objects,
		"missing", missing,
		"failed", len(failed),
		"rows_inserted", inserted,
		"rows_skipped", skipped,
		"duration", time.Since(start))

	if len(failed) > 0 {
		return &IncompleteError{Failed: failed}
	}
	return nil
}

func (r *Replayer) replayOne(ctx context.Context, symbol string, date time.Time) (loader.LoadResult, error) {
	payload, err := r.source.GetRaw(ctx, symbol, date)
	if err != nil {
		return loader.LoadResult{}, err
	}

	series, err := api.ParseDailySeries(symbol, payload)
	if err != nil {
		return loader.LoadResult{}, err
	}

	records, err := api.ToPriceRecords(series)
	if err != nil {
		return loader.LoadResult{}, err
	}

	return r.sink.LoadPrices(ctx, records)
}
