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

const (
	insertStockSQL = `
		INSERT INTO raw.stocks (symbol, company_name, sector, exchange)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol) DO NOTHING
	`
	insertAccountSQL = `
		INSERT INTO raw.accounts (account_id, user_name, email, account_type, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id) DO NOTHING
	`
	insertOrderSQL = `
		INSERT INTO raw.orders (order_id, account_id, symbol, order_type, quantity, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (order_id) DO NOTHING
	`
	insertTradeSQL = `
		INSERT INTO raw.trades (trade_id, order_id, account_id, symbol, trade_type, quantity, price, total_amount, traded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (trade_id) DO NOTHING
	`
)

// ReferenceLoader writes seeded reference entities into the warehouse.
// Orders reference accounts and stocks, trades reference orders, so callers
// must load in that dependency order.
type ReferenceLoader struct {
	db     *pgxpool.Pool
	logger *slog.Logger

	mu      sync.Mutex
	metrics LoadMetrics
}

// NewReferenceLoader creates a new ReferenceLoader.
func NewReferenceLoader(db *pgxpool.Pool, logger *slog.Logger) *ReferenceLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReferenceLoader{
		db:     db,
		logger: logger,
	}
}

// LoadStocks inserts catalog entries into raw.stocks.
func (l *ReferenceLoader) LoadStocks(ctx context.Context, stocks []model.Stock) (LoadResult, error) {
	batch := &pgx.Batch{}
	for _, s := range stocks {
		batch.Queue(insertStockSQL, s.Symbol, s.CompanyName, s.Sector, s.Exchange)
	}
	return l.load(ctx, "stocks", batch, len(stocks))
}

// LoadAccounts inserts accounts into raw.accounts.
func (l *ReferenceLoader) LoadAccounts(ctx context.Context, accounts []model.Account) (LoadResult, error) {
	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(insertAccountSQL, a.AccountID, a.UserName, a.Email, a.AccountType, a.Balance)
	}
	return l.load(ctx, "accounts", batch, len(accounts))
}

// LoadOrders inserts orders into raw.orders.
func (l *ReferenceLoader) LoadOrders(ctx context.Context, orders []model.Order) (LoadResult, error) {
	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(insertOrderSQL, o.OrderID, o.AccountID, o.Symbol, o.OrderType, o.Quantity, o.Price, o.Status, o.CreatedAt)
	}
	return l.load(ctx, "orders", batch, len(orders))
}

// LoadTrades inserts trades into raw.trades.
func (l *ReferenceLoader) LoadTrades(ctx context.Context, trades []model.Trade) (LoadResult, error) {
	batch := &pgx.Batch{}
	for _, tr := range trades {
		batch.Queue(insertTradeSQL, tr.TradeID, tr.OrderID, tr.AccountID, tr.Symbol, tr.TradeType, tr.Quantity, tr.Price, tr.TotalAmount, tr.TradedAt)
	}
	return l.load(ctx, "trades", batch, len(trades))
}

// Stats returns accumulated metrics.
func (l *ReferenceLoader) Stats() LoadMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.metrics
}

func (l *ReferenceLoader) load(ctx context.Context, table string, batch *pgx.Batch, n int) (LoadResult, error) {
	if n == 0 {
		return LoadResult{}, nil
	}

	start := time.Now()

	conflicts, err := execBatch(ctx, l.db, batch, n)
	if err != nil {
		l.mu.Lock()
		l.metrics.Errors++
		l.mu.Unlock()
		return LoadResult{}, fmt.Errorf("load %s: %w", table, err)
	}

	result := LoadResult{Inserted: n - conflicts, Skipped: conflicts}

	l.mu.Lock()
	l.metrics.Inserts += int64(result.Inserted)
	l.metrics.Conflicts += int64(conflicts)
	l.metrics.Batches++
	l.mu.Unlock()

	l.logger.Debug("loaded reference rows",
		"table", table,
		"count", n,
		"conflicts", conflicts,
		"duration", time.Since(start),
	)

	return result, nil
}
