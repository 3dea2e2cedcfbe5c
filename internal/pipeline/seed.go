package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/fintrade/market-ingest/internal/catalog"
	"github.com/fintrade/market-ingest/internal/config"
	"github.com/fintrade/market-ingest/internal/loader"
	"github.com/fintrade/market-ingest/internal/model"
)

// ReferenceSink loads reference entities into the warehouse.
type ReferenceSink interface {
	LoadStocks(ctx context.Context, stocks []model.Stock) (loader.LoadResult, error)
	LoadAccounts(ctx context.Context, accounts []model.Account) (loader.LoadResult, error)
	LoadOrders(ctx context.Context, orders []model.Order) (loader.LoadResult, error)
	LoadTrades(ctx context.Context, trades []model.Trade) (loader.LoadResult, error)
}

// Seeder populates the reference tables a fresh warehouse needs before the
// price feed means anything: the stock catalog plus generated accounts,
// orders and trades. Generation is driven by a seeded faker so the same
// config always produces the same entities, and every load is conflict-free,
// so re-seeding an already seeded warehouse is a no-op.
type Seeder struct {
	refs   ReferenceSink
	cfg    config.SeedConfig
	logger *slog.Logger

	now func() time.Time
}

// NewSeeder assembles a Seeder. A nil logger falls back to slog.Default().
func NewSeeder(refs ReferenceSink, cfg config.SeedConfig, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}

	return &Seeder{
		refs:   refs,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Seed loads the reference entities in dependency order: stocks and accounts
// first, then the orders that reference them, then the trades that reference
// the orders.
func (s *Seeder) Seed(ctx context.Context) error {
	faker := gofakeit.New(int64(s.cfg.RandomSeed))

	stocks := catalog.Default()
	if _, err := s.refs.LoadStocks(ctx, stocks); err != nil {
		return fmt.Errorf("seed stocks: %w", err)
	}

	accounts := s.buildAccounts(faker)
	if _, err := s.refs.LoadAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	orders := s.buildOrders(faker, accounts, stocks)
	if _, err := s.refs.LoadOrders(ctx, orders); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	trades := buildTrades(faker, orders)
	if _, err := s.refs.LoadTrades(ctx, trades); err != nil {
		return fmt.Errorf("seed trades: %w", err)
	}

	s.logger.Info("seeded reference entities",
		"stocks", len(stocks),
		"accounts", len(accounts),
		"orders", len(orders),
		"trades", len(trades))
	return nil
}

func (s *Seeder) buildAccounts(f *gofakeit.Faker) []model.Account {
	types := []string{model.AccountTypeIndividual, model.AccountTypeInstitutional}

	accounts := make([]model.Account, s.cfg.Accounts)
	for i := range accounts {
		accounts[i] = model.Account{
			AccountID:   fmt.Sprintf("ACC%05d", i+1),
			UserName:    f.Name(),
			Email:       f.Email(),
			AccountType: f.RandomString(types),
			Balance:     roundCents(f.Float64Range(10_000, 1_000_000)),
		}
	}
	return accounts
}

func (s *Seeder) buildOrders(f *gofakeit.Faker, accounts []model.Account, stocks []model.Stock) []model.Order {
	statuses := []string{model.OrderStatusFilled, model.OrderStatusCancelled, model.OrderStatusPartial}
	sides := []string{model.SideBuy, model.SideSell}

	now := s.now().UTC()
	yearAgo := now.AddDate(-1, 0, 0)

	orders := make([]model.Order, s.cfg.Orders)
	for i := range orders {
		account := accounts[f.Number(0, len(accounts)-1)]
		stock := stocks[f.Number(0, len(stocks)-1)]

		orders[i] = model.Order{
			OrderID:   fmt.Sprintf("ORD%06d", i+1),
			AccountID: account.AccountID,
			Symbol:    stock.Symbol,
			OrderType: f.RandomString(sides),
			Quantity:  f.Number(1, 1000),
			Price:     roundCents(f.Float64Range(10, 500)),
			Status:    f.RandomString(statuses),
			CreatedAt: f.DateRange(yearAgo, now),
		}
	}
	return orders
}

// buildTrades emits one trade per filled or partial order. Cancelled orders
// never traded.
func buildTrades(f *gofakeit.Faker, orders []model.Order) []model.Trade {
	var trades []model.Trade
	for _, order := range orders {
		if order.Status != model.OrderStatusFilled && order.Status != model.OrderStatusPartial {
			continue
		}

		quantity := order.Quantity
		if order.Status == model.OrderStatusPartial {
			quantity = f.Number(1, order.Quantity)
		}

		trades = append(trades, model.Trade{
			TradeID:     fmt.Sprintf("TRD%06d", len(trades)+1),
			OrderID:     order.OrderID,
			AccountID:   order.AccountID,
			Symbol:      order.Symbol,
			TradeType:   order.OrderType,
			Quantity:    quantity,
			Price:       order.Price,
			TotalAmount: roundCents(float64(quantity) * order.Price),
			TradedAt:    order.CreatedAt,
		})
	}
	return trades
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
