package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements bootstrap the raw schema and warehouse tables. Every
// statement is idempotent so the job can start against an empty database.
var schemaStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS raw`,

	`CREATE TABLE IF NOT EXISTS raw.stocks (
		symbol       TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		sector       TEXT,
		exchange     TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS raw.accounts (
		account_id   TEXT PRIMARY KEY,
		user_name    TEXT NOT NULL,
		email        TEXT,
		account_type TEXT,
		balance      NUMERIC(14,2)
	)`,

	`CREATE TABLE IF NOT EXISTS raw.orders (
		order_id   TEXT PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES raw.accounts (account_id),
		symbol     TEXT NOT NULL REFERENCES raw.stocks (symbol),
		order_type TEXT NOT NULL,
		quantity   INTEGER NOT NULL,
		price      NUMERIC(12,4) NOT NULL,
		status     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS raw.trades (
		trade_id     TEXT PRIMARY KEY,
		order_id     TEXT NOT NULL REFERENCES raw.orders (order_id),
		account_id   TEXT NOT NULL,
		symbol       TEXT NOT NULL,
		trade_type   TEXT NOT NULL,
		quantity     INTEGER NOT NULL,
		price        NUMERIC(12,4) NOT NULL,
		total_amount NUMERIC(14,2) NOT NULL,
		traded_at    TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS raw.daily_prices (
		symbol      TEXT NOT NULL,
		price_date  DATE NOT NULL,
		open_price  NUMERIC(12,4),
		high_price  NUMERIC(12,4),
		low_price   NUMERIC(12,4),
		close_price NUMERIC(12,4),
		volume      BIGINT,
		PRIMARY KEY (symbol, price_date)
	)`,
}

// EnsureSchema creates the warehouse schema and tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
