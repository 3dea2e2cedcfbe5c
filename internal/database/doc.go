// Package database provides the warehouse connection pool and schema bootstrap.
//
// All landed data loads into the "raw" Postgres schema:
//   - raw.daily_prices: one row per symbol per trading day
//   - raw.stocks, raw.accounts, raw.orders, raw.trades: reference entities
//
// Downstream dbt models read from raw; nothing here mutates historical rows.
package database
