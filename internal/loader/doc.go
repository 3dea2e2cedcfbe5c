// Package loader writes extracted rows into the warehouse.
//
// Loaders:
//   - Price loader (raw.daily_prices)
//   - Reference loader (raw.stocks, raw.accounts, raw.orders, raw.trades)
//
// All loads are INSERT ... ON CONFLICT DO NOTHING on the natural key:
// re-running a day reports already-loaded rows as conflicts instead of
// updating them. Historical rows are never mutated.
package loader
