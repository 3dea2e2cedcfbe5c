// Package model defines shared data types used across the FinTrade ingestion pipeline.
//
// All types mirror the warehouse tables in the "raw" Postgres schema.
//
// Conventions:
//   - Prices: float64 dollars, stored as NUMERIC(12,4)
//   - Dates: time.Time at UTC midnight, stored as DATE
//   - IDs: zero-padded strings (ACC00001, ORD000001, TRD000001)
package model
