// Package pipeline orchestrates the daily ingest run.
//
// Symbols are processed strictly one at a time: fetch the daily series, land
// the raw payload, land the Parquet extract, load the warehouse rows, then
// pace before the next symbol. A failed symbol never stops the run; failures
// are collected and reported together as an IncompleteError so the scheduler
// sees a non-zero exit while every healthy symbol still lands.
//
// The package also hosts the reference-entity Seeder (cmd/ingest -init) and
// the Replayer (cmd/replay), which rebuilds warehouse rows from landed raw
// payloads without spending API quota.
package pipeline
