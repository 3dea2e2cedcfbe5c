package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fintrade/market-ingest/internal/catalog"
	"github.com/fintrade/market-ingest/internal/config"
	"github.com/fintrade/market-ingest/internal/database"
	"github.com/fintrade/market-ingest/internal/landing"
	"github.com/fintrade/market-ingest/internal/loader"
	"github.com/fintrade/market-ingest/internal/pipeline"
	"github.com/fintrade/market-ingest/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/ingest.yaml", "path to config file")
	dateStr := flag.String("date", "", "replay a single date (YYYY-MM-DD); empty replays every landed date")
	symbolsCSV := flag.String("symbols", "", "comma-separated symbols; empty replays the full catalog")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting replay",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var dates []time.Time
	if *dateStr != "" {
		date, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			logger.Error("invalid -date, want YYYY-MM-DD", "error", err)
			os.Exit(1)
		}
		dates = []time.Time{date}
	}

	symbols := catalog.Symbols()
	if *symbolsCSV != "" {
		symbols = strings.Split(*symbolsCSV, ",")
		for i := range symbols {
			symbols[i] = strings.ToUpper(strings.TrimSpace(symbols[i]))
		}
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Connect to the warehouse
	logger.Info("connecting to database",
		"host", cfg.Database.Warehouse.Host,
		"port", cfg.Database.Warehouse.Port,
		"database", cfg.Database.Warehouse.Name,
	)

	pool, err := database.Connect(ctx, cfg.Database.Warehouse)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Replay may target a freshly provisioned warehouse.
	if err := database.EnsureSchema(ctx, pool); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	logger.Info("database ready")

	// Create the landing store
	store, err := landing.New(cfg.ObjectStore, logger)
	if err != nil {
		logger.Error("failed to create landing store", "error", err)
		os.Exit(1)
	}

	prices := loader.NewPriceLoader(pool, logger)
	r := pipeline.NewReplayer(store, prices, logger)

	if err := r.Replay(ctx, symbols, dates); err != nil {
		var inc *pipeline.IncompleteError
		if errors.As(err, &inc) {
			logger.Error("replay incomplete", "failed_symbols", inc.Failed)
		} else {
			logger.Error("replay failed", "error", err)
		}
		os.Exit(1)
	}

	logger.Info("replay complete")
}
