package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fintrade/market-ingest/internal/api"
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
	initDB := flag.Bool("init", false, "seed reference entities before ingesting")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting ingest",
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

	logger.Info("configuration loaded",
		"job_id", cfg.Job.ID,
		"api_url", cfg.API.BaseURL,
		"bucket", cfg.ObjectStore.Bucket,
	)

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

	// Create API client
	client := api.NewClient(
		cfg.API.BaseURL,
		cfg.API.Key,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetryPolicy(cfg.API.MaxAttempts, cfg.API.RetryBaseDelay, cfg.API.RetryMaxDelay),
		api.WithCooldown(cfg.API.Cooldown),
		api.WithOutputSize(cfg.API.OutputSize),
	)

	// Seed reference entities on -init
	if *initDB {
		refs := loader.NewReferenceLoader(pool, logger)
		seeder := pipeline.NewSeeder(refs, cfg.Seed, logger)
		if err := seeder.Seed(ctx); err != nil {
			logger.Error("failed to seed reference entities", "error", err)
			os.Exit(1)
		}
	}

	symbols := cfg.Ingest.Symbols
	if len(symbols) == 0 {
		symbols = catalog.Symbols()
	}

	prices := loader.NewPriceLoader(pool, logger)
	p := pipeline.New(client, store, prices, symbols, cfg.Ingest.Pacing, logger)

	if err := p.Run(ctx); err != nil {
		var inc *pipeline.IncompleteError
		if errors.As(err, &inc) {
			logger.Error("ingest incomplete", "failed_symbols", inc.Failed)
		} else {
			logger.Error("ingest failed", "error", err)
		}
		os.Exit(1)
	}

	logger.Info("ingest complete")
}
