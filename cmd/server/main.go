package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/M4yank09/AI-cet/internal/config"
	"github.com/M4yank09/AI-cet/internal/cutoff"
	"github.com/M4yank09/AI-cet/internal/logging"
	"github.com/M4yank09/AI-cet/internal/metrics"
	"github.com/M4yank09/AI-cet/internal/source"
	"github.com/M4yank09/AI-cet/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"source_urls", len(cfg.Sources.URLs),
		"data_file", cfg.Sources.DataFile,
		"database_enabled", cfg.Database.Enabled(),
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	m := metrics.New()

	chain, pool, err := buildChain(cfg, m)
	if err != nil {
		slog.Error("failed to build source chain", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	// Initial dataset load. Failure is not fatal: the server starts in the
	// unavailable state and the UI offers a retry that re-runs the chain.
	store := cutoff.NewStore()
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Sources.LoadTimeout)
	if err := store.Load(loadCtx, chain); err != nil {
		slog.Warn("initial dataset load failed, serving retry state", "error", err)
	} else if snap, err := store.Snapshot(); err == nil {
		m.DatasetLoaded(len(snap.Records))
	}
	cancelLoad()

	// Create server with config
	server := web.NewServer(store, chain, m, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	// Start server (uses addr from config internally)
	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// buildChain assembles the dataset source chain in priority order: local
// file, database (when configured), then each URL. The returned pool is nil
// when no database is configured.
func buildChain(cfg *config.Config, m *metrics.Metrics) (*source.Chain, *pgxpool.Pool, error) {
	var sources []source.Source

	if cfg.Sources.DataFile != "" {
		sources = append(sources, source.NewFileSource(cfg.Sources.DataFile))
	}

	var pool *pgxpool.Pool
	if cfg.Database.Enabled() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse database URL: %w", err)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
		poolConfig.MinConns = int32(cfg.Database.MinConns)
		poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
		poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

		pool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		sources = append(sources, source.NewPostgresSource(pool))
	}

	for i, url := range cfg.Sources.URLs {
		name := fmt.Sprintf("url-%d", i+1)
		sources = append(sources, source.NewHTTPSource(name, url, cfg.Sources.FetchTimeout))
	}

	return source.NewChain(m, sources...), pool, nil
}
