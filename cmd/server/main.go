// Package main runs the e-learning API server: it loads configuration, sets up
// logging, tracing and the database, wires the services and serves HTTP until
// interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/elearn-api/internal/config"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/platform/postgres"
	"github.com/phrazzld/elearn-api/internal/platform/tracing"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply pending database migrations and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateOnly); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, migrateOnly bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}()

	if migrateOnly {
		if err := postgres.Migrate(ctx, db, log); err != nil {
			return err
		}
		version, err := postgres.MigrationVersion(ctx, db, log)
		if err != nil {
			return err
		}
		log.Info("migrations applied", slog.Int64("version", version))
		return nil
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, log)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}

// loadAppConfig loads and validates the configuration and logs a summary
// without secrets.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.String("tracing_exporter", cfg.Tracing.Exporter))
	slog.Debug("auth configuration", slog.Bool("jwt_secret_present", cfg.Auth.JWTSecret != ""))

	return cfg, nil
}
