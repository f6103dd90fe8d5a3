package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/repositories"
	"catalog/internal/telemetry"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// catalog serve: start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func runServer(ctx context.Context) error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := telemetry.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	// --- Tracing ---
	tp, err := telemetry.NewTracerProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during tracer shutdown", slog.String("error", err.Error()))
		}
	}()

	// --- Repository ---
	repo, db, err := openRepository(cfg, cfg.AutoMigrate)
	if err != nil {
		return err
	}
	if db != nil {
		defer database.Close(db)
	}

	if cfg.SeedOnStart {
		if _, err := database.Seed(ctx, repo, logger); err != nil {
			return err
		}
	}

	app := NewApp(cfg, repo, db, logger, tp.Tracer(cfg.ServiceName))

	// --- Start HTTP Server ---
	logger.Info("Starting server",
		slog.String("port", cfg.AppPort),
		slog.String("db_driver", cfg.DBDriver),
		slog.Bool("auth_enabled", cfg.JWTSecret != ""),
	)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		logger.Info("Shutting down server...", slog.String("signal", sig.String()))
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("Error during Fiber shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server gracefully stopped")
	return nil
}

// openRepository returns the repository for cfg.DBDriver. The returned
// *gorm.DB is nil for the in-memory driver.
func openRepository(cfg *config.Config, migrate bool) (repositories.CatalogRepository, *gorm.DB, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repositories.NewMockCatalogRepository(), nil, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if migrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, nil, err
		}
	}
	return repositories.NewGORMCatalogRepository(db), db, nil
}
