package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"catalog/internal/auth"
	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/metrics"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

// NewApp builds the Fiber application: middleware, health and metrics
// endpoints, and the catalog routes. db may be nil when the in-memory
// repository is in use.
func NewApp(cfg *config.Config, repo repositories.CatalogRepository, db *gorm.DB, logger *slog.Logger, tracer trace.Tracer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	m := metrics.New("catalog")

	// --- Middleware ---
	// Metrics wrap recover so recovered panics are counted as 500s.
	app.Use(m.Middleware())
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if cfg.AppEnv != "test" {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			Output: os.Stdout,
		}))
	}
	app.Use(middleware.Tracing(tracer))

	// --- Health Check and Metrics ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status, dbStatus := "healthy", "memory"
		if db != nil {
			dbStatus = "connected"
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.UserContext())
			}
			if err != nil {
				status, dbStatus = "degraded", "unreachable"
			}
		}
		code := fiber.StatusOK
		if status != "healthy" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
		})
	})
	app.Get("/metrics", m.Handler())

	// --- Catalog Routes ---
	service := services.NewCatalogService(repo, tracer, logger)
	catalogHandler := handlers.NewCatalogHandler(service, validation.New(), logger)

	var writeGuards []fiber.Handler
	if cfg.JWTSecret != "" {
		writeGuards = append(writeGuards, middleware.AuthRequired(auth.NewTokenManager(cfg.JWTSecret), logger))
	}
	catalogHandler.RegisterRoutes(app, writeGuards...)

	return app
}

// errorHandler answers errors that escape a handler (unknown routes,
// recovered panics) with the same JSON string bodies the handlers use.
func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled request error",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}
		return c.Status(code).JSON(err.Error())
	}
}
