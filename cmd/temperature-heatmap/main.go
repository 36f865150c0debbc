package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/temperature-heatmap/internal/api/http"
	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/i474232898/temperature-heatmap/internal/climate/sources"
	"github.com/i474232898/temperature-heatmap/internal/config"
	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound dataset fetches.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Dataset sources, tried in order on every render.
	var srcs []climate.Source
	if cfg.DatasetURL != "" {
		policy := sources.DefaultRetryPolicy
		policy.MaxRetries = cfg.FetchMaxRetries
		srcs = append(srcs, sources.NewRemoteSource(httpClient, cfg.DatasetURL, policy))
	}
	if cfg.DatasetFile != "" {
		srcs = append(srcs, sources.NewFileSource(cfg.DatasetFile))
	}
	service := climate.NewService(srcs...)

	renderer, err := heatmap.NewRenderer(cfg.Layout)
	if err != nil {
		log.Fatalf("invalid chart layout: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "temperature-heatmap",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "temperature-heatmap",
		})
	})

	httpapi.RegisterRoutes(app, httpapi.NewHandler(service, renderer, cfg.HTTPTimeout))

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
