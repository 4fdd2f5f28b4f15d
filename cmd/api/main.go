// Command api is the Clinic Facts API server.
//
// Usage:
//
//	clinic-facts-api
//	API_PORT=8080 SITE_TIMEZONE=America/New_York clinic-facts-api

// @title Clinic Facts API
// @version 1.0.0
// @description Event facts, schema.org SportsEvent structured data, and SEO meta for clinic product pages.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @contact.name PTP Sports
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ptpsports/clinic-facts/internal/api"
	"github.com/ptpsports/clinic-facts/internal/cache"
	"github.com/ptpsports/clinic-facts/internal/config"
	"github.com/ptpsports/clinic-facts/internal/db"
	"github.com/ptpsports/clinic-facts/internal/metrics"
	"github.com/ptpsports/clinic-facts/internal/store"

	_ "github.com/ptpsports/clinic-facts/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled, cfg.CacheTTL)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "ttl", cfg.CacheTTL)

	loc := cfg.Location()
	logger.Info("Event profile loaded",
		"timezone", loc.String(),
		"sport", cfg.Profile.Sport,
		"organizer", cfg.Profile.Organizer.Name,
		"profile_file", cfg.ProfileFile)

	// Create router
	router := api.NewRouter(store.NewPostgres(pool.Pool), appCache, metrics.New(), cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Clinic Facts API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
