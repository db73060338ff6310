package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/phishsense/threatscan/internal/analyzer"
	"github.com/phishsense/threatscan/internal/config"
	"github.com/phishsense/threatscan/internal/httpapi"
	"github.com/phishsense/threatscan/internal/logging"
	"github.com/phishsense/threatscan/internal/service"
)

func main() {
	// Load .env if present; environment variables win either way
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize logger
	logger := logging.New()

	// Build the report cache when enabled; a nil cache disables caching
	var cache *analyzer.ReportCache
	if cfg.CacheEnabled {
		cache = analyzer.NewReportCache(cfg.CacheMaxSize, cfg.CacheTTL)
		logger.Info("Report cache enabled", "max_size", cfg.CacheMaxSize, "ttl", cfg.CacheTTL)
	}

	// Initialize the aggregator with the injected cache
	agg := analyzer.NewAggregator(cache)

	// Initialize service with the aggregator and logger
	svc := service.New(agg, logger)

	// Create server address from config
	addr := fmt.Sprintf(":%d", cfg.Port)

	// Create a new HTTP server
	server := httpapi.NewServer(addr, logger, svc)

	// Channel to listen for OS signals (Ctrl+C, kill, etc.)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil {
			logger.Error("Server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	logger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}
