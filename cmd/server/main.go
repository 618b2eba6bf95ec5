package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/whispercart/backend/config"
	httpDelivery "github.com/whispercart/backend/internal/delivery/http"
	"github.com/whispercart/backend/internal/domain"
	"github.com/whispercart/backend/internal/infrastructure/cache"
	"github.com/whispercart/backend/internal/infrastructure/history"
	"github.com/whispercart/backend/internal/infrastructure/metrics"
	"github.com/whispercart/backend/internal/logging"
	"github.com/whispercart/backend/internal/taxonomy"
	"github.com/whispercart/backend/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: httpDelivery.ServiceName,
	})

	logger.Info().
		Str("version", httpDelivery.Version).
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache_type", cfg.Cache.Type).
		Msg("Starting WhisperCart intent service")

	ctx := context.Background()

	// Taxonomy
	store, err := taxonomy.Load(cfg.Taxonomy.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Taxonomy.Path).Msg("Failed to load taxonomy")
	}
	logger.Info().
		Int("products", len(store.Products())).
		Int("brands", len(store.Brands())).
		Int("colors", len(store.Colors())).
		Msg("Taxonomy loaded")

	// Initialize infrastructure dependencies
	resultCache, closeCache, err := newCache(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize cache")
	}
	defer closeCache.Close()
	logger.Info().Dur("ttl", cfg.Cache.TTL).Msg("Cache ready")

	var historyRepo domain.HistoryRepository
	if cfg.History.Enabled {
		sqliteStore, err := history.OpenSQLite(ctx, cfg.History.Path)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.History.Path).Msg("Failed to open history database")
		}
		defer sqliteStore.Close()
		historyRepo = sqliteStore
		logger.Info().Str("path", cfg.History.Path).Msg("History enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{Namespace: "whispercart"}),
		prometheus.NewGoCollector(),
	)
	serviceMetrics := metrics.New(registry)

	// Initialize usecase layer
	extractor := usecase.NewExtractor(store, nil, usecase.ExtractorConfig{
		FuzzyThreshold: cfg.Matching.FuzzyThreshold,
		Proximity: usecase.ProximityConfig{
			Brand:    cfg.Matching.BrandProximity,
			Color:    cfg.Matching.ColorProximity,
			Quantity: cfg.Matching.QuantityProximity,
			Budget:   cfg.Matching.BudgetProximity,
		},
		Merge: usecase.MergeConfig{
			Window:    cfg.Matching.MergeWindow,
			Threshold: cfg.Matching.MergeThreshold,
		},
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	}, logger)

	logger.Info().
		Float64("fuzzy_threshold", cfg.Matching.FuzzyThreshold).
		Int("merge_window", cfg.Matching.MergeWindow).
		Float64("merge_threshold", cfg.Matching.MergeThreshold).
		Bool("debug", cfg.Matching.EnableDebugLogging).
		Msg("Matching configured")

	extractionService := usecase.NewExtractionService(
		extractor,
		resultCache,
		historyRepo,
		serviceMetrics,
		logger,
		usecase.ExtractionServiceConfig{
			CacheTTL:     cfg.Cache.TTL,
			HistoryLimit: cfg.History.Limit,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(extractionService, logger)

	limiter := httpDelivery.NewRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst, 0)
	defer limiter.Close()

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, limiter, serviceMetrics, registry, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server error")
		}
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}

// newCache builds the configured result cache and the closer that releases it
func newCache(ctx context.Context, cfg *config.Config) (domain.CacheRepository, io.Closer, error) {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.DialRedis(ctx, cfg.Cache.RedisURL, cache.DefaultRedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return redisCache, redisCache, nil
	default:
		memoryCache := cache.NewMemoryCache(0)
		return memoryCache, memoryCache, nil
	}
}
