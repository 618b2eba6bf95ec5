package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/whispercart/backend/config"
	"github.com/whispercart/backend/internal/infrastructure/metrics"
)

// SetupRouter creates and configures the Gin router. gatherer serves
// /metrics and may be nil to skip the endpoint. A nil limiter disables
// rate limiting; the caller owns it and closes it on shutdown.
func SetupRouter(cfg *config.Config, handler *Handler, limiter *RateLimiter, m *metrics.Metrics, gatherer prometheus.Gatherer, logger zerolog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if m == nil {
		m = metrics.New(nil)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(MetricsMiddleware(m))
	router.Use(RecoveryMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	limited := limiter.Middleware()

	// Unversioned alias kept for existing clients
	router.POST("/extract", limited, handler.Extract)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(limited)
	{
		v1.POST("/extract", handler.Extract)
		v1.GET("/history", handler.History)
	}

	return router
}
