package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/whispercart/backend/internal/domain"
	"github.com/whispercart/backend/internal/usecase"
)

// Version is reported by the health check
const Version = "1.0.0"

// ServiceName identifies this service in health checks
const ServiceName = "whispercart-intent"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extractionService *usecase.ExtractionService
	logger            zerolog.Logger
}

// NewHandler creates a new HTTP handler. A nil service makes the
// extraction endpoints answer 503.
func NewHandler(extractionService *usecase.ExtractionService, logger zerolog.Logger) *Handler {
	return &Handler{
		extractionService: extractionService,
		logger:            logger.With().Str("component", "http_handler").Logger(),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
		"version": Version,
	})
}

// Extract handles intent extraction requests
func (h *Handler) Extract(c *gin.Context) {
	if h.extractionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Extraction service not configured",
		})
		return
	}

	var req domain.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: text is required",
		})
		return
	}

	result, err := h.extractionService.Extract(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "text must not be blank",
			})
			return
		}

		h.logger.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("extraction failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// History returns the most recent stored queries
func (h *Handler) History(c *gin.Context) {
	if h.extractionService == nil || !h.extractionService.HistoryEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "History is disabled",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	entries, err := h.extractionService.History(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("history query failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"queries": entries,
		"total":   len(entries),
	})
}
