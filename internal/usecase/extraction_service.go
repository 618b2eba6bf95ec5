package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/whispercart/backend/internal/domain"
	"github.com/whispercart/backend/internal/infrastructure/metrics"
)

// Package-level compiled regex pattern for cache keys
var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// ExtractionServiceConfig holds configuration for the extraction service
type ExtractionServiceConfig struct {
	CacheTTL     time.Duration
	HistoryLimit int
}

// ExtractionService runs extractions with caching and history recording
type ExtractionService struct {
	extractor    *Extractor
	cache        domain.CacheRepository
	history      domain.HistoryRepository
	metrics      *metrics.Metrics
	logger       zerolog.Logger
	cacheTTL     time.Duration
	historyLimit int
}

// NewExtractionService creates a service. cache and history may be nil to
// disable them; a nil metrics set records into unregistered collectors.
func NewExtractionService(
	extractor *Extractor,
	cache domain.CacheRepository,
	history domain.HistoryRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
	config ExtractionServiceConfig,
) *ExtractionService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	historyLimit := config.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = 10
	}

	if m == nil {
		m = metrics.New(nil)
	}

	return &ExtractionService{
		extractor:    extractor,
		cache:        cache,
		history:      history,
		metrics:      m,
		logger:       logger.With().Str("component", "extraction_service").Logger(),
		cacheTTL:     cacheTTL,
		historyLimit: historyLimit,
	}
}

// Extract returns the product intents in text.
// Flow: check cache -> run pipeline -> cache -> record history -> return
func (s *ExtractionService) Extract(ctx context.Context, text string) (*domain.ExtractionResult, error) {
	if strings.TrimSpace(text) == "" {
		s.metrics.ExtractionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := generateCacheKey(text)

	result, err := s.getFromCache(ctx, cacheKey)
	if err == nil {
		s.metrics.CacheHitsTotal.Inc()
	} else {
		if s.cache != nil {
			s.metrics.CacheMissesTotal.Inc()
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn().Err(err).Str("key", cacheKey).Msg("cache read failed")
		}

		extracted := s.extractor.Extract(text)
		result = &extracted

		if err := s.setInCache(ctx, cacheKey, result); err != nil {
			// Caching is best effort
			s.logger.Warn().Err(err).Str("key", cacheKey).Msg("cache write failed")
		}
	}

	s.recordHistory(ctx, text, result)

	outcome := metrics.OutcomeProducts
	if result.TotalProducts == 0 {
		outcome = metrics.OutcomeNoProducts
	}
	s.metrics.ExtractionsTotal.WithLabelValues(outcome).Inc()
	s.metrics.ProductsPerRequest.Observe(float64(result.TotalProducts))

	return result, nil
}

// History returns the most recent stored queries, newest first
func (s *ExtractionService) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if limit <= 0 {
		limit = s.historyLimit
	}
	return s.history.Recent(ctx, limit)
}

// HistoryEnabled reports whether a history repository is configured
func (s *ExtractionService) HistoryEnabled() bool {
	return s.history != nil
}

func (s *ExtractionService) recordHistory(ctx context.Context, text string, result *domain.ExtractionResult) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Save(ctx, text, *result); err != nil {
		s.metrics.HistoryErrorsTotal.Inc()
		s.logger.Error().Err(err).Msg("history write failed")
	}
}

// generateCacheKey creates a normalized cache key from the utterance.
// Format: "intent:{normalized_text}"
func generateCacheKey(text string) string {
	return fmt.Sprintf("intent:%s", normalizeForCacheKey(text))
}

// normalizeForCacheKey collapses whitespace only. A run containing a line
// break becomes a single newline, since the tokenizer splits sentences on
// it. Case and punctuation are kept because both show up in surface forms
// and token positions.
func normalizeForCacheKey(s string) string {
	collapsed := multipleSpacesRegex.ReplaceAllStringFunc(s, func(run string) string {
		if strings.Contains(run, "\n") {
			return "\n"
		}
		return " "
	})
	return strings.TrimSpace(collapsed)
}

// getFromCache retrieves an extraction result from cache
func (s *ExtractionService) getFromCache(ctx context.Context, key string) (*domain.ExtractionResult, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}

	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	if result.Products == nil {
		result.Products = []domain.ProductRecord{}
	}
	return &result, nil
}

// setInCache stores an extraction result in cache
func (s *ExtractionService) setInCache(ctx context.Context, key string, result *domain.ExtractionResult) error {
	if s.cache == nil {
		return nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, payload, s.cacheTTL)
}
