package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrHistoryUnavailable is returned when the query history store cannot be used
	ErrHistoryUnavailable = errors.New("history store unavailable")

	// ErrTaxonomyInvalid is returned when a taxonomy file cannot be loaded
	ErrTaxonomyInvalid = errors.New("invalid taxonomy")
)
