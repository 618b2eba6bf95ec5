package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque serialized payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// HistoryRepository persists every extraction request and its result
type HistoryRepository interface {
	Save(ctx context.Context, rawText string, result ExtractionResult) (int64, error)
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

// Tokenizer splits raw text into ordered word tokens with no index gaps
type Tokenizer interface {
	Tokenize(text string) []Token
}
