// Package history stores every extraction request with the result returned for it.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/whispercart/backend/internal/domain"
)

// DefaultLimit is how many entries Recent returns for a non-positive limit
const DefaultLimit = 10

// timeLayout is fixed width so created_at sorts lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements domain.HistoryRepository
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (or creates) the history database at path with WAL enabled
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrHistoryUnavailable, path, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enable wal: %v", domain.ErrHistoryUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: init schema: %v", domain.ErrHistoryUnavailable, err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS queries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	raw_text TEXT NOT NULL,
	extracted_json TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_queries_created_at ON queries(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save records a query and its result, returning the row id
func (s *SQLiteStore) Save(ctx context.Context, rawText string, result domain.ExtractionResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("encode result: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (raw_text, extracted_json, created_at) VALUES (?, ?, ?)`,
		rawText, string(payload), s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert query: %v", domain.ErrHistoryUnavailable, err)
	}

	return res.LastInsertId()
}

// Recent returns the newest entries first
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, raw_text, extracted_json, created_at
FROM queries
ORDER BY created_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: query history: %v", domain.ErrHistoryUnavailable, err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var (
			entry     domain.HistoryEntry
			payload   string
			createdAt string
		)
		if err := rows.Scan(&entry.ID, &entry.RawText, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &entry.Result); err != nil {
			return nil, fmt.Errorf("decode history row %d: %w", entry.ID, err)
		}
		if entry.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parse history timestamp %q: %w", createdAt, err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
