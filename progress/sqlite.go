// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS completed_levels (
	level_id     INTEGER PRIMARY KEY,
	best_cost    INTEGER NOT NULL,
	wins         INTEGER NOT NULL DEFAULT 1,
	completed_at INTEGER NOT NULL
)`

// SQLiteStore keeps progress in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
	path   string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and if needed creates) the database at path.
// Use ":memory:" for a throwaway store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("progress: open %s: %w", path, err)
	}

	// One connection: SQLite has a single writer and ":memory:" is per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("progress: %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("progress: create schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database location the store was opened with.
func (s *SQLiteStore) Path() string { return s.path }

// MarkCompleted implements Store.
func (s *SQLiteStore) MarkCompleted(ctx context.Context, levelID int, cost int64) error {
	if err := check(levelID, cost); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	const q = `
		INSERT INTO completed_levels (level_id, best_cost, wins, completed_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(level_id) DO UPDATE SET
			best_cost    = MIN(best_cost, excluded.best_cost),
			wins         = wins + 1,
			completed_at = excluded.completed_at`
	if _, err := s.db.ExecContext(ctx, q, levelID, cost, nowFn().UnixNano()); err != nil {
		return fmt.Errorf("progress: mark level %d: %w", levelID, err)
	}

	return nil
}

// Completed implements Store.
func (s *SQLiteStore) Completed(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT level_id, best_cost, wins, completed_at FROM completed_levels ORDER BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("progress: query: %w", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var (
			r  Record
			at int64
		)
		if err := rows.Scan(&r.LevelID, &r.BestCost, &r.Wins, &at); err != nil {
			return nil, fmt.Errorf("progress: scan: %w", err)
		}
		r.CompletedAt = time.Unix(0, at).UTC()
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress: rows: %w", err)
	}

	return out, nil
}

// Reset implements Store.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM completed_levels`); err != nil {
		return fmt.Errorf("progress: reset: %w", err)
	}

	return nil
}

// Close implements Store. Closing twice is a no-op.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}
