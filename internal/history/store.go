// ============================================================================
// nomen - pattern based name and code generator
// ============================================================================
//
// Package:     history
// Description: SQLite store of issued outputs
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	nomerror "github.com/msto63/nomen/foundation/core/error"
)

// Entry is one issued output
type Entry struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	Pattern   string    `json:"pattern"`
	Output    string    `json:"output"`
	Seed      uint64    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Path: "./data/history.db"}
}

// Store records issued outputs so later runs can avoid repeating them
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the store at cfg.Path
func Open(cfg Config) (*Store, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storageError(err, "failed to create directory")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "failed to open database")
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize schema")
	}
	return store, nil
}

// initSchema creates the necessary tables
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS issued (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		pattern TEXT NOT NULL,
		output TEXT NOT NULL,
		seed INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_issued_pattern_output ON issued(pattern, output);
	CREATE INDEX IF NOT EXISTS idx_issued_created ON issued(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores the outputs of one run in a single transaction
func (s *Store) Record(ctx context.Context, runID, pattern string, seed uint64, outputs []string) error {
	if len(outputs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO issued (run_id, pattern, output, seed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return storageError(err, "failed to prepare insert")
	}
	defer stmt.Close()

	now := time.Now().UTC()
	// sqlite integers are signed; the seed round-trips through int64
	for _, out := range outputs {
		if _, err := stmt.ExecContext(ctx, runID, pattern, out, int64(seed), now); err != nil {
			return storageError(err, "failed to record output")
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError(err, "failed to commit")
	}
	return nil
}

// Exists reports whether output was already issued for pattern
func (s *Store) Exists(ctx context.Context, pattern, output string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM issued WHERE pattern = ? AND output = ? LIMIT 1
	`, pattern, output).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storageError(err, "failed to query history")
	}
	return true, nil
}

// Recent returns the newest entries first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, pattern, output, seed, created_at
		FROM issued ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, storageError(err, "failed to list history")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var seed int64
		if err := rows.Scan(&e.ID, &e.RunID, &e.Pattern, &e.Output, &seed, &e.CreatedAt); err != nil {
			return nil, storageError(err, "failed to scan history row")
		}
		e.Seed = uint64(seed)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read history")
	}
	return entries, nil
}

// Count returns the number of recorded outputs
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM issued`).Scan(&n); err != nil {
		return 0, storageError(err, "failed to count history")
	}
	return n, nil
}

// Prune deletes entries recorded before cutoff and returns how many were removed
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM issued WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, storageError(err, "failed to prune history")
	}
	return res.RowsAffected()
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

func storageError(err error, message string) error {
	return nomerror.Wrap(err, message).
		WithCode(nomerror.CodeStorageError).
		WithOperation("history")
}
