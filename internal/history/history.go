// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of past generation and cleanup
// runs. The ledger is advisory: cleanup still depends solely on the JSON
// manifest, and a ledger write failure never fails a run.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDBFile is the ledger filename used when no path is configured.
const DefaultDBFile = "dlpsmith-history.db"

// Mode distinguishes the two run kinds recorded in the ledger.
type Mode string

const (
	ModeGenerate Mode = "generate"
	ModeCleanup  Mode = "cleanup"
)

// Run is one ledger row.
type Run struct {
	// ID is a UUID assigned when the run is recorded.
	ID string

	// Mode is "generate" or "cleanup".
	Mode Mode

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is the elapsed wall time.
	Duration time.Duration

	// FileCount is files created (generate) or removed (cleanup).
	FileCount int

	// TotalBytes is the combined size of created files; zero for cleanup.
	TotalBytes int64

	// OutputPath is the directory the run operated on.
	OutputPath string
}

// Store manages the history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger database at path, creating the
// schema if needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		file_count INTEGER NOT NULL,
		total_bytes INTEGER NOT NULL,
		output_path TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends a run to the ledger, assigning it a UUID. The assigned
// ID is returned.
func (s *Store) Record(ctx context.Context, run Run) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, mode, started_at, duration_ms, file_count, total_bytes, output_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, string(run.Mode),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.Duration.Milliseconds(),
		run.FileCount, run.TotalBytes, run.OutputPath,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// List returns up to limit runs, most recent first. A limit of 0 returns
// every run.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, mode, started_at, duration_ms, file_count, total_bytes, output_path
		FROM runs ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			startedAt  string
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &run.Mode, &startedAt, &durationMS,
			&run.FileCount, &run.TotalBytes, &run.OutputPath); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			run.StartedAt = t
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
