package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

const schemaVersion = "1"

// Journal implements ports.InstallJournal using SQLite
type Journal struct {
	db     *sql.DB
	dbPath string
}

// Ensure Journal implements InstallJournal
var _ ports.InstallJournal = (*Journal)(nil)

// NewJournal creates a new SQLite journal
func NewJournal() *Journal {
	return &Journal{}
}

// Open initializes the journal database at path
func (j *Journal) Open(path string) error {
	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	j.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	j.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at INTEGER NOT NULL,
			registry TEXT NOT NULL,
			dest_root TEXT NOT NULL,
			overwrite INTEGER NOT NULL,
			error TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS run_items (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			written INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			collisions TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores a run and its per-item results in one transaction
func (j *Journal) Record(ctx context.Context, run domain.InstallRun) error {
	if j.db == nil {
		return fmt.Errorf("journal is not open")
	}

	tx, err := j.beginTx(ctx)
	if err != nil {
		return err
	}

	runID, err := tx.insertRun(ctx, run)
	if err != nil {
		tx.Rollback()
		return err
	}

	for i, res := range run.Results {
		if err := tx.insertItem(ctx, runID, i, res); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// Recent returns up to limit runs, newest first
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.InstallRun, error) {
	if j.db == nil {
		return nil, fmt.Errorf("journal is not open")
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, started_at, registry, dest_root, overwrite, error
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.InstallRun
	for rows.Next() {
		var run domain.InstallRun
		var startedAt int64
		if err := rows.Scan(&run.ID, &startedAt, &run.Registry, &run.DestRoot, &run.Overwrite, &run.Error); err != nil {
			return nil, err
		}
		run.StartedAt = time.Unix(0, startedAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		results, err := j.items(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}

	return runs, nil
}

func (j *Journal) items(ctx context.Context, runID int64) ([]domain.InstallResult, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT name, written, skipped, collisions
		FROM run_items WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []domain.InstallResult{}
	for rows.Next() {
		var res domain.InstallResult
		var collisions string
		if err := rows.Scan(&res.Name, &res.Written, &res.Skipped, &collisions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(collisions), &res.Collisions); err != nil {
			return nil, fmt.Errorf("decode collisions of run %d: %w", runID, err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
