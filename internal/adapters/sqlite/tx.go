package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"snipkit/internal/domain"
)

// journalTx groups the inserts of one run
type journalTx struct {
	tx *sql.Tx
}

func (j *Journal) beginTx(ctx context.Context) (*journalTx, error) {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &journalTx{tx: tx}, nil
}

// insertRun adds the run row and returns its id
func (t *journalTx) insertRun(ctx context.Context, run domain.InstallRun) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `
		INSERT INTO runs (started_at, registry, dest_root, overwrite, error)
		VALUES (?, ?, ?, ?, ?)
	`, run.StartedAt.UnixNano(), run.Registry, run.DestRoot, run.Overwrite, run.Error)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// insertItem adds one per-snippet result
func (t *journalTx) insertItem(ctx context.Context, runID int64, position int, res domain.InstallResult) error {
	collisions := res.Collisions
	if collisions == nil {
		collisions = []string{}
	}
	encoded, err := json.Marshal(collisions)
	if err != nil {
		return err
	}

	_, err = t.tx.ExecContext(ctx, `
		INSERT INTO run_items (run_id, position, name, written, skipped, collisions)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, position, res.Name, res.Written, res.Skipped, string(encoded))
	return err
}

// Commit commits the transaction
func (t *journalTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *journalTx) Rollback() error {
	return t.tx.Rollback()
}
