package ports

import (
	"context"

	"snipkit/internal/domain"
)

// InstallJournal keeps a log of install runs. It is observational only.
type InstallJournal interface {
	// Lifecycle
	Open(path string) error
	Close() error

	Record(ctx context.Context, run domain.InstallRun) error
	Recent(ctx context.Context, limit int) ([]domain.InstallRun, error)
}
