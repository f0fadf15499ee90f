package ports

import (
	"context"

	"snipkit/internal/domain"
)

// RegistryStore defines persistence for registry snapshots. The registry path
// is passed on every call so several registries can be used side by side.
type RegistryStore interface {
	// Save overwrites the file at path with a serialized snapshot
	Save(path string, reg domain.Registry) error

	// Load reads a snapshot. Missing files yield domain.ErrRegistryNotFound,
	// malformed content domain.ErrRegistryParse.
	Load(path string) (domain.Registry, error)
}

// SourceScanner builds a registry from a tree of snippet directories
type SourceScanner interface {
	Scan(ctx context.Context, sourceRoot string) (domain.Registry, error)
}
