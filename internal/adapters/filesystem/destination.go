package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

// ErrOutsideRoot is returned when a relative path would resolve outside the
// destination root
var ErrOutsideRoot = errors.New("path escapes destination root")

// Destination implements ports.Destination on the local filesystem
type Destination struct{}

// Ensure Destination implements the port
var _ ports.Destination = (*Destination)(nil)

// NewDestination creates a new filesystem destination
func NewDestination() *Destination {
	return &Destination{}
}

// Exists reports whether rel is already present under root
func (d *Destination) Exists(root, rel string) (bool, error) {
	target, err := SafeJoin(root, rel)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &domain.IOError{Op: "stat", Path: target, Err: err}
	}
	return true, nil
}

// WriteFile writes content to rel under root, creating parent directories
func (d *Destination) WriteFile(root, rel, content string) error {
	target, err := SafeJoin(root, rel)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return &domain.IOError{Op: "mkdir", Path: filepath.Dir(target), Err: err}
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return &domain.IOError{Op: "write", Path: target, Err: err}
	}
	return nil
}

// SafeJoin joins a slash-separated relative path onto root and makes sure
// the result stays inside root. Leading separators on rel are ignored.
func SafeJoin(root, rel string) (string, error) {
	rel = strings.TrimLeft(rel, `/\`)
	cleanRoot := filepath.Clean(root)
	target := filepath.Join(cleanRoot, filepath.FromSlash(rel))

	back, err := filepath.Rel(cleanRoot, target)
	if err != nil {
		return "", &domain.IOError{Op: "resolve", Path: rel, Err: err}
	}
	back = filepath.ToSlash(back)
	if back == ".." || strings.HasPrefix(back, "../") {
		return "", &domain.IOError{Op: "resolve", Path: rel, Err: ErrOutsideRoot}
	}
	return target, nil
}
