package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

// Store implements ports.RegistryStore with a pretty-printed JSON file
type Store struct{}

// Ensure Store implements RegistryStore
var _ ports.RegistryStore = (*Store)(nil)

// NewStore creates a new JSON registry store
func NewStore() *Store {
	return &Store{}
}

// Save overwrites path with the registry. Keys are written sorted and
// indented so snapshots diff cleanly.
func (s *Store) Save(path string, reg domain.Registry) error {
	if reg == nil {
		reg = domain.Registry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reg); err != nil {
		return &domain.IOError{Op: "encode registry", Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &domain.IOError{Op: "write registry", Path: path, Err: err}
	}
	return nil
}

// Load reads the registry at path
func (s *Store) Load(path string) (domain.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.RegistryError{Path: path, Err: err}
		}
		return nil, &domain.IOError{Op: "read registry", Path: path, Err: err}
	}

	var reg domain.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	if reg == nil {
		reg = domain.Registry{}
	}
	return reg, nil
}
