package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the registry error taxonomy. Typed errors below match
// them through errors.Is.
var (
	ErrRegistryNotFound = errors.New("registry not found")
	ErrRegistryParse    = errors.New("registry malformed")
	ErrSnippetNotFound  = errors.New("snippet not found")
	ErrIO               = errors.New("i/o failure")
)

// RegistryError reports a missing registry file.
type RegistryError struct {
	Path string
	Err  error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry %s not found: run build first", e.Path)
}

func (e *RegistryError) Unwrap() error { return e.Err }

func (e *RegistryError) Is(target error) bool {
	return target == ErrRegistryNotFound
}

// ParseError reports registry content that is not well-formed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse registry %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	return target == ErrRegistryParse
}

// LookupError reports a requested snippet missing from a loaded registry.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("not found in registry: %s", e.Name)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrSnippetNotFound
}

// IOError wraps a filesystem failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
