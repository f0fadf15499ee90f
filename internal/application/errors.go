package application

import (
	"fmt"

	"snipkit/internal/domain"
)

// Re-export the registry error taxonomy for use by adapters
var (
	ErrRegistryNotFound = domain.ErrRegistryNotFound
	ErrRegistryParse    = domain.ErrRegistryParse
	ErrSnippetNotFound  = domain.ErrSnippetNotFound
	ErrIO               = domain.ErrIO
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
