package application

import (
	"fmt"
	"path"
	"strings"

	"snipkit/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ParseRenames turns NAME=LEAF pairs into a rename map. Later pairs for the
// same name win. A pair with an empty leaf records no rename.
func ParseRenames(pairs []string) (domain.Renames, error) {
	renames := domain.Renames{}
	for _, pair := range pairs {
		name, leaf, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, &ValidationError{
				Field:   "rename",
				Message: fmt.Sprintf("expected NAME=LEAF, got: %s", pair),
			}
		}
		if leaf = strings.TrimSpace(leaf); leaf == "" {
			delete(renames, name)
			continue
		}
		renames[name] = leaf
	}
	return renames, nil
}

// DefaultLeaf suggests a file name for a single-file snippet: the snippet
// name plus the extension of its only file, or ".ts" when that file has none.
func DefaultLeaf(name string, item domain.RegistryItem) string {
	ext := ".ts"
	if item.IsSingleFile() {
		if e := domain.Ext(path.Base(item.Files[0].Path)); e != "" {
			ext = e
		}
	}
	return name + ext
}

// RenameFor returns the rename to record for a snippet given the user's
// answer: blank answers and answers equal to the current leaf record none.
func RenameFor(item domain.RegistryItem, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if !item.IsSingleFile() || answer == "" {
		return "", false
	}
	if answer == path.Base(item.Files[0].Path) {
		return "", false
	}
	return answer, true
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "registryPath" -> "registry path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"registryPath": "registry path",
		"sourceRoot":   "source directory",
		"destRoot":     "destination directory",
		"name":         "snippet name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
