package ports

// Destination is the tree snippets are installed into. Paths are
// slash-separated and relative to root.
type Destination interface {
	// Exists reports whether anything already occupies rel under root
	Exists(root, rel string) (bool, error)

	// WriteFile creates missing parent directories and replaces the file's
	// content entirely
	WriteFile(root, rel, content string) error
}
