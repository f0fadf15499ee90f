package clipboard

import (
	"github.com/atotto/clipboard"

	"snipkit/internal/ports"
)

// System writes to the operating system clipboard
type System struct{}

// Ensure System implements the port
var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a clipboard backed by the OS
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found on this machine
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll copies text to the clipboard
func (s *System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
