package ports

// Clipboard copies text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
