package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/tui/styles"
)

// appPadding is the horizontal padding of styles.App on both sides
const appPadding = 4

// ViewState is embedded by every step view: the terminal size and one status
// line rendered above the help bar.
type ViewState struct {
	Width  int
	Height int

	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Notify shows an informational status line
func (s *ViewState) Notify(text string) {
	s.Message = text
	s.MessageErr = false
}

// Fail shows an error status line
func (s *ViewState) Fail(text string) {
	s.Message = text
	s.MessageErr = true
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage renders the status line, wrapped to the terminal width once
// it is known, followed by a blank line. Nothing is rendered without a message.
func (s *ViewState) RenderMessage() string {
	if s.Message == "" {
		return ""
	}

	style := styles.Success
	if s.MessageErr {
		style = styles.ErrorMsg
	}
	if w := s.Width - appPadding; w > 0 {
		style = style.Width(w)
	}
	return style.Render(s.Message) + "\n\n"
}

// resize applies a window size message through sizer and reports whether msg
// was one
func resize(sizer interface{ SetSize(int, int) }, msg tea.Msg) bool {
	ws, ok := msg.(tea.WindowSizeMsg)
	if ok {
		sizer.SetSize(ws.Width, ws.Height)
	}
	return ok
}

// helpBar renders key/description pairs on one line
func helpBar(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.HelpKey.Render(pairs[i])+" "+styles.HelpDesc.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
