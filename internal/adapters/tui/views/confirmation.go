package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel provides a base for yes/no prompts
type ConfirmationModel struct {
	ViewState
	Keys ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// HandleKeyMsg processes key messages for confirmation views.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// OverwriteModel asks before replacing files that already exist
type OverwriteModel struct {
	ConfirmationModel
	Collisions int
	Dir        string
}

// NewOverwriteModel creates the overwrite prompt
func NewOverwriteModel() *OverwriteModel {
	return &OverwriteModel{ConfirmationModel: NewConfirmationModel()}
}

// SetPlan sets what the prompt asks about
func (m *OverwriteModel) SetPlan(collisions int, dir string) {
	m.Collisions = collisions
	m.Dir = dir
}

// Question returns the prompt text
func (m *OverwriteModel) Question() string {
	return fmt.Sprintf("Overwrite %d existing file(s) in %s?", m.Collisions, m.Dir)
}

// Init initializes the overwrite prompt
func (m *OverwriteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the overwrite prompt
func (m *OverwriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if resize(m, msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return OverwriteConfirmedMsg{} },
			func() tea.Msg { return CancelMsg{} },
		); handled {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the overwrite prompt
func (m *OverwriteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Existing Files"))
	b.WriteString("\n\n")
	b.WriteString(styles.WarningMsg.Render(fmt.Sprintf("%d file(s) already exist in the destination.", m.Collisions)))
	b.WriteString("\n\n")
	b.WriteString(RenderConfirmPrompt(m.Question()))

	return styles.App.Render(b.String())
}
