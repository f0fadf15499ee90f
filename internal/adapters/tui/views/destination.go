package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/tui/styles"
)

// DestinationModel asks for the directory snippets are installed into
type DestinationModel struct {
	ViewState
	form *InputForm
}

// NewDestinationModel creates the destination prompt prefilled with def
func NewDestinationModel(def string) *DestinationModel {
	return &DestinationModel{
		form: NewInputForm(NewInputField("Install into", def, 0)),
	}
}

// Dir returns the current answer
func (m *DestinationModel) Dir() string {
	return m.form.Value(0)
}

// Init initializes the destination prompt
func (m *DestinationModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the destination prompt
func (m *DestinationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if resize(m, msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			dir := m.Dir()
			if dir == "" {
				m.Fail("Destination is required")
				return m, nil
			}
			return m, func() tea.Msg { return DestinationChosenMsg{Dir: dir} }
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the destination prompt
func (m *DestinationModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Destination"))
	b.WriteString("\n\n")
	b.WriteString(m.form.RenderField(0))
	b.WriteString("\n\n")
	b.WriteString(m.RenderMessage())
	b.WriteString(m.form.RenderHelp("continue"))

	return styles.App.Render(b.String())
}
