package views

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/tui/styles"
	"snipkit/internal/application"
	"snipkit/internal/domain"
)

// RenameModel offers a new file name for every selected single-file snippet
type RenameModel struct {
	ViewState
	form  *InputForm
	names []string
	items []domain.RegistryItem
}

// NewRenameModel builds one field per single-file snippet among names.
// Multi-file snippets keep their layout and get no field.
func NewRenameModel(reg domain.Registry, names []string) *RenameModel {
	m := &RenameModel{}

	var fields []InputField
	for _, name := range names {
		item, ok := reg[name]
		if !ok || !item.IsSingleFile() {
			continue
		}
		label := fmt.Sprintf("%s (%s)", name, path.Base(item.Files[0].Path))
		fields = append(fields, NewInputField(label, application.DefaultLeaf(name, item), 0))
		m.names = append(m.names, name)
		m.items = append(m.items, item)
	}

	m.form = NewInputForm(fields...)
	return m
}

// Empty reports whether no selected snippet can be renamed
func (m *RenameModel) Empty() bool {
	return len(m.names) == 0
}

// SetAnswer overwrites the field for name
func (m *RenameModel) SetAnswer(name, answer string) {
	for i, n := range m.names {
		if n == name {
			m.form.SetValue(i, answer)
		}
	}
}

// Renames returns the renames recorded by the current answers
func (m *RenameModel) Renames() domain.Renames {
	renames := domain.Renames{}
	for i, name := range m.names {
		if leaf, ok := application.RenameFor(m.items[i], m.form.Value(i)); ok {
			renames[name] = leaf
		}
	}
	return renames
}

// Init initializes the rename form
func (m *RenameModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the rename form
func (m *RenameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if resize(m, msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			renames := m.Renames()
			return m, func() tea.Msg { return RenamesChosenMsg{Renames: renames} }
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the rename form
func (m *RenameModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("File Names"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Leave a name unchanged or blank to keep the original file name"))
	b.WriteString("\n\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.form.RenderHelp("continue"))

	return styles.App.Render(b.String())
}
