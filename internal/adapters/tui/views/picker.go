package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/tui/styles"
	"snipkit/internal/domain"
)

// PickerKeyMap defines key bindings for the snippet picker
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Toggle   key.Binding
	All      key.Binding
	Copy     key.Binding
	Done     key.Binding
	Cancel   key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdown", "page down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle all"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

const pickerChrome = 10

// PickerModel is a multiselect over the registry's snippet names
type PickerModel struct {
	ViewState
	reg       domain.Registry
	names     []string
	selected  map[string]bool
	paginator *Paginator
}

// NewPickerModel creates a picker with nothing selected
func NewPickerModel() *PickerModel {
	return &PickerModel{
		selected:  map[string]bool{},
		paginator: NewPaginator(15),
	}
}

// SetRegistry replaces the rows shown by the picker and clears the selection
func (m *PickerModel) SetRegistry(reg domain.Registry) {
	m.reg = reg
	m.names = reg.Names()
	m.selected = map[string]bool{}
	m.paginator.SetTotal(len(m.names))
	m.paginator.SetCursor(0)
}

// SetSize updates the view dimensions and the number of visible rows
func (m *PickerModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - pickerChrome)
}

// Selected returns the picked names in registry order
func (m *PickerModel) Selected() []string {
	var names []string
	for _, name := range m.names {
		if m.selected[name] {
			names = append(names, name)
		}
	}
	return names
}

// Current returns the name under the cursor
func (m *PickerModel) Current() (string, bool) {
	if len(m.names) == 0 {
		return "", false
	}
	return m.names[m.paginator.Cursor()], true
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if resize(m, msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, PickerKeys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }

		case key.Matches(msg, PickerKeys.Up):
			m.paginator.Up()

		case key.Matches(msg, PickerKeys.Down):
			m.paginator.Down()

		case key.Matches(msg, PickerKeys.PageUp):
			m.paginator.PageUp()

		case key.Matches(msg, PickerKeys.PageDown):
			m.paginator.PageDown()

		case key.Matches(msg, PickerKeys.Toggle):
			if name, ok := m.Current(); ok {
				m.selected[name] = !m.selected[name]
			}

		case key.Matches(msg, PickerKeys.All):
			m.toggleAll()

		case key.Matches(msg, PickerKeys.Copy):
			if name, ok := m.Current(); ok {
				return m, func() tea.Msg { return CopyRequestMsg{Name: name} }
			}

		case key.Matches(msg, PickerKeys.Done):
			names := m.Selected()
			if len(names) == 0 {
				m.Fail("Select at least one snippet")
				return m, nil
			}
			return m, func() tea.Msg { return SelectionDoneMsg{Names: names} }
		}
	}

	return m, nil
}

// toggleAll selects everything unless everything is already selected
func (m *PickerModel) toggleAll() {
	all := len(m.Selected()) == len(m.names)
	for _, name := range m.names {
		m.selected[name] = !all
	}
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Snippets"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d selected of %d", len(m.Selected()), len(m.names))))
	b.WriteString("\n\n")

	if len(m.names) == 0 {
		b.WriteString(styles.MutedText.Render("The registry is empty. Run build first."))
		b.WriteString("\n")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.paginator.TotalPages() > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), m.paginator.TotalPages())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.RenderMessage())
	b.WriteString(helpBar("space", "toggle", "a", "all", "y", "copy", "enter", "continue", "esc", "cancel"))

	return styles.App.Render(b.String())
}

func (m *PickerModel) renderRow(i int) string {
	name := m.names[i]

	check := styles.CheckOff.String()
	if m.selected[name] {
		check = styles.CheckOn.String()
	}

	label := styles.Row.Render(name)
	if i == m.paginator.Cursor() {
		label = styles.RowCursor.Render(name)
	}

	files := len(m.reg[name].Files)
	return check + label + styles.FileCount.Render(fmt.Sprintf("  %d file(s)", files))
}
