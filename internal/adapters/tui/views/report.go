package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/tui/styles"
	"snipkit/internal/domain"
)

// BusyModel shows a spinner while the registry is loaded, planned or installed
type BusyModel struct {
	ViewState
	spinner spinner.Model
	label   string
}

// NewBusyModel creates the busy view
func NewBusyModel() *BusyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.InputLabel
	return &BusyModel{spinner: s}
}

// Start sets the label and starts the spinner
func (m *BusyModel) Start(label string) tea.Cmd {
	m.label = label
	return m.spinner.Tick
}

// Init initializes the busy view
func (m *BusyModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner
func (m *BusyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the busy view
func (m *BusyModel) View() string {
	return styles.App.Render(m.spinner.View() + " " + m.label)
}

// ReportModel shows the outcome of the flow
type ReportModel struct {
	ViewState
	Dir     string
	Results []domain.InstallResult
	Err     error

	// CanOpen enables the key that opens an installed file in the editor
	CanOpen bool
}

// NewReportModel creates an empty report
func NewReportModel() *ReportModel {
	return &ReportModel{}
}

// SetOutcome sets what the report shows
func (m *ReportModel) SetOutcome(dir string, results []domain.InstallResult, err error) {
	m.Dir = dir
	m.Results = results
	m.Err = err
}

// Init initializes the report
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update opens the editor on "e" when allowed and quits on any other key
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if resize(m, msg) {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.CanOpen && msg.String() == "e" {
			return m, func() tea.Msg { return OpenInstalledMsg{} }
		}
		return m, func() tea.Msg { return QuitMsg{} }
	}
	return m, nil
}

// View renders the report
func (m *ReportModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Install Report"))
	b.WriteString("\n\n")

	for _, r := range m.Results {
		line := fmt.Sprintf("%s: %d written, %d skipped", r.Name, r.Written, r.Skipped)
		if r.Skipped > 0 {
			b.WriteString(styles.WarningMsg.Render("! " + line))
		} else {
			b.WriteString(styles.Success.Render("✓ " + line))
		}
		b.WriteString("\n")
		for _, c := range r.Collisions {
			b.WriteString(styles.MutedText.Render("    kept existing " + c))
			b.WriteString("\n")
		}
	}

	if len(m.Results) > 0 && m.Dir != "" {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render("Installed into " + m.Dir))
		b.WriteString("\n")
	}

	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.RenderMessage())
	if m.CanOpen {
		b.WriteString(helpBar("e", "open in editor", "any key", "quit"))
	} else {
		b.WriteString(helpBar("any key", "quit"))
	}

	return styles.App.Render(b.String())
}
