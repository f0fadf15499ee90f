package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"snipkit/internal/adapters/tui/views"
	"snipkit/internal/application/commands"
	"snipkit/internal/domain"
	"snipkit/internal/logging"
	"snipkit/internal/ports"
)

// Step is the current stage of the install flow
type Step int

const (
	StepLoading Step = iota
	StepPick
	StepDestination
	StepRename
	StepPlanning
	StepConfirm
	StepInstalling
	StepReport
)

// Deps carries the adapters and defaults the app runs against
type Deps struct {
	Store     ports.RegistryStore
	Dest      ports.Destination
	Clipboard ports.Clipboard
	Editor    ports.Editor         // optional
	Journal   ports.InstallJournal // optional

	RegistryPath string
	DestRoot     string
}

// App is the main TUI application model
type App struct {
	deps   Deps
	logger zerolog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	step    Step
	reg     domain.Registry
	names   []string
	dir     string
	renames domain.Renames

	cancelled bool
	results   []domain.InstallResult
	err       error

	busy        *views.BusyModel
	picker      *views.PickerModel
	destination *views.DestinationModel
	rename      *views.RenameModel
	confirm     *views.OverwriteModel
	report      *views.ReportModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ctx context.Context, deps Deps) *App {
	ctx, cancel := context.WithCancel(ctx)
	return &App{
		deps:        deps,
		logger:      logging.GetLogger("tui"),
		ctx:         ctx,
		cancel:      cancel,
		step:        StepLoading,
		busy:        views.NewBusyModel(),
		picker:      views.NewPickerModel(),
		destination: views.NewDestinationModel(deps.DestRoot),
		confirm:     views.NewOverwriteModel(),
		report:      views.NewReportModel(),
	}
}

// Step returns the current stage
func (a *App) Step() Step {
	return a.step
}

// Cancelled reports whether the user aborted before installing
func (a *App) Cancelled() bool {
	return a.cancelled
}

// Outcome returns the install results and the error that ended the flow
func (a *App) Outcome() ([]domain.InstallResult, error) {
	return a.results, a.err
}

type registryLoadedMsg struct {
	reg domain.Registry
	err error
}

type planReadyMsg struct {
	plan *domain.InstallPlan
	err  error
}

type installDoneMsg struct {
	results []domain.InstallResult
	err     error
}

type editorFinishedMsg struct {
	err error
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.busy.Start("Loading registry"), a.loadRegistry())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.busy.SetSize(msg.Width, msg.Height)
		a.picker.SetSize(msg.Width, msg.Height)
		a.destination.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.report.SetSize(msg.Width, msg.Height)
		if a.rename != nil {
			a.rename.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, a.abort()
		}

	case views.CancelMsg:
		return a, a.abort()

	case views.QuitMsg:
		return a, tea.Quit

	case registryLoadedMsg:
		if msg.err != nil {
			return a, a.finish(nil, msg.err)
		}
		a.reg = msg.reg
		a.picker.SetRegistry(msg.reg)
		a.step = StepPick
		return a, nil

	case views.CopyRequestMsg:
		return a, a.copy(msg.Name)

	case views.CopyDoneMsg:
		if msg.Err != nil {
			a.picker.Fail("Copy failed: " + msg.Err.Error())
		} else {
			a.picker.Notify(fmt.Sprintf("Copied %s to clipboard", msg.Name))
		}
		return a, nil

	case views.SelectionDoneMsg:
		a.names = msg.Names
		a.step = StepDestination
		return a, a.destination.Init()

	case views.DestinationChosenMsg:
		a.dir = msg.Dir
		a.rename = views.NewRenameModel(a.reg, a.names)
		a.rename.SetSize(a.width, a.height)
		if a.rename.Empty() {
			a.renames = domain.Renames{}
			return a, a.plan()
		}
		a.step = StepRename
		return a, a.rename.Init()

	case views.RenamesChosenMsg:
		a.renames = msg.Renames
		return a, a.plan()

	case planReadyMsg:
		if msg.err != nil {
			return a, a.finish(nil, msg.err)
		}
		if msg.plan.Collisions == 0 {
			return a, a.install(false)
		}
		a.confirm.SetPlan(msg.plan.Collisions, a.dir)
		a.step = StepConfirm
		return a, nil

	case views.OverwriteConfirmedMsg:
		return a, a.install(true)

	case installDoneMsg:
		return a, a.finish(msg.results, msg.err)

	case views.OpenInstalledMsg:
		return a, a.openEditor(a.installedPath())

	case editorFinishedMsg:
		if msg.err != nil {
			a.report.Fail("Editor failed: " + msg.err.Error())
		}
		return a, nil
	}

	return a, a.delegate(msg)
}

func (a *App) delegate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.step {
	case StepLoading, StepPlanning, StepInstalling:
		_, cmd = a.busy.Update(msg)
	case StepPick:
		_, cmd = a.picker.Update(msg)
	case StepDestination:
		_, cmd = a.destination.Update(msg)
	case StepRename:
		_, cmd = a.rename.Update(msg)
	case StepConfirm:
		_, cmd = a.confirm.Update(msg)
	case StepReport:
		_, cmd = a.report.Update(msg)
	}
	return cmd
}

// abort stops the flow. A running install is interrupted between files and
// still reports what it wrote.
func (a *App) abort() tea.Cmd {
	a.cancel()
	switch a.step {
	case StepInstalling:
		return nil
	case StepReport:
		return tea.Quit
	}
	a.logger.Info().Int("step", int(a.step)).Msg("Flow cancelled")
	a.cancelled = true
	return tea.Quit
}

func (a *App) finish(results []domain.InstallResult, err error) tea.Cmd {
	a.results = results
	a.err = err
	if err != nil {
		a.logger.Error().Err(err).Msg("Install flow failed")
	}
	a.report.SetOutcome(a.dir, results, err)
	a.report.CanOpen = a.deps.Editor != nil && a.installedPath() != ""
	a.step = StepReport
	return nil
}

func (a *App) loadRegistry() tea.Cmd {
	store, path := a.deps.Store, a.deps.RegistryPath
	return func() tea.Msg {
		reg, err := store.Load(path)
		return registryLoadedMsg{reg: reg, err: err}
	}
}

func (a *App) copy(name string) tea.Cmd {
	clip := a.deps.Clipboard
	text := (&commands.ShowResult{Name: name, Item: a.reg[name]}).ClipboardText()
	return func() tea.Msg {
		if clip == nil {
			return views.CopyDoneMsg{Name: name, Err: fmt.Errorf("clipboard unavailable")}
		}
		return views.CopyDoneMsg{Name: name, Err: clip.WriteAll(text)}
	}
}

func (a *App) plan() tea.Cmd {
	a.step = StepPlanning
	cmd := commands.NewPlanCommand(a.deps.Store, a.deps.Dest, a.deps.RegistryPath, a.names, a.dir, a.renames)
	ctx := a.ctx
	return tea.Batch(a.busy.Start("Checking destination"), func() tea.Msg {
		plan, err := cmd.Execute(ctx)
		return planReadyMsg{plan: plan, err: err}
	})
}

func (a *App) install(overwrite bool) tea.Cmd {
	a.step = StepInstalling
	cmd := commands.NewInstallCommand(a.deps.Store, a.deps.Dest, a.deps.RegistryPath, a.names, a.dir, overwrite, a.renames)
	if a.deps.Journal != nil {
		cmd.WithJournal(a.deps.Journal)
	}
	ctx := a.ctx
	return tea.Batch(a.busy.Start("Installing"), func() tea.Msg {
		results, err := cmd.Execute(ctx)
		return installDoneMsg{results: results, err: err}
	})
}

// installedPath returns the first file the install wrote, or "" when it
// wrote nothing
func (a *App) installedPath() string {
	for _, r := range a.results {
		if r.Written == 0 {
			continue
		}
		for _, rel := range a.reg[r.Name].OutputPaths(a.renames.For(r.Name)) {
			if !slices.Contains(r.Collisions, rel) {
				return filepath.Join(a.dir, filepath.FromSlash(rel))
			}
		}
	}
	return ""
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.deps.Editor == nil || path == "" {
		return nil
	}

	cmd, err := a.deps.Editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.step {
	case StepPick:
		return a.picker.View()
	case StepDestination:
		return a.destination.View()
	case StepRename:
		return a.rename.View()
	case StepConfirm:
		return a.confirm.View()
	case StepReport:
		return a.report.View()
	default:
		return a.busy.View()
	}
}
