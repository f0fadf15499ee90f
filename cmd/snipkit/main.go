package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"snipkit/internal/adapters/clipboard"
	"snipkit/internal/adapters/editor"
	"snipkit/internal/adapters/filesystem"
	"snipkit/internal/adapters/sqlite"
	"snipkit/internal/adapters/tui"
	"snipkit/internal/config"
	"snipkit/internal/logging"
)

func main() {
	registryFlag := flag.String("registry", "", "path to the registry file (default from config)")
	verbosity := flag.Int("v", 0, "log verbosity written to the log file (0-3)")
	flag.Parse()

	logging.SetupFileLogger(*verbosity)
	logger := logging.GetLogger("main")

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *registryFlag != "" {
		cfg.Registry.Path = *registryFlag
	}

	deps := tui.Deps{
		Store:        filesystem.NewStore(),
		Dest:         filesystem.NewDestination(),
		Editor:       editor.NewOpener(),
		RegistryPath: cfg.Registry.Path,
		DestRoot:     cfg.Install.Dest,
	}
	if clip := clipboard.NewSystem(); clip.Available() {
		deps.Clipboard = clip
	}
	if cfg.History.Enabled {
		j := sqlite.NewJournal()
		if err := j.Open(cfg.History.Path); err != nil {
			logger.Warn().Err(err).Msg("Install history unavailable")
		} else {
			defer j.Close()
			deps.Journal = j
		}
	}

	// Create and run TUI app
	app := tui.NewApp(context.Background(), deps)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if app.Cancelled() {
		fmt.Println("Aborted.")
		return
	}
	results, err := app.Outcome()
	for _, r := range results {
		fmt.Printf("%s: written=%d skipped=%d\n", r.Name, r.Written, r.Skipped)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
