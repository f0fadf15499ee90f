package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"snipkit/internal/adapters/filesystem"
	"snipkit/internal/adapters/sqlite"
	"snipkit/internal/config"
	"snipkit/internal/logging"
	"snipkit/internal/ports"
)

var (
	registryPath string
	verbosity    int

	cfg   *config.Config
	store ports.RegistryStore
	dest  ports.Destination
)

var rootCmd = &cobra.Command{
	Use:   "snipkit-cli",
	Short: "Build a snippet registry and install snippets from it",
	Long: `snipkit-cli packs a directory of code snippets into a single JSON
registry and copies snippets from that registry into a project.

Every subdirectory of the source directory is one snippet. Installing never
replaces an existing file unless asked to.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		logging.SetupLogger(verbosity)

		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		cfg, err = config.Load(wd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("registry") {
			cfg.Registry.Path = registryPath
		}

		store = filesystem.NewStore()
		dest = filesystem.NewDestination()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", config.DefaultRegistryPath, "path to the registry file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "V", "increase log verbosity (-V info, -VV debug, -VVV trace)")
}

// openJournal returns the install journal, or nil when history is disabled or
// the database cannot be opened. The journal never blocks an install.
func openJournal() ports.InstallJournal {
	if !cfg.History.Enabled {
		return nil
	}

	j := sqlite.NewJournal()
	if err := j.Open(cfg.History.Path); err != nil {
		logging.GetLogger("cli").Warn().Err(err).Str("path", cfg.History.Path).Msg("Install history unavailable")
		return nil
	}
	return j
}
