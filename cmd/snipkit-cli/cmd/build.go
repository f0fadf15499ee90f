package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipkit/internal/adapters/filesystem"
	"snipkit/internal/application/commands"
)

var buildSource string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the registry from the snippet source directory",
	Long: `Scan the source directory and write every subdirectory as one snippet
into the registry file. The registry is replaced as a whole.

Examples:
  snipkit-cli build
  snipkit-cli build --source components --registry ui.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := cfg.Source.Dir
		if cmd.Flags().Changed("source") {
			source = buildSource
		}

		scanner := filesystem.NewBuilder(cfg.Build.ReadConcurrency)
		result, err := commands.NewBuildCommand(scanner, store, source, cfg.Registry.Path).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(okStyle.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildSource, "source", "", "snippet source directory (default from config)")
}
