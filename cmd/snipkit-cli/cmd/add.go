package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipkit/internal/application/commands"
	"snipkit/internal/domain"
)

var (
	addYes          bool
	addSkipExisting bool
)

var addCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Install snippets into the destination directory",
	Long: `Copy the named snippets into the destination directory, in order.

The destination is checked first. When files already exist, add stops
unless --yes (overwrite them) or --skip-existing (keep them) is given.

Examples:
  snipkit-cli add button card
  snipkit-cli add button --rename button=Btn --dest src/ui
  snipkit-cli add card --skip-existing`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addYes && addSkipExisting {
			return fmt.Errorf("--yes and --skip-existing cannot be used together")
		}

		destRoot, renames, err := installTarget(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		plan, err := commands.NewPlanCommand(store, dest, cfg.Registry.Path, args, destRoot, renames).Execute(ctx)
		if err != nil {
			return err
		}
		if plan.Collisions > 0 && !addYes && !addSkipExisting {
			fmt.Println(warnStyle.Render(fmt.Sprintf("%d existing file(s) in %s would be overwritten.", plan.Collisions, destRoot)))
			fmt.Println("Pass --yes to overwrite them or --skip-existing to keep them.")
			return fmt.Errorf("aborted")
		}

		install := commands.NewInstallCommand(store, dest, cfg.Registry.Path, args, destRoot, addYes, renames)
		if j := openJournal(); j != nil {
			defer j.Close()
			install.WithJournal(j)
		}

		results, err := install.Execute(ctx)
		printResults(results)
		return err
	},
}

func printResults(results []domain.InstallResult) {
	for _, r := range results {
		line := fmt.Sprintf("%s: written=%d skipped=%d", r.Name, r.Written, r.Skipped)
		if r.Skipped > 0 {
			fmt.Println(warnStyle.Render(line))
			for _, c := range r.Collisions {
				fmt.Println(mutedStyle.Render("  kept existing " + c))
			}
			continue
		}
		fmt.Println(okStyle.Render(line))
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	addInstallFlags(addCmd)
	addCmd.Flags().BoolVarP(&addYes, "yes", "y", false, "overwrite existing files")
	addCmd.Flags().BoolVar(&addSkipExisting, "skip-existing", false, "keep existing files and install the rest")
}
