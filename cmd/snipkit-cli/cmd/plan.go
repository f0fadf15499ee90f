package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipkit/internal/application"
	"snipkit/internal/application/commands"
	"snipkit/internal/domain"
)

var (
	installDest    string
	installRenames []string
)

var planCmd = &cobra.Command{
	Use:   "plan <name>...",
	Short: "Count the existing files an install would overwrite",
	Long: `Check the destination for files an install of the named snippets would
collide with. Nothing is written. Unknown names are ignored.

Examples:
  snipkit-cli plan button card --dest src/components
  snipkit-cli plan button --rename button=Btn`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		destRoot, renames, err := installTarget(cmd)
		if err != nil {
			return err
		}

		plan, err := commands.NewPlanCommand(store, dest, cfg.Registry.Path, args, destRoot, renames).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if plan.Collisions == 0 {
			fmt.Println(okStyle.Render("No existing files in " + destRoot + " would be overwritten"))
			return nil
		}
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d existing file(s) in %s would be overwritten", plan.Collisions, destRoot)))
		return nil
	},
}

// installTarget resolves the destination and renames shared by plan and add
func installTarget(cmd *cobra.Command) (string, domain.Renames, error) {
	destRoot := cfg.Install.Dest
	if cmd.Flags().Changed("dest") {
		destRoot = installDest
	}

	renames, err := application.ParseRenames(installRenames)
	if err != nil {
		return "", nil, err
	}
	return destRoot, renames, nil
}

func addInstallFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&installDest, "dest", "d", "", "destination directory (default from config)")
	cmd.Flags().StringArrayVarP(&installRenames, "rename", "r", nil, "rename the file of a single-file snippet, as NAME=LEAF (repeatable)")
}

func init() {
	rootCmd.AddCommand(planCmd)
	addInstallFlags(planCmd)
}
