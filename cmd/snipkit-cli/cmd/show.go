package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"snipkit/internal/adapters/clipboard"
	"snipkit/internal/application/commands"
)

var showCopy bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the files of a snippet",
	Long: `Print every file of a snippet with its registry path.

With --copy the snippet is also put on the clipboard: the content of a
single-file snippet as is, otherwise all files under "// path" headers.

Examples:
  snipkit-cli show button
  snipkit-cli show button --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewShowCommand(store, cfg.Registry.Path, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, f := range result.Item.Files {
			fmt.Println(mutedStyle.Render("--- " + f.Path))
			fmt.Print(f.Content)
			if !strings.HasSuffix(f.Content, "\n") {
				fmt.Println()
			}
		}

		if showCopy {
			if err := clipboard.NewSystem().WriteAll(result.ClipboardText()); err != nil {
				return fmt.Errorf("failed to copy %s: %w", result.Name, err)
			}
			fmt.Println(okStyle.Render("Copied " + result.Name + " to clipboard"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the snippet to the clipboard")
}
