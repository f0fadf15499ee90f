package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipkit/internal/application/commands"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent install runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j := openJournal()
		if j == nil {
			return fmt.Errorf("install history is disabled or unavailable")
		}
		defer j.Close()

		runs, err := commands.NewHistoryCommand(j, historyLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println(mutedStyle.Render("No installs recorded yet"))
			return nil
		}

		for _, run := range runs {
			written, skipped := run.Totals()
			header := fmt.Sprintf("#%d %s  %s -> %s  written=%d skipped=%d",
				run.ID, run.StartedAt.Local().Format("2006-01-02 15:04"), run.Registry, run.DestRoot, written, skipped)
			if run.Error != "" {
				fmt.Println(errorStyle.Render(header))
				fmt.Println(mutedStyle.Render("  " + run.Error))
			} else {
				fmt.Println(header)
			}
			for _, r := range run.Results {
				fmt.Println(mutedStyle.Render(fmt.Sprintf("  %s: written=%d skipped=%d", r.Name, r.Written, r.Skipped)))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "number of runs to show")
}
