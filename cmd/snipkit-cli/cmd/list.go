package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"snipkit/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List snippet names in the registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := commands.NewListCommand(store, cfg.Registry.Path).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
