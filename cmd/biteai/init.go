package biteai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/app"
	"github.com/heyyadarsh/biteai-cli/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local biteai state database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		slot, err := storage.Open(path)
		if err != nil {
			return err
		}
		defer slot.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized biteai state at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
