package biteai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all local state and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("reset is irreversible; re-run with --force to confirm")
		}
		return withStore(func(s *store.Store) error {
			s.ResetState()
			fmt.Fprintln(cmd.OutOrStdout(), "State reset to defaults")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm the reset")
}
