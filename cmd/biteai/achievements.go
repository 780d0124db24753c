package biteai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List earned and locked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			state := s.State()
			earned := map[string]bool{}
			for _, id := range state.Achievements {
				earned[id] = true
			}
			out := cmd.OutOrStdout()
			count := 0
			for _, a := range store.Achievements() {
				status := "locked"
				if earned[a.ID] {
					status = "earned"
					count++
				}
				fmt.Fprintf(out, "%s %s [%s] — %s\n", a.Icon, a.Title, status, a.Description)
			}
			fmt.Fprintf(out, "Earned %d/%d\n", count, len(store.Achievements()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
