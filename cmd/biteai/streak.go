package biteai

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your streak and recent completed days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			state := s.State()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current streak: %d day(s)\n", state.Profile.Streak)
			fmt.Fprintf(out, "Longest streak: %d day(s)\n", state.Profile.LongestStreak)

			fmt.Fprintln(out, "Last 7 days:")
			for i := 6; i >= 0; i-- {
				day := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
				fmt.Fprintf(out, "  %s %s\n", mark(state.DailyStreak[day]), day)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
