package biteai

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/catalog"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's plan, progress, and streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			out := cmd.OutOrStdout()
			state := s.State()

			if !state.HasSeenSplash {
				fmt.Fprintln(out, "🍽️  Welcome to BiteAI — your plan, your pace.")
				s.SetHasSeenSplash(true)
			}

			p := state.Profile
			if v, ok := catalog.VibeByID(p.Vibe); ok {
				if p.Name != "" {
					fmt.Fprintf(out, "%s %s, %s\n", v.Emoji, v.Greeting, p.Name)
				} else {
					fmt.Fprintf(out, "%s %s\n", v.Emoji, v.Greeting)
				}
			}
			if !p.CompletedOnboarding {
				fmt.Fprintln(out, "Tip: run `biteai onboard` to personalize your plan.")
			}

			plan := catalog.Plan()
			done := map[string]bool{}
			for _, id := range state.CompletedMeals {
				done[id] = true
			}

			var calories int
			var protein, carbs, fat float64
			fmt.Fprintln(out, "Meals:")
			for _, m := range catalog.OrderedMeals(state.MealOrder) {
				fmt.Fprintf(out, "  %s %s  %s (%s)\n", mark(done[m.ID]), m.ID, m.Name, m.Time)
				if done[m.ID] {
					calories += m.Calories
					protein += m.ProteinG
					carbs += m.CarbsG
					fat += m.FatG
				}
			}
			fmt.Fprintf(out, "Consumed: %d/%d kcal | P %.0f/%.0fg | C %.0f/%.0fg | F %.0f/%.0fg\n",
				calories, plan.TargetCalories, protein, plan.TargetProteinG, carbs, plan.TargetCarbsG, fat, plan.TargetFatG)
			fmt.Fprintf(out, "Water: %d/%d glasses\n", state.WaterGlasses, plan.WaterGoal)
			fmt.Fprintf(out, "Streak: %d day(s) (longest %d)\n", p.Streak, p.LongestStreak)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
