package biteai

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/catalog"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Track today's meal plan",
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's meals with completion marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			state := s.State()
			done := map[string]bool{}
			for _, id := range state.CompletedMeals {
				done[id] = true
			}
			out := cmd.OutOrStdout()
			for _, m := range catalog.OrderedMeals(state.MealOrder) {
				fmt.Fprintf(out, "%s %s  %s (%s)\n", mark(done[m.ID]), m.ID, m.Name, m.Time)
				fmt.Fprintf(out, "      %d kcal | P %.0fg | C %.0fg | F %.0fg\n", m.Calories, m.ProteinG, m.CarbsG, m.FatG)
			}
			return nil
		})
	},
}

var mealDoneCmd = &cobra.Command{
	Use:   "done <meal-id>",
	Short: "Mark a meal as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, ok := catalog.MealByID(args[0])
		if !ok {
			return fmt.Errorf("unknown meal id %q", args[0])
		}
		return withStore(func(s *store.Store) error {
			for _, id := range s.State().CompletedMeals {
				if id == meal.ID {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is already marked done\n", meal.Name)
					return nil
				}
			}
			res := s.ToggleMeal(meal.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s\n", meal.Name)
			printUnlocks(cmd, res.Unlocked)
			if res.DayCompleted {
				p := s.State().Profile
				fmt.Fprintf(cmd.OutOrStdout(), "That's every meal today! Streak: %d day(s)\n", p.Streak)
			}
			return nil
		})
	},
}

var mealUndoCmd = &cobra.Command{
	Use:   "undo <meal-id>",
	Short: "Mark a completed meal as not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, ok := catalog.MealByID(args[0])
		if !ok {
			return fmt.Errorf("unknown meal id %q", args[0])
		}
		return withStore(func(s *store.Store) error {
			completed := false
			for _, id := range s.State().CompletedMeals {
				if id == meal.ID {
					completed = true
					break
				}
			}
			if !completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not marked done\n", meal.Name)
				return nil
			}
			s.ToggleMeal(meal.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Unmarked %s\n", meal.Name)
			return nil
		})
	},
}

var mealSwapCmd = &cobra.Command{
	Use:   "swap <meal-id>",
	Short: "Show a random alternative for a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		original, ok := catalog.MealByID(args[0])
		if !ok {
			return fmt.Errorf("unknown meal id %q", args[0])
		}
		alt, ok := catalog.Swap(original.ID)
		if !ok {
			return fmt.Errorf("no alternatives for %s", original.Name)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Swap %s -> %s (%s)\n", original.Name, alt.Name, alt.Time)
		fmt.Fprintf(out, "%d kcal | P %.0fg | C %.0fg | F %.0fg\n", alt.Calories, alt.ProteinG, alt.CarbsG, alt.FatG)
		fmt.Fprintf(out, "Ingredients: %s\n", strings.Join(alt.Ingredients, ", "))
		return nil
	},
}

var mealOrderCmd = &cobra.Command{
	Use:   "order <meal-id>...",
	Short: "Set a custom display order for meals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range args {
			if _, ok := catalog.MealByID(id); !ok {
				return fmt.Errorf("unknown meal id %q", id)
			}
		}
		return withStore(func(s *store.Store) error {
			s.SetMealOrder(args)
			fmt.Fprintf(cmd.OutOrStdout(), "Meal order updated\n")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDoneCmd)
	mealCmd.AddCommand(mealUndoCmd)
	mealCmd.AddCommand(mealSwapCmd)
	mealCmd.AddCommand(mealOrderCmd)
}
