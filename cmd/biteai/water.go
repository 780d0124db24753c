package biteai

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/catalog"
	"github.com/heyyadarsh/biteai-cli/internal/model"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			printWater(cmd, s.State().WaterGlasses)
			return nil
		})
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a glass of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			printWater(cmd, s.AddWater())
			return nil
		})
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a logged glass of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			printWater(cmd, s.RemoveWater())
			return nil
		})
	},
}

func printWater(cmd *cobra.Command, glasses int) {
	goal := catalog.Plan().WaterGoal
	filled := strings.Repeat("💧", glasses)
	fmt.Fprintf(cmd.OutOrStdout(), "Water: %d/%d glasses %s\n", glasses, goal, filled)
	if glasses >= model.MaxWaterGlasses {
		fmt.Fprintln(cmd.OutOrStdout(), "That's the daily cap, hydration champion.")
	}
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterRemoveCmd)
}
