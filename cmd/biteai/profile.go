package biteai

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/catalog"
	"github.com/heyyadarsh/biteai-cli/internal/model"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and progress stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			state := s.State()
			p := state.Profile
			out := cmd.OutOrStdout()

			name := p.Name
			if name == "" {
				name = "(not set)"
			}
			fmt.Fprintf(out, "Name: %s\n", name)
			if p.Age > 0 {
				fmt.Fprintf(out, "Age: %d\n", p.Age)
			}
			if p.HeightCm > 0 {
				fmt.Fprintf(out, "Height: %.0f cm\n", p.HeightCm)
			}
			if p.WeightKg > 0 {
				fmt.Fprintf(out, "Weight: %.1f kg\n", p.WeightKg)
			}
			if p.TargetWeightKg > 0 {
				fmt.Fprintf(out, "Target weight: %.1f kg\n", p.TargetWeightKg)
			}
			goal := p.Goal
			if goal == "" {
				goal = "(not set)"
			}
			fmt.Fprintf(out, "Goal: %s\n", goal)
			if len(p.DietaryPreferences) > 0 {
				fmt.Fprintf(out, "Dietary preferences: %s\n", strings.Join(p.DietaryPreferences, ", "))
			}
			fmt.Fprintf(out, "Activity level: %s\n", p.ActivityLevel)
			if len(p.Allergies) > 0 {
				fmt.Fprintf(out, "Allergies: %s\n", strings.Join(p.Allergies, ", "))
			}
			if len(p.Cravings) > 0 {
				fmt.Fprintf(out, "Cravings: %s\n", strings.Join(p.Cravings, ", "))
			}
			if v, ok := catalog.VibeByID(p.Vibe); ok {
				fmt.Fprintf(out, "Vibe: %s %s (intensity %d)\n", v.Emoji, v.Label, p.VibeIntensity)
			}
			fmt.Fprintf(out, "Reduced motion: %v\n", p.ReducedMotion)
			if p.JoinedDate != "" {
				fmt.Fprintf(out, "Joined: %s\n", p.JoinedDate)
			}
			fmt.Fprintf(out, "Streak: %d (longest %d)\n", p.Streak, p.LongestStreak)
			fmt.Fprintf(out, "Meals completed: %d\n", p.TotalMealsCompleted)
			fmt.Fprintf(out, "Achievements: %d/%d\n", len(state.Achievements), len(store.Achievements()))
			return nil
		})
	},
}

var (
	profileSetName          string
	profileSetAge           int
	profileSetHeight        float64
	profileSetWeight        float64
	profileSetTargetWeight  float64
	profileSetGoal          string
	profileSetDiet          string
	profileSetActivity      string
	profileSetAllergies     string
	profileSetCravings      string
	profileSetVibe          string
	profileSetVibeIntensity int
	profileSetReducedMotion bool
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		var update store.ProfileUpdate
		changed := 0

		if cmd.Flags().Changed("name") {
			update.Name = &profileSetName
			changed++
		}
		if cmd.Flags().Changed("age") {
			if profileSetAge <= 0 || profileSetAge > 120 {
				return fmt.Errorf("invalid --age %d (expected 1-120)", profileSetAge)
			}
			update.Age = &profileSetAge
			changed++
		}
		if cmd.Flags().Changed("height") {
			if profileSetHeight <= 0 {
				return fmt.Errorf("--height must be > 0 (cm)")
			}
			update.HeightCm = &profileSetHeight
			changed++
		}
		if cmd.Flags().Changed("weight") {
			if profileSetWeight <= 0 {
				return fmt.Errorf("--weight must be > 0 (kg)")
			}
			update.WeightKg = &profileSetWeight
			changed++
		}
		if cmd.Flags().Changed("target-weight") {
			if profileSetTargetWeight <= 0 {
				return fmt.Errorf("--target-weight must be > 0 (kg)")
			}
			update.TargetWeightKg = &profileSetTargetWeight
			changed++
		}
		if cmd.Flags().Changed("goal") {
			if !model.ValidGoal(profileSetGoal) {
				return fmt.Errorf("invalid --goal %q (expected weight-loss, muscle-gain, maintain, or performance)", profileSetGoal)
			}
			update.Goal = &profileSetGoal
			changed++
		}
		if cmd.Flags().Changed("diet") {
			prefs := splitList(profileSetDiet)
			for _, p := range prefs {
				if !catalog.ValidDietaryPreference(p) {
					return fmt.Errorf("unknown dietary preference %q", p)
				}
			}
			update.DietaryPreferences = prefs
			changed++
		}
		if cmd.Flags().Changed("activity") {
			if !catalog.ValidActivityLevel(profileSetActivity) {
				return fmt.Errorf("unknown activity level %q", profileSetActivity)
			}
			update.ActivityLevel = &profileSetActivity
			changed++
		}
		if cmd.Flags().Changed("allergies") {
			update.Allergies = splitList(profileSetAllergies)
			changed++
		}
		if cmd.Flags().Changed("cravings") {
			update.Cravings = splitList(profileSetCravings)
			changed++
		}
		if cmd.Flags().Changed("vibe") {
			if !model.ValidVibe(profileSetVibe) {
				return fmt.Errorf("invalid --vibe %q (expected chill, energetic, focused, or balanced)", profileSetVibe)
			}
			update.Vibe = &profileSetVibe
			changed++
		}
		if cmd.Flags().Changed("vibe-intensity") {
			if profileSetVibeIntensity < 0 || profileSetVibeIntensity > 100 {
				return fmt.Errorf("--vibe-intensity must be 0-100")
			}
			update.VibeIntensity = &profileSetVibeIntensity
			changed++
		}
		if cmd.Flags().Changed("reduced-motion") {
			update.ReducedMotion = &profileSetReducedMotion
			changed++
		}
		if changed == 0 {
			return fmt.Errorf("set at least one flag")
		}
		return withStore(func(s *store.Store) error {
			s.UpdateProfile(update)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d profile field(s)\n", changed)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileSetCmd.Flags().StringVar(&profileSetName, "name", "", "Your name")
	profileSetCmd.Flags().IntVar(&profileSetAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileSetHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileSetWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileSetTargetWeight, "target-weight", 0, "Target weight in kg")
	profileSetCmd.Flags().StringVar(&profileSetGoal, "goal", "", "Goal: weight-loss|muscle-gain|maintain|performance")
	profileSetCmd.Flags().StringVar(&profileSetDiet, "diet", "", "Comma-separated dietary preferences")
	profileSetCmd.Flags().StringVar(&profileSetActivity, "activity", "", "Activity level: sedentary|light|moderate|active|athlete")
	profileSetCmd.Flags().StringVar(&profileSetAllergies, "allergies", "", "Comma-separated allergies")
	profileSetCmd.Flags().StringVar(&profileSetCravings, "cravings", "", "Comma-separated cravings")
	profileSetCmd.Flags().StringVar(&profileSetVibe, "vibe", "", "Vibe: chill|energetic|focused|balanced")
	profileSetCmd.Flags().IntVar(&profileSetVibeIntensity, "vibe-intensity", 50, "Vibe intensity 0-100")
	profileSetCmd.Flags().BoolVar(&profileSetReducedMotion, "reduced-motion", false, "Reduce animation (accessibility)")
}
