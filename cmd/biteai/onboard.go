package biteai

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/catalog"
	"github.com/heyyadarsh/biteai-cli/internal/model"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

var (
	onboardName          string
	onboardAge           int
	onboardHeight        float64
	onboardWeight        float64
	onboardTargetWeight  float64
	onboardGoal          string
	onboardDiet          string
	onboardActivity      string
	onboardAllergies     string
	onboardCravings      string
	onboardVibe          string
	onboardVibeIntensity int
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile and plan preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		update, err := buildOnboardUpdate(cmd)
		if err != nil {
			return err
		}
		return withStore(func(s *store.Store) error {
			if s.State().Profile.JoinedDate == "" {
				joined := time.Now().Format("2006-01-02")
				update.JoinedDate = &joined
			}
			completed := true
			update.CompletedOnboarding = &completed
			s.UpdateProfile(update)

			p := s.State().Profile
			greeting := "Welcome to BiteAI"
			if v, ok := catalog.VibeByID(p.Vibe); ok {
				greeting = fmt.Sprintf("%s %s", v.Emoji, v.Greeting)
			}
			if p.Name != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "You're all set, %s. %s\n", p.Name, greeting)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "You're all set. %s\n", greeting)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Run `biteai today` to see your plan.")
			return nil
		})
	},
}

func buildOnboardUpdate(cmd *cobra.Command) (store.ProfileUpdate, error) {
	var update store.ProfileUpdate

	if cmd.Flags().Changed("name") {
		update.Name = &onboardName
	}
	if cmd.Flags().Changed("age") {
		if onboardAge <= 0 || onboardAge > 120 {
			return update, fmt.Errorf("invalid --age %d (expected 1-120)", onboardAge)
		}
		update.Age = &onboardAge
	}
	if cmd.Flags().Changed("height") {
		if onboardHeight <= 0 {
			return update, fmt.Errorf("--height must be > 0 (cm)")
		}
		update.HeightCm = &onboardHeight
	}
	if cmd.Flags().Changed("weight") {
		if onboardWeight <= 0 {
			return update, fmt.Errorf("--weight must be > 0 (kg)")
		}
		update.WeightKg = &onboardWeight
	}
	if cmd.Flags().Changed("target-weight") {
		if onboardTargetWeight <= 0 {
			return update, fmt.Errorf("--target-weight must be > 0 (kg)")
		}
		update.TargetWeightKg = &onboardTargetWeight
	}
	if cmd.Flags().Changed("goal") {
		if !model.ValidGoal(onboardGoal) {
			return update, fmt.Errorf("invalid --goal %q (expected weight-loss, muscle-gain, maintain, or performance)", onboardGoal)
		}
		update.Goal = &onboardGoal
	}
	if cmd.Flags().Changed("diet") {
		prefs := splitList(onboardDiet)
		for _, p := range prefs {
			if !catalog.ValidDietaryPreference(p) {
				return update, fmt.Errorf("unknown dietary preference %q", p)
			}
		}
		update.DietaryPreferences = prefs
	}
	if cmd.Flags().Changed("activity") {
		if !catalog.ValidActivityLevel(onboardActivity) {
			return update, fmt.Errorf("unknown activity level %q", onboardActivity)
		}
		update.ActivityLevel = &onboardActivity
	}
	if cmd.Flags().Changed("allergies") {
		update.Allergies = splitList(onboardAllergies)
	}
	if cmd.Flags().Changed("cravings") {
		update.Cravings = splitList(onboardCravings)
	}
	if cmd.Flags().Changed("vibe") {
		if !model.ValidVibe(onboardVibe) {
			return update, fmt.Errorf("invalid --vibe %q (expected chill, energetic, focused, or balanced)", onboardVibe)
		}
		update.Vibe = &onboardVibe
	}
	if cmd.Flags().Changed("vibe-intensity") {
		if onboardVibeIntensity < 0 || onboardVibeIntensity > 100 {
			return update, fmt.Errorf("--vibe-intensity must be 0-100")
		}
		update.VibeIntensity = &onboardVibeIntensity
	}
	return update, nil
}

func init() {
	rootCmd.AddCommand(onboardCmd)
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height in cm")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Weight in kg")
	onboardCmd.Flags().Float64Var(&onboardTargetWeight, "target-weight", 0, "Target weight in kg")
	onboardCmd.Flags().StringVar(&onboardGoal, "goal", "", "Goal: weight-loss|muscle-gain|maintain|performance")
	onboardCmd.Flags().StringVar(&onboardDiet, "diet", "", "Comma-separated dietary preferences")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "", "Activity level: sedentary|light|moderate|active|athlete")
	onboardCmd.Flags().StringVar(&onboardAllergies, "allergies", "", "Comma-separated allergies")
	onboardCmd.Flags().StringVar(&onboardCravings, "cravings", "", "Comma-separated cravings")
	onboardCmd.Flags().StringVar(&onboardVibe, "vibe", "", "Vibe: chill|energetic|focused|balanced")
	onboardCmd.Flags().IntVar(&onboardVibeIntensity, "vibe-intensity", 50, "Vibe intensity 0-100")
}
