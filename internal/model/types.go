package model

const (
	GoalWeightLoss  = "weight-loss"
	GoalMuscleGain  = "muscle-gain"
	GoalMaintain    = "maintain"
	GoalPerformance = "performance"
)

const (
	VibeChill     = "chill"
	VibeEnergetic = "energetic"
	VibeFocused   = "focused"
	VibeBalanced  = "balanced"
)

const MaxWaterGlasses = 12

// UserProfile is the single per-installation profile. Numeric fields use
// zero as "not set"; parsing free-form user input into them happens at the
// CLI boundary, never here.
type UserProfile struct {
	Name                string   `json:"name"`
	Age                 int      `json:"age"`
	HeightCm            float64  `json:"heightCm"`
	WeightKg            float64  `json:"weightKg"`
	TargetWeightKg      float64  `json:"targetWeightKg"`
	Goal                string   `json:"goal"`
	DietaryPreferences  []string `json:"dietaryPreferences"`
	ActivityLevel       string   `json:"activityLevel"`
	Allergies           []string `json:"allergies"`
	Cravings            []string `json:"cravings"`
	Vibe                string   `json:"vibe"`
	VibeIntensity       int      `json:"vibeIntensity"`
	Streak              int      `json:"streak"`
	LongestStreak       int      `json:"longestStreak"`
	TotalMealsCompleted int      `json:"totalMealsCompleted"`
	JoinedDate          string   `json:"joinedDate"`
	LastActiveDate      string   `json:"lastActiveDate"`
	CompletedOnboarding bool     `json:"completedOnboarding"`
	ReducedMotion       bool     `json:"reducedMotion"`
}

// AppState is the root persisted aggregate. It is stored as a single JSON
// document in one durable slot and rewritten whole on every mutation.
type AppState struct {
	Profile        UserProfile     `json:"profile"`
	CompletedMeals []string        `json:"completedMeals"`
	WaterGlasses   int             `json:"waterGlasses"`
	HasSeenSplash  bool            `json:"hasSeenSplash"`
	MealOrder      []string        `json:"mealOrder"`
	Achievements   []string        `json:"achievements"`
	DailyStreak    map[string]bool `json:"dailyStreak"`
}

func DefaultProfile() UserProfile {
	return UserProfile{
		ActivityLevel:      "moderate",
		Vibe:               VibeBalanced,
		VibeIntensity:      50,
		DietaryPreferences: []string{},
		Allergies:          []string{},
		Cravings:           []string{},
	}
}

func DefaultState() AppState {
	return AppState{
		Profile:        DefaultProfile(),
		CompletedMeals: []string{},
		MealOrder:      []string{},
		Achievements:   []string{},
		DailyStreak:    map[string]bool{},
	}
}

func ValidGoal(goal string) bool {
	switch goal {
	case GoalWeightLoss, GoalMuscleGain, GoalMaintain, GoalPerformance:
		return true
	}
	return false
}

func ValidVibe(vibe string) bool {
	switch vibe {
	case VibeChill, VibeEnergetic, VibeFocused, VibeBalanced:
		return true
	}
	return false
}
