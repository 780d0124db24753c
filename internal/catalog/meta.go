package catalog

// Onboarding and theming metadata from the product copy. Calories here are
// goal adjustments relative to maintenance, for display only.

type GoalOption struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Calories    int
}

var goalOptions = []GoalOption{
	{ID: "weight-loss", Title: "Weight Loss", Description: "Burn fat and get lean", Icon: "🔥", Calories: -500},
	{ID: "muscle-gain", Title: "Muscle Gain", Description: "Build strength and mass", Icon: "💪", Calories: 300},
	{ID: "maintain", Title: "Maintain", Description: "Keep your current physique", Icon: "⚖️", Calories: 0},
	{ID: "performance", Title: "Performance", Description: "Optimize for athletics", Icon: "🏃", Calories: 200},
}

type PreferenceOption struct {
	ID    string
	Label string
}

var dietaryPreferenceOptions = []PreferenceOption{
	{ID: "none", Label: "No Restrictions"},
	{ID: "vegetarian", Label: "Vegetarian"},
	{ID: "vegan", Label: "Vegan"},
	{ID: "keto", Label: "Keto"},
	{ID: "paleo", Label: "Paleo"},
	{ID: "gluten-free", Label: "Gluten Free"},
}

var activityLevelOptions = []PreferenceOption{
	{ID: "sedentary", Label: "Sedentary"},
	{ID: "light", Label: "Lightly Active"},
	{ID: "moderate", Label: "Moderately Active"},
	{ID: "active", Label: "Very Active"},
	{ID: "athlete", Label: "Athlete"},
}

type VibeConfig struct {
	ID          string
	Label       string
	Description string
	Emoji       string
	Greeting    string
}

var vibeConfigs = []VibeConfig{
	{ID: "chill", Label: "Chill", Description: "Relaxed vibes, easy pace", Emoji: "🌊", Greeting: "Take it easy today"},
	{ID: "energetic", Label: "Energetic", Description: "High energy, crush goals", Emoji: "⚡", Greeting: "Let's crush it!"},
	{ID: "focused", Label: "Focused", Description: "Dialed in, no distractions", Emoji: "🎯", Greeting: "Stay locked in"},
	{ID: "balanced", Label: "Balanced", Description: "Steady and sustainable", Emoji: "☯️", Greeting: "Balance is key"},
}

func Goals() []GoalOption {
	return append([]GoalOption(nil), goalOptions...)
}

func DietaryPreferences() []PreferenceOption {
	return append([]PreferenceOption(nil), dietaryPreferenceOptions...)
}

func ActivityLevels() []PreferenceOption {
	return append([]PreferenceOption(nil), activityLevelOptions...)
}

func ValidActivityLevel(id string) bool {
	for _, o := range activityLevelOptions {
		if o.ID == id {
			return true
		}
	}
	return false
}

func ValidDietaryPreference(id string) bool {
	for _, o := range dietaryPreferenceOptions {
		if o.ID == id {
			return true
		}
	}
	return false
}

func Vibes() []VibeConfig {
	return append([]VibeConfig(nil), vibeConfigs...)
}

func VibeByID(id string) (VibeConfig, bool) {
	for _, v := range vibeConfigs {
		if v.ID == id {
			return v, true
		}
	}
	return VibeConfig{}, false
}
