package store

const (
	AchievementFirstMeal = "firstMeal"
	AchievementAllMeals  = "allMeals"
	AchievementStreak3   = "streak3"
	AchievementStreak7   = "streak7"
	AchievementMeals50   = "meals50"
	AchievementMeals100  = "meals100"
)

type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

var achievementDefs = []Achievement{
	{ID: AchievementFirstMeal, Title: "First Bite", Description: "Complete your first meal", Icon: "🍽️"},
	{ID: AchievementAllMeals, Title: "Clean Plate Club", Description: "Complete every meal in a day", Icon: "✨"},
	{ID: AchievementStreak3, Title: "On a Roll", Description: "Reach a 3-day streak", Icon: "🔥"},
	{ID: AchievementStreak7, Title: "Week Warrior", Description: "Reach a 7-day streak", Icon: "🏆"},
	{ID: AchievementMeals50, Title: "Half Century", Description: "Complete 50 meals", Icon: "💯"},
	{ID: AchievementMeals100, Title: "Century Club", Description: "Complete 100 meals", Icon: "👑"},
}

func Achievements() []Achievement {
	return append([]Achievement(nil), achievementDefs...)
}

func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievementDefs {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// mealUnlocks evaluates completion-count thresholds after a meal is marked
// done. Every grant routes through addAchievement, so re-evaluating on a
// later mutation is harmless.
func (s *Store) mealUnlocks() []string {
	var unlocked []string
	if len(s.state.CompletedMeals) == 1 && s.state.Profile.TotalMealsCompleted >= 1 {
		if s.addAchievement(AchievementFirstMeal) {
			unlocked = append(unlocked, AchievementFirstMeal)
		}
	}
	if s.state.Profile.TotalMealsCompleted >= 50 {
		if s.addAchievement(AchievementMeals50) {
			unlocked = append(unlocked, AchievementMeals50)
		}
	}
	if s.state.Profile.TotalMealsCompleted >= 100 {
		if s.addAchievement(AchievementMeals100) {
			unlocked = append(unlocked, AchievementMeals100)
		}
	}
	return unlocked
}

// streakUnlocks evaluates streak thresholds after the streak advances.
func (s *Store) streakUnlocks() []string {
	var unlocked []string
	if s.state.Profile.Streak >= 3 {
		if s.addAchievement(AchievementStreak3) {
			unlocked = append(unlocked, AchievementStreak3)
		}
	}
	if s.state.Profile.Streak >= 7 {
		if s.addAchievement(AchievementStreak7) {
			unlocked = append(unlocked, AchievementStreak7)
		}
	}
	return unlocked
}
