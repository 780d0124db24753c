// Package store owns the persisted application state: the user profile,
// today's completions, water count, achievements, and the daily streak
// ledger. It is the single writer; everything else reads State() and calls
// the mutation methods. State lives as one JSON document in a storage.Slot
// and the whole document is rewritten after every mutation.
package store

import (
	"encoding/json"
	"time"

	"github.com/heyyadarsh/biteai-cli/internal/model"
	"github.com/heyyadarsh/biteai-cli/internal/storage"
)

const (
	DefaultKey = "biteai-state"

	dateLayout = "2006-01-02"

	defaultDailyMealCount = 4
)

// Store is not safe for concurrent use; the app has exactly one mutator.
type Store struct {
	slot           storage.Slot
	key            string
	now            func() time.Time
	dailyMealCount int
	state          model.AppState
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock fixes the store's notion of "now" so streak arithmetic can be
// tested against specific dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDailyMealCount sets how many completed meals make a full day. The
// caller wires this from the meal catalog so the store stays decoupled from
// plan data.
func WithDailyMealCount(n int) Option {
	return func(s *Store) { s.dailyMealCount = n }
}

func New(slot storage.Slot, opts ...Option) *Store {
	s := &Store{
		slot:           slot,
		key:            DefaultKey,
		now:            time.Now,
		dailyMealCount: defaultDailyMealCount,
		state:          model.DefaultState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the slot and replaces the in-memory state. A missing or
// unparseable document degrades to the hardwired defaults; nothing here can
// fail from the caller's point of view. The streak recomputation runs
// exactly once, before Load returns.
func (s *Store) Load() {
	state := model.DefaultState()
	if raw, ok, err := s.slot.Get(s.key); err == nil && ok {
		if decoded, valid := decodeState(raw); valid {
			state = decoded
		}
	}
	s.state = state
	s.recomputeStreakOnLoad()
	s.save()
}

// decodeState shallow-merges the stored document over the defaults:
// unmarshalling into a pre-populated value leaves absent fields at their
// default, which is exactly the forward-compat contract.
func decodeState(raw string) (model.AppState, bool) {
	state := model.DefaultState()
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return model.AppState{}, false
	}
	if state.CompletedMeals == nil {
		state.CompletedMeals = []string{}
	}
	if state.MealOrder == nil {
		state.MealOrder = []string{}
	}
	if state.Achievements == nil {
		state.Achievements = []string{}
	}
	if state.DailyStreak == nil {
		state.DailyStreak = map[string]bool{}
	}
	if state.Profile.DietaryPreferences == nil {
		state.Profile.DietaryPreferences = []string{}
	}
	if state.Profile.Allergies == nil {
		state.Profile.Allergies = []string{}
	}
	if state.Profile.Cravings == nil {
		state.Profile.Cravings = []string{}
	}
	return state, true
}

// recomputeStreakOnLoad settles the streak against the calendar. Continuing
// from yesterday keeps the count (only MarkDayComplete increments); a gap of
// two or more days resets it. completedMeals and waterGlasses deliberately
// carry over day boundaries, matching the shipped behavior.
func (s *Store) recomputeStreakOnLoad() {
	today := s.today()
	yesterday := s.now().AddDate(0, 0, -1).Format(dateLayout)
	last := s.state.Profile.LastActiveDate
	switch last {
	case today:
		// same-day reload
	case yesterday:
		s.state.Profile.LastActiveDate = today
	default:
		if last != "" {
			s.state.Profile.Streak = 0
		}
		s.state.Profile.LastActiveDate = today
	}
}

// State returns a copy; callers can never alias the store's slices or maps.
func (s *Store) State() model.AppState {
	out := s.state
	out.CompletedMeals = cloneStrings(s.state.CompletedMeals)
	out.MealOrder = cloneStrings(s.state.MealOrder)
	out.Achievements = cloneStrings(s.state.Achievements)
	out.DailyStreak = make(map[string]bool, len(s.state.DailyStreak))
	for k, v := range s.state.DailyStreak {
		out.DailyStreak[k] = v
	}
	out.Profile.DietaryPreferences = cloneStrings(s.state.Profile.DietaryPreferences)
	out.Profile.Allergies = cloneStrings(s.state.Profile.Allergies)
	out.Profile.Cravings = cloneStrings(s.state.Profile.Cravings)
	return out
}

// ProfileUpdate is a shallow partial: nil fields are left untouched.
type ProfileUpdate struct {
	Name                *string
	Age                 *int
	HeightCm            *float64
	WeightKg            *float64
	TargetWeightKg      *float64
	Goal                *string
	DietaryPreferences  []string
	ActivityLevel       *string
	Allergies           []string
	Cravings            []string
	Vibe                *string
	VibeIntensity       *int
	JoinedDate          *string
	CompletedOnboarding *bool
	ReducedMotion       *bool
}

func (s *Store) UpdateProfile(u ProfileUpdate) {
	p := &s.state.Profile
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
	}
	if u.WeightKg != nil {
		p.WeightKg = *u.WeightKg
	}
	if u.TargetWeightKg != nil {
		p.TargetWeightKg = *u.TargetWeightKg
	}
	if u.Goal != nil {
		p.Goal = *u.Goal
	}
	if u.DietaryPreferences != nil {
		p.DietaryPreferences = cloneStrings(u.DietaryPreferences)
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = *u.ActivityLevel
	}
	if u.Allergies != nil {
		p.Allergies = cloneStrings(u.Allergies)
	}
	if u.Cravings != nil {
		p.Cravings = cloneStrings(u.Cravings)
	}
	if u.Vibe != nil {
		p.Vibe = *u.Vibe
	}
	if u.VibeIntensity != nil {
		p.VibeIntensity = *u.VibeIntensity
	}
	if u.JoinedDate != nil {
		p.JoinedDate = *u.JoinedDate
	}
	if u.CompletedOnboarding != nil {
		p.CompletedOnboarding = *u.CompletedOnboarding
	}
	if u.ReducedMotion != nil {
		p.ReducedMotion = *u.ReducedMotion
	}
	s.save()
}

// ToggleResult reports what a meal toggle changed, including any
// achievements the mutation itself unlocked.
type ToggleResult struct {
	Completed    bool
	DayCompleted bool
	Unlocked     []string
}

// ToggleMeal flips a meal's completion. Completing increments the lifetime
// counter; un-completing never decrements it. When the toggle fills the
// whole daily plan it cascades into MarkDayComplete.
func (s *Store) ToggleMeal(mealID string) ToggleResult {
	var res ToggleResult
	if idx := indexOf(s.state.CompletedMeals, mealID); idx >= 0 {
		s.state.CompletedMeals = append(s.state.CompletedMeals[:idx], s.state.CompletedMeals[idx+1:]...)
	} else {
		s.state.CompletedMeals = append(s.state.CompletedMeals, mealID)
		s.state.Profile.TotalMealsCompleted++
		res.Completed = true
		res.Unlocked = append(res.Unlocked, s.mealUnlocks()...)
		if s.dailyMealCount > 0 && len(s.state.CompletedMeals) >= s.dailyMealCount {
			day := s.markDayComplete()
			res.DayCompleted = day.Completed
			res.Unlocked = append(res.Unlocked, day.Unlocked...)
		}
	}
	s.save()
	return res
}

// SetMealOrder replaces the display order verbatim; de-duplication is the
// caller's responsibility.
func (s *Store) SetMealOrder(ids []string) {
	s.state.MealOrder = cloneStrings(ids)
	s.save()
}

func (s *Store) AddWater() int {
	if s.state.WaterGlasses < model.MaxWaterGlasses {
		s.state.WaterGlasses++
	}
	s.save()
	return s.state.WaterGlasses
}

func (s *Store) RemoveWater() int {
	if s.state.WaterGlasses > 0 {
		s.state.WaterGlasses--
	}
	s.save()
	return s.state.WaterGlasses
}

// AddAchievement appends iff absent and reports whether it was added.
func (s *Store) AddAchievement(id string) bool {
	added := s.addAchievement(id)
	s.save()
	return added
}

func (s *Store) addAchievement(id string) bool {
	if indexOf(s.state.Achievements, id) >= 0 {
		return false
	}
	s.state.Achievements = append(s.state.Achievements, id)
	return true
}

// DayResult reports whether the call actually completed the day and which
// streak achievements it unlocked.
type DayResult struct {
	Completed bool
	Unlocked  []string
}

// MarkDayComplete records today in the daily ledger and advances the
// streak. At most one increment per calendar day; a second call is a no-op.
func (s *Store) MarkDayComplete() DayResult {
	res := s.markDayComplete()
	s.save()
	return res
}

func (s *Store) markDayComplete() DayResult {
	today := s.today()
	if s.state.DailyStreak[today] {
		return DayResult{}
	}
	s.state.DailyStreak[today] = true
	s.state.Profile.Streak++
	if s.state.Profile.Streak > s.state.Profile.LongestStreak {
		s.state.Profile.LongestStreak = s.state.Profile.Streak
	}
	res := DayResult{Completed: true}
	if s.addAchievement(AchievementAllMeals) {
		res.Unlocked = append(res.Unlocked, AchievementAllMeals)
	}
	res.Unlocked = append(res.Unlocked, s.streakUnlocks()...)
	return res
}

func (s *Store) SetHasSeenSplash(seen bool) {
	s.state.HasSeenSplash = seen
	s.save()
}

// ResetState restores the hardwired defaults and clears the durable slot.
// No confirmation lives here; that is the caller's concern.
func (s *Store) ResetState() {
	s.state = model.DefaultState()
	_ = s.slot.Delete(s.key)
}

func (s *Store) today() string {
	return s.now().Format(dateLayout)
}

// save is best-effort: a failing slot never interrupts the session, the
// in-memory state stays authoritative.
func (s *Store) save() {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return
	}
	_ = s.slot.Set(s.key, string(raw))
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func indexOf(list []string, value string) int {
	for i, v := range list {
		if v == value {
			return i
		}
	}
	return -1
}
