package store_test

import (
	"encoding/json"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/heyyadarsh/biteai-cli/internal/model"
	"github.com/heyyadarsh/biteai-cli/internal/storage"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

func clockAt(t *testing.T, date string) func() time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("parse clock date %q: %v", date, err)
	}
	return func() time.Time { return parsed }
}

func seedSlot(t *testing.T, slot *storage.MemorySlot, doc string) {
	t.Helper()
	if err := slot.Set(store.DefaultKey, doc); err != nil {
		t.Fatalf("seed slot: %v", err)
	}
}

func TestLoadWithoutStoredValueYieldsDefaults(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	want := model.DefaultState()
	want.Profile.LastActiveDate = "2026-08-30"
	if got := s.State(); !reflect.DeepEqual(got, want) {
		t.Fatalf("default state mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadWithCorruptDocumentFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{not json`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	want := model.DefaultState()
	want.Profile.LastActiveDate = "2026-08-30"
	if got := s.State(); !reflect.DeepEqual(got, want) {
		t.Fatalf("corrupt doc should degrade to defaults, got %+v", got)
	}
}

func TestLoadMergesPartialDocumentOverDefaults(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	// An older document: no reducedMotion, no achievements, no mealOrder.
	seedSlot(t, slot, `{"profile":{"name":"Alex","streak":2,"lastActiveDate":"2026-08-30"},"completedMeals":["1"],"waterGlasses":3}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	state := s.State()
	if state.Profile.Name != "Alex" {
		t.Fatalf("expected name preserved, got %q", state.Profile.Name)
	}
	if state.Profile.Streak != 2 {
		t.Fatalf("expected streak preserved, got %d", state.Profile.Streak)
	}
	if state.WaterGlasses != 3 {
		t.Fatalf("expected waterGlasses preserved, got %d", state.WaterGlasses)
	}
	if !reflect.DeepEqual(state.CompletedMeals, []string{"1"}) {
		t.Fatalf("expected completedMeals preserved, got %v", state.CompletedMeals)
	}
	if state.Profile.ReducedMotion {
		t.Fatalf("missing reducedMotion should default to false")
	}
	if state.Profile.ActivityLevel != "moderate" {
		t.Fatalf("missing activityLevel should default, got %q", state.Profile.ActivityLevel)
	}
	if len(state.Achievements) != 0 || state.Achievements == nil {
		t.Fatalf("missing achievements should default to empty set, got %v", state.Achievements)
	}
	if state.DailyStreak == nil {
		t.Fatalf("missing dailyStreak should default to empty map")
	}
}

func TestLoadContinuesStreakFromYesterday(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{"profile":{"streak":5,"longestStreak":5,"lastActiveDate":"2026-08-29"}}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	p := s.State().Profile
	if p.Streak != 5 {
		t.Fatalf("load must not change a continuing streak, got %d", p.Streak)
	}
	if p.LastActiveDate != "2026-08-30" {
		t.Fatalf("expected lastActiveDate rolled to today, got %q", p.LastActiveDate)
	}
}

func TestLoadResetsLapsedStreak(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{"profile":{"streak":5,"longestStreak":5,"lastActiveDate":"2026-08-27"}}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	p := s.State().Profile
	if p.Streak != 0 {
		t.Fatalf("expected lapsed streak reset to 0, got %d", p.Streak)
	}
	if p.LongestStreak != 5 {
		t.Fatalf("longest streak must survive a lapse, got %d", p.LongestStreak)
	}
	if p.LastActiveDate != "2026-08-30" {
		t.Fatalf("expected lastActiveDate rolled to today, got %q", p.LastActiveDate)
	}
}

func TestLoadFirstSessionDoesNotResetStreak(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	// Empty lastActiveDate marks a first-ever session; nothing to lapse.
	seedSlot(t, slot, `{"profile":{"streak":5,"lastActiveDate":""}}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	if p := s.State().Profile; p.Streak != 5 || p.LastActiveDate != "2026-08-30" {
		t.Fatalf("first session should keep streak and set today, got %+v", p)
	}
}

func TestLoadSameDayReloadIsNoOp(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{"profile":{"streak":4,"longestStreak":6,"lastActiveDate":"2026-08-30"}}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	if p := s.State().Profile; p.Streak != 4 || p.LastActiveDate != "2026-08-30" {
		t.Fatalf("same-day reload must not touch the streak, got %+v", p)
	}
}

func TestLoadKeepsMealsAcrossDayBoundary(t *testing.T) {
	t.Parallel()
	// Pins the shipped behavior: a new calendar day resets only the streak;
	// completedMeals and waterGlasses carry over untouched.
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{"profile":{"streak":3,"longestStreak":3,"lastActiveDate":"2026-08-25"},"completedMeals":["1","2"],"waterGlasses":5}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	state := s.State()
	if !reflect.DeepEqual(state.CompletedMeals, []string{"1", "2"}) {
		t.Fatalf("completedMeals must carry over the day boundary, got %v", state.CompletedMeals)
	}
	if state.WaterGlasses != 5 {
		t.Fatalf("waterGlasses must carry over the day boundary, got %d", state.WaterGlasses)
	}
	if state.Profile.Streak != 0 {
		t.Fatalf("expected lapsed streak reset, got %d", state.Profile.Streak)
	}
}

func TestLoadPersistsRecomputedState(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{"profile":{"streak":5,"lastActiveDate":"2026-08-29"}}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	raw, ok, err := slot.Get(store.DefaultKey)
	if err != nil || !ok {
		t.Fatalf("expected persisted state after load: ok=%v err=%v", ok, err)
	}
	var doc model.AppState
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("persisted blob is not valid JSON: %v", err)
	}
	if doc.Profile.LastActiveDate != "2026-08-30" {
		t.Fatalf("persisted blob should carry the recomputed date, got %q", doc.Profile.LastActiveDate)
	}
}

func TestMarkDayCompleteIsIdempotentPerDay(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	first := s.MarkDayComplete()
	second := s.MarkDayComplete()

	if !first.Completed {
		t.Fatalf("first call should complete the day")
	}
	if second.Completed {
		t.Fatalf("second call same day must be a no-op")
	}
	state := s.State()
	if state.Profile.Streak != 1 {
		t.Fatalf("expected exactly one increment, got streak %d", state.Profile.Streak)
	}
	if !state.DailyStreak["2026-08-30"] {
		t.Fatalf("expected dailyStreak[today] set")
	}
}

func TestLongestStreakIsAWatermark(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	current, err := time.ParseInLocation("2006-01-02", "2026-08-01", time.Local)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	s := store.New(slot, store.WithClock(func() time.Time { return current }))
	s.Load()

	for day := 0; day < 5; day++ {
		s.MarkDayComplete()
		state := s.State()
		if state.Profile.LongestStreak < state.Profile.Streak {
			t.Fatalf("longestStreak %d fell below streak %d", state.Profile.LongestStreak, state.Profile.Streak)
		}
		current = current.AddDate(0, 0, 1)
	}
	if p := s.State().Profile; p.Streak != 5 || p.LongestStreak != 5 {
		t.Fatalf("expected 5/5 after five consecutive days, got %d/%d", p.Streak, p.LongestStreak)
	}
}

func TestToggleMealNeverDecrementsLifetimeCounter(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	s.ToggleMeal("2")
	afterOn := s.State().Profile.TotalMealsCompleted
	if afterOn != 1 {
		t.Fatalf("expected counter 1 after completing, got %d", afterOn)
	}

	s.ToggleMeal("2")
	state := s.State()
	if len(state.CompletedMeals) != 0 {
		t.Fatalf("expected meal removed on second toggle, got %v", state.CompletedMeals)
	}
	if state.Profile.TotalMealsCompleted != afterOn {
		t.Fatalf("counter must not decrement: got %d, want %d", state.Profile.TotalMealsCompleted, afterOn)
	}
}

func TestWaterClamps(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	if got := s.RemoveWater(); got != 0 {
		t.Fatalf("remove at 0 should stay at 0, got %d", got)
	}
	for i := 0; i < model.MaxWaterGlasses+3; i++ {
		s.AddWater()
	}
	if got := s.State().WaterGlasses; got != model.MaxWaterGlasses {
		t.Fatalf("add past cap should clamp at %d, got %d", model.MaxWaterGlasses, got)
	}
	if got := s.AddWater(); got != model.MaxWaterGlasses {
		t.Fatalf("add at cap should stay at %d, got %d", model.MaxWaterGlasses, got)
	}
}

func TestAddAchievementIsIdempotent(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	if !s.AddAchievement(store.AchievementFirstMeal) {
		t.Fatalf("first add should report true")
	}
	if s.AddAchievement(store.AchievementFirstMeal) {
		t.Fatalf("second add should report false")
	}
	count := 0
	for _, id := range s.State().Achievements {
		if id == store.AchievementFirstMeal {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one membership, got %d", count)
	}
}

func TestResetStateRestoresDefaultsAndClearsSlot(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	name := "Alex"
	s.UpdateProfile(store.ProfileUpdate{Name: &name})
	s.ToggleMeal("1")
	s.AddWater()

	s.ResetState()

	if got, want := s.State(), model.DefaultState(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reset state mismatch:\ngot  %+v\nwant %+v", got, want)
	}
	if _, ok, err := slot.Get(store.DefaultKey); err != nil || ok {
		t.Fatalf("expected slot cleared after reset: ok=%v err=%v", ok, err)
	}
}

func TestSaveFailuresAreSilentAndMemoryStaysAuthoritative(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	slot.FailWrites = true
	s.AddWater()
	s.ToggleMeal("1")

	state := s.State()
	if state.WaterGlasses != 1 {
		t.Fatalf("in-memory water should apply despite write failure, got %d", state.WaterGlasses)
	}
	if !reflect.DeepEqual(state.CompletedMeals, []string{"1"}) {
		t.Fatalf("in-memory toggle should apply despite write failure, got %v", state.CompletedMeals)
	}
}

func TestToggleMealEmitsUnlocksOnce(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	first := s.ToggleMeal("1")
	if !containsID(first.Unlocked, store.AchievementFirstMeal) {
		t.Fatalf("expected firstMeal unlock on first completion, got %v", first.Unlocked)
	}

	s.ToggleMeal("1")
	again := s.ToggleMeal("1")
	if containsID(again.Unlocked, store.AchievementFirstMeal) {
		t.Fatalf("firstMeal must not unlock twice, got %v", again.Unlocked)
	}
}

func TestCompletionCountThresholds(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	seedSlot(t, slot, `{"profile":{"totalMealsCompleted":49,"lastActiveDate":"2026-08-30"}}`)
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")), store.WithDailyMealCount(0))
	s.Load()

	res := s.ToggleMeal("1")
	if !containsID(res.Unlocked, store.AchievementMeals50) {
		t.Fatalf("expected meals50 unlock at 50 completions, got %v", res.Unlocked)
	}
	if containsID(res.Unlocked, store.AchievementMeals100) {
		t.Fatalf("meals100 must not unlock at 50, got %v", res.Unlocked)
	}
}

func TestStreakThresholdUnlocks(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	current, err := time.ParseInLocation("2006-01-02", "2026-08-01", time.Local)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	s := store.New(slot, store.WithClock(func() time.Time { return current }))
	s.Load()

	var unlockedOn3, unlockedOn7 bool
	for day := 1; day <= 7; day++ {
		res := s.MarkDayComplete()
		if containsID(res.Unlocked, store.AchievementStreak3) {
			if day != 3 {
				t.Fatalf("streak3 unlocked on day %d", day)
			}
			unlockedOn3 = true
		}
		if containsID(res.Unlocked, store.AchievementStreak7) {
			if day != 7 {
				t.Fatalf("streak7 unlocked on day %d", day)
			}
			unlockedOn7 = true
		}
		current = current.AddDate(0, 0, 1)
	}
	if !unlockedOn3 || !unlockedOn7 {
		t.Fatalf("expected streak3 and streak7 to unlock (got %v, %v)", unlockedOn3, unlockedOn7)
	}
}

func TestFreshInstallDayInLife(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")), store.WithDailyMealCount(4))
	s.Load()

	name := "Alex"
	goal := model.GoalWeightLoss
	done := true
	s.UpdateProfile(store.ProfileUpdate{Name: &name, Goal: &goal, CompletedOnboarding: &done})

	var last store.ToggleResult
	for i := 1; i <= 4; i++ {
		last = s.ToggleMeal(strconv.Itoa(i))
	}

	state := s.State()
	if len(state.CompletedMeals) != 4 {
		t.Fatalf("expected all 4 meals completed, got %v", state.CompletedMeals)
	}
	if state.Profile.TotalMealsCompleted != 4 {
		t.Fatalf("expected lifetime counter 4, got %d", state.Profile.TotalMealsCompleted)
	}
	if !last.DayCompleted {
		t.Fatalf("fourth completion should complete the day")
	}
	if state.Profile.Streak != 1 || state.Profile.LongestStreak != 1 {
		t.Fatalf("expected streak 1/1, got %d/%d", state.Profile.Streak, state.Profile.LongestStreak)
	}
	if !state.DailyStreak["2026-08-30"] {
		t.Fatalf("expected dailyStreak[today] true")
	}
	if !containsID(state.Achievements, store.AchievementFirstMeal) || !containsID(state.Achievements, store.AchievementAllMeals) {
		t.Fatalf("expected firstMeal and allMeals earned, got %v", state.Achievements)
	}

	// Same-day double completion must not double-increment even via a
	// direct call after the cascade.
	if res := s.MarkDayComplete(); res.Completed {
		t.Fatalf("day already complete, second completion must be a no-op")
	}
	if got := s.State().Profile.Streak; got != 1 {
		t.Fatalf("streak must stay 1 after duplicate completion, got %d", got)
	}
}

func TestStateReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	s.ToggleMeal("1")
	state := s.State()
	state.CompletedMeals[0] = "tampered"
	state.DailyStreak["2000-01-01"] = true

	fresh := s.State()
	if fresh.CompletedMeals[0] != "1" {
		t.Fatalf("caller mutation leaked into store: %v", fresh.CompletedMeals)
	}
	if fresh.DailyStreak["2000-01-01"] {
		t.Fatalf("caller map mutation leaked into store")
	}
}

func TestUpdateProfileLeavesUnspecifiedFieldsUntouched(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	name := "Alex"
	age := 31
	s.UpdateProfile(store.ProfileUpdate{Name: &name, Age: &age})

	vibe := model.VibeFocused
	s.UpdateProfile(store.ProfileUpdate{Vibe: &vibe})

	p := s.State().Profile
	if p.Name != "Alex" || p.Age != 31 {
		t.Fatalf("partial update clobbered earlier fields: %+v", p)
	}
	if p.Vibe != model.VibeFocused {
		t.Fatalf("expected vibe updated, got %q", p.Vibe)
	}
	if p.ActivityLevel != "moderate" {
		t.Fatalf("expected default activity level untouched, got %q", p.ActivityLevel)
	}
}

func TestSetMealOrderReplacesVerbatim(t *testing.T) {
	t.Parallel()
	slot := storage.NewMemorySlot()
	s := store.New(slot, store.WithClock(clockAt(t, "2026-08-30")))
	s.Load()

	// No de-duplication by contract; the caller owns the sequence.
	s.SetMealOrder([]string{"4", "2", "2", "1"})
	if got := s.State().MealOrder; !reflect.DeepEqual(got, []string{"4", "2", "2", "1"}) {
		t.Fatalf("expected verbatim order, got %v", got)
	}
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
