package biteai

import (
	"path/filepath"
	"strings"
	"testing"
)

// Walks a fresh install through onboarding, a full tracked day, and a reset,
// all through the CLI against one state database.
func TestDayInLifeFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "biteai.db")

	out := runCommand(t, db, "onboard",
		"--name", "Alex",
		"--age", "31",
		"--height", "180",
		"--weight", "82.5",
		"--target-weight", "76",
		"--goal", "weight-loss",
		"--diet", "gluten-free",
		"--activity", "active",
		"--vibe", "energetic",
	)
	if !strings.Contains(out, "Alex") {
		t.Fatalf("onboard output: %s", out)
	}

	out = runCommand(t, db, "profile")
	if !strings.Contains(out, "Name: Alex") || !strings.Contains(out, "Goal: weight-loss") {
		t.Fatalf("profile output: %s", out)
	}

	out = runCommand(t, db, "meal", "done", "1")
	if !strings.Contains(out, "Completed Power Breakfast Bowl") {
		t.Fatalf("meal done output: %s", out)
	}
	if !strings.Contains(out, "First Bite") {
		t.Fatalf("expected firstMeal unlock in output: %s", out)
	}

	out = runCommand(t, db, "meal", "done", "1")
	if !strings.Contains(out, "already marked done") {
		t.Fatalf("duplicate done output: %s", out)
	}

	for _, id := range []string{"2", "3", "4"} {
		out = runCommand(t, db, "meal", "done", id)
	}
	if !strings.Contains(out, "That's every meal today! Streak: 1") {
		t.Fatalf("expected day completion on fourth meal: %s", out)
	}

	out = runCommand(t, db, "water", "add")
	if !strings.Contains(out, "Water: 1/8") {
		t.Fatalf("water output: %s", out)
	}

	out = runCommand(t, db, "today")
	if !strings.Contains(out, "Streak: 1 day(s)") {
		t.Fatalf("today output: %s", out)
	}
	if !strings.Contains(out, "Consumed: 1900/2200 kcal") {
		t.Fatalf("expected full-plan macro totals: %s", out)
	}

	out = runCommand(t, db, "achievements")
	if !strings.Contains(out, "Clean Plate Club [earned]") {
		t.Fatalf("achievements output: %s", out)
	}

	if err := runCommandExpectError(t, db, "reset"); !strings.Contains(err.Error(), "--force") {
		t.Fatalf("reset without force: %v", err)
	}
	out = runCommand(t, db, "reset", "--force")
	if !strings.Contains(out, "State reset") {
		t.Fatalf("reset output: %s", out)
	}

	out = runCommand(t, db, "profile")
	if !strings.Contains(out, "Name: (not set)") {
		t.Fatalf("profile after reset: %s", out)
	}
}

func TestMealOrderAndSwap(t *testing.T) {
	db := filepath.Join(t.TempDir(), "biteai.db")

	out := runCommand(t, db, "meal", "order", "4", "2", "1", "3")
	if !strings.Contains(out, "Meal order updated") {
		t.Fatalf("order output: %s", out)
	}

	out = runCommand(t, db, "meal", "list")
	dinner := strings.Index(out, "Lean Dinner")
	breakfast := strings.Index(out, "Power Breakfast Bowl")
	if dinner < 0 || breakfast < 0 || dinner > breakfast {
		t.Fatalf("custom order not reflected in list: %s", out)
	}

	out = runCommand(t, db, "meal", "swap", "2")
	if !strings.Contains(out, "Swap Mediterranean Lunch -> ") {
		t.Fatalf("swap output: %s", out)
	}

	if err := runCommandExpectError(t, db, "meal", "swap", "ghost"); !strings.Contains(err.Error(), "unknown meal id") {
		t.Fatalf("swap unknown meal: %v", err)
	}
}

func TestOnboardRejectsBadInput(t *testing.T) {
	db := filepath.Join(t.TempDir(), "biteai.db")

	// Flag values persist across Execute calls in one process, so each case
	// re-supplies valid values for flags checked before the one under test.
	if err := runCommandExpectError(t, db, "onboard", "--age", "30", "--goal", "get-swole"); !strings.Contains(err.Error(), "invalid --goal") {
		t.Fatalf("bad goal: %v", err)
	}
	if err := runCommandExpectError(t, db, "onboard", "--goal", "maintain", "--age", "-4"); !strings.Contains(err.Error(), "invalid --age") {
		t.Fatalf("bad age: %v", err)
	}
	if err := runCommandExpectError(t, db, "onboard", "--age", "30", "--goal", "maintain", "--vibe", "sleepy"); !strings.Contains(err.Error(), "invalid --vibe") {
		t.Fatalf("bad vibe: %v", err)
	}
}
