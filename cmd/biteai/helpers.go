package biteai

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heyyadarsh/biteai-cli/internal/app"
	"github.com/heyyadarsh/biteai-cli/internal/catalog"
	"github.com/heyyadarsh/biteai-cli/internal/storage"
	"github.com/heyyadarsh/biteai-cli/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if env := strings.TrimSpace(os.Getenv("BITEAI_DB")); env != "" {
		return env, nil
	}
	return app.DefaultDBPath()
}

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	slot, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer slot.Close()

	s := store.New(slot, store.WithDailyMealCount(catalog.MealCount()))
	s.Load()
	return run(s)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printUnlocks(cmd *cobra.Command, ids []string) {
	for _, id := range ids {
		if a, ok := store.AchievementByID(id); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Achievement unlocked: %s %s — %s\n", a.Icon, a.Title, a.Description)
		}
	}
}

func mark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
