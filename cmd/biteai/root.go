package biteai

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "biteai",
	Short: "biteai tracks your daily meal plan from your terminal",
	Long:  "biteai is a local-first nutrition plan tracker with onboarding, daily meal and water tracking, streaks, and achievements.",
}

func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to state database")
}
