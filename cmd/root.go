package cmd

import (
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mnemo",
	Short: "Spaced-repetition geography tutor",
	Long:  "Mnemo is a terminal flashcard tutor built on the FSRS memory model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "home")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MNEMO_DB env var)")
	rootCmd.PersistentFlags().String("courses", "", "Directory with extra course JSON files (overrides MNEMO_COURSES env var)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MNEMO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
