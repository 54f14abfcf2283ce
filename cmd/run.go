package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ruslanv/mnemo/internal/app"
	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/session"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads extra courses, and launches the TUI on the
// given start screen.
func runApp(cmd *cobra.Command, startScreen string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if err := loadExtraCourses(cmd, dbPath); err != nil {
		return err
	}

	opts := app.Options{
		Store:       st,
		Scheduler:   srs.NewFSRS(srs.DefaultConfig()),
		Config:      session.DefaultConfig(),
		StartScreen: startScreen,
	}
	return app.Run(opts)
}

// loadExtraCourses registers course JSON files from the courses directory,
// resolved as --courses flag, then MNEMO_COURSES, then a courses/ directory
// beside the database. A missing directory is fine.
func loadExtraCourses(cmd *cobra.Command, dbPath string) error {
	dir, _ := cmd.Flags().GetString("courses")
	if dir == "" {
		dir = os.Getenv("MNEMO_COURSES")
	}
	if dir == "" {
		dir = filepath.Join(filepath.Dir(dbPath), "courses")
	}
	if err := catalog.LoadDir(dir); err != nil {
		return fmt.Errorf("load courses: %w", err)
	}
	return nil
}
