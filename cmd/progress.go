package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/screens/progress"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print the mastery table without starting the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		sched := srs.NewFSRS(srs.DefaultConfig())
		overall, err := progress.Compute(context.Background(), st, sched, time.Now())
		if err != nil {
			return fmt.Errorf("compute mastery: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Overall\t%s\n\n", strings.ToUpper(overall.Level.String()))
		for _, mm := range overall.Modules {
			title := mm.ModuleID
			if mod, err := catalog.GetModule(mm.ModuleID); err == nil {
				title = mod.Title
			}
			fmt.Fprintf(w, "%s\t%s\n", title, mm.Level)
			for _, lm := range mm.Lessons {
				lessonTitle := lm.LessonID
				if lesson, err := catalog.GetLesson(lm.LessonID); err == nil {
					lessonTitle = lesson.Title
				}
				quiz := "-"
				if lm.QuizAttempts > 0 {
					quiz = fmt.Sprintf("%.0f", lm.QuizScore)
				}
				fmt.Fprintf(w, "  %s\t%s\t%d/%d learned\tquiz %s\n",
					lessonTitle, lm.Level, lm.StateCounts[srs.StateReview], lm.TotalCards, quiz)
			}
			fmt.Fprintln(w)
		}
		return w.Flush()
	},
}
