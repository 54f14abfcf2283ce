package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruslanv/mnemo/internal/quiz"
	"github.com/ruslanv/mnemo/internal/srs"
)

var storeEpoch = time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"card_states", "review_logs", "quiz_results"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestCardStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cards()
	ctx := context.Background()

	state := srs.CardState{
		CardID:        "eu-cap-fr",
		Due:           storeEpoch.Add(72 * time.Hour),
		Stability:     12.5,
		Difficulty:    4.2,
		ElapsedDays:   3,
		ScheduledDays: 3,
		Reps:          4,
		Lapses:        1,
		State:         srs.StateReview,
		LastReview:    storeEpoch,
	}
	if err := repo.Save(ctx, state, storeEpoch); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "eu-cap-fr")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved state")
	}
	if !got.Due.Equal(state.Due) || got.Stability != state.Stability ||
		got.Reps != state.Reps || got.State != state.State ||
		!got.LastReview.Equal(state.LastReview) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", *got, state)
	}
}

func TestCardStateUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cards()
	ctx := context.Background()

	state := srs.CardState{CardID: "c1", Due: storeEpoch, State: srs.StateNew}
	if err := repo.Save(ctx, state, storeEpoch); err != nil {
		t.Fatal(err)
	}

	state.State = srs.StateLearning
	state.Reps = 1
	state.LastReview = storeEpoch
	if err := repo.Save(ctx, state, storeEpoch.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}

	all, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("states = %d, want 1 (upsert, not insert)", len(all))
	}
	if got := all["c1"]; got.State != srs.StateLearning || got.Reps != 1 {
		t.Errorf("updated state = %+v", got)
	}
}

func TestCardStateGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Cards().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for unsaved card", *got)
	}
}

func TestReviewLogAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	logs := []srs.ReviewLog{
		{CardID: "c1", Grade: srs.GradeAgain, State: srs.StateNew, ReviewedAt: storeEpoch},
		{CardID: "c1", Grade: srs.GradeGood, State: srs.StateLearning, ScheduledDays: 1, ReviewedAt: storeEpoch.Add(time.Minute)},
		{CardID: "c2", Grade: srs.GradeEasy, State: srs.StateNew, ReviewedAt: storeEpoch},
	}
	for _, l := range logs {
		if err := repo.Append(ctx, l, 1500); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	history, err := repo.History(ctx, "c1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d entries, want 2", len(history))
	}
	if history[0].Grade != srs.GradeAgain || history[1].Grade != srs.GradeGood {
		t.Errorf("history out of order: %+v", history)
	}
	if history[1].ScheduledDays != 1 {
		t.Errorf("scheduled days = %d, want 1", history[1].ScheduledDays)
	}

	n, err := repo.CountSince(ctx, storeEpoch)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}

func TestRetentionSince(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	// Only reviews of graduated cards count toward retention.
	entries := []struct {
		grade srs.Grade
		state srs.State
	}{
		{srs.GradeGood, srs.StateReview},
		{srs.GradeEasy, srs.StateReview},
		{srs.GradeAgain, srs.StateReview},
		{srs.GradeHard, srs.StateReview},
		{srs.GradeGood, srs.StateLearning}, // excluded
	}
	for i, e := range entries {
		log := srs.ReviewLog{
			CardID: "c1", Grade: e.grade, State: e.state,
			ReviewedAt: storeEpoch.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Append(ctx, log, 0); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.RetentionSince(ctx, storeEpoch)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.5 {
		t.Errorf("retention = %v, want 0.5 (2 passing of 4 graduated)", got)
	}

	empty, err := repo.RetentionSince(ctx, storeEpoch.Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if empty != 0 {
		t.Errorf("retention with no reviews = %v, want 0", empty)
	}
}

func TestQuizProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.Quizzes()
	ctx := context.Background()

	summaries := []quiz.Summary{
		{QuizID: "a", TotalQuestions: 5, RoundsPlayed: 2, FirstAttemptScore: 60, FinalScore: 80, Band: quiz.BandDeveloping},
		{QuizID: "b", TotalQuestions: 5, RoundsPlayed: 1, FirstAttemptScore: 80, FinalScore: 90, Band: quiz.BandProficient, Passed: true},
	}
	for i, sum := range summaries {
		if err := repo.Save(ctx, "eu-capitals", sum, storeEpoch.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	p, err := repo.Progress(ctx, "eu-capitals")
	if err != nil {
		t.Fatal(err)
	}
	if p.BestQuizScore != 80 {
		t.Errorf("best score = %v, want 80", p.BestQuizScore)
	}
	if p.QuizAttempts != 2 {
		t.Errorf("attempts = %d, want 2", p.QuizAttempts)
	}

	// Unattempted lesson reports zero progress, not an error.
	none, err := repo.Progress(ctx, "eu-rivers")
	if err != nil {
		t.Fatal(err)
	}
	if none.BestQuizScore != 0 || none.QuizAttempts != 0 {
		t.Errorf("unattempted progress = %+v, want zeroes", none)
	}

	all, err := repo.AllProgress(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Errorf("lessons with progress = %d, want 1", len(all))
	}
	if all["eu-capitals"].QuizAttempts != 2 {
		t.Errorf("AllProgress = %+v", all)
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if err := Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Removing an already-missing database is fine.
	if err := Remove(path); err != nil {
		t.Errorf("second remove: %v", err)
	}
}
