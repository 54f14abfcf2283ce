package srs

import "time"

// State represents a card's position in the FSRS memory lifecycle.
type State int

const (
	StateNew        State = iota // Never reviewed
	StateLearning                // In initial learning steps
	StateReview                  // Graduated, on long intervals
	StateRelearning              // Lapsed out of Review
)

// String returns the lowercase name used in persistence and display.
func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateLearning:
		return "learning"
	case StateReview:
		return "review"
	case StateRelearning:
		return "relearning"
	default:
		return "unknown"
	}
}

// StateFromString parses a persisted state name. Unknown values map to StateNew.
func StateFromString(s string) State {
	switch s {
	case "learning":
		return StateLearning
	case "review":
		return StateReview
	case "relearning":
		return StateRelearning
	default:
		return StateNew
	}
}

// Grade is the learner's self-rating for one review.
type Grade int

const (
	GradeAgain Grade = iota + 1 // Failed to recall
	GradeHard                   // Recalled with serious difficulty
	GradeGood                   // Recalled correctly
	GradeEasy                   // Recalled instantly
)

// String returns the lowercase grade name.
func (g Grade) String() string {
	switch g {
	case GradeAgain:
		return "again"
	case GradeHard:
		return "hard"
	case GradeGood:
		return "good"
	case GradeEasy:
		return "easy"
	default:
		return "unknown"
	}
}

// GradeFromString parses a persisted grade name. Unknown values map to GradeAgain.
func GradeFromString(s string) Grade {
	switch s {
	case "hard":
		return GradeHard
	case "good":
		return GradeGood
	case "easy":
		return GradeEasy
	default:
		return GradeAgain
	}
}

// Passing reports whether the grade counts as a successful recall.
func (g Grade) Passing() bool {
	return g == GradeGood || g == GradeEasy
}

// CardState is the per-card memory record owned by the learner's profile.
// It is mutated only through Scheduler.Review, never assigned directly.
type CardState struct {
	CardID        string
	Due           time.Time
	Stability     float64
	Difficulty    float64
	ElapsedDays   int
	ScheduledDays int
	Reps          int
	Lapses        int
	State         State
	LastReview    time.Time // zero if never reviewed
}

// Reviewed reports whether the card has ever been graded.
func (c CardState) Reviewed() bool {
	return !c.LastReview.IsZero()
}

// IsDue reports whether the card is eligible for review (due at or before now).
func (c CardState) IsDue(now time.Time) bool {
	return !now.Before(c.Due)
}

// ReviewLog records the scheduling outcome of one graded review.
type ReviewLog struct {
	CardID        string
	Grade         Grade
	ScheduledDays int
	ElapsedDays   int
	ReviewedAt    time.Time
	State         State // state before the review
}
