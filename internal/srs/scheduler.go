package srs

import (
	"fmt"
	"time"

	"github.com/open-spaced-repetition/go-fsrs"
)

// Scheduler is the memory-decay engine boundary. Implementations are pure
// functions of their arguments plus parameters fixed at construction; they
// perform no I/O.
type Scheduler interface {
	// NewCard returns a fresh memory record in StateNew, due immediately.
	NewCard(cardID string, now time.Time) CardState

	// Review grades a card and returns the updated record plus a log entry.
	// Deterministic given identical inputs. Returns an error only when the
	// underlying engine violates its scheduling contract.
	Review(card CardState, grade Grade, now time.Time) (CardState, ReviewLog, error)

	// Retrievability estimates the probability of recall at now, in [0,1].
	// Always 0 for cards in StateNew.
	Retrievability(card CardState, now time.Time) float64
}

// Config holds the FSRS parameters fixed at scheduler construction.
type Config struct {
	RequestRetention float64 // target recall probability at review time
	MaximumInterval  int     // longest allowed interval, in days
}

// DefaultConfig returns the standard FSRS configuration.
func DefaultConfig() Config {
	return Config{
		RequestRetention: 0.9,
		MaximumInterval:  36500,
	}
}

// FSRS is a Scheduler backed by the go-fsrs reference implementation.
type FSRS struct {
	params fsrs.Parameters
}

var _ Scheduler = (*FSRS)(nil)

// NewFSRS creates a scheduler with the given configuration.
func NewFSRS(cfg Config) *FSRS {
	params := fsrs.DefaultParam()
	if cfg.RequestRetention > 0 && cfg.RequestRetention < 1 {
		params.RequestRetention = cfg.RequestRetention
	}
	if cfg.MaximumInterval > 0 {
		params.MaximumInterval = float64(cfg.MaximumInterval)
	}
	return &FSRS{params: params}
}

// NewCard returns a fresh memory record for cardID, due immediately.
func (f *FSRS) NewCard(cardID string, now time.Time) CardState {
	card := fsrs.NewCard()
	cs := fromEngine(card)
	cs.CardID = cardID
	cs.Due = now
	return cs
}

// Review applies a grade to the card's memory state at the given instant.
func (f *FSRS) Review(card CardState, grade Grade, now time.Time) (CardState, ReviewLog, error) {
	schedule := f.params.Repeat(toEngine(card), now)
	info := schedule[toEngineRating(grade)]

	updated := fromEngine(info.Card)
	updated.CardID = card.CardID

	log := ReviewLog{
		CardID:        card.CardID,
		Grade:         grade,
		ScheduledDays: int(info.ReviewLog.ScheduledDays),
		ElapsedDays:   int(info.ReviewLog.ElapsedDays),
		ReviewedAt:    now,
		State:         card.State,
	}

	// Contract checks on the engine's output. A due date in the past or a
	// rep counter that didn't advance means the engine is broken; surface
	// it rather than silently correcting (the caller decides what to log).
	if updated.Due.Before(now) {
		return card, log, fmt.Errorf("srs: engine returned due %s before review time %s for card %s",
			updated.Due.Format(time.RFC3339), now.Format(time.RFC3339), card.CardID)
	}
	if updated.Reps != card.Reps+1 {
		return card, log, fmt.Errorf("srs: engine advanced reps %d -> %d for card %s, want +1",
			card.Reps, updated.Reps, card.CardID)
	}

	return updated, log, nil
}

// Retrievability estimates current recall probability using the published
// FSRS power-law forgetting curve. StateNew cards are always 0.
func (f *FSRS) Retrievability(card CardState, now time.Time) float64 {
	if card.State == StateNew || !card.Reviewed() || card.Stability <= 0 {
		return 0
	}
	elapsed := now.Sub(card.LastReview).Hours() / 24.0
	if elapsed < 0 {
		elapsed = 0
	}
	return forgettingCurve(card.Stability, elapsed)
}

func toEngine(c CardState) fsrs.Card {
	card := fsrs.Card{
		Due:           c.Due,
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   uint64(max(c.ElapsedDays, 0)),
		ScheduledDays: uint64(max(c.ScheduledDays, 0)),
		Reps:          uint64(max(c.Reps, 0)),
		Lapses:        uint64(max(c.Lapses, 0)),
		State:         fsrs.State(c.State),
	}
	if c.Reviewed() {
		card.LastReview = c.LastReview
	}
	return card
}

func fromEngine(c fsrs.Card) CardState {
	return CardState{
		Due:           c.Due,
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   int(c.ElapsedDays),
		ScheduledDays: int(c.ScheduledDays),
		Reps:          int(c.Reps),
		Lapses:        int(c.Lapses),
		State:         State(c.State),
		LastReview:    c.LastReview,
	}
}

func toEngineRating(g Grade) fsrs.Rating {
	switch g {
	case GradeAgain:
		return fsrs.Again
	case GradeHard:
		return fsrs.Hard
	case GradeEasy:
		return fsrs.Easy
	default:
		return fsrs.Good
	}
}
