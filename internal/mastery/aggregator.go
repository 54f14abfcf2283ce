package mastery

import (
	"time"

	"github.com/ruslanv/mnemo/internal/srs"
)

// Aggregator derives mastery levels from raw memory state and quiz
// outcomes. All calculations are pure views over their inputs; nothing is
// cached, so they are safe to recompute on every read.
//
// Retrievability is obtained through the scheduler interface rather than
// re-derived here, keeping one source of truth for the forgetting curve.
type Aggregator struct {
	sched srs.Scheduler
}

// NewAggregator creates an aggregator backed by the given scheduler.
func NewAggregator(sched srs.Scheduler) *Aggregator {
	return &Aggregator{sched: sched}
}

// CardMastery is the derived view of a single card's memory state.
type CardMastery struct {
	CardID         string
	Level          Level
	State          srs.State
	Retrievability float64
	Due            bool
}

// CalculateCardMastery derives a card's mastery from its memory state.
// A nil state means the card has never been seen: New, retrievability 0,
// not due.
func (a *Aggregator) CalculateCardMastery(cardID string, state *srs.CardState, now time.Time) CardMastery {
	if state == nil {
		return CardMastery{CardID: cardID, Level: LevelNew, State: srs.StateNew}
	}

	cm := CardMastery{
		CardID:         cardID,
		State:          state.State,
		Retrievability: a.sched.Retrievability(*state, now),
		Due:            state.IsDue(now),
	}

	switch {
	case state.State == srs.StateNew:
		cm.Level = LevelNew
	case state.State == srs.StateLearning || state.State == srs.StateRelearning:
		cm.Level = LevelLearning
	case state.Stability < familiarStabilityMax:
		cm.Level = LevelFamiliar
	case state.Stability < proficientStabilityMax:
		cm.Level = LevelProficient
	default:
		cm.Level = LevelMastered
	}
	return cm
}
