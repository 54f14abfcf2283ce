package session

import (
	"time"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/srs"
)

// SessionCard pairs static card content with a snapshot of its memory state
// for the duration of one sitting. IsNew is true iff the card had no prior
// memory record when the session was built.
type SessionCard struct {
	Card   catalog.Card
	Memory srs.CardState
	IsNew  bool
}

// priorityGroup orders due cards for the queue: cards being relearned come
// first, then learning-step cards, then settled review cards. New cards
// sort last so the ordering stays total even if one slips into the due pool.
func priorityGroup(s srs.State) int {
	switch s {
	case srs.StateRelearning:
		return 0
	case srs.StateLearning:
		return 1
	case srs.StateReview:
		return 2
	default:
		return 3
	}
}

// RatingResult is the immutable record of one graded interaction.
type RatingResult struct {
	CardID     string
	Grade      srs.Grade
	Memory     srs.CardState // updated state after the review
	Log        srs.ReviewLog
	ResponseMs int
	RatedAt    time.Time
}
