package session

import (
	"time"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/srs"
)

// BuildPools splits catalog cards into the due and new pools for a session.
// Cards with a stored memory state join the due pool only when due; cards
// without one get a fresh StateNew record and join the new pool. Cards that
// exist but aren't due yet are excluded from the sitting entirely.
func BuildPools(cards []catalog.Card, states map[string]srs.CardState, sched srs.Scheduler, now time.Time) (due, fresh []SessionCard) {
	for _, c := range cards {
		state, ok := states[c.ID]
		if !ok {
			fresh = append(fresh, SessionCard{
				Card:   c,
				Memory: sched.NewCard(c.ID, now),
				IsNew:  true,
			})
			continue
		}
		if state.IsDue(now) {
			due = append(due, SessionCard{Card: c, Memory: state})
		}
	}
	return due, fresh
}
