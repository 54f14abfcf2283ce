package session

import (
	"time"

	"github.com/ruslanv/mnemo/internal/srs"
)

// Engine runs one review sitting: it owns the card queue, the cursor, and
// the accumulated rating results. Designed for exactly one consumer; it has
// no internal locking.
type Engine struct {
	sched   srs.Scheduler
	queue   []SessionCard
	byID    map[string]*SessionCard
	cursor  int
	results []RatingResult

	// Response timer for the card at the cursor. Started on first Current()
	// access per card, cleared when the card is rated.
	timerCard  string
	timerStart time.Time
}

// NewEngine builds the session queue from the due and new pools and returns
// an engine positioned at the first card.
func NewEngine(sched srs.Scheduler, due, fresh []SessionCard, cfg Config) *Engine {
	queue := buildQueue(due, fresh, cfg)
	e := &Engine{
		sched: sched,
		queue: queue,
		byID:  make(map[string]*SessionCard, len(queue)),
	}
	for i := range e.queue {
		e.byID[e.queue[i].Card.ID] = &e.queue[i]
	}
	return e
}

// Current returns the card at the cursor, or nil if the queue is exhausted.
// The response timer for the card starts on its first access.
func (e *Engine) Current() *SessionCard {
	if e.cursor >= len(e.queue) {
		return nil
	}
	card := &e.queue[e.cursor]
	if e.timerCard != card.Card.ID {
		e.timerCard = card.Card.ID
		e.timerStart = time.Now()
	}
	return card
}

// RateCurrent grades the card at the cursor, records the result, and
// advances the cursor. Returns (nil, nil) if the queue is exhausted; rating
// past the end is a no-op, not an error. A non-nil error means the
// scheduler violated its contract and the rating was not recorded.
func (e *Engine) RateCurrent(grade srs.Grade, now time.Time) (*RatingResult, error) {
	if e.cursor >= len(e.queue) {
		return nil, nil
	}
	card := &e.queue[e.cursor]

	updated, log, err := e.sched.Review(card.Memory, grade, now)
	if err != nil {
		return nil, err
	}

	responseMs := 0
	if e.timerCard == card.Card.ID && !e.timerStart.IsZero() {
		responseMs = int(time.Since(e.timerStart).Milliseconds())
	}

	result := RatingResult{
		CardID:     card.Card.ID,
		Grade:      grade,
		Memory:     updated,
		Log:        log,
		ResponseMs: responseMs,
		RatedAt:    now,
	}

	card.Memory = updated
	e.results = append(e.results, result)
	e.cursor++
	e.timerCard = ""
	e.timerStart = time.Time{}

	return &result, nil
}

// AddCards splices additional cards immediately after the cursor, ahead of
// the rest of the queue. Used to inject urgent re-study content flagged by
// a quiz mid-session.
func (e *Engine) AddCards(cards []SessionCard) {
	if len(cards) == 0 {
		return
	}
	at := e.cursor + 1
	if at > len(e.queue) {
		at = len(e.queue)
	}
	e.queue = append(e.queue[:at:at], append(cards, e.queue[at:]...)...)

	// Reindex: splicing may have moved backing storage.
	e.byID = make(map[string]*SessionCard, len(e.queue))
	for i := range e.queue {
		e.byID[e.queue[i].Card.ID] = &e.queue[i]
	}
}

// HasNext reports whether any cards remain at or after the cursor.
func (e *Engine) HasNext() bool {
	return e.cursor < len(e.queue)
}

// Remaining returns the number of unrated cards left in the queue.
func (e *Engine) Remaining() int {
	return len(e.queue) - e.cursor
}

// TotalCards returns the current queue length, including rated cards.
func (e *Engine) TotalCards() int {
	return len(e.queue)
}

// Queue returns the full queue in order. The slice is shared; callers must
// not mutate it.
func (e *Engine) Queue() []SessionCard {
	return e.queue
}

// Results returns the rating results recorded so far, in order.
func (e *Engine) Results() []RatingResult {
	return e.results
}
