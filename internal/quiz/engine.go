package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/ruslanv/mnemo/internal/catalog"
)

// Config controls retry behavior for a quiz.
type Config struct {
	// MaxRetryRounds is the number of retry rounds allowed after round 0.
	MaxRetryRounds int

	// RetryPassThreshold is the per-round correct rate at which the quiz
	// stops early instead of starting another retry round. 1.0 means a
	// retry round must be perfect to end the quiz before MaxRetryRounds.
	RetryPassThreshold float64
}

// DefaultConfig returns the standard retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetryRounds:     2,
		RetryPassThreshold: 1.0,
	}
}

// Attempt records one submitted answer for a question.
type Attempt struct {
	Answer    string
	Correct   bool
	Round     int
	At        time.Time
	LatencyMs int
}

// AnswerResult is returned to the caller after each submission.
type AnswerResult struct {
	QuestionID    string
	Correct       bool
	CorrectAnswer string
	Feedback      string
	Round         int
}

// Engine runs a question set through round 0 plus retry rounds over missed
// questions. Designed for exactly one consumer; no internal locking.
type Engine struct {
	ID        string
	questions []catalog.Question
	cfg       Config

	round      int
	roundQueue []int // indexes into questions for the current round
	cursor     int   // position within roundQueue
	complete   bool

	attempts      map[string][]Attempt
	correctRound0 map[string]bool
	everCorrect   map[string]bool

	timerQn    string
	timerStart time.Time
}

// New creates a quiz over the given questions in catalog order. An empty
// question set yields a quiz that is already complete.
func New(questions []catalog.Question, cfg Config) *Engine {
	e := &Engine{
		ID:            uuid.NewString(),
		questions:     questions,
		cfg:           cfg,
		attempts:      make(map[string][]Attempt, len(questions)),
		correctRound0: make(map[string]bool, len(questions)),
		everCorrect:   make(map[string]bool, len(questions)),
	}
	if len(questions) == 0 {
		e.complete = true
		return e
	}
	e.roundQueue = make([]int, len(questions))
	for i := range questions {
		e.roundQueue[i] = i
	}
	return e
}

// CurrentQuestion returns the active question, or nil when the quiz is
// complete. The response latency timer starts on first access per question.
func (e *Engine) CurrentQuestion() *catalog.Question {
	if e.complete || e.cursor >= len(e.roundQueue) {
		return nil
	}
	q := &e.questions[e.roundQueue[e.cursor]]
	if e.timerQn != q.ID {
		e.timerQn = q.ID
		e.timerStart = time.Now()
	}
	return q
}

// SubmitAnswer grades the answer against the current question, records the
// attempt, and advances the quiz. Returns nil when the quiz is already
// complete; submitting past the end is a no-op.
func (e *Engine) SubmitAnswer(answer string, now time.Time) *AnswerResult {
	if e.complete || e.cursor >= len(e.roundQueue) {
		return nil
	}
	q := &e.questions[e.roundQueue[e.cursor]]

	correct := CheckAnswer(answer, q.CorrectAnswer)

	latency := 0
	if e.timerQn == q.ID && !e.timerStart.IsZero() {
		latency = int(time.Since(e.timerStart).Milliseconds())
	}
	e.attempts[q.ID] = append(e.attempts[q.ID], Attempt{
		Answer:    answer,
		Correct:   correct,
		Round:     e.round,
		At:        now,
		LatencyMs: latency,
	})

	if correct {
		e.everCorrect[q.ID] = true
		if e.round == 0 {
			e.correctRound0[q.ID] = true
		}
	}

	result := &AnswerResult{
		QuestionID:    q.ID,
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Round:         e.round,
	}
	if !correct {
		result.Feedback = feedbackFor(q)
	}

	e.cursor++
	e.timerQn = ""
	e.timerStart = time.Time{}
	if e.cursor >= len(e.roundQueue) {
		e.endRound()
	}
	return result
}

// endRound collects the questions missed this round and either terminates
// the quiz or starts a retry round containing only the missed questions in
// their original relative order.
func (e *Engine) endRound() {
	var missed []int
	for _, qi := range e.roundQueue {
		q := e.questions[qi]
		if !lastAttemptCorrect(e.attempts[q.ID], e.round) {
			missed = append(missed, qi)
		}
	}

	if len(missed) == 0 || e.round >= e.cfg.MaxRetryRounds {
		e.complete = true
		return
	}

	roundSize := len(e.roundQueue)
	correctRate := float64(roundSize-len(missed)) / float64(roundSize)
	if correctRate >= e.cfg.RetryPassThreshold {
		e.complete = true
		return
	}

	e.round++
	e.roundQueue = missed
	e.cursor = 0
}

func lastAttemptCorrect(attempts []Attempt, round int) bool {
	for i := len(attempts) - 1; i >= 0; i-- {
		if attempts[i].Round == round {
			return attempts[i].Correct
		}
	}
	return false
}

// Round returns the current round number (0 is the initial pass).
func (e *Engine) Round() int {
	return e.round
}

// HasNext reports whether another question is available.
func (e *Engine) HasNext() bool {
	return !e.complete
}

// IsComplete reports whether the quiz has terminated.
func (e *Engine) IsComplete() bool {
	return e.complete
}

// Attempts returns the recorded attempt history for a question.
func (e *Engine) Attempts(questionID string) []Attempt {
	return e.attempts[questionID]
}
