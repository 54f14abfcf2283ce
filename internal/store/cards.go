package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ruslanv/mnemo/internal/srs"
)

// CardRepo persists per-card memory state.
type CardRepo interface {
	// Save upserts a card's memory state.
	Save(ctx context.Context, state srs.CardState, now time.Time) error

	// Load returns all persisted card states keyed by card ID.
	Load(ctx context.Context) (map[string]srs.CardState, error)

	// Get returns one card's state, or nil if the card has never been saved.
	Get(ctx context.Context, cardID string) (*srs.CardState, error)
}

type cardRepo struct {
	db *sql.DB
}

func (r *cardRepo) Save(ctx context.Context, state srs.CardState, now time.Time) error {
	lastReview := ""
	if state.Reviewed() {
		lastReview = state.LastReview.UTC().Format(time.RFC3339Nano)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO card_states
			(card_id, due, stability, difficulty, elapsed_days, scheduled_days,
			 reps, lapses, state, last_review, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(card_id) DO UPDATE SET
			due = excluded.due,
			stability = excluded.stability,
			difficulty = excluded.difficulty,
			elapsed_days = excluded.elapsed_days,
			scheduled_days = excluded.scheduled_days,
			reps = excluded.reps,
			lapses = excluded.lapses,
			state = excluded.state,
			last_review = excluded.last_review,
			updated_at = excluded.updated_at`,
		state.CardID,
		state.Due.UTC().Format(time.RFC3339Nano),
		state.Stability,
		state.Difficulty,
		state.ElapsedDays,
		state.ScheduledDays,
		state.Reps,
		state.Lapses,
		state.State.String(),
		lastReview,
		now.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save card state %s: %w", state.CardID, err)
	}
	return nil
}

func (r *cardRepo) Load(ctx context.Context) (map[string]srs.CardState, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT card_id, due, stability, difficulty, elapsed_days,
		       scheduled_days, reps, lapses, state, last_review
		FROM card_states`)
	if err != nil {
		return nil, fmt.Errorf("load card states: %w", err)
	}
	defer rows.Close()

	states := make(map[string]srs.CardState)
	for rows.Next() {
		cs, err := scanCardState(rows)
		if err != nil {
			return nil, err
		}
		states[cs.CardID] = cs
	}
	return states, rows.Err()
}

func (r *cardRepo) Get(ctx context.Context, cardID string) (*srs.CardState, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT card_id, due, stability, difficulty, elapsed_days,
		       scheduled_days, reps, lapses, state, last_review
		FROM card_states WHERE card_id = ?`, cardID)

	cs, err := scanCardState(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCardState(row rowScanner) (srs.CardState, error) {
	var cs srs.CardState
	var due, state, lastReview string
	if err := row.Scan(&cs.CardID, &due, &cs.Stability, &cs.Difficulty,
		&cs.ElapsedDays, &cs.ScheduledDays, &cs.Reps, &cs.Lapses,
		&state, &lastReview); err != nil {
		return srs.CardState{}, err
	}

	var err error
	cs.Due, err = time.Parse(time.RFC3339Nano, due)
	if err != nil {
		return srs.CardState{}, fmt.Errorf("card %s: parse due %q: %w", cs.CardID, due, err)
	}
	cs.State = srs.StateFromString(state)
	if lastReview != "" {
		cs.LastReview, err = time.Parse(time.RFC3339Nano, lastReview)
		if err != nil {
			return srs.CardState{}, fmt.Errorf("card %s: parse last_review %q: %w", cs.CardID, lastReview, err)
		}
	}
	return cs, nil
}
