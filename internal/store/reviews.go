package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ruslanv/mnemo/internal/srs"
)

// ReviewRepo appends and queries the immutable review history.
type ReviewRepo interface {
	// Append records one graded review.
	Append(ctx context.Context, log srs.ReviewLog, responseMs int) error

	// History returns a card's reviews, oldest first.
	History(ctx context.Context, cardID string) ([]srs.ReviewLog, error)

	// CountSince returns the number of reviews at or after since.
	CountSince(ctx context.Context, since time.Time) (int, error)

	// RetentionSince returns the fraction of passing grades among reviews
	// of graduated cards since the given time. Returns 0 when no such
	// reviews exist.
	RetentionSince(ctx context.Context, since time.Time) (float64, error)
}

type reviewRepo struct {
	db *sql.DB
}

func (r *reviewRepo) Append(ctx context.Context, log srs.ReviewLog, responseMs int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO review_logs
			(card_id, grade, scheduled_days, elapsed_days, state_before,
			 response_ms, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.CardID,
		log.Grade.String(),
		log.ScheduledDays,
		log.ElapsedDays,
		log.State.String(),
		responseMs,
		log.ReviewedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append review log for %s: %w", log.CardID, err)
	}
	return nil
}

func (r *reviewRepo) History(ctx context.Context, cardID string) ([]srs.ReviewLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT card_id, grade, scheduled_days, elapsed_days, state_before, reviewed_at
		FROM review_logs WHERE card_id = ? ORDER BY id`, cardID)
	if err != nil {
		return nil, fmt.Errorf("review history for %s: %w", cardID, err)
	}
	defer rows.Close()

	var logs []srs.ReviewLog
	for rows.Next() {
		var l srs.ReviewLog
		var grade, state, reviewedAt string
		if err := rows.Scan(&l.CardID, &grade, &l.ScheduledDays, &l.ElapsedDays,
			&state, &reviewedAt); err != nil {
			return nil, err
		}
		l.Grade = srs.GradeFromString(grade)
		l.State = srs.StateFromString(state)
		l.ReviewedAt, err = time.Parse(time.RFC3339Nano, reviewedAt)
		if err != nil {
			return nil, fmt.Errorf("parse reviewed_at %q: %w", reviewedAt, err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *reviewRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM review_logs WHERE reviewed_at >= ?`,
		since.UTC().Format(time.RFC3339Nano)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

func (r *reviewRepo) RetentionSince(ctx context.Context, since time.Time) (float64, error) {
	var total, passed int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN grade IN ('good', 'easy') THEN 1 ELSE 0 END), 0)
		FROM review_logs
		WHERE state_before = 'review' AND reviewed_at >= ?`,
		since.UTC().Format(time.RFC3339Nano)).Scan(&total, &passed)
	if err != nil {
		return 0, fmt.Errorf("retention query: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(passed) / float64(total), nil
}
