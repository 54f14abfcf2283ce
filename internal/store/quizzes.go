package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ruslanv/mnemo/internal/mastery"
	"github.com/ruslanv/mnemo/internal/quiz"
)

// QuizRepo persists quiz outcomes per lesson.
type QuizRepo interface {
	// Save appends a completed quiz summary for the given lesson.
	Save(ctx context.Context, lessonID string, s quiz.Summary, takenAt time.Time) error

	// Progress returns a lesson's best first-attempt score and attempt count.
	Progress(ctx context.Context, lessonID string) (mastery.LessonProgress, error)

	// AllProgress returns quiz progress for every lesson with at least one
	// recorded attempt, keyed by lesson ID.
	AllProgress(ctx context.Context) (map[string]mastery.LessonProgress, error)
}

type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) Save(ctx context.Context, lessonID string, s quiz.Summary, takenAt time.Time) error {
	passed := 0
	if s.Passed {
		passed = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quiz_results
			(quiz_id, lesson_id, total_questions, rounds_played,
			 first_attempt_score, final_score, band, passed, taken_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.QuizID,
		lessonID,
		s.TotalQuestions,
		s.RoundsPlayed,
		s.FirstAttemptScore,
		s.FinalScore,
		string(s.Band),
		passed,
		takenAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save quiz result for %s: %w", lessonID, err)
	}
	return nil
}

func (r *quizRepo) Progress(ctx context.Context, lessonID string) (mastery.LessonProgress, error) {
	var p mastery.LessonProgress
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(first_attempt_score), 0), COUNT(*)
		FROM quiz_results WHERE lesson_id = ?`, lessonID).
		Scan(&p.BestQuizScore, &p.QuizAttempts)
	if err != nil {
		return mastery.LessonProgress{}, fmt.Errorf("quiz progress for %s: %w", lessonID, err)
	}
	return p, nil
}

func (r *quizRepo) AllProgress(ctx context.Context) (map[string]mastery.LessonProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT lesson_id, MAX(first_attempt_score), COUNT(*)
		FROM quiz_results GROUP BY lesson_id`)
	if err != nil {
		return nil, fmt.Errorf("quiz progress: %w", err)
	}
	defer rows.Close()

	out := make(map[string]mastery.LessonProgress)
	for rows.Next() {
		var lessonID string
		var p mastery.LessonProgress
		if err := rows.Scan(&lessonID, &p.BestQuizScore, &p.QuizAttempts); err != nil {
			return nil, err
		}
		out[lessonID] = p
	}
	return out, rows.Err()
}
