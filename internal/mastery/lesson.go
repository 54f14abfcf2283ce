package mastery

import (
	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/srs"
)

// LessonProgress carries a lesson's quiz history into the rollup.
type LessonProgress struct {
	BestQuizScore float64
	QuizAttempts  int
}

// LessonMastery is the derived rollup for one lesson.
type LessonMastery struct {
	LessonID      string
	Level         Level
	TotalCards    int // includes never-reviewed cards
	ReviewedCards int // cards graded at least once
	StateCounts   map[srs.State]int

	// ReviewFraction is the share of the lesson's cards settled in
	// StateReview, over the total card count.
	ReviewFraction float64

	// MeanStability is the mean stability of reviewed cards, in days.
	MeanStability float64

	QuizScore    float64
	QuizAttempts int
}

// CalculateLessonMastery rolls per-card memory state and quiz results up to
// a lesson level. The lesson supplies the full card count, so cards without
// a memory record count as New. An empty state list always yields LevelNew,
// regardless of quiz score.
func (a *Aggregator) CalculateLessonMastery(lesson catalog.Lesson, states []srs.CardState, progress LessonProgress) LessonMastery {
	totalCards := lesson.CardCount()
	lm := LessonMastery{
		LessonID:     lesson.ID,
		Level:        LevelNew,
		TotalCards:   totalCards,
		StateCounts:  make(map[srs.State]int),
		QuizScore:    progress.BestQuizScore,
		QuizAttempts: progress.QuizAttempts,
	}

	var stabilitySum float64
	for _, s := range states {
		lm.StateCounts[s.State]++
		if s.Reviewed() {
			lm.ReviewedCards++
			stabilitySum += s.Stability
		}
	}
	unseen := totalCards - len(states)
	if unseen > 0 {
		lm.StateCounts[srs.StateNew] += unseen
	}

	denom := totalCards
	if denom < 1 {
		denom = 1
	}
	lm.ReviewFraction = float64(lm.StateCounts[srs.StateReview]) / float64(denom)
	if lm.ReviewedCards > 0 {
		lm.MeanStability = stabilitySum / float64(lm.ReviewedCards)
	}

	switch {
	case lm.ReviewedCards == 0:
		lm.Level = LevelNew
	case lm.ReviewFraction >= 0.9 && lm.MeanStability >= 30:
		lm.Level = LevelMastered
	case lm.ReviewFraction >= 0.8 && progress.BestQuizScore >= 80:
		lm.Level = LevelProficient
	case lm.ReviewFraction >= 0.5:
		lm.Level = LevelFamiliar
	default:
		lm.Level = LevelLearning
	}
	return lm
}
