package quiz

import "math"

// Band buckets a quiz outcome by first-attempt performance.
type Band string

const (
	BandMastered    Band = "mastered"     // first-attempt score >= 95
	BandProficient  Band = "proficient"   // >= 80
	BandDeveloping  Band = "developing"   // >= 60
	BandNeedsReview Band = "needs-review" // below 60
)

// passThreshold is the fixed first-attempt score required to pass,
// independent of the band bucketing.
const passThreshold = 70.0

// Summary is the scored outcome of a completed (or empty) quiz.
type Summary struct {
	QuizID         string
	TotalQuestions int
	RoundsPlayed   int // number of passes over the question set

	// FirstAttemptScore is 100 * (correct on round 0) / total.
	FirstAttemptScore float64

	// FinalScore grants 1.0 per first-attempt correct, 0.5 per
	// correct-only-on-retry, 0 otherwise, scaled to 0-100 and rounded.
	FinalScore float64

	Band   Band
	Passed bool

	// MissedConceptIDs and CardsForRelearning come from questions missed
	// on their first attempt, deduplicated in question order.
	MissedConceptIDs   []string
	CardsForRelearning []string
}

// Summary scores the quiz from its attempt history. Safe to call at any
// point; an empty quiz scores 0 across the board.
func (e *Engine) Summary() Summary {
	s := Summary{
		QuizID:         e.ID,
		TotalQuestions: len(e.questions),
		RoundsPlayed:   e.round + 1,
		Band:           BandNeedsReview,
	}
	if len(e.questions) == 0 {
		s.RoundsPlayed = 0
		return s
	}

	var firstCorrect int
	var points float64
	for _, q := range e.questions {
		switch {
		case e.correctRound0[q.ID]:
			firstCorrect++
			points += 1.0
		case e.everCorrect[q.ID]:
			points += 0.5
		}
	}

	n := float64(len(e.questions))
	s.FirstAttemptScore = 100 * float64(firstCorrect) / n
	s.FinalScore = math.Round(points / n * 100)
	s.Band = bandFor(s.FirstAttemptScore)
	s.Passed = s.FirstAttemptScore >= passThreshold

	seenConcept := make(map[string]bool)
	seenCard := make(map[string]bool)
	for _, q := range e.questions {
		if e.correctRound0[q.ID] {
			continue
		}
		if q.ConceptID != "" && !seenConcept[q.ConceptID] {
			seenConcept[q.ConceptID] = true
			s.MissedConceptIDs = append(s.MissedConceptIDs, q.ConceptID)
		}
		for _, cardID := range q.RelatedCardIDs {
			if !seenCard[cardID] {
				seenCard[cardID] = true
				s.CardsForRelearning = append(s.CardsForRelearning, cardID)
			}
		}
	}

	return s
}

// CardsForRelearning returns the deduplicated related-card IDs of questions
// missed on their first attempt, the candidates for re-study injection.
func (e *Engine) CardsForRelearning() []string {
	return e.Summary().CardsForRelearning
}

func bandFor(firstAttemptScore float64) Band {
	switch {
	case firstAttemptScore >= 95:
		return BandMastered
	case firstAttemptScore >= 80:
		return BandProficient
	case firstAttemptScore >= 60:
		return BandDeveloping
	default:
		return BandNeedsReview
	}
}
