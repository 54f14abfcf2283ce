package session

import "github.com/ruslanv/mnemo/internal/srs"

// Stats summarizes the graded results of a session so far.
type Stats struct {
	TotalReviewed int
	AgainCount    int
	HardCount     int
	GoodCount     int
	EasyCount     int

	NewStudied    int
	ReviewStudied int

	// RetentionRate is the fraction of review (non-new) cards graded Good
	// or Easy. 0 if no review cards were studied.
	RetentionRate float64

	// AverageTimeMs is the mean response time across all results. 0 if empty.
	AverageTimeMs float64
}

// Stats computes session statistics from the results recorded so far.
func (e *Engine) Stats() Stats {
	var s Stats
	s.TotalReviewed = len(e.results)

	var reviewPassed, totalTimeMs int
	for _, r := range e.results {
		switch r.Grade {
		case srs.GradeAgain:
			s.AgainCount++
		case srs.GradeHard:
			s.HardCount++
		case srs.GradeGood:
			s.GoodCount++
		case srs.GradeEasy:
			s.EasyCount++
		}
		totalTimeMs += r.ResponseMs

		isNew := false
		if sc, ok := e.byID[r.CardID]; ok {
			isNew = sc.IsNew
		}
		if isNew {
			s.NewStudied++
		} else {
			s.ReviewStudied++
			if r.Grade.Passing() {
				reviewPassed++
			}
		}
	}

	if s.ReviewStudied > 0 {
		s.RetentionRate = float64(reviewPassed) / float64(s.ReviewStudied)
	}
	if s.TotalReviewed > 0 {
		s.AverageTimeMs = float64(totalTimeMs) / float64(s.TotalReviewed)
	}
	return s
}
