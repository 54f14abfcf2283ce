package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playQuiz runs a 20-question quiz answering the first firstCorrect questions
// right in round 0 and everything right on retries, then returns the summary.
func playQuiz(t *testing.T, firstCorrect int) Summary {
	t.Helper()
	e := New(makeQuestions(20), DefaultConfig())
	for i := 0; i < 20; i++ {
		answerCurrent(t, e, i < firstCorrect)
	}
	for e.HasNext() {
		answerCurrent(t, e, true)
	}
	require.True(t, e.IsComplete())
	return e.Summary()
}

func TestBandBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		firstCorrect int
		wantScore    float64
		wantBand     Band
		wantPassed   bool
	}{
		{"perfect", 20, 100, BandMastered, true},
		{"mastered floor", 19, 95, BandMastered, true},
		{"just below mastered", 18, 90, BandProficient, true},
		{"proficient floor", 16, 80, BandProficient, true},
		{"just below proficient", 15, 75, BandDeveloping, true},
		{"pass floor", 14, 70, BandDeveloping, true},
		{"just below pass", 13, 65, BandDeveloping, false},
		{"developing floor", 12, 60, BandDeveloping, false},
		{"just below developing", 11, 55, BandNeedsReview, false},
		{"nothing right", 0, 0, BandNeedsReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playQuiz(t, tt.firstCorrect)
			assert.Equal(t, tt.wantScore, s.FirstAttemptScore)
			assert.Equal(t, tt.wantBand, s.Band)
			assert.Equal(t, tt.wantPassed, s.Passed)
		})
	}
}

func TestFinalScoreGrantsHalfCreditOnRecovery(t *testing.T) {
	// 10 right in round 0, 10 recovered in round 1: 10*1.0 + 10*0.5 over 20.
	s := playQuiz(t, 10)
	assert.Equal(t, 50.0, s.FirstAttemptScore)
	assert.Equal(t, 75.0, s.FinalScore)
}

func TestFinalScoreNoCreditForNeverCorrect(t *testing.T) {
	e := New(makeQuestions(4), DefaultConfig())
	for e.HasNext() {
		answerCurrent(t, e, false)
	}
	s := e.Summary()
	assert.Equal(t, 0.0, s.FinalScore)
	assert.Len(t, s.MissedConceptIDs, 4)
	assert.Len(t, s.CardsForRelearning, 4)
}

func TestRelearningDedupesSharedCards(t *testing.T) {
	qs := makeQuestions(3)
	// All three questions point at the same card.
	for i := range qs {
		qs[i].RelatedCardIDs = []string{"shared-card"}
	}
	e := New(qs, DefaultConfig())
	for e.HasNext() {
		answerCurrent(t, e, false)
	}
	assert.Equal(t, []string{"shared-card"}, e.CardsForRelearning())
}
