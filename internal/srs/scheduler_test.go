package srs

import (
	"math"
	"testing"
	"time"
)

var srsEpoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func TestNewCard(t *testing.T) {
	f := NewFSRS(DefaultConfig())
	card := f.NewCard("c1", srsEpoch)

	if card.CardID != "c1" {
		t.Errorf("CardID = %q, want c1", card.CardID)
	}
	if card.State != StateNew {
		t.Errorf("State = %s, want new", card.State)
	}
	if !card.Due.Equal(srsEpoch) {
		t.Errorf("Due = %v, want %v (due immediately)", card.Due, srsEpoch)
	}
	if card.Reviewed() {
		t.Error("fresh card should not report Reviewed")
	}
	if !card.IsDue(srsEpoch) {
		t.Error("fresh card should be due at creation time")
	}
}

func TestReviewAdvancesCard(t *testing.T) {
	f := NewFSRS(DefaultConfig())
	card := f.NewCard("c1", srsEpoch)

	updated, log, err := f.Review(card, GradeGood, srsEpoch)
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if updated.Reps != card.Reps+1 {
		t.Errorf("Reps = %d, want %d", updated.Reps, card.Reps+1)
	}
	if updated.Due.Before(srsEpoch) {
		t.Errorf("Due = %v, before review time %v", updated.Due, srsEpoch)
	}
	if updated.State == StateNew {
		t.Error("graded card should leave StateNew")
	}
	if updated.Stability <= 0 {
		t.Errorf("Stability = %v, want > 0 after review", updated.Stability)
	}
	if !updated.Reviewed() {
		t.Error("graded card should report Reviewed")
	}
	if log.CardID != "c1" || log.Grade != GradeGood || log.State != StateNew {
		t.Errorf("log = %+v, want card c1 graded good from new", log)
	}
	if !log.ReviewedAt.Equal(srsEpoch) {
		t.Errorf("ReviewedAt = %v, want %v", log.ReviewedAt, srsEpoch)
	}
}

func TestReviewIsDeterministic(t *testing.T) {
	f := NewFSRS(DefaultConfig())
	card := f.NewCard("c1", srsEpoch)

	a, _, err := f.Review(card, GradeHard, srsEpoch)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := f.Review(card, GradeHard, srsEpoch)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("same inputs gave different outputs:\n%+v\n%+v", a, b)
	}
}

func TestReviewAgainLapsesFromReview(t *testing.T) {
	f := NewFSRS(DefaultConfig())

	// Walk a card into StateReview, then fail it.
	card := f.NewCard("c1", srsEpoch)
	now := srsEpoch
	for i := 0; i < 5 && card.State != StateReview; i++ {
		next, _, err := f.Review(card, GradeEasy, now)
		if err != nil {
			t.Fatal(err)
		}
		card = next
		now = card.Due
	}
	if card.State != StateReview {
		t.Fatalf("card never reached StateReview, state = %s", card.State)
	}

	lapsed, _, err := f.Review(card, GradeAgain, now)
	if err != nil {
		t.Fatal(err)
	}
	if lapsed.State != StateRelearning {
		t.Errorf("State after Again = %s, want relearning", lapsed.State)
	}
	if lapsed.Lapses != card.Lapses+1 {
		t.Errorf("Lapses = %d, want %d", lapsed.Lapses, card.Lapses+1)
	}
}

func TestReviewEasyDueLaterThanAgain(t *testing.T) {
	f := NewFSRS(DefaultConfig())
	card := f.NewCard("c1", srsEpoch)

	again, _, err := f.Review(card, GradeAgain, srsEpoch)
	if err != nil {
		t.Fatal(err)
	}
	easy, _, err := f.Review(card, GradeEasy, srsEpoch)
	if err != nil {
		t.Fatal(err)
	}
	if !easy.Due.After(again.Due) {
		t.Errorf("Easy due %v should be after Again due %v", easy.Due, again.Due)
	}
}

func TestRetrievabilityBounds(t *testing.T) {
	f := NewFSRS(DefaultConfig())

	newCard := f.NewCard("c1", srsEpoch)
	if got := f.Retrievability(newCard, srsEpoch); got != 0 {
		t.Errorf("retrievability of new card = %v, want 0", got)
	}

	card := CardState{
		CardID:     "c2",
		Stability:  10,
		State:      StateReview,
		LastReview: srsEpoch,
		Reps:       1,
	}
	for _, days := range []int{0, 1, 10, 100, 10000} {
		at := srsEpoch.Add(time.Duration(days) * 24 * time.Hour)
		r := f.Retrievability(card, at)
		if r < 0 || r > 1 {
			t.Errorf("retrievability at +%dd = %v, out of [0,1]", days, r)
		}
	}

	// Just reviewed: recall probability is at its peak.
	if r := f.Retrievability(card, srsEpoch); r != 1 {
		t.Errorf("retrievability at review time = %v, want 1", r)
	}
}

func TestRetrievabilityDecaysMonotonically(t *testing.T) {
	f := NewFSRS(DefaultConfig())
	card := CardState{
		CardID:     "c1",
		Stability:  9,
		State:      StateReview,
		LastReview: srsEpoch,
		Reps:       1,
	}

	prev := 2.0
	for days := 0; days <= 60; days += 5 {
		at := srsEpoch.Add(time.Duration(days) * 24 * time.Hour)
		r := f.Retrievability(card, at)
		if r >= prev {
			t.Fatalf("retrievability at +%dd = %v, not below previous %v", days, r, prev)
		}
		prev = r
	}
}

func TestRetrievabilityAtStabilityMatchesTarget(t *testing.T) {
	// By construction the curve passes through 0.9 when elapsed == stability.
	got := forgettingCurve(9, 9)
	if math.Abs(got-0.9) > 1e-9 {
		t.Errorf("forgettingCurve(9, 9) = %v, want 0.9", got)
	}
}

func TestStateAndGradeRoundTrip(t *testing.T) {
	for _, s := range []State{StateNew, StateLearning, StateReview, StateRelearning} {
		if got := StateFromString(s.String()); got != s {
			t.Errorf("StateFromString(%q) = %v, want %v", s.String(), got, s)
		}
	}
	for _, g := range []Grade{GradeAgain, GradeHard, GradeGood, GradeEasy} {
		if got := GradeFromString(g.String()); got != g {
			t.Errorf("GradeFromString(%q) = %v, want %v", g.String(), got, g)
		}
	}
	if StateFromString("bogus") != StateNew {
		t.Error("unknown state should parse as new")
	}
}

func TestGradePassing(t *testing.T) {
	if GradeAgain.Passing() || GradeHard.Passing() {
		t.Error("again/hard should not be passing")
	}
	if !GradeGood.Passing() || !GradeEasy.Passing() {
		t.Error("good/easy should be passing")
	}
}
