package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/srs"
)

var testEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// dueCard builds a due-pool card in the given state with a due offset.
func dueCard(id string, state srs.State, dueOffset time.Duration) SessionCard {
	return SessionCard{
		Card: catalog.Card{ID: id, Front: "front " + id, Back: "back " + id},
		Memory: srs.CardState{
			CardID:     id,
			State:      state,
			Due:        testEpoch.Add(dueOffset),
			Stability:  5,
			Reps:       3,
			LastReview: testEpoch.Add(-72 * time.Hour),
		},
	}
}

// newCard builds a new-pool card.
func newCard(id string) SessionCard {
	return SessionCard{
		Card:   catalog.Card{ID: id, Front: "front " + id, Back: "back " + id},
		Memory: srs.CardState{CardID: id, State: srs.StateNew, Due: testEpoch},
		IsNew:  true,
	}
}

func makeDue(n int) []SessionCard {
	cards := make([]SessionCard, n)
	for i := range cards {
		cards[i] = dueCard(fmt.Sprintf("due-%02d", i), srs.StateReview, time.Duration(i)*time.Minute)
	}
	return cards
}

func makeNew(n int) []SessionCard {
	cards := make([]SessionCard, n)
	for i := range cards {
		cards[i] = newCard(fmt.Sprintf("new-%02d", i))
	}
	return cards
}

func countNew(queue []SessionCard) int {
	n := 0
	for _, c := range queue {
		if c.IsNew {
			n++
		}
	}
	return n
}

func TestBuildQueueBound(t *testing.T) {
	tests := []struct {
		name     string
		due, new int
		cfg      Config
	}{
		{"default", 30, 15, DefaultConfig()},
		{"few cards", 3, 2, DefaultConfig()},
		{"small cap", 30, 15, Config{MaxCards: 5, MaxNewCards: 10, NewCardRatio: 0.3}},
		{"no new allowed", 30, 15, Config{MaxCards: 20, MaxNewCards: 0, NewCardRatio: 0.3}},
		{"zero ratio", 30, 15, Config{MaxCards: 20, MaxNewCards: 10, NewCardRatio: 0}},
		{"full ratio", 30, 15, Config{MaxCards: 20, MaxNewCards: 10, NewCardRatio: 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := buildQueue(makeDue(tt.due), makeNew(tt.new), tt.cfg)
			if len(queue) > tt.cfg.MaxCards {
				t.Errorf("queue length %d exceeds MaxCards %d", len(queue), tt.cfg.MaxCards)
			}
			newBudget := min(tt.new, tt.cfg.MaxNewCards, int(float64(tt.cfg.MaxCards)*tt.cfg.NewCardRatio))
			if got := countNew(queue); got > newBudget {
				t.Errorf("queue has %d new cards, budget %d", got, newBudget)
			}
		})
	}
}

func TestBuildQueueDegenerateConfig(t *testing.T) {
	queue := buildQueue(makeDue(5), makeNew(5), Config{MaxCards: 0, MaxNewCards: 10, NewCardRatio: 0.3})
	if len(queue) != 0 {
		t.Errorf("expected empty queue for MaxCards=0, got %d cards", len(queue))
	}
}

func TestBuildQueueInterleaveExample(t *testing.T) {
	// 14 due + 6 new with defaults: targetNew = min(6,10,6) = 6,
	// targetReview = min(14,14) = 14, queue length 20, new cards at
	// floor(20/6/2 + 20/6*k) = positions 1, 5, 8, 11, 15, 18.
	queue := buildQueue(makeDue(14), makeNew(6), DefaultConfig())

	if len(queue) != 20 {
		t.Fatalf("queue length = %d, want 20", len(queue))
	}
	if got := countNew(queue); got != 6 {
		t.Fatalf("new cards in queue = %d, want 6", got)
	}

	wantNewPositions := map[int]bool{1: true, 5: true, 8: true, 11: true, 15: true, 18: true}
	for pos, c := range queue {
		if c.IsNew != wantNewPositions[pos] {
			t.Errorf("position %d: IsNew = %v, want %v", pos, c.IsNew, wantNewPositions[pos])
		}
	}
}

func TestBuildQueueEveryReviewOnce(t *testing.T) {
	due := makeDue(10)
	queue := buildQueue(due, makeNew(4), DefaultConfig())

	seen := make(map[string]int)
	for _, c := range queue {
		seen[c.Card.ID]++
	}
	for _, c := range due {
		if seen[c.Card.ID] != 1 {
			t.Errorf("review card %s appears %d times, want 1", c.Card.ID, seen[c.Card.ID])
		}
	}
}

func TestBuildQueueSinglePool(t *testing.T) {
	onlyDue := buildQueue(makeDue(8), nil, DefaultConfig())
	if len(onlyDue) != 8 || countNew(onlyDue) != 0 {
		t.Errorf("due-only queue: len=%d new=%d, want len=8 new=0", len(onlyDue), countNew(onlyDue))
	}

	onlyNew := buildQueue(nil, makeNew(8), DefaultConfig())
	if len(onlyNew) != 6 {
		// min(8, 10, floor(20*0.3)) = 6
		t.Errorf("new-only queue: len=%d, want 6", len(onlyNew))
	}
}

func TestBuildQueuePriorityOrder(t *testing.T) {
	due := []SessionCard{
		dueCard("review-late", srs.StateReview, 2*time.Hour),
		dueCard("learning", srs.StateLearning, 3*time.Hour),
		dueCard("review-early", srs.StateReview, time.Hour),
		dueCard("relearning", srs.StateRelearning, 4*time.Hour),
	}
	queue := buildQueue(due, nil, DefaultConfig())

	want := []string{"relearning", "learning", "review-early", "review-late"}
	if len(queue) != len(want) {
		t.Fatalf("queue length = %d, want %d", len(queue), len(want))
	}
	for i, id := range want {
		if queue[i].Card.ID != id {
			t.Errorf("position %d: got %s, want %s", i, queue[i].Card.ID, id)
		}
	}
}
