package session

import "sort"

// Config bounds the size and mix of a session queue.
type Config struct {
	MaxCards     int     // hard cap on queue length
	MaxNewCards  int     // cap on never-reviewed cards in the queue
	NewCardRatio float64 // fraction of MaxCards reserved for new cards
}

// DefaultConfig returns the standard session bounds.
func DefaultConfig() Config {
	return Config{
		MaxCards:     20,
		MaxNewCards:  10,
		NewCardRatio: 0.3,
	}
}

// buildQueue constructs the session queue from the due and new pools.
// Due cards are ordered by priority group then due timestamp; new cards are
// budgeted by the config and interleaved at roughly even spacing.
// A degenerate config (MaxCards <= 0) yields an empty queue, not an error.
func buildQueue(due, fresh []SessionCard, cfg Config) []SessionCard {
	if cfg.MaxCards <= 0 {
		return nil
	}

	reviews := make([]SessionCard, len(due))
	copy(reviews, due)
	sort.SliceStable(reviews, func(i, j int) bool {
		gi, gj := priorityGroup(reviews[i].Memory.State), priorityGroup(reviews[j].Memory.State)
		if gi != gj {
			return gi < gj
		}
		return reviews[i].Memory.Due.Before(reviews[j].Memory.Due)
	})

	ratio := cfg.NewCardRatio
	if ratio < 0 {
		ratio = 0
	}

	targetNew := min(len(fresh), cfg.MaxNewCards, int(float64(cfg.MaxCards)*ratio))
	if targetNew < 0 {
		targetNew = 0
	}
	targetReview := min(len(reviews), cfg.MaxCards-targetNew)
	actualNew := min(targetNew, cfg.MaxCards-targetReview)

	return interleave(reviews[:targetReview], fresh[:actualNew])
}

// interleave merges the review and new pools into one queue, inserting the
// k-th new card at position floor(interval/2 + interval*k) where
// interval = (reviewCount+newCount)/newCount. If either pool is empty the
// queue is just the other pool.
func interleave(reviews, fresh []SessionCard) []SessionCard {
	if len(fresh) == 0 {
		return reviews
	}
	if len(reviews) == 0 {
		return fresh
	}

	total := len(reviews) + len(fresh)
	interval := float64(total) / float64(len(fresh))

	queue := make([]SessionCard, 0, total)
	ri, ni := 0, 0
	for pos := 0; pos < total; pos++ {
		atNewSlot := ni < len(fresh) && pos == int(interval/2+interval*float64(ni))
		switch {
		case atNewSlot:
			queue = append(queue, fresh[ni])
			ni++
		case ri < len(reviews):
			queue = append(queue, reviews[ri])
			ri++
		default:
			// Review pool exhausted; append remaining new cards in order.
			queue = append(queue, fresh[ni])
			ni++
		}
	}
	return queue
}
