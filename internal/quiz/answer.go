package quiz

import (
	"fmt"
	"strings"

	"github.com/ruslanv/mnemo/internal/catalog"
)

// CheckAnswer compares the learner's input against the correct answer.
// Matching is a case-insensitive, whitespace-trimmed exact comparison.
// Near-miss answers count as wrong.
func CheckAnswer(answer, correct string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	return strings.EqualFold(answer, strings.TrimSpace(correct))
}

// feedbackFor builds the re-study hint shown after a wrong answer. It
// points the learner at the first related review card that exists in the
// catalog, falling back to a generic message.
func feedbackFor(q *catalog.Question) string {
	for _, cardID := range q.RelatedCardIDs {
		card, err := catalog.GetCard(cardID)
		if err != nil {
			continue
		}
		return fmt.Sprintf("Review this card: %s", card.Front)
	}
	return "Review the explanation before moving on."
}
