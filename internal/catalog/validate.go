package catalog

import (
	"fmt"
	"strings"
)

// validateModules performs structural checks on a full module set.
// Returns a combined error describing all problems found, or nil if valid.
func validateModules(modules []Module) error {
	var errs []string

	moduleIDs := make(map[string]bool, len(modules))
	lessonIDs := make(map[string]bool)
	cardIDs := make(map[string]bool)
	questionIDs := make(map[string]bool)

	for _, m := range modules {
		if m.ID == "" {
			errs = append(errs, "module with empty ID")
		}
		if moduleIDs[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		moduleIDs[m.ID] = true

		for _, l := range m.Lessons {
			if lessonIDs[l.ID] {
				errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
			}
			lessonIDs[l.ID] = true

			for _, c := range l.Cards {
				if cardIDs[c.ID] {
					errs = append(errs, fmt.Sprintf("duplicate card ID: %q", c.ID))
				}
				cardIDs[c.ID] = true
				if c.Front == "" || c.Back == "" {
					errs = append(errs, fmt.Sprintf("card %q missing front or back", c.ID))
				}
			}

			for _, q := range l.Questions {
				if questionIDs[q.ID] {
					errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
				}
				questionIDs[q.ID] = true
				if q.CorrectAnswer == "" {
					errs = append(errs, fmt.Sprintf("question %q has no correct answer", q.ID))
				}
				if len(q.Options) > 0 && !containsFold(q.Options, q.CorrectAnswer) {
					errs = append(errs, fmt.Sprintf("question %q: correct answer not among options", q.ID))
				}
			}
		}
	}

	// Related-card references can only be checked once all IDs are known.
	for _, m := range modules {
		for _, l := range m.Lessons {
			for _, q := range l.Questions {
				for _, cardID := range q.RelatedCardIDs {
					if !cardIDs[cardID] {
						errs = append(errs, fmt.Sprintf("question %q references nonexistent card %q", q.ID, cardID))
					}
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func containsFold(options []string, want string) bool {
	for _, o := range options {
		if strings.EqualFold(strings.TrimSpace(o), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
