package catalog

// Card is a single review prompt. The front is shown to the learner; the
// back is the expected recall.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
	Notes string `json:"notes,omitempty"`
}

// Question is a quiz item attached to a lesson.
type Question struct {
	ID             string   `json:"id"`
	ConceptID      string   `json:"concept_id"`
	Prompt         string   `json:"prompt"`
	Options        []string `json:"options,omitempty"`
	CorrectAnswer  string   `json:"correct_answer"`
	Explanation    string   `json:"explanation,omitempty"`
	RelatedCardIDs []string `json:"related_card_ids,omitempty"`
}

// Lesson groups the cards and quiz questions studied together.
type Lesson struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Cards     []Card     `json:"cards"`
	Questions []Question `json:"questions,omitempty"`
}

// CardCount returns the total number of cards in the lesson, including
// cards the learner has never reviewed.
func (l Lesson) CardCount() int {
	return len(l.Cards)
}

// CardIDs returns the ordered card IDs for the lesson.
func (l Lesson) CardIDs() []string {
	ids := make([]string, len(l.Cards))
	for i, c := range l.Cards {
		ids[i] = c.ID
	}
	return ids
}

// Module is an ordered group of lessons covering one subject area.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary,omitempty"`
	Lessons []Lesson `json:"lessons"`
}
