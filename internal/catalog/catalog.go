package catalog

import "fmt"

// index holds the module list with precomputed lookup maps.
type index struct {
	modules  []Module
	byModule map[string]*Module
	byLesson map[string]*Lesson
	byCard   map[string]*Card
	byQn     map[string]*Question
	lessonOf map[string]string // cardID -> lessonID
	moduleOf map[string]string // lessonID -> moduleID
}

// std is the package-level catalog singleton, seeded by init() in seed.go.
var std *index

func buildIndex(modules []Module) *index {
	idx := &index{
		modules:  modules,
		byModule: make(map[string]*Module, len(modules)),
		byLesson: make(map[string]*Lesson),
		byCard:   make(map[string]*Card),
		byQn:     make(map[string]*Question),
		lessonOf: make(map[string]string),
		moduleOf: make(map[string]string),
	}

	for m := range idx.modules {
		mod := &idx.modules[m]
		idx.byModule[mod.ID] = mod
		for l := range mod.Lessons {
			les := &mod.Lessons[l]
			idx.byLesson[les.ID] = les
			idx.moduleOf[les.ID] = mod.ID
			for c := range les.Cards {
				card := &les.Cards[c]
				idx.byCard[card.ID] = card
				idx.lessonOf[card.ID] = les.ID
			}
			for q := range les.Questions {
				idx.byQn[les.Questions[q].ID] = &les.Questions[q]
			}
		}
	}

	return idx
}

// Modules returns all modules in catalog order.
func Modules() []Module {
	return std.modules
}

// GetModule returns the module with the given ID.
func GetModule(id string) (Module, error) {
	if m, ok := std.byModule[id]; ok {
		return *m, nil
	}
	return Module{}, fmt.Errorf("catalog: unknown module %q", id)
}

// GetLesson returns the lesson with the given ID.
func GetLesson(id string) (Lesson, error) {
	if l, ok := std.byLesson[id]; ok {
		return *l, nil
	}
	return Lesson{}, fmt.Errorf("catalog: unknown lesson %q", id)
}

// GetCard returns the card with the given ID.
func GetCard(id string) (Card, error) {
	if c, ok := std.byCard[id]; ok {
		return *c, nil
	}
	return Card{}, fmt.Errorf("catalog: unknown card %q", id)
}

// GetQuestion returns the question with the given ID.
func GetQuestion(id string) (Question, error) {
	if q, ok := std.byQn[id]; ok {
		return *q, nil
	}
	return Question{}, fmt.Errorf("catalog: unknown question %q", id)
}

// LessonOfCard returns the ID of the lesson containing the card, or "" if
// the card is unknown.
func LessonOfCard(cardID string) string {
	return std.lessonOf[cardID]
}

// AllCards returns every card in the catalog, in module/lesson order.
func AllCards() []Card {
	var cards []Card
	for _, m := range std.modules {
		for _, l := range m.Lessons {
			cards = append(cards, l.Cards...)
		}
	}
	return cards
}

// TotalCardCount returns the number of cards across all modules.
func TotalCardCount() int {
	return len(std.byCard)
}

// Register validates the given modules and appends them to the catalog.
// Used when loading extra course files on startup.
func Register(modules []Module) error {
	combined := make([]Module, 0, len(std.modules)+len(modules))
	combined = append(combined, std.modules...)
	combined = append(combined, modules...)
	if err := validateModules(combined); err != nil {
		return err
	}
	std = buildIndex(combined)
	return nil
}
