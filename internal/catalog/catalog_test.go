package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedCatalogLookups(t *testing.T) {
	if len(Modules()) < 2 {
		t.Fatalf("seed modules = %d, want at least 2", len(Modules()))
	}

	m, err := GetModule("europe")
	if err != nil {
		t.Fatalf("GetModule(europe): %v", err)
	}
	if m.Title == "" || len(m.Lessons) == 0 {
		t.Errorf("europe module incomplete: %+v", m)
	}

	l, err := GetLesson("eu-capitals")
	if err != nil {
		t.Fatalf("GetLesson(eu-capitals): %v", err)
	}
	if l.CardCount() != len(l.Cards) {
		t.Errorf("CardCount = %d, want %d", l.CardCount(), len(l.Cards))
	}
	if len(l.Questions) == 0 {
		t.Error("eu-capitals has no questions")
	}

	c, err := GetCard("eu-cap-pt")
	if err != nil {
		t.Fatalf("GetCard(eu-cap-pt): %v", err)
	}
	if c.Front != "Capital of Portugal" {
		t.Errorf("Front = %q", c.Front)
	}
	if got := LessonOfCard("eu-cap-pt"); got != "eu-capitals" {
		t.Errorf("LessonOfCard = %q, want eu-capitals", got)
	}

	if _, err := GetModule("atlantis"); err == nil {
		t.Error("GetModule should fail for unknown ID")
	}
	if _, err := GetCard("nope"); err == nil {
		t.Error("GetCard should fail for unknown ID")
	}
	if got := LessonOfCard("nope"); got != "" {
		t.Errorf("LessonOfCard for unknown card = %q, want empty", got)
	}
}

func TestAllCardsMatchesTotal(t *testing.T) {
	if got, want := len(AllCards()), TotalCardCount(); got != want {
		t.Errorf("AllCards = %d, TotalCardCount = %d", got, want)
	}
}

func TestQuestionAnswersResolve(t *testing.T) {
	// Every seed question must reference resolvable cards and carry its
	// correct answer among its options.
	for _, m := range Modules() {
		for _, l := range m.Lessons {
			for _, q := range l.Questions {
				for _, cardID := range q.RelatedCardIDs {
					if _, err := GetCard(cardID); err != nil {
						t.Errorf("question %s: %v", q.ID, err)
					}
				}
				if len(q.Options) > 0 && !containsFold(q.Options, q.CorrectAnswer) {
					t.Errorf("question %s: correct answer %q not among options", q.ID, q.CorrectAnswer)
				}
			}
		}
	}
}

func TestValidateModules(t *testing.T) {
	valid := []Module{{
		ID: "m1", Title: "M1",
		Lessons: []Lesson{{
			ID: "m1-l1", Title: "L1",
			Cards: []Card{{ID: "m1-c1", Front: "f", Back: "b"}},
			Questions: []Question{{
				ID: "m1-q1", Prompt: "p", CorrectAnswer: "a",
				Options:        []string{"a", "b"},
				RelatedCardIDs: []string{"m1-c1"},
			}},
		}},
	}}
	if err := validateModules(valid); err != nil {
		t.Errorf("valid modules rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func([]Module)
		wantSub string
	}{
		{"duplicate card", func(ms []Module) {
			ms[0].Lessons[0].Cards = append(ms[0].Lessons[0].Cards, Card{ID: "m1-c1", Front: "f", Back: "b"})
		}, "duplicate card ID"},
		{"empty front", func(ms []Module) {
			ms[0].Lessons[0].Cards[0].Front = ""
		}, "missing front or back"},
		{"answer not in options", func(ms []Module) {
			ms[0].Lessons[0].Questions[0].CorrectAnswer = "zzz"
		}, "not among options"},
		{"dangling card ref", func(ms []Module) {
			ms[0].Lessons[0].Questions[0].RelatedCardIDs = []string{"ghost"}
		}, "nonexistent card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := deepCopyModules(valid)
			tt.mutate(ms)
			err := validateModules(ms)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func deepCopyModules(in []Module) []Module {
	out := make([]Module, len(in))
	for i, m := range in {
		out[i] = m
		out[i].Lessons = make([]Lesson, len(m.Lessons))
		for j, l := range m.Lessons {
			out[i].Lessons[j] = l
			out[i].Lessons[j].Cards = append([]Card(nil), l.Cards...)
			out[i].Lessons[j].Questions = make([]Question, len(l.Questions))
			for k, q := range l.Questions {
				out[i].Lessons[j].Questions[k] = q
				out[i].Lessons[j].Questions[k].Options = append([]string(nil), q.Options...)
				out[i].Lessons[j].Questions[k].RelatedCardIDs = append([]string(nil), q.RelatedCardIDs...)
			}
		}
	}
	return out
}

const extraCourse = `{
  "modules": [
    {
      "id": "americas",
      "title": "The Americas",
      "summary": "Capitals of the Americas",
      "lessons": [
        {
          "id": "am-capitals",
          "title": "Capitals",
          "cards": [
            {"id": "am-cap-br", "front": "Capital of Brazil", "back": "Brasilia"},
            {"id": "am-cap-ca", "front": "Capital of Canada", "back": "Ottawa"}
          ],
          "questions": [
            {
              "id": "am-cap-q1",
              "concept_id": "south-america",
              "prompt": "What is the capital of Brazil?",
              "correct_answer": "Brasilia",
              "related_card_ids": ["am-cap-br"]
            }
          ]
        }
      ]
    }
  ]
}`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "americas.json")
	if err := os.WriteFile(path, []byte(extraCourse), 0o644); err != nil {
		t.Fatal(err)
	}

	before := TotalCardCount()
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := TotalCardCount(); got != before+2 {
		t.Errorf("card count = %d, want %d", got, before+2)
	}
	if _, err := GetCard("am-cap-br"); err != nil {
		t.Errorf("loaded card not found: %v", err)
	}
	if got := LessonOfCard("am-cap-ca"); got != "am-capitals" {
		t.Errorf("LessonOfCard = %q, want am-capitals", got)
	}
}

func TestLoadFileRejectsBadShape(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name, body string
	}{
		{"not json", `{nope`},
		{"missing required fields", `{"modules": [{"title": "no id"}]}`},
		{"card without back", `{"modules": [{"id": "x", "title": "X", "lessons": [
			{"id": "x-l", "title": "L", "cards": [{"id": "x-c", "front": "f"}]}
		]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := LoadFile(path); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestLoadDirMissingIsNotError(t *testing.T) {
	if err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist")); err != nil {
		t.Errorf("missing dir should be ignored, got %v", err)
	}
}
