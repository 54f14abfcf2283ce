package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ruslanv/mnemo/internal/catalog"
	qz "github.com/ruslanv/mnemo/internal/quiz"
	"github.com/ruslanv/mnemo/internal/router"
	"github.com/ruslanv/mnemo/internal/screen"
	"github.com/ruslanv/mnemo/internal/screens/review"
	"github.com/ruslanv/mnemo/internal/session"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/ruslanv/mnemo/internal/ui/components"
	"github.com/ruslanv/mnemo/internal/ui/layout"
)

// savedMsg confirms the quiz summary was written to the store.
type savedMsg struct {
	Err error
}

// QuizScreen runs an adaptive quiz for one lesson.
type QuizScreen struct {
	st         *store.Store
	sched      srs.Scheduler
	sessionCfg session.Config
	lesson     catalog.Lesson

	engine   *qz.Engine
	input    components.TextInput
	mc       components.MultiChoice
	mcActive bool

	feedback *qz.AnswerResult
	saved    bool
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// NewQuiz creates a quiz screen over the lesson's question set.
func NewQuiz(st *store.Store, sched srs.Scheduler, sessionCfg session.Config, lesson catalog.Lesson) *QuizScreen {
	q := &QuizScreen{
		st:         st,
		sched:      sched,
		sessionCfg: sessionCfg,
		lesson:     lesson,
		engine:     qz.New(lesson.Questions, qz.DefaultConfig()),
	}
	q.setupAnswerWidget()
	return q
}

// setupAnswerWidget prepares the input for the current question: options
// render as multiple choice, open questions as a text field.
func (q *QuizScreen) setupAnswerWidget() {
	question := q.engine.CurrentQuestion()
	if question == nil {
		return
	}
	if len(question.Options) > 0 {
		q.mcActive = true
		correct := 0
		for i, opt := range question.Options {
			if qz.CheckAnswer(opt, question.CorrectAnswer) {
				correct = i
				break
			}
		}
		q.mc = components.NewMultiChoice(question.Prompt, question.Options, correct)
	} else {
		q.mcActive = false
		q.input = components.NewTextInput("Type your answer...", 60)
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.engine.IsComplete() {
		return q.saveSummary()
	}
	if !q.mcActive {
		return q.input.Init()
	}
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.feedback != nil:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case q.engine.IsComplete():
		hints := []layout.KeyHint{{Key: "Enter", Description: "Done"}}
		if len(q.engine.CardsForRelearning()) > 0 {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Study missed cards"}}, hints...)
		}
		return hints
	case q.mcActive:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
		}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
		}
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if !q.mcActive && q.feedback == nil && !q.engine.IsComplete() {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Feedback overlay: any key moves on.
	if q.feedback != nil {
		q.feedback = nil
		q.setupAnswerWidget()
		if q.engine.IsComplete() {
			return q, q.saveSummary()
		}
		if !q.mcActive {
			return q, q.input.Init()
		}
		return q, nil
	}

	if q.engine.IsComplete() {
		switch key {
		case "r", "R":
			missed := q.engine.CardsForRelearning()
			if len(missed) > 0 {
				st, sched, cfg := q.st, q.sched, q.sessionCfg
				return q, func() tea.Msg {
					return router.ReplaceScreenMsg{
						Screen: review.NewWithInjected(st, sched, cfg, missed),
					}
				}
			}
		case "enter", "esc":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	if key == "enter" {
		return q.submit()
	}

	if q.mcActive {
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		return q, cmd
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// submit grades the current answer and advances the engine.
func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	var answer string
	if q.mcActive {
		answer = q.mc.Value()
		q.mc.Submitted = true
		q.mc.ChosenIndex = q.mc.Selected
	} else {
		answer = q.input.Value()
		if answer == "" {
			return q, nil
		}
	}

	res := q.engine.SubmitAnswer(answer, time.Now())
	if res == nil {
		return q, nil
	}
	if !q.mcActive {
		q.input.Submit(res.Correct)
	}

	if !res.Correct {
		q.feedback = res
		return q, nil
	}

	q.setupAnswerWidget()
	if q.engine.IsComplete() {
		return q, q.saveSummary()
	}
	if !q.mcActive {
		return q, q.input.Init()
	}
	return q, nil
}

// saveSummary persists the quiz outcome once.
func (q *QuizScreen) saveSummary() tea.Cmd {
	if q.saved {
		return nil
	}
	q.saved = true

	st := q.st
	lessonID := q.lesson.ID
	summary := q.engine.Summary()
	return func() tea.Msg {
		err := st.Quizzes().Save(context.Background(), lessonID, summary, time.Now())
		return savedMsg{Err: err}
	}
}
