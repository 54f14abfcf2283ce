package review

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/router"
	"github.com/ruslanv/mnemo/internal/screen"
	"github.com/ruslanv/mnemo/internal/session"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/ruslanv/mnemo/internal/ui/layout"
)

// ReviewScreen runs one review session: flip, grade, repeat.
type ReviewScreen struct {
	st    *store.Store
	sched srs.Scheduler
	cfg   session.Config

	// inject holds card IDs flagged by a quiz for immediate re-study; they
	// are spliced into the queue even when not due.
	inject []string

	engine      *session.Engine
	revealed    bool
	finished    bool
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen over every due and new card in the catalog.
func New(st *store.Store, sched srs.Scheduler, cfg session.Config) *ReviewScreen {
	return &ReviewScreen{st: st, sched: sched, cfg: cfg}
}

// NewWithInjected creates a review screen that additionally splices the
// given cards into the session queue, due or not. Used by the quiz summary
// to hand missed cards straight to a review session.
func NewWithInjected(st *store.Store, sched srs.Scheduler, cfg session.Config, cardIDs []string) *ReviewScreen {
	return &ReviewScreen{st: st, sched: sched, cfg: cfg, inject: cardIDs}
}

func (r *ReviewScreen) Init() tea.Cmd {
	return r.buildSession()
}

// buildSession loads card states and assembles the session queue.
func (r *ReviewScreen) buildSession() tea.Cmd {
	st, sched, cfg, inject := r.st, r.sched, r.cfg, r.inject
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		states, err := st.Cards().Load(ctx)
		if err != nil {
			return initDoneMsg{Err: fmt.Errorf("load card states: %w", err)}
		}

		due, fresh := session.BuildPools(catalog.AllCards(), states, sched, now)
		engine := session.NewEngine(sched, due, fresh, cfg)

		if len(inject) > 0 {
			queued := make(map[string]bool, engine.TotalCards())
			for _, sc := range engine.Queue() {
				queued[sc.Card.ID] = true
			}

			var extra []session.SessionCard
			for _, id := range inject {
				if queued[id] {
					continue
				}
				card, err := catalog.GetCard(id)
				if err != nil {
					continue
				}
				sc := session.SessionCard{Card: card}
				if cs, ok := states[id]; ok {
					sc.Memory = cs
				} else {
					sc.Memory = sched.NewCard(id, now)
					sc.IsNew = true
				}
				extra = append(extra, sc)
				queued[id] = true
			}
			engine.AddCards(extra)
		}

		return initDoneMsg{Engine: engine}
	}
}

func (r *ReviewScreen) Title() string {
	return "Review"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	switch {
	case r.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case r.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case r.finished:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	case r.revealed:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Grade"},
			{Key: "Esc", Description: "End early"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Show answer"},
			{Key: "Esc", Description: "End early"},
		}
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case initDoneMsg:
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		r.engine = msg.Engine
		if !r.engine.HasNext() {
			r.finished = true
		}
		return r, nil

	case persistedMsg:
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
		}
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	return r, nil
}

func (r *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if r.errMsg != "" {
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if r.engine == nil {
		return r, nil
	}

	if r.quitConfirm {
		switch key {
		case "y", "Y":
			r.quitConfirm = false
			r.finished = true
		case "n", "N", "esc":
			r.quitConfirm = false
		}
		return r, nil
	}

	if r.finished {
		if key == "enter" || key == "esc" || key == "q" {
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return r, nil
	}

	if key == "esc" {
		r.quitConfirm = true
		return r, nil
	}

	if !r.revealed {
		if key == "space" || key == "enter" || key == " " {
			r.revealed = true
		}
		return r, nil
	}

	var grade srs.Grade
	switch key {
	case "1":
		grade = srs.GradeAgain
	case "2":
		grade = srs.GradeHard
	case "3":
		grade = srs.GradeGood
	case "4":
		grade = srs.GradeEasy
	default:
		return r, nil
	}
	return r.rate(grade)
}

// rate grades the current card and persists the outcome.
func (r *ReviewScreen) rate(grade srs.Grade) (screen.Screen, tea.Cmd) {
	result, err := r.engine.RateCurrent(grade, time.Now())
	if err != nil {
		r.errMsg = err.Error()
		return r, nil
	}
	if result == nil {
		r.finished = true
		return r, nil
	}

	r.revealed = false
	if !r.engine.HasNext() {
		r.finished = true
	}

	st := r.st
	res := *result
	return r, func() tea.Msg {
		ctx := context.Background()
		if err := st.Cards().Save(ctx, res.Memory, res.RatedAt); err != nil {
			return persistedMsg{Err: err}
		}
		if err := st.Reviews().Append(ctx, res.Log, res.ResponseMs); err != nil {
			return persistedMsg{Err: err}
		}
		return persistedMsg{}
	}
}
