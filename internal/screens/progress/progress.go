package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/mastery"
	"github.com/ruslanv/mnemo/internal/router"
	"github.com/ruslanv/mnemo/internal/screen"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/ruslanv/mnemo/internal/ui/components"
	"github.com/ruslanv/mnemo/internal/ui/theme"
)

// loadedMsg carries the computed mastery rollup.
type loadedMsg struct {
	Overall mastery.OverallMastery
	Err     error
}

// ProgressScreen shows the mastery rollup for every module and lesson.
type ProgressScreen struct {
	st    *store.Store
	sched srs.Scheduler

	overall *mastery.OverallMastery
	errMsg  string
	scroll  int
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(st *store.Store, sched srs.Scheduler) *ProgressScreen {
	return &ProgressScreen{st: st, sched: sched}
}

func (p *ProgressScreen) Init() tea.Cmd {
	st, sched := p.st, p.sched
	return func() tea.Msg {
		overall, err := Compute(context.Background(), st, sched, time.Now())
		if err != nil {
			return loadedMsg{Err: err}
		}
		return loadedMsg{Overall: overall}
	}
}

// Compute derives the full mastery rollup from the store's card states and
// quiz history. Shared with the plain-text progress command.
func Compute(ctx context.Context, st *store.Store, sched srs.Scheduler, now time.Time) (mastery.OverallMastery, error) {
	states, err := st.Cards().Load(ctx)
	if err != nil {
		return mastery.OverallMastery{}, fmt.Errorf("load card states: %w", err)
	}
	quizProgress, err := st.Quizzes().AllProgress(ctx)
	if err != nil {
		return mastery.OverallMastery{}, fmt.Errorf("load quiz progress: %w", err)
	}

	agg := mastery.NewAggregator(sched)

	var modules []mastery.ModuleMastery
	for _, mod := range catalog.Modules() {
		var lessons []mastery.LessonMastery
		for _, lesson := range mod.Lessons {
			var lessonStates []srs.CardState
			for _, id := range lesson.CardIDs() {
				if cs, ok := states[id]; ok {
					lessonStates = append(lessonStates, cs)
				}
			}
			lessons = append(lessons, agg.CalculateLessonMastery(lesson, lessonStates, quizProgress[lesson.ID]))
		}
		modules = append(modules, agg.CalculateModuleMastery(mod.ID, lessons))
	}

	return agg.CalculateOverallMastery(modules), nil
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		overall := msg.Overall
		p.overall = &overall
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.scroll > 0 {
				p.scroll--
			}
		case "down", "j":
			p.scroll++
		case "enter", "esc", "q":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  Error: " + p.errMsg)
	}
	if p.overall == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Calculating mastery...")
	}

	var lines []string

	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Overall: ") +
		components.LevelBadge(p.overall.Level)
	lines = append(lines, "  "+header, "")

	for mi := range p.overall.Modules {
		mm := &p.overall.Modules[mi]
		mod, err := catalog.GetModule(mm.ModuleID)
		title := mm.ModuleID
		if err == nil {
			title = mod.Title
		}

		lines = append(lines, "  "+
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title)+
			"  "+components.LevelBadge(mm.Level))

		for _, lm := range mm.Lessons {
			lesson, err := catalog.GetLesson(lm.LessonID)
			lessonTitle := lm.LessonID
			if err == nil {
				lessonTitle = lesson.Title
			}

			bar := components.NewProgressBar("", lm.ReviewFraction, false, 24).View()
			detail := fmt.Sprintf("%d/%d learned", lm.StateCounts[srs.StateReview], lm.TotalCards)
			if lm.QuizAttempts > 0 {
				detail += fmt.Sprintf("  best quiz %.0f", lm.QuizScore)
			}

			lines = append(lines, fmt.Sprintf("    %-28s %s  %s  %s",
				lessonTitle,
				components.LevelBadge(lm.Level),
				bar,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "  "+lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press enter to go back"))

	// Simple scroll window.
	if p.scroll > len(lines)-1 {
		p.scroll = len(lines) - 1
	}
	visible := lines[p.scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}
	return strings.Join(visible, "\n")
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}
