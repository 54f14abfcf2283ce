package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/router"
	"github.com/ruslanv/mnemo/internal/screen"
	"github.com/ruslanv/mnemo/internal/screens/home"
	"github.com/ruslanv/mnemo/internal/screens/progress"
	"github.com/ruslanv/mnemo/internal/screens/quiz"
	"github.com/ruslanv/mnemo/internal/screens/review"
	"github.com/ruslanv/mnemo/internal/session"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/ruslanv/mnemo/internal/ui/layout"
)

// Options carries the dependencies and start screen for the TUI.
type Options struct {
	Store     *store.Store
	Scheduler srs.Scheduler
	Config    session.Config

	// StartScreen selects the initial screen: "home", "review", "quiz",
	// or "progress". Empty means home.
	StartScreen string
}

// headerStatsMsg refreshes the due/retention counters in the header.
type headerStatsMsg layout.HeaderStats

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	stats  layout.HeaderStats
	width  int
	height int
}

// newAppModel creates the root model with the requested initial screen.
func newAppModel(opts Options) AppModel {
	var initial screen.Screen
	switch opts.StartScreen {
	case "review":
		initial = review.New(opts.Store, opts.Scheduler, opts.Config)
	case "quiz":
		initial = quiz.NewPicker(opts.Store, opts.Scheduler, opts.Config)
	case "progress":
		initial = progress.New(opts.Store, opts.Scheduler)
	default:
		initial = home.New(opts.Store, opts.Scheduler, opts.Config)
	}
	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		m.loadHeaderStats(),
	)
}

// loadHeaderStats computes the due count and recent retention off the UI loop.
func (m AppModel) loadHeaderStats() tea.Cmd {
	st, sched := m.opts.Store, m.opts.Scheduler
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		var stats layout.HeaderStats
		states, err := st.Cards().Load(ctx)
		if err != nil {
			return headerStatsMsg(stats)
		}
		due, _ := session.BuildPools(catalog.AllCards(), states, sched, now)
		stats.DueCards = len(due)

		retention, err := st.Reviews().RetentionSince(ctx, now.AddDate(0, 0, -30))
		if err == nil {
			stats.Retention = retention
		}
		return headerStatsMsg(stats)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.stats = layout.HeaderStats(msg)
		return m, nil

	case router.PopScreenMsg:
		// Counters can change while a session or quiz screen is up.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadHeaderStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
