package home

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/router"
	"github.com/ruslanv/mnemo/internal/screen"
	"github.com/ruslanv/mnemo/internal/screens/progress"
	"github.com/ruslanv/mnemo/internal/screens/quiz"
	"github.com/ruslanv/mnemo/internal/screens/review"
	"github.com/ruslanv/mnemo/internal/session"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/ruslanv/mnemo/internal/ui/components"
	"github.com/ruslanv/mnemo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	st    *store.Store
	sched srs.Scheduler
	cfg   session.Config

	menu  components.Menu
	stats homeStats
}

type homeStats struct {
	dueCards     int
	newCards     int
	totalCards   int
	studiedToday int
	loaded       bool
	err          error
}

type statsMsg homeStats

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with its study menu.
func New(st *store.Store, sched srs.Scheduler, cfg session.Config) *HomeScreen {
	h := &HomeScreen{st: st, sched: sched, cfg: cfg}

	items := []components.MenuItem{
		{Label: "REVIEW CARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(st, sched, cfg)}
			}
		}},
		{Label: "TAKE A QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.NewPicker(st, sched, cfg)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(st, sched)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// loadStats counts due/new cards and today's reviews off the UI loop.
func (h *HomeScreen) loadStats() tea.Cmd {
	st, sched := h.st, h.sched
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		states, err := st.Cards().Load(ctx)
		if err != nil {
			return statsMsg{err: err}
		}

		due, fresh := session.BuildPools(catalog.AllCards(), states, sched, now)

		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		studied, err := st.Reviews().CountSince(ctx, midnight)
		if err != nil {
			return statsMsg{err: err}
		}

		return statsMsg{
			dueCards:     len(due),
			newCards:     len(fresh),
			totalCards:   catalog.TotalCardCount(),
			studiedToday: studied,
			loaded:       true,
		}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		h.stats = homeStats(msg)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("M N E M O")
	subtitle := theme.Subtitle.Width(width).Render("spaced-repetition geography tutor")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats(width))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats(width int) string {
	if h.stats.err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("stats unavailable: " + h.stats.err.Error())
	}
	if !h.stats.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("loading...")
	}

	stat := func(n int, label string, c color.Color) string {
		return lipgloss.NewStyle().Foreground(c).Bold(true).Render(fmt.Sprintf("%d", n)) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}
	line := stat(h.stats.dueCards, "due", theme.Accent) + "    " +
		stat(h.stats.newCards, "new", theme.Primary) + "    " +
		stat(h.stats.studiedToday, "studied today", theme.Secondary) + "    " +
		stat(h.stats.totalCards, "cards total", theme.TextDim)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
