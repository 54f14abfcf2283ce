package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/catalog"
	"github.com/ruslanv/mnemo/internal/router"
	"github.com/ruslanv/mnemo/internal/screen"
	"github.com/ruslanv/mnemo/internal/session"
	"github.com/ruslanv/mnemo/internal/srs"
	"github.com/ruslanv/mnemo/internal/store"
	"github.com/ruslanv/mnemo/internal/ui/components"
	"github.com/ruslanv/mnemo/internal/ui/theme"
)

// PickerScreen lists lessons with questions and starts a quiz on selection.
type PickerScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)

// NewPicker creates the lesson picker for quizzes.
func NewPicker(st *store.Store, sched srs.Scheduler, cfg session.Config) *PickerScreen {
	var items []components.MenuItem
	for _, mod := range catalog.Modules() {
		for _, lesson := range mod.Lessons {
			if len(lesson.Questions) == 0 {
				continue
			}
			l := lesson
			items = append(items, components.MenuItem{
				Label:  fmt.Sprintf("%s: %s", mod.Title, l.Title),
				Detail: fmt.Sprintf("%d questions", len(l.Questions)),
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.ReplaceScreenMsg{
							Screen: NewQuiz(st, sched, cfg, l),
						}
					}
				},
			})
		}
	}
	return &PickerScreen{menu: components.NewMenu(items)}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) View(width, height int) string {
	if len(p.menu.Items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No lessons with questions available.")
	}

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Pick a lesson to quiz")

	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, p.menu.View())
	return "\n" + title + "\n\n" + body
}

func (p *PickerScreen) Title() string {
	return "Quiz"
}
