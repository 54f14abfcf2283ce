package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/ui/components"
	"github.com/ruslanv/mnemo/internal/ui/theme"
)

func (r *ReviewScreen) View(width, height int) string {
	switch {
	case r.errMsg != "":
		return renderError(width, r.errMsg)
	case r.engine == nil:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Building your session...")
	case r.quitConfirm:
		return renderQuitConfirm(width)
	case r.finished:
		return r.renderSummary(width, height)
	default:
		return r.renderCard(width, height)
	}
}

func (r *ReviewScreen) renderCard(width, height int) string {
	current := r.engine.Current()
	if current == nil {
		return ""
	}

	var b strings.Builder

	// Position line.
	done := r.engine.TotalCards() - r.engine.Remaining()
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Card %d/%d", done+1, r.engine.TotalCards()))
	var tag string
	if current.IsNew {
		tag = lipgloss.NewStyle().Foreground(theme.Accent).Render("new card")
	} else {
		tag = lipgloss.NewStyle().Foreground(theme.TextDim).Render(current.Memory.State.String())
	}
	pad := width - lipgloss.Width(left) - lipgloss.Width(tag) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + tag)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 70)

	front := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(current.Card.Front))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, front))
	b.WriteString("\n\n")

	if !r.revealed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press space to show the answer"))
		return b.String()
	}

	answer := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(current.Card.Back)
	if current.Card.Notes != "" {
		answer += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(current.Card.Notes)
	}
	back := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(answer)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, back))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.GradeBar()))

	return b.String()
}

func (r *ReviewScreen) renderSummary(width, height int) string {
	stats := r.engine.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete"))
	b.WriteString("\n\n")

	if stats.TotalReviewed == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nothing due right now. Come back later!"))
		return b.String()
	}

	row := func(label, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Width(22).Render(label) +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	}

	lines := []string{
		row("Cards reviewed", fmt.Sprintf("%d", stats.TotalReviewed)),
		row("New cards", fmt.Sprintf("%d", stats.NewStudied)),
		row("Again / Hard", fmt.Sprintf("%d / %d", stats.AgainCount, stats.HardCount)),
		row("Good / Easy", fmt.Sprintf("%d / %d", stats.GoodCount, stats.EasyCount)),
	}
	if stats.ReviewStudied > 0 {
		lines = append(lines, row("Retention", fmt.Sprintf("%.0f%%", stats.RetentionRate*100)))
	}
	if stats.AverageTimeMs > 0 {
		lines = append(lines, row("Avg time per card", fmt.Sprintf("%.1fs", float64(stats.AverageTimeMs)/1000)))
	}

	block := strings.Join(lines, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press enter to go back"))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Ratings so far are already saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
