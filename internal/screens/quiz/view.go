package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.errMsg != "":
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", q.errMsg))
	case q.feedback != nil:
		return q.renderFeedback(width)
	case q.engine.IsComplete():
		return q.renderSummary(width)
	default:
		return q.renderQuestion(width)
	}
}

func (q *QuizScreen) renderQuestion(width int) string {
	question := q.engine.CurrentQuestion()
	if question == nil {
		return ""
	}

	var b strings.Builder

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.lesson.Title)
	var roundTag string
	if q.engine.Round() > 0 {
		roundTag = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("retry round %d", q.engine.Round()))
	}
	pad := width - lipgloss.Width(left) - lipgloss.Width(roundTag) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + roundTag)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.mc.View()))
	} else {
		prompt := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(question.Prompt)
		b.WriteString(prompt)
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + q.input.View()))
	}

	return b.String()
}

func (q *QuizScreen) renderFeedback(width int) string {
	fb := q.feedback

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Not quite"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Correct answer: %s", fb.CorrectAnswer)))
	b.WriteString("\n\n")

	if fb.Feedback != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fb.Feedback))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (q *QuizScreen) renderSummary(width int) string {
	s := q.engine.Summary()

	var b strings.Builder
	b.WriteString("\n")

	headline := "Quiz complete"
	color := theme.Primary
	if s.Passed {
		headline = "Passed!"
		color = theme.Success
	} else if s.TotalQuestions > 0 {
		headline = "Keep practicing"
		color = theme.Accent
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(color).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	row := func(label, value string) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Width(22).Render(label) +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	}
	lines := []string{
		row("First attempt", fmt.Sprintf("%.0f", s.FirstAttemptScore)),
		row("Final score", fmt.Sprintf("%.0f", s.FinalScore)),
		row("Band", string(s.Band)),
		row("Rounds played", fmt.Sprintf("%d", s.RoundsPlayed)),
	}
	if len(s.MissedConceptIDs) > 0 {
		lines = append(lines, row("Concepts to revisit", strings.Join(s.MissedConceptIDs, ", ")))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	if cards := q.engine.CardsForRelearning(); len(cards) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d card(s) flagged for re-study. Press R to review them now.", len(cards))))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press enter to go back"))

	return b.String()
}
