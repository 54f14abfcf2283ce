package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/ruslanv/mnemo/internal/mastery"
	"github.com/ruslanv/mnemo/internal/ui/theme"
)

// LevelBadge renders a colored mastery-level label.
func LevelBadge(level mastery.Level) string {
	color := theme.TextDim
	if int(level) < len(theme.LevelColors) {
		color = theme.LevelColors[int(level)]
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(level >= mastery.LevelProficient).
		Render(level.String())
}

// GradeBar renders the four grading choices for the review screen.
func GradeBar() string {
	render := func(key, label string, c color.Color) string {
		return lipgloss.NewStyle().Foreground(c).Bold(true).Render(key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}
	return render("1", "Again", theme.GradeAgain) + "    " +
		render("2", "Hard", theme.GradeHard) + "    " +
		render("3", "Good", theme.GradeGood) + "    " +
		render("4", "Easy", theme.GradeEasy)
}
