package components

import (
	"strings"

	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// info on the right. A non-empty flash replaces the info in accent color.
func RenderStatusBar(width int, hints, info, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	flashStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	left := " " + hints
	right := info + " "
	if flash != "" {
		right = flashStyle.Render(flash + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
