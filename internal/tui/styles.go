package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLogo renders the "D E C K H A N D" wordmark centered in width.
func renderLogo(width int) string {
	const text = "DECKHAND"
	letters := make([]string, 0, len(text))
	for _, r := range text {
		letters = append(letters, string(r))
	}
	logo := logoStyle.Render(strings.Join(letters, " "))
	pad := (width - lipgloss.Width(logo)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + logo
}

var (
	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5aa2e8")).
			Bold(true)

	// Base styles, slate palette with a steel-blue accent
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5aa2e8"))

	// statusStyle renders transient confirmations ("saved", "copied!").
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5aa2e8")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))
)

// helpEntry renders one "key label" pair for the help bar.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
