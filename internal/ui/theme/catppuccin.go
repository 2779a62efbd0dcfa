package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(0, 1)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Alert = lipgloss.NewStyle().Foreground(Base).Background(Peach).Bold(true).Padding(0, 1)
)

// ScoreColor grades a focus score: green from 80, yellow from 50, red below.
func ScoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return Green
	case score >= 50:
		return Yellow
	default:
		return Red
	}
}

// ClassColor colours an activity classification label.
func ClassColor(class string) lipgloss.Color {
	switch class {
	case "productive":
		return Green
	case "distractor":
		return Red
	default:
		return Subtext0
	}
}
