package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ostrella/clockwise/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders the string in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Bold renders the string in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// StatePill renders a session state as a colored label.
func StatePill(state domain.SessionState) string {
	switch state {
	case domain.SessionActive:
		return StyleGreen.Render("● active")
	case domain.SessionWaiting:
		return StyleYellow.Render("◌ waiting")
	default:
		return StyleDim.Render("○ idle")
	}
}
