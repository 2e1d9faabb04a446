package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nolimit-nexus/nexus/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the style for a 1-10 score value.
func ScoreColor(score int) lipgloss.Style {
	switch {
	case score >= 7:
		return StyleGreen
	case score >= 4:
		return StyleYellow
	default:
		return StyleRed
	}
}

// PhaseColor returns the style a roadmap phase renders in.
func PhaseColor(p domain.Phase) lipgloss.Style {
	switch p {
	case domain.PhaseFoundation:
		return StyleBlue
	case domain.PhaseValidation:
		return StyleYellow
	case domain.PhaseSales:
		return StyleGreen
	case domain.PhaseSystemization:
		return StylePurple
	default:
		return StyleDim
	}
}

// CheckMark returns a colored done/todo indicator.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}
