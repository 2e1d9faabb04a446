package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// ShortID truncates a UUID for display.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// Timestamp formats a unix-millisecond timestamp for display, or the none
// sentinel when zero.
func Timestamp(ms int64) string {
	if ms == 0 {
		return None
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// None is the display sentinel for absent values.
const None = "—"
