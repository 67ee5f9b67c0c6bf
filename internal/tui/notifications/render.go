package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rosterpick/internal/tui/state"
)

// FromLevel maps a notification level to its severity
func FromLevel(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	// Icon + message on single line
	content := style.icon + " " + message

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(FromLevel(n.Level), n.Message)
}
