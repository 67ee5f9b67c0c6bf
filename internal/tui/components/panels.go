package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

// PanelProps describes a titled box
type PanelProps struct {
	Title string
	Body  string
	Width int
}

// RenderPanel renders a titled, bordered panel
func RenderPanel(props PanelProps) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		PanelTitleStyle.Render(props.Title),
		props.Body,
	)
	return PanelStyle.Width(props.Width).Render(content)
}

// RenderPick renders a single picked item, or a placeholder if there is none
func RenderPick(item models.Item, ok bool, style lipgloss.Style, width int) string {
	if !ok {
		return SubtleStyle.Render("none")
	}
	return style.Render(Truncate(item.Name, width))
}

// RenderHistory renders the history as a numbered list, most recent first.
// At most maxRows lines are shown; the remainder is summarised.
func RenderHistory(history []models.Item, width, maxRows int) string {
	if len(history) == 0 {
		return SubtleStyle.Render("No selections yet")
	}

	shown := history
	if maxRows > 0 && len(history) > maxRows {
		shown = history[:maxRows-1]
	}

	lines := make([]string, 0, len(shown)+1)
	for i, item := range shown {
		prefix := fmt.Sprintf("%2d. ", i+1)
		lines = append(lines, NormalStyle.Render(prefix+Truncate(item.Name, width-len(prefix))))
	}
	if len(shown) < len(history) {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("    +%d more", len(history)-len(shown))))
	}
	return strings.Join(lines, "\n")
}
