package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

// DropdownProps describes the visible part of the candidate list
type DropdownProps struct {
	Items      []models.Item
	Cursor     int
	Start      int
	MaxVisible int
	Width      int
}

// RenderDropdown renders the candidate list, one item per line.
// Width is the inner text width; names longer than it are truncated.
func RenderDropdown(props DropdownProps) string {
	if len(props.Items) == 0 {
		return DropdownStyle.Render(SubtleStyle.Render(Truncate("No matches", props.Width)))
	}

	end := min(props.Start+props.MaxVisible, len(props.Items))
	rows := make([]string, 0, end-props.Start)
	for i := props.Start; i < end; i++ {
		name := Truncate(props.Items[i].Name, props.Width)
		// Pad so the cursor highlight spans the whole row
		name += strings.Repeat(" ", max(0, props.Width-lipgloss.Width(name)))
		if i == props.Cursor {
			rows = append(rows, CursorRowStyle.Render(name))
		} else {
			rows = append(rows, RowStyle.Render(name))
		}
	}

	return DropdownStyle.Render(strings.Join(rows, "\n"))
}

// Truncate shortens s to width cells, ending in an ellipsis when cut.
func Truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
