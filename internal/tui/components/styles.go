// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rosterpick/internal/config/colors"
	"github.com/thenoetrevino/rosterpick/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the app header
	TitleStyle lipgloss.Style

	// InputStyle frames the search input while it has focus
	InputStyle lipgloss.Style

	// InputBlurredStyle frames the search input without focus
	InputBlurredStyle lipgloss.Style

	// DropdownStyle frames the candidate list
	DropdownStyle lipgloss.Style

	// RowStyle renders an ordinary candidate row
	RowStyle lipgloss.Style

	// CursorRowStyle renders the candidate under the cursor
	CursorRowStyle lipgloss.Style

	// PanelStyle frames the selected, random and history panels
	PanelStyle lipgloss.Style

	// PanelTitleStyle renders panel headings
	PanelTitleStyle lipgloss.Style

	// SelectedStyle renders the selected item name
	SelectedStyle lipgloss.Style

	// RandomStyle renders the random pick name
	RandomStyle lipgloss.Style

	// SubtleStyle renders placeholders and hints
	SubtleStyle lipgloss.Style

	// NormalStyle renders body text
	NormalStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(colors)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	InputBlurredStyle = InputStyle.
		BorderForeground(lipgloss.Color(colors.InputBorder))

	DropdownStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.DropdownBorder)).
		Padding(0, 1)

	RowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	CursorRowStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.HighlightFg)).
		Background(lipgloss.Color(colors.HighlightBg))

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.PanelBorder)).
		Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Selected))

	RandomStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Random))

	SubtleStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colors.Subtle))

	NormalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)
}
