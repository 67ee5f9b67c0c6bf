// Package theme exposes the active color scheme to the TUI.
package theme

import "github.com/thenoetrevino/rosterpick/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Preset         string
	Highlight      string
	Background     string
	PanelBg        string
	InputBorder    string
	DropdownBorder string
	PanelBorder    string
	CursorFg       string
	CursorBg       string
	Selected       string
	Random         string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Preset = colors.Preset
	Highlight = colors.Accent
	Background = colors.Background
	PanelBg = colors.PanelBackground
	InputBorder = colors.InputBorder
	DropdownBorder = colors.DropdownBorder
	PanelBorder = colors.PanelBorder
	CursorFg = colors.HighlightFg
	CursorBg = colors.HighlightBg
	Selected = colors.Selected
	Random = colors.Random
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}

// IsLight reports whether the active preset has a light background
func IsLight() bool {
	return Preset == "lotus"
}
