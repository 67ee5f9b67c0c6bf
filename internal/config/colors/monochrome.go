package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Background
		Background:      "#121212",
		PanelBackground: "#1C1C1C",

		// UI elements
		InputBorder:    "#FFFFFF",
		DropdownBorder: "#585858",
		PanelBorder:    "#FFFFFF",
		HighlightFg:    "#121212",
		HighlightBg:    "#D0D0D0",

		// Picks
		Selected: "#FFFFFF",
		Random:   "#FFFFFF",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
