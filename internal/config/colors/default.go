package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background:      "#1C1C1C",
		PanelBackground: "#262626",

		// UI elements
		InputBorder:    "#5F87D7",
		DropdownBorder: "#585858",
		PanelBorder:    "#5F87D7",
		HighlightFg:    "#FFFFFF",
		HighlightBg:    "#3A3A3A",

		// Picks
		Selected: "#5FD75F",
		Random:   "#FFD700",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
