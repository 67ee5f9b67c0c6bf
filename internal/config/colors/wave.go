package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		// Primary accent color
		Accent: palette.oniViolet,

		// Background colors
		Background:      palette.sumiInk1,
		PanelBackground: palette.sumiInk2,

		// UI element colors
		InputBorder:    palette.crystalBlue,
		DropdownBorder: palette.sumiInk6,
		PanelBorder:    palette.sumiInk6,
		HighlightFg:    palette.fujiWhite,
		HighlightBg:    palette.waveBlue1,

		// Pick colors
		Selected: palette.springGreen,
		Random:   palette.carpYellow,

		// Text colors
		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		// Notification colors
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,
	}
}
