package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary accent color
		Accent: palette.lotusViolet4,

		// Background colors
		Background:      palette.lotusWhite0,
		PanelBackground: palette.lotusWhite2,

		// UI element colors
		InputBorder:    palette.lotusBlue4,
		DropdownBorder: palette.lotusGray3,
		PanelBorder:    palette.lotusGray3,
		HighlightFg:    palette.lotusInk1,
		HighlightBg:    palette.lotusWhite4,

		// Pick colors
		Selected: palette.lotusGreen,
		Random:   palette.lotusYellow,

		// Text colors
		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		// Notification colors
		InfoFg:    palette.lotusTeal1,
		InfoBg:    palette.lotusWhite2,
		WarningFg: palette.lotusYellow,
		WarningBg: palette.lotusWhite4,
		ErrorFg:   palette.lotusPink,
		ErrorBg:   palette.lotusWhite2,
	}
}
