package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: palette.dragonViolet,

		Background:      palette.dragonBlack1,
		PanelBackground: palette.dragonBlack3,

		// UI element colors
		InputBorder:    palette.dragonBlue2,
		DropdownBorder: palette.dragonBlack6,
		PanelBorder:    palette.dragonBlack6,
		HighlightFg:    palette.dragonWhite,
		HighlightBg:    palette.dragonBlack4,

		// Pick colors
		Selected: palette.dragonGreen2,
		Random:   palette.dragonYellow,

		// Text colors
		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		// Notification colors
		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,
	}
}
