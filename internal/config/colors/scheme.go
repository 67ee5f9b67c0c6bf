package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the focused input, titles, highlights)
	Accent string `yaml:"accent"`

	// Background colors
	Background      string `yaml:"background"`
	PanelBackground string `yaml:"panel_background"`

	// UI element colors
	InputBorder    string `yaml:"input_border"`
	DropdownBorder string `yaml:"dropdown_border"`
	PanelBorder    string `yaml:"panel_border"`
	HighlightFg    string `yaml:"highlight_fg"` // Row under the cursor
	HighlightBg    string `yaml:"highlight_bg"`

	// Pick colors
	Selected string `yaml:"selected"`
	Random   string `yaml:"random"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// Presets lists the names accepted by GetPreset
var Presets = []string{"default", "monochrome", "wave", "dragon", "lotus"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// fields returns pointers to every color field, preset excluded
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Background, &c.PanelBackground,
		&c.InputBorder, &c.DropdownBorder, &c.PanelBorder, &c.HighlightFg, &c.HighlightBg,
		&c.Selected, &c.Random,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	base := preset.fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}

// MergeFrom overrides colors with the non-empty values of other.
// A different preset in other replaces the base before its overrides are applied.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	src := other.fields()
	for i, f := range c.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}
