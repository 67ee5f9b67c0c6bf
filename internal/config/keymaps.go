package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Dropdown navigation
	NextItem   string `yaml:"next_item"`
	PrevItem   string `yaml:"prev_item"`
	SelectItem string `yaml:"select_item"`

	// Input
	ToggleFocus string `yaml:"toggle_focus"`

	// Picks
	RandomPick   string `yaml:"random_pick"`
	AcceptRandom string `yaml:"accept_random"`
	ClearHistory string `yaml:"clear_history"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings.
// Printable keys go to the search input, so every default is a named or ctrl key.
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Dropdown navigation
		NextItem:   "down",
		PrevItem:   "up",
		SelectItem: "enter",

		// Input
		ToggleFocus: "tab",

		// Picks
		RandomPick:   "ctrl+r",
		AcceptRandom: "ctrl+o",
		ClearHistory: "ctrl+x",

		// Other
		ShowHelp: "f1",
		Quit:     "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.SelectItem == "" {
		k.SelectItem = defaults.SelectItem
	}
	if k.ToggleFocus == "" {
		k.ToggleFocus = defaults.ToggleFocus
	}
	if k.RandomPick == "" {
		k.RandomPick = defaults.RandomPick
	}
	if k.AcceptRandom == "" {
		k.AcceptRandom = defaults.AcceptRandom
	}
	if k.ClearHistory == "" {
		k.ClearHistory = defaults.ClearHistory
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
