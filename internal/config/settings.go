package config

import "time"

// Roster source names accepted in RosterConfig.Source
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceSQLite  = "sqlite"
)

// PickerConfig tunes the dropdown picker
type PickerConfig struct {
	// HistoryCap is the maximum number of remembered selections
	HistoryCap int `yaml:"history_cap"`

	// BlurDelayMS is the delay between losing focus and closing the dropdown
	BlurDelayMS int `yaml:"blur_delay_ms"`

	// CancelCloseOnRefocus skips a pending close when focus returns before it fires
	CancelCloseOnRefocus bool `yaml:"cancel_close_on_refocus"`

	// MaxVisible is the number of dropdown rows shown at once
	MaxVisible int `yaml:"max_visible"`
}

// DefaultPickerConfig returns the default picker settings
func DefaultPickerConfig() PickerConfig {
	return PickerConfig{
		HistoryCap:  29,
		BlurDelayMS: 200,
		MaxVisible:  10,
	}
}

// BlurDelay returns BlurDelayMS as a duration
func (p PickerConfig) BlurDelay() time.Duration {
	return time.Duration(p.BlurDelayMS) * time.Millisecond
}

func (p *PickerConfig) applyDefaults() {
	defaults := DefaultPickerConfig()

	if p.HistoryCap < 1 {
		p.HistoryCap = defaults.HistoryCap
	}
	if p.BlurDelayMS < 1 {
		p.BlurDelayMS = defaults.BlurDelayMS
	}
	if p.MaxVisible < 1 {
		p.MaxVisible = defaults.MaxVisible
	}
}

// RosterConfig selects where the roster is loaded from
type RosterConfig struct {
	// Source is one of builtin, yaml or sqlite
	Source string `yaml:"source"`

	// Path is the YAML file or SQLite database for the yaml and sqlite sources.
	// An empty path with the sqlite source uses ~/.rosterpick/roster.db
	Path string `yaml:"path,omitempty"`
}

func (r *RosterConfig) applyDefaults() {
	if r.Source == "" {
		r.Source = SourceBuiltin
	}
}
