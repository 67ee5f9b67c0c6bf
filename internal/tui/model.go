// Package tui renders the roster picker as a Bubble Tea program.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/rosterpick/internal/app"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/picker"
	"github.com/thenoetrevino/rosterpick/internal/tui/components"
	"github.com/thenoetrevino/rosterpick/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	// Selection is the picker state driven by this model
	Selection *picker.SelectionState

	UiState           *state.UIState
	NotificationState *state.NotificationState

	input textinput.Model
}

// InitialModel creates the TUI model and runs the picker's startup behaviour
func InitialModel(ctx context.Context, application *app.App) Model {
	cfg := application.Config
	components.InitStyles(cfg.ColorScheme)

	selection := application.NewSelectionState()
	selection.Mount()

	input := textinput.New()
	input.Placeholder = "Search the roster..."
	input.Prompt = "❯ "
	input.CharLimit = 64
	input.SetValue(selection.SearchTerm())

	return Model{
		Ctx:               ctx,
		App:               application,
		Config:            cfg,
		Selection:         selection,
		UiState:           state.NewUIState(cfg.Picker.MaxVisible),
		NotificationState: state.NewNotificationState(),
		input:             input,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// InputValue returns the text currently in the search input
func (m Model) InputValue() string {
	return m.input.Value()
}

// InputFocused returns whether the search input has focus
func (m Model) InputFocused() bool {
	return m.input.Focused()
}
