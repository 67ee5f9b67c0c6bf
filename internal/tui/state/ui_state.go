// Package state holds TUI-only state that sits beside the picker's SelectionState.
package state

// UIState manages the user interface state.
// This includes terminal dimensions, the help overlay and the dropdown scroll window.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// showHelp indicates whether the help overlay is displayed
	showHelp bool

	// maxVisible is the number of dropdown rows shown at once
	maxVisible int

	// refocusOnReturn records that the input had focus when the terminal lost it
	refocusOnReturn bool
}

// NewUIState creates a new UIState with default values.
func NewUIState(maxVisible int) *UIState {
	if maxVisible < 1 {
		maxVisible = 1
	}
	return &UIState{
		maxVisible: maxVisible,
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ShowHelp returns whether the help overlay is displayed.
func (s *UIState) ShowHelp() bool {
	return s.showHelp
}

// ToggleHelp shows or hides the help overlay.
func (s *UIState) ToggleHelp() {
	s.showHelp = !s.showHelp
}

// SetShowHelp sets whether the help overlay is displayed.
func (s *UIState) SetShowHelp(show bool) {
	s.showHelp = show
}

// MaxVisible returns the number of dropdown rows shown at once.
func (s *UIState) MaxVisible() int {
	return s.maxVisible
}

// RefocusOnReturn returns whether the input should regain focus with the terminal.
func (s *UIState) RefocusOnReturn() bool {
	return s.refocusOnReturn
}

// SetRefocusOnReturn records whether the input should regain focus with the terminal.
func (s *UIState) SetRefocusOnReturn(v bool) {
	s.refocusOnReturn = v
}

// WindowStart returns the index of the first visible dropdown row
// so that cursor stays inside a window of MaxVisible rows.
func (s *UIState) WindowStart(cursor, total int) int {
	if total <= s.maxVisible || cursor < s.maxVisible {
		return 0
	}
	start := cursor - s.maxVisible + 1
	if start > total-s.maxVisible {
		start = total - s.maxVisible
	}
	return start
}
