package tui

// Vertical layout, in terminal rows from the top of the screen.
// Mouse hit-testing relies on these matching what View renders.
const (
	headerHeight = 2 // title line + blank line
	inputHeight  = 3 // bordered single-line input
	inputTop     = headerHeight
	dropdownTop  = inputTop + inputHeight
	firstRowY    = dropdownTop + 1 // below the dropdown's top border

	maxBoxWidth = 48
	minBoxWidth = 16
)

// boxWidth is the outer width of the input and dropdown boxes
func boxWidth(termWidth int) int {
	return max(minBoxWidth, min(maxBoxWidth, termWidth-2))
}

// innerWidth is the text width inside a bordered, padded box
func innerWidth(termWidth int) int {
	return boxWidth(termWidth) - 4
}

// rowAt maps a screen row to an index into FilteredItems.
// Returns false if the row is not a visible dropdown row.
func (m Model) rowAt(y int) (int, bool) {
	if !m.Selection.IsDropdownOpen() {
		return 0, false
	}

	total := len(m.Selection.FilteredItems())
	start := m.UiState.WindowStart(m.Selection.Cursor(), total)
	visible := min(m.UiState.MaxVisible(), total-start)

	row := y - firstRowY
	if row < 0 || row >= visible {
		return 0, false
	}
	return start + row, true
}

// inInput reports whether y falls on the search input box
func inInput(y int) bool {
	return y >= inputTop && y < inputTop+inputHeight
}
