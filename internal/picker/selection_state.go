// Package picker holds the filtering, selection and history state behind the roster dropdown.
package picker

import (
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/rosterpick/internal/models"
)

// PendingClose describes a dropdown close scheduled by OnInputBlur.
// The caller is responsible for waiting Delay and then passing it to ApplyClose.
type PendingClose struct {
	// Delay is how long to wait before applying the close
	Delay time.Duration

	seq uint64
}

// SelectionState manages the searchable dropdown state.
// This includes the search text, dropdown visibility, the selected item,
// a separately tracked random pick and a capped most-recent-first history.
//
// SelectionState is not safe for concurrent use. It is meant to be driven
// from a single event loop such as a Bubble Tea Update function.
type SelectionState struct {
	// roster is the fixed, ordered list of selectable items
	roster []models.Item

	// searchTerm is the current text input value
	searchTerm string

	// dropdownOpen indicates whether the candidate list is visible
	dropdownOpen bool

	// selected is the last item chosen through SelectItem
	selected    models.Item
	hasSelected bool

	// random is the last item chosen through SelectRandomItem
	random    models.Item
	hasRandom bool

	// history holds recent selections, most recent first, unique by ID
	history []models.Item

	// cursor is the highlighted position in the candidate list
	cursor int

	// focusSeq is bumped on every focus so stale closes can be detected
	focusSeq uint64

	opts options
}

// NewSelectionState creates a SelectionState over a copy of the given roster.
// History starts empty and nothing is selected; call Mount to run startup behaviour.
func NewSelectionState(roster []models.Item, opts ...Option) *SelectionState {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &SelectionState{
		roster:  slices.Clone(roster),
		history: []models.Item{},
		opts:    o,
	}
}

// Roster returns the fixed roster in its original order.
func (s *SelectionState) Roster() []models.Item {
	return slices.Clone(s.roster)
}

// SearchTerm returns the current search text.
func (s *SelectionState) SearchTerm() string {
	return s.searchTerm
}

// SetSearchTerm sets the search text and keeps the cursor inside the candidate list.
func (s *SelectionState) SetSearchTerm(term string) {
	s.searchTerm = term
	s.clampCursor()
}

// IsDropdownOpen returns whether the dropdown is open.
func (s *SelectionState) IsDropdownOpen() bool {
	return s.dropdownOpen
}

// SelectedItem returns the selected item, if any.
func (s *SelectionState) SelectedItem() (models.Item, bool) {
	return s.selected, s.hasSelected
}

// RandomItem returns the last random pick, if any.
func (s *SelectionState) RandomItem() (models.Item, bool) {
	return s.random, s.hasRandom
}

// History returns a copy of the selection history, most recent first.
func (s *SelectionState) History() []models.Item {
	return slices.Clone(s.history)
}

// HistoryCap returns the maximum history length.
func (s *SelectionState) HistoryCap() int {
	return s.opts.historyCap
}

// BlurDelay returns the delay applied between blur and close.
func (s *SelectionState) BlurDelay() time.Duration {
	return s.opts.blurDelay
}

// FilteredItems returns the candidate list.
// Items already in the history are excluded. If the trimmed search term is empty
// the remaining roster is returned as is, otherwise only items whose name contains
// the term (case-insensitive) are kept. Roster order is preserved.
func (s *SelectionState) FilteredItems() []models.Item {
	recent := make(map[int]struct{}, len(s.history))
	for _, item := range s.history {
		recent[item.ID] = struct{}{}
	}

	term := strings.ToLower(strings.TrimSpace(s.searchTerm))
	filtered := make([]models.Item, 0, len(s.roster))
	for _, item := range s.roster {
		if _, ok := recent[item.ID]; ok {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(item.Name), term) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SelectItem selects an item, copies its name into the search text,
// closes the dropdown and records it at the front of the history.
// The history stays unique by ID and is truncated to the history cap.
func (s *SelectionState) SelectItem(item models.Item) {
	s.selected = item
	s.hasSelected = true
	s.searchTerm = item.Name
	s.dropdownOpen = false

	next := make([]models.Item, 0, min(len(s.history)+1, s.opts.historyCap))
	next = append(next, item)
	for _, prev := range s.history {
		if len(next) == s.opts.historyCap {
			break
		}
		if prev.ID != item.ID {
			next = append(next, prev)
		}
	}
	s.history = next
	s.clampCursor()

	slog.Debug("item selected", "id", item.ID, "name", item.Name, "history_len", len(s.history))
}

// ClearHistory empties the selection history.
func (s *SelectionState) ClearHistory() {
	s.history = []models.Item{}
	s.clampCursor()
	slog.Debug("selection history cleared")
}

// OnInputFocus opens the dropdown.
func (s *SelectionState) OnInputFocus() {
	s.dropdownOpen = true
	s.focusSeq++
}

// OnInputBlur schedules the dropdown to close after the blur delay.
// The dropdown is left open; the returned PendingClose must be handed to
// ApplyClose once the delay has elapsed. The delay leaves room for a click
// on a dropdown row to land before the row disappears.
func (s *SelectionState) OnInputBlur() PendingClose {
	return PendingClose{
		Delay: s.opts.blurDelay,
		seq:   s.focusSeq,
	}
}

// ApplyClose closes the dropdown for a close scheduled by OnInputBlur.
// Returns true if the dropdown was closed. A close is only skipped when
// WithCancelCloseOnRefocus is enabled and focus returned after the blur.
func (s *SelectionState) ApplyClose(p PendingClose) bool {
	if s.opts.cancelCloseOnRefocus && p.seq != s.focusSeq {
		return false
	}
	s.dropdownOpen = false
	return true
}

// GetRandomID returns the ID of a roster item chosen uniformly at random.
// Returns false if the roster is empty.
func (s *SelectionState) GetRandomID() (int, bool) {
	if len(s.roster) == 0 {
		return 0, false
	}

	var idx int
	if s.opts.rng != nil {
		idx = s.opts.rng.IntN(len(s.roster))
	} else {
		idx = rand.IntN(len(s.roster))
	}
	return s.roster[idx].ID, true
}

// SelectRandomItem picks a random roster item and stores it as the random item.
// The selected item, search text and history are left untouched.
// Returns false (and clears the random item) if the roster is empty.
func (s *SelectionState) SelectRandomItem() (models.Item, bool) {
	id, ok := s.GetRandomID()
	if !ok {
		s.random = models.Item{}
		s.hasRandom = false
		return models.Item{}, false
	}

	idx := slices.IndexFunc(s.roster, func(item models.Item) bool { return item.ID == id })
	if idx < 0 {
		s.random = models.Item{}
		s.hasRandom = false
		return models.Item{}, false
	}

	s.random = s.roster[idx]
	s.hasRandom = true
	slog.Debug("random item picked", "id", s.random.ID, "name", s.random.Name)
	return s.random, true
}

// Mount runs the startup behaviour: pick a random item, falling back to
// selecting the first roster item if no random item could be picked.
func (s *SelectionState) Mount() {
	if _, ok := s.SelectRandomItem(); !ok && len(s.roster) > 0 {
		s.SelectItem(s.roster[0])
	}
}

// Cursor returns the highlighted position in the candidate list.
func (s *SelectionState) Cursor() int {
	return s.cursor
}

// HighlightedItem returns the candidate under the cursor, if any.
func (s *SelectionState) HighlightedItem() (models.Item, bool) {
	items := s.FilteredItems()
	if s.cursor < 0 || s.cursor >= len(items) {
		return models.Item{}, false
	}
	return items[s.cursor], true
}

// MoveCursorUp moves the cursor up one position if possible.
// Returns true if the cursor moved, false if already at top.
func (s *SelectionState) MoveCursorUp() bool {
	if s.cursor > 0 {
		s.cursor--
		return true
	}
	return false
}

// MoveCursorDown moves the cursor down one position if possible.
// Returns true if the cursor moved, false if already at bottom.
func (s *SelectionState) MoveCursorDown() bool {
	if s.cursor < len(s.FilteredItems())-1 {
		s.cursor++
		return true
	}
	return false
}

// SetCursor moves the cursor to pos, clamped to the candidate list.
func (s *SelectionState) SetCursor(pos int) {
	s.cursor = pos
	s.clampCursor()
}

func (s *SelectionState) clampCursor() {
	n := len(s.FilteredItems())
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}
