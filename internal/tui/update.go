package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/rosterpick/internal/models"
	"github.com/thenoetrevino/rosterpick/internal/tui/state"
)

// Update handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.input.SetWidth(innerWidth(msg.Width) - len([]rune(m.input.Prompt)))
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m.handleClick(msg)

	case tea.MouseWheelMsg:
		if m.Selection.IsDropdownOpen() && !m.UiState.ShowHelp() {
			switch msg.Button {
			case tea.MouseWheelUp:
				m.Selection.MoveCursorUp()
			case tea.MouseWheelDown:
				m.Selection.MoveCursorDown()
			}
		}
		return m, nil

	case tea.FocusMsg:
		// Terminal regained focus
		if m.UiState.RefocusOnReturn() {
			m.UiState.SetRefocusOnReturn(false)
			return m, m.focusInput()
		}
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus; the input loses it too
		if m.input.Focused() {
			m.UiState.SetRefocusOnReturn(true)
			return m, m.blurInput()
		}
		return m, nil

	case dropdownCloseMsg:
		if m.Selection.ApplyClose(msg.pending) {
			slog.Debug("dropdown closed after blur")
		}
		return m, nil

	case dismissNotificationMsg:
		m.NotificationState.Dismiss(msg.id)
		return m, nil
	}

	return m, nil
}

// handleKey dispatches a key press
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.Config.KeyMappings
	key := msg.String()

	// Help overlay swallows everything except closing it
	if m.UiState.ShowHelp() {
		switch key {
		case keys.Quit:
			return m, tea.Quit
		case keys.ShowHelp, "esc", "q":
			m.UiState.SetShowHelp(false)
		}
		return m, nil
	}

	switch key {
	case keys.Quit:
		return m, tea.Quit

	case keys.ShowHelp:
		m.UiState.ToggleHelp()
		return m, nil

	case keys.ToggleFocus:
		if m.input.Focused() {
			return m, m.blurInput()
		}
		return m, m.focusInput()

	case keys.RandomPick:
		item, ok := m.Selection.SelectRandomItem()
		if !ok {
			return m, m.notify(state.LevelWarning, "Roster is empty, nothing to pick")
		}
		return m, m.notify(state.LevelInfo, "Random pick: "+item.Name)

	case keys.AcceptRandom:
		item, ok := m.Selection.RandomItem()
		if !ok {
			return m, m.notify(state.LevelWarning, "No random pick to accept")
		}
		m.selectItem(item)
		return m, nil

	case keys.ClearHistory:
		m.Selection.ClearHistory()
		return m, m.notify(state.LevelInfo, "History cleared")
	}

	if m.input.Focused() {
		switch key {
		case "esc":
			return m, m.blurInput()

		case keys.NextItem:
			if !m.Selection.IsDropdownOpen() {
				m.Selection.OnInputFocus()
				return m, nil
			}
			m.Selection.MoveCursorDown()
			return m, nil

		case keys.PrevItem:
			m.Selection.MoveCursorUp()
			return m, nil

		case keys.SelectItem:
			if !m.Selection.IsDropdownOpen() {
				return m, nil
			}
			if item, ok := m.Selection.HighlightedItem(); ok {
				m.selectItem(item)
			}
			return m, nil
		}

		return m.updateInput(msg)
	}

	// Typing while unfocused focuses the input and keeps the keystroke
	if msg.Text != "" {
		focusCmd := m.focusInput()
		updated, inputCmd := m.updateInput(msg)
		return updated, tea.Batch(focusCmd, inputCmd)
	}

	return m, nil
}

// updateInput forwards msg to the text input and syncs the search term
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != m.Selection.SearchTerm() {
		m.Selection.SetSearchTerm(value)
		// Editing after a selection reopens the list
		if !m.Selection.IsDropdownOpen() {
			m.Selection.OnInputFocus()
		}
	}
	return m, cmd
}

// handleClick handles a left click on a dropdown row, the input, or elsewhere
func (m Model) handleClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseLeft || m.UiState.ShowHelp() {
		return m, nil
	}

	if idx, ok := m.rowAt(msg.Y); ok {
		items := m.Selection.FilteredItems()
		m.Selection.SetCursor(idx)
		m.selectItem(items[idx])
		return m, nil
	}

	if inInput(msg.Y) {
		if !m.input.Focused() {
			return m, m.focusInput()
		}
		return m, nil
	}

	if m.input.Focused() {
		return m, m.blurInput()
	}
	return m, nil
}

// selectItem selects item and mirrors its name into the input
func (m *Model) selectItem(item models.Item) {
	m.Selection.SelectItem(item)
	m.input.SetValue(item.Name)
	m.input.CursorEnd()
}

// focusInput focuses the input and opens the dropdown
func (m *Model) focusInput() tea.Cmd {
	cmd := m.input.Focus()
	m.Selection.OnInputFocus()
	return cmd
}

// blurInput blurs the input and schedules the dropdown to close
func (m *Model) blurInput() tea.Cmd {
	m.input.Blur()
	pending := m.Selection.OnInputBlur()
	return tea.Tick(pending.Delay, func(time.Time) tea.Msg {
		return dropdownCloseMsg{pending: pending}
	})
}

// notify shows a notification and schedules its removal
func (m *Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message)
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return dismissNotificationMsg{id: id}
	})
}
