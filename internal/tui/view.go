package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/rosterpick/internal/tui/components"
	"github.com/thenoetrevino/rosterpick/internal/tui/notifications"
	"github.com/thenoetrevino/rosterpick/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.ReportFocus = true
	view.WindowTitle = "rosterpick"
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UiState.ShowHelp() {
		view.Content = m.viewHelp()
		return view
	}

	view.Content = m.viewPicker()
	return view
}

// viewPicker renders the header, input, dropdown and panels top to bottom.
// Row positions must stay in step with layout.go.
func (m Model) viewPicker() string {
	sections := []string{m.viewHeader(), ""}

	inputStyle := components.InputBlurredStyle
	if m.input.Focused() {
		inputStyle = components.InputStyle
	}
	sections = append(sections, inputStyle.Render(m.input.View()))

	if m.Selection.IsDropdownOpen() {
		items := m.Selection.FilteredItems()
		sections = append(sections, components.RenderDropdown(components.DropdownProps{
			Items:      items,
			Cursor:     m.Selection.Cursor(),
			Start:      m.UiState.WindowStart(m.Selection.Cursor(), len(items)),
			MaxVisible: m.UiState.MaxVisible(),
			Width:      innerWidth(m.UiState.Width()),
		}))
	}

	sections = append(sections, "", m.viewPanels(), "", m.viewFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewHeader renders a single line; mouse hit-testing depends on it never wrapping
func (m Model) viewHeader() string {
	header := components.TitleStyle.Render("rosterpick")
	if n, ok := m.NotificationState.Latest(); ok {
		header += "  " + notifications.RenderInlineFromState(n)
	}
	return components.Truncate(header, m.UiState.Width())
}

func (m Model) viewPanels() string {
	width := m.UiState.Width()
	panelWidth := max(18, min(30, (width-2)/3))
	text := panelWidth - 4

	selected, hasSelected := m.Selection.SelectedItem()
	random, hasRandom := m.Selection.RandomItem()

	selectedPanel := components.RenderPanel(components.PanelProps{
		Title: "Selected",
		Body:  components.RenderPick(selected, hasSelected, components.SelectedStyle, text),
		Width: panelWidth,
	})
	randomPanel := components.RenderPanel(components.PanelProps{
		Title: "Random pick",
		Body:  components.RenderPick(random, hasRandom, components.RandomStyle, text),
		Width: panelWidth,
	})

	// Rows left below the dropdown for the history list
	historyRows := max(3, m.UiState.Height()-dropdownTop-m.UiState.MaxVisible()-8)
	historyPanel := components.RenderPanel(components.PanelProps{
		Title: "History",
		Body:  components.RenderHistory(m.Selection.History(), text, historyRows),
		Width: panelWidth,
	})

	if width < panelWidth*3 {
		return lipgloss.JoinVertical(lipgloss.Left, selectedPanel, randomPanel, historyPanel)
	}
	left := lipgloss.JoinVertical(lipgloss.Left, selectedPanel, randomPanel)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", historyPanel)
}

func (m Model) viewFooter() string {
	keys := m.Config.KeyMappings
	hints := []string{
		keys.ToggleFocus + " focus",
		keys.SelectItem + " select",
		keys.RandomPick + " random",
		keys.ShowHelp + " help",
		keys.Quit + " quit",
	}
	return components.SubtleStyle.Render(components.Truncate(strings.Join(hints, " • "), m.UiState.Width()))
}

func (m Model) viewHelp() string {
	width := m.UiState.Width()
	helpWidth := max(30, min(72, width-8))

	rendered := components.RenderHelp(components.HelpMarkdown(m.helpBindings()), helpWidth, theme.IsLight())
	box := components.HelpBoxStyle.Render(rendered)
	return lipgloss.Place(width, m.UiState.Height(), lipgloss.Center, lipgloss.Center, box)
}

// helpBindings lists the configured keys for the help overlay
func (m Model) helpBindings() []components.HelpBinding {
	keys := m.Config.KeyMappings
	return []components.HelpBinding{
		{Key: keys.ToggleFocus, Action: "Focus or leave the search input"},
		{Key: keys.NextItem + " / " + keys.PrevItem, Action: "Move through the list"},
		{Key: keys.SelectItem, Action: "Select the highlighted item"},
		{Key: keys.RandomPick, Action: "Pick a new random item"},
		{Key: keys.AcceptRandom, Action: "Select the random pick"},
		{Key: keys.ClearHistory, Action: "Clear the history"},
		{Key: keys.ShowHelp, Action: "Toggle this help"},
		{Key: keys.Quit, Action: "Quit"},
	}
}
