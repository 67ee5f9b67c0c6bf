package tui

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/rosterpick/internal/app"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/models"
	"github.com/thenoetrevino/rosterpick/internal/tui/state"
)

var testRoster = []models.Item{
	{ID: 1, Name: "Ryu"},
	{ID: 2, Name: "Ken"},
	{ID: 3, Name: "Chun-Li"},
	{ID: 4, Name: "Guile"},
}

// newTestModel builds a sized model over testRoster with a 1ms blur delay
func newTestModel(t *testing.T, roster []models.Item, tweak func(*config.Config)) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Picker.BlurDelayMS = 1
	if tweak != nil {
		tweak(cfg)
	}

	application, err := app.New(context.Background(), cfg,
		app.WithRoster(roster),
		app.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)

	m := InitialModel(context.Background(), application)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

// update applies msg and discards the returned command
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, _ = updateWithCmd(t, m, msg)
	return m
}

// updateWithCmd applies msg and returns the model and command
func updateWithCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	out, ok := updated.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", updated)
	}
	return out, cmd
}

// typeText sends each rune as a key press
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, keyRune(r))
	}
	return m
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyCtrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestInitialModel_MountsRandomPick(t *testing.T) {
	m := newTestModel(t, testRoster, nil)

	random, ok := m.Selection.RandomItem()
	require.True(t, ok)
	assert.Contains(t, testRoster, random)

	_, ok = m.Selection.SelectedItem()
	assert.False(t, ok)
	assert.False(t, m.Selection.IsDropdownOpen())
	assert.False(t, m.InputFocused())
	assert.Equal(t, "", m.InputValue())
}

func TestInitialModel_EmptyRoster(t *testing.T) {
	m := newTestModel(t, []models.Item{}, nil)

	_, ok := m.Selection.RandomItem()
	assert.False(t, ok)
	_, ok = m.Selection.SelectedItem()
	assert.False(t, ok)

	m = update(t, m, keyCtrl('r'))
	latest, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Contains(t, latest.Message, "empty")
}

func TestToggleFocus_OpensDropdown(t *testing.T) {
	m := newTestModel(t, testRoster, nil)

	m = update(t, m, keyCode(tea.KeyTab))

	assert.True(t, m.InputFocused())
	assert.True(t, m.Selection.IsDropdownOpen())
}

func TestBlur_ClosesAfterDelay(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))

	m, cmd := updateWithCmd(t, m, keyCode(tea.KeyTab))
	require.NotNil(t, cmd)

	// Still open until the timer fires
	assert.False(t, m.InputFocused())
	assert.True(t, m.Selection.IsDropdownOpen())

	msg := cmd()
	_, isClose := msg.(dropdownCloseMsg)
	require.True(t, isClose, "expected dropdownCloseMsg, got %T", msg)

	m = update(t, m, msg)
	assert.False(t, m.Selection.IsDropdownOpen())
}

func TestBlur_RefocusBeforeTimerStillCloses(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))
	m, cmd := updateWithCmd(t, m, keyCode(tea.KeyTab))
	m = update(t, m, keyCode(tea.KeyTab))

	m = update(t, m, cmd())

	assert.True(t, m.InputFocused())
	assert.False(t, m.Selection.IsDropdownOpen())
}

func TestBlur_RefocusCancelsWhenConfigured(t *testing.T) {
	m := newTestModel(t, testRoster, func(cfg *config.Config) {
		cfg.Picker.CancelCloseOnRefocus = true
	})
	m = update(t, m, keyCode(tea.KeyTab))
	m, cmd := updateWithCmd(t, m, keyCode(tea.KeyTab))
	m = update(t, m, keyCode(tea.KeyTab))

	m = update(t, m, cmd())

	assert.True(t, m.Selection.IsDropdownOpen())
}

func TestTyping_FiltersAndFocuses(t *testing.T) {
	m := newTestModel(t, testRoster, nil)

	m = typeText(t, m, "ry")

	assert.True(t, m.InputFocused())
	assert.True(t, m.Selection.IsDropdownOpen())
	assert.Equal(t, "ry", m.Selection.SearchTerm())
	assert.Equal(t, []models.Item{{ID: 1, Name: "Ryu"}}, m.Selection.FilteredItems())
}

func TestEnter_SelectsHighlighted(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))
	m = update(t, m, keyCode(tea.KeyDown))

	m = update(t, m, keyCode(tea.KeyEnter))

	selected, ok := m.Selection.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "Ken", selected.Name)
	assert.Equal(t, "Ken", m.InputValue())
	assert.Equal(t, "Ken", m.Selection.SearchTerm())
	assert.False(t, m.Selection.IsDropdownOpen())
	assert.Equal(t, []models.Item{{ID: 2, Name: "Ken"}}, m.Selection.History())
}

func TestTypingAfterSelect_ReopensDropdown(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))
	m = update(t, m, keyCode(tea.KeyEnter))
	require.False(t, m.Selection.IsDropdownOpen())

	m = update(t, m, keyCode(tea.KeyBackspace))

	assert.True(t, m.Selection.IsDropdownOpen())
	assert.Equal(t, "Ry", m.Selection.SearchTerm())
	// Ryu is in history so the filter finds nothing
	assert.Empty(t, m.Selection.FilteredItems())
}

func TestMouseClick_SelectsRow(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))

	m = update(t, m, tea.MouseClickMsg{X: 4, Y: firstRowY + 2, Button: tea.MouseLeft})

	selected, ok := m.Selection.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "Chun-Li", selected.Name)
	assert.False(t, m.Selection.IsDropdownOpen())
}

func TestMouseClick_RowsMatchRenderedView(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))

	lines := strings.Split(m.View().Content, "\n")
	require.Greater(t, len(lines), firstRowY+3)
	for i, item := range testRoster {
		assert.Contains(t, lines[firstRowY+i], item.Name, "row %d", i)
	}
}

func TestView_LongNotificationKeepsRowsInPlace(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 40})
	m = update(t, m, keyCode(tea.KeyTab))
	m.notify(state.LevelWarning, strings.Repeat("a very long notification message ", 4))

	lines := strings.Split(m.View().Content, "\n")
	assert.LessOrEqual(t, lipgloss.Width(lines[0]), 40, "header must fit on one line")
	for i, item := range testRoster {
		assert.Contains(t, lines[firstRowY+i], item.Name, "row %d", i)
	}

	m = update(t, m, tea.MouseClickMsg{X: 4, Y: firstRowY + 1, Button: tea.MouseLeft})
	selected, ok := m.Selection.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, testRoster[1].Name, selected.Name)
}

func TestMouseClick_OutsideBlurs(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))

	m, cmd := updateWithCmd(t, m, tea.MouseClickMsg{X: 90, Y: 39, Button: tea.MouseLeft})

	assert.False(t, m.InputFocused())
	require.NotNil(t, cmd)
	m = update(t, m, cmd())
	assert.False(t, m.Selection.IsDropdownOpen())
}

func TestMouseClick_InputFocuses(t *testing.T) {
	m := newTestModel(t, testRoster, nil)

	m = update(t, m, tea.MouseClickMsg{X: 3, Y: inputTop + 1, Button: tea.MouseLeft})

	assert.True(t, m.InputFocused())
	assert.True(t, m.Selection.IsDropdownOpen())
}

func TestRandomPick_AndAccept(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCtrl('r'))

	random, ok := m.Selection.RandomItem()
	require.True(t, ok)
	_, ok = m.Selection.SelectedItem()
	assert.False(t, ok, "random pick must not select")

	m = update(t, m, keyCtrl('o'))

	selected, ok := m.Selection.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, random, selected)
	assert.Equal(t, random.Name, m.InputValue())
	assert.Equal(t, []models.Item{random}, m.Selection.History())
}

func TestClearHistory_Notifies(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))
	m = update(t, m, keyCode(tea.KeyEnter))
	require.Len(t, m.Selection.History(), 1)

	m, cmd := updateWithCmd(t, m, keyCtrl('x'))

	assert.Empty(t, m.Selection.History())
	latest, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, "History cleared", latest.Message)
	assert.NotNil(t, cmd)

	m = update(t, m, dismissNotificationMsg{id: latest.ID})
	assert.False(t, m.NotificationState.HasAny())
}

func TestHelp_ToggleAndSwallowKeys(t *testing.T) {
	m := newTestModel(t, testRoster, nil)

	m = update(t, m, keyCode(tea.KeyF1))
	require.True(t, m.UiState.ShowHelp())
	assert.Contains(t, m.View().Content, "Keyboard shortcuts")

	// Keys other than close are ignored while help is open
	m = update(t, m, keyCode(tea.KeyTab))
	assert.False(t, m.InputFocused())

	m = update(t, m, keyCode(tea.KeyEscape))
	assert.False(t, m.UiState.ShowHelp())
}

func TestTerminalFocus_RoundTrip(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))

	m, cmd := updateWithCmd(t, m, tea.BlurMsg{})
	assert.False(t, m.InputFocused())
	require.NotNil(t, cmd)

	m = update(t, m, tea.FocusMsg{})
	assert.True(t, m.InputFocused())
	assert.True(t, m.Selection.IsDropdownOpen())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testRoster, nil)

	_, cmd := updateWithCmd(t, m, keyCtrl('c'))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestContextCancelled_Quits(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.Ctx = ctx

	_, cmd := updateWithCmd(t, m, keyRune('a'))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestView_ShowsPanels(t *testing.T) {
	m := newTestModel(t, testRoster, nil)
	m = update(t, m, keyCode(tea.KeyTab))
	m = update(t, m, keyCode(tea.KeyEnter))

	content := m.View().Content
	assert.Contains(t, content, "Selected")
	assert.Contains(t, content, "Random pick")
	assert.Contains(t, content, "History")
	assert.Contains(t, content, "1. Ryu")
}
