// Package styles holds the lipgloss styles used by CLI output.
package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/rosterpick/internal/config"
	"github.com/thenoetrevino/rosterpick/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 40

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "ID:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	SuccessStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderItemCard renders an item as a titled card:
//
//	Random pick
//	Ken
//	ID: 8
func RenderItemCard(title string, item models.Item) string {
	body := fmt.Sprintf("%s\n%s\n%s %s",
		SubtitleStyle.Render(title),
		TitleStyle.Render(item.Name),
		LabelStyle.Render("ID:"),
		ValueStyle.Render(fmt.Sprint(item.ID)))
	return CardStyle.Render(body)
}

// RenderSuccess renders a one-line success banner
func RenderSuccess(message string) string {
	return SuccessStyle.Render("✓ " + message)
}
