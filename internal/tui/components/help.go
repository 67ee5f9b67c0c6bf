package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour standard style names
const (
	glamourDark  = "dark"
	glamourLight = "light"
)

// Cache Glamour renderers by width and style to avoid expensive re-creation
var (
	rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer
)

type rendererKey struct {
	width int
	light bool
}

// getRenderer returns a cached renderer for the given width
func getRenderer(width int, light bool) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, light: light}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := glamourDark
	if light {
		style = glamourLight
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// HelpBinding is one row of the help table
type HelpBinding struct {
	Key    string
	Action string
}

// HelpMarkdown builds the help text as markdown
func HelpMarkdown(bindings []HelpBinding) string {
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, binding := range bindings {
		fmt.Fprintf(&b, "| `%s` | %s |\n", binding.Key, binding.Action)
	}
	b.WriteString("\nTyping filters the roster by name. ")
	b.WriteString("Items in the history are hidden from the list until the history is cleared. ")
	b.WriteString("Click a row to select it.\n")
	return b.String()
}

// RenderHelp renders help markdown at the given width.
// Falls back to the raw markdown if glamour fails.
func RenderHelp(markdown string, width int, light bool) string {
	renderer, err := getRenderer(width, light)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimSpace(rendered)
}
