package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders task content as markdown, falling back to the raw text
// when rendering fails.
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Render("No content")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

// WrapCardContent word-wraps content to width and keeps at most maxLines lines.
// Words longer than width are cut with an ellipsis.
func WrapCardContent(content string, width, maxLines int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(wordwrap.String(content, width), "\n")

	clipped := maxLines > 0 && len(lines) > maxLines
	if clipped {
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(width), "…")
	}
	if clipped {
		last := lines[len(lines)-1]
		if lipgloss.Width(last) >= width {
			last = truncate.String(last, uint(width-1))
		}
		lines[len(lines)-1] = last + "…"
	}
	return strings.Join(lines, "\n")
}
