package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// Render modes for prompt content.
const (
	RenderAuto   = "auto"
	RenderAlways = "always"
	RenderNever  = "never"
)

// DefaultMarkdownWidth is the word-wrap width for rendered prompts.
const DefaultMarkdownWidth = 100

// ValidRenderMode reports whether mode is one of the known render modes.
func ValidRenderMode(mode string) bool {
	switch mode {
	case RenderAuto, RenderAlways, RenderNever:
		return true
	}
	return false
}

// ShouldRender decides whether content written to w gets markdown rendering.
func ShouldRender(mode string, w io.Writer) bool {
	switch mode {
	case RenderAlways:
		return true
	case RenderNever:
		return false
	default:
		return IsTerminalWriter(w)
	}
}

// RenderMarkdown renders markdown content with the given glamour standard
// style ("dark", "light", "notty", ...).
func RenderMarkdown(content, style string, width int) (string, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = DefaultMarkdownWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
