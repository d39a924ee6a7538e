// Package preview renders Markdown documents for the terminal.
package preview

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const minWrapWidth = 20

// Render renders markdown with the given word-wrap width.
// Style is "auto", "dark", "light" or "notty".
func Render(markdown, style string, width int) (string, error) {
	if width < minWrapWidth {
		width = minWrapWidth
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
