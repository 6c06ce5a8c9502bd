package monitor

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// RenderMarkdown formats markdown for the terminal, wrapped at width. With
// color off it uses glamour's plain notty style.
func RenderMarkdown(content string, width int, color bool) (string, error) {
	if width <= 0 {
		width = defaultWidth
	}
	styleOpt := glamour.WithStandardStyle(styles.NoTTYStyle)
	if color {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return r.Render(content)
}
