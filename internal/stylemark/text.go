// Purpose: Render the embedded help text.
// Exports: UsageText.
// Role: Documentation rendering for CLI output.
// Invariants: Help is markup; colored output and plain output show the same text.
// Notes: help.txt must cover every command registered in cmd/stylemark.
package stylemark

import (
	_ "embed"
	"io"
	"strings"

	"github.com/sandover/stylemark/internal/markup"
)

//go:embed help.txt
var helpTextRaw string

// UsageText returns the help text, colorized if color is true.
func UsageText(color bool) string {
	text := strings.TrimSuffix(helpTextRaw, "\n")
	if !color {
		return markup.Strip(text)
	}
	return markup.NewRenderer(newLipgloss(io.Discard, true)).Render(text)
}
