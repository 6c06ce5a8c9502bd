// Terminal rendering of bracket markup produced by Escape.
package markup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indexes for the named colors in styleTokens, plus gray.
var namedColors = map[string]lipgloss.Color{
	"gray":    lipgloss.Color("8"),
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// Renderer turns markup into styled terminal text.
//
// A tag is any unescaped "[content]" whose content IsStyleTag accepts; it
// applies until the matching "[/]" (or "[/name]") or the end of the text.
// Tags nest. Bracket runs that are not tags, and "\[" / "\]", print literally.
type Renderer struct {
	lg *lipgloss.Renderer
}

// NewRenderer returns a Renderer drawing styles with lg. A nil lg uses the
// lipgloss default renderer, which detects the color profile of stdout.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: lg}
}

// Render returns text with tags replaced by ANSI styling.
func (r *Renderer) Render(text string) string {
	var out strings.Builder
	base := r.lg.NewStyle().TabWidth(lipgloss.NoTabConversion)
	var stack []lipgloss.Style

	walk(text, func(run string) {
		if len(stack) == 0 {
			out.WriteString(run)
			return
		}
		out.WriteString(RenderLines(run, stack[len(stack)-1]))
	}, func(content string) {
		parent := base
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}
		stack = append(stack, ApplyStyle(parent, content))
	}, func() {
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	})

	return out.String()
}

// Strip returns the text Render would print, without any styling.
func Strip(text string) string {
	var out strings.Builder
	walk(text, func(run string) { out.WriteString(run) }, func(string) {}, func() {})
	return out.String()
}

// walk scans markup left to right, reporting literal runs, opening tags and
// closing tags. Tag boundaries follow the same segment rule as Escape.
func walk(text string, emit func(string), open func(string), closeTag func()) {
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			emit(buf.String())
			buf.Reset()
		}
	}

	for i := 0; i < len(text); {
		c := text[i]
		if c == '\\' && i+1 < len(text) && (text[i+1] == '[' || text[i+1] == ']') {
			buf.WriteByte(text[i+1])
			i += 2
			continue
		}
		if c == '[' {
			end := strings.IndexAny(text[i+1:], "[]")
			if end >= 0 && text[i+1+end] == ']' {
				content := text[i+1 : i+1+end]
				switch {
				case strings.HasPrefix(content, "/"):
					flush()
					closeTag()
					i += end + 2
					continue
				case IsStyleTag(content):
					flush()
					open(content)
					i += end + 2
					continue
				}
			}
		}
		buf.WriteByte(c)
		i++
	}
	flush()
}

// ColorFor maps a color name or #rrggbb value to a lipgloss color. Names
// outside the palette are passed through, so ANSI indexes like "8" work too.
func ColorFor(name string) lipgloss.Color {
	if c, ok := namedColors[name]; ok {
		return c
	}
	return lipgloss.Color(strings.ToLower(name))
}

// ApplyStyle layers the style tokens found in content onto parent. Anything
// that is not a style token is ignored.
func ApplyStyle(parent lipgloss.Style, content string) lipgloss.Style {
	style := parent
	for _, tok := range styleStripRe.FindAllString(content, -1) {
		switch tok {
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "dim":
			style = style.Faint(true)
		default:
			if strings.HasPrefix(tok, "#") {
				style = style.Foreground(lipgloss.Color(strings.ToLower(tok)))
			} else if color, ok := namedColors[tok]; ok {
				style = style.Foreground(color)
			}
		}
	}
	return style
}

// RenderLines renders text line by line so lipgloss does not pad shorter
// lines to the width of the longest one. Empty lines stay empty.
func RenderLines(text string, style lipgloss.Style) string {
	if !strings.Contains(text, "\n") {
		return style.Render(text)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
