package markup

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func newTestRenderer(profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(profile)
	return NewRenderer(lg)
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "style tag removed", input: "[bold]hi", want: "hi"},
		{name: "close tag removed", input: "[bold]hi[/] there", want: "hi there"},
		{name: "escaped brackets", input: `\[foo\] bar`, want: "[foo] bar"},
		{name: "backslash before escaped bracket", input: `\\[x\\]`, want: `\[x\]`},
		{name: "unknown tag kept", input: "[foo]", want: "[foo]"},
		{name: "unterminated", input: "[bold", want: "[bold"},
		{name: "empty tag", input: "a[]b", want: "ab"},
		{name: "lone backslash", input: `a\b`, want: `a\b`},
		{name: "trailing backslash", input: `a\`, want: `a\`},
		{name: "nested literal", input: "[foo [bold]x", want: "[foo x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestStripEscapeRoundTrip checks that escaping then stripping gives back the
// visible text of the original for inputs without style tags.
func TestStripEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"foo [bar] baz",
		"[foo [bar] baz]",
		"[x][y]",
		"array[0] = map[key]",
	}
	for _, in := range inputs {
		if got := Strip(Escape(in)); got != in {
			t.Errorf("Strip(Escape(%q)) = %q", in, got)
		}
	}
}

func TestRenderVisibleText(t *testing.T) {
	r := newTestRenderer(termenv.TrueColor)
	input := "[bold]New run[/] - " + Escape("items[0]") + "\n[dim]done"
	got := ansi.Strip(r.Render(input))
	want := "New run - items[0]\ndone"
	if got != want {
		t.Errorf("visible text = %q, want %q", got, want)
	}
}

func TestRenderAppliesStyles(t *testing.T) {
	r := newTestRenderer(termenv.TrueColor)

	bold := r.Render("[bold]x")
	if !strings.Contains(bold, "\x1b[1m") && !strings.Contains(bold, "\x1b[1;") {
		t.Errorf("expected bold SGR in %q", bold)
	}

	colored := r.Render("[#ff0000]x")
	if !strings.Contains(colored, "38;2;255;0;0") {
		t.Errorf("expected truecolor red in %q", colored)
	}

	plain := r.Render("no tags")
	if plain != "no tags" {
		t.Errorf("untagged text should pass through, got %q", plain)
	}
}

func TestRenderPopRestoresParent(t *testing.T) {
	r := newTestRenderer(termenv.TrueColor)
	out := r.Render("[bold]a[/]b")
	idx := strings.LastIndex(out, "b")
	if idx < 0 {
		t.Fatalf("missing b in %q", out)
	}
	if strings.Contains(out[idx:], "\x1b") {
		t.Errorf("text after [/] should be unstyled, got %q", out)
	}
}

func TestRenderExtraCloseIsNoop(t *testing.T) {
	r := newTestRenderer(termenv.Ascii)
	if got := ansi.Strip(r.Render("[/]a[/x]b")); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestRenderKeepsShortLinesUnpadded(t *testing.T) {
	r := newTestRenderer(termenv.TrueColor)
	got := ansi.Strip(r.Render("[red]a much longer line\nx"))
	if got != "a much longer line\nx" {
		t.Errorf("got %q", got)
	}
}

func TestRenderKeepsTabs(t *testing.T) {
	r := newTestRenderer(termenv.TrueColor)
	got := ansi.Strip(r.Render("[bold]a\tb"))
	if got != "a\tb" {
		t.Errorf("got %q", got)
	}
}

func TestRenderLines(t *testing.T) {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.TrueColor)
	style := lg.NewStyle().Bold(true)

	got := RenderLines("long line\n\nx", style)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), got)
	}
	if lines[1] != "" {
		t.Errorf("empty line should stay empty, got %q", lines[1])
	}
	if plain := ansi.Strip(lines[2]); plain != "x" {
		t.Errorf("short line padded to %q", plain)
	}
	if !strings.Contains(lines[0], "\x1b[1m") {
		t.Errorf("line not styled: %q", lines[0])
	}
}
