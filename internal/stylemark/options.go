// Global options shared by every command, plus the helpers that turn them
// into writers, widths and color decisions.
package stylemark

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type GlobalOptions struct {
	ConfigPath string
	Quiet      bool
	Verbose    bool
	JSON       bool
	NoColor    bool
	Width      int

	// Per-command flags, copied in by the cobra layer.
	Raw      bool
	Level    string
	Title    string
	Subtitle string
	Lang     string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o GlobalOptions) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

func (o GlobalOptions) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}
	return os.Stderr
}

func (o GlobalOptions) stdin() io.Reader {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

func debugf(opts GlobalOptions, format string, args ...any) {
	if !opts.Verbose {
		return
	}
	fmt.Fprintf(opts.stderr(), "debug: "+format+"\n", args...)
}

// colorEnabled decides whether output is styled. --no-color and NO_COLOR win,
// then the config's color mode, then whether stdout is a terminal.
func colorEnabled(opts GlobalOptions, cfg Config) bool {
	if opts.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch cfg.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return writerIsTTY(opts.stdout())
}

// outputWidth picks --width, then the config width, then the terminal width.
func outputWidth(opts GlobalOptions, cfg Config) int {
	if opts.Width > 0 {
		return opts.Width
	}
	if cfg.Width > 0 {
		return cfg.Width
	}
	return getTerminalWidth(opts.stdout())
}

// newLipgloss returns a renderer for w with its color profile pinned.
func newLipgloss(w io.Writer, color bool) *lipgloss.Renderer {
	lg := lipgloss.NewRenderer(w)
	switch {
	case !color:
		lg.SetColorProfile(termenv.Ascii)
	case lg.ColorProfile() == termenv.Ascii:
		lg.SetColorProfile(termenv.ANSI256)
	}
	return lg
}
