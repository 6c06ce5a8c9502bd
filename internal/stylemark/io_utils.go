// Purpose: Detect terminal state and read command input.
// Exports: none (package-private helpers).
// Role: I/O behavior toggles for rendering and input handling.
// Invariants: Returns false on stat errors (conservative default).
// Notes: Non-file readers (tests, pipes wrapped by callers) count as piped.
package stylemark

import (
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when a command needs text and got neither
// arguments nor piped stdin.
var ErrNoInput = errors.New("no input")

// readerIsPiped returns true if r has piped input (not a terminal).
func readerIsPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return r != nil
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) == 0
}

// writerIsTTY returns true if w is a terminal (supports color, interactive).
func writerIsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// getTerminalWidth returns the terminal width of w, or 80 if unavailable.
func getTerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// readInput joins args with spaces, or reads all of stdin when there are no
// args. A single trailing newline from stdin is dropped.
func readInput(args []string, opts GlobalOptions) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := opts.stdin()
	if !readerIsPiped(in) {
		return "", ErrNoInput
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
