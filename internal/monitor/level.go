// Log levels controlling monitor output verbosity.
package monitor

import (
	"errors"
	"fmt"
	"strings"
)

// Level orders output from silent to most verbose.
type Level int

const (
	LevelOff   Level = -1 // no output
	LevelError Level = 0  // errors only
	LevelInfo  Level = 1  // normal output
	LevelDebug Level = 2  // everything
)

// ErrUnknownLevel is returned by ParseLevel for names it does not know.
var ErrUnknownLevel = errors.New("unknown log level")

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel parses a level name. Matching is case-insensitive and an empty
// string means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q (want off|error|info|debug)", ErrUnknownLevel, s)
}
