// Purpose: Provide CLI error formatting, hints, and version output.
// Exports: none (package-private helpers).
// Role: Shared error/exit utilities for the cmd package.
// Invariants: exitErr always exits with code 1 after printing.
// Notes: Hints depend on error classification and global options.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandover/stylemark/internal/monitor"
	"github.com/sandover/stylemark/internal/stylemark"
)

func printVersion() {
	fmt.Println("stylemark " + version)
}

func exitErr(err error, opts *stylemark.GlobalOptions) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if hint := hintFor(err); hint != "" && (opts == nil || !opts.Quiet) {
		fmt.Fprintln(os.Stderr, "hint:", hint)
	}
	os.Exit(1)
}

func hintFor(err error) string {
	switch {
	case strings.HasPrefix(err.Error(), "usage:"):
		return "run `stylemark --help`"
	case errors.Is(err, stylemark.ErrNoInput):
		return "pass text as arguments or pipe it on stdin"
	case errors.Is(err, monitor.ErrUnknownLevel):
		return "levels are off, error, info, debug"
	case errors.Is(err, stylemark.ErrUnknownLogKind):
		return "kinds are " + strings.Join(stylemark.LogKinds, ", ")
	case errors.Is(err, stylemark.ErrInvalidConfig):
		return "check the file named by --config or $STYLEMARK_CONFIG"
	case errors.Is(err, os.ErrNotExist):
		return "config file not found; drop --config to use defaults"
	}
	return ""
}
