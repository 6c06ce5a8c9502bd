// Purpose: Implement the escape, check, render, strip, log and demo commands.
// Exports: RunEscape, RunCheck, RunRender, RunStrip, RunLog, RunDemo, LogKinds, ErrUnknownLogKind.
// Role: Business logic behind the cobra commands in cmd/stylemark.
// Invariants: Commands write only to opts.Stdout; diagnostics go to opts.Stderr.
// Notes: Config is loaded per command so --config applies uniformly.
package stylemark

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/sandover/stylemark/internal/markup"
	"github.com/sandover/stylemark/internal/monitor"
)

// ErrUnknownLogKind is returned by RunLog for kinds outside LogKinds.
var ErrUnknownLogKind = errors.New("unknown log kind")

// LogKinds lists the kinds RunLog accepts.
var LogKinds = []string{"error", "markup", "rule", "task", "code", "markdown", "messages"}

func RunEscape(args []string, opts GlobalOptions) error {
	text, err := readInput(args, opts)
	if err != nil {
		return err
	}
	escaped := markup.Escape(text)
	debugf(opts, "escape: %d segments", len(markup.Segments(text)))
	if opts.JSON {
		return writeJSON(opts.stdout(), escapeOutput{Input: text, Escaped: escaped})
	}
	_, err = fmt.Fprintln(opts.stdout(), escaped)
	return err
}

func RunCheck(args []string, opts GlobalOptions) error {
	text, err := readInput(args, opts)
	if err != nil {
		return err
	}
	segments := markup.Segments(text)
	if opts.JSON {
		return writeJSON(opts.stdout(), buildSegmentItems(segments))
	}
	out := opts.stdout()
	if len(segments) == 0 {
		_, err := fmt.Fprintln(out, "no segments")
		return err
	}
	for _, seg := range segments {
		pos := fmt.Sprintf("%d-%d", seg.Start, seg.End)
		_, err := fmt.Fprintf(out, "%s  %s  [%s]\n",
			runewidth.FillRight(pos, 9),
			runewidth.FillRight(segmentKind(seg), len(kindLiteral)),
			seg.Content)
		if err != nil {
			return err
		}
	}
	return nil
}

func RunRender(args []string, opts GlobalOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	text, err := readInput(args, opts)
	if err != nil {
		return err
	}
	if !opts.Raw {
		text = markup.Escape(text)
	}
	color := colorEnabled(opts, cfg)
	debugf(opts, "render: color=%v raw=%v", color, opts.Raw)

	r := markup.NewRenderer(newLipgloss(opts.stdout(), color))
	_, err = fmt.Fprintln(opts.stdout(), r.Render(text))
	return err
}

func RunStrip(args []string, opts GlobalOptions) error {
	text, err := readInput(args, opts)
	if err != nil {
		return err
	}
	plain := markup.Strip(text)
	if opts.JSON {
		return writeJSON(opts.stdout(), textOutput{Text: plain})
	}
	_, err = fmt.Fprintln(opts.stdout(), plain)
	return err
}

// newLogger builds a monitor.Logger from config and flags. A --level flag
// overrides the config level.
func newLogger(opts GlobalOptions) (*monitor.Logger, error) {
	cfg, err := LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	levelName := cfg.Level
	if opts.Level != "" {
		levelName = opts.Level
	}
	level, err := monitor.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	color := colorEnabled(opts, cfg)
	width := outputWidth(opts, cfg)
	debugf(opts, "logger: level=%s color=%v width=%d", level, color, width)

	out := opts.stdout()
	return monitor.New(out,
		monitor.WithRenderer(newLipgloss(out, color)),
		monitor.WithLevel(level),
		monitor.WithWidth(width),
		monitor.WithBorderColor(cfg.BorderColor),
		monitor.WithCodeTheme(cfg.CodeTheme),
	), nil
}

// RunLog prints text as one kind of monitor output. Messages at info level;
// "error" at error level.
func RunLog(kind string, args []string, opts GlobalOptions) error {
	kind = strings.ToLower(strings.TrimSpace(kind))
	known := false
	for _, k := range LogKinds {
		if k == kind {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q (want %s)", ErrUnknownLogKind, kind, strings.Join(LogKinds, "|"))
	}

	logger, err := newLogger(opts)
	if err != nil {
		return err
	}

	text := ""
	if kind == "rule" && len(args) == 0 {
		text = opts.Title
	} else if text, err = readInput(args, opts); err != nil {
		return err
	}

	switch kind {
	case "error":
		logger.LogError(text)
	case "markup":
		logger.LogMarkup(monitor.LevelInfo, text)
	case "rule":
		logger.LogRule(monitor.LevelInfo, text)
	case "task":
		logger.LogTask(monitor.LevelInfo, text, opts.Title, opts.Subtitle)
	case "code":
		logger.LogCode(monitor.LevelInfo, opts.Title, text, opts.Lang)
	case "markdown":
		logger.LogMarkdown(monitor.LevelInfo, text, opts.Title)
	case "messages":
		messages, err := parseMessages(text)
		if err != nil {
			return err
		}
		return logger.LogMessages(monitor.LevelInfo, messages)
	}
	return nil
}

// parseMessages accepts a JSON array of objects or one object per line.
func parseMessages(text string) ([]map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "[") {
		var messages []map[string]any
		if err := json.Unmarshal([]byte(trimmed), &messages); err != nil {
			return nil, fmt.Errorf("parse messages: %w", err)
		}
		return messages, nil
	}

	var messages []map[string]any
	for i, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var msg map[string]any
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return nil, fmt.Errorf("parse messages: line %d: %w", i+1, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

const demoSource = `package main

import "fmt"

// items[0] stays literal once escaped.
func main() {
	fmt.Println("[bold]hello[/]")
}`

const demoMarkdown = "## Plan\n\n1. Escape literal `[brackets]`.\n2. Keep `[bold red]` tags.\n"

// RunDemo prints one of each kind of monitor output.
func RunDemo(args []string, opts GlobalOptions) error {
	if len(args) != 0 {
		return errors.New("usage: stylemark demo")
	}
	logger, err := newLogger(opts)
	if err != nil {
		return err
	}

	logger.LogRule(monitor.LevelInfo, "rule")
	logger.LogTask(monitor.LevelInfo, "Summarize items[0] and items[1]", "New run", "demo")
	logger.LogCode(monitor.LevelInfo, "main.go", demoSource, "go")
	logger.LogMarkdown(monitor.LevelInfo, demoMarkdown, "markdown")
	logger.LogTable(monitor.LevelInfo, monitor.TableInput{
		Columns: []monitor.Column{
			{Name: "Name", Style: "cyan", Align: lipgloss.Right},
			{Name: "Age", Style: "magenta", Align: lipgloss.Right},
			{Name: "Type", Style: "green", Align: lipgloss.Left},
		},
		Rows: [][]string{
			{"Robin", "22", "Python"},
			{"Max", "20", "C"},
			{"John", "23", "Java"},
		},
		HeaderStyle: "bold",
	})
	logger.LogMarkup(monitor.LevelInfo, "[dim]"+markup.Escape("console output of step [1]"))
	logger.LogError("step failed: key [missing] not found")
	return nil
}
