// Purpose: Level-gated printing of markup, rules, panels, code, markdown and tables.
// Exports: Logger, New, Option, WithLevel, WithColor, WithWidth, WithBorderColor,
// WithCodeTheme, WithRenderer.
// Role: The single writer for user-facing monitor output.
// Invariants: Nothing is written when the logger or the message level is off.
// Notes: Error text is bracket-escaped before rendering so literal [..] survives.
package monitor

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sandover/stylemark/internal/markup"
)

// Logger writes decorated output to w when the message level is enabled.
// It is safe for concurrent use.
type Logger struct {
	mu          sync.Mutex
	w           io.Writer
	level       Level
	color       *bool
	width       int
	borderColor string
	codeTheme   string
	lg          *lipgloss.Renderer

	styler Styler
	markup *markup.Renderer
}

// Option configures a Logger.
type Option func(*Logger)

func WithLevel(level Level) Option { return func(l *Logger) { l.level = level } }

// WithColor forces color on or off. Without it the color profile of w decides.
func WithColor(on bool) Option { return func(l *Logger) { l.color = &on } }

// WithWidth sets the output width. Widths <= 0 select the default of 80.
func WithWidth(width int) Option { return func(l *Logger) { l.width = width } }

func WithBorderColor(color string) Option { return func(l *Logger) { l.borderColor = color } }

func WithCodeTheme(theme string) Option { return func(l *Logger) { l.codeTheme = theme } }

// WithRenderer sets the lipgloss renderer used for all styling.
func WithRenderer(lg *lipgloss.Renderer) Option { return func(l *Logger) { l.lg = lg } }

// New returns a Logger writing to w at info level.
func New(w io.Writer, opts ...Option) *Logger {
	l := &Logger{
		w:           w,
		level:       LevelInfo,
		width:       defaultWidth,
		borderColor: YellowHex,
		codeTheme:   DefaultCodeTheme,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.width <= 0 {
		l.width = defaultWidth
	}
	if l.lg == nil {
		l.lg = lipgloss.NewRenderer(w)
	}
	if l.color != nil {
		switch {
		case !*l.color:
			l.lg.SetColorProfile(termenv.Ascii)
		case l.lg.ColorProfile() == termenv.Ascii:
			l.lg.SetColorProfile(termenv.ANSI256)
		}
	}
	l.styler = NewStyler(l.lg)
	l.markup = markup.NewRenderer(l.lg)
	return l
}

// Level returns the logger's level.
func (l *Logger) Level() Level { return l.level }

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.level != LevelOff && level != LevelOff && level <= l.level
}

func (l *Logger) colorOn() bool {
	return l.lg.ColorProfile() != termenv.Ascii
}

// Log writes msg and a newline if level is enabled.
func (l *Logger) Log(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, msg)
}

// LogMarkup renders msg as markup and logs it.
func (l *Logger) LogMarkup(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, l.markup.Render(msg))
}

// LogError logs msg in bold red at error level. Brackets in msg that are not
// style tags are printed literally.
func (l *Logger) LogError(msg string) {
	if !l.Enabled(LevelError) {
		return
	}
	l.Log(LevelError, l.markup.Render("[bold red]"+markup.Escape(msg)))
}

// LogRule logs a bold rule titled title in the border color.
func (l *Logger) LogRule(level Level, title string) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, l.styler.Rule(RuleConfig{
		Title:       title,
		Width:       l.width,
		Bold:        true,
		BorderColor: l.borderColor,
	}))
}

// LogTask logs content in a bold panel headed "title - subtitle".
func (l *Logger) LogTask(level Level, content, title, subtitle string) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, l.styler.Panel(
		PanelInput{Content: content, Title: title, Subtitle: subtitle},
		PanelConfig{
			ContentStyle:  "bold",
			TitleStyle:    "bold",
			SubtitleStyle: "bold",
			BorderColor:   l.borderColor,
			Width:         l.width,
		},
	))
}

// LogCode logs content between horizontal borders with title in the top
// border. Code is highlighted when color is on; it falls back to plain text
// if highlighting fails.
func (l *Logger) LogCode(level Level, title, content, language string) {
	if !l.Enabled(level) {
		return
	}
	body := content
	if l.colorOn() {
		if hl, err := Highlight(content, language, l.codeTheme); err == nil {
			body = hl
		}
	}
	body = strings.TrimRight(body, "\n")

	edge := l.styler.fg(l.borderColor)
	var b strings.Builder
	b.WriteString(edge.Render("──"))
	used := 2
	if title != "" {
		label := " " + l.lg.NewStyle().Bold(true).Render(title) + " "
		b.WriteString(label)
		used += lipgloss.Width(label)
	}
	b.WriteString(edge.Render(strings.Repeat("─", max(0, l.width-used))))
	b.WriteString("\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("    " + line + "\n")
	}
	b.WriteString(edge.Render(strings.Repeat("─", l.width)))

	l.Log(level, b.String())
}

// LogMarkdown logs glamour-rendered markdown, preceded by a bold italic rule
// when title is set.
func (l *Logger) LogMarkdown(level Level, content, title string) {
	if !l.Enabled(level) {
		return
	}
	rendered, err := RenderMarkdown(content, l.width, l.colorOn())
	if err != nil {
		rendered = content
	}
	rendered = strings.Trim(rendered, "\n")
	if title == "" {
		l.Log(level, rendered)
		return
	}
	l.Log(level, Group([]string{
		l.styler.Rule(RuleConfig{
			Title:       title,
			Width:       l.width,
			Bold:        true,
			Italic:      true,
			BorderColor: l.borderColor,
		}),
		rendered,
	}))
}

// LogMessages logs each message as indented JSON.
func (l *Logger) LogMessages(level Level, messages []map[string]any) error {
	if !l.Enabled(level) {
		return nil
	}
	parts := make([]string, 0, len(messages))
	for i, msg := range messages {
		data, err := json.MarshalIndent(msg, "", "    ")
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		parts = append(parts, string(data))
	}
	out := strings.Join(parts, "\n")
	if l.colorOn() {
		if hl, err := Highlight(out, "json", l.codeTheme); err == nil {
			out = strings.TrimRight(hl, "\n")
		}
	}
	l.Log(level, out)
	return nil
}

// LogTable logs a rendered table.
func (l *Logger) LogTable(level Level, in TableInput) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, l.styler.Table(in))
}
