// Purpose: Build rules, panels, tables and grouped blocks for monitor output.
// Exports: Styler, NewStyler, RuleConfig, PanelInput, PanelConfig, Column, TableInput, Group.
// Role: Pure string builders; the Logger decides when to print them.
// Invariants: Helpers never write; titles are measured by display width.
// Notes: Style strings in configs use markup tag syntax, e.g. "bold cyan".
package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/sandover/stylemark/internal/markup"
)

// YellowHex is the default accent used for borders and rules.
const YellowHex = "#d4b702"

const (
	defaultWidth    = 80
	defaultRuleChar = "━"
)

// Styler builds decorated blocks using a single lipgloss renderer, so every
// block shares one color profile.
type Styler struct {
	lg *lipgloss.Renderer
}

// NewStyler returns a Styler for lg, or for the default renderer when lg is nil.
func NewStyler(lg *lipgloss.Renderer) Styler {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return Styler{lg: lg}
}

func (s Styler) style(spec string) lipgloss.Style {
	return markup.ApplyStyle(s.lg.NewStyle().TabWidth(lipgloss.NoTabConversion), spec)
}

func (s Styler) fg(color string) lipgloss.Style {
	return s.lg.NewStyle().Foreground(markup.ColorFor(color))
}

// RuleConfig describes a horizontal rule with a centered title.
type RuleConfig struct {
	Title       string
	Width       int
	Bold        bool
	Italic      bool
	BorderChar  string // default "━"
	BorderColor string // name or #rrggbb, default YellowHex
	TextColor   string // name or #rrggbb, default terminal foreground
}

// Rule returns line + " " + title + " " + line, where the two lines split the
// width left over after the title and its two spaces.
func (s Styler) Rule(cfg RuleConfig) string {
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	char := cfg.BorderChar
	if char == "" {
		char = defaultRuleChar
	}
	borderColor := cfg.BorderColor
	if borderColor == "" {
		borderColor = YellowHex
	}

	titleStyle := s.lg.NewStyle().Bold(cfg.Bold).Italic(cfg.Italic)
	if cfg.TextColor != "" {
		titleStyle = titleStyle.Foreground(markup.ColorFor(cfg.TextColor))
	}

	lineLen := max(0, width-runewidth.StringWidth(cfg.Title)-2)
	charWidth := max(1, runewidth.StringWidth(char))
	line := strings.Repeat(char, lineLen/2/charWidth)
	edge := s.fg(borderColor)

	title := cfg.Title
	if title != "" {
		title = titleStyle.Render(title)
	}
	return edge.Render(line) + " " + title + " " + edge.Render(line)
}

// PanelInput is the text shown in a panel.
type PanelInput struct {
	Content  string
	Title    string
	Subtitle string
}

// PanelConfig controls panel decoration.
type PanelConfig struct {
	ContentStyle  string
	TitleStyle    string
	SubtitleStyle string
	BorderColor   string
	Width         int // total width including borders; 0 fits the content
}

// Panel returns content in a rounded box with "title - subtitle" centered in
// the top border.
func (s Styler) Panel(in PanelInput, cfg PanelConfig) string {
	borderColor := cfg.BorderColor
	if borderColor == "" {
		borderColor = YellowHex
	}
	color := markup.ColorFor(borderColor)
	border := lipgloss.RoundedBorder()
	edge := s.lg.NewStyle().Foreground(color)

	box := s.lg.NewStyle().
		Border(border).
		BorderForeground(color).
		BorderTop(false).
		Padding(0, 1)
	if cfg.Width > 2 {
		box = box.Width(cfg.Width - 2)
	}

	content := in.Content
	if content != "" && cfg.ContentStyle != "" {
		content = markup.RenderLines(content, s.style(cfg.ContentStyle))
	}
	bottom := box.Render(content)

	label := ""
	if in.Title != "" {
		label = s.style(cfg.TitleStyle).Render(in.Title)
	}
	if in.Subtitle != "" {
		sub := s.style(cfg.SubtitleStyle).Render(in.Subtitle)
		if label != "" {
			label += " - " + sub
		} else {
			label = sub
		}
	}
	if label != "" {
		label = " " + label + " "
	}

	topLeft := edge.Render(border.TopLeft)
	topRight := edge.Render(border.TopRight)
	gap := max(0, lipgloss.Width(bottom)-lipgloss.Width(topLeft+topRight+label))
	left := gap / 2
	top := topLeft +
		edge.Render(strings.Repeat(border.Top, left)) +
		label +
		edge.Render(strings.Repeat(border.Top, gap-left)) +
		topRight

	return top + "\n" + bottom
}

// Column describes one table column.
type Column struct {
	Name  string
	Style string // markup style for body cells, e.g. "cyan"
	Align lipgloss.Position
}

// TableInput is a table's columns, rows and decoration.
type TableInput struct {
	Columns     []Column
	Rows        [][]string
	HeaderStyle string // markup style for the header row, e.g. "bold"
	BorderColor string
}

// Table renders in as a bordered table. Rows shorter than the column list
// are padded with empty cells.
func (s Styler) Table(in TableInput) string {
	headers := make([]string, len(in.Columns))
	for i, col := range in.Columns {
		headers[i] = col.Name
	}

	rows := make([][]string, len(in.Rows))
	for i, row := range in.Rows {
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		}
		rows[i] = row
	}

	borderStyle := s.lg.NewStyle()
	if in.BorderColor != "" {
		borderStyle = borderStyle.Foreground(markup.ColorFor(in.BorderColor))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := s.lg.NewStyle().Padding(0, 1)
			if col < len(in.Columns) {
				st = st.Align(in.Columns[col].Align)
			}
			if row == table.HeaderRow {
				return markup.ApplyStyle(st, in.HeaderStyle)
			}
			if col < len(in.Columns) {
				st = markup.ApplyStyle(st, in.Columns[col].Style)
			}
			return st
		})

	return t.String()
}

// Group stacks rendered blocks vertically.
func Group(elements []string) string {
	return strings.Join(elements, "\n")
}
