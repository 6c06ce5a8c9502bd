// Purpose: Escape literal bracket text so a terminal markup renderer only sees real style tags.
// Exports: Escape, IsStyleTag, Segments, Segment, StyleTokens.
// Role: Pre-processing step for any string headed into a markup renderer.
// Invariants: Escape is total and pure; segment content never contains '[' or ']'.
// Notes: Escape is not idempotent. A segment that was already escaped is seen
// as "\" + "[content\]" and matched again on a second pass.
package markup

import (
	"regexp"
	"strings"
)

// styleTokens is the closed set of words that may appear inside a style tag.
// Matching is case-sensitive.
var styleTokens = []string{
	"bold", "red", "green", "blue", "yellow", "magenta",
	"cyan", "white", "black", "italic", "dim",
}

// StyleTokens returns a copy of the words a style tag may contain.
func StyleTokens() []string {
	return append([]string(nil), styleTokens...)
}

var (
	// A segment runs from '[' to the first ']' and may not contain another '['.
	// In "[foo [bar] baz]" only "[bar]" is a segment.
	segmentRe = regexp.MustCompile(`\[([^\[\]]*)\]`)

	// styleStripRe removes everything a style tag is allowed to contain.
	styleStripRe = regexp.MustCompile(
		strings.Join(styleTokens, "|") + `|\s|#[0-9a-fA-F]{6}`,
	)
)

// Segment is one bracketed run found in a string.
type Segment struct {
	Start   int    // byte offset of '['
	End     int    // byte offset just past ']'
	Content string // text between the brackets
	Style   bool   // true when Content is a style directive
}

// Escape rewrites every bracketed segment whose content is not purely a style
// directive as \[content\], leaving style tags and all other text unchanged.
func Escape(text string) string {
	if !strings.Contains(text, "]") {
		return text
	}
	return segmentRe.ReplaceAllStringFunc(text, func(match string) string {
		content := match[1 : len(match)-1]
		if IsStyleTag(content) {
			return match
		}
		return `\[` + content + `\]`
	})
}

// IsStyleTag reports whether content, the text between a pair of brackets,
// consists only of style tokens, whitespace and #rrggbb colors. Empty content
// counts as a style tag.
func IsStyleTag(content string) bool {
	residue := styleStripRe.ReplaceAllString(content, "")
	return strings.TrimSpace(residue) == ""
}

// Segments returns every segment Escape would consider, in order.
func Segments(text string) []Segment {
	matches := segmentRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	segments := make([]Segment, 0, len(matches))
	for _, m := range matches {
		content := text[m[2]:m[3]]
		segments = append(segments, Segment{
			Start:   m[0],
			End:     m[1],
			Content: content,
			Style:   IsStyleTag(content),
		})
	}
	return segments
}
