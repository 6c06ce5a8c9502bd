// JSON output shapes.
package stylemark

import (
	"encoding/json"
	"io"

	"github.com/sandover/stylemark/internal/markup"
)

type escapeOutput struct {
	Input   string `json:"input"`
	Escaped string `json:"escaped"`
}

type segmentItem struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
}

type textOutput struct {
	Text string `json:"text"`
}

const (
	kindStyle   = "style"
	kindLiteral = "literal"
)

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func segmentKind(seg markup.Segment) string {
	if seg.Style {
		return kindStyle
	}
	return kindLiteral
}

func buildSegmentItems(segments []markup.Segment) []segmentItem {
	items := make([]segmentItem, 0, len(segments))
	for _, seg := range segments {
		items = append(items, segmentItem{
			Start:   seg.Start,
			End:     seg.End,
			Content: seg.Content,
			Kind:    segmentKind(seg),
		})
	}
	return items
}
