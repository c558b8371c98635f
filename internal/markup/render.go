package markup

import (
	"encoding/json"
	"fmt"
	"io"
)

// RenderedSegment is one displayable unit of a rendered message, tagged
// "prose" or "code". Content carries the marker-formatted text; Language
// is the resolved fence tag of code segments.
type RenderedSegment struct {
	Kind     string `json:"kind"`
	Language string `json:"language,omitempty"`
	Content  string `json:"content"`
}

// RenderMessage runs the whole pipeline over one raw message: it splits
// the message into segments, formats prose through the inline rules and
// code through the token highlighter. The result is never empty and every
// input, however malformed, renders.
func RenderMessage(raw string) []RenderedSegment {
	segments := SplitMessage(raw)
	out := make([]RenderedSegment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, renderSegment(seg))
	}
	return out
}

func renderSegment(seg Segment) RenderedSegment {
	if seg.Kind == SegmentCode {
		return RenderedSegment{
			Kind:     SegmentCode.String(),
			Language: seg.Language,
			Content:  Highlight(seg.Body, seg.Language),
		}
	}
	return RenderedSegment{
		Kind:    SegmentProse.String(),
		Content: FormatProse(seg.Body),
	}
}

// EncodeJSON writes the rendered message as an indented JSON array.
func EncodeJSON(w io.Writer, segments []RenderedSegment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(segments); err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	return nil
}
