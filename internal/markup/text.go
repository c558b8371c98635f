package markup

import "strings"

const codeIndent = "    "

// RenderText produces a marker-free plain text rendition of a message for
// terminals without styling: list items become bulleted lines, breaks
// become newlines, and code bodies are indented under a language label.
// Segments are separated by one blank line.
func RenderText(raw string) string {
	var lines []string
	for _, seg := range SplitMessage(raw) {
		var rendered []string
		if seg.Kind == SegmentCode {
			rendered = codeTextLines(seg)
		} else {
			rendered = proseTextLines(seg.Body)
		}
		if len(rendered) > 0 && len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, rendered...)
	}
	return strings.Join(lines, "\n")
}

func proseTextLines(text string) []string {
	var lines []string
	var b strings.Builder

	flush := func() {
		lines = append(lines, b.String())
		b.Reset()
	}

	for _, n := range parseInline(text) {
		switch n.kind {
		case inlineBreak:
			flush()
		case inlineText, inlineCode:
			b.WriteString(n.text)
		case inlineListItem:
			b.WriteString("• ")
			writeInlineText(&b, n.children)
		default:
			writeInlineText(&b, n.children)
		}
	}
	if b.Len() > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func writeInlineText(b *strings.Builder, nodes []inlineNode) {
	for _, n := range nodes {
		switch n.kind {
		case inlineText, inlineCode:
			b.WriteString(n.text)
		case inlineBreak:
			b.WriteRune('\n')
		default:
			writeInlineText(b, n.children)
		}
	}
}

func codeTextLines(seg Segment) []string {
	body := strings.Split(seg.Body, "\n")
	lines := make([]string, 0, len(body)+1)
	lines = append(lines, codeIndent+"["+seg.Language+"]")
	for _, line := range body {
		lines = append(lines, codeIndent+line)
	}
	return lines
}
