package markup

import (
	"fmt"
	"strings"
)

// escapeHTML escapes the characters the presentation layer would otherwise
// interpret as markup. Quotes are escaped too since the output also lands
// in attribute values. Literal text is always escaped before markers are
// inserted around it, never after.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// FormatProse applies the inline markup rules to prose text and returns it
// with HTML markers: <code>, <strong>, <em>, <li> and <br/> around escaped
// literal text.
func FormatProse(text string) string {
	var b strings.Builder
	writeInlineHTML(&b, parseInline(text))
	return b.String()
}

func writeInlineHTML(b *strings.Builder, nodes []inlineNode) {
	for _, n := range nodes {
		switch n.kind {
		case inlineText:
			b.WriteString(escapeHTML(n.text))
		case inlineCode:
			b.WriteString("<code>")
			b.WriteString(escapeHTML(n.text))
			b.WriteString("</code>")
		case inlineStrong:
			b.WriteString("<strong>")
			writeInlineHTML(b, n.children)
			b.WriteString("</strong>")
		case inlineEmphasis:
			b.WriteString("<em>")
			writeInlineHTML(b, n.children)
			b.WriteString("</em>")
		case inlineListItem:
			b.WriteString("<li>")
			writeInlineHTML(b, n.children)
			b.WriteString("</li>")
		case inlineBreak:
			b.WriteString("<br/>")
		}
	}
}

// Highlight classifies tokens in code for language and returns the code
// with each classified span wrapped in a token marker:
// <span class="token-KIND">…</span> around escaped literal text.
func Highlight(code, language string) string {
	spans := ClassifyTokens(code, language)
	runes := []rune(code)
	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s.Start > pos {
			b.WriteString(escapeHTML(string(runes[pos:s.Start])))
		}
		b.WriteString(`<span class="token-`)
		b.WriteString(s.Kind.String())
		b.WriteString(`">`)
		b.WriteString(escapeHTML(string(runes[s.Start:s.End])))
		b.WriteString("</span>")
		pos = s.End
	}
	if pos < len(runes) {
		b.WriteString(escapeHTML(string(runes[pos:])))
	}
	return b.String()
}

// RenderHTML encodes a rendered message as one HTML fragment: prose
// segments as marker text, code segments wrapped in a language-classed
// pre/code block.
func RenderHTML(segments []RenderedSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Kind == SegmentCode.String() {
			parts = append(parts, fmt.Sprintf("<pre><code class=\"language-%s\">%s</code></pre>",
				escapeHTML(seg.Language), seg.Content))
			continue
		}
		parts = append(parts, seg.Content)
	}
	return strings.Join(parts, "\n")
}
