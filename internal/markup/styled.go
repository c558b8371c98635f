package markup

import "strings"

// StyleKind describes a semantic style for rendered message text.
type StyleKind int

const (
	StylePlain StyleKind = iota
	StyleEmphasis
	StyleStrong
	StyleInlineCode
	StyleBullet
	StyleCodeBlock
	StyleCodeLabel
	StyleComment
	StyleString
	StyleKeyword
	StyleNumber
)

// StyledSpan is a chunk of text with an associated style.
type StyledSpan struct {
	Text  string
	Style StyleKind
}

// StyledLine is one display line of a rendered message.
type StyledLine []StyledSpan

// Text joins the line's span texts.
func (l StyledLine) Text() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Text)
	}
	return b.String()
}

// RenderStyledLines renders a message into styled display lines for a
// terminal: prose with inline styles and bullets, code blocks with a
// language label and per-token styles. Segments are separated by one
// blank line.
func RenderStyledLines(raw string) []StyledLine {
	var lines []StyledLine
	for _, seg := range SplitMessage(raw) {
		var rendered []StyledLine
		if seg.Kind == SegmentCode {
			rendered = codeStyledLines(seg)
		} else {
			rendered = proseStyledLines(seg.Body)
		}
		if len(rendered) > 0 && len(lines) > 0 {
			lines = append(lines, nil)
		}
		lines = append(lines, rendered...)
	}
	return lines
}

func proseStyledLines(text string) []StyledLine {
	var lines []StyledLine
	var current StyledLine

	flush := func() {
		lines = append(lines, current)
		current = nil
	}

	for _, n := range parseInline(text) {
		switch n.kind {
		case inlineBreak:
			flush()
		case inlineListItem:
			current = append(current, StyledSpan{Text: "• ", Style: StyleBullet})
			current = appendInlineSpans(current, n.children, StylePlain)
		default:
			current = appendInlineSpans(current, []inlineNode{n}, StylePlain)
		}
	}
	if len(current) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

func appendInlineSpans(spans StyledLine, nodes []inlineNode, base StyleKind) StyledLine {
	for _, n := range nodes {
		switch n.kind {
		case inlineText:
			spans = append(spans, StyledSpan{Text: n.text, Style: base})
		case inlineCode:
			spans = append(spans, StyledSpan{Text: n.text, Style: StyleInlineCode})
		case inlineStrong:
			spans = appendInlineSpans(spans, n.children, StyleStrong)
		case inlineEmphasis:
			spans = appendInlineSpans(spans, n.children, StyleEmphasis)
		case inlineBreak:
			spans = append(spans, StyledSpan{Text: "\n", Style: base})
		case inlineListItem:
			spans = append(spans, StyledSpan{Text: "• ", Style: StyleBullet})
			spans = appendInlineSpans(spans, n.children, base)
		}
	}
	return spans
}

func codeStyledLines(seg Segment) []StyledLine {
	tokens := ClassifyTokens(seg.Body, seg.Language)
	body := strings.Split(seg.Body, "\n")
	lines := make([]StyledLine, 0, len(body)+1)
	lines = append(lines, StyledLine{{Text: "[" + seg.Language + "]", Style: StyleCodeLabel}})

	offset := 0
	cursor := 0
	for _, line := range body {
		runes := []rune(line)
		styled := StyledLine{{Text: codeIndent, Style: StyleCodeBlock}}
		pos := 0
		for pos < len(runes) {
			global := offset + pos
			for cursor < len(tokens) && tokens[cursor].End <= global {
				cursor++
			}
			if cursor < len(tokens) && tokens[cursor].Start <= global {
				end := tokens[cursor].End - offset
				if end > len(runes) {
					end = len(runes)
				}
				styled = append(styled, StyledSpan{
					Text:  string(runes[pos:end]),
					Style: tokenStyle(tokens[cursor].Kind),
				})
				pos = end
				continue
			}
			next := len(runes)
			if cursor < len(tokens) && tokens[cursor].Start-offset < next {
				next = tokens[cursor].Start - offset
			}
			styled = append(styled, StyledSpan{Text: string(runes[pos:next]), Style: StyleCodeBlock})
			pos = next
		}
		lines = append(lines, styled)
		offset += len(runes) + 1
	}
	return lines
}

func tokenStyle(kind TokenKind) StyleKind {
	switch kind {
	case TokenComment:
		return StyleComment
	case TokenString:
		return StyleString
	case TokenKeyword:
		return StyleKeyword
	default:
		return StyleNumber
	}
}
