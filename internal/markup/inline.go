package markup

type inlineKind int

const (
	inlineText inlineKind = iota
	inlineCode
	inlineStrong
	inlineEmphasis
	inlineListItem
	inlineBreak
)

// inlineNode is one node of the formatted prose tree. Code and text nodes
// carry literal text; strong, emphasis and list-item nodes carry children.
type inlineNode struct {
	kind     inlineKind
	text     string
	children []inlineNode
}

// parseInline applies the inline formatting rules to prose text, in their
// fixed order, and returns the resulting node forest. Each rule claims
// spans over the original text; claimed spans are opaque to later rules,
// which may only wrap around them. Unmatched delimiters stay literal.
func parseInline(text string) []inlineNode {
	runes := []rune(text)
	claims := &claimSet{}
	claimInlineCode(runes, claims)
	claims.merge()
	claimEmphasis(runes, claims, 2)
	claims.merge()
	claimEmphasis(runes, claims, 1)
	claims.merge()
	claimListItems(runes, claims)
	claims.merge()
	claimLineBreaks(runes, claims)
	claims.merge()
	return buildNodes(runes, claims.spans, 0, len(runes))
}

// claimInlineCode claims single-backtick code spans. The closing delimiter
// is the next backtick; content must be non-empty and may span newlines.
func claimInlineCode(runes []rune, claims *claimSet) {
	i := 0
	for i < len(runes) {
		if runes[i] != '`' {
			i++
			continue
		}
		end := indexRune(runes, i+1, '`')
		if end == -1 || end == i+1 {
			i++
			continue
		}
		claims.add(inlineSpan{
			kind:     inlineCode,
			start:    i,
			end:      end + 1,
			openLen:  1,
			closeLen: 1,
		})
		i = end + 1
	}
}

// claimEmphasis claims asterisk-delimited spans: width 2 for strong, width
// 1 for emphasis. Content must be non-empty, stay on one line, and contain
// no unclaimed asterisk run narrower than the delimiter.
func claimEmphasis(runes []rune, claims *claimSet, width int) {
	kind := inlineEmphasis
	if width == 2 {
		kind = inlineStrong
	}
	i := 0
	for i < len(runes) {
		if s, ok := claims.spanAt(i); ok {
			i = s.end
			continue
		}
		if !delimiterAt(runes, claims, i, width) {
			i++
			continue
		}
		closing := findClosingAsterisks(runes, claims, i+width, width)
		if closing == -1 {
			i++
			continue
		}
		claims.add(inlineSpan{
			kind:     kind,
			start:    i,
			end:      closing + width,
			openLen:  width,
			closeLen: width,
		})
		i = closing + width
	}
}

// delimiterAt reports whether width unclaimed asterisks begin at pos.
func delimiterAt(runes []rune, claims *claimSet, pos, width int) bool {
	if pos+width > len(runes) {
		return false
	}
	for j := pos; j < pos+width; j++ {
		if runes[j] != '*' || claims.claimed(j) {
			return false
		}
	}
	return true
}

// findClosingAsterisks scans content for the closing delimiter, skipping
// claimed spans atomically. The content ends at the first unclaimed
// asterisk; for strong that asterisk must start a pair, otherwise the match
// fails. Newlines and end of text fail the match.
func findClosingAsterisks(runes []rune, claims *claimSet, start, width int) int {
	i := start
	for i < len(runes) {
		if s, ok := claims.spanAt(i); ok {
			i = s.end
			continue
		}
		r := runes[i]
		if r == '\n' {
			return -1
		}
		if r != '*' {
			i++
			continue
		}
		if i == start {
			return -1
		}
		if width == 2 {
			if i+1 < len(runes) && runes[i+1] == '*' && !claims.claimed(i+1) {
				return i
			}
			return -1
		}
		return i
	}
	return -1
}

// claimListItems claims lines beginning with "* " or "- ". The two marker
// runes are the opening delimiter; the span runs to the line's unclaimed
// newline, which stays for the break rule. Positions after newlines inside
// claimed spans do not count as line starts.
func claimListItems(runes []rune, claims *claimSet) {
	lineStart := true
	i := 0
	for i < len(runes) {
		if s, ok := claims.spanAt(i); ok {
			i = s.end
			lineStart = false
			continue
		}
		if lineStart && (runes[i] == '*' || runes[i] == '-') &&
			i+1 < len(runes) && runes[i+1] == ' ' {
			end := endOfListLine(runes, claims, i+2)
			if end > i+2 {
				claims.add(inlineSpan{
					kind:    inlineListItem,
					start:   i,
					end:     end,
					openLen: 2,
				})
				i = end
				lineStart = false
				continue
			}
		}
		lineStart = runes[i] == '\n'
		i++
	}
}

func endOfListLine(runes []rune, claims *claimSet, start int) int {
	i := start
	for i < len(runes) {
		if s, ok := claims.spanAt(i); ok {
			i = s.end
			continue
		}
		if runes[i] == '\n' {
			return i
		}
		i++
	}
	return i
}

// claimLineBreaks claims every remaining unclaimed newline.
func claimLineBreaks(runes []rune, claims *claimSet) {
	i := 0
	for i < len(runes) {
		if s, ok := claims.spanAt(i); ok {
			i = s.end
			continue
		}
		if runes[i] == '\n' {
			claims.add(inlineSpan{
				kind:    inlineBreak,
				start:   i,
				end:     i + 1,
				openLen: 1,
			})
		}
		i++
	}
}

func buildNodes(runes []rune, spans []inlineSpan, start, end int) []inlineNode {
	var nodes []inlineNode
	pos := start
	for _, s := range spans {
		if s.start > pos {
			nodes = append(nodes, inlineNode{kind: inlineText, text: string(runes[pos:s.start])})
		}
		nodes = append(nodes, buildNode(runes, s))
		pos = s.end
	}
	if pos < end {
		nodes = append(nodes, inlineNode{kind: inlineText, text: string(runes[pos:end])})
	}
	return nodes
}

func buildNode(runes []rune, s inlineSpan) inlineNode {
	switch s.kind {
	case inlineCode:
		return inlineNode{kind: inlineCode, text: string(runes[s.contentStart():s.contentEnd()])}
	case inlineBreak:
		return inlineNode{kind: inlineBreak}
	default:
		return inlineNode{
			kind:     s.kind,
			children: buildNodes(runes, s.children, s.contentStart(), s.contentEnd()),
		}
	}
}

func indexRune(runes []rune, start int, target rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
