package markup

// TokenKind classifies a highlighted span of code.
type TokenKind int

const (
	TokenComment TokenKind = iota
	TokenString
	TokenKeyword
	TokenNumber
)

func (k TokenKind) String() string {
	switch k {
	case TokenComment:
		return "comment"
	case TokenString:
		return "string"
	case TokenKeyword:
		return "keyword"
	default:
		return "number"
	}
}

// TokenSpan is a classified region of a code body. Indices are rune
// offsets, half-open.
type TokenSpan struct {
	Start int
	End   int
	Kind  TokenKind
}

// ClassifyTokens runs the classification passes for language over code and
// returns the classified spans, sorted by start and pairwise disjoint.
// Unknown languages get no comment or keyword rules; strings and numbers
// are always classified. Unclassified text is simply absent from the
// result.
func ClassifyTokens(code, language string) []TokenSpan {
	rules := rulesFor(language)
	runes := []rune(code)
	spans := scanCommentsAndStrings(runes, rules)
	spans = mergeTokenSpans(spans, scanKeywords(runes, rules.keywords, spans))
	spans = mergeTokenSpans(spans, scanNumbers(runes, spans))
	return spans
}

// scanCommentsAndStrings resolves the comment and string rules in one
// left-to-right scan: whichever construct opens earlier runs to its end,
// and the other's markers inside it are inert. A comment marker inside a
// string therefore never opens a comment, and a quote inside a comment
// never opens a string. Unterminated constructs claim nothing; the scan
// moves on and later characters stay available to the remaining rules.
func scanCommentsAndStrings(runes []rune, rules languageRules) []TokenSpan {
	var spans []TokenSpan
	i := 0
	for i < len(runes) {
		if rules.docQuotes {
			if end, ok := matchTripleQuote(runes, i); ok {
				spans = append(spans, TokenSpan{Start: i, End: end, Kind: TokenComment})
				i = end
				continue
			}
		}
		if rules.lineComment != "" && hasRunePrefix(runes, i, rules.lineComment) {
			end := indexRune(runes, i, '\n')
			if end == -1 {
				end = len(runes)
			}
			spans = append(spans, TokenSpan{Start: i, End: end, Kind: TokenComment})
			i = end
			continue
		}
		if rules.blockOpen != "" && hasRunePrefix(runes, i, rules.blockOpen) {
			if end, ok := findRuneSeq(runes, i+len(rules.blockOpen), rules.blockClose); ok {
				spans = append(spans, TokenSpan{Start: i, End: end + len(rules.blockClose), Kind: TokenComment})
				i = end + len(rules.blockClose)
				continue
			}
		}
		if r := runes[i]; r == '\'' || r == '"' || r == '`' {
			if end := indexRune(runes, i+1, r); end != -1 {
				spans = append(spans, TokenSpan{Start: i, End: end + 1, Kind: TokenString})
				i = end + 1
				continue
			}
		}
		i++
	}
	return spans
}

// matchTripleQuote matches a complete triple-quoted run ("""…""" or
// '''…''') starting at pos.
func matchTripleQuote(runes []rune, pos int) (end int, ok bool) {
	if pos+3 > len(runes) {
		return 0, false
	}
	q := runes[pos]
	if q != '\'' && q != '"' {
		return 0, false
	}
	if runes[pos+1] != q || runes[pos+2] != q {
		return 0, false
	}
	for i := pos + 3; i+3 <= len(runes); i++ {
		if runes[i] == q && runes[i+1] == q && runes[i+2] == q {
			return i + 3, true
		}
	}
	return 0, false
}

// scanKeywords classifies whole word runs that match the keyword set,
// skipping spans claimed by the comment and string rules.
func scanKeywords(runes []rune, keywords map[string]bool, claimed []TokenSpan) []TokenSpan {
	if len(keywords) == 0 {
		return nil
	}
	var spans []TokenSpan
	cursor := 0
	i := 0
	for i < len(runes) {
		if next, inside := skipClaimed(claimed, &cursor, i); inside {
			i = next
			continue
		}
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}
		if keywords[string(runes[i:j])] {
			spans = append(spans, TokenSpan{Start: i, End: j, Kind: TokenKeyword})
		}
		i = j
	}
	return spans
}

// scanNumbers classifies bare numeric literals: a digit run with an
// optional single fractional part, bounded by non-word runes.
func scanNumbers(runes []rune, claimed []TokenSpan) []TokenSpan {
	var spans []TokenSpan
	cursor := 0
	i := 0
	for i < len(runes) {
		if next, inside := skipClaimed(claimed, &cursor, i); inside {
			i = next
			continue
		}
		if !isWordRune(runes[i]) {
			i++
			continue
		}
		if !isDigit(runes[i]) || (i > 0 && isWordRune(runes[i-1])) {
			// Mid-word, or a word starting with a letter: skip the run.
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			continue
		}
		j := i
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
		if j+1 < len(runes) && runes[j] == '.' && isDigit(runes[j+1]) {
			j++
			for j < len(runes) && isDigit(runes[j]) {
				j++
			}
		}
		if j < len(runes) && isWordRune(runes[j]) {
			// Trailing word runes make this an identifier, not a number.
			for j < len(runes) && isWordRune(runes[j]) {
				j++
			}
			i = j
			continue
		}
		spans = append(spans, TokenSpan{Start: i, End: j, Kind: TokenNumber})
		i = j
	}
	return spans
}

// skipClaimed advances the cursor to the span relevant for pos and reports
// whether pos is inside it, returning the position after that span.
func skipClaimed(claimed []TokenSpan, cursor *int, pos int) (int, bool) {
	for *cursor < len(claimed) && claimed[*cursor].End <= pos {
		*cursor++
	}
	if *cursor < len(claimed) && claimed[*cursor].Start <= pos {
		return claimed[*cursor].End, true
	}
	return pos, false
}

// mergeTokenSpans merges two span lists, each sorted and disjoint, into
// one sorted list. The inputs never overlap each other.
func mergeTokenSpans(a, b []TokenSpan) []TokenSpan {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	merged := make([]TokenSpan, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Start <= b[j].Start {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}

func hasRunePrefix(runes []rune, pos int, prefix string) bool {
	for _, r := range prefix {
		if pos >= len(runes) || runes[pos] != r {
			return false
		}
		pos++
	}
	return true
}

func findRuneSeq(runes []rune, start int, seq string) (int, bool) {
	for i := start; i < len(runes); i++ {
		if hasRunePrefix(runes, i, seq) {
			return i, true
		}
	}
	return 0, false
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
