package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop used when the configuration does not set one.
const DefaultTabWidth = 4

// DisplayWidth reports the terminal column width of text. Grapheme clusters
// count once, so an emoji sequence measures as a single glyph.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// ExpandTabs replaces each tab with spaces up to the next tab stop,
// measuring columns in display widths rather than runes. Newlines reset the
// column, so multi-line text keeps its per-line alignment. A non-positive
// tabWidth selects DefaultTabWidth.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		switch cluster {
		case "\t":
			spaces := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case "\n", "\r", "\r\n":
			b.WriteString(cluster)
			column = 0
		default:
			b.WriteString(cluster)
			column += DisplayWidth(cluster)
		}
	}
	return b.String()
}
