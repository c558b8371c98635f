package textutil

import "strings"

// invisibleRuneLabels maps bidi controls and other zero-width formatting
// runes to visible placeholders. Left alone these runes can reorder or hide
// message text on screen.
var invisibleRuneLabels = map[rune]string{
	0x061C: "⟪ALM⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x00AD: "⟪SHY⟫",
	0x180E: "⟪MVS⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0x206A: "⟪ISS⟫",
	0x206B: "⟪ASS⟫",
	0x206C: "⟪IAFS⟫",
	0x206D: "⟪AAFS⟫",
	0x206E: "⟪NADS⟫",
	0x206F: "⟪NODS⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeDisplayText rewrites message text so it is safe to place in a
// terminal cell: tabs and line breaks become spaces, other control runes
// become '?', and invisible formatting runes become visible placeholders.
// Text that needs no rewriting is returned as is.
func SanitizeDisplayText(text string) string {
	for _, r := range text {
		if needsDisplayRewrite(r) {
			return rewriteForDisplay(text)
		}
	}
	return text
}

func needsDisplayRewrite(r rune) bool {
	if _, ok := invisibleRuneLabels[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7F
}

func rewriteForDisplay(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case invisibleRuneLabels[r] != "":
			b.WriteString(invisibleRuneLabels[r])
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7F:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
