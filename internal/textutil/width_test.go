package textutil

import "testing"

func TestDisplayWidthCountsColumns(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"cjk wide", "世界", 4},
		{"mixed ascii and wide", "a世b", 4},
		{"combining accent collapses", "é", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTabsAlignsToTabStops(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		tabWidth int
		want     string
	}{
		{"mid column", "a\tb", 4, "a   b"},
		{"line start", "\tx", 4, "    x"},
		{"at tab stop", "abcd\te", 4, "abcd    e"},
		{"wide rune advances two columns", "世\tx", 4, "世  x"},
		{"newline resets column", "a\tb\nc\td", 4, "a   b\nc   d"},
		{"narrow stops", "a\tb", 2, "a b"},
		{"no tabs returned unchanged", "plain text", 4, "plain text"},
		{"zero width falls back to default", "a\tb", 0, "a   b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTabs(tt.text, tt.tabWidth); got != tt.want {
				t.Fatalf("ExpandTabs(%q, %d)=%q want %q", tt.text, tt.tabWidth, got, tt.want)
			}
		})
	}
}
