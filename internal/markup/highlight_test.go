package markup

import "testing"

func TestHighlightPythonCommentKeywordsAndNumber(t *testing.T) {
	got := Highlight("def f():\n    # hi\n    return 1", "python")
	want := `<span class="token-keyword">def</span> f():` + "\n" +
		`    <span class="token-comment"># hi</span>` + "\n" +
		`    <span class="token-keyword">return</span> <span class="token-number">1</span>`
	if got != want {
		t.Fatalf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightJSStringCommentAndKeyword(t *testing.T) {
	got := Highlight(`const s = "hi"; // note`, "js")
	want := `<span class="token-keyword">const</span> s = ` +
		`<span class="token-string">&quot;hi&quot;</span>; ` +
		`<span class="token-comment">// note</span>`
	if got != want {
		t.Fatalf("Highlight = %q, want %q", got, want)
	}
}

func TestHighlightUnknownLanguageClassifiesStringsAndNumbers(t *testing.T) {
	spans := ClassifyTokens(`x = "s" + 42 // zip`, "brainfuck")
	want := []TokenSpan{
		{Start: 4, End: 7, Kind: TokenString},
		{Start: 10, End: 12, Kind: TokenNumber},
	}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, got %#v", len(want), spans)
	}
	for i, w := range want {
		if spans[i] != w {
			t.Fatalf("span %d = %#v, want %#v", i, spans[i], w)
		}
	}
}

func TestHighlightStringOpensBeforeCommentMarker(t *testing.T) {
	spans := ClassifyTokens(`"a // b" // c`, "js")
	if len(spans) != 2 {
		t.Fatalf("expected string then comment, got %#v", spans)
	}
	if spans[0].Kind != TokenString || spans[0].Start != 0 || spans[0].End != 8 {
		t.Fatalf("expected comment marker swallowed by string, got %#v", spans[0])
	}
	if spans[1].Kind != TokenComment || spans[1].Start != 9 {
		t.Fatalf("expected trailing comment, got %#v", spans[1])
	}
}

func TestHighlightQuoteInsideCommentStaysComment(t *testing.T) {
	spans := ClassifyTokens(`// say "hi"`, "js")
	if len(spans) != 1 || spans[0].Kind != TokenComment || spans[0].End != 11 {
		t.Fatalf("expected one comment span to end of line, got %#v", spans)
	}
}

func TestHighlightBlockCommentSpansLines(t *testing.T) {
	spans := ClassifyTokens("/* one\ntwo */ return", "ts")
	if len(spans) != 2 {
		t.Fatalf("expected comment and keyword, got %#v", spans)
	}
	if spans[0].Kind != TokenComment || spans[0].Start != 0 || spans[0].End != 13 {
		t.Fatalf("expected block comment span, got %#v", spans[0])
	}
	if spans[1].Kind != TokenKeyword {
		t.Fatalf("expected keyword after comment, got %#v", spans[1])
	}
}

func TestHighlightTripleQuoteIsCommentLike(t *testing.T) {
	spans := ClassifyTokens("'''doc'''\nx = 1", "py")
	if len(spans) != 2 {
		t.Fatalf("expected doc string and number, got %#v", spans)
	}
	if spans[0].Kind != TokenComment || spans[0].Start != 0 || spans[0].End != 9 {
		t.Fatalf("expected triple quote classified as comment, got %#v", spans[0])
	}
	if spans[1].Kind != TokenNumber || spans[1].Start != 14 {
		t.Fatalf("expected number span, got %#v", spans[1])
	}
}

func TestHighlightUnterminatedConstructs(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		language string
		want     []TokenSpan
	}{
		{
			name:     "unterminated block comment claims nothing",
			code:     "/* open",
			language: "js",
			want:     nil,
		},
		{
			name:     "unterminated string claims nothing",
			code:     "'open",
			language: "js",
			want:     nil,
		},
		{
			name:     "unterminated triple quote falls back to string rule",
			code:     "'''ab",
			language: "py",
			want:     []TokenSpan{{Start: 0, End: 2, Kind: TokenString}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTokens(tt.code, tt.language)
			if len(got) != len(tt.want) {
				t.Fatalf("ClassifyTokens(%q) = %#v, want %#v", tt.code, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("span %d = %#v, want %#v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHighlightNumbersRequireWordBoundaries(t *testing.T) {
	spans := ClassifyTokens("x1 2.5 v2 10 1.2.3", "brainfuck")
	want := []TokenSpan{
		{Start: 3, End: 6, Kind: TokenNumber},
		{Start: 10, End: 12, Kind: TokenNumber},
		{Start: 13, End: 16, Kind: TokenNumber},
		{Start: 17, End: 18, Kind: TokenNumber},
	}
	if len(spans) != len(want) {
		t.Fatalf("expected %d number spans, got %#v", len(want), spans)
	}
	for i, w := range want {
		if spans[i] != w {
			t.Fatalf("span %d = %#v, want %#v", i, spans[i], w)
		}
	}
}

func TestHighlightTemplateStringSpansLines(t *testing.T) {
	spans := ClassifyTokens("`tpl\n${x}` + 1", "js")
	if len(spans) != 2 {
		t.Fatalf("expected string and number, got %#v", spans)
	}
	if spans[0].Kind != TokenString || spans[0].Start != 0 || spans[0].End != 10 {
		t.Fatalf("expected template string span, got %#v", spans[0])
	}
}

func TestHighlightClassificationDisjoint(t *testing.T) {
	codes := []struct {
		name     string
		code     string
		language string
	}{
		{"js mix", `const s = "a // b"; /* c */ let n = 3.14 // tail`, "js"},
		{"python mix", "def f(n):\n    '''doc'''\n    # c\n    return n + 'x' + 2", "python"},
		{"unknown mix", "move 3 cells 'left' 2.5", "brainfuck"},
	}

	for _, tt := range codes {
		t.Run(tt.name, func(t *testing.T) {
			spans := ClassifyTokens(tt.code, tt.language)
			for i, s := range spans {
				if s.End <= s.Start {
					t.Fatalf("span %d is empty or inverted: %#v", i, s)
				}
				if i > 0 && s.Start < spans[i-1].End {
					t.Fatalf("span %d overlaps previous: %#v then %#v", i, spans[i-1], s)
				}
			}
		})
	}
}

func TestHighlightDeterministic(t *testing.T) {
	code := `let s = "x"; // c` + "\n" + `let n = 2`
	first := Highlight(code, "js")
	second := Highlight(code, "js")
	if first != second {
		t.Fatalf("expected identical output, got %q then %q", first, second)
	}
}

func TestHighlightEmptyCode(t *testing.T) {
	if got := Highlight("", "js"); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if spans := ClassifyTokens("", "python"); len(spans) != 0 {
		t.Fatalf("expected no spans, got %#v", spans)
	}
}

func TestHighlightEscapesLiteralCode(t *testing.T) {
	got := Highlight(`if (a < b) { s = "<b>" }`, "js")
	want := `<span class="token-keyword">if</span> (a &lt; b) { s = ` +
		`<span class="token-string">&quot;&lt;b&gt;&quot;</span> }`
	if got != want {
		t.Fatalf("Highlight = %q, want %q", got, want)
	}
}
