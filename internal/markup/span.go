package markup

import "sort"

// inlineSpan is a region of prose text claimed by a formatting rule.
// Indices are rune offsets, half-open. Delimiter runes are inside the span
// but outside its content.
type inlineSpan struct {
	kind     inlineKind
	start    int
	end      int
	openLen  int
	closeLen int
	// children are spans claimed by earlier rules that this span wraps.
	children []inlineSpan
}

func (s inlineSpan) contentStart() int { return s.start + s.openLen }
func (s inlineSpan) contentEnd() int   { return s.end - s.closeLen }

// claimSet holds the spans claimed by the formatting rules. Spans of
// finished rules live in spans, sorted by start and pairwise disjoint.
// The rule currently scanning appends to fresh, which stays sorted on its
// own because every rule scans left to right; merge folds it into spans
// once the rule is done. Rules only ever query positions past their own
// latest claim, so fresh spans never need to be visible to spanAt.
type claimSet struct {
	spans []inlineSpan
	fresh []inlineSpan
}

func (c *claimSet) add(s inlineSpan) {
	c.fresh = append(c.fresh, s)
}

// merge folds the finished rule's claims into the sorted span list in one
// linear pass. A claim may wrap wholly around earlier spans; wrapped spans
// move into the claim's children, so the top level stays disjoint.
func (c *claimSet) merge() {
	if len(c.fresh) == 0 {
		return
	}
	merged := make([]inlineSpan, 0, len(c.spans)+len(c.fresh))
	i := 0
	for _, f := range c.fresh {
		for i < len(c.spans) && c.spans[i].start < f.start {
			merged = append(merged, c.spans[i])
			i++
		}
		for i < len(c.spans) && c.spans[i].end <= f.end {
			f.children = append(f.children, c.spans[i])
			i++
		}
		merged = append(merged, f)
	}
	merged = append(merged, c.spans[i:]...)
	c.spans = merged
	c.fresh = nil
}

// spanAt returns the merged span covering pos, if any.
func (c *claimSet) spanAt(pos int) (inlineSpan, bool) {
	i := sort.Search(len(c.spans), func(i int) bool {
		return c.spans[i].end > pos
	})
	if i < len(c.spans) && c.spans[i].start <= pos {
		return c.spans[i], true
	}
	return inlineSpan{}, false
}

func (c *claimSet) claimed(pos int) bool {
	_, ok := c.spanAt(pos)
	return ok
}
