package markup

import "strings"

// DefaultLanguage is assigned to fenced code that carries no language tag.
const DefaultLanguage = "text"

// SegmentKind distinguishes prose from fenced code.
type SegmentKind int

const (
	SegmentProse SegmentKind = iota
	SegmentCode
)

func (k SegmentKind) String() string {
	if k == SegmentCode {
		return "code"
	}
	return "prose"
}

// Segment is one contiguous region of a message.
type Segment struct {
	Kind     SegmentKind
	Language string // code segments only
	Body     string
}

// SplitMessage divides raw message text into an ordered list of prose and
// fenced-code segments. The list is never empty: a message without fences
// is one prose segment, and an empty message is one empty prose segment.
//
// A fence line is a line whose trimmed content starts with a run of three
// or more backticks; the trimmed remainder of the opening line is the
// language tag. A closing fence line is a trimmed backtick run and nothing
// else. An opening fence with no closing line degrades to prose together
// with everything after it. Whitespace-only prose between or around fences
// is dropped; kept prose is trimmed of leading and trailing blank lines.
// Code bodies are preserved exactly.
func SplitMessage(raw string) []Segment {
	lines := strings.Split(raw, "\n")
	var segments []Segment
	var prose []string

	flushProse := func() {
		trimmed := trimBlankEdges(prose)
		prose = nil
		if len(trimmed) == 0 {
			return
		}
		segments = append(segments, Segment{
			Kind: SegmentProse,
			Body: strings.Join(trimmed, "\n"),
		})
	}

	i := 0
	for i < len(lines) {
		tag, ok := detectFence(strings.TrimSpace(lines[i]))
		if !ok {
			prose = append(prose, lines[i])
			i++
			continue
		}
		body, next, closed := collectFencedBody(lines, i+1)
		if !closed {
			// Unterminated fence: the fence line and the rest of the
			// message stay prose.
			prose = append(prose, lines[i:]...)
			break
		}
		flushProse()
		if tag == "" {
			tag = DefaultLanguage
		}
		segments = append(segments, Segment{
			Kind:     SegmentCode,
			Language: tag,
			Body:     strings.Join(body, "\n"),
		})
		i = next
	}
	flushProse()

	if len(segments) == 0 {
		segments = append(segments, Segment{Kind: SegmentProse})
	}
	return segments
}

// detectFence reports whether a trimmed line opens a fenced code block and
// returns its language tag.
func detectFence(trimmed string) (string, bool) {
	count := countRepeatRune(trimmed, '`')
	if count < 3 {
		return "", false
	}
	return strings.TrimSpace(trimmed[count:]), true
}

// isClosingFence reports whether a line closes a fenced code block: a
// trimmed run of three or more backticks with no trailing tag.
func isClosingFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	count := countRepeatRune(trimmed, '`')
	return count >= 3 && count == len(trimmed)
}

func collectFencedBody(lines []string, start int) (body []string, next int, closed bool) {
	for i := start; i < len(lines); i++ {
		if isClosingFence(lines[i]) {
			return lines[start:i], i + 1, true
		}
	}
	return nil, len(lines), false
}

func trimBlankEdges(lines []string) []string {
	start := 0
	end := len(lines)
	for start < end && isBlankLine(lines[start]) {
		start++
	}
	for end > start && isBlankLine(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func countRepeatRune(text string, target rune) int {
	n := 0
	for _, r := range text {
		if r != target {
			break
		}
		n++
	}
	return n
}
