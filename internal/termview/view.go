// Package termview shows a rendered message in a scrollable terminal
// viewer.
package termview

import (
	"errors"
	"fmt"

	"github.com/CipherCosmos/chatfmt/internal/markup"
	"github.com/CipherCosmos/chatfmt/internal/textutil"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Run displays styled message lines full screen and blocks until the user
// quits. The caller owns screen initialization and cleanup, which lets
// tests drive Run with a tcell simulation screen.
func Run(screen tcell.Screen, title string, lines []markup.StyledLine) error {
	if screen == nil {
		return errors.New("termview: nil screen")
	}
	v := &viewer{
		screen: screen,
		theme:  defaultTheme(),
		title:  title,
		lines:  lines,
	}
	return v.run()
}

type viewer struct {
	screen tcell.Screen
	theme  colorTheme
	title  string
	lines  []markup.StyledLine
	offset int
	quit   bool
}

func (v *viewer) run() error {
	v.render()
	renderPending := false

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			eventCh <- v.screen.PollEvent()
		}
	}()

	for !v.quit {
		if renderPending {
			v.render()
			renderPending = false
		}

		ev := <-eventCh
		if ev == nil {
			// Screen was finalized while we were polling.
			return nil
		}
		if v.handleEvent(ev) {
			renderPending = true
		}
	}
	return nil
}

func (v *viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventResize:
		v.screen.Sync()
		return true
	default:
		return false
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.quit = true
		return false
	case tcell.KeyUp:
		return v.scrollBy(-1)
	case tcell.KeyDown:
		return v.scrollBy(1)
	case tcell.KeyPgUp:
		return v.scrollBy(-v.contentRows())
	case tcell.KeyPgDn:
		return v.scrollBy(v.contentRows())
	case tcell.KeyHome:
		return v.scrollTo(0)
	case tcell.KeyEnd:
		return v.scrollTo(len(v.lines))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.quit = true
			return false
		case 'j':
			return v.scrollBy(1)
		case 'k':
			return v.scrollBy(-1)
		case ' ':
			return v.scrollBy(v.contentRows())
		case 'g':
			return v.scrollTo(0)
		case 'G':
			return v.scrollTo(len(v.lines))
		}
	}
	return false
}

// contentRows is the number of message rows between header and footer.
func (v *viewer) contentRows() int {
	_, h := v.screen.Size()
	rows := h - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v *viewer) maxOffset() int {
	max := len(v.lines) - v.contentRows()
	if max < 0 {
		max = 0
	}
	return max
}

func (v *viewer) scrollBy(delta int) bool {
	return v.scrollTo(v.offset + delta)
}

func (v *viewer) scrollTo(offset int) bool {
	if offset > v.maxOffset() {
		offset = v.maxOffset()
	}
	if offset < 0 {
		offset = 0
	}
	if offset == v.offset {
		return false
	}
	v.offset = offset
	return true
}

func (v *viewer) render() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w > 0 && h > 0 {
		v.drawHeader(w)
		rows := v.contentRows()
		for i := 0; i < rows; i++ {
			idx := v.offset + i
			if idx >= len(v.lines) {
				break
			}
			v.drawLine(1+i, w, v.lines[idx])
		}
		if h >= 2 {
			v.drawFooter(w, h-1)
		}
	}
	v.screen.Show()
}

func (v *viewer) drawHeader(w int) {
	style := v.theme.headerStyle()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, 0, ' ', nil, style)
	}
	v.drawText(1, 0, w-1, textutil.SanitizeDisplayText(v.title), style)
}

func (v *viewer) drawLine(y, w int, line markup.StyledLine) {
	x := 0
	for _, span := range line {
		if x >= w {
			break
		}
		text := textutil.SanitizeDisplayText(span.Text)
		x = v.drawText(x, y, w, text, v.theme.styleFor(span.Style))
	}
}

func (v *viewer) drawFooter(w, y int) {
	start, end := v.visibleRange()
	status := fmt.Sprintf("%d-%d/%d lines  ↑↓/j/k scroll  PgUp/PgDn/Space page  g/G top/end  q/Esc quit",
		start, end, len(v.lines))
	v.drawText(0, y, w, status, v.theme.footerStyle())
}

func (v *viewer) visibleRange() (int, int) {
	total := len(v.lines)
	if total == 0 {
		return 0, 0
	}
	start := v.offset + 1
	if start > total {
		start = total
	}
	end := v.offset + v.contentRows()
	if end > total {
		end = total
	}
	return start, end
}

// drawText draws text at (x, y) clipped to maxX and returns the next
// column. Combining runes attach to the preceding cell; the spare cells of
// wide runes are filled so the style stays unbroken.
func (v *viewer) drawText(x, y, maxX int, text string, style tcell.Style) int {
	runes := []rune(text)
	i := 0
	for i < len(runes) && x < maxX {
		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		v.screen.SetContent(x, y, mainc, combc, style)

		w := runewidth.RuneWidth(mainc)
		if w < 1 {
			w = 1
		}
		for fill := 1; fill < w && x+fill < maxX; fill++ {
			v.screen.SetContent(x+fill, y, ' ', nil, style)
		}
		x += w
	}
	return x
}
