// Package term renders menus into a character-cell buffer. Every row
// is one cell high, widths are measured with go-runewidth so East
// Asian wide runes occupy two cells, and events are injected through a
// channel. It doubles as the reference backend for driving menus in
// tests.
package term

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

type cell struct {
	r  rune
	fg manicotti.Colour
}

// Screen is a fixed-size cell grid implementing manicotti.Host.
type Screen struct {
	w, h   int
	cells  []cell
	events chan manicotti.Event
}

// NewScreen creates a screen of w by h cells.
func NewScreen(w, h int) *Screen {
	s := &Screen{w: w, h: h, events: make(chan manicotti.Event, 64)}
	s.clear()
	return s
}

func (s *Screen) clear() {
	s.cells = make([]cell, s.w*s.h)
	for i := range s.cells {
		s.cells[i].r = ' '
	}
}

// Size returns the screen extent in cells.
func (s *Screen) Size() (int, int) { return s.w, s.h }

// CharHeight is always one cell.
func (s *Screen) CharHeight() int { return 1 }

// StringWidth measures s in cells.
func (s *Screen) StringWidth(str string) int {
	return runewidth.StringWidth(str)
}

// SplitText word-wraps s to maxWidth cells, keeping at most maxHeight
// lines (0 means unbounded). It always returns at least one line.
func (s *Screen) SplitText(str string, maxWidth, maxHeight int) []string {
	wrapped := runewidth.Wrap(str, maxWidth)
	lines := strings.Split(wrapped, "\n")
	if maxHeight > 0 && len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// Push injects an event for the next WaitEvent call. It never blocks;
// events beyond the buffer are dropped.
func (s *Screen) Push(ev manicotti.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// PushKeys injects one KeyEvent per key.
func (s *Screen) PushKeys(keys ...manicotti.Key) {
	for _, k := range keys {
		s.Push(manicotti.KeyEvent{Key: k})
	}
}

// WaitEvent blocks up to timeout for the next injected event.
func (s *Screen) WaitEvent(timeout time.Duration) manicotti.Event {
	select {
	case ev := <-s.events:
		return ev
	case <-time.After(timeout):
		return nil
	}
}

func (s *Screen) put(x, y int, r rune, fg manicotti.Colour) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.cells[y*s.w+x] = cell{r: r, fg: fg}
}

// Present draws a frame into the cell grid. Quads are ignored (cell
// terminals have no alpha backgrounds) and lines become rules.
func (s *Screen) Present(f *manicotti.Frame) {
	s.clear()

	for _, l := range f.Lines {
		if l.Y1 == l.Y2 {
			for x := l.X1; x < l.X2; x++ {
				s.put(x, l.Y1, '-', l.Colour)
			}
		} else {
			for y := l.Y1; y < l.Y2; y++ {
				s.put(l.X1, y, '|', l.Colour)
			}
		}
	}

	for _, t := range f.Texts {
		x := t.X
		for _, r := range t.Text {
			if x-t.X >= s.w {
				break
			}
			s.put(x, t.Y, r, t.Colour)
			x += runewidth.RuneWidth(r)
		}
	}
}

// String renders the grid as text, one line per row, trailing spaces
// trimmed.
func (s *Screen) String() string {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		var line strings.Builder
		for x := 0; x < s.w; x++ {
			line.WriteRune(s.cells[y*s.w+x].r)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Line returns row y with trailing spaces trimmed.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	var line strings.Builder
	for x := 0; x < s.w; x++ {
		line.WriteRune(s.cells[y*s.w+x].r)
	}
	return strings.TrimRight(line.String(), " ")
}
