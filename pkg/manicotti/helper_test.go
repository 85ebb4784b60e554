package manicotti

import (
	"time"
	"unicode/utf8"
)

// testHost is a character-cell host stub: one-cell rows, rune-count
// widths, no real event source. Frames handed to Present are counted so
// render paths can be exercised without a backend.
type testHost struct {
	w, h     int
	presents int
}

func newTestHost() *testHost {
	return &testHost{w: 80, h: 24}
}

func (h *testHost) CharHeight() int { return 1 }

func (h *testHost) StringWidth(s string) int { return utf8.RuneCountInString(s) }

func (h *testHost) SplitText(s string, maxWidth, maxHeight int) []string {
	if maxWidth <= 0 {
		maxWidth = 1
	}
	var lines []string
	runes := []rune(s)
	for len(runes) > 0 {
		n := maxWidth
		if n > len(runes) {
			n = len(runes)
		}
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}
	if maxHeight > 0 && len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func (h *testHost) Size() (int, int) { return h.w, h.h }

func (h *testHost) WaitEvent(timeout time.Duration) Event { return nil }

func (h *testHost) Present(f *Frame) { h.presents++ }

// prepMenu binds a menu to a host and runs the same setup Show performs
// before entering its event loop.
func prepMenu(m *Menu, host Host) {
	m.bind(host)
	m.sel = m.Selected()
	m.view.updateItems()
	m.updateTitle()
	m.negotiate()
}

// newTestMenu builds a bound, laid-out menu over the given entries with
// character-cell metrics.
func newTestMenu(flags Flags, entries ...*Entry) (*Menu, *testHost) {
	m := NewMenu(Settings{
		Flags:   flags,
		Metrics: TermMetrics(),
		Keymap:  DefaultKeymap,
	})
	for _, e := range entries {
		m.Add(e)
	}
	host := newTestHost()
	prepMenu(m, host)
	return m, host
}

// fruitEntries is the canonical small fixture: a heading followed by
// three hotkeyed items.
func fruitEntries() []*Entry {
	return []*Entry{
		NewHeading("Fruits"),
		NewEntry("apple", 'a'),
		NewEntry("pear", 'p'),
		NewEntry("kiwi", 'k'),
	}
}

// numberedEntries builds n items hotkeyed a-zA-Z, cycling when n
// exceeds the alphabet.
func numberedEntries(n int) []*Entry {
	hotkeys := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	entries := make([]*Entry, 0, n)
	for i := 0; i < n; i++ {
		hk := Key(hotkeys[i%len(hotkeys)])
		entries = append(entries, NewEntry("item", hk))
	}
	return entries
}
