package manicotti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScrollClamps(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)
	require.Equal(t, 24, m.viewportH)

	m.ScrollToEnd()
	assert.Equal(t, 36, m.Scroll(), "content height minus viewport")

	m.setScroll(-5)
	assert.Equal(t, 0, m.Scroll())
}

func TestScrollPercent(t *testing.T) {
	unready := NewMenu(Settings{Flags: FlagSingleSelect, Metrics: TermMetrics(), Keymap: DefaultKeymap})
	unready.Add(NewEntry("apple", 'a'))
	_, err := unready.ScrollPercent()
	assert.ErrorIs(t, err, ErrNotReady)

	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)
	p, err := m.ScrollPercent()
	require.NoError(t, err)
	assert.Equal(t, 0, p)

	m.ScrollToEnd()
	p, _ = m.ScrollPercent()
	assert.Equal(t, 100, p)

	small, _ := newTestMenu(FlagSingleSelect, fruitEntries()...)
	p, err = small.ScrollPercent()
	require.NoError(t, err)
	assert.Equal(t, 0, p, "unscrollable lists report the top")
}

func TestFirstVisible(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, fruitEntries()...)

	assert.Equal(t, 0, m.FirstVisible(false))
	assert.Equal(t, 1, m.FirstVisible(true), "heading at the top is skipped")
}

func TestSnapInPageIdempotent(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)

	// after a downward snap the row's bottom edge sits flush with the
	// viewport edge; the repeat must still report no change
	assert.True(t, m.SnapInPage(40))
	assert.Equal(t, 17, m.Scroll(), "scrolled just enough to show the row")

	assert.False(t, m.SnapInPage(40), "second snap is a no-op")
	assert.Equal(t, 17, m.Scroll())

	assert.True(t, m.SnapInPage(5))
	assert.Equal(t, 5, m.Scroll())

	assert.False(t, m.SnapInPage(5), "repeat after snapping up is a no-op")
	assert.Equal(t, 5, m.Scroll())
}

func TestSnapInPageSmallViewport(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)
	m.viewportH = 10

	assert.True(t, m.SnapInPage(40))
	assert.Equal(t, 31, m.Scroll())

	assert.False(t, m.SnapInPage(40), "second snap must report no change")
	assert.Equal(t, 31, m.Scroll())
}

func TestSnapInPageBringsHeadingAlong(t *testing.T) {
	entries := numberedEntries(10)
	entries = append(entries, NewHeading("Block"))
	entries = append(entries, numberedEntries(30)...)
	m, _ := newTestMenu(FlagSingleSelect, entries...)

	m.ScrollToEnd()
	require.Equal(t, 17, m.Scroll())

	// snapping to the first item after the heading scrolls up to the
	// heading itself so it is not orphaned above the fold
	assert.True(t, m.SnapInPage(11))
	assert.Equal(t, 10, m.Scroll())
}

func TestSetScrollToDeferredBeforeAllocation(t *testing.T) {
	m := NewMenu(Settings{Flags: FlagSingleSelect, Metrics: TermMetrics(), Keymap: DefaultKeymap})
	for _, e := range numberedEntries(60) {
		m.Add(e)
	}

	// no viewport yet: the request must be queued, not dropped
	assert.False(t, m.SetScrollTo(30))
	assert.Equal(t, 0, m.Scroll())

	prepMenu(m, newTestHost())
	assert.Equal(t, 30, m.Scroll(), "queued scroll replayed on first allocation")
}

func TestLineUpDown(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)

	assert.False(t, m.LineUp(), "already at the top")

	assert.True(t, m.LineDown())
	assert.Equal(t, 1, m.Scroll())

	assert.True(t, m.LineUp())
	assert.Equal(t, 0, m.Scroll())
}

func TestLineDownSkipsSharedRow(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(10)...)
	m.view.setNumColumns(2)
	m.view.doLayout(40, 2)
	m.viewportH = 3

	// entries 0 and 1 share a row; one line down lands on entry 2's row
	assert.True(t, m.LineDown())
	assert.Equal(t, 1, m.Scroll())
	assert.Equal(t, 2, m.FirstVisible(false))
}

func TestPageDownPreservesHoverOffset(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect|FlagArrowsSelect, numberedEntries(60)...)

	assert.True(t, m.PageDown())
	assert.Equal(t, 23, m.Scroll(), "viewport height minus scroll context")
	assert.Equal(t, 23, m.HoveredIndex())

	assert.True(t, m.PageUp())
	assert.Equal(t, 0, m.Scroll())
	assert.Equal(t, 0, m.HoveredIndex())
}

func TestPageDownJumpsHoverToLastEntry(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect|FlagArrowsSelect, numberedEntries(60)...)
	m.ScrollToEnd()
	m.SetHovered(40, false)
	require.Equal(t, 36, m.Scroll())

	// the page cannot move, so the hover jumps to the very end
	m.PageDown()
	assert.Equal(t, 36, m.Scroll())
	assert.Equal(t, 59, m.HoveredIndex())
}

func TestPageDownOnUnscrollableMenu(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(10)...)
	assert.False(t, m.PageDown())
	assert.Equal(t, 0, m.Scroll())
}

func TestInPageStrictness(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)
	require.Equal(t, 24, m.viewportH)

	assert.True(t, m.InPage(23, true), "fully inside")
	assert.True(t, m.InPage(24, false), "touching the bottom edge")
	assert.False(t, m.InPage(24, true))
	assert.False(t, m.InPage(25, false), "fully below")
}

func TestItemVisibleNeedsViewport(t *testing.T) {
	m := NewMenu(Settings{Flags: FlagSingleSelect, Metrics: TermMetrics(), Keymap: DefaultKeymap})
	m.Add(NewEntry("apple", 'a'))
	assert.False(t, m.ItemVisible(0))
}

func TestScrollObserverFires(t *testing.T) {
	var gotFirst, gotHover int
	fired := 0
	m := NewMenu(Settings{
		Flags:   FlagSingleSelect,
		Metrics: TermMetrics(),
		Keymap:  DefaultKeymap,
		Observer: &Observer{
			ScrollChanged: func(firstVisible, hover int) {
				fired++
				gotFirst, gotHover = firstVisible, hover
			},
		},
	})
	for _, e := range numberedEntries(60) {
		m.Add(e)
	}
	prepMenu(m, newTestHost())

	m.setScroll(5)
	assert.Equal(t, 1, fired)
	assert.Equal(t, 5, gotFirst)
	assert.Equal(t, -1, gotHover)
}
