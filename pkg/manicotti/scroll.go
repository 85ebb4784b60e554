package manicotti

import "math"

// setScroll clamps and commits a new scroll offset, firing the scroll
// observer when the first visible entry changes.
func (m *Menu) setScroll(y int) {
	maxScroll := m.view.height - m.viewportH
	if maxScroll < 0 {
		maxScroll = 0
	}
	if y > maxScroll {
		y = maxScroll
	}
	if y < 0 {
		y = 0
	}
	if y == m.scroll {
		return
	}
	oldFirst := m.FirstVisible(false)
	m.scroll = y
	if first := m.FirstVisible(false); first != oldFirst {
		m.obs.notifyScroll(first, m.hover)
	}
}

// Scroll returns the current scroll offset.
func (m *Menu) Scroll() int { return m.scroll }

// ScrollPercent returns how far the list is scrolled, 0 to 100. Until
// size negotiation has produced a viewport it returns ErrNotReady; a
// list that fits its viewport reports 0.
func (m *Menu) ScrollPercent() (int, error) {
	if m.viewportH == 0 || !m.view.laidOut() {
		return 0, ErrNotReady
	}
	d := m.view.height - m.viewportH
	if d <= 0 {
		return 0, nil
	}
	percent := m.scroll * 100 / d
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent, nil
}

// FirstVisible returns the index of the first entry at or below the top
// of the viewport, optionally skipping headings, or the entry count if
// nothing qualifies.
func (m *Menu) FirstVisible(skipInitHeaders bool) int {
	if !m.view.laidOut() {
		return 0
	}
	for i := range m.items {
		y1, _ := m.view.itemRegion(i)
		if y1 >= m.scroll {
			if skipInitHeaders && m.items[i].Level.IsHeading() {
				// for scroll-position arithmetic, visible headers at
				// the top of the page are not interesting
				continue
			}
			return i
		}
	}
	return len(m.items)
}

// InPage reports whether the entry at index has any part (or, when
// strict, all of it) inside the viewport.
func (m *Menu) InPage(index int, strict bool) bool {
	y1, y2 := m.view.itemRegion(index)
	if y1 < 0 {
		return false
	}
	vpy, vph := m.scroll, m.viewportH
	upperIn := vpy <= y1 && y1 <= vpy+vph
	lowerIn := vpy <= y2 && y2 <= vpy+vph
	if strict {
		return upperIn && lowerIn
	}
	return upperIn || lowerIn
}

// headerBlockStart returns the first index of the run of headings
// immediately preceding index, or index itself when there is none.
// Scrolling to an entry brings its headings along so they are not
// orphaned above the fold.
func (m *Menu) headerBlockStart(index int) int {
	first := index
	for first >= 1 && m.items[first-1].Level != LevelItem {
		first--
	}
	return first
}

// ItemVisible reports whether the entry at index is fully visible,
// counting its leading heading run. False while the viewport size is
// still unknown.
func (m *Menu) ItemVisible(index int) bool {
	if m.viewportH == 0 {
		return false
	}
	if index < 0 || index >= len(m.items) {
		return false
	}
	y1, y2 := m.view.itemRegion(index)
	if head := m.headerBlockStart(index); head != index {
		y1, _ = m.view.itemRegion(head)
	}
	return y1 >= m.scroll && y2 < m.scroll+m.viewportH
}

// SetScrollTo scrolls so the entry's row, or its leading heading run,
// starts at the top of the viewport. Before the first allocation the
// request is recorded and replayed once the viewport has a size; the
// return value then reports no movement yet.
func (m *Menu) SetScrollTo(index int) bool {
	if m.viewportH == 0 {
		m.view.setInitialScroll(index)
		return false
	}
	if index < 0 || index >= len(m.items) {
		return false
	}
	y1, _ := m.view.itemRegion(index)
	if head := m.headerBlockStart(index); head != index {
		y1, _ = m.view.itemRegion(head)
	}
	old := m.scroll
	m.setScroll(y1)
	return old != y1
}

// SnapInPage scrolls just enough to bring the entry at index (plus its
// leading heading run) into the viewport. It is idempotent: if the
// entry is already in page it reports false and changes nothing.
func (m *Menu) SnapInPage(index int) bool {
	if m.viewportH == 0 {
		// viewport not negotiated yet; use SetScrollTo to queue a
		// deferred request
		return false
	}
	if index < 0 || index >= len(m.items) {
		return false
	}
	y1, y2 := m.view.itemRegion(index)
	if head := m.headerBlockStart(index); head != index {
		y1, _ = m.view.itemRegion(head)
	}

	old := m.scroll
	switch {
	case y2 >= m.scroll+m.viewportH:
		m.setScroll(y2 - m.viewportH)
	case y1 < m.scroll:
		m.setScroll(y1)
	}
	return old != m.scroll
}

// ScrollToTop scrolls to the very beginning.
func (m *Menu) ScrollToTop() { m.setScroll(0) }

// ScrollToEnd scrolls so the last row sits at the bottom of the
// viewport.
func (m *Menu) ScrollToEnd() { m.setScroll(math.MaxInt) }

// LineUp scrolls up by one row and reports whether anything moved.
func (m *Menu) LineUp() bool {
	index := m.FirstVisible(false)
	if index > 0 {
		y, _ := m.view.itemRegion(index - 1)
		m.setScroll(y)
		return true
	}
	return false
}

// LineDown scrolls down by one row, skipping entries that share the
// same row boundary (multi-column rows), and reports whether anything
// moved.
func (m *Menu) LineDown() bool {
	index := m.FirstVisible(false)
	if index >= len(m.items) {
		return false
	}
	firstVisY, _ := m.view.itemRegion(index)

	for index++; index < len(m.items); index++ {
		y, _ := m.view.itemRegion(index)
		if y == firstVisY {
			continue
		}
		m.setScroll(y)
		return true
	}
	return false
}

// PageDown scrolls forward by a viewport height minus the scroll
// context, preserving the hover's position relative to the page. It
// reports whether further paging is possible.
func (m *Menu) PageDown() bool {
	newHover := -1
	if m.flags.Has(FlagArrowsSelect) && m.hover < 0 {
		m.hover = 0
	}
	// preserve relative position
	if m.hover >= 0 && m.InPage(m.hover, false) {
		newHover = m.hover - m.FirstVisible(true)
	}

	dy := m.viewportH - m.view.scrollContext()
	atBottom := m.scroll+dy >= m.view.height
	// don't scroll further once the last entry is fully visible, or the
	// last element can end up alone on its own page
	if len(m.items) == 0 || !m.InPage(len(m.items)-1, true) {
		m.setScroll(m.scroll + dy)
	}

	if newHover >= 0 {
		// if paging wouldn't move the hover, jump it to the last entry
		if m.flags.Has(FlagArrowsSelect) && m.FirstVisible(true)+newHover == m.hover {
			m.SetHovered(len(m.items)-1, false)
		} else {
			m.SetHovered(m.FirstVisible(true)+newHover, false)
		}
		if !m.hoverOnItem() {
			m.CycleHover(true) // reverse so we don't overshoot
		}
	}
	return !atBottom
}

// PageUp is the inverse of PageDown.
func (m *Menu) PageUp() bool {
	newHover := -1
	if m.flags.Has(FlagArrowsSelect) && m.hover < 0 {
		m.hover = 0
	}
	if m.hover >= 0 && m.InPage(m.hover, false) {
		newHover = m.hover - m.FirstVisible(true)
	}

	dy := m.viewportH - m.view.scrollContext()
	y := m.scroll
	m.setScroll(y - dy)

	if newHover >= 0 {
		// if paging wouldn't move the hover, jump it to the first entry
		if m.flags.Has(FlagArrowsSelect) && m.FirstVisible(true)+newHover == m.hover {
			newHover = 0
		}
		m.SetHovered(m.FirstVisible(true)+newHover, false)
		if !m.hoverOnItem() {
			m.CycleHover(false) // forward so we don't overshoot
		}
	}
	return y > 0
}
