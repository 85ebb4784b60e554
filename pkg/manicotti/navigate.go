package manicotti

// SetHovered moves the arrow-key hover to index (-1 clears it) and
// snaps it into view. On menus without arrow navigation the entry is
// only snapped unless force is set.
func (m *Menu) SetHovered(index int, force bool) {
	if !force && !m.flags.Has(FlagArrowsSelect) {
		m.SnapInPage(index)
		return
	}
	// intentionally goes to -1 on an empty menu
	if index > len(m.items)-1 {
		index = len(m.items) - 1
	}
	old := m.hover
	m.hover = index
	if m.hover >= 0 {
		m.SnapInPage(m.hover)
	}
	if old != m.hover {
		m.obs.notifyScroll(m.FirstVisible(false), m.hover)
	}
}

// CycleHover advances the hover to the next (or previous) item-level
// entry. The scan budget is the full entry count when wrapping is
// enabled, otherwise the distance to the relevant end of the list, so
// non-wrapping navigation stops dead at the boundary. With no valid
// landing the hover is left unchanged.
func (m *Menu) CycleHover(reverse bool) {
	if !m.flags.Has(FlagArrowsSelect) {
		return
	}
	size := len(m.items)

	maxItems := size
	if !m.flags.Has(FlagWrap) {
		if reverse {
			maxItems = m.hover
		} else {
			h := m.hover
			if h < 0 {
				h = 0
			}
			maxItems = size - h
		}
	}

	newHover := m.hover
	if reverse && m.hover < 0 {
		newHover = 0
	}
	found := false
	for tried := 0; tried < maxItems; tried++ {
		if reverse {
			newHover--
		} else {
			newHover++
		}
		if m.flags.Has(FlagWrap) && size > 0 {
			newHover = ((newHover % size) + size) % size
		}
		if newHover < 0 {
			newHover = 0
		}
		if newHover > size-1 {
			newHover = size - 1
		}

		if m.items[newHover].Level == LevelItem {
			found = true
			break
		}
	}
	if !found {
		return
	}
	m.SetHovered(newHover, false)
}

// headerBlock returns the maximal range around index that includes any
// adjacent run of headings: [first, last] where first backs up over
// preceding headings and last scans forward over headings to the next
// item.
func (m *Menu) headerBlock(index int) (first, last int) {
	first, last = index, index
	for first >= 1 && m.items[first-1].Level != LevelItem {
		first--
	}
	for last+1 < len(m.items) && m.items[last].Level != LevelItem {
		last++
	}
	return first, last
}

// nextBlockFrom returns the start of the header block after (or before)
// the block containing index.
func (m *Menu) nextBlockFrom(index int, forward, wrap bool) int {
	first, last := m.headerBlock(index)
	next := last + 1
	if !forward {
		next = first - 1
	}
	size := len(m.items)
	if wrap {
		next = ((next % size) + size) % size
	} else {
		if next > size-1 {
			next = size - 1
		}
		if next < 0 {
			next = 0
		}
	}
	start, _ := m.headerBlock(next)
	return start
}

// CycleHeaders scrolls to the next (or previous) heading block,
// wrapping around the list, and under arrow navigation moves the hover
// onto the first item after it. Returns false when the menu has no
// heading to land on.
func (m *Menu) CycleHeaders(forward bool) bool {
	if len(m.items) == 0 {
		return false
	}
	start := m.FirstVisible(false)
	if m.flags.Has(FlagArrowsSelect) {
		start = m.hover
		if start < 0 {
			start = 0
		}
	}
	start, _ = m.headerBlock(start)

	for cur := m.nextBlockFrom(start, forward, true); cur != start; cur = m.nextBlockFrom(cur, forward, true) {
		if !m.items[cur].Level.IsHeading() {
			continue
		}
		if !m.ItemVisible(cur) || !m.flags.Has(FlagArrowsSelect) {
			m.SetScrollTo(cur)
		}
		if m.flags.Has(FlagArrowsSelect) {
			m.SetHovered(cur, false)
			m.CycleHover(false) // land on a valid hover
		}
		return true
	}
	return false
}

// isHotkey reports whether key addresses the entry at index, honoring
// the on-page restriction when FlagSelectByPage is set.
func (m *Menu) isHotkey(index int, key Key) bool {
	if !m.items[index].HasHotkey(key) {
		return false
	}
	return !m.flags.Has(FlagSelectByPage) || m.InPage(index, false)
}

// selectItems routes a literal key to entries. ',' selects everything
// (or everything passing the select filter), '*' inverts, '-' clears,
// all multiselect only. Any other key is resolved as a hotkey: the
// scan starts at the first visible entry so on-screen matches win ties,
// and an entry only matches on its primary hotkey under multiselect,
// since entries sharing overflow hotkeys sit at least a page apart and
// the paged one is the one meant. When no primary match exists, every
// secondary match is selected and the page is snapped to show as much
// of that span as possible.
func (m *Menu) selectItems(key Key, qty int) {
	switch {
	case key == ',' && m.flags.Has(FlagMultiSelect):
		m.SelectIndex(-1, -2)
	case key == '*' && m.flags.Has(FlagMultiSelect):
		m.SelectIndex(-1, -1)
	case key == '-' && m.flags.Has(FlagMultiSelect):
		m.SelectIndex(-1, 0)
	default:
		firstEntry := m.FirstVisible(false)
		final := len(m.items)

		for i := 0; i < final; i++ {
			index := (i + firstEntry) % final
			if m.isHotkey(index, key) &&
				(m.items[index].PrimaryHotkey() == key || m.flags.Has(FlagSingleSelect)) {
				m.SelectIndex(index, qty)
				m.SetHovered(index, false)
				return
			}
		}

		if m.flags.Has(FlagMultiSelect) {
			firstSnap, lastSnap := -1, -1
			for i := 0; i < final; i++ {
				if m.isHotkey(i, key) {
					if firstSnap < 0 {
						firstSnap = i
					}
					lastSnap = i
					m.SelectIndex(i, qty)
				}
			}
			if firstSnap >= 0 {
				// snap twice to keep as much of the span in view as
				// possible
				m.SnapInPage(lastSnap)
				m.SetHovered(firstSnap, false)
			}
		}
	}
}
