package manicotti

import "regexp"

// selectItemIndex mutates one entry's selection and pushes the display
// update. Selection never changes measured geometry, so only the one
// item record is refreshed.
func (m *Menu) selectItemIndex(index int, qty int) {
	m.items[index].Select(qty)
	if m.alive {
		m.view.updateItem(index)
	}
	m.obs.notifyEntry(index)
}

// isSelectable reports whether the entry at index passes the select
// filter. No filter admits everything.
func (m *Menu) isSelectable(index int) bool {
	if m.selectFilter == nil {
		return true
	}
	return m.selectFilter(m.items[index])
}

// SelectIndex applies a selection request.
//
// index -1 is a bulk form, multiselect only: qty -2 selects every
// hotkeyed item passing the select filter, qty -1 inverts every item,
// qty 0 clears. A subtitle index under multiselect selects every item
// from it to the next heading. An item index selects that entry with
// the usual quantity semantics.
func (m *Menu) SelectIndex(index, qty int) {
	si := index
	if index == -1 {
		si = m.FirstVisible(false)
	}

	switch {
	case index == -1:
		if !m.flags.Has(FlagMultiSelect) {
			return
		}
		for i := range m.items {
			if m.items[i].Level != LevelItem || len(m.items[i].Hotkeys) == 0 {
				continue
			}
			if m.isHotkey(i, m.items[i].PrimaryHotkey()) && (qty != -2 || m.isSelectable(i)) {
				m.selectItemIndex(i, qty)
			}
		}

	case si < len(m.items) && m.items[si].Level == LevelSubtitle && m.flags.Has(FlagMultiSelect):
		for i := si + 1; i < len(m.items); i++ {
			if m.items[i].Level.IsHeading() {
				break
			}
			if m.items[i].Level != LevelItem || len(m.items[i].Hotkeys) == 0 {
				continue
			}
			if m.isHotkey(i, m.items[i].PrimaryHotkey()) {
				m.selectItemIndex(i, qty)
			}
		}

	case si < len(m.items) && m.items[si].Level == LevelItem &&
		m.flags&(FlagSingleSelect|FlagMultiSelect) != 0:
		m.selectItemIndex(si, qty)
	}
}

// DeselectAll clears every item-level selection.
func (m *Menu) DeselectAll() {
	for i := range m.items {
		if m.items[i].Level == LevelItem && m.items[i].IsSelected() {
			m.selectItemIndex(i, 0)
		}
	}
	m.sel = m.sel[:0]
}

// FilterWithRegex selects every item whose match text matches the
// pattern. A malformed pattern degrades to a case-insensitive literal
// substring match; if even that fails it selects nothing. Returns false
// when a single-select menu took the first match and the menu should
// close.
func (m *Menu) FilterWithRegex(pattern string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re, err = regexp.Compile("(?i)" + regexp.QuoteMeta(pattern))
		if err != nil {
			return true
		}
	}
	for i := range m.items {
		if m.items[i].Level != LevelItem {
			continue
		}
		if !re.MatchString(m.items[i].MatchText()) {
			continue
		}
		m.SelectIndex(i, -1)
		if m.flags.Has(FlagSingleSelect) {
			m.sel = m.Selected()
			return false
		}
	}
	m.sel = m.Selected()
	return true
}
