package manicotti

import (
	"fmt"
	"math"
)

// hotkeyCap is the size of the addressable hotkey alphabet (a-z, A-Z).
// Page heights are capped so that no scroll position can show more
// selectable entries than there are distinguishable hotkeys.
const hotkeyCap = 52

// ViewMetrics are the fixed spacing values the layout engine works
// with, in backend units.
type ViewMetrics struct {
	ItemPad         int // symmetric padding above and below each row
	PadRight        int // gap kept clear at the right edge of a column
	IconIndent      int // text indent reserving the icon gutter
	IconHeight      int // minimum row height for entries with icons
	MinColWidth     int // default lower bound on the natural column width
	HeadingPad      int // extra height on heading rows (divider + padding)
	HeadingPadFirst int // reduced heading pad when the heading is the first entry
}

// TileMetrics are the spacing values for pixel-based backends.
func TileMetrics() ViewMetrics {
	return ViewMetrics{
		ItemPad:         2,
		PadRight:        10,
		IconIndent:      38,
		IconHeight:      32,
		MinColWidth:     400,
		HeadingPad:      10,
		HeadingPadFirst: 5,
	}
}

// TermMetrics are the spacing values for character-cell backends, where
// every row is exactly one cell high.
func TermMetrics() ViewMetrics {
	return ViewMetrics{
		PadRight:    1,
		MinColWidth: 20,
	}
}

// itemInfo is the per-entry layout record, refreshed from the entry on
// every entry mutation and positioned by doLayout.
type itemInfo struct {
	x, y, row, column int
	text              string
	colour            Colour
	heading           bool
	tiles             []Tile
}

// hasHotkeyPrefix detects the fixed-width " X - " / " X + " / " X # "
// preface DisplayText produces, so wrapping can strip it and indent the
// continuation line past it.
func hasHotkeyPrefix(s string) bool {
	if len(s) < 5 {
		return false
	}
	letter := s[1] >= 'a' && s[1] <= 'z' || s[1] >= 'A' && s[1] <= 'Z'
	sep := s[3] == '-' || s[3] == '+' || s[3] == '#'
	return letter && sep && s[0] == ' ' && s[2] == ' ' && s[4] == ' '
}

// doLayout packs entries into rows and columns within mw, refreshing
// every item's position, the row-height boundary table and the content
// height. It is pure with respect to its inputs: re-running it with
// unchanged entries and arguments yields identical results, so mouse
// hit-testing may invoke it freely.
//
// Non-positive width or column count is a caller contract violation.
func (v *View) doLayout(mw, numColumns int) {
	if mw <= 0 || numColumns <= 0 {
		panic(fmt.Sprintf("doLayout: invalid geometry %dx%d columns", mw, numColumns))
	}

	minColWidth := v.metrics.MinColWidth
	if v.minColWidth > 0 {
		minColWidth = v.minColWidth
	}
	maxColumnWidth := mw / numColumns
	textHeight := v.font.CharHeight()

	column := -1 // an initial increment makes this 0
	columnWidth := 0
	rowHeight := 0
	height := 0

	v.rowHeights = v.rowHeights[:0]

	for i := range v.items {
		entry := &v.items[i]

		if entry.heading {
			column = 0
		} else {
			column = (column + 1) % numColumns
		}

		if column == 0 {
			if rowHeight != 0 {
				rowHeight += 2 * v.metrics.ItemPad
			}
			if rowHeight > v.tallestRow {
				v.tallestRow = rowHeight
			}
			height += rowHeight
			v.rowHeights = append(v.rowHeights, height)
			rowHeight = 0
		}

		textWidth := v.font.StringWidth(entry.text)

		entry.y = height
		entry.row = len(v.rowHeights) - 1
		entry.column = column

		if entry.heading {
			entry.x = 0
			// extra space is used for the divider line and padding;
			// only reduced padding for the very first entry, since the
			// surrounding chrome already pads it.
			pad := v.metrics.HeadingPad
			if i == 0 {
				pad = v.metrics.HeadingPadFirst
			}
			rowHeight = textHeight + pad

			// wrap headings to two lines if they don't fit
			if v.drawTiles && textWidth > mw {
				lines := v.font.SplitText(entry.text, mw, 0)
				if h := len(lines) * textHeight; h > rowHeight {
					rowHeight = h
				}
			}
			column = numColumns - 1
		} else {
			textIndent := 0
			if v.drawTiles {
				textIndent = v.metrics.IconIndent
			}
			entry.x = textIndent
			textSX := textIndent

			itemHeight := textHeight
			if len(entry.tiles) > 0 && v.metrics.IconHeight > itemHeight {
				itemHeight = v.metrics.IconHeight
			}

			// Entries that don't fit on a single line wrap to two,
			// with the hotkey preface stripped first so the
			// continuation aligns past it.
			if !v.menu.flags.Has(FlagNoWrapRows) && textWidth > maxColumnWidth-entry.x-v.metrics.PadRight {
				text := entry.text
				if hasHotkeyPrefix(entry.text) {
					textSX += v.font.StringWidth(entry.text[:5])
					text = entry.text[5:]
				}
				w := maxColumnWidth - textSX - v.metrics.PadRight
				lines := v.font.SplitText(text, w, 0)
				stringHeight := len(lines) * textHeight
				if stringHeight > textHeight*2 {
					stringHeight = textHeight * 2
				}
				if stringHeight > itemHeight {
					itemHeight = stringHeight
				}
			}

			if w := textSX + textWidth + v.metrics.PadRight; w > columnWidth {
				columnWidth = w
			}
			if itemHeight > rowHeight {
				rowHeight = itemHeight
			}
		}
	}

	if rowHeight != 0 {
		rowHeight += 2 * v.metrics.ItemPad
	}
	if rowHeight > v.tallestRow {
		v.tallestRow = rowHeight
	}
	height += rowHeight
	v.rowHeights = append(v.rowHeights, height)
	columnWidth += 2 * v.metrics.ItemPad

	v.height = height
	v.natColWidth = columnWidth
	if v.natColWidth > maxColumnWidth {
		v.natColWidth = maxColumnWidth
	}
	if v.natColWidth < minColWidth {
		v.natColWidth = minColWidth
	}
}

// maxViewportHeight returns the largest viewport height that keeps at
// most hotkeyCap selectable entries visible at any scroll position, or
// math.MaxInt when the list never exceeds the cap. It slides a window
// over the entries and, whenever the cap is exceeded, measures the span
// that would have to be shown to include one entry too many, advancing
// the window start by whole heading-aligned rows.
func (v *View) maxViewportHeight() int {
	maxViewportHeight := math.MaxInt
	a, b, numItems := 0, 0, 0
	for b < len(v.items) {
		if numItems < hotkeyCap {
			if !v.items[b].heading {
				numItems++
			}
			b++
		} else {
			itemH := v.rowHeights[v.items[b].row] - v.rowHeights[v.items[b-1].row]
			delta := itemH + v.items[b-1].y - v.items[a].y
			if delta < maxViewportHeight {
				maxViewportHeight = delta
			}
			for {
				if !v.items[a].heading {
					numItems--
				}
				a++
				if a >= len(v.items) || v.items[a].column == 0 {
					break
				}
			}
		}
	}
	return maxViewportHeight
}

// visibleItemRange maps a scroll offset and viewport height to the
// half-open range of entry indices with any part inside the viewport.
func (v *View) visibleItemRange(scroll, viewportHeight int) (vmin, vmax int) {
	vmin, vmax = 0, len(v.items)
	i := 0
	for ; i < len(v.items); i++ {
		if v.rowHeights[v.items[i].row+1] > scroll {
			vmin = i
			break
		}
	}
	for ; i < len(v.items); i++ {
		if v.rowHeights[v.items[i].row] >= scroll+viewportHeight {
			vmax = i
			break
		}
	}
	return vmin, vmax
}

// itemRegion returns the vertical extent of the entry's row. Both
// bounds are -1 if layout has not run yet. The index must be valid.
func (v *View) itemRegion(index int) (y1, y2 int) {
	if index < 0 || index >= len(v.items) {
		panic(fmt.Sprintf("itemRegion: index %d out of range [0,%d)", index, len(v.items)))
	}
	row := v.items[index].row
	if row+1 >= len(v.rowHeights) {
		// called before the view has been laid out
		return -1, -1
	}
	return v.rowHeights[row], v.rowHeights[row+1]
}

// scrollContext is the overlap kept between successive pages: the
// tallest row seen during layout plus half again, so the last row of
// one page partially reappears on the next.
func (v *View) scrollContext() int {
	return v.tallestRow + v.tallestRow/2
}
