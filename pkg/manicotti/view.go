package manicotti

// Rect is an allocated region in backend units.
type Rect struct {
	X, Y, W, H int
}

// View is the menu's widget body: it owns the layout records for the
// entry list and turns them into draw primitives. One View belongs to
// exactly one Menu; the Menu owns all interactive state (scroll, hover,
// selection) and the View reads it back when packing a frame.
type View struct {
	menu    *Menu
	font    TextMetrics
	metrics ViewMetrics

	numColumns  int
	drawTiles   bool
	minColWidth int

	items      []itemInfo
	rowHeights []int
	height     int

	natColWidth int
	tallestRow  int

	region Rect

	// mouse position in content coordinates; -1 when the pointer is
	// outside the view
	mouseX, mouseY int
	mousePressed   bool

	initialScroll    int // entry index replayed on first allocation
	initialHoverSnap bool
}

func newView(m *Menu, font TextMetrics, metrics ViewMetrics, drawTiles bool) *View {
	return &View{
		menu:          m,
		font:          font,
		metrics:       metrics,
		numColumns:    1,
		drawTiles:     drawTiles,
		mouseX:        -1,
		mouseY:        -1,
		initialScroll: -1,
	}
}

// laidOut reports whether the view has been through a layout pass.
func (v *View) laidOut() bool {
	return len(v.rowHeights) > 0
}

func (v *View) setNumColumns(n int) {
	if n != v.numColumns {
		v.numColumns = n
	}
}

// setMinColWidth overrides the minimum natural column width, in backend
// units. Zero or negative restores the metrics default.
func (v *View) setMinColWidth(w int) {
	v.minColWidth = w
}

// setInitialScroll records an entry index to scroll to once the first
// allocation gives the view a real size.
func (v *View) setInitialScroll(index int) {
	v.initialScroll = index
}

// updateItem refreshes the layout record of one entry from its current
// display state. Selection and colour changes never alter geometry, so
// no relayout is needed afterwards.
func (v *View) updateItem(index int) {
	e := v.menu.items[index]
	v.items[index].text = e.DisplayText()
	v.items[index].colour = v.menu.entryColour(e)
	v.items[index].heading = e.Level.IsHeading()
	v.items[index].tiles = e.Tiles
}

// updateItems rebuilds all layout records and re-evaluates whether the
// icon gutter is drawn.
func (v *View) updateItems() {
	v.items = v.items[:0]
	for range v.menu.items {
		v.items = append(v.items, itemInfo{})
	}
	for i := range v.items {
		v.updateItem(i)
	}

	v.drawTiles = false
	if v.menu.opts.MenuIcons && v.metrics.IconHeight > 0 {
		for _, it := range v.items {
			if !it.heading && len(it.tiles) > 0 {
				v.drawTiles = true
				break
			}
		}
	}
}

// preferredSize answers the host's size negotiation query for one axis.
// The horizontal natural size is the natural column width times the
// column count, capped at a configured number of character widths; the
// vertical one is the content height at the prospective width.
func (v *View) preferredSize(dim Axis, prospWidth int) SizeReq {
	if dim == Horizontal {
		v.doLayout(int(^uint(0)>>1), v.numColumns)
		em := v.font.StringWidth("m")
		maxMenuWidth := v.menu.opts.MaxMenuWidthChars * em
		if w := v.natColWidth * v.numColumns; w < maxMenuWidth {
			maxMenuWidth = w
		}
		return SizeReq{Min: 0, Natural: maxMenuWidth}
	}
	v.doLayout(prospWidth, v.numColumns)
	return SizeReq{Min: 0, Natural: v.height}
}

// allocate commits a region to the view. Deferred scroll and hover
// requests made before the first allocation are replayed here, once
// entry heights are known.
func (v *View) allocate(region Rect) {
	v.region = region
	v.doLayout(region.W, v.numColumns)

	if v.initialScroll >= 0 {
		index := v.initialScroll
		v.initialScroll = -1
		v.menu.SetScrollTo(index)
	}
	if !v.initialHoverSnap {
		if v.menu.hover >= 0 {
			v.menu.SnapInPage(v.menu.hover)
		}
		v.initialHoverSnap = true
	}
}

// updateHoveredEntry hit-tests the mouse position against the current
// layout and moves the hover to the entry under the pointer. Entries
// without hotkeys are skipped unless force is set. With force it goes
// through the menu so observers fire; otherwise it only adjusts the
// draw-time hover.
func (v *View) updateHoveredEntry(force bool) {
	if v.mouseX < 0 || v.mouseY < 0 {
		return
	}
	vmin, vmax := v.visibleItemRange(v.menu.scroll, v.menu.viewportH)
	colWidth := v.region.W / v.numColumns
	for i := vmin; i < vmax; i++ {
		entry := &v.items[i]
		if entry.heading {
			continue
		}
		if len(v.menu.items[i].Hotkeys) == 0 && !force {
			continue
		}
		entryX := entry.column * colWidth
		entryH := v.rowHeights[entry.row+1] - v.rowHeights[entry.row]
		if v.mouseX >= entryX && v.mouseX < entryX+colWidth &&
			v.mouseY >= entry.y && v.mouseY < entry.y+entryH {
			if force && v.menu.hover != i {
				v.menu.SetHovered(i, true)
			}
			return
		}
	}
	if !v.menu.flags.Has(FlagArrowsSelect) && force {
		v.menu.SetHovered(-1, true)
	}
}

// onMouseEvent feeds a pointer event into the view. It returns the key
// to synthesize (an entry's primary hotkey on a completed click) and
// whether the event was consumed. The layout is recomputed before every
// hit test; doLayout's purity makes this safe.
func (v *View) onMouseEvent(ev MouseEvent) (Key, bool) {
	v.mouseX = ev.X - v.region.X
	v.mouseY = ev.Y - v.region.Y + v.menu.scroll

	switch ev.Type {
	case MouseEnter:
		v.doLayout(v.region.W, v.numColumns)
		if !v.menu.flags.Has(FlagArrowsSelect) || v.menu.hover < 0 {
			v.updateHoveredEntry(true)
		}
		return KeyNone, false

	case MouseLeave:
		v.mouseX, v.mouseY = -1, -1
		v.mousePressed = false
		if !v.menu.flags.Has(FlagArrowsSelect) {
			v.menu.SetHovered(-1, true)
		}
		return KeyNone, false

	case MouseMove:
		v.doLayout(v.region.W, v.numColumns)
		v.updateHoveredEntry(true)
		return KeyNone, true

	case MouseDown:
		if ev.Button == MouseButtonLeft {
			v.mousePressed = true
		}
		return KeyNone, true

	case MouseUp:
		if ev.Button == MouseButtonLeft && v.mousePressed {
			v.mousePressed = false
			if h := v.menu.hover; h >= 0 && len(v.menu.items[h].Hotkeys) > 0 {
				return v.menu.items[h].PrimaryHotkey(), true
			}
		}
		return KeyNone, true
	}
	return KeyNone, false
}

// packFrame converts the visible slice of the layout into draw
// primitives, in viewport coordinates.
func (v *View) packFrame(f *Frame, scroll, viewportH int) {
	if len(v.items) == 0 || !v.laidOut() {
		return
	}

	theme := v.menu.opts.Theme
	colWidth := v.region.W / v.numColumns
	vmin, vmax := v.visibleItemRange(scroll, viewportH)

	for i := vmin; i < vmax; i++ {
		entry := &v.items[i]
		entryX := v.region.X + entry.column*colWidth
		entryEX := entryX + colWidth
		entryH := v.rowHeights[entry.row+1] - v.rowHeights[entry.row]
		drawY := v.region.Y + entry.y - scroll

		if entry.heading {
			pad := v.metrics.HeadingPad - v.metrics.HeadingPadFirst
			if i == 0 {
				pad = 0
			}
			lineY := drawY + pad + v.metrics.ItemPad
			if i+1 < len(v.items) && !v.items[i+1].heading {
				hx := v.region.X + entry.x
				f.addLine(hx, lineY, hx+v.numColumns*colWidth, lineY, theme.DividerColour())
			}
			textY := lineY
			if v.metrics.HeadingPad > 0 {
				textY += 3
			}
			colour := entry.colour
			if colour == ColourDefault {
				colour = theme.TextColour()
			}
			for li, line := range v.font.SplitText(entry.text, v.region.W, entryH) {
				f.addText(line, v.region.X+entry.x, textY+li*v.font.CharHeight(), colour)
			}
			continue
		}

		tileY := drawY
		if d := entryH - v.metrics.IconHeight; d > 0 && v.metrics.IconHeight > 0 {
			tileY += d / 2
		}
		for _, tile := range entry.tiles {
			f.Tiles = append(f.Tiles, TilePlacement{Tile: tile, X: entryX + v.metrics.ItemPad, Y: tileY})
		}

		textIndent := 0
		if v.drawTiles {
			textIndent = v.metrics.IconIndent
		}
		textSX := entryX + textIndent + v.metrics.ItemPad

		colour := entry.colour
		if colour == ColourDefault {
			colour = theme.TextColour()
		}

		// render a fixed-width hotkey preface separately so the
		// wrapped remainder aligns past it
		text := entry.text
		if hasHotkeyPrefix(entry.text) {
			prefix := entry.text[:5]
			f.addText(prefix, textSX, drawY+(entryH-v.font.CharHeight())/2, colour)
			textSX += v.font.StringWidth(prefix)
			text = entry.text[5:]
		}

		maxH := v.font.CharHeight()
		if !v.menu.flags.Has(FlagNoWrapRows) {
			maxH *= 2
		}
		lines := v.font.SplitText(text, entryEX-textSX-v.metrics.PadRight, maxH)
		stringH := len(lines) * v.font.CharHeight()
		textSY := drawY + (entryH-stringH)/2
		for li, line := range lines {
			f.addText(line, textSX, textSY+li*v.font.CharHeight(), colour)
		}

		if v.menu.flags.Has(FlagNoSelect) {
			continue
		}

		me := v.menu.items[i]
		hovered := i == v.menu.hover && len(me.Hotkeys) > 0

		if me.IsSelected() && !v.menu.flags.Has(FlagQuietSelect) {
			f.addQuad(entryX, drawY, colWidth, entryH, theme.HighlightColour())
		} else if hovered {
			bg := theme.HoverColour()
			if v.mousePressed {
				bg = 0x000000ff
			}
			f.addQuad(entryX, drawY, colWidth, entryH, bg)
		}

		if hovered {
			outline := theme.HoverOutlineColour()
			if v.mousePressed {
				outline = 0x222222ff
			}
			f.addOutline(entryX+1, drawY+1, entryX+colWidth, drawY+entryH, outline)
		}
	}
}
