package manicotti

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// Settings configures a menu before it is shown.
type Settings struct {
	Title    string
	AltTitle string // title shown in the alternate action mode
	// IndentTitle prefixes the title with a space (and the icon gutter
	// in icon mode) so it lines up with indented entries.
	IndentTitle bool

	Flags       Flags
	ActionCycle ActionCycle
	Action      Action

	// MoreText replaces the built-in key help under the list. Empty
	// keeps the generated help.
	MoreText string

	// Metrics are the layout spacing values; zero value means
	// TileMetrics.
	Metrics ViewMetrics
	// MinColWidthChars overrides the minimum column width, in character
	// widths.
	MinColWidthChars int

	Keymap      Keymap
	Options     *Options
	Session     *Session
	Observer    *Observer
	Highlighter Highlighter

	// KeyFilter rewrites raw keys before any other processing.
	KeyFilter func(Key) Key
	// PreProcess transforms keys after KeyFilter, before dispatch.
	PreProcess func(Key) Key
	// OnSingleSelection runs when a single-select menu commits an entry
	// that has no OnSelect of its own.
	OnSingleSelection func(*Entry) bool
	// OnHelp runs for the help command; typically pushes a help screen.
	OnHelp func()
}

// DefaultSettings returns menu settings with the common defaults:
// single-select, arrow navigation with an initial hover, and wrapping.
func DefaultSettings(title string) Settings {
	return Settings{
		Title:   title,
		Flags:   FlagSingleSelect | FlagArrowsSelect | FlagInitHover | FlagWrap | FlagAllowFilter,
		Metrics: TileMetrics(),
		Keymap:  DefaultKeymap,
	}
}

// Menu is an interactive, paginated list of entries. Construct it with
// NewMenu, add entries, then block in Show until the user commits or
// cancels a selection. All state is owned by the Menu and mutated only
// through its methods; it is not safe for concurrent use.
type Menu struct {
	flags Flags
	opts  *Options
	sess  *Session

	keymap      Keymap
	obs         *Observer
	highlighter Highlighter

	host Host
	view *View

	items []*Entry
	sel   []*Entry

	title       *Entry
	title2      *Entry
	indentTitle bool
	titleText   string

	moreText    string
	keyhelpMore bool
	moreLines   []string

	scroll    int
	viewportH int

	hover   int
	num     int
	lastKey Key

	actionCycle ActionCycle
	menuAction  Action

	keyFilter         func(Key) Key
	preProcess        func(Key) Key
	onSingleSelection func(*Entry) bool
	onHelp            func()

	selectFilter func(*Entry) bool
	filter       *LineReader

	frame     Frame
	alive     bool
	cancelled bool
}

// NewMenu creates a menu from settings. The menu is not usable for
// display until Show binds it to a host.
func NewMenu(s Settings) *Menu {
	opts := s.Options
	if opts == nil {
		opts = DefaultOptions()
	}
	keymap := s.Keymap
	if keymap == nil {
		keymap = DefaultKeymap
	}
	metrics := s.Metrics
	if metrics == (ViewMetrics{}) {
		metrics = TileMetrics()
	}

	m := &Menu{
		flags:             s.Flags.sanitize(opts.MenuArrowControl),
		opts:              opts,
		sess:              s.Session,
		keymap:            keymap,
		obs:               s.Observer,
		highlighter:       s.Highlighter,
		indentTitle:       s.IndentTitle,
		moreText:          s.MoreText,
		actionCycle:       s.ActionCycle,
		menuAction:        s.Action,
		keyFilter:         s.KeyFilter,
		preProcess:        s.PreProcess,
		onSingleSelection: s.OnSingleSelection,
		onHelp:            s.OnHelp,
		hover:             -1,
		num:               -1,
	}
	m.view = newView(m, nil, metrics, false)
	if opts.MinColumnWidth > 0 {
		m.view.setMinColWidth(opts.MinColumnWidth)
	}
	if s.MinColWidthChars > 0 {
		// resolved to backend units at bind time
		m.view.minColWidth = -s.MinColWidthChars
	}
	if s.Title != "" {
		m.SetTitle(s.Title)
	}
	if s.AltTitle != "" {
		m.SetAltTitle(s.AltTitle)
	}
	return m
}

func (m *Menu) bind(host Host) {
	m.host = host
	m.view.font = host
	if m.view.minColWidth < 0 {
		m.view.minColWidth = -m.view.minColWidth * host.StringWidth("m")
	}
}

// Flags returns the menu's behavior flags.
func (m *Menu) Flags() Flags { return m.flags }

// SetFlags replaces the menu's flags, applying the same sanitizing as
// construction.
func (m *Menu) SetFlags(f Flags) {
	m.flags = f.sanitize(m.opts.MenuArrowControl)
}

// Add appends an entry; insertion order is display order.
func (m *Menu) Add(e *Entry) {
	m.items = append(m.items, e)
}

// Clear removes all entries and resets selection, hover and scroll.
// The menu owns its entries; after Clear no index into the old set is
// valid.
func (m *Menu) Clear() {
	m.items = m.items[:0]
	m.sel = m.sel[:0]
	m.hover = -1
	m.scroll = 0
	if m.alive {
		m.UpdateMenu()
	}
}

// EntryCount returns the number of entries.
func (m *Menu) EntryCount() int { return len(m.items) }

// EntryAt returns the entry at index. The index must be valid.
func (m *Menu) EntryAt(index int) *Entry {
	if index < 0 || index >= len(m.items) {
		panic("manicotti: entry index out of range")
	}
	return m.items[index]
}

// GetEntryIndex returns e's position counted over quantity-bearing
// entries, or -1 if e is not in the menu. Hosts use it to map entries
// back to their external item lists.
func (m *Menu) GetEntryIndex(e *Entry) int {
	index := 0
	for _, item := range m.items {
		if item == e {
			return index
		}
		if item.Quantity != 0 {
			index++
		}
	}
	return -1
}

// SetTitle sets the primary title.
func (m *Menu) SetTitle(text string) {
	m.title = &Entry{Text: text, Level: LevelTitle}
	m.updateTitle()
}

// SetAltTitle sets the title shown while the menu is in an action mode
// other than execute.
func (m *Menu) SetAltTitle(text string) {
	m.title2 = &Entry{Text: text, Level: LevelTitle}
	m.updateTitle()
}

// SetMoreText replaces the generated key help below the list.
func (m *Menu) SetMoreText(text string) {
	m.moreText = text
	m.keyhelpMore = false
	if m.alive {
		m.updateMore()
	}
}

// SetSelectFilter installs the predicate consulted by select-all.
// A nil predicate admits everything.
func (m *Menu) SetSelectFilter(pred func(*Entry) bool) {
	m.selectFilter = pred
}

// HoveredIndex returns the arrow-key hover index, -1 for none.
func (m *Menu) HoveredIndex() int { return m.hover }

// LastKey returns the last raw key the menu consumed.
func (m *Menu) LastKey() Key { return m.lastKey }

// Action returns the current action mode.
func (m *Menu) Action() Action { return m.menuAction }

// Selected returns the entries currently selected, in display order.
func (m *Menu) Selected() []*Entry {
	var selected []*Entry
	for _, e := range m.items {
		if e.IsSelected() {
			selected = append(selected, e)
		}
	}
	return selected
}

// UpdateMenu refreshes all per-entry display state after the host
// mutated entries in place, and sanitizes the hover.
func (m *Menu) UpdateMenu() {
	m.view.updateItems()
	m.updateTitle()
	if m.hover >= 0 {
		m.SetHovered(m.hover, false)
	}
}

// cycleMode advances the action mode. Cycling clears the transient
// selection so the new mode starts clean.
func (m *Menu) cycleMode(forward bool) bool {
	switch m.actionCycle {
	case CycleNone:
		return false
	case CycleToggle:
		if m.menuAction == ActExecute {
			m.menuAction = ActExamine
		} else {
			m.menuAction = ActExecute
		}
	case CycleCycle:
		if forward {
			m.menuAction = Action((int(m.menuAction) + 1) % actCount)
		} else {
			m.menuAction = Action((int(m.menuAction) + actCount - 1) % actCount)
		}
	}
	for _, e := range m.items {
		e.ToggleAlt()
	}
	m.sel = m.sel[:0]
	if m.alive {
		m.view.updateItems()
	}
	m.updateTitle()
	m.updateMore()
	return true
}

func (m *Menu) selectCountString(count int) string {
	var s string
	if count > 0 {
		s = " (" + strconv.Itoa(count) + " selected)"
	}
	if pad := 12 - len(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// updateTitle recomputes the rendered title line: the search prompt
// while the filter is live, otherwise the title for the current action
// mode plus the selected-count suffix for multiselect menus.
func (m *Menu) updateTitle() {
	if m.sess != nil && m.sess.Replaying {
		return
	}

	var text string
	switch {
	case m.filter != nil:
		text = m.filter.Prompt() + " " + m.filter.Text()
	case m.title == nil:
		text = ""
	default:
		first := m.actionCycle == CycleNone || m.menuAction == ActExecute
		t := m.title
		if !first && m.title2 != nil {
			t = m.title2
		}
		text = t.Text
	}

	if text != "" && !m.flags.Has(FlagQuietSelect) && m.flags.Has(FlagMultiSelect) {
		text += m.selectCountString(len(m.sel))
	}
	if text != "" && m.indentTitle {
		text = " " + text
	}

	if text != m.titleText {
		m.titleText = text
		m.obs.notifyTitle()
	}
}

// getCommand maps a key to a command, reserving '-' for selection
// clearing on multiselect menus.
func (m *Menu) getCommand(key Key) Command {
	if key == '-' && (m.flags.Has(FlagMultiSelect) || m.flags.Has(FlagSpecialMinus)) {
		return CmdNone
	}
	return m.keymap(KeymapContextMenu, key)
}

// processCommand executes a navigation command and reports whether the
// menu stays open.
func (m *Menu) processCommand(cmd Command) bool {
	ret := true

	switch cmd {
	case CmdUp:
		if m.flags.Has(FlagArrowsSelect) {
			m.CycleHover(true)
		} else {
			m.LineUp()
		}
	case CmdDown:
		if m.flags.Has(FlagArrowsSelect) {
			m.CycleHover(false)
		} else {
			m.LineDown()
		}
	case CmdLineUp:
		m.LineUp()
	case CmdLineDown:
		m.LineDown()
	case CmdPageUp:
		m.PageUp()
	case CmdPageDown:
		if !m.PageDown() && m.flags.Has(FlagWrap) {
			m.setScroll(0)
		}
	case CmdScrollToTop:
		m.setScroll(0)
		if m.flags.Has(FlagArrowsSelect) && len(m.items) > 0 {
			m.SetHovered(0, false)
			if !m.hoverOnItem() {
				m.CycleHover(false)
			}
		}
	case CmdScrollToEnd:
		if len(m.items) > 0 {
			if !m.InPage(len(m.items)-1, true) {
				m.setScroll(math.MaxInt)
			}
			if m.flags.Has(FlagArrowsSelect) {
				m.SetHovered(len(m.items)-1, false)
				if !m.hoverOnItem() {
					m.CycleHover(true)
				}
			}
		}
	case CmdSearch:
		if m.flags.Has(FlagAllowFilter) {
			m.filter = NewLineReader(searchPrompt(), 80)
			m.updateTitle()
		}
	case CmdCycleMode:
		m.cycleMode(true)
	case CmdCycleModeReverse:
		m.cycleMode(false)
	case CmdCycleHeaders:
		m.CycleHeaders(true)
	case CmdHelp:
		if m.onHelp != nil {
			m.onHelp()
		}
	case CmdExit:
		m.sel = m.sel[:0]
		m.lastKey = KeyEscape
		m.cancelled = true
		ret = m.flags.Has(FlagUncancel) && !m.sess.Interrupted()
		if ret {
			m.cancelled = false
		}
	}

	if cmd != CmdNone {
		m.num = -1
	}
	return ret
}

func (m *Menu) hoverOnItem() bool {
	return m.hover >= 0 && m.hover < len(m.items) && m.items[m.hover].Level == LevelItem
}

// ProcessKey runs one key through the dispatch pipeline and reports
// whether the menu stays open.
//
// Pipeline order: key filter, pre-process hook, quantity digit
// accumulation, command lookup and execution, then manual handling
// (Enter commit, '.'/click toggle, hotkey routing). The quantity
// accumulator survives only digit keys.
func (m *Menu) ProcessKey(key Key) bool {
	if !m.flags.Has(FlagShowEmpty) && len(m.items) == 0 {
		m.lastKey = key
		return false
	}

	if m.keyFilter != nil {
		key = m.keyFilter(key)
	}
	if m.preProcess != nil {
		key = m.preProcess(key)
	}

	if key == ' ' && m.flags.Has(FlagMultiSelect) && m.flags.Has(FlagArrowsSelect) {
		key = '.'
	}

	if !m.flags.Has(FlagNoSelectQty) && !m.flags.Has(FlagNoSelect) && key.IsDigit() {
		if m.num > 999 {
			m.num = -1
		}
		if m.num == -1 {
			m.num = int(key - '0')
		} else {
			m.num = m.num*10 + int(key-'0')
		}
		return true
	}

	if cmd := m.getCommand(key); cmd != CmdNone {
		return m.processCommand(cmd)
	}

	switch key {
	case KeyNone:
		return true

	case '.', KeyMouseClick:
		if m.hover != -1 && m.flags.Has(FlagMultiSelect) {
			m.selectItemIndex(m.hover, -1)
			m.sel = m.Selected()
			m.updateTitle()
			m.updateMore()
		}

	default:
		if key == KeyEnter {
			if m.flags.Has(FlagSingleSelect) && m.hover >= 0 {
				m.selectItemIndex(m.hover, 1)
			} else if !m.flags.Has(FlagPreselected) || len(m.sel) > 0 {
				m.lastKey = key
				return false
			}
		}

		m.lastKey = key

		if m.flags&(FlagSingleSelect|FlagMultiSelect) == 0 {
			return false
		}

		m.selectItems(key, m.num)
		m.sel = m.Selected()
		if len(m.sel) == 1 && m.flags.Has(FlagSingleSelect) {
			item := m.sel[0]
			handled := false
			if item.OnSelect != nil {
				handled = item.OnSelect(item)
			} else if m.onSingleSelection != nil {
				handled = m.onSingleSelection(item)
			}
			// selection acts as a momentary toggle for action menus:
			// if the action handled the event and the menu continues,
			// start from a clean selection
			if handled {
				m.DeselectAll()
			}
			return handled
		}

		m.updateTitle()
		m.updateMore()

		if m.flags.Has(FlagAnyPrintable) && key.IsPrintable() &&
			(!key.IsDigit() || m.flags.Has(FlagNoSelectQty)) {
			return false
		}
	}

	if !key.IsDigit() {
		m.num = -1
	}
	return true
}

// handleKey routes a key to the live search prompt when one is up,
// otherwise into ProcessKey.
func (m *Menu) handleKey(key Key) bool {
	if m.filter != nil {
		done := m.filter.PutKey(key)
		if done {
			text := m.filter.Text()
			m.lastKey = key
			m.filter = nil
			m.updateTitle()
			if key != KeyEscape && text != "" {
				keep := m.FilterWithRegex(text)
				m.updateTitle()
				m.updateMore()
				return keep
			}
			return true
		}
		m.updateTitle()
		return true
	}
	return m.ProcessKey(key)
}

// negotiate sizes the menu against the host surface: width from the
// horizontal preferred size, column count from whether one column fits
// the available height, and viewport height capped by both the surface
// and the hotkey page limit.
func (m *Menu) negotiate() {
	surfaceW, surfaceH := m.host.Size()

	titleH := 0
	if m.titleText != "" || m.title != nil {
		titleH = m.host.CharHeight() + 2*m.view.metrics.ItemPad
	}
	m.updateMore()
	moreH := len(m.moreLines) * m.host.CharHeight()
	maxHeight := surfaceH - titleH - moreH
	if maxHeight < 0 {
		maxHeight = 0
	}

	hreq := m.view.preferredSize(Horizontal, 0)
	width := hreq.Natural
	if width > surfaceW {
		width = surfaceW
	}
	if width <= 0 {
		width = 1
	}

	if m.view.drawTiles && m.flags.Has(FlagUseTwoColumns) && !m.opts.SingleColumnMenus {
		m.view.doLayout(width, 1)
		oneColHeight := m.view.height
		switch {
		case m.view.numColumns == 1 && oneColHeight > maxHeight:
			m.view.setNumColumns(2)
		case m.view.numColumns == 2 && oneColHeight <= maxHeight:
			m.view.setNumColumns(1)
		}
	}

	vreq := m.view.preferredSize(Vertical, width)
	viewportH := vreq.Natural
	if viewportH > maxHeight {
		viewportH = maxHeight
	}
	if maxVPH := m.view.maxViewportHeight(); viewportH > maxVPH {
		viewportH = maxVPH
	}
	m.viewportH = viewportH

	m.view.allocate(Rect{X: 0, Y: titleH, W: width, H: vreq.Natural})
	m.setScroll(m.scroll) // re-clamp against the new geometry
	m.updateMore()
}

// updateMore rebuilds the lines shown under the list.
func (m *Menu) updateMore() {
	if m.sess != nil && m.sess.Replaying {
		return
	}
	var text string
	if m.keyhelpMore {
		text = m.getKeyhelp(m.view.height > m.viewportH)
	} else {
		text = m.moreText
	}
	if text == "" {
		m.moreLines = nil
		return
	}
	m.moreLines = strings.Split(text, "\n")
}

// render packs the current state into a frame and hands it to the host.
func (m *Menu) render() {
	m.frame.reset()

	theme := m.opts.Theme
	if m.titleText != "" {
		colour := theme.TextColour()
		if m.title != nil && m.filter == nil {
			if c := m.entryColour(m.title); c != ColourDefault {
				colour = c
			}
		}
		m.frame.addText(m.titleText, m.view.metrics.ItemPad, m.view.metrics.ItemPad, colour)
	}

	m.view.packFrame(&m.frame, m.scroll, m.viewportH)

	if len(m.moreLines) > 0 {
		percent := 0
		if p, err := m.ScrollPercent(); err == nil {
			percent = p
		}
		y := m.view.region.Y + m.viewportH + m.view.metrics.ItemPad
		for i, line := range m.moreLines {
			line = strings.Replace(line, scrollPosToken, scrollPosText(percent), 1)
			m.frame.addText(line, m.view.metrics.ItemPad, y+i*m.host.CharHeight(), ColourGrey)
		}
	}

	m.host.Present(&m.frame)
}

// Show runs the menu's event loop on host until the user commits a
// selection, cancels, or the session is interrupted. It returns the
// selected entries in display order; ErrCancelled when the menu was
// dismissed, ErrInterrupted on an external interrupt.
func (m *Menu) Show(host Host) ([]*Entry, error) {
	m.bind(host)
	log := internal.GetInternalLogger()
	log.Debug("menu show", "entries", len(m.items), "flags", uint32(m.flags))

	if m.moreText == "" {
		m.keyhelpMore = true
	}
	m.cancelled = false
	m.sel = m.Selected()
	m.view.updateItems()
	m.updateTitle()
	m.negotiate()

	if m.flags.Has(FlagStartAtEnd) {
		m.setScroll(math.MaxInt)
		if m.flags.Has(FlagInitHover) && len(m.items) > 0 {
			m.SetHovered(len(m.items)-1, false)
			if !m.hoverOnItem() {
				m.CycleHover(true)
			}
		}
	} else if m.flags.Has(FlagInitHover) && !m.hoverOnItem() {
		m.CycleHover(false)
	}

	m.alive = true
	defer func() { m.alive = false }()

	for m.alive {
		if m.sess.Interrupted() {
			log.Debug("menu interrupted")
			return nil, ErrInterrupted
		}

		m.render()

		ev := host.WaitEvent(16 * time.Millisecond)
		if ev == nil {
			continue
		}
		switch e := ev.(type) {
		case QuitEvent:
			log.Debug("menu host quit")
			return nil, ErrInterrupted
		case ResizeEvent:
			m.negotiate()
		case MouseEvent:
			if key, ok := m.view.onMouseEvent(e); ok && key != KeyNone {
				if !m.handleKey(key) {
					m.alive = false
				}
			}
		case KeyEvent:
			if !m.handleKey(e.Key) {
				m.alive = false
			}
		}
	}

	if m.cancelled {
		log.Debug("menu cancelled")
		return nil, ErrCancelled
	}
	log.Debug("menu closed", "selected", len(m.sel), "last_key", int(m.lastKey))
	return m.sel, nil
}
