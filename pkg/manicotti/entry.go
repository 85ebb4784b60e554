package manicotti

import "fmt"

// Level classifies an entry within a menu. Headings (title and subtitle)
// span the full menu width and are never independently selectable.
type Level int

const (
	LevelNone Level = iota
	LevelTitle
	LevelSubtitle
	LevelItem
)

// IsHeading reports whether entries of this level act as section headings.
func (l Level) IsHeading() bool {
	return l == LevelTitle || l == LevelSubtitle
}

// Colour is a packed 0xRRGGBBAA value. The zero value means "use the
// theme default"; backends resolve it at draw time.
type Colour uint32

const (
	ColourDefault  Colour = 0
	ColourWhite    Colour = 0xffffffff
	ColourGrey     Colour = 0xb4b4b4ff
	ColourDarkGrey Colour = 0x646464ff
	ColourYellow   Colour = 0xffff64ff
	ColourRed      Colour = 0xff6464ff
	ColourGreen    Colour = 0x64ff64ff
	ColourBlue     Colour = 0x6496ffff
)

// Tile is an opaque handle to an icon registered with a rendering
// backend. YMax optionally crops the icon's height.
type Tile struct {
	ID   uint32
	YMax int
}

// Entry is a single unit in a menu: an item, a subtitle, or a title.
//
// Quantity is the number of units this entry stands for; an entry with
// Quantity 0 and no OnSelect action cannot be selected. AltText, when
// set, replaces Text while the menu is in its alternate action mode.
type Entry struct {
	Text     string
	AltText  string
	Level    Level
	Hotkeys  []Key
	Quantity int

	// SelectedQty is how many units are currently selected, in
	// [0, Quantity]. Mutate it through Select only.
	SelectedQty int

	Colour Colour

	// OnSelect, if set, runs when a single-select menu commits this
	// entry. Returning true means the event was fully handled and the
	// transient selection is cleared.
	OnSelect func(*Entry) bool

	// Tiles are icon handles drawn left of the text in icon mode.
	Tiles []Tile

	// IndentNoHotkeys aligns hotkey-less items with their lettered
	// neighbours by prefixing a fixed indent.
	IndentNoHotkeys bool

	// FilterText overrides the text matched by select filters and the
	// search command. Empty means match against DisplayText.
	FilterText string

	// Data carries application-specific payload, untouched by the menu.
	Data any
}

// NewEntry creates an item-level entry with a single hotkey.
func NewEntry(text string, hotkey Key) *Entry {
	return &Entry{Text: text, Level: LevelItem, Hotkeys: []Key{hotkey}, Quantity: 1}
}

// NewHeading creates a subtitle-level entry.
func NewHeading(text string) *Entry {
	return &Entry{Text: text, Level: LevelSubtitle}
}

// IsSelected reports whether the entry is part of the current selection.
// An entry counts as selected only if units are selected and it is
// either quantity-bearing or carries an action.
func (e *Entry) IsSelected() bool {
	return e.SelectedQty > 0 && (e.Quantity > 0 || e.OnSelect != nil)
}

// Select mutates the entry's selected quantity.
//
// qty -1 selects the entry's full quantity, qty -2 forces "select all"
// even on an already-selected entry. Selecting a selected entry toggles
// it off. Action-bearing entries with no quantity always become
// selected with quantity 1; they act as momentary toggles.
func (e *Entry) Select(qty int) {
	switch {
	case e.OnSelect != nil && e.Quantity == 0:
		e.SelectedQty = 1
	case qty == -2:
		e.SelectedQty = e.Quantity
	case e.IsSelected():
		e.SelectedQty = 0
	case e.Quantity > 0:
		if qty == -1 {
			e.SelectedQty = e.Quantity
		} else {
			e.SelectedQty = qty
		}
	}
}

// PrimaryHotkey returns the entry's first hotkey, or KeyNone.
// Entries that share overflow hotkeys are disambiguated by their
// primary one.
func (e *Entry) PrimaryHotkey() Key {
	if len(e.Hotkeys) == 0 {
		return KeyNone
	}
	return e.Hotkeys[0]
}

// HasHotkey reports whether key is one of the entry's hotkeys.
func (e *Entry) HasHotkey(key Key) bool {
	for _, hk := range e.Hotkeys {
		if hk == key {
			return true
		}
	}
	return false
}

// AddHotkey appends an additional hotkey.
func (e *Entry) AddHotkey(key Key) {
	e.Hotkeys = append(e.Hotkeys, key)
}

func (e *Entry) preface() string {
	switch {
	case e.Level == LevelItem && len(e.Hotkeys) > 0:
		return fmt.Sprintf(" %s - ", e.Hotkeys[0].Name())
	case e.Level == LevelItem && e.IndentNoHotkeys:
		return "     "
	default:
		return ""
	}
}

// DisplayText returns the text as shown on screen, with the hotkey
// preface (" a - ") or fixed indent prepended for item-level entries.
func (e *Entry) DisplayText() string {
	return e.preface() + e.Text
}

// MatchText returns the text that select filters and the search command
// match against.
func (e *Entry) MatchText() string {
	if e.FilterText != "" {
		return e.FilterText
	}
	return e.DisplayText()
}

// ToggleAlt swaps Text and AltText on toggleable entries. Menus in
// CycleToggle action mode call this when the mode flips.
func (e *Entry) ToggleAlt() {
	if e.AltText == "" {
		return
	}
	e.Text, e.AltText = e.AltText, e.Text
}
