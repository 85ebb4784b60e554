package manicotti

// Flags control a menu's selection and navigation behavior.
// Exactly one of FlagNoSelect, FlagSingleSelect and FlagMultiSelect
// must be set.
type Flags uint32

const (
	FlagNoSelect Flags = 1 << iota
	FlagSingleSelect
	FlagMultiSelect

	// FlagNoSelectQty disables the numeric quantity prefix; digits fall
	// through to hotkey handling.
	FlagNoSelectQty

	// FlagAllowFilter enables the search command.
	FlagAllowFilter

	// FlagShowEmpty keeps an empty menu on screen instead of closing on
	// the first key.
	FlagShowEmpty

	// FlagStartAtEnd opens the menu scrolled to the bottom.
	FlagStartAtEnd

	// FlagWrap makes hover cycling and page-down wrap around the list.
	FlagWrap

	// FlagArrowsSelect enables arrow-key hover navigation; without it,
	// arrows scroll line by line.
	FlagArrowsSelect

	// FlagInitHover places the hover on the first item when shown.
	FlagInitHover

	// FlagUncancel ignores the exit command; the menu can only close
	// through a selection or an interrupt.
	FlagUncancel

	// FlagAnyPrintable closes the menu on any printable key that did
	// not accumulate a quantity digit.
	FlagAnyPrintable

	// FlagPreselected means the caller seeded a selection, so Enter
	// with nothing selected still closes the menu.
	FlagPreselected

	// FlagQuietSelect suppresses selection highlights and the selected
	// count in the title.
	FlagQuietSelect

	// FlagNoWrapRows disables two-line wrapping of overlong entries.
	FlagNoWrapRows

	// FlagUseTwoColumns lets the layout switch to two columns when a
	// single column would overflow the viewport.
	FlagUseTwoColumns

	// FlagSelectByPage restricts hotkey matches to entries on the
	// current page.
	FlagSelectByPage

	// FlagSpecialMinus reserves '-' for the caller instead of treating
	// it as clear-selection/page-up.
	FlagSpecialMinus

	// FlagAllowFormatting passes entry text through to the backend
	// without chopping markup.
	FlagAllowFormatting
)

// Has reports whether every bit of f2 is set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// sanitize applies option-dependent adjustments: menus that cannot
// select anything get no hover, and hosts can turn arrow control off
// globally.
func (f Flags) sanitize(arrowControl bool) Flags {
	if !arrowControl || f.Has(FlagNoSelect) {
		f &^= FlagArrowsSelect | FlagInitHover
	}
	return f
}
