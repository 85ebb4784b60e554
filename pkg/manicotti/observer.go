package manicotti

// Observer receives change notifications from a menu. A
// display-mirroring layer (e.g. a thin remote client) subscribes to
// keep its copy of the menu in sync; the menu core itself never frames
// or transmits anything.
type Observer struct {
	// EntryChanged fires after an entry's display state changed
	// (selection, colour, text). Geometry is unchanged.
	EntryChanged func(index int)

	// TitleChanged fires after the rendered title changed.
	TitleChanged func()

	// ScrollChanged fires when the first visible entry or the hover
	// moved.
	ScrollChanged func(firstVisible, hover int)
}

func (o *Observer) notifyEntry(index int) {
	if o != nil && o.EntryChanged != nil {
		o.EntryChanged(index)
	}
}

func (o *Observer) notifyTitle() {
	if o != nil && o.TitleChanged != nil {
		o.TitleChanged()
	}
}

func (o *Observer) notifyScroll(firstVisible, hover int) {
	if o != nil && o.ScrollChanged != nil {
		o.ScrollChanged(firstVisible, hover)
	}
}
