package manicotti

// Highlighter overrides entry colours at draw time, e.g. to mark
// entries matching an external condition. Returning ColourDefault keeps
// the entry's own colour.
type Highlighter interface {
	EntryColour(e *Entry) Colour
}

// entryColour resolves the colour an entry is drawn with.
func (m *Menu) entryColour(e *Entry) Colour {
	if m.highlighter != nil {
		if c := m.highlighter.EntryColour(e); c != ColourDefault {
			return c
		}
	}
	return e.Colour
}
