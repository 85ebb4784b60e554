package manicotti

// Frame is an abstract draw-primitive list. The menu core emits one per
// render pass; rendering backends translate it to pixels or character
// cells. Coordinates are relative to the menu's allocated region, in
// backend units (pixels for the tile backend, cells for the terminal
// backend).
type Frame struct {
	Quads []Quad
	Lines []Line
	Texts []TextRun
	Tiles []TilePlacement
}

// Quad is a filled rectangle, used for selection and hover backgrounds.
type Quad struct {
	X, Y, W, H int
	Colour     Colour
}

// Line is a one-unit-thick line, used for heading dividers and hover
// outlines.
type Line struct {
	X1, Y1, X2, Y2 int
	Colour         Colour
}

// TextRun places a single line of text.
type TextRun struct {
	Text   string
	X, Y   int
	Colour Colour
}

// TilePlacement places an icon.
type TilePlacement struct {
	Tile Tile
	X, Y int
}

func (f *Frame) reset() {
	f.Quads = f.Quads[:0]
	f.Lines = f.Lines[:0]
	f.Texts = f.Texts[:0]
	f.Tiles = f.Tiles[:0]
}

func (f *Frame) addQuad(x, y, w, h int, c Colour) {
	f.Quads = append(f.Quads, Quad{X: x, Y: y, W: w, H: h, Colour: c})
}

func (f *Frame) addLine(x1, y1, x2, y2 int, c Colour) {
	f.Lines = append(f.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Colour: c})
}

func (f *Frame) addText(s string, x, y int, c Colour) {
	if s == "" {
		return
	}
	f.Texts = append(f.Texts, TextRun{Text: s, X: x, Y: y, Colour: c})
}

func (f *Frame) addOutline(x1, y1, x2, y2 int, c Colour) {
	f.addLine(x1, y1, x2, y1, c)
	f.addLine(x2, y1, x2, y2, c)
	f.addLine(x2, y2, x1, y2, c)
	f.addLine(x1, y2, x1, y1, c)
}
