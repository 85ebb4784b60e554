package manicotti

import "time"

// Event is an input or lifecycle event delivered by a rendering
// backend.
type Event interface {
	isEvent()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key Key
}

// MouseEventType distinguishes pointer events.
type MouseEventType int

const (
	MouseMove MouseEventType = iota
	MouseDown
	MouseUp
	MouseEnter
	MouseLeave
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
)

// MouseEvent is a pointer event in backend coordinates.
type MouseEvent struct {
	Type   MouseEventType
	X, Y   int
	Button MouseButton
}

// ResizeEvent reports a new host surface size. The menu re-negotiates
// its region when it sees one.
type ResizeEvent struct {
	W, H int
}

// QuitEvent reports that the host surface is going away.
type QuitEvent struct{}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (QuitEvent) isEvent()   {}

// Axis selects a dimension during size negotiation.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// SizeReq is the result of a preferred-size query: the smallest
// workable extent and the natural one.
type SizeReq struct {
	Min, Natural int
}

// TextMetrics is the measurement capability the layout engine needs
// from a backend: a line height, a string width, and width-bounded
// wrapping. Implementations must be pure; layout may call them many
// times per frame.
type TextMetrics interface {
	// CharHeight is the height of one line of text.
	CharHeight() int

	// StringWidth is the rendered width of s on a single line.
	StringWidth(s string) int

	// SplitText wraps s to maxWidth, returning at most as many lines
	// as fit in maxHeight (at least one). maxHeight <= 0 means
	// unbounded.
	SplitText(s string, maxWidth, maxHeight int) []string
}

// Host is everything a menu needs from its rendering backend: text
// measurement, an event stream, a surface size, and a sink for draw
// primitives.
type Host interface {
	TextMetrics

	// Size returns the full surface extent available for negotiation.
	Size() (w, h int)

	// WaitEvent blocks up to timeout for the next event, returning nil
	// on timeout.
	WaitEvent(timeout time.Duration) Event

	// Present draws a frame. The frame is only valid for the duration
	// of the call.
	Present(f *Frame)
}
