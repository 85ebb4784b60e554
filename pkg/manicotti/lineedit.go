package manicotti

// LineReader is a resumable single-line editor. The menu feeds it one
// key at a time while its own event loop keeps running, so the search
// prompt never needs a nested event pump. PutKey reports completion;
// Enter commits the current text and Escape commits empty.
type LineReader struct {
	prompt string
	text   []rune
	max    int
}

// NewLineReader creates a reader with a prompt and a rune limit.
func NewLineReader(prompt string, max int) *LineReader {
	return &LineReader{prompt: prompt, max: max}
}

// Prompt returns the prompt text.
func (r *LineReader) Prompt() string { return r.prompt }

// Text returns the line as typed so far.
func (r *LineReader) Text() string { return string(r.text) }

// SetText replaces the line contents.
func (r *LineReader) SetText(s string) {
	r.text = []rune(s)
	if len(r.text) > r.max {
		r.text = r.text[:r.max]
	}
}

const keyCtrlU = Key(21)

// PutKey feeds one key into the editor and reports whether editing
// finished. After it returns true the reader accepts no further input
// meaningfully; the caller reads Text and discards the reader.
func (r *LineReader) PutKey(key Key) (done bool) {
	switch {
	case key == KeyEnter:
		return true
	case key == KeyEscape:
		r.text = r.text[:0]
		return true
	case key == KeyBackspace:
		if len(r.text) > 0 {
			r.text = r.text[:len(r.text)-1]
		}
	case key == keyCtrlU:
		r.text = r.text[:0]
	case key.IsPrintable():
		if len(r.text) < r.max {
			r.text = append(r.text, rune(key))
		}
	}
	return false
}
