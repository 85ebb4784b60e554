package term

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

func TestScreenMetrics(t *testing.T) {
	s := NewScreen(20, 5)
	assert.Equal(t, 1, s.CharHeight())

	w, h := s.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)

	assert.Equal(t, 5, s.StringWidth("apple"))
	assert.Equal(t, 4, s.StringWidth("日本"), "wide runes take two cells")
}

func TestSplitText(t *testing.T) {
	s := NewScreen(20, 5)

	lines := s.SplitText("one two three four", 9, 0)
	require.True(t, len(lines) > 1)
	for _, line := range lines {
		assert.LessOrEqual(t, s.StringWidth(line), 9)
	}

	capped := s.SplitText("one two three four", 5, 2)
	assert.Len(t, capped, 2)

	assert.Equal(t, []string{""}, s.SplitText("", 10, 0))
}

func TestPresentDrawsTextsAndLines(t *testing.T) {
	s := NewScreen(10, 3)
	f := &manicotti.Frame{
		Lines: []manicotti.Line{{X1: 0, Y1: 0, X2: 10, Y2: 0}},
		Texts: []manicotti.TextRun{{Text: "hi", X: 1, Y: 1}},
	}
	s.Present(f)

	assert.Equal(t, "----------", s.Line(0))
	assert.Equal(t, " hi", s.Line(1))
	assert.Equal(t, "", s.Line(2))
}

func TestPresentClipsToGrid(t *testing.T) {
	s := NewScreen(4, 2)
	f := &manicotti.Frame{
		Texts: []manicotti.TextRun{
			{Text: "overflow", X: 0, Y: 0},
			{Text: "below", X: 0, Y: 9},
		},
	}
	s.Present(f)
	assert.Equal(t, "over", s.Line(0))
	assert.Equal(t, "", s.Line(1))
}

func TestWaitEvent(t *testing.T) {
	s := NewScreen(10, 3)

	s.PushKeys('a')
	ev := s.WaitEvent(time.Second)
	key, ok := ev.(manicotti.KeyEvent)
	require.True(t, ok)
	assert.Equal(t, manicotti.Key('a'), key.Key)

	assert.Nil(t, s.WaitEvent(time.Millisecond), "timeout yields nil")
}

func TestPushNeverBlocks(t *testing.T) {
	s := NewScreen(10, 3)
	for i := 0; i < 200; i++ {
		s.Push(manicotti.KeyEvent{Key: 'x'})
	}
	// events beyond the buffer are dropped, not queued
	assert.NotNil(t, s.WaitEvent(time.Millisecond))
}
