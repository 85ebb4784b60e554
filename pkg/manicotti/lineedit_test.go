package manicotti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineReaderTyping(t *testing.T) {
	r := NewLineReader("Select what?", 10)
	for _, k := range []Key{'p', 'e', 'a', 'r'} {
		assert.False(t, r.PutKey(k))
	}
	assert.Equal(t, "pear", r.Text())
	assert.Equal(t, "Select what?", r.Prompt())

	assert.True(t, r.PutKey(KeyEnter))
	assert.Equal(t, "pear", r.Text(), "enter commits the text")
}

func TestLineReaderEscapeClears(t *testing.T) {
	r := NewLineReader("", 10)
	r.PutKey('x')
	assert.True(t, r.PutKey(KeyEscape))
	assert.Empty(t, r.Text())
}

func TestLineReaderBackspace(t *testing.T) {
	r := NewLineReader("", 10)
	r.PutKey('a')
	r.PutKey('b')
	r.PutKey(KeyBackspace)
	assert.Equal(t, "a", r.Text())

	r.PutKey(KeyBackspace)
	r.PutKey(KeyBackspace) // empty, stays empty
	assert.Empty(t, r.Text())
}

func TestLineReaderCtrlUClearsLine(t *testing.T) {
	r := NewLineReader("", 10)
	r.PutKey('a')
	r.PutKey('b')
	assert.False(t, r.PutKey(keyCtrlU))
	assert.Empty(t, r.Text())
}

func TestLineReaderRespectsLimit(t *testing.T) {
	r := NewLineReader("", 3)
	for _, k := range []Key{'a', 'b', 'c', 'd', 'e'} {
		r.PutKey(k)
	}
	assert.Equal(t, "abc", r.Text())
}

func TestLineReaderSetText(t *testing.T) {
	r := NewLineReader("", 3)
	r.SetText("toolong")
	assert.Equal(t, "too", r.Text())
}

func TestLineReaderIgnoresSpecialKeys(t *testing.T) {
	r := NewLineReader("", 10)
	r.PutKey(KeyUp)
	r.PutKey(KeyPageDown)
	assert.Empty(t, r.Text())
}
