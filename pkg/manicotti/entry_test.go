package manicotti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntrySelect(t *testing.T) {
	t.Run("full quantity", func(t *testing.T) {
		e := &Entry{Level: LevelItem, Quantity: 5}
		e.Select(-1)
		assert.Equal(t, 5, e.SelectedQty)
		assert.True(t, e.IsSelected())
	})

	t.Run("toggle off when selected", func(t *testing.T) {
		e := &Entry{Level: LevelItem, Quantity: 5, SelectedQty: 3}
		e.Select(-1)
		assert.Equal(t, 0, e.SelectedQty)
		assert.False(t, e.IsSelected())
	})

	t.Run("force select all never toggles", func(t *testing.T) {
		e := &Entry{Level: LevelItem, Quantity: 5, SelectedQty: 3}
		e.Select(-2)
		assert.Equal(t, 5, e.SelectedQty)
		e.Select(-2)
		assert.Equal(t, 5, e.SelectedQty)
	})

	t.Run("explicit quantity", func(t *testing.T) {
		e := &Entry{Level: LevelItem, Quantity: 5}
		e.Select(2)
		assert.Equal(t, 2, e.SelectedQty)
	})

	t.Run("action entry without quantity", func(t *testing.T) {
		e := &Entry{Level: LevelItem, OnSelect: func(*Entry) bool { return true }}
		e.Select(1)
		assert.Equal(t, 1, e.SelectedQty)
		assert.True(t, e.IsSelected())
	})

	t.Run("no quantity no action cannot select", func(t *testing.T) {
		e := &Entry{Level: LevelItem}
		e.Select(-1)
		assert.False(t, e.IsSelected())
	})
}

func TestEntryDisplayText(t *testing.T) {
	e := NewEntry("apple", 'a')
	assert.Equal(t, " a - apple", e.DisplayText())

	noHotkey := &Entry{Text: "apple", Level: LevelItem, IndentNoHotkeys: true}
	assert.Equal(t, "     apple", noHotkey.DisplayText())

	heading := NewHeading("Fruits")
	assert.Equal(t, "Fruits", heading.DisplayText())
}

func TestEntryMatchText(t *testing.T) {
	e := NewEntry("apple", 'a')
	assert.Equal(t, " a - apple", e.MatchText())

	e.FilterText = "red fruit"
	assert.Equal(t, "red fruit", e.MatchText())
}

func TestEntryHotkeys(t *testing.T) {
	e := NewEntry("apple", 'a')
	e.AddHotkey('1')

	assert.Equal(t, Key('a'), e.PrimaryHotkey())
	assert.True(t, e.HasHotkey('a'))
	assert.True(t, e.HasHotkey('1'))
	assert.False(t, e.HasHotkey('b'))

	empty := NewHeading("x")
	assert.Equal(t, KeyNone, empty.PrimaryHotkey())
}

func TestEntryToggleAlt(t *testing.T) {
	e := NewEntry("draw", 'd')
	e.AltText = "describe"
	e.ToggleAlt()
	assert.Equal(t, "describe", e.Text)
	assert.Equal(t, "draw", e.AltText)

	plain := NewEntry("plain", 'p')
	plain.ToggleAlt()
	assert.Equal(t, "plain", plain.Text)
}

func TestLevelIsHeading(t *testing.T) {
	assert.True(t, LevelTitle.IsHeading())
	assert.True(t, LevelSubtitle.IsHeading())
	assert.False(t, LevelItem.IsHeading())
	assert.False(t, LevelNone.IsHeading())
}
