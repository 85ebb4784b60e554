package manicotti_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/backend/term"
)

func fruitMenu(title string) *manicotti.Menu {
	s := manicotti.DefaultSettings(title)
	s.Metrics = manicotti.TermMetrics()
	m := manicotti.NewMenu(s)
	m.Add(manicotti.NewHeading("Fruits"))
	m.Add(manicotti.NewEntry("apple", 'a'))
	m.Add(manicotti.NewEntry("pear", 'p'))
	m.Add(manicotti.NewEntry("kiwi", 'k'))
	return m
}

func TestShowSelectsByHotkey(t *testing.T) {
	screen := term.NewScreen(40, 12)
	m := fruitMenu("Pick a fruit")

	screen.PushKeys('p')
	sel, err := m.Show(screen)
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "pear", sel[0].Text)
	assert.Equal(t, manicotti.Key('p'), m.LastKey())
}

func TestShowEnterCommitsHover(t *testing.T) {
	screen := term.NewScreen(40, 12)
	m := fruitMenu("Pick a fruit")

	// initial hover is the first item; one down then enter picks pear
	screen.PushKeys(manicotti.KeyDown, manicotti.KeyEnter)
	sel, err := m.Show(screen)
	require.NoError(t, err)
	require.Len(t, sel, 1)
	assert.Equal(t, "pear", sel[0].Text)
}

func TestShowEscapeCancels(t *testing.T) {
	screen := term.NewScreen(40, 12)
	m := fruitMenu("Pick a fruit")

	screen.PushKeys(manicotti.KeyEscape)
	sel, err := m.Show(screen)
	assert.True(t, manicotti.IsCancelled(err))
	assert.Empty(t, sel)
}

func TestShowEmptyMenuClosesOnAnyKey(t *testing.T) {
	screen := term.NewScreen(40, 12)
	s := manicotti.DefaultSettings("Nothing here")
	s.Metrics = manicotti.TermMetrics()
	m := manicotti.NewMenu(s)

	screen.PushKeys('x')
	sel, err := m.Show(screen)
	require.NoError(t, err)
	assert.Empty(t, sel)
}

func TestShowInterruptedSession(t *testing.T) {
	screen := term.NewScreen(40, 12)
	sess := manicotti.NewSession()
	sess.Interrupt()

	s := manicotti.DefaultSettings("Pick a fruit")
	s.Metrics = manicotti.TermMetrics()
	s.Session = sess
	m := manicotti.NewMenu(s)
	m.Add(manicotti.NewEntry("apple", 'a'))

	sel, err := m.Show(screen)
	assert.ErrorIs(t, err, manicotti.ErrInterrupted)
	assert.Empty(t, sel)
}

func TestShowQuitEventInterrupts(t *testing.T) {
	screen := term.NewScreen(40, 12)
	m := fruitMenu("Pick a fruit")

	screen.Push(manicotti.QuitEvent{})
	_, err := m.Show(screen)
	assert.ErrorIs(t, err, manicotti.ErrInterrupted)
}

func TestShowMultiselectAccept(t *testing.T) {
	screen := term.NewScreen(40, 12)
	s := manicotti.DefaultSettings("Take what?")
	s.Metrics = manicotti.TermMetrics()
	s.Flags = manicotti.FlagMultiSelect | manicotti.FlagArrowsSelect | manicotti.FlagWrap
	m := manicotti.NewMenu(s)
	m.Add(manicotti.NewHeading("Fruits"))
	m.Add(manicotti.NewEntry("apple", 'a'))
	m.Add(manicotti.NewEntry("pear", 'p'))
	m.Add(manicotti.NewEntry("kiwi", 'k'))

	screen.PushKeys('a', 'k', manicotti.KeyEnter)
	sel, err := m.Show(screen)
	require.NoError(t, err)
	require.Len(t, sel, 2)
	assert.Equal(t, "apple", sel[0].Text)
	assert.Equal(t, "kiwi", sel[1].Text)
}

func TestShowRendersTitleAndEntries(t *testing.T) {
	screen := term.NewScreen(40, 12)
	m := fruitMenu("Pick a fruit")

	screen.PushKeys(manicotti.KeyEscape)
	_, err := m.Show(screen)
	require.Error(t, err)

	assert.Contains(t, screen.Line(0), "Pick a fruit")
	assert.Contains(t, screen.Line(1), "Fruits")
	assert.Equal(t, " a - apple", screen.Line(2))
	// the initial hover's outline rules share the next row, so only the
	// text prefix is stable there
	assert.Contains(t, screen.Line(3), " p - pear")
	assert.Equal(t, " k - kiwi", screen.Line(4))
}

func TestShowEntryActionKeepsMenuOpen(t *testing.T) {
	screen := term.NewScreen(40, 12)
	s := manicotti.DefaultSettings("Actions")
	s.Metrics = manicotti.TermMetrics()
	m := manicotti.NewMenu(s)

	invoked := 0
	e := manicotti.NewEntry("ring the bell", 'r')
	e.OnSelect = func(*manicotti.Entry) bool {
		invoked++
		return true
	}
	m.Add(e)

	screen.PushKeys('r', 'r', manicotti.KeyEscape)
	_, err := m.Show(screen)
	assert.True(t, manicotti.IsCancelled(err))
	assert.Equal(t, 2, invoked, "handled actions keep the menu alive")
}
