package manicotti

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollPosText(t *testing.T) {
	assert.Equal(t, "top", scrollPosText(0))
	assert.Equal(t, "top", scrollPosText(-3))
	assert.Equal(t, "bot", scrollPosText(100))
	assert.Equal(t, "bot", scrollPosText(140))
	assert.Equal(t, "42%", scrollPosText(42))
	assert.Equal(t, " 5%", scrollPosText(5))
}

func TestSearchPrompt(t *testing.T) {
	assert.Equal(t, "Select what? (regex)", searchPrompt())
}

func TestTrUnknownMessageFallsBack(t *testing.T) {
	assert.Equal(t, "no_such_message", tr("no_such_message", nil))
}

func TestSetLocaleUnknownTagKeepsEnglish(t *testing.T) {
	SetLocale("zz")
	defer SetLocale("en")
	assert.Equal(t, "Select what? (regex)", searchPrompt())
}

func TestGetKeyhelp(t *testing.T) {
	t.Run("unscrollable single select has none", func(t *testing.T) {
		m, _ := newTestMenu(FlagSingleSelect, fruitEntries()...)
		assert.Empty(t, m.getKeyhelp(false))
	})

	t.Run("scrollable gets paging help with position token", func(t *testing.T) {
		m, _ := newTestMenu(FlagSingleSelect|FlagArrowsSelect, numberedEntries(60)...)
		help := m.getKeyhelp(true)
		assert.Contains(t, help, "[Up|Down] select")
		assert.Contains(t, help, "page down")
		assert.Contains(t, help, "["+scrollPosToken+"]")
		assert.Contains(t, help, "[Esc] close")
	})

	t.Run("multiselect without selection offers cancel", func(t *testing.T) {
		m, _ := newTestMenu(FlagMultiSelect, fruitEntries()...)
		help := m.getKeyhelp(false)
		lines := strings.Split(help, "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[1], "Letters toggle")
		assert.Contains(t, lines[1], "cancel (0 chosen)")
	})

	t.Run("multiselect with selection offers accept", func(t *testing.T) {
		m, _ := newTestMenu(FlagMultiSelect, fruitEntries()...)
		m.ProcessKey('a')
		m.ProcessKey('p')
		assert.Contains(t, m.getKeyhelp(false), "accept (2 chosen)")
	})
}

func TestRenderSubstitutesScrollPosition(t *testing.T) {
	m, _ := newTestMenu(FlagSingleSelect, numberedEntries(60)...)
	m.keyhelpMore = true
	m.updateMore()
	m.ScrollToEnd()
	m.render()

	var found bool
	for _, run := range m.frame.Texts {
		if strings.Contains(run.Text, "[bot]") {
			found = true
		}
		assert.NotContains(t, run.Text, scrollPosToken)
	}
	assert.True(t, found, "scroll position rendered at the bottom of the list")
}
