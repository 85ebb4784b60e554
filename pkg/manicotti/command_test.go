package manicotti

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeymap(t *testing.T) {
	tests := []struct {
		key  Key
		want Command
	}{
		{KeyUp, CmdUp},
		{KeyDown, CmdDown},
		{KeyPageDown, CmdPageDown},
		{'>', CmdPageDown},
		{'<', CmdPageUp},
		{';', CmdPageDown},
		{KeyHome, CmdScrollToTop},
		{KeyEnd, CmdScrollToEnd},
		{'/', CmdSearch},
		{'!', CmdCycleMode},
		{'^', CmdCycleHeaders},
		{'?', CmdHelp},
		{KeyEscape, CmdExit},
		{'a', CmdNone},
		{KeyEnter, CmdNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultKeymap(KeymapContextMenu, tt.key), "key %v", tt.key)
	}
}

func TestDefaultKeymapIgnoresOtherContexts(t *testing.T) {
	assert.Equal(t, CmdNone, DefaultKeymap("prompt", KeyEscape))
}

func TestMinusReservedForMultiselect(t *testing.T) {
	multi, _ := newTestMenu(FlagMultiSelect, fruitEntries()...)
	assert.Equal(t, CmdNone, multi.getCommand('-'))

	special, _ := newTestMenu(FlagSingleSelect|FlagSpecialMinus, fruitEntries()...)
	assert.Equal(t, CmdNone, special.getCommand('-'))
}

func TestKeyClassification(t *testing.T) {
	assert.True(t, Key('0').IsDigit())
	assert.True(t, Key('9').IsDigit())
	assert.False(t, Key('a').IsDigit())
	assert.False(t, KeyUp.IsDigit())

	assert.True(t, Key('a').IsPrintable())
	assert.True(t, Key(' ').IsPrintable())
	assert.False(t, KeyEscape.IsPrintable())
	assert.False(t, KeyUp.IsPrintable())
}

func TestKeyName(t *testing.T) {
	assert.Equal(t, "Enter", KeyEnter.Name())
	assert.Equal(t, "PgDn", KeyPageDown.Name())
	assert.Equal(t, "a", Key('a').Name())
	assert.Equal(t, "key(-999)", Key(-999).Name())
}
