package manicotti

import "fmt"

// Key is an abstract input code. Printable keys carry their rune value;
// special keys use negative values so they can never collide with text
// input.
type Key int

const (
	KeyNone      Key = 0
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeyBackspace Key = 8
)

// Special (non-printable) keys.
const (
	KeyUp Key = -256 - iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	// KeyMouseClick is synthesized by a rendering backend when a
	// pointer click lands on an entry.
	KeyMouseClick
)

// IsDigit reports whether the key is an ASCII digit.
func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// IsPrintable reports whether the key carries a printable rune.
func (k Key) IsPrintable() bool {
	return k >= 32 && k != 127
}

// Name returns a short human-readable name for the key, used when
// building hotkey prefaces and help text.
func (k Key) Name() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Command is an abstract menu command produced by the key-to-command
// mapping. CmdNone means the key fell through to manual handling.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLineUp
	CmdLineDown
	CmdPageUp
	CmdPageDown
	CmdScrollToTop
	CmdScrollToEnd
	CmdSearch
	CmdCycleMode
	CmdCycleModeReverse
	CmdCycleHeaders
	CmdHelp
	CmdExit
)

// KeymapContextMenu is the default named input context menus look
// commands up under.
const KeymapContextMenu = "menu"

// Keymap resolves a key to a command within a named input context.
// Hosts may supply their own to rebind navigation.
type Keymap func(context string, key Key) Command

var defaultBindings = map[Key]Command{
	KeyUp:       CmdUp,
	KeyDown:     CmdDown,
	KeyLeft:     CmdPageUp,
	KeyRight:    CmdPageDown,
	KeyPageUp:   CmdPageUp,
	KeyPageDown: CmdPageDown,
	'<':         CmdPageUp,
	'>':         CmdPageDown,
	';':         CmdPageDown,
	KeyHome:     CmdScrollToTop,
	KeyEnd:      CmdScrollToEnd,
	'/':         CmdSearch,
	'!':         CmdCycleMode,
	'^':         CmdCycleHeaders,
	'?':         CmdHelp,
	KeyEscape:   CmdExit,
}

// DefaultKeymap is the built-in binding table.
func DefaultKeymap(context string, key Key) Command {
	if context != KeymapContextMenu {
		return CmdNone
	}
	if cmd, ok := defaultBindings[key]; ok {
		return cmd
	}
	return CmdNone
}
