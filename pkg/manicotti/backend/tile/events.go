package tile

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

var specialKeys = map[sdl.Keycode]manicotti.Key{
	sdl.K_UP:        manicotti.KeyUp,
	sdl.K_DOWN:      manicotti.KeyDown,
	sdl.K_LEFT:      manicotti.KeyLeft,
	sdl.K_RIGHT:     manicotti.KeyRight,
	sdl.K_PAGEUP:    manicotti.KeyPageUp,
	sdl.K_PAGEDOWN:  manicotti.KeyPageDown,
	sdl.K_HOME:      manicotti.KeyHome,
	sdl.K_END:       manicotti.KeyEnd,
	sdl.K_RETURN:    manicotti.KeyEnter,
	sdl.K_KP_ENTER:  manicotti.KeyEnter,
	sdl.K_ESCAPE:    manicotti.KeyEscape,
	sdl.K_BACKSPACE: manicotti.KeyBackspace,
}

func translateKey(sym sdl.Keycode, mod uint16) manicotti.Key {
	if key, ok := specialKeys[sym]; ok {
		return key
	}
	if sym >= 32 && sym < 127 {
		r := rune(sym)
		if mod&sdl.KMOD_SHIFT != 0 {
			r = shiftRune(r)
		}
		return manicotti.Key(r)
	}
	return manicotti.KeyNone
}

// shiftRune maps a US-layout keycode to its shifted rune.
func shiftRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	shifted := map[rune]rune{
		'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
		'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
		'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
		';': ':', '\'': '"', ',': '<', '.': '>', '/': '?',
		'`': '~',
	}
	if s, ok := shifted[r]; ok {
		return s
	}
	return r
}

// WaitEvent blocks up to timeout for the next SDL event and translates
// it. On timeout it consults the key-repeat tracker, so held navigation
// keys keep scrolling between real events.
func (w *Window) WaitEvent(timeout time.Duration) manicotti.Event {
	ev := sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	if ev == nil {
		if key := w.repeat.update(); key != manicotti.KeyNone {
			return manicotti.KeyEvent{Key: key}
		}
		return nil
	}

	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return manicotti.QuitEvent{}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			return manicotti.ResizeEvent{W: int(e.Data1), H: int(e.Data2)}
		}

	case *sdl.KeyboardEvent:
		key := translateKey(e.Keysym.Sym, e.Keysym.Mod)
		if key == manicotti.KeyNone {
			return nil
		}
		if e.Type == sdl.KEYDOWN {
			w.repeat.setHeld(key, true)
			return manicotti.KeyEvent{Key: key}
		}
		w.repeat.setHeld(key, false)
		return nil

	case *sdl.MouseMotionEvent:
		return manicotti.MouseEvent{Type: manicotti.MouseMove, X: int(e.X), Y: int(e.Y)}

	case *sdl.MouseButtonEvent:
		button := manicotti.MouseButtonNone
		switch e.Button {
		case sdl.BUTTON_LEFT:
			button = manicotti.MouseButtonLeft
		case sdl.BUTTON_RIGHT:
			button = manicotti.MouseButtonRight
		}
		typ := manicotti.MouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			typ = manicotti.MouseUp
		}
		return manicotti.MouseEvent{Type: typ, X: int(e.X), Y: int(e.Y), Button: button}
	}
	return nil
}
