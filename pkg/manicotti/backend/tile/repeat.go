package tile

import (
	"time"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti"
)

// directionalRepeat tracks held navigation keys and times key repeat:
// the first repeat after a delay, subsequent ones at a faster interval.
type directionalRepeat struct {
	held           map[manicotti.Key]bool
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

func newDirectionalRepeat() directionalRepeat {
	return directionalRepeat{
		held:           make(map[manicotti.Key]bool),
		repeatDelay:    300 * time.Millisecond,
		repeatInterval: 50 * time.Millisecond,
		lastRepeatTime: time.Now(),
	}
}

func isDirectional(key manicotti.Key) bool {
	switch key {
	case manicotti.KeyUp, manicotti.KeyDown, manicotti.KeyLeft, manicotti.KeyRight,
		manicotti.KeyPageUp, manicotti.KeyPageDown:
		return true
	}
	return false
}

// setHeld updates the held state; returns whether the key repeats.
func (d *directionalRepeat) setHeld(key manicotti.Key, held bool) bool {
	if !isDirectional(key) {
		return false
	}
	if held {
		d.held[key] = true
	} else {
		delete(d.held, key)
		d.hasRepeated = false
	}
	return true
}

func (d *directionalRepeat) heldKey() manicotti.Key {
	// priority matches the constant order: vertical before horizontal
	for _, k := range []manicotti.Key{
		manicotti.KeyUp, manicotti.KeyDown, manicotti.KeyLeft, manicotti.KeyRight,
		manicotti.KeyPageUp, manicotti.KeyPageDown,
	} {
		if d.held[k] {
			return k
		}
	}
	return manicotti.KeyNone
}

// update returns the key that should repeat this frame, or KeyNone.
func (d *directionalRepeat) update() manicotti.Key {
	key := d.heldKey()
	if key == manicotti.KeyNone {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return manicotti.KeyNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}
	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return key
	}
	return manicotti.KeyNone
}
