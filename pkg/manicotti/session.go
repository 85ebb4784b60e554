package manicotti

import "go.uber.org/atomic"

// Session carries cross-menu state that the event loop and command
// handlers consult. It is passed explicitly instead of being read from
// globals so menus stay testable and re-entrant.
type Session struct {
	interrupted atomic.Bool

	// Replaying suppresses title and help updates while a recorded
	// command sequence is being replayed.
	Replaying bool
}

// NewSession creates a session with no interrupt pending.
func NewSession() *Session {
	return &Session{}
}

// Interrupt raises the interrupt flag. Safe to call from any goroutine
// (e.g. a hang-up watcher); the menu loop checks it between events and
// exits with ErrInterrupted.
func (s *Session) Interrupt() {
	s.interrupted.Store(true)
}

// Interrupted reports whether the interrupt flag is raised.
func (s *Session) Interrupted() bool {
	return s != nil && s.interrupted.Load()
}
