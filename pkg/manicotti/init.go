// Package manicotti provides an interactive, paginated menu widget for
// embedded and terminal UIs: entries with hotkeys and quantities, a
// multi-column layout engine with heading-aware rows, scrolling with
// page-overlap context, and single/multi-select semantics driven by a
// key-to-command pipeline.
//
// A Menu is built from Settings, filled with entries, and then blocks
// in Show against a rendering backend (see backend/tile and
// backend/term) until the user commits or cancels a selection.
package manicotti

import (
	"log/slog"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/internal"
)

// InitOptions configures package-level infrastructure.
type InitOptions struct {
	LogPath  string // full path for the log file, parent directories are created
	LogLevel string // debug, info, warn or error; empty means error
	Locale   string // BCP 47 tag for generated key-help text
	// HangupDevice is an input device path watched for a power/hangup
	// key; seeing one interrupts the returned session.
	HangupDevice string
}

// Init sets up logging and localization and returns the session menus
// should share. Must be called before any menu is shown.
func Init(o InitOptions) *Session {
	if o.LogPath != "" {
		internal.SetLogPath(o.LogPath)
	}
	if o.LogLevel != "" {
		internal.SetRawLogLevel(o.LogLevel)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	if o.Locale != "" {
		SetLocale(o.Locale)
	}

	sess := NewSession()
	if o.HangupDevice != "" {
		internal.WatchHangup(o.HangupDevice, sess.Interrupt)
	}
	return sess
}

// Close flushes and closes package infrastructure.
func Close() {
	internal.StopHangupWatcher()
	internal.CloseLogger()
}

// SetLogLevel adjusts the application log level at runtime.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// Logger returns the application logger hosts may write to.
func Logger() *slog.Logger {
	return internal.GetLogger()
}
