package internal

import (
	"sync"

	"github.com/holoplot/go-evdev"
)

var (
	hangupMu  sync.Mutex
	hangupDev *evdev.InputDevice
	hangupWG  sync.WaitGroup
)

// WatchHangup opens an input device and watches it for a power/hangup
// key press, invoking onHangup once per press from a background
// goroutine. Menus treat the callback as an interrupt: the current
// event loop exits without completing any pending selection.
func WatchHangup(devicePath string, onHangup func()) {
	dev, err := evdev.Open(devicePath)
	if err != nil {
		GetInternalLogger().Error("failed to open hangup device",
			"path", devicePath, "error", err)
		return
	}

	hangupMu.Lock()
	if hangupDev != nil {
		hangupDev.Close()
	}
	hangupDev = dev
	hangupMu.Unlock()

	hangupWG.Add(1)
	go func() {
		defer hangupWG.Done()
		for {
			ev, err := dev.ReadOne()
			if err != nil {
				// device closed or unplugged
				return
			}
			if ev.Type == evdev.EV_KEY && ev.Code == evdev.KEY_POWER && ev.Value == 1 {
				GetInternalLogger().Info("hangup key seen", "path", devicePath)
				onHangup()
			}
		}
	}()
}

// StopHangupWatcher closes the watched device and waits for the watcher
// goroutine to exit.
func StopHangupWatcher() {
	hangupMu.Lock()
	dev := hangupDev
	hangupDev = nil
	hangupMu.Unlock()
	if dev != nil {
		dev.Close()
		hangupWG.Wait()
	}
}
