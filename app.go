// ABOUTME: Application state tying the display loop, config, and window together.
// ABOUTME: Owns visibility, chime triggering, and graceful shutdown.

package main

import (
	"sync"
	"time"

	g "github.com/AllenDang/giu"
)

// clockApp holds the running state of the clock window.
type clockApp struct {
	wnd  *g.MasterWindow
	loop *DisplayLoop

	mu           sync.Mutex
	cfg          *Config
	visible      bool
	visibleDirty bool
	lastSeen     time.Time

	// Window moves must happen on the main thread and redraw wakeups touch
	// GUI state; these indirections let tests exercise the visibility logic
	// without a display.
	showWindow func()
	hideWindow func()
	wake       func()

	closeOnce sync.Once
}

func newClockApp(wnd *g.MasterWindow, loop *DisplayLoop, cfg *Config) *clockApp {
	return &clockApp{
		wnd:        wnd,
		loop:       loop,
		cfg:        cfg,
		visible:    true,
		showWindow: func() { restoreWindow(wnd) },
		hideWindow: func() { moveOffscreen(wnd) },
		wake:       g.Update,
	}
}

// frame renders one GUI frame. Runs on the main thread each time giu redraws.
func (a *clockApp) frame() {
	// Apply pending show/hide on the main thread
	a.syncVisibility()

	now := a.loop.Now()
	a.observe(now)
	clockFrame(FormatTime(now))
}

// observe tracks the last rendered instant and fires the chime when an hour
// boundary passed since the previous frame.
func (a *clockApp) observe(now time.Time) {
	a.mu.Lock()
	prev := a.lastSeen
	a.lastSeen = now
	chime := a.cfg.Chime
	a.mu.Unlock()

	if chime && crossedHour(prev, now) {
		go playChime()
	}
}

// applyConfig swaps in a freshly loaded config, adjusting the refresh rate
// of the running loop. Safe to call from the watcher goroutine.
func (a *clockApp) applyConfig(cfg *Config) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	a.loop.SetInterval(cfg.RefreshInterval())
	a.wake()
}

// toggleVisible flips the desired visibility and wakes the GUI loop,
// returning the new state. The window itself moves in the next frame;
// GLFW window operations may not run on the tray goroutine.
func (a *clockApp) toggleVisible() bool {
	a.mu.Lock()
	a.visible = !a.visible
	a.visibleDirty = true
	visible := a.visible
	a.mu.Unlock()

	a.wake()

	return visible
}

// syncVisibility applies a pending show/hide request. Main thread only.
func (a *clockApp) syncVisibility() {
	a.mu.Lock()
	dirty := a.visibleDirty
	visible := a.visible
	a.visibleDirty = false
	a.mu.Unlock()

	if !dirty {
		return
	}
	if visible {
		a.showWindow()
	} else {
		a.hideWindow()
	}
}

// shutdown stops the refresh loop and asks the window to close. Idempotent;
// called from the close callback, the signal handler, and the tray.
func (a *clockApp) shutdown() {
	a.closeOnce.Do(func() {
		a.loop.Stop()
		a.wnd.SetShouldClose(true)
	})
}
