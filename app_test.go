// ABOUTME: Tests for application visibility state and config application.
// ABOUTME: Covers deferring window moves to the frame callback.

package main

import (
	"testing"
	"time"
)

// testApp builds a clockApp with the GUI touchpoints stubbed out.
func testApp(t *testing.T) (*clockApp, *int, *int) {
	t.Helper()

	shows, hides := 0, 0
	app := newClockApp(nil, NewDisplayLoop(systemClock{}, time.Second, func() {}), DefaultConfig())
	app.showWindow = func() { shows++ }
	app.hideWindow = func() { hides++ }
	app.wake = func() {}

	return app, &shows, &hides
}

func TestToggleVisibleDoesNotMoveWindow(t *testing.T) {
	app, shows, hides := testApp(t)

	// The toggle runs on the tray goroutine; the window must not move until
	// the next frame picks the change up on the main thread.
	if visible := app.toggleVisible(); visible {
		t.Error("first toggle should report hidden")
	}
	if *shows != 0 || *hides != 0 {
		t.Errorf("window moved during toggle: shows=%d hides=%d", *shows, *hides)
	}
}

func TestSyncVisibilityAppliesPendingToggle(t *testing.T) {
	app, shows, hides := testApp(t)

	app.toggleVisible() // visible -> hidden
	app.syncVisibility()

	if *hides != 1 || *shows != 0 {
		t.Errorf("expected one hide, got shows=%d hides=%d", *shows, *hides)
	}

	app.toggleVisible() // hidden -> visible
	app.syncVisibility()

	if *shows != 1 || *hides != 1 {
		t.Errorf("expected one show after second toggle, got shows=%d hides=%d", *shows, *hides)
	}
}

func TestSyncVisibilityIdleDoesNothing(t *testing.T) {
	app, shows, hides := testApp(t)

	app.syncVisibility()
	app.syncVisibility()

	if *shows != 0 || *hides != 0 {
		t.Errorf("sync without a pending toggle moved the window: shows=%d hides=%d", *shows, *hides)
	}
}

func TestSyncVisibilityCoalescesToggles(t *testing.T) {
	app, shows, hides := testApp(t)

	// Two rapid toggles cancel out; the frame applies only the final state.
	app.toggleVisible()
	app.toggleVisible()
	app.syncVisibility()

	if *shows != 1 || *hides != 0 {
		t.Errorf("expected a single show for the net-visible state, got shows=%d hides=%d", *shows, *hides)
	}

	// Nothing left pending afterwards.
	app.syncVisibility()
	if *shows != 1 {
		t.Errorf("sync re-applied a consumed toggle: shows=%d", *shows)
	}
}

func TestApplyConfigUpdatesChime(t *testing.T) {
	app, _, _ := testApp(t)

	app.applyConfig(&Config{Chime: true, RefreshMs: 500})

	app.mu.Lock()
	chime := app.cfg.Chime
	app.mu.Unlock()

	if !chime {
		t.Error("applyConfig did not swap in the new config")
	}
}
