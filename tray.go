// ABOUTME: System tray icon for controlling the clock window.
// ABOUTME: Provides Show/Hide and Quit menu items.

package main

import (
	"log"

	"fyne.io/systray"
)

var trayEnd func()

// StartTray initializes the system tray for use with an external event loop.
// Call this before starting the main GUI loop (giu).
// Callbacks:
// - onToggle: called when the user clicks Show/Hide; returns the new visibility
// - onQuit: called when the user clicks Quit
func StartTray(onToggle func() bool, onQuit func()) {
	icon, err := trayIconPNG()
	if err != nil {
		// Tray is best-effort; the clock runs fine without it.
		log.Printf("tray icon generation failed: %v", err)
		return
	}

	var mToggle, mQuit *systray.MenuItem

	start, end := systray.RunWithExternalLoop(func() {
		// onReady - called after nativeStart()
		systray.SetIcon(icon)
		systray.SetTooltip("Ocean Clock")

		mToggle = systray.AddMenuItem("Hide Clock", "Show or hide the clock window")
		systray.AddSeparator()
		mQuit = systray.AddMenuItem("Quit", "Quit Ocean Clock")

		// Handle menu clicks in background
		go func() {
			for {
				select {
				case <-mToggle.ClickedCh:
					if onToggle == nil {
						continue
					}
					if onToggle() {
						mToggle.SetTitle("Hide Clock")
					} else {
						mToggle.SetTitle("Show Clock")
					}
				case <-mQuit.ClickedCh:
					if onQuit != nil {
						onQuit()
					}
					systray.Quit()
					return
				}
			}
		}()
	}, func() {
		// onExit
	})

	trayEnd = end
	start()
}

// StopTray cleans up the system tray.
func StopTray() {
	if trayEnd != nil {
		trayEnd()
	}
}
