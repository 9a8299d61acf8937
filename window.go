// ABOUTME: Window placement and display environment probing.
// ABOUTME: Centers the clock on the primary display and detects headless hosts.

package main

import (
	"errors"
	"fmt"
	"image"

	g "github.com/AllenDang/giu"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kbinani/screenshot"
)

// ErrDisplayUnavailable reports that the host windowing environment could
// not be initialized. It is fatal; there are no retries.
var ErrDisplayUnavailable = errors.New("display environment unavailable")

// probeDisplay checks whether a window can be created on this host without
// actually opening one. Must run before the GUI loop starts.
func probeDisplay() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
	}
	glfw.Terminate()
	return nil
}

// centerOnPrimary positions the window in the middle of the primary display.
// Falls back to a fixed offset when display bounds cannot be read.
func centerOnPrimary(wnd *g.MasterWindow, width, height int) {
	bounds := primaryDisplayBounds()
	if bounds.Empty() {
		wnd.SetPos(120, 120)
		return
	}

	x := bounds.Min.X + (bounds.Dx()-width)/2
	y := bounds.Min.Y + (bounds.Dy()-height)/2
	wnd.SetPos(x, y)
}

// moveOffscreen hides the window by shrinking it and parking it outside the
// visible area. giu has no native hide, so this mirrors how the window is
// dismissed without tearing down the GL context.
func moveOffscreen(wnd *g.MasterWindow) {
	wnd.SetSize(1, 1)
	wnd.SetPos(-100, -100)
}

// restoreWindow undoes moveOffscreen.
func restoreWindow(wnd *g.MasterWindow) {
	wnd.SetSize(windowW, windowH)
	centerOnPrimary(wnd, windowW, windowH)
}

func primaryDisplayBounds() image.Rectangle {
	if screenshot.NumActiveDisplays() < 1 {
		return image.Rectangle{}
	}
	return screenshot.GetDisplayBounds(0)
}
