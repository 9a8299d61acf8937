// ABOUTME: Frame rendering for the clock window using imgui primitives.
// ABOUTME: Draws the surface card, time digits, accent underline, and caption.

package main

import (
	"github.com/AllenDang/cimgui-go/imgui"
	g "github.com/AllenDang/giu"
)

const (
	windowW = 360
	windowH = 220

	cardRounding  = 8
	shadowOffsetY = 6
	underlineH    = 4

	// Digit size heuristic bounds, in pixels.
	minDigitSize = 28
	maxDigitSize = 120

	// Size the default imgui font renders at scale 1.
	baseFontSize = 13
)

// renderClock draws one frame of the clock into the current single window.
// timeText is the already-formatted HH:MM:SS string.
func renderClock(timeText string) {
	avail := imgui.ContentRegionAvail()

	cardW := avail.X * 0.92
	cardH := avail.Y * 0.72
	cardX := (avail.X - cardW) / 2
	cardY := (avail.Y - cardH) / 2

	origin := imgui.CursorScreenPos()

	// Drop shadow behind the card.
	shadowMin := imgui.Vec2{X: origin.X + cardX, Y: origin.Y + cardY + shadowOffsetY}
	shadowMax := imgui.Vec2{X: shadowMin.X + cardW, Y: shadowMin.Y + cardH}
	drawList := imgui.WindowDrawList()
	drawList.AddRectFilledV(shadowMin, shadowMax,
		imgui.ColorConvertFloat4ToU32(vec4(oceanTheme.Shadow)), cardRounding, 0)

	imgui.SetCursorPos(imgui.Vec2{X: cardX, Y: cardY})

	imgui.PushStyleColorVec4(imgui.ColChildBg, vec4(oceanTheme.Surface))
	imgui.PushStyleVarFloat(imgui.StyleVarChildRounding, cardRounding)
	imgui.PushStyleVarFloat(imgui.StyleVarChildBorderSize, 0)

	if imgui.BeginChildStrV("clock_card", imgui.Vec2{X: cardW, Y: cardH},
		imgui.ChildFlagsNone, imgui.WindowFlagsNoScrollbar) {
		renderCardContent(timeText, cardW, cardH)
	}
	imgui.EndChild()

	imgui.PopStyleVar()   // ChildBorderSize
	imgui.PopStyleVar()   // ChildRounding
	imgui.PopStyleColor() // ChildBg
}

// renderCardContent lays out the digits, underline, and caption inside the card.
func renderCardContent(timeText string, cardW, cardH float32) {
	scale := digitScale(cardW, cardH)

	imgui.SetWindowFontScale(scale)
	timeSize := imgui.CalcTextSize(timeText)

	// Digits sit slightly above center; underline and caption go below,
	// mirroring the original card proportions.
	timeY := cardH*0.5 - timeSize.Y*0.75

	imgui.SetCursorPos(imgui.Vec2{X: (cardW - timeSize.X) / 2, Y: timeY})
	imgui.PushStyleColorVec4(imgui.ColText, vec4(oceanTheme.Text))
	imgui.Text(timeText)
	imgui.PopStyleColor()

	imgui.SetWindowFontScale(1)

	// Accent underline in the secondary color.
	underlineW := cardW * 0.64
	winPos := imgui.WindowPos()
	lineMin := imgui.Vec2{
		X: winPos.X + (cardW-underlineW)/2,
		Y: winPos.Y + timeY + timeSize.Y + 8,
	}
	lineMax := imgui.Vec2{X: lineMin.X + underlineW, Y: lineMin.Y + underlineH}
	drawList := imgui.WindowDrawList()
	drawList.AddRectFilledV(lineMin, lineMax,
		imgui.ColorConvertFloat4ToU32(vec4(oceanTheme.Secondary)), 2, 0)

	caption := "Ocean Professional"
	captionSize := imgui.CalcTextSize(caption)
	imgui.SetCursorPos(imgui.Vec2{
		X: (cardW - captionSize.X) / 2,
		Y: timeY + timeSize.Y + 8 + underlineH + 12,
	})
	imgui.PushStyleColorVec4(imgui.ColText, vec4(oceanTheme.Primary))
	imgui.Text(caption)
	imgui.PopStyleColor()
}

// digitScale sizes the digits from the smaller card dimension, clamped so
// tiny or huge windows stay readable.
func digitScale(w, h float32) float32 {
	min := w
	if h < min {
		min = h
	}

	size := min * 0.18
	if size < minDigitSize {
		size = minDigitSize
	}
	if size > maxDigitSize {
		size = maxDigitSize
	}

	return size / baseFontSize
}

// clockFrame builds the per-frame layout for the master window.
func clockFrame(timeText string) {
	imgui.PushStyleVarFloat(imgui.StyleVarWindowBorderSize, 0)
	g.PushColorWindowBg(oceanTheme.Background)

	g.SingleWindow().Layout(
		g.Custom(func() {
			renderClock(timeText)
		}),
	)

	g.PopStyleColor()
	imgui.PopStyleVar()
}
