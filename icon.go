// ABOUTME: Programmatic tray icon: a clock face drawn in the Ocean palette.
// ABOUTME: Renders large, scales down with CatmullRom, and encodes to PNG.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
)

const (
	iconRenderSize = 128
	iconTraySize   = 32
)

// trayIconPNG returns the tray icon as encoded PNG bytes. The icon is drawn
// at high resolution and downscaled so edges stay smooth at tray size.
func trayIconPNG() ([]byte, error) {
	face := drawClockFace(iconRenderSize)
	small := scaleIcon(face, iconTraySize, iconTraySize)

	var buf bytes.Buffer
	if err := png.Encode(&buf, small); err != nil {
		return nil, fmt.Errorf("PNG encode: %w", err)
	}
	return buf.Bytes(), nil
}

// drawClockFace renders a filled primary-color disc with white hands at the
// classic ten-past-ten position.
func drawClockFace(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	radius := center * 0.94

	fillCircle(img, center, center, radius, oceanTheme.Primary)
	fillCircle(img, center, center, radius*0.86, oceanTheme.Surface)

	// Hour hand toward 10, minute hand toward 2.
	hourAngle := handAngle(10, 0)
	minAngle := handAngle(2, 0)
	drawHand(img, center, center, radius*0.45, hourAngle, float64(size)/16, oceanTheme.Text)
	drawHand(img, center, center, radius*0.68, minAngle, float64(size)/22, oceanTheme.Text)

	fillCircle(img, center, center, float64(size)/20, oceanTheme.Secondary)

	return img
}

// handAngle converts a clock position to radians, 12 o'clock pointing up.
func handAngle(hour, min int) float64 {
	turns := (float64(hour) + float64(min)/60) / 12
	return turns*2*math.Pi - math.Pi/2
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	x0 := int(cx - r - 1)
	x1 := int(cx + r + 1)
	y0 := int(cy - r - 1)
	y1 := int(cy + r + 1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// drawHand paints a thick radial line by stamping discs along the segment.
func drawHand(img *image.RGBA, cx, cy, length, angle, thickness float64, c color.RGBA) {
	steps := int(length)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := cx + math.Cos(angle)*length*t
		y := cy + math.Sin(angle)*length*t
		fillCircle(img, x, y, thickness/2, c)
	}
}

// scaleIcon resizes src to the given size using CatmullRom resampling.
func scaleIcon(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
