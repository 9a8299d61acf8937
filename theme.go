// ABOUTME: Ocean Professional theme: the fixed color palette for the clock.
// ABOUTME: Converts hex colors to the RGBA and imgui forms the renderer needs.

package main

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Theme holds the Ocean Professional palette. The theme is fixed; there is
// no dark/light switching.
type Theme struct {
	Primary    color.RGBA // accents, caption text
	Secondary  color.RGBA // underline
	Background color.RGBA // window background
	Surface    color.RGBA // clock card
	Text       color.RGBA // time digits
	Shadow     color.RGBA // card drop shadow
}

var oceanTheme = Theme{
	Primary:    mustHexColor("#2563EB"),
	Secondary:  mustHexColor("#F59E0B"),
	Background: mustHexColor("#f9fafb"),
	Surface:    mustHexColor("#ffffff"),
	Text:       mustHexColor("#111827"),
	Shadow:     mustHexColor("#e5e7eb"),
}

// parseHexColor parses "#RRGGBB" into an opaque RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func mustHexColor(s string) color.RGBA {
	c, err := parseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// vec4 converts an RGBA color to the normalized form imgui styling expects.
func vec4(c color.RGBA) imgui.Vec4 {
	return imgui.Vec4{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
		W: float32(c.A) / 255,
	}
}
