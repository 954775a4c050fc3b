package ink

import (
	"image/color"
	"strconv"
	"strings"
)

// RGBA represents a color with float64 components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates a fully opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex parses a hex color string like "#1d1d1d" or "1d1d1d".
// Invalid input yields opaque black.
func Hex(hex string) RGBA {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB(0, 0, 0)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB(0, 0, 0)
	}
	return RGB(
		float64(v>>16&0xff)/255,
		float64(v>>8&0xff)/255,
		float64(v&0xff)/255,
	)
}

// Color converts to the standard library color type.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ColorStyle names a stroke color from the canvas palette.
type ColorStyle string

// Palette color names.
const (
	ColorBlack  ColorStyle = "black"
	ColorWhite  ColorStyle = "white"
	ColorGray   ColorStyle = "gray"
	ColorBlue   ColorStyle = "blue"
	ColorGreen  ColorStyle = "green"
	ColorRed    ColorStyle = "red"
	ColorOrange ColorStyle = "orange"
	ColorViolet ColorStyle = "violet"
)

// lightPalette and darkPalette map color styles to paint colors per
// canvas theme. Black and white swap in dark mode so default strokes
// stay visible.
var (
	lightPalette = map[ColorStyle]RGBA{
		ColorBlack:  Hex("#1d1d1d"),
		ColorWhite:  Hex("#fefefe"),
		ColorGray:   Hex("#787878"),
		ColorBlue:   Hex("#1c7ed6"),
		ColorGreen:  Hex("#36b24d"),
		ColorRed:    Hex("#ff2133"),
		ColorOrange: Hex("#ff9433"),
		ColorViolet: Hex("#7745f2"),
	}
	darkPalette = map[ColorStyle]RGBA{
		ColorBlack:  Hex("#e8e8e8"),
		ColorWhite:  Hex("#1d1d1d"),
		ColorGray:   Hex("#909090"),
		ColorBlue:   Hex("#4dadf7"),
		ColorGreen:  Hex("#51cf66"),
		ColorRed:    Hex("#ff6066"),
		ColorOrange: Hex("#ffa94d"),
		ColorViolet: Hex("#9775fa"),
	}
)

// PaintColor resolves a palette color for the given theme.
// Unknown styles resolve to the theme's black.
func PaintColor(style ColorStyle, darkMode bool) RGBA {
	palette := lightPalette
	if darkMode {
		palette = darkPalette
	}
	if c, ok := palette[style]; ok {
		return c
	}
	return palette[ColorBlack]
}
