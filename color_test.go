package ink

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"with hash", "#ff0000", RGB(1, 0, 0)},
		{"without hash", "00ff00", RGB(0, 1, 0)},
		{"mixed", "#1d1d1d", RGB(29.0/255, 29.0/255, 29.0/255)},
		{"too short", "#fff", RGB(0, 0, 0)},
		{"garbage", "#zzzzzz", RGB(0, 0, 0)},
		{"empty", "", RGB(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAColor(t *testing.T) {
	got := RGB(1, 0.5, 0).Color()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %+v, want %+v", got, want)
	}

	// Out-of-range components clamp instead of wrapping.
	hot := RGBA{R: 2, G: -1, B: 0, A: 1}.Color()
	if hot != (color.NRGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("clamped Color() = %+v", hot)
	}
}

func TestPaintColor(t *testing.T) {
	if PaintColor(ColorRed, false) == PaintColor(ColorRed, true) {
		t.Error("red paints identically in both themes")
	}

	// Black and white swap roles in dark mode.
	if PaintColor(ColorBlack, true) != Hex("#e8e8e8") {
		t.Error("dark-mode black is not light")
	}
	if PaintColor(ColorWhite, true) != Hex("#1d1d1d") {
		t.Error("dark-mode white is not dark")
	}

	// Unknown styles fall back to the theme's black.
	if PaintColor("chartreuse", false) != PaintColor(ColorBlack, false) {
		t.Error("unknown style did not fall back to black")
	}
}
