package appicon

import (
	"image/color"
	"testing"
)

func TestRGBA8RoundTrip(t *testing.T) {
	tests := []color.NRGBA{
		{R: 33, G: 150, B: 243, A: 255},
		{R: 25, G: 118, B: 210, A: 255},
		{R: 255, G: 255, B: 255, A: 230},
		{R: 255, G: 255, B: 255, A: 180},
		{},
	}
	for _, want := range tests {
		got := RGBA8(want.R, want.G, want.B, want.A).NRGBA()
		if got != want {
			t.Errorf("RGBA8(%v).NRGBA() = %v", want, got)
		}
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 128})
	if got := c.NRGBA(); got != (color.NRGBA{R: 255, G: 0, B: 255, A: 128}) {
		t.Errorf("FromColor round trip = %v", got)
	}

	// Premultiplied input is converted back to straight alpha.
	c = FromColor(color.RGBA{R: 64, G: 0, B: 0, A: 128})
	if got := c.NRGBA(); got.R < 126 || got.R > 128 || got.A != 128 {
		t.Errorf("FromColor(premultiplied) = %v, want R≈127 A=128", got)
	}
}

func TestRGBAImplementsColor(t *testing.T) {
	var c color.Color = RGBA8(255, 0, 0, 255)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestColorClamping(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: 0.5, A: 1}.NRGBA()
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestLerp(t *testing.T) {
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}

func TestIsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent should be transparent")
	}
	if RGBA8(0, 0, 0, 1).IsTransparent() {
		t.Error("alpha 1/255 should not be transparent")
	}
}
