package straddle

import (
	"image/color"
	"testing"
)

func TestColor_RoundTrip(t *testing.T) {
	// A spread of channel values covering the byte range and both edges.
	values := []uint8{0, 1, 0x7f, 0x80, 0xfe, 0xff}

	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				for _, a := range values {
					c := RGBA(r, g, b, a)
					if c.Red() != r || c.Green() != g || c.Blue() != b || c.Alpha() != a {
						t.Fatalf("RGBA(%d, %d, %d, %d) decoded to (%d, %d, %d, %d)",
							r, g, b, a, c.Red(), c.Green(), c.Blue(), c.Alpha())
					}
				}
			}
		}
	}
}

func TestColor_Packing(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	if uint32(c) != 0x01020304 {
		t.Errorf("RGBA(1, 2, 3, 4) = %#08x, want 0x01020304", uint32(c))
	}
	if got := c.Components(); got != [4]uint8{1, 2, 3, 4} {
		t.Errorf("Components() = %v, want [1 2 3 4]", got)
	}
}

func TestColor_ZeroValue(t *testing.T) {
	var c Color
	if got := c.Components(); got != [4]uint8{0, 0, 0, 0} {
		t.Errorf("zero Color components = %v, want [0 0 0 0]", got)
	}
}

func TestColor_NRGBA(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	want := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	if got := c.NRGBA(); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want Color
	}{
		{"NRGBA passthrough", color.NRGBA{R: 10, G: 20, B: 30, A: 40}, RGBA(10, 20, 30, 40)},
		{"opaque gray", color.Gray{Y: 128}, RGBA(128, 128, 128, 255)},
		{"transparent", color.NRGBA{}, RGBA(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestFromColor_RoundTrip(t *testing.T) {
	orig := RGBA(200, 100, 50, 255)
	if got := FromColor(orig.NRGBA()); got != orig {
		t.Errorf("FromColor(NRGBA()) = %v, want %v", got, orig)
	}
}
