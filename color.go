package straddle

import "image/color"

// Color is a 32-bit RGBA color with 8 bits per channel, red in the most
// significant byte and alpha in the least significant. The zero value is
// fully transparent black.
type Color uint32

// RGBA creates a color from the given channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// Red returns the red component of the color.
func (c Color) Red() uint8 {
	return uint8(c >> 24)
}

// Green returns the green component of the color.
func (c Color) Green() uint8 {
	return uint8(c >> 16)
}

// Blue returns the blue component of the color.
func (c Color) Blue() uint8 {
	return uint8(c >> 8)
}

// Alpha returns the alpha component of the color.
func (c Color) Alpha() uint8 {
	return uint8(c)
}

// Components returns the channels as [red, green, blue, alpha].
func (c Color) Components() [4]uint8 {
	return [4]uint8{c.Red(), c.Green(), c.Blue(), c.Alpha()}
}

// NRGBA converts the color to the standard non-premultiplied form.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// FromColor converts a standard color.Color to a Color, quantizing each
// channel to 8 bits.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}
