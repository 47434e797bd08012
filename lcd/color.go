package lcd

import "image/color"

// Color is an 18-bit panel colour: three 6-bit channels, each 0..0x3F.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color, masking each channel to 6 bits.
func RGB(r, g, b uint8) Color { return Color{R: r & 0x3F, G: g & 0x3F, B: b & 0x3F} }

// FromRGB24 converts a 0xRRGGBB truecolor value by dropping the two low
// bits of each channel.
func FromRGB24(u uint32) Color {
	return Color{R: uint8(u>>16) >> 2, G: uint8(u>>8) >> 2, B: uint8(u) >> 2}
}

func FromRGBA(c color.RGBA) Color {
	return Color{R: c.R >> 2, G: c.G >> 2, B: c.B >> 2}
}

// RGBA implements color.Color. Channels are widened by bit replication so
// 0x3F maps to full intensity.
func (c Color) RGBA() (r, g, b, a uint32) {
	return widen(c.R), widen(c.G), widen(c.B), 0xFFFF
}

// RGB24 returns the widened 0xRRGGBB value.
func (c Color) RGB24() uint32 {
	return uint32(widen(c.R)>>8)<<16 | uint32(widen(c.G)>>8)<<8 | uint32(widen(c.B)>>8)
}

func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: uint8(widen(c.R) >> 8), G: uint8(widen(c.G) >> 8), B: uint8(widen(c.B) >> 8), A: 0xFF}
}

func widen(v uint8) uint32 {
	v &= 0x3F
	x := uint32(v<<2 | v>>4)
	return x<<8 | x
}

// Model converts any colour to the panel's 6-6-6 space.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if lc, ok := c.(Color); ok {
		return lc
	}
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 10), G: uint8(g >> 10), B: uint8(b >> 10)}
})

var (
	Black   = Color{}
	White   = Color{0x3F, 0x3F, 0x3F}
	Red     = Color{0x3F, 0, 0}
	Green   = Color{0, 0x3F, 0}
	Blue    = Color{0, 0, 0x3F}
	Yellow  = Color{0x3F, 0x3F, 0}
	Magenta = Color{0x3F, 0, 0x3F}
	Cyan    = Color{0, 0x3F, 0x3F}

	DarkGrey   = Color{0x10, 0x10, 0x10}
	Grey       = Color{0x20, 0x20, 0x20}
	LightGrey  = Color{0x30, 0x30, 0x30}
	DarkRed    = Color{0x20, 0, 0}
	DarkGreen  = Color{0, 0x20, 0}
	DarkBlue   = Color{0, 0, 0x20}
	DarkYellow = Color{0x20, 0x20, 0}
	Purple     = Color{0x20, 0, 0x20}
	Teal       = Color{0, 0x20, 0x20}
	Brown      = Color{0x22, 0x11, 0x04}
	Pink       = Color{0x3F, 0x30, 0x32}
	Turquoise  = Color{0x10, 0x38, 0x34}
	Orange     = Color{0x3F, 0x29, 0}
	Gold       = Color{0x3F, 0x35, 0}
)

// Palette is the demo colour cycle.
var Palette = [...]Color{
	DarkGrey, Grey, LightGrey, White, Red, Green, Blue, Yellow, Magenta, Cyan,
	DarkRed, DarkGreen, DarkBlue, DarkYellow, Purple, Teal, Brown, Pink, Turquoise,
	Orange, Gold,
}
