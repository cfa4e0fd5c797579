// Package graphics provides the color primitives shared by the theme and
// view layers. Styles passed through the component pipeline stay opaque;
// only theme-derived defaults use these types directly.
package graphics

import "math"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// ColorWhite is opaque white, the default light surface color.
const ColorWhite = Color(0xFFFFFFFF)

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// WithAlpha returns a copy of the color with the given alpha (0-1). Values
// outside the range are clamped.
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return uint8(math.Round(a * 255))
}
