package core

import "fmt"

// Color is a cell color. The zero value is the terminal default; anything else
// carries a 24-bit RGB value tagged with rgbFlag so that black stays distinct
// from "default".
type Color uint32

const rgbFlag = 1 << 24

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

// Predefined colors for board elements.
var (
	ColorBackground = RGB(64, 64, 64)
	ColorEmpty      = RGB(0, 0, 0)
	ColorNumber     = RGB(249, 247, 234)
	ColorHurray     = RGB(255, 255, 0)
)

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(rgbFlag | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c&rgbFlag == 0
}

// RGB returns the color components. Default colors report black.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
