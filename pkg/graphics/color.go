// Package graphics provides the primitive value types shared across the
// pix8 framework: integer points and rectangles in console pixel space,
// and RGB colors used by palettes and presentation backends.
package graphics

import "fmt"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A())
	r = uint32(c.R()) * 0x101 * a / 0xFF
	g = uint32(c.G()) * 0x101 * a / 0xFF
	b = uint32(c.B()) * 0x101 * a / 0xFF
	return r, g, b, a * 0x101
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// ParseColor parses "#RRGGBB" or "RRGGBB" into an opaque Color.
func ParseColor(s string) (Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("parse color %q: want 6 hex digits", s)
	}
	var v uint32
	for i := 0; i < 6; i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return 0, fmt.Errorf("parse color %q: bad hex digit %q", s, hex[i])
		}
		v = v<<4 | uint32(d)
	}
	return Color(0xFF000000 | v), nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
