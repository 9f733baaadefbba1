package flyer

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the components as ints, the form the PDF backend expects.
func (c Color) RGB() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHexColor is like ParseHexColor but panics on malformed input. It is
// meant for palette constants.
func MustHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Font selects a PDF core font. Style is a combination of "B" and "I".
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Style is the complete paint state for one drawing call. Text is painted
// with Fill.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	Font        Font
}
