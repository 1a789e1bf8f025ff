package inspect

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixbuf-mcp/internal/pixbuf"
)

// ErrNoColor is returned for buffers whose channel count has no colour
// interpretation.
var ErrNoColor = errors.New("inspect: buffer has no colour interpretation")

// RGBColor is an RGB colour with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSLColor is a colour in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult holds one colour in several notations.
type ColorResult struct {
	Hex string   `json:"hex"`
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`
}

// SampleColor returns the colour of pixel (x, y).
//
// Parameters:
//   - b: A 1-channel (grey) or 3-or-more-channel buffer. Channels past the
//     third are ignored.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns an error if (x, y) lies outside b or b has no colour
// interpretation.
func SampleColor(b *pixbuf.Byte, x, y int) (*ColorResult, error) {
	if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside %dx%d image", x, y, b.Width(), b.Height())
	}
	r, g, bl, err := rgbAt(b, x, y)
	if err != nil {
		return nil, err
	}
	return describe(r, g, bl), nil
}

func rgbAt(b *pixbuf.Byte, x, y int) (r, g, bl uint8, err error) {
	switch c := b.Channels(); {
	case c == 1:
		v := b.At(x, y, 0)
		return v, v, v, nil
	case c >= 3:
		return b.At(x, y, 0), b.At(x, y, 1), b.At(x, y, 2), nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %d channels", ErrNoColor, c)
	}
}

// describe converts 8-bit RGB to every notation in ColorResult.
func describe(r, g, b uint8) *ColorResult {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	return &ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: RGBColor{R: r, G: g, B: b},
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}
