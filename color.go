package ggtrack

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrInvalidColor is returned by ParseColor for strings that are neither a
// hex color nor a known color name.
var ErrInvalidColor = errors.New("ggtrack: invalid color")

// Color is an sRGB color with channels in [0, 255] and alpha in [0, 1].
//
// Channels are kept as float64 so that repeated mixing stays exact; they are
// rounded and clamped only when serialized.
type Color struct {
	R, G, B float64
	A       float64
}

// RGB creates an opaque color from 0-255 channel values.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewColor creates a color from an explicit channel array and alpha.
func NewColor(rgb [3]float64, alpha float64) Color {
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}
}

// namedColors covers the color keywords used by track preferences.
var namedColors = map[string]Color{
	"black":  RGB(0, 0, 0),
	"white":  RGB(255, 255, 255),
	"red":    RGB(255, 0, 0),
	"green":  RGB(0, 128, 0),
	"blue":   RGB(0, 0, 255),
	"yellow": RGB(255, 255, 0),
	"orange": RGB(255, 165, 0),
	"gray":   RGB(128, 128, 128),
	"grey":   RGB(128, 128, 128),
}

// ParseColor parses "rgb", "#rgb", "rrggbb" or "#rrggbb" (case-insensitive),
// or one of a small set of color names. The result is opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")

	var digits [3]string
	switch len(hex) {
	case 3:
		for i := range digits {
			digits[i] = strings.Repeat(hex[i:i+1], 2)
		}
	case 6:
		for i := range digits {
			digits[i] = hex[2*i : 2*i+2]
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var rgb [3]float64
	for i, d := range digits {
		v, err := strconv.ParseUint(d, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		rgb[i] = float64(v)
	}
	return NewColor(rgb, 1), nil
}

// MustColor is like ParseColor but panics on error.
// It is intended for color literals.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Mix blends c with other. A weight of 1 yields c, a weight of 0 yields other.
//
// The channel weight is corrected by the alpha difference of the two colors,
// so a semi-transparent color pulls the result less than an opaque one.
// Alpha itself is interpolated linearly with the uncorrected weight.
func (c Color) Mix(other Color, weight float64) Color {
	w := weight*2 - 1
	a := c.A - other.A

	var w1 float64
	if w*a == -1 {
		w1 = (w + 1) / 2
	} else {
		w1 = ((w+a)/(1+w*a) + 1) / 2
	}
	w2 := 1 - w1

	return Color{
		R: c.R*w1 + other.R*w2,
		G: c.G*w1 + other.G*w2,
		B: c.B*w1 + other.B*w2,
		A: c.A*weight + other.A*(1-weight),
	}
}

// CSS serializes c as "#rrggbb" when opaque, else as "rgba(r,g,b,a)".
func (c Color) CSS() string {
	r, g, b := channel(c.R), channel(c.G), channel(c.B)
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(c.A, 'f', -1, 64))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ARGB serializes c as "#aarrggbb".
func (c Color) ARGB() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", channel(c.A*255), channel(c.R), channel(c.G), channel(c.B))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.CSS()
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clampUnit(c.A)
	r = uint32(float64(channel(c.R)) / 255 * alpha * 0xffff)
	g = uint32(float64(channel(c.G)) / 255 * alpha * 0xffff)
	b = uint32(float64(channel(c.B)) / 255 * alpha * 0xffff)
	a = uint32(alpha * 0xffff)
	return r, g, b, a
}

// GG converts c to a gg color with unit channels.
func (c Color) GG() gg.RGBA {
	return gg.RGBA{
		R: float64(channel(c.R)) / 255,
		G: float64(channel(c.G)) / 255,
		B: float64(channel(c.B)) / 255,
		A: clampUnit(c.A),
	}
}

func (Color) isFillStyle() {}

// channel rounds and clamps a channel value to [0, 255].
func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampUnit restricts a value to [0, 1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)
