package colorful

import (
	"image/color"
	"math"
)

// Delta is the tolerance used by AlmostEqualRgb.
const Delta = 1.0 / 255.0

// Color is an sRGB color with channels in [0..1]. Values outside that range
// are allowed during computation but can't be displayed.
type Color struct {
	R, G, B float64
}

// RGBA implements the color.Color interface. Alpha is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	c = c.Clamped()
	r = uint32(c.R*65535.0 + 0.5)
	g = uint32(c.G*65535.0 + 0.5)
	b = uint32(c.B*65535.0 + 0.5)
	a = 0xFFFF
	return
}

// MakeColor constructs a Color from anything implementing color.Color. The
// second return value is false for fully transparent input, since the RGB
// values can't be recovered from a premultiplied zero alpha.
func MakeColor(col color.Color) (Color, bool) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		return Color{0, 0, 0}, false
	}

	// color.Color is alpha premultiplied.
	r *= 0xffff
	r /= a
	g *= 0xffff
	g /= a
	b *= 0xffff
	b /= a

	return Color{float64(r) / 65535.0, float64(g) / 65535.0, float64(b) / 65535.0}, true
}

// RGB255 returns the channels scaled to [0..255], rounding half up.
func (c Color) RGB255() (r, g, b uint8) {
	c = c.Clamped()
	r = uint8(c.R*255.0 + 0.5)
	g = uint8(c.G*255.0 + 0.5)
	b = uint8(c.B*255.0 + 0.5)
	return
}

// Values returns the raw channel values.
func (c Color) Values() (r, g, b float64) {
	return c.R, c.G, c.B
}

// IsValid checks whether the color exists in RGB space, i.e. all values are in [0..1].
func (c Color) IsValid() bool {
	return 0.0 <= c.R && c.R <= 1.0 &&
		0.0 <= c.G && c.G <= 1.0 &&
		0.0 <= c.B && c.B <= 1.0
}

// Clamped returns the color with every channel clamped to [0..1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// AlmostEqualRgb reports whether the summed channel difference is below 3*Delta.
func (c Color) AlmostEqualRgb(c2 Color) bool {
	return math.Abs(c.R-c2.R)+
		math.Abs(c.G-c2.G)+
		math.Abs(c.B-c2.B) < 3.0*Delta
}

// Less orders colors lexicographically by R, G, then B. This is not a
// perceptual order; use palette.Sort for that.
func (c Color) Less(c2 Color) bool {
	if c.R != c2.R {
		return c.R < c2.R
	}
	if c.G != c2.G {
		return c.G < c2.G
	}
	return c.B < c2.B
}

func sq(v float64) float64 {
	return v * v
}

func cub(v float64) float64 {
	return v * v * v
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(v, 1.0))
}

// normalizeHue maps any angle in degrees onto [0..360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	if h >= 360.0 {
		// -tiny + 360 rounds up to 360.
		h = 0
	}
	return h
}
