package colorful

import "math"

// Every Blend function returns c1 for t == 0 and c2 for t == 1.

// hueEpsilon is the chroma below which a hue is considered meaningless.
const hueEpsilon = 0.00015

// interpAngle interpolates between two angles in degrees along the shorter
// arc. The step is wrapped into (-180, 180] and the result lies in [0, 360).
func interpAngle(a0, a1, t float64) float64 {
	delta := 180.0 - math.Mod(math.Mod(180.0-(a1-a0), 360.0)+360.0, 360.0)
	return normalizeHue(a0 + t*delta)
}

// alignHues copies the hue of the chromatic endpoint onto an achromatic one,
// so the blend doesn't sweep through unrelated hues on its way to gray.
func alignHues(h1, c1, h2, c2, eps float64) (float64, float64) {
	if c1 <= eps && c2 > eps {
		return h2, h2
	}
	if c2 <= eps && c1 > eps {
		return h1, h1
	}
	return h1, h2
}

// BlendRgb blends in sRGB. You don't really want to use this, do you?
// Go for BlendLab, BlendLuv or BlendHcl.
func (c1 Color) BlendRgb(c2 Color, t float64) Color {
	return Color{
		c1.R + t*(c2.R-c1.R),
		c1.G + t*(c2.G-c1.G),
		c1.B + t*(c2.B-c1.B),
	}
}

// BlendLinearRgb blends in linear RGB. Unlike BlendRgb, this does not get
// dark around the center.
func (c1 Color) BlendLinearRgb(c2 Color, t float64) Color {
	r1, g1, b1 := c1.LinearRgb()
	r2, g2, b2 := c2.LinearRgb()
	return LinearRgb(
		r1+t*(r2-r1),
		g1+t*(g2-g1),
		b1+t*(b2-b1),
	)
}

// BlendHsv blends in HSV.
func (c1 Color) BlendHsv(c2 Color, t float64) Color {
	h1, s1, v1 := c1.Hsv()
	h2, s2, v2 := c2.Hsv()

	// https://github.com/lucasb-eyer/go-colorful/pull/60
	h1, h2 = alignHues(h1, s1, h2, s2, 0)

	return Hsv(interpAngle(h1, h2, t), s1+t*(s2-s1), v1+t*(v2-v1))
}

// BlendLab blends in L*a*b*, which should result in a smoother blend.
func (c1 Color) BlendLab(c2 Color, t float64) Color {
	l1, a1, b1 := c1.Lab()
	l2, a2, b2 := c2.Lab()
	return Lab(l1+t*(l2-l1),
		a1+t*(a2-a1),
		b1+t*(b2-b1))
}

// BlendLuv blends in L*u*v*.
func (c1 Color) BlendLuv(c2 Color, t float64) Color {
	l1, u1, v1 := c1.Luv()
	l2, u2, v2 := c2.Luv()
	return Luv(l1+t*(l2-l1),
		u1+t*(u2-u1),
		v1+t*(v2-v1))
}

// BlendHcl blends in HCL. The result is clamped since intermediate HCL
// values often lie outside the RGB gamut.
func (col1 Color) BlendHcl(col2 Color, t float64) Color {
	h1, c1, l1 := col1.Hcl()
	h2, c2, l2 := col2.Hcl()

	h1, h2 = alignHues(h1, c1, h2, c2, hueEpsilon)

	return Hcl(interpAngle(h1, h2, t), c1+t*(c2-c1), l1+t*(l2-l1)).Clamped()
}

// BlendLuvLCh blends in the cylindrical form of CIELUV.
func (col1 Color) BlendLuvLCh(col2 Color, t float64) Color {
	l1, c1, h1 := col1.LuvLCh()
	l2, c2, h2 := col2.LuvLCh()

	h1, h2 = alignHues(h1, c1, h2, c2, hueEpsilon)

	return LuvLCh(l1+t*(l2-l1), c1+t*(c2-c1), interpAngle(h1, h2, t))
}
