package colorful

import "math"

// HSLuv and HPLuv follow https://www.hsluv.org with saturation and lightness
// in [0..1] instead of [0..100]. Both work on LuvLCh relative to hsluvD65.

var hsluvM = [3][3]float64{
	{3.2409699419045214, -1.5373831775700935, -0.49861076029300328},
	{-0.96924363628087983, 1.8759675015077207, 0.041555057407175613},
	{0.055630079696993609, -0.20397695888897657, 1.0569715142428786},
}

const (
	hsluvKappa   = 903.2962962962963
	hsluvEpsilon = 0.0088564516790356308
)

// LuvLChToHSLuv converts LuvLCh coordinates to HSLuv.
func LuvLChToHSLuv(l, c, h float64) (float64, float64, float64) {
	c *= 100.0
	l *= 100.0

	var s float64
	if l > 99.9999999 || l < 0.00000001 {
		s = 0.0
	} else {
		s = c / maxChromaForLH(l, h) * 100.0
	}
	return h, clamp01(s / 100.0), clamp01(l / 100.0)
}

// HSLuvToLuvLCh converts HSLuv coordinates to LuvLCh.
func HSLuvToLuvLCh(h, s, l float64) (float64, float64, float64) {
	l *= 100.0
	s *= 100.0

	var c float64
	if l > 99.9999999 || l < 0.00000001 {
		c = 0.0
	} else {
		c = maxChromaForLH(l, h) / 100.0 * s
	}
	return clamp01(l / 100.0), c / 100.0, h
}

// LuvLChToHPLuv converts LuvLCh coordinates to HPLuv. The saturation is not
// clamped and exceeds 1 for colors outside the pastel range.
func LuvLChToHPLuv(l, c, h float64) (float64, float64, float64) {
	c *= 100.0
	l *= 100.0

	var s float64
	if l > 99.9999999 || l < 0.00000001 {
		s = 0.0
	} else {
		s = c / maxSafeChromaForL(l) * 100.0
	}
	return h, s / 100.0, l / 100.0
}

// HPLuvToLuvLCh converts HPLuv coordinates to LuvLCh.
func HPLuvToLuvLCh(h, s, l float64) (float64, float64, float64) {
	l *= 100.0
	s *= 100.0

	var c float64
	if l > 99.9999999 || l < 0.00000001 {
		c = 0.0
	} else {
		c = maxSafeChromaForL(l) / 100.0 * s
	}
	return l / 100.0, c / 100.0, h
}

// HSLuv returns the Hue [0..360), Saturation [0..1] and Luminance [0..1]
// of the color in HSLuv space.
func (c Color) HSLuv() (h, s, l float64) {
	// sRGB -> Linear RGB -> CIEXYZ -> CIELUV -> LuvLCh -> HSLuv
	return LuvLChToHSLuv(c.LuvLChWhiteRef(hsluvD65))
}

// HPLuv returns the Hue, Saturation and Luminance of the color in HPLuv
// space. HPLuv only covers pastel colors, so the saturation of a vivid
// color can be much larger than 1.
func (c Color) HPLuv() (h, s, l float64) {
	return LuvLChToHPLuv(c.LuvLChWhiteRef(hsluvD65))
}

// HSLuv creates a color from HSLuv coordinates. The result is clamped,
// so it is always a valid color.
func HSLuv(h, s, l float64) Color {
	// HSLuv -> LuvLCh -> CIELUV -> CIEXYZ -> Linear RGB -> sRGB
	L, C, H := HSLuvToLuvLCh(h, s, l)
	return LuvLChWhiteRef(L, C, H, hsluvD65).Clamped()
}

// HPLuv creates a color from HPLuv coordinates. The result is clamped,
// so it is always a valid color.
func HPLuv(h, s, l float64) Color {
	L, C, H := HPLuvToLuvLCh(h, s, l)
	return LuvLChWhiteRef(L, C, H, hsluvD65).Clamped()
}

// maxChromaForLH intersects the ray at hue h with the gamut boundary at
// lightness l (in [0..100]) and returns the closest hit.
func maxChromaForLH(l, h float64) float64 {
	hRad := h / 360.0 * math.Pi * 2.0
	minLength := math.MaxFloat64
	for _, line := range gamutBounds(l) {
		length := lengthOfRayUntilIntersect(hRad, line[0], line[1])
		if length > 0.0 && length < minLength {
			minLength = length
		}
	}
	return minLength
}

// maxSafeChromaForL returns the largest chroma at lightness l which is in
// gamut for every hue: the distance from the origin to the nearest bound.
func maxSafeChromaForL(l float64) float64 {
	minLength := math.MaxFloat64
	for _, line := range gamutBounds(l) {
		m1 := line[0]
		b1 := line[1]
		x := intersectLineLine(m1, b1, -1.0/m1, 0.0)
		dist := distanceFromPole(x, b1+x*m1)
		if dist < minLength {
			minLength = dist
		}
	}
	return minLength
}

// gamutBounds returns the six lines (slope, intercept) bounding the RGB
// gamut in the u,v plane at lightness l.
func gamutBounds(l float64) [6][2]float64 {
	var ret [6][2]float64

	sub2 := l / hsluvKappa
	if sub1 := math.Pow(l+16.0, 3.0) / 1560896.0; sub1 > hsluvEpsilon {
		sub2 = sub1
	}

	for i, m := range hsluvM {
		for k := 0; k < 2; k++ {
			top1 := (284517.0*m[0] - 94839.0*m[2]) * sub2
			top2 := (838422.0*m[2]+769860.0*m[1]+731718.0*m[0])*l*sub2 - 769860.0*float64(k)*l
			bottom := (632260.0*m[2]-126452.0*m[1])*sub2 + 126452.0*float64(k)
			ret[i*2+k][0] = top1 / bottom
			ret[i*2+k][1] = top2 / bottom
		}
	}
	return ret
}

func lengthOfRayUntilIntersect(theta, x, y float64) float64 {
	return y / (math.Sin(theta) - x*math.Cos(theta))
}

func intersectLineLine(x1, y1, x2, y2 float64) float64 {
	return (y1 - y2) / (x2 - x1)
}

func distanceFromPole(x, y float64) float64 {
	return math.Sqrt(sq(x) + sq(y))
}
