package colorful

import "math"

// http://en.wikipedia.org/wiki/CIELUV#XYZ_.E2.86.92_CIELUV_and_CIELUV_.E2.86.92_XYZ_conversions
// L* is in [0..1] and both u* and v* are in about [-1..1].

// xyzToUv computes the u', v' chromaticity; black maps to (0, 0).
func xyzToUv(x, y, z float64) (u, v float64) {
	denom := x + 15.0*y + 3.0*z
	if denom == 0.0 {
		return 0.0, 0.0
	}
	u = 4.0 * x / denom
	v = 9.0 * y / denom
	return
}

// XyzToLuv converts XYZ to L*u*v* relative to D65.
func XyzToLuv(x, y, z float64) (l, u, v float64) {
	return XyzToLuvWhiteRef(x, y, z, D65)
}

// XyzToLuvWhiteRef converts XYZ to L*u*v* relative to wref.
func XyzToLuvWhiteRef(x, y, z float64, wref WhiteReference) (l, u, v float64) {
	if y/wref.Y <= 6.0/29.0*6.0/29.0*6.0/29.0 {
		l = y / wref.Y * (29.0 / 3.0 * 29.0 / 3.0 * 29.0 / 3.0) / 100.0
	} else {
		l = 1.16*math.Cbrt(y/wref.Y) - 0.16
	}
	ubis, vbis := xyzToUv(x, y, z)
	un, vn := wref.uv()
	u = 13.0 * l * (ubis - un)
	v = 13.0 * l * (vbis - vn)
	return
}

// LuvToXyz converts L*u*v* relative to D65 to XYZ.
func LuvToXyz(l, u, v float64) (x, y, z float64) {
	return LuvToXyzWhiteRef(l, u, v, D65)
}

// LuvToXyzWhiteRef converts L*u*v* relative to wref to XYZ.
func LuvToXyzWhiteRef(l, u, v float64, wref WhiteReference) (x, y, z float64) {
	if l <= 0.08 {
		y = wref.Y * l * 100.0 * 3.0 / 29.0 * 3.0 / 29.0 * 3.0 / 29.0
	} else {
		y = wref.Y * cub((l+0.16)/1.16)
	}
	if l == 0.0 {
		return 0.0, 0.0, 0.0
	}

	un, vn := wref.uv()
	ubis := u/(13.0*l) + un
	vbis := v/(13.0*l) + vn
	x = y * 9.0 * ubis / (4.0 * vbis)
	z = y * (12.0 - 3.0*ubis - 20.0*vbis) / (4.0 * vbis)
	return
}

// Luv converts the color to CIE L*u*v* space using D65 as reference white.
func (c Color) Luv() (l, u, v float64) {
	return XyzToLuv(c.Xyz())
}

// LuvWhiteRef converts the color to CIE L*u*v* space relative to wref.
func (c Color) LuvWhiteRef(wref WhiteReference) (l, u, v float64) {
	x, y, z := c.Xyz()
	return XyzToLuvWhiteRef(x, y, z, wref)
}

// Luv creates a color from CIE L*u*v* coordinates relative to D65.
// Many combinations fall outside the RGB gamut; check IsValid.
func Luv(l, u, v float64) Color {
	return Xyz(LuvToXyz(l, u, v))
}

// LuvWhiteRef creates a color from CIE L*u*v* coordinates relative to wref.
func LuvWhiteRef(l, u, v float64, wref WhiteReference) Color {
	return Xyz(LuvToXyzWhiteRef(l, u, v, wref))
}

// LuvLCh is L*u*v* in cylindrical coordinates.

// LuvToLuvLCh converts L*u*v* to LuvLCh.
func LuvToLuvLCh(L, u, v float64) (l, c, h float64) {
	h = polarHue(u, v)
	l = L
	c = math.Sqrt(sq(u) + sq(v))
	return
}

// LuvLChToLuv converts LuvLCh back to L*u*v*.
func LuvLChToLuv(l, c, h float64) (L, u, v float64) {
	H := 0.01745329251994329576 * h
	u = c * math.Cos(H)
	v = c * math.Sin(H)
	L = l
	return
}

// LuvLCh converts the color to LuvLCh space using D65 as reference white.
// h is in [0..360), c and l in [0..1] although c can overshoot 1.0.
func (c Color) LuvLCh() (l, cc, h float64) {
	return c.LuvLChWhiteRef(D65)
}

// LuvLChWhiteRef converts the color to LuvLCh space relative to wref.
func (c Color) LuvLChWhiteRef(wref WhiteReference) (l, cc, h float64) {
	return LuvToLuvLCh(c.LuvWhiteRef(wref))
}

// LuvLCh creates a color from LuvLCh coordinates relative to D65.
func LuvLCh(l, c, h float64) Color {
	return LuvLChWhiteRef(l, c, h, D65)
}

// LuvLChWhiteRef creates a color from LuvLCh coordinates relative to wref.
func LuvLChWhiteRef(l, c, h float64, wref WhiteReference) Color {
	L, u, v := LuvLChToLuv(l, c, h)
	return LuvWhiteRef(L, u, v, wref)
}
