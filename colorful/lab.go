package colorful

import "math"

// http://en.wikipedia.org/wiki/Lab_color_space#CIELAB-CIEXYZ_conversions
// L is in [0..1], a and b roughly in [-1..1]; the published formulas use a
// range 100 times larger.

func labF(t float64) float64 {
	if t > 6.0/29.0*6.0/29.0*6.0/29.0 {
		return math.Cbrt(t)
	}
	return t/3.0*29.0/6.0*29.0/6.0 + 4.0/29.0
}

func labFinv(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return 3.0 * 6.0 / 29.0 * 6.0 / 29.0 * (t - 4.0/29.0)
}

// XyzToLab converts XYZ to L*a*b* relative to D65.
func XyzToLab(x, y, z float64) (l, a, b float64) {
	return XyzToLabWhiteRef(x, y, z, D65)
}

// XyzToLabWhiteRef converts XYZ to L*a*b* relative to wref.
func XyzToLabWhiteRef(x, y, z float64, wref WhiteReference) (l, a, b float64) {
	fy := labF(y / wref.Y)
	l = 1.16*fy - 0.16
	a = 5.0 * (labF(x/wref.X) - fy)
	b = 2.0 * (fy - labF(z/wref.Z))
	return
}

// LabToXyz converts L*a*b* relative to D65 to XYZ.
func LabToXyz(l, a, b float64) (x, y, z float64) {
	return LabToXyzWhiteRef(l, a, b, D65)
}

// LabToXyzWhiteRef converts L*a*b* relative to wref to XYZ.
func LabToXyzWhiteRef(l, a, b float64, wref WhiteReference) (x, y, z float64) {
	l2 := (l + 0.16) / 1.16
	x = wref.X * labFinv(l2+a/5.0)
	y = wref.Y * labFinv(l2)
	z = wref.Z * labFinv(l2-b/2.0)
	return
}

// Lab converts the color to CIE L*a*b* space using D65 as reference white.
func (c Color) Lab() (l, a, b float64) {
	return XyzToLab(c.Xyz())
}

// LabWhiteRef converts the color to CIE L*a*b* space, taking into account
// a given reference white (i.e. the monitor's white).
func (c Color) LabWhiteRef(wref WhiteReference) (l, a, b float64) {
	x, y, z := c.Xyz()
	return XyzToLabWhiteRef(x, y, z, wref)
}

// Lab creates a color from CIE L*a*b* coordinates relative to D65.
// Many combinations of l, a and b fall outside the RGB gamut; check IsValid.
func Lab(l, a, b float64) Color {
	return Xyz(LabToXyz(l, a, b))
}

// LabWhiteRef creates a color from CIE L*a*b* coordinates relative to wref.
func LabWhiteRef(l, a, b float64, wref WhiteReference) Color {
	return Xyz(LabToXyzWhiteRef(l, a, b, wref))
}

// HCL is L*a*b* in cylindrical coordinates, a "correct HSV".
// H is in [0..360), C and L in [0..1] although C can overshoot 1.0.

// neutralChroma bounds the chroma of sRGB grays, which sit slightly off the
// neutral axis because D65 is rounded.
const neutralChroma = 3e-4

// polarHue returns the angle of (x, y) in degrees, or 0 for neutral colors
// where atan2 would only return noise.
func polarHue(x, y float64) float64 {
	if math.Sqrt(sq(x)+sq(y)) < neutralChroma {
		return 0.0
	}
	return normalizeHue(57.29577951308232087721 * math.Atan2(y, x))
}

// LabToHcl converts L*a*b* to HCL.
func LabToHcl(L, a, b float64) (h, c, l float64) {
	h = polarHue(a, b)
	c = math.Sqrt(sq(a) + sq(b))
	l = L
	return
}

// HclToLab converts HCL back to L*a*b*.
func HclToLab(h, c, l float64) (L, a, b float64) {
	H := 0.01745329251994329576 * h
	a = c * math.Cos(H)
	b = c * math.Sin(H)
	L = l
	return
}

// Hcl converts the color to HCL space using D65 as reference white.
func (c Color) Hcl() (h, cc, l float64) {
	return c.HclWhiteRef(D65)
}

// HclWhiteRef converts the color to HCL space relative to wref.
func (c Color) HclWhiteRef(wref WhiteReference) (h, cc, l float64) {
	return LabToHcl(c.LabWhiteRef(wref))
}

// Hcl creates a color from HCL coordinates relative to D65.
// Many combinations fall outside the RGB gamut; check IsValid.
func Hcl(h, c, l float64) Color {
	return HclWhiteRef(h, c, l, D65)
}

// HclWhiteRef creates a color from HCL coordinates relative to wref.
func HclWhiteRef(h, c, l float64, wref WhiteReference) Color {
	L, a, b := HclToLab(h, c, l)
	return LabWhiteRef(L, a, b, wref)
}
