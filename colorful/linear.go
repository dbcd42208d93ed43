package colorful

import "math"

// http://www.sjbrown.co.uk/2004/05/14/gamma-correct-rendering/
// http://www.brucelindbloom.com/Eqn_RGB_to_XYZ.html

// Linearize expands a single gamma-encoded sRGB channel.
func Linearize(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Delinearize gamma-encodes a single linear RGB channel.
func Delinearize(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// LinearizeFast approximates Linearize with a polynomial around 0.5.
// Only valid for v in [0..1].
func LinearizeFast(v float64) float64 {
	v1 := v - 0.5
	v2 := v1 * v1
	v3 := v2 * v1
	v4 := v2 * v2
	return -0.248750514614486 + 0.925583310193438*v + 1.16740237321695*v2 + 0.280457026598666*v3 - 0.0757991963780179*v4
}

// DelinearizeFast approximates Delinearize. The fractional power is much
// harder to fit, so the domain is split in three pieces. Only valid for v in [0..1].
func DelinearizeFast(v float64) float64 {
	var v1, v2, v3, v4, v5 float64
	switch {
	case v > 0.2:
		v1 = v - 0.6
		v2 = v1 * v1
		v3 = v2 * v1
		v4 = v2 * v2
		v5 = v3 * v2
		return 0.442430344268235 + 0.592178981271708*v - 0.287864782562636*v2 + 0.253214392068985*v3 - 0.272557158129811*v4 + 0.325554383321718*v5
	case v > 0.03:
		v1 = v - 0.115
		v2 = v1 * v1
		v3 = v2 * v1
		v4 = v2 * v2
		v5 = v3 * v2
		return 0.194915592891669 + 1.55227076330229*v - 3.93691860257828*v2 + 18.0679839248761*v3 - 101.468750302746*v4 + 632.341487393927*v5
	default:
		v1 = v - 0.015
		v2 = v1 * v1
		v3 = v2 * v1
		v4 = v2 * v2
		v5 = v3 * v2
		// The low end is highly nonlinear.
		return 0.0519565234928877 + 5.09316778537561*v - 99.0338180489702*v2 + 3484.52322764895*v3 - 150028.083412663*v4 + 7168008.42971613*v5
	}
}

// LinearRgb converts the color into the linear RGB space.
func (c Color) LinearRgb() (r, g, b float64) {
	r = Linearize(c.R)
	g = Linearize(c.G)
	b = Linearize(c.B)
	return
}

// FastLinearRgb is a cheaper drop-in for LinearRgb, off by at most 6/255 in
// total. It is only meaningful for valid colors.
func (c Color) FastLinearRgb() (r, g, b float64) {
	r = LinearizeFast(c.R)
	g = LinearizeFast(c.G)
	b = LinearizeFast(c.B)
	return
}

// LinearRgb creates an sRGB color out of the given linear RGB color.
func LinearRgb(r, g, b float64) Color {
	return Color{Delinearize(r), Delinearize(g), Delinearize(b)}
}

// FastLinearRgb is the cheaper counterpart of LinearRgb, valid for r, g, b in [0..1].
func FastLinearRgb(r, g, b float64) Color {
	return Color{DelinearizeFast(r), DelinearizeFast(g), DelinearizeFast(b)}
}

// XyzToLinearRgb converts from CIE XYZ-space to Linear RGB space.
func XyzToLinearRgb(x, y, z float64) (r, g, b float64) {
	r = 3.2409699419045214*x - 1.5373831775700935*y - 0.49861076029300328*z
	g = -0.96924363628087983*x + 1.8759675015077207*y + 0.041555057407175613*z
	b = 0.055630079696993609*x - 0.20397695888897657*y + 1.0569715142428786*z
	return
}

// LinearRgbToXyz converts from Linear RGB space to CIE XYZ-space.
func LinearRgbToXyz(r, g, b float64) (x, y, z float64) {
	x = 0.41239079926595948*r + 0.35758433938387796*g + 0.18048078840183429*b
	y = 0.21263900587151036*r + 0.71516867876775593*g + 0.072192315360733715*b
	z = 0.019330818715591851*r + 0.11919477979462599*g + 0.95053215224966058*b
	return
}

// Xyz converts the color to CIE XYZ.
func (c Color) Xyz() (x, y, z float64) {
	return LinearRgbToXyz(c.LinearRgb())
}

// Xyz creates a color from CIE XYZ coordinates.
func Xyz(x, y, z float64) Color {
	return LinearRgb(XyzToLinearRgb(x, y, z))
}

// http://www.brucelindbloom.com/Eqn_XYZ_to_xyY.html

// XyzToXyy converts XYZ to xyY using D65 for black.
func XyzToXyy(X, Y, Z float64) (x, y, Yout float64) {
	return XyzToXyyWhiteRef(X, Y, Z, D65)
}

// XyzToXyyWhiteRef converts XYZ to xyY. The reference white only supplies
// the chromaticity of black, as Bruce Lindbloom recommends.
func XyzToXyyWhiteRef(X, Y, Z float64, wref WhiteReference) (x, y, Yout float64) {
	Yout = Y
	N := X + Y + Z
	if math.Abs(N) < 1e-14 {
		sum := wref.X + wref.Y + wref.Z
		x = wref.X / sum
		y = wref.Y / sum
	} else {
		x = X / N
		y = Y / N
	}
	return
}

// XyyToXyz converts xyY back to XYZ.
func XyyToXyz(x, y, Y float64) (X, Yout, Z float64) {
	Yout = Y

	if -1e-14 < y && y < 1e-14 {
		X = 0.0
		Z = 0.0
	} else {
		X = Y / y * x
		Z = Y / y * (1.0 - x - y)
	}

	return
}

// Xyy converts the color to CIE xyY using D65 as reference white.
// x, y and Y are in [0..1]
func (c Color) Xyy() (x, y, Y float64) {
	return XyzToXyy(c.Xyz())
}

// XyyWhiteRef converts the color to CIE xyY with the given reference white.
func (c Color) XyyWhiteRef(wref WhiteReference) (x, y, Y float64) {
	X, Y2, Z := c.Xyz()
	return XyzToXyyWhiteRef(X, Y2, Z, wref)
}

// Xyy creates a color from CIE xyY coordinates.
func Xyy(x, y, Y float64) Color {
	return Xyz(XyyToXyz(x, y, Y))
}
