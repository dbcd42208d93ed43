package colorful

// WhiteReference is the XYZ tristimulus of a reference illuminant.
type WhiteReference struct {
	X, Y, Z float64
}

var (
	// D65 is the default reference white.
	D65 = WhiteReference{0.95047, 1.00000, 1.08883}

	// D50 is the reference white used by printing and ICC workflows.
	D50 = WhiteReference{0.96422, 1.00000, 0.82521}
)

// hsluvD65 is the rounded D65 of the HSLuv reference implementation. The RGB
// results are the same, but the intermediate values match its test data.
var hsluvD65 = WhiteReference{0.95045592705167, 1.0, 1.089057750759878}

// uv returns the u', v' chromaticity of the white point.
func (w WhiteReference) uv() (u, v float64) {
	return xyzToUv(w.X, w.Y, w.Z)
}
