package colorful

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// DistanceRgb computes the distance between two colors in RGB space.
// This is not a good measure! Rather do it in Lab space.
func (c1 Color) DistanceRgb(c2 Color) float64 {
	return math.Sqrt(sq(c1.R-c2.R) + sq(c1.G-c2.G) + sq(c1.B-c2.B))
}

// DistanceLinearRgb computes the distance between two colors in linear RGB
// space. This is not useful for measuring how humans perceive color, but
// might be useful for other things, like dithering.
func (c1 Color) DistanceLinearRgb(c2 Color) float64 {
	r1, g1, b1 := c1.LinearRgb()
	r2, g2, b2 := c2.LinearRgb()
	return math.Sqrt(sq(r1-r2) + sq(g1-g2) + sq(b1-b2))
}

// DistanceRiemersma is the weighted RGB metric from
// https://www.compuphase.com/cmetric.htm. It needs no conversion and comes
// close to CIELUV in practice.
func (c1 Color) DistanceRiemersma(c2 Color) float64 {
	rAvg := (c1.R + c2.R) / 2.0
	dR := c1.R - c2.R
	dG := c1.G - c2.G
	dB := c1.B - c2.B

	return math.Sqrt(((2 + rAvg) * dR * dR) + (4 * dG * dG) + (2+(1-rAvg))*dB*dB)
}

// DistanceLab is a good measure of visual similarity between two colors!
// A result of 0 would mean identical colors, while a result of 1 or higher
// means the colors differ a lot.
func (c1 Color) DistanceLab(c2 Color) float64 {
	l1, a1, b1 := c1.Lab()
	l2, a2, b2 := c2.Lab()
	return math.Sqrt(sq(l1-l2) + sq(a1-a2) + sq(b1-b2))
}

// DistanceCIE76 is the same as DistanceLab.
func (c1 Color) DistanceCIE76(c2 Color) float64 {
	return c1.DistanceLab(c2)
}

// DistanceLuv is the Euclidean distance in L*u*v* space.
func (c1 Color) DistanceLuv(c2 Color) float64 {
	l1, u1, v1 := c1.Luv()
	l2, u2, v2 := c2.Luv()
	return math.Sqrt(sq(l1-l2) + sq(u1-u2) + sq(v1-v2))
}

// DistanceHPLuv is the Euclidean distance in HPLuv space, with the hue
// divided by 100 so that all three components have similar ranges.
func (c1 Color) DistanceHPLuv(c2 Color) float64 {
	h1, s1, l1 := c1.HPLuv()
	h2, s2, l2 := c2.HPLuv()
	return math.Sqrt(sq((h1-h2)/100.0) + sq(s1-s2) + sq(l1-l2))
}

// The published CIE94 and CIEDE2000 constants assume L, a and b 100 times
// larger than ours, so the inputs are scaled up and the result scaled down.
func (c1 Color) lab100() (l, a, b float64) {
	l, a, b = c1.Lab()
	return l * 100.0, a * 100.0, b * 100.0
}

func (c1 Color) chromathLab() chromath.Lab {
	l, a, b := c1.lab100()
	return chromath.Lab{l, a, b}
}

// DistanceCIE94 uses the CIE94 formula with the graphic arts weights
// (kL = kC = kH = 1, K1 = 0.045, K2 = 0.015). c1 is the reference color, so
// the distance is not symmetric. deltae.KLCH94Textiles holds the textile
// profile.
func (c1 Color) DistanceCIE94(cr Color) float64 {
	return deltae.CIE94(c1.chromathLab(), cr.chromathLab(), &deltae.KLCH94GraphicArts) * 0.01
}

// DistanceCIEDE2000 uses the Delta E 2000 formula with kL = kC = kH = 1.
func (c1 Color) DistanceCIEDE2000(cr Color) float64 {
	return c1.DistanceCIEDE2000klch(cr, 1.0, 1.0, 1.0)
}

// DistanceCIEDE2000klch uses the Delta E 2000 formula with custom values
// for the weighting factors kL, kC, and kH. Unlike deltae.CIE2000, the hue
// mean wraps by 180 degrees in the direction that keeps it in [0, 360).
func (c1 Color) DistanceCIEDE2000klch(cr Color, kl, kc, kh float64) float64 {
	l1, a1, b1 := c1.lab100()
	l2, a2, b2 := cr.lab100()

	cab1 := math.Sqrt(sq(a1) + sq(b1))
	cab2 := math.Sqrt(sq(a2) + sq(b2))
	cabmean := (cab1 + cab2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(cabmean, 7)/(math.Pow(cabmean, 7)+math.Pow(25, 7))))
	ap1 := (1 + g) * a1
	ap2 := (1 + g) * a2
	cp1 := math.Sqrt(sq(ap1) + sq(b1))
	cp2 := math.Sqrt(sq(ap2) + sq(b2))

	hp1 := ciede2000Hue(ap1, b1)
	hp2 := ciede2000Hue(ap2, b2)

	deltaLp := l2 - l1
	deltaCp := cp2 - cp1
	dhp := 0.0
	cpProduct := cp1 * cp2
	if cpProduct != 0 {
		dhp = hp2 - hp1
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	deltaHp := 2 * math.Sqrt(cpProduct) * math.Sin(dhp/2*math.Pi/180)

	lpmean := (l1 + l2) / 2
	cpmean := (cp1 + cp2) / 2
	hpmean := hp1 + hp2
	if cpProduct != 0 {
		hpmean /= 2
		if math.Abs(hp1-hp2) > 180 {
			if hp1+hp2 < 360 {
				hpmean += 180
			} else {
				hpmean -= 180
			}
		}
	}

	t := 1 - 0.17*math.Cos((hpmean-30)*math.Pi/180) + 0.24*math.Cos(2*hpmean*math.Pi/180) + 0.32*math.Cos((3*hpmean+6)*math.Pi/180) - 0.2*math.Cos((4*hpmean-63)*math.Pi/180)
	deltaTheta := 30 * math.Exp(-sq((hpmean-275)/25))
	rc := 2 * math.Sqrt(math.Pow(cpmean, 7)/(math.Pow(cpmean, 7)+math.Pow(25, 7)))
	sl := 1 + (0.015*sq(lpmean-50))/math.Sqrt(20+sq(lpmean-50))
	sc := 1 + 0.045*cpmean
	sh := 1 + 0.015*cpmean*t
	rt := -math.Sin(2*deltaTheta*math.Pi/180) * rc

	return math.Sqrt(sq(deltaLp/(kl*sl))+sq(deltaCp/(kc*sc))+sq(deltaHp/(kh*sh))+rt*(deltaCp/(kc*sc))*(deltaHp/(kh*sh))) * 0.01
}

// ciede2000Hue is h' in degrees, 0 for the achromatic case.
func ciede2000Hue(ap, b float64) float64 {
	if b == 0 && ap == 0 {
		return 0
	}
	h := math.Atan2(b, ap)
	if h < 0 {
		h += math.Pi * 2
	}
	return h * 180 / math.Pi
}
