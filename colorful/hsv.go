package colorful

import "math"

// From http://en.wikipedia.org/wiki/HSL_and_HSV
// Hue is in [0..360), the other components in [0..1].

// Hsv returns the Hue [0..360), Saturation and Value [0..1] of the color.
func (c Color) Hsv() (h, s, v float64) {
	min := math.Min(math.Min(c.R, c.G), c.B)
	v = math.Max(math.Max(c.R, c.G), c.B)
	C := v - min

	s = 0.0
	if v != 0.0 {
		s = C / v
	}

	h = 0.0 // undefined for grays
	if min != v {
		if v == c.R {
			h = math.Mod((c.G-c.B)/C, 6.0)
		}
		if v == c.G {
			h = (c.B-c.R)/C + 2.0
		}
		if v == c.B {
			h = (c.R-c.G)/C + 4.0
		}
		h = normalizeHue(h * 60.0)
	}
	return
}

// Hsv creates a new Color given a Hue in [0..360), a Saturation and a Value in [0..1]
func Hsv(H, S, V float64) Color {
	Hp := normalizeHue(H) / 60.0
	C := V * S
	X := C * (1.0 - math.Abs(math.Mod(Hp, 2.0)-1.0))

	m := V - C
	r, g, b := 0.0, 0.0, 0.0

	switch {
	case 0.0 <= Hp && Hp < 1.0:
		r = C
		g = X
	case 1.0 <= Hp && Hp < 2.0:
		r = X
		g = C
	case 2.0 <= Hp && Hp < 3.0:
		g = C
		b = X
	case 3.0 <= Hp && Hp < 4.0:
		g = X
		b = C
	case 4.0 <= Hp && Hp < 5.0:
		r = X
		b = C
	case 5.0 <= Hp && Hp < 6.0:
		r = C
		b = X
	}

	return Color{m + r, m + g, m + b}
}

// Hsl returns the Hue [0..360), Saturation [0..1], and Luminance (lightness) [0..1] of the color.
func (c Color) Hsl() (h, s, l float64) {
	min := math.Min(math.Min(c.R, c.G), c.B)
	max := math.Max(math.Max(c.R, c.G), c.B)

	l = (max + min) / 2

	if min == max {
		return 0, 0, l
	}

	if l < 0.5 {
		s = (max - min) / (max + min)
	} else {
		s = (max - min) / (2.0 - max - min)
	}

	switch max {
	case c.R:
		h = (c.G - c.B) / (max - min)
	case c.G:
		h = 2.0 + (c.B-c.R)/(max-min)
	default:
		h = 4.0 + (c.R-c.G)/(max-min)
	}

	return normalizeHue(h * 60), s, l
}

// Hsl creates a new Color given a Hue in [0..360), a Saturation [0..1], and a Luminance (lightness) in [0..1]
func Hsl(h, s, l float64) Color {
	if s == 0 {
		return Color{l, l, l}
	}

	var t1 float64
	if l < 0.5 {
		t1 = l * (1.0 + s)
	} else {
		t1 = l + s - l*s
	}
	t2 := 2*l - t1

	h = normalizeHue(h) / 360
	return Color{
		hslChannel(t1, t2, h+1.0/3.0),
		hslChannel(t1, t2, h),
		hslChannel(t1, t2, h-1.0/3.0),
	}
}

func hslChannel(t1, t2, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case 6*t < 1:
		return t2 + (t1-t2)*6*t
	case 2*t < 1:
		return t1
	case 3*t < 2:
		return t2 + (t1-t2)*(2.0/3.0-t)*6
	default:
		return t2
	}
}
