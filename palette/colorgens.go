package palette

import "github.com/mmuldo/chromatic/colorful"

// Single random colors.

// FastWarmColor returns a random dark, "warm" color from a restricted HSV space.
func (g *Generator) FastWarmColor() colorful.Color {
	return colorful.Hsv(g.between(0, 360), g.between(0.5, 0.8), g.between(0.3, 0.6))
}

// WarmColor returns a random dark, "warm" color from a restricted HCL space.
// It is slower than FastWarmColor, but the colors of many calls look
// equally warm.
func (g *Generator) WarmColor() colorful.Color {
	return g.hclColor(0.1, 0.4, 0.2, 0.5)
}

// FastHappyColor returns a random bright, "pimpy" color from a restricted HSV space.
func (g *Generator) FastHappyColor() colorful.Color {
	return colorful.Hsv(g.between(0, 360), g.between(0.7, 1.0), g.between(0.6, 0.9))
}

// HappyColor returns a random bright, "pimpy" color from a restricted HCL
// space. It is slower than FastHappyColor, but the colors of many calls
// look equally bright.
func (g *Generator) HappyColor() colorful.Color {
	return g.hclColor(0.5, 0.8, 0.5, 0.8)
}

// hclColor draws HCL colors until one lies inside the RGB gamut.
func (g *Generator) hclColor(cLo, cHi, lLo, lHi float64) colorful.Color {
	for {
		c := colorful.Hcl(g.between(0, 360), g.between(cLo, cHi), g.between(lLo, lHi))
		if c.IsValid() {
			return c
		}
	}
}

// FastWarmColor calls FastWarmColor on the default generator.
func FastWarmColor() colorful.Color { return defaultGenerator.FastWarmColor() }

// WarmColor calls WarmColor on the default generator.
func WarmColor() colorful.Color { return defaultGenerator.WarmColor() }

// FastHappyColor calls FastHappyColor on the default generator.
func FastHappyColor() colorful.Color { return defaultGenerator.FastHappyColor() }

// HappyColor calls HappyColor on the default generator.
func HappyColor() colorful.Color { return defaultGenerator.HappyColor() }
