package palette

import "github.com/mmuldo/chromatic/colorful"

func happyCheck(l, a, b float64) bool {
	_, c, _ := colorful.LabToHcl(l, a, b)
	return 0.3 <= c && 0.4 <= l && l <= 0.8
}

func warmCheck(l, a, b float64) bool {
	_, c, _ := colorful.LabToHcl(l, a, b)
	return 0.1 <= c && c <= 0.4 && 0.2 <= l && l <= 0.5
}

// HappyPalette returns bright, saturated colors that are easy to tell apart.
func (g *Generator) HappyPalette(colorsCount int) ([]colorful.Color, error) {
	return g.SoftPaletteEx(colorsCount, Settings{CheckColor: happyCheck, Iterations: 50, ManySamples: true})
}

// WarmPalette returns dark, moderately saturated colors.
func (g *Generator) WarmPalette(colorsCount int) ([]colorful.Color, error) {
	return g.SoftPaletteEx(colorsCount, Settings{CheckColor: warmCheck, Iterations: 50, ManySamples: true})
}

// FastHappyPalette spaces hues evenly in HSV with similar saturation and
// value. Fast, but not always pretty; HappyPalette looks better.
func (g *Generator) FastHappyPalette(colorsCount int) []colorful.Color {
	return g.hsvPalette(colorsCount, 0.8, 1.0, 0.65, 0.85)
}

// FastWarmPalette is the warm counterpart of FastHappyPalette.
func (g *Generator) FastWarmPalette(colorsCount int) []colorful.Color {
	return g.hsvPalette(colorsCount, 0.55, 0.75, 0.35, 0.55)
}

func (g *Generator) hsvPalette(colorsCount int, sLo, sHi, vLo, vHi float64) []colorful.Color {
	if colorsCount <= 0 {
		return []colorful.Color{}
	}
	colors := make([]colorful.Color, colorsCount)
	for i := range colors {
		colors[i] = colorful.Hsv(
			float64(i)*(360.0/float64(colorsCount)),
			g.between(sLo, sHi),
			g.between(vLo, vHi))
	}
	return colors
}

// HappyPalette calls HappyPalette on the default generator.
func HappyPalette(colorsCount int) ([]colorful.Color, error) {
	return defaultGenerator.HappyPalette(colorsCount)
}

// WarmPalette calls WarmPalette on the default generator.
func WarmPalette(colorsCount int) ([]colorful.Color, error) {
	return defaultGenerator.WarmPalette(colorsCount)
}

// FastHappyPalette calls FastHappyPalette on the default generator.
func FastHappyPalette(colorsCount int) []colorful.Color {
	return defaultGenerator.FastHappyPalette(colorsCount)
}

// FastWarmPalette calls FastWarmPalette on the default generator.
func FastWarmPalette(colorsCount int) []colorful.Color {
	return defaultGenerator.FastWarmPalette(colorsCount)
}
