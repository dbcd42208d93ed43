package palette

import (
	"log/slog"
	"math"

	"github.com/mmuldo/chromatic/colorful"
)

// CheckColorFunc restricts the color space a palette is drawn from. It
// receives L*a*b* coordinates relative to D65.
type CheckColorFunc func(l, a, b float64) bool

// Settings controls SoftPaletteEx.
type Settings struct {
	// CheckColor restricts the allowed color space. nil allows every valid
	// RGB color.
	CheckColor CheckColorFunc

	// Iterations of k-means. More is better but slower; two figures are usual.
	Iterations int

	// ManySamples samples L*a*b* on a finer grid (up to about 170000
	// samples instead of 9000). Only needed when CheckColor cuts the
	// space into odd shapes.
	ManySamples bool
}

type labSample struct {
	L, A, B float64
}

const labDelta = 1e-6

func (s labSample) eq(o labSample) bool {
	return math.Abs(s.L-o.L) < labDelta &&
		math.Abs(s.A-o.A) < labDelta &&
		math.Abs(s.B-o.B) < labDelta
}

// dist is the Euclidean distance, without converting back and forth
// through colorful.Color.
func (s labSample) dist(o labSample) float64 {
	return math.Sqrt((s.L-o.L)*(s.L-o.L) + (s.A-o.A)*(s.A-o.A) + (s.B-o.B)*(s.B-o.B))
}

func (s labSample) color() colorful.Color {
	return colorful.Lab(s.L, s.A, s.B)
}

// sampleLab returns the points of a regular L*a*b* grid which pass check.
func sampleLab(check func(labSample) bool, many bool) []labSample {
	dl, dab := 0.05, 0.1
	if many {
		dl, dab = 0.01, 0.05
	}
	nl := int(math.Round(1.0 / dl))
	nab := int(math.Round(2.0 / dab))

	samples := make([]labSample, 0, (nl+1)*(nab+1)*(nab+1)/4)
	for i := 0; i <= nl; i++ {
		for j := 0; j <= nab; j++ {
			for k := 0; k <= nab; k++ {
				s := labSample{
					L: float64(i) * dl,
					A: -1.0 + float64(j)*dab,
					B: -1.0 + float64(k)*dab,
				}
				if check(s) {
					samples = append(samples, s)
				}
			}
		}
	}
	return samples
}

// SoftPaletteEx clusters the L*a*b* space with k-means and returns the
// cluster means as a palette of distinct colors. When a mean falls outside
// the allowed space, which can only happen with a CheckColor function, the
// closest unused sample replaces it, turning the mean into a medoid.
func (g *Generator) SoftPaletteEx(colorsCount int, settings Settings) ([]colorful.Color, error) {
	if colorsCount <= 0 {
		return []colorful.Color{}, nil
	}

	check := func(s labSample) bool {
		return s.color().IsValid() &&
			(settings.CheckColor == nil || settings.CheckColor(s.L, s.A, s.B))
	}

	samples := sampleLab(check, settings.ManySamples)
	logger := Logger()
	logger.Debug("sampled color space", slog.Int("samples", len(samples)), slog.Bool("many", settings.ManySamples))

	if len(samples) < colorsCount {
		return nil, &InsufficientSamplesError{Requested: colorsCount, Available: len(samples)}
	}
	if len(samples) == colorsCount {
		return labsToColors(samples), nil
	}

	// The initial means are samples, so they are really medoids. This keeps
	// a too restrictive CheckColor from looping forever below.
	means := make([]labSample, colorsCount)
	for i := range means {
		means[i] = samples[g.intn(len(samples))]
		for contains(means[:i], means[i]) {
			means[i] = samples[g.intn(len(samples))]
		}
	}

	clusters := make([]int, len(samples))
	used := make([]bool, len(samples))
	fallbacks := 0

	for it := 0; it < settings.Iterations; it++ {
		// Assign every sample to its closest mean, and mark the samples
		// which are currently used as a medoid.
		for i, s := range samples {
			used[i] = false
			minDist := math.Inf(1)
			for m, mean := range means {
				if d := s.dist(mean); d < minDist {
					minDist = d
					clusters[i] = m
				}
				if s.eq(mean) {
					used[i] = true
				}
			}
		}

		for m := range means {
			n := 0
			var mean labSample
			for i, s := range samples {
				if clusters[i] == m {
					n++
					mean.L += s.L
					mean.A += s.A
					mean.B += s.B
				}
			}

			if n > 0 {
				mean.L /= float64(n)
				mean.A /= float64(n)
				mean.B /= float64(n)
				if check(mean) {
					means[m] = mean
					continue
				}
			} else if i, ok := g.randomUnused(used); ok {
				mean = samples[i]
				used[i] = true
				means[m] = mean
			} else {
				continue
			}

			// Medoid mode: adopt the closest unused sample.
			fallbacks++
			if i, ok := closestUnused(samples, used, mean); ok {
				means[m] = samples[i]
				used[i] = true
			}
		}
	}

	logger.Debug("clustered palette",
		slog.Int("colors", colorsCount),
		slog.Int("iterations", settings.Iterations),
		slog.Int("medoid_fallbacks", fallbacks))

	return labsToColors(means), nil
}

// SoftPalette returns colorsCount distinct colors from the whole RGB gamut.
func (g *Generator) SoftPalette(colorsCount int) ([]colorful.Color, error) {
	return g.SoftPaletteEx(colorsCount, Settings{Iterations: 50})
}

// SoftPaletteEx calls SoftPaletteEx on the default generator.
func SoftPaletteEx(colorsCount int, settings Settings) ([]colorful.Color, error) {
	return defaultGenerator.SoftPaletteEx(colorsCount, settings)
}

// SoftPalette calls SoftPalette on the default generator.
func SoftPalette(colorsCount int) ([]colorful.Color, error) {
	return defaultGenerator.SoftPalette(colorsCount)
}

func contains(haystack []labSample, needle labSample) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// randomUnused picks one of the unused samples uniformly.
func (g *Generator) randomUnused(used []bool) (int, bool) {
	free := 0
	for _, u := range used {
		if !u {
			free++
		}
	}
	if free == 0 {
		return 0, false
	}

	k := g.intn(free)
	for i, u := range used {
		if u {
			continue
		}
		if k == 0 {
			return i, true
		}
		k--
	}
	return 0, false
}

// closestUnused returns the first unused sample closest to target.
func closestUnused(samples []labSample, used []bool, target labSample) (int, bool) {
	best, found := 0, false
	minDist := math.Inf(1)
	for i, s := range samples {
		if used[i] {
			continue
		}
		if d := s.dist(target); d < minDist {
			minDist = d
			best, found = i, true
		}
	}
	return best, found
}

func labsToColors(labs []labSample) []colorful.Color {
	cols := make([]colorful.Color, len(labs))
	for i, l := range labs {
		cols[i] = l.color()
	}
	return cols
}
