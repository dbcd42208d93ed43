package palette

import (
	"math"

	"github.com/mmuldo/chromatic/colorful"
)

// Closest returns the indices i < j of the two most similar colors and their
// CIEDE2000 distance. With fewer than two colors it returns -1, -1, +Inf.
func Closest(cs []colorful.Color) (i, j int, dist float64) {
	if len(cs) < 2 {
		return -1, -1, math.Inf(1)
	}
	e := allEdges(cs)[0]
	return e.u, e.v, e.dist
}

// Distinguishable reports whether all colors are at least minDist apart.
func Distinguishable(cs []colorful.Color, minDist float64) bool {
	_, _, d := Closest(cs)
	return d >= minDist
}
