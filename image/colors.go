package image

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mmuldo/chromatic/colorful"
)

// ErrTooFewColors is returned by Extract when an image doesn't have enough
// distinct colors.
var ErrTooFewColors = errors.New("image does not have enough variation")

// ColorCount is a color and the number of pixels it covers.
type ColorCount struct {
	Color colorful.Color
	Count int
}

// ColorCountList sorts by decreasing count. Colors with the same count
// keep a fixed order.
type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Less(ccl[j].Color)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Colors returns a map of an image's colors and the number of times each
// color occurs. Fully transparent pixels are skipped.
func Colors(img image.Image) map[colorful.Color]int {
	m := make(map[colorful.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if c, ok := colorful.MakeColor(img.At(x, y)); ok {
				m[c]++
			}
		}
	}

	return m
}

// Rank sorts the colors of m by prevalence.
func Rank(m map[colorful.Color]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}

// Quantize reduces img to at most n colors, without dithering.
func Quantize(img image.Image, n int) image.Image {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, n, false, true)
	return o
}

// Extract returns the n colors that best represent img, most prevalent first.
func Extract(img image.Image, n int) (ColorCountList, error) {
	if n <= 0 {
		return ColorCountList{}, nil
	}
	ranked := Rank(Colors(Quantize(img, n)))
	if len(ranked) < n {
		return nil, fmt.Errorf("%w: %d colors wanted, %d found", ErrTooFewColors, n, len(ranked))
	}
	return ranked[:n], nil
}

// Colors returns just the colors of the list.
func (ccl ColorCountList) Colors() []colorful.Color {
	cs := make([]colorful.Color, len(ccl))
	for i, cc := range ccl {
		cs[i] = cc.Color
	}
	return cs
}
