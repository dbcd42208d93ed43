package theme

import (
	"errors"
	"sort"
	"strconv"

	"github.com/mmuldo/chromatic/colorful"
	"github.com/mmuldo/chromatic/palette"
)

// ErrEmptyPalette is returned when a theme is made from no colors at all.
var ErrEmptyPalette = errors.New("theme: no colors")

// Palette represents a set of colors and their associated 'roles' (e.g. color0, color1, etc.).
type Palette map[int]Swatch

// Theme represents a desktop theme. Keys are template variables.
type Theme map[string]interface{}

// Swatch represents a color and the number of pixels it takes up in a given image.
type Swatch struct {
	Color colorful.HexColor `json:"color" yaml:"color" toml:"color"`
	Count int               `json:"count" yaml:"count" toml:"count"`
}

type byLightness []Swatch

func (s byLightness) Len() int { return len(s) }
func (s byLightness) Less(i, j int) bool {
	li, _, _ := colorful.Color(s[i].Color).Lab()
	lj, _, _ := colorful.Color(s[j].Color).Lab()
	return li < lj
}
func (s byLightness) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

//**exported functions**//

// Delegate assigns roles to swatches. The darker half comes first, and
// within each half similar colors are kept next to each other.
func Delegate(swatches []Swatch) (Palette, error) {
	if len(swatches) == 0 {
		return nil, ErrEmptyPalette
	}

	s := make([]Swatch, len(swatches))
	copy(s, swatches)

	// group colors into darks and lights
	sort.Stable(byLightness(s))
	d := order(s[:len(s)/2])
	l := order(s[len(s)/2:])

	p := make(Palette, len(s))
	for i, c := range d {
		p[i] = c
	}
	for i, c := range l {
		p[len(d)+i] = c
	}

	return p, nil
}

// Create creates a new desktop theme based on a palette and other options.
// Options override the generated keys.
func Create(p Palette, opts map[string]interface{}) (Theme, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}

	t := make(Theme)
	for _, k := range p.Keys() {
		t["color"+strconv.Itoa(k)] = colorful.Color(p[k].Color).Hex()
	}

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, p.Keys())

	return t, nil
}

// Keys returns the roles of the palette in increasing order.
func (p Palette) Keys() []int {
	keys := make([]int, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

//**helper functions**//

// order sorts swatches so that neighbors look alike.
func order(s []Swatch) []Swatch {
	cs := make([]colorful.Color, len(s))
	for i, sw := range s {
		cs[i] = colorful.Color(sw.Color)
	}

	// palette.Sort reorders colors, so map them back to their swatches.
	// Duplicates are handed out in their original order.
	byColor := make(map[colorful.Color][]Swatch)
	for _, sw := range s {
		c := colorful.Color(sw.Color)
		byColor[c] = append(byColor[c], sw)
	}

	sorted := palette.Sort(cs)
	out := make([]Swatch, len(sorted))
	for i, c := range sorted {
		out[i] = byColor[c][0]
		byColor[c] = byColor[c][1:]
	}
	return out
}

func setDefaults(t Theme, keys []int) {
	if _, ok := t["background"]; !ok {
		t["background"] = t["color"+strconv.Itoa(keys[0])]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color"+strconv.Itoa(keys[len(keys)/2])]
	}
}
