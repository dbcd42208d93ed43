package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/term"

	"github.com/mmuldo/chromatic/colorful"
	"github.com/mmuldo/chromatic/theme"
)

var errUnknownColor = errors.New("not a hex color or color name")

// parseColor accepts hex colors and SVG color names.
func parseColor(s string) (colorful.Color, error) {
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("%q: %w", s, errUnknownColor)
}

func parseColors(args []string) ([]colorful.Color, error) {
	cs := make([]colorful.Color, len(args))
	for i, a := range args {
		c, e := parseColor(a)
		if e != nil {
			return nil, e
		}
		cs[i] = c
	}
	return cs, nil
}

// colorList is how lists of colors are written in structured formats.
type colorList struct {
	Colors []colorful.HexColor `json:"colors" yaml:"colors" toml:"colors"`
}

// writeColors prints one color per line, or a colorList in a structured
// format.
func writeColors(w io.Writer, cs []colorful.Color, format string) error {
	if format != "text" {
		l := colorList{Colors: make([]colorful.HexColor, len(cs))}
		for i, c := range cs {
			l.Colors[i] = colorful.HexColor(c)
		}
		return theme.Encode(w, l, theme.Format(format))
	}

	ansi := isTerminal(w)
	for _, c := range cs {
		if ansi {
			fmt.Fprint(w, swatch(c)+" ")
		}
		if _, e := fmt.Fprintln(w, c.Hex()); e != nil {
			return e
		}
	}
	return nil
}

// swatch renders a block in c using a 24-bit background escape.
func swatch(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", r, g, b)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
