package colorful

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex returns the hex "html" representation of the color, as in #ff0080.
// Channels are clamped to [0..1] and rounded half up.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Hex parses a "html" hex color-string, either in the 3 "#f0c" or 6 "#ff1034"
// digits form. Parsing is case-insensitive.
func Hex(scol string) (Color, error) {
	if !strings.HasPrefix(scol, "#") {
		return Color{}, &ParseError{Input: scol, Err: ErrNotHexFormat}
	}

	digits := scol[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return Color{}, &ParseError{Input: scol, Err: ErrBadHexLength}
	}

	n, e := strconv.ParseUint(digits, 16, 32)
	if e != nil {
		return Color{}, &ParseError{Input: scol, Err: ErrMalformedHex}
	}

	if len(digits) == 3 {
		return Color{
			float64((n>>8)&0xf) / 15.0,
			float64((n>>4)&0xf) / 15.0,
			float64(n&0xf) / 15.0,
		}, nil
	}
	return Color{
		float64((n>>16)&0xff) / 255.0,
		float64((n>>8)&0xff) / 255.0,
		float64(n&0xff) / 255.0,
	}, nil
}

// HexColor is a Color which is marshalled as its hex string, so it can be
// stored in JSON, YAML and TOML documents.
type HexColor Color

// MarshalText implements encoding.TextMarshaler.
func (hc HexColor) MarshalText() ([]byte, error) {
	return []byte(Color(hc).Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (hc *HexColor) UnmarshalText(text []byte) error {
	c, e := Hex(string(text))
	if e != nil {
		return e
	}
	*hc = HexColor(c)
	return nil
}
