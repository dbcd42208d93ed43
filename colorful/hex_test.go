package colorful

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

var shortHexVals = []struct {
	c   Color
	hex string
}{
	{Color{1.0, 1.0, 1.0}, "#fff"},
	{Color{0.6, 1.0, 1.0}, "#9ff"},
	{Color{1.0, 0.6, 1.0}, "#f9f"},
	{Color{1.0, 1.0, 0.6}, "#ff9"},
	{Color{0.6, 0.6, 1.0}, "#99f"},
	{Color{1.0, 0.6, 0.6}, "#f99"},
	{Color{0.6, 1.0, 0.6}, "#9f9"},
	{Color{0.6, 0.6, 0.6}, "#999"},
	{Color{0.0, 1.0, 1.0}, "#0ff"},
	{Color{1.0, 0.0, 1.0}, "#f0f"},
	{Color{1.0, 1.0, 0.0}, "#ff0"},
	{Color{0.0, 0.0, 1.0}, "#00f"},
	{Color{0.0, 1.0, 0.0}, "#0f0"},
	{Color{1.0, 0.0, 0.0}, "#f00"},
	{Color{0.0, 0.0, 0.0}, "#000"},
}

func TestHexCreation(t *testing.T) {
	for i, tt := range vals {
		for _, s := range []string{tt.hex, strings.ToUpper(tt.hex)} {
			c, err := Hex(s)
			if err != nil {
				t.Fatalf("%d. Hex(%q): %v", i, s, err)
			}
			if !c.AlmostEqualRgb(tt.c) {
				t.Errorf("%d. Hex(%q) = %v, want %v", i, s, c, tt.c)
			}
		}
	}
}

func TestShortHexCreation(t *testing.T) {
	for i, tt := range shortHexVals {
		for _, s := range []string{tt.hex, strings.ToUpper(tt.hex)} {
			c, err := Hex(s)
			if err != nil {
				t.Fatalf("%d. Hex(%q): %v", i, s, err)
			}
			if !c.AlmostEqualRgb(tt.c) {
				t.Errorf("%d. Hex(%q) = %v, want %v", i, s, c, tt.c)
			}
		}
	}
}

func TestHexConversion(t *testing.T) {
	for i, tt := range vals {
		if got := tt.c.Hex(); got != tt.hex {
			t.Errorf("%d. %v.Hex() = %q, want %q", i, tt.c, got, tt.hex)
		}
	}
	if got := (Color{1.2, -0.3, 0.5}).Hex(); got != "#ff0080" {
		t.Errorf("Hex of out-of-gamut color = %q, want #ff0080", got)
	}
}

func TestHexErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"ff0000", ErrNotHexFormat},
		{"", ErrNotHexFormat},
		{"#", ErrBadHexLength},
		{"#ff00", ErrBadHexLength},
		{"#ff00000", ErrBadHexLength},
		{"#gg0000", ErrMalformedHex},
		{"#12z", ErrMalformedHex},
		{"#+ff", ErrMalformedHex},
	}
	for _, tc := range cases {
		_, err := Hex(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Hex(%q) error = %v, want %v", tc.in, err, tc.want)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Input != tc.in {
			t.Errorf("Hex(%q) error %v doesn't carry the input", tc.in, err)
		}
	}
}

func TestHexColorText(t *testing.T) {
	type doc struct {
		Accent HexColor `json:"accent"`
	}

	in := doc{HexColor{1, 0.5, 0}}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"accent":"#ff8000"}` {
		t.Errorf("json.Marshal = %s", data)
	}

	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !Color(out.Accent).AlmostEqualRgb(Color(in.Accent)) {
		t.Errorf("round trip = %v, want %v", out.Accent, in.Accent)
	}

	if err := json.Unmarshal([]byte(`{"accent":"orange"}`), &out); err == nil {
		t.Error("unmarshalling a color name succeeded")
	}
}
