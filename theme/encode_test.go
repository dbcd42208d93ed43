package theme

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sample = Theme{
	"color0":       "#000000",
	"color1":       "#ff8000",
	"background":   "#000000",
	"foreground":   "#ff8000",
	"transparency": 0.85,
}

func TestEncodeDecode(t *testing.T) {
	for _, f := range []Format{JSON, YAML, TOML} {
		var buf bytes.Buffer
		if e := Encode(&buf, sample, f); e != nil {
			t.Fatalf("%s: %v", f, e)
		}
		if !strings.Contains(buf.String(), "#ff8000") {
			t.Errorf("%s output lacks a color:\n%s", f, buf.String())
		}

		got, e := Decode(&buf, f)
		if e != nil {
			t.Fatalf("%s: %v", f, e)
		}
		if d := cmp.Diff(sample, got); d != "" {
			t.Errorf("%s round trip (-want +got):\n%s", f, d)
		}
	}
}

func TestSwatchEncoding(t *testing.T) {
	sw := struct {
		Swatches []Swatch `json:"swatches" yaml:"swatches" toml:"swatches"`
	}{[]Swatch{swatch("#336699", 12)}}

	for _, f := range []Format{JSON, YAML, TOML} {
		var buf bytes.Buffer
		if e := Encode(&buf, sw, f); e != nil {
			t.Fatalf("%s: %v", f, e)
		}
		if !strings.Contains(buf.String(), "#336699") {
			t.Errorf("%s doesn't encode swatches as hex:\n%s", f, buf.String())
		}
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{"YAML", YAML},
		{"yml", YAML},
		{" toml ", TOML},
	}
	for _, tc := range cases {
		got, e := ParseFormat(tc.in)
		if e != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tc.in, got, e, tc.want)
		}
	}

	if _, e := ParseFormat("xml"); !errors.Is(e, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v", e)
	}
	if e := Encode(&bytes.Buffer{}, sample, "xml"); !errors.Is(e, ErrUnknownFormat) {
		t.Errorf("Encode as xml error = %v", e)
	}
	if f, e := FormatOf("themes/ocean"); e != nil || f != JSON {
		t.Errorf("FormatOf without extension = %q, %v", f, e)
	}
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ocean", "ocean.yaml", "nested/ocean.toml"} {
		path := filepath.Join(dir, name)
		if e := WriteFile(path, sample); e != nil {
			t.Fatalf("WriteFile(%s): %v", name, e)
		}
		got, e := ReadFile(path)
		if e != nil {
			t.Fatalf("ReadFile(%s): %v", name, e)
		}
		if d := cmp.Diff(sample, got); d != "" {
			t.Errorf("%s round trip (-want +got):\n%s", name, d)
		}
	}

	if _, e := Decode(strings.NewReader("{"), JSON); e == nil {
		t.Error("decoding broken JSON succeeded")
	}
}
