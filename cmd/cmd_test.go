package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/mmuldo/chromatic/colorful"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the command line in a fresh home directory and returns
// what it printed to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	out, errOut = &stdout, &stderr
	t.Cleanup(func() {
		out, errOut = os.Stdout, os.Stderr
	})

	rootCmd.SetArgs(args)
	e := rootCmd.Execute()
	return stdout.String(), e
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#336699", "#336699"},
		{"#f0c", "#ff00cc"},
		{"red", "#ff0000"},
		{"RebeccaPurple", "#663399"},
	}
	for _, tc := range cases {
		c, e := parseColor(tc.in)
		if e != nil {
			t.Errorf("parseColor(%q): %v", tc.in, e)
			continue
		}
		if c.Hex() != tc.want {
			t.Errorf("parseColor(%q) = %s, want %s", tc.in, c.Hex(), tc.want)
		}
	}

	if _, e := parseColor("nope"); !errors.Is(e, errUnknownColor) {
		t.Errorf("parseColor(nope) error = %v", e)
	}
	if _, e := parseColor("#12"); !errors.Is(e, colorful.ErrBadHexLength) {
		t.Errorf("parseColor(#12) error = %v", e)
	}
}

func TestWriteColors(t *testing.T) {
	cs := []colorful.Color{{R: 1}, {B: 1}}

	var buf bytes.Buffer
	if e := writeColors(&buf, cs, "text"); e != nil {
		t.Fatal(e)
	}
	if got, want := buf.String(), "#ff0000\n#0000ff\n"; got != want {
		t.Errorf("text output = %q, want %q", got, want)
	}

	buf.Reset()
	if e := writeColors(&buf, cs, "json"); e != nil {
		t.Fatal(e)
	}
	var l struct{ Colors []string }
	if e := json.Unmarshal(buf.Bytes(), &l); e != nil {
		t.Fatal(e)
	}
	if d := cmp.Diff([]string{"#ff0000", "#0000ff"}, l.Colors); d != "" {
		t.Errorf("json output (-want +got):\n%s", d)
	}

	buf.Reset()
	if e := writeColors(&buf, cs, "toml"); e != nil {
		t.Fatal(e)
	}
	if !strings.Contains(buf.String(), "#0000ff") {
		t.Errorf("toml output lacks a color:\n%s", buf.String())
	}
}

func TestBlend(t *testing.T) {
	got, e := blend(colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1}, "RGB", 3)
	if e != nil {
		t.Fatal(e)
	}
	var hexes []string
	for _, c := range got {
		hexes = append(hexes, c.Hex())
	}
	if d := cmp.Diff([]string{"#000000", "#808080", "#ffffff"}, hexes); d != "" {
		t.Errorf("blend (-want +got):\n%s", d)
	}

	for _, space := range blendSpaces() {
		g, e := blend(colorful.Color{R: 1}, colorful.Color{B: 1}, space, 4)
		if e != nil {
			t.Fatalf("%s: %v", space, e)
		}
		if g[0].Hex() != "#ff0000" || g[3].Hex() != "#0000ff" {
			t.Errorf("%s blend doesn't keep its endpoints: %s %s", space, g[0].Hex(), g[3].Hex())
		}
	}

	if _, e := blend(colorful.Color{}, colorful.Color{}, "cmyk", 3); e == nil {
		t.Error("blending in cmyk succeeded")
	}
	if _, e := blend(colorful.Color{}, colorful.Color{}, "lab", 1); e == nil {
		t.Error("a one step blend succeeded")
	}
}

func TestPaletteCommand(t *testing.T) {
	o, e := run(t, "palette", "soft", "-n", "4", "--seed", "7")
	if e != nil {
		t.Fatal(e)
	}
	ls := lines(o)
	if len(ls) != 4 {
		t.Fatalf("got %d colors, want 4:\n%s", len(ls), o)
	}
	for _, l := range ls {
		if _, e := colorful.Hex(l); e != nil {
			t.Errorf("%q is not a hex color", l)
		}
	}

	again, e := run(t, "palette", "soft", "-n", "4", "--seed", "7")
	if e != nil {
		t.Fatal(e)
	}
	if again != o {
		t.Errorf("seeded palettes differ:\n%s\n%s", o, again)
	}

	o, e = run(t, "palette", "warm", "--fast", "-n", "3", "--sorted", "-f", "json")
	if e != nil {
		t.Fatal(e)
	}
	var l colorList
	if e := json.Unmarshal([]byte(o), &l); e != nil {
		t.Fatal(e)
	}
	if len(l.Colors) != 3 {
		t.Errorf("got %d colors, want 3", len(l.Colors))
	}

	if _, e := run(t, "palette", "soft", "--fast"); e == nil {
		t.Error("fast soft palette succeeded")
	}
	if _, e := run(t, "palette", "neon"); e == nil {
		t.Error("unknown palette kind succeeded")
	}
	if _, e := run(t, "palette", "-f", "xml"); e == nil {
		t.Error("unknown format succeeded")
	}
}

func TestPaletteKindFromEnv(t *testing.T) {
	t.Setenv("CHROMATIC_PALETTE_KIND", "happy")
	t.Setenv("CHROMATIC_PALETTE_FAST", "true")

	o, e := run(t, "palette", "-n", "2")
	if e != nil {
		t.Fatal(e)
	}
	for _, l := range lines(o) {
		c, e := colorful.Hex(l)
		if e != nil {
			t.Fatal(e)
		}
		if _, s, _ := c.Hsv(); s < 0.79 {
			t.Errorf("%s is not a happy color", l)
		}
	}
}

func TestSortCommand(t *testing.T) {
	o, e := run(t, "sort", "white", "black", "#808080")
	if e != nil {
		t.Fatal(e)
	}
	if d := cmp.Diff([]string{"#000000", "#808080", "#ffffff"}, lines(o)); d != "" {
		t.Errorf("sort (-want +got):\n%s", d)
	}

	if _, e := run(t, "sort", "black", "ultraviolet"); e == nil {
		t.Error("sorting an unknown color succeeded")
	}
}

func TestConvertCommand(t *testing.T) {
	o, e := run(t, "convert", "red")
	if e != nil {
		t.Fatal(e)
	}
	ls := lines(o)
	if len(ls) != 13 {
		t.Fatalf("got %d lines, want 13:\n%s", len(ls), o)
	}
	if d := cmp.Diff([]string{"hex", "#ff0000"}, strings.Fields(ls[0])); d != "" {
		t.Errorf("hex line (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"rgb", "1.0000", "0.0000", "0.0000"}, strings.Fields(ls[1])); d != "" {
		t.Errorf("rgb line (-want +got):\n%s", d)
	}

	o, e = run(t, "convert", "#336699", "-f", "yaml")
	if e != nil {
		t.Fatal(e)
	}
	var m map[string]interface{}
	if e := yaml.Unmarshal([]byte(o), &m); e != nil {
		t.Fatal(e)
	}
	if m["hex"] != "#336699" {
		t.Errorf("hex = %v, want #336699", m["hex"])
	}
	if _, ok := m["hsluv"]; !ok {
		t.Errorf("yaml output has no hsluv:\n%s", o)
	}
}

func TestDistanceCommand(t *testing.T) {
	o, e := run(t, "distance", "red", "#ff0000", "-f", "json")
	if e != nil {
		t.Fatal(e)
	}
	var m map[string]float64
	if e := json.Unmarshal([]byte(o), &m); e != nil {
		t.Fatal(e)
	}
	if len(m) != len(metrics) {
		t.Errorf("got %d metrics, want %d", len(m), len(metrics))
	}
	for k, v := range m {
		if v != 0 {
			t.Errorf("%s distance of a color to itself = %v", k, v)
		}
	}

	o, e = run(t, "distance", "black", "white")
	if e != nil {
		t.Fatal(e)
	}
	if d := cmp.Diff([]string{"cie76", "1.000000"}, strings.Fields(lines(o)[3])); d != "" {
		t.Errorf("cie76 line (-want +got):\n%s", d)
	}
}

func writeImage(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if x < 6 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	f, e := os.Create(path)
	if e != nil {
		t.Fatal(e)
	}
	if e := png.Encode(f, img); e != nil {
		t.Fatal(e)
	}
	if e := f.Close(); e != nil {
		t.Fatal(e)
	}
}

func TestCreateAndSwitch(t *testing.T) {
	dir := t.TempDir()
	themes := filepath.Join(dir, "themes")
	templates := filepath.Join(dir, "templates")

	img := filepath.Join(dir, "ocean.png")
	writeImage(t, img)

	if _, e := run(t, "create", img, "-c", "2", "--themes-dir", themes); e != nil {
		t.Fatal(e)
	}
	if _, e := os.Stat(filepath.Join(themes, "ocean")); e != nil {
		t.Fatalf("theme was not written: %v", e)
	}

	if e := os.MkdirAll(templates, 0755); e != nil {
		t.Fatal(e)
	}
	tpl := "background = {{ background }}\nforeground = {{ foreground }}\n"
	if e := os.WriteFile(filepath.Join(templates, "alacritty"), []byte(tpl), 0644); e != nil {
		t.Fatal(e)
	}

	o, e := run(t, "switch", "ocean", "-t", "alacritty", "--themes-dir", themes, "--templates-dir", templates)
	if e != nil {
		t.Fatal(e)
	}
	ls := lines(o)
	if len(ls) != 2 || !strings.HasPrefix(ls[0], "background = #") || !strings.HasPrefix(ls[1], "foreground = #") {
		t.Errorf("unexpected config:\n%s", o)
	}

	target := filepath.Join(dir, "out", "alacritty.toml")
	if _, e := run(t, "switch", "ocean", "-t", "alacritty", "-o", target, "--themes-dir", themes, "--templates-dir", templates); e != nil {
		t.Fatal(e)
	}
	b, e := os.ReadFile(target)
	if e != nil {
		t.Fatal(e)
	}
	if string(b) != o {
		t.Errorf("written config = %q, want %q", b, o)
	}

	if _, e := run(t, "switch", "ocean", "--themes-dir", themes); e == nil {
		t.Error("switch without a terminal succeeded")
	}
	if _, e := run(t, "create", filepath.Join(dir, "missing.png"), "--themes-dir", themes); e == nil {
		t.Error("create from a missing image succeeded")
	}
}
