package image

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmuldo/chromatic/colorful"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// twoTone returns a 10x10 image which is 60% red and 40% blue, with one
// fully transparent pixel in the red part.
func twoTone() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if x < 6 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	img.Set(0, 0, color.NRGBA{})
	return img
}

func TestColors(t *testing.T) {
	got := Colors(twoTone())
	want := map[colorful.Color]int{
		{R: 1}: 59,
		{B: 1}: 40,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Colors mismatch (-want +got):\n%s", d)
	}
}

func TestRank(t *testing.T) {
	m := map[colorful.Color]int{
		{R: 1}:             3,
		{G: 1}:             7,
		{B: 1}:             3,
		{R: 0, G: 0, B: 0}: 1,
	}
	want := ColorCountList{
		{colorful.Color{G: 1}, 7},
		{colorful.Color{B: 1}, 3},
		{colorful.Color{R: 1}, 3},
		{colorful.Color{}, 1},
	}
	if d := cmp.Diff(want, Rank(m)); d != "" {
		t.Errorf("Rank mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]colorful.Color{{G: 1}, {B: 1}, {R: 1}, {}}, want.Colors()); d != "" {
		t.Errorf("Colors mismatch (-want +got):\n%s", d)
	}
}

func TestExtract(t *testing.T) {
	ccl, err := Extract(twoTone(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(ccl) != 2 {
		t.Fatalf("got %d colors, want 2", len(ccl))
	}
	if ccl[0].Count < ccl[1].Count {
		t.Errorf("colors are not ranked: %v", ccl)
	}

	_, err = Extract(twoTone(), 5)
	if !errors.Is(err, ErrTooFewColors) {
		t.Errorf("Extract(5) error = %v, want ErrTooFewColors", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two-tone.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, twoTone()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Colors(twoTone()), Colors(img)); d != "" {
		t.Errorf("loaded image differs (-want +got):\n%s", d)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
