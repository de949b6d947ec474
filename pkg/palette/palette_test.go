package palette

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestCyclicLength(t *testing.T) {
	type tc struct {
		anchors int
		folds   int
		want    int
	}

	tests := map[string]tc{
		"short anchors ramp to fifty": {anchors: 3, folds: 2, want: 2*50*2 + 1},
		"single fold":                 {anchors: 5, folds: 1, want: 2*50*1 + 1},
		"long anchors pass through":   {anchors: 60, folds: 1, want: 2*60*1 + 1},
		"zero folds floor to one":     {anchors: 3, folds: 0, want: 2*50*1 + 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			anchors := make([]color.Color, tt.anchors)
			for i := range anchors {
				anchors[i] = color.RGBA{uint8(i * 4), uint8(255 - i*4), 128, 255}
			}

			inSet := color.RGBA{1, 2, 3, 255}
			got := Cyclic(anchors, tt.folds, inSet)
			if len(got) != tt.want {
				t.Errorf("len(Cyclic()) = %d, want %d", len(got), tt.want)
			}
			if !sameColor(got[len(got)-1], inSet) {
				t.Errorf("final entry = %v, want the in-set color %v", got[len(got)-1], inSet)
			}
		})
	}
}

func TestCyclicMirrorsAtFoldSeams(t *testing.T) {
	anchors := []color.Color{
		color.RGBA{0, 0, 128, 255},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{255, 170, 0, 255},
	}
	got := Cyclic(anchors, 2, color.Black)

	// ramp is 50 long, so one fold spans entries [0, 99].
	if !sameColor(got[49], got[50]) {
		t.Errorf("entries 49 and 50 differ across the mirror seam: %v vs %v", got[49], got[50])
	}
	if !sameColor(got[0], got[99]) {
		t.Errorf("fold does not return to its first color: %v vs %v", got[0], got[99])
	}
	if !sameColor(got[0], got[100]) {
		t.Errorf("second fold does not restart the ramp: %v vs %v", got[0], got[100])
	}
}

func TestRampEndpoints(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	got := Ramp([]color.Color{red, blue}, 10)
	if len(got) != 10 {
		t.Fatalf("len(Ramp()) = %d, want 10", len(got))
	}
	if !sameColor(got[0], red) {
		t.Errorf("first ramp color = %v, want %v", got[0], red)
	}
	if !sameColor(got[9], blue) {
		t.Errorf("last ramp color = %v, want %v", got[9], blue)
	}
	if sameColor(got[5], red) || sameColor(got[5], blue) {
		t.Errorf("interior ramp color %v did not interpolate", got[5])
	}
}

func TestRampSingleAnchor(t *testing.T) {
	gray := color.RGBA{90, 90, 90, 255}
	got := Ramp([]color.Color{gray}, 5)
	if len(got) != 5 {
		t.Fatalf("len(Ramp()) = %d, want 5", len(got))
	}
	for i, c := range got {
		if !sameColor(c, gray) {
			t.Errorf("Ramp()[%d] = %v, want %v", i, c, gray)
		}
	}
}

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		p, err := Named(name)
		if err != nil {
			t.Errorf("Named(%q) error = %v", name, err)
		}
		if len(p) == 0 {
			t.Errorf("Named(%q) returned an empty palette", name)
		}
	}

	if _, err := Named("plaid"); err == nil {
		t.Errorf("Named(\"plaid\") error = nil, want unknown-palette error")
	}
}

func stripImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 3))
	for x := 0; x < 8; x++ {
		for y := 0; y < 3; y++ {
			img.Set(x, y, color.RGBA{uint8(x * 30), 64, uint8(255 - x*30), 255})
		}
	}
	return img
}

func TestFromImage(t *testing.T) {
	dir := t.TempDir()
	strip := stripImage()

	pngPath := filepath.Join(dir, "strip.png")
	f, err := os.Create(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, strip); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bmpPath := filepath.Join(dir, "strip.bmp")
	f, err = os.Create(bmpPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, strip); err != nil {
		t.Fatal(err)
	}
	f.Close()

	for _, path := range []string{pngPath, bmpPath} {
		anchors, err := FromImage(path)
		if err != nil {
			t.Fatalf("FromImage(%s) error = %v", path, err)
		}
		if len(anchors) != 8 {
			t.Fatalf("FromImage(%s) returned %d anchors, want 8", path, len(anchors))
		}
		for x := 0; x < 8; x++ {
			if !sameColor(anchors[x], strip.At(x, 1)) {
				t.Errorf("%s anchor %d = %v, want %v", filepath.Base(path), x, anchors[x], strip.At(x, 1))
			}
		}
	}

	if _, err := FromImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Errorf("FromImage() on a missing file returned no error")
	}
}
