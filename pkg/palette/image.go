package palette

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// FromImage reads a gradient strip image and returns its middle pixel row as
// ramp anchors. PNG is decoded through the standard registry, BMP through
// x/image. Strips narrower than two pixels cannot describe a ramp.
func FromImage(path string) ([]color.Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	if strings.ToLower(filepath.Ext(path)) == ".bmp" {
		img, err = bmp.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("palette: decoding strip %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() < 2 {
		return nil, fmt.Errorf("palette: gradient strip %s is only %d pixels wide", path, b.Dx())
	}

	y := b.Min.Y + b.Dy()/2
	anchors := make([]color.Color, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		anchors = append(anchors, img.At(x, y))
	}
	return anchors, nil
}
