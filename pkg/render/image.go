package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"mandelfield/pkg/utils"
)

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeBMP writes img to w in BMP format.
func EncodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// SaveImage writes img to path, picking the encoder from the file extension.
// Missing parent directories are created.
func SaveImage(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = EncodePNG
	case ".bmp":
		encode = EncodeBMP
	default:
		return fmt.Errorf("render: cannot encode %q, want a .png or .bmp path", path)
	}

	if err := utils.CreateFolder(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
