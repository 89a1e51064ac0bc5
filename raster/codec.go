package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG
	"image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// EncodePNG writes the buffer as a PNG image.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.ToImage())
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Decode reads a raster image and returns it as a buffer along with the
// format name reported by the image package.
func Decode(r io.Reader) (*Buffer, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	if !filetype.IsImage(data) {
		return nil, "", ErrNotImage
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("raster: decode: %w", err)
	}
	return FromImage(img), format, nil
}

// Load decodes the image file at path.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	buf, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}
