package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// Buffer is a rectangular RGBA8 pixel buffer.
type Buffer struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewBuffer creates a zeroed (transparent black) buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// FromPixels wraps pix as a width×height buffer without copying.
func FromPixels(width, height int, pix []uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidSize, width, height, len(pix))
	}
	return &Buffer{width: width, height: height, pix: pix}, nil
}

// FromImage copies img into a new buffer. The result is premultiplied RGBA
// and starts at the origin regardless of img's bounds.
func FromImage(img image.Image) *Buffer {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	buf := NewBuffer(b.Dx(), b.Dy())
	rowLen := buf.width * 4
	for y := 0; y < buf.height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowLen]
		copy(buf.pix[y*rowLen:], src)
	}
	return buf
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the raw pixel data.
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.width * b.height
}

// SameSize reports whether b and o have identical dimensions.
func (b *Buffer) SameSize(o *Buffer) bool {
	return b.width == o.width && b.height == o.height
}

// SetPixel sets one pixel. Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// Pixel returns one pixel, or transparent black when out of range.
func (b *Buffer) Pixel(x, y int) color.RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := (y*b.width + x) * 4
	return color.RGBA{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// Clear fills the entire buffer with c.
func (b *Buffer) Clear(c color.RGBA) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

// ToImage converts the buffer to an image.RGBA sharing no memory with b.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.pix)
	return img
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}
