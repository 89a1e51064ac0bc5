package preview

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/gogpu/svgmsdf/document"
	"github.com/gogpu/svgmsdf/raster"
)

const redSquare = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`

func TestRender(t *testing.T) {
	buf, err := Render(strings.NewReader(redSquare), 16, 16)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Width() != 16 || buf.Height() != 16 {
		t.Fatalf("Render() size = %dx%d, want 16x16", buf.Width(), buf.Height())
	}
	want := color.RGBA{R: 255, A: 255}
	if got := buf.Pixel(8, 8); got != want {
		t.Errorf("centre pixel = %v, want %v", got, want)
	}
}

func TestRenderLetterbox(t *testing.T) {
	// A square view box in a wide output leaves transparent side bands.
	buf, err := RenderBytes([]byte(redSquare), 32, 16)
	if err != nil {
		t.Fatalf("RenderBytes() error = %v", err)
	}
	if got := buf.Pixel(16, 8); got.R != 255 || got.A != 255 {
		t.Errorf("centre pixel = %v, want opaque red", got)
	}
	if got := buf.Pixel(2, 8); got.A != 0 {
		t.Errorf("side band pixel = %v, want transparent", got)
	}
}

func TestRenderErrors(t *testing.T) {
	png := new(bytes.Buffer)
	if err := raster.NewBuffer(2, 2).EncodePNG(png); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		data   []byte
		w, h   int
		target error
	}{
		{"zero width", []byte(redSquare), 0, 16, ErrInvalidSize},
		{"negative height", []byte(redSquare), 16, -1, ErrInvalidSize},
		{"png input", png.Bytes(), 16, 16, document.ErrNotSVG},
		{"html root", []byte("<html><body/></html>"), 16, 16, document.ErrNotSVG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RenderBytes(tt.data, tt.w, tt.h); !errors.Is(err, tt.target) {
				t.Errorf("RenderBytes() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name          string
		w, h          float64
		width, height int
		x, y, tw, th  float64
	}{
		{"same aspect", 10, 10, 64, 64, 0, 0, 64, 64},
		{"wide view box", 20, 10, 64, 64, 0, 16, 64, 32},
		{"tall view box", 10, 20, 64, 64, 16, 0, 32, 64},
		{"no view box", 0, 0, 48, 24, 0, 0, 48, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, tw, th := fit(tt.w, tt.h, tt.width, tt.height)
			if x != tt.x || y != tt.y || tw != tt.tw || th != tt.th {
				t.Errorf("fit() = %v,%v %vx%v, want %v,%v %vx%v", x, y, tw, th, tt.x, tt.y, tt.tw, tt.th)
			}
		})
	}
}
