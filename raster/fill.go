package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/pathdata"
)

// Fill paints the filled interior of path data d, mapped through m, over b
// in colour c. Coordinates after mapping are buffer pixels. Open subpaths
// are closed implicitly.
func Fill(b *Buffer, d string, m svgmsdf.Matrix, c color.Color) pathdata.Result {
	z := vector.NewRasterizer(b.width, b.height)
	z.DrawOp = draw.Over
	sink := &rasterizerSink{z: z}
	res := pathdata.Walk(d, m, sink)
	if sink.open {
		z.ClosePath()
	}
	if b.width > 0 && b.height > 0 {
		z.Draw(b.rgba(), b.Bounds(), image.NewUniform(c), image.Point{})
	}
	return res
}

// FitMatrix maps the rectangle lo..hi into a width×height area, keeping the
// aspect ratio, centring the short axis and leaving margin pixels on every
// side. A degenerate rectangle is treated as the unit square.
func FitMatrix(lo, hi svgmsdf.Point, width, height int, margin float64) svgmsdf.Matrix {
	w, h := hi.X-lo.X, hi.Y-lo.Y
	if !(w > 0) || !(h > 0) {
		lo = svgmsdf.Pt(0, 0)
		w, h = 1, 1
	}
	fw := float64(width) - 2*margin
	fh := float64(height) - 2*margin
	if fw <= 0 || fh <= 0 {
		fw, fh = float64(width), float64(height)
		margin = 0
	}
	s := math.Min(fw/w, fh/h)
	ox := margin + (fw-w*s)/2
	oy := margin + (fh-h*s)/2
	return svgmsdf.Translate(ox, oy).Multiply(svgmsdf.Scale(s, s)).Multiply(svgmsdf.Translate(-lo.X, -lo.Y))
}

// rgba returns an image view sharing b's memory.
func (b *Buffer) rgba() *image.RGBA {
	return &image.RGBA{Pix: b.pix, Stride: b.width * 4, Rect: b.Bounds()}
}

// rasterizerSink feeds path segments to a vector rasterizer.
type rasterizerSink struct {
	z    *vector.Rasterizer
	open bool
}

func (s *rasterizerSink) MoveTo(p svgmsdf.Point) {
	if s.open {
		s.z.ClosePath()
	}
	s.z.MoveTo(float32(p.X), float32(p.Y))
	s.open = true
}

func (s *rasterizerSink) LineTo(p svgmsdf.Point) {
	s.z.LineTo(float32(p.X), float32(p.Y))
	s.open = true
}

func (s *rasterizerSink) CubicTo(c1, c2, p svgmsdf.Point) {
	s.z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
	s.open = true
}

func (s *rasterizerSink) Close() {
	s.z.ClosePath()
	s.open = false
}
