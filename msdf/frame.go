package msdf

import (
	"fmt"
)

// Frame maps shape coordinates to output pixels:
//
//	pixel = Scale * (shape + Translate)
//
// Range is the width of the encoded distance range in shape units.
type Frame struct {
	Scale     float64
	Translate Vector
	Range     float64
}

// AutoFrame fits bounds into a width×height output, leaving pxRange pixels
// of margin on every side. The aspect ratio is preserved and the shape is
// centred along the axis with spare room. Empty bounds are treated as the
// unit square.
func AutoFrame(bounds Rect, width, height int, pxRange float64) (Frame, error) {
	fx := float64(width) - 2*pxRange
	fy := float64(height) - 2*pxRange
	if fx <= 0 || fy <= 0 {
		return Frame{}, fmt.Errorf("%w: %dx%d with range %g", ErrRangeTooLarge, width, height, pxRange)
	}

	l, b, r, t := bounds.MinX, bounds.MinY, bounds.MaxX, bounds.MaxY
	if l >= r || b >= t {
		l, b, r, t = 0, 0, 1, 1
	}
	dx, dy := r-l, t-b

	var f Frame
	if dx*fy < dy*fx {
		f.Translate = Vector{0.5*(fx/fy*dy-dx) - l, -b}
		f.Scale = fy / dy
	} else {
		f.Translate = Vector{-l, 0.5*(fy/fx*dx-dy) - b}
		f.Scale = fx / dx
	}
	f.Translate = f.Translate.Add(Vector{pxRange / f.Scale, pxRange / f.Scale})
	f.Range = pxRange / f.Scale
	return f, nil
}

// Project maps a shape point to pixel coordinates.
func (f Frame) Project(p Vector) Vector {
	return p.Add(f.Translate).Mul(f.Scale)
}

// Unproject maps pixel coordinates to a shape point.
func (f Frame) Unproject(p Vector) Vector {
	return p.Mul(1 / f.Scale).Sub(f.Translate)
}
