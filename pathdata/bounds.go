package pathdata

import (
	"math"

	"github.com/gogpu/svgmsdf"
)

// BoundsSink is a Sink that accumulates the bounding box of every point it
// receives. Cubic control points are included, so the box may be larger
// than the curve itself.
type BoundsSink struct {
	Min, Max svgmsdf.Point
	n        int
}

// MoveTo implements Sink.
func (s *BoundsSink) MoveTo(p svgmsdf.Point) { s.add(p) }

// LineTo implements Sink.
func (s *BoundsSink) LineTo(p svgmsdf.Point) { s.add(p) }

// CubicTo implements Sink.
func (s *BoundsSink) CubicTo(c1, c2, p svgmsdf.Point) {
	s.add(c1)
	s.add(c2)
	s.add(p)
}

// Close implements Sink.
func (s *BoundsSink) Close() {}

// Empty reports whether no finite point was seen.
func (s *BoundsSink) Empty() bool {
	return s.n == 0
}

func (s *BoundsSink) add(p svgmsdf.Point) {
	if !p.IsFinite() {
		return
	}
	if s.n == 0 {
		s.Min, s.Max = p, p
	} else {
		s.Min = svgmsdf.Pt(math.Min(s.Min.X, p.X), math.Min(s.Min.Y, p.Y))
		s.Max = svgmsdf.Pt(math.Max(s.Max.X, p.X), math.Max(s.Max.Y, p.Y))
	}
	s.n++
}

// Bounds returns the bounding box of d mapped through m. ok is false when
// the path has no points.
func Bounds(d string, m svgmsdf.Matrix) (lo, hi svgmsdf.Point, ok bool) {
	var s BoundsSink
	Walk(d, m, &s)
	return s.Min, s.Max, !s.Empty()
}
