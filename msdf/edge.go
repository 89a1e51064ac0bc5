package msdf

import (
	"math"
)

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor determines which RGB channels an edge contributes to.
// Different colors at corners preserve sharpness in MSDF.
type EdgeColor uint8

const (
	// ColorRed means the edge contributes to the red channel.
	ColorRed EdgeColor = 1 << iota

	// ColorGreen means the edge contributes to the green channel.
	ColorGreen

	// ColorBlue means the edge contributes to the blue channel.
	ColorBlue
)

const (
	// ColorBlack means the edge contributes to no channels.
	ColorBlack EdgeColor = 0

	// ColorYellow combines red and green channels.
	ColorYellow = ColorRed | ColorGreen

	// ColorCyan combines green and blue channels.
	ColorCyan = ColorGreen | ColorBlue

	// ColorMagenta combines red and blue channels.
	ColorMagenta = ColorRed | ColorBlue

	// ColorWhite means the edge contributes to all channels.
	ColorWhite = ColorRed | ColorGreen | ColorBlue
)

var colorNames = [...]string{
	ColorBlack:   "Black",
	ColorRed:     "Red",
	ColorGreen:   "Green",
	ColorYellow:  "Yellow",
	ColorBlue:    "Blue",
	ColorMagenta: "Magenta",
	ColorCyan:    "Cyan",
	ColorWhite:   "White",
}

func (c EdgeColor) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Unknown"
}

// HasRed returns true if the color includes the red channel.
func (c EdgeColor) HasRed() bool { return c&ColorRed != 0 }

// HasGreen returns true if the color includes the green channel.
func (c EdgeColor) HasGreen() bool { return c&ColorGreen != 0 }

// HasBlue returns true if the color includes the blue channel.
func (c EdgeColor) HasBlue() bool { return c&ColorBlue != 0 }

// Edge represents a single edge segment for distance calculation.
type Edge struct {
	// Type is the geometric type of this edge.
	Type EdgeType

	// Points contains the control and end points for this edge.
	// Linear: P0 (start), P1 (end)
	// Cubic: P0 (start), P1 (control1), P2 (control2), P3 (end)
	Points [4]Vector

	// Color determines which channels this edge affects.
	Color EdgeColor
}

// NewLinearEdge creates a new linear edge from start to end.
func NewLinearEdge(start, end Vector) Edge {
	return Edge{
		Type:   EdgeLinear,
		Points: [4]Vector{start, end, {}, {}},
		Color:  ColorWhite,
	}
}

// NewCubicEdge creates a new cubic Bezier edge.
func NewCubicEdge(start, control1, control2, end Vector) Edge {
	return Edge{
		Type:   EdgeCubic,
		Points: [4]Vector{start, control1, control2, end},
		Color:  ColorWhite,
	}
}

// StartPoint returns the starting point of the edge.
func (e *Edge) StartPoint() Vector {
	return e.Points[0]
}

// EndPoint returns the ending point of the edge.
func (e *Edge) EndPoint() Vector {
	switch e.Type {
	case EdgeLinear:
		return e.Points[1]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[0]
	}
}

// PointAt evaluates the edge at parameter t in [0, 1].
func (e *Edge) PointAt(t float64) Vector {
	switch e.Type {
	case EdgeLinear:
		return e.Points[0].Lerp(e.Points[1], t)
	case EdgeCubic:
		return cubic(e.Points).at(t)
	default:
		return e.Points[0]
	}
}

// DirectionAt returns the tangent direction at parameter t.
// For a cubic whose control point coincides with the endpoint, the
// direction towards the other control point is used.
func (e *Edge) DirectionAt(t float64) Vector {
	switch e.Type {
	case EdgeLinear:
		return e.Points[1].Sub(e.Points[0])
	case EdgeCubic:
		return cubic(e.Points).direction(t)
	default:
		return Vector{1, 0}
	}
}

// SignedDistance calculates the signed distance from point p to this edge.
func (e *Edge) SignedDistance(p Vector) SignedDistance {
	switch e.Type {
	case EdgeLinear:
		return segmentDistance(e.Points[0], e.Points[1], p)
	case EdgeCubic:
		return cubic(e.Points).distance(p)
	default:
		return Infinite()
	}
}

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() Rect {
	switch e.Type {
	case EdgeLinear:
		return boxOf(e.Points[0], e.Points[1])
	case EdgeCubic:
		return cubic(e.Points).bounds()
	default:
		return Rect{}
	}
}

// segmentDistance returns the signed distance from p to the segment a-b.
// Points to the left of the direction a->b are positive.
func segmentDistance(a, b, p Vector) SignedDistance {
	dir := b.Sub(a)
	rel := p.Sub(a)
	lenSq := dir.LengthSquared()
	if lenSq == 0 {
		return NewSignedDistance(rel.Length(), 0)
	}

	t := min(max(rel.Dot(dir)/lenSq, 0), 1)
	off := p.Sub(a.Lerp(b, t))
	sd := NewSignedDistance(off.Length(), endpointDot(dir, off, t))
	if dir.Cross(rel) < 0 {
		sd.Distance = -sd.Distance
	}
	return sd
}

// endpointDot is the tie-breaker between edges that share a closest
// endpoint: the cosine between the edge direction and the offset to p.
// It is zero for points that project inside the edge.
func endpointDot(dir, off Vector, t float64) float64 {
	if t > 0 && t < 1 {
		return 0
	}
	return math.Abs(dir.Normalized().Dot(off.Normalized()))
}

// cubic is a cubic Bezier: start, two controls, end.
type cubic [4]Vector

// at evaluates the curve by repeated interpolation.
func (c cubic) at(t float64) Vector {
	p01, p12, p23 := c[0].Lerp(c[1], t), c[1].Lerp(c[2], t), c[2].Lerp(c[3], t)
	return p01.Lerp(p12, t).Lerp(p12.Lerp(p23, t), t)
}

// velocity is the first derivative, a quadratic over the control deltas.
func (c cubic) velocity(t float64) Vector {
	d0, d1, d2 := c[1].Sub(c[0]), c[2].Sub(c[1]), c[3].Sub(c[2])
	return d0.Lerp(d1, t).Lerp(d1.Lerp(d2, t), t).Mul(3)
}

// acceleration is the second derivative.
func (c cubic) acceleration(t float64) Vector {
	e0 := c[0].Sub(c[1].Mul(2)).Add(c[2])
	e1 := c[1].Sub(c[2].Mul(2)).Add(c[3])
	return e0.Lerp(e1, t).Mul(6)
}

// direction is the tangent at t. Where a control point sits on the
// adjacent endpoint the velocity vanishes; the chord to the far control
// point is used then.
func (c cubic) direction(t float64) Vector {
	if v := c.velocity(t); v.LengthSquared() > 1e-24 {
		return v
	}
	if t < 0.5 {
		return c[2].Sub(c[0])
	}
	return c[3].Sub(c[1])
}

// distance returns the signed distance from p to the curve. Seeds spread
// over [0, 1] are polished by Newton steps on d/dt |B(t)-p|²; the closest
// candidate, endpoints included, wins.
func (c cubic) distance(p Vector) SignedDistance {
	const seeds = 8

	best := Infinite()
	try := func(t float64) {
		off := p.Sub(c.at(t))
		dir := c.direction(t)
		sd := NewSignedDistance(off.Length(), endpointDot(dir, off, t))
		if dir.Cross(off) < 0 {
			sd.Distance = -sd.Distance
		}
		if sd.IsCloserThan(best) {
			best = sd
		}
	}

	try(0)
	try(1)
	for i := 0; i <= seeds; i++ {
		try(c.nearest(p, float64(i)/seeds))
	}
	return best
}

// nearest runs Newton's method from t towards a local minimum of the
// distance to p, clamped to [0, 1].
func (c cubic) nearest(p Vector, t float64) float64 {
	const (
		steps = 8
		tol   = 1e-10
	)
	for i := 0; i < steps; i++ {
		off := c.at(t).Sub(p)
		v := c.velocity(t)
		slope := v.Dot(v) + off.Dot(c.acceleration(t))
		if math.Abs(slope) < tol {
			break
		}
		dt := off.Dot(v) / slope
		if math.Abs(dt) < tol {
			break
		}
		t = min(max(t-dt, 0), 1)
	}
	return t
}

// bounds returns the tight bounding box: the endpoints plus every interior
// extremum of either coordinate.
func (c cubic) bounds() Rect {
	r := boxOf(c[0], c[3])
	for _, t := range extrema(c[0].X, c[1].X, c[2].X, c[3].X) {
		x := c.at(t).X
		r.MinX, r.MaxX = min(r.MinX, x), max(r.MaxX, x)
	}
	for _, t := range extrema(c[0].Y, c[1].Y, c[2].Y, c[3].Y) {
		y := c.at(t).Y
		r.MinY, r.MaxY = min(r.MinY, y), max(r.MaxY, y)
	}
	return r
}

// extrema returns the parameters in (0, 1) where one coordinate of a cubic
// with the given control values has zero derivative. The derivative is
// d0 + 2(d1-d0)t + (d0-2d1+d2)t² over the control deltas d.
func extrema(v0, v1, v2, v3 float64) []float64 {
	const eps = 1e-14

	d0, d1, d2 := v1-v0, v2-v1, v3-v2
	qa, qb, qc := d0-2*d1+d2, 2*(d1-d0), d0

	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	switch {
	case math.Abs(qa) < eps:
		if math.Abs(qb) >= eps {
			keep(-qc / qb)
		}
	default:
		disc := qb*qb - 4*qa*qc
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		keep((-qb + sq) / (2 * qa))
		if sq > 0 {
			keep((-qb - sq) / (2 * qa))
		}
	}
	return roots
}

// boxOf returns the smallest rectangle holding a and b.
func boxOf(a, b Vector) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}
