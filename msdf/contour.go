package msdf

import (
	"math"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/pathdata"
)

// Contour represents a closed contour of edges.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge

	// Winding is the signed area of the contour's edge endpoints.
	// Its sign gives the direction the contour is drawn in.
	Winding float64

	// poly is a flattened copy used for inside tests.
	poly []Vector
}

// NewContour creates an empty contour.
func NewContour() *Contour {
	return &Contour{
		Edges: make([]Edge, 0),
	}
}

// AddEdge appends an edge to the contour.
func (c *Contour) AddEdge(e Edge) {
	c.Edges = append(c.Edges, e)
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}

	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// CalculateWinding calculates and stores the winding direction.
func (c *Contour) CalculateWinding() {
	// Shoelace formula over consecutive edge endpoints.
	var area float64
	for i := range c.Edges {
		p0 := c.Edges[i].StartPoint()
		p1 := c.Edges[i].EndPoint()
		area += p0.Cross(p1)
	}
	c.Winding = area / 2
}

// flattenSteps is the number of line pieces per cubic in the inside test.
const flattenSteps = 16

func (c *Contour) flatten() {
	c.poly = c.poly[:0]
	for i := range c.Edges {
		e := &c.Edges[i]
		if i == 0 {
			c.poly = append(c.poly, e.StartPoint())
		}
		if e.Type == EdgeCubic {
			for k := 1; k < flattenSteps; k++ {
				c.poly = append(c.poly, e.PointAt(float64(k)/flattenSteps))
			}
		}
		c.poly = append(c.poly, e.EndPoint())
	}
}

// windingNumber returns the winding number of the contour around p.
func (c *Contour) windingNumber(p Vector) int {
	w := 0
	for i := 0; i+1 < len(c.poly); i++ {
		a, b := c.poly[i], c.poly[i+1]
		side := b.Sub(a).Cross(p.Sub(a))
		if a.Y <= p.Y {
			if b.Y > p.Y && side > 0 {
				w++
			}
		} else if b.Y <= p.Y && side < 0 {
			w--
		}
	}
	return w
}

// Shape represents a complete path outline consisting of contours.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []*Contour

	// Bounds is the overall bounding box.
	Bounds Rect
}

// NewShape creates an empty shape.
func NewShape() *Shape {
	return &Shape{
		Contours: make([]*Contour, 0),
	}
}

// AddContour appends a contour to the shape.
func (s *Shape) AddContour(c *Contour) {
	s.Contours = append(s.Contours, c)
}

// CalculateBounds computes and stores the overall bounding box.
func (s *Shape) CalculateBounds() {
	if len(s.Contours) == 0 {
		s.Bounds = Rect{}
		return
	}

	s.Bounds = s.Contours[0].Bounds()
	for i := 1; i < len(s.Contours); i++ {
		s.Bounds = s.Bounds.Union(s.Contours[i].Bounds())
	}
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// Inside reports whether p is inside the shape under the non-zero fill rule.
func (s *Shape) Inside(p Vector) bool {
	w := 0
	for _, c := range s.Contours {
		if c.poly == nil {
			c.flatten()
		}
		w += c.windingNumber(p)
	}
	return w != 0
}

// ShapeBuilder is a pathdata.Sink that collects segments into a Shape.
// Every contour is closed, with a straight edge back to its start when
// the path leaves it open.
type ShapeBuilder struct {
	shape *Shape
	cur   *Contour
	start Vector
	pen   Vector
}

// NewShapeBuilder creates a builder for a new, empty shape.
func NewShapeBuilder() *ShapeBuilder {
	return &ShapeBuilder{shape: NewShape()}
}

// MoveTo implements pathdata.Sink.
func (b *ShapeBuilder) MoveTo(p svgmsdf.Point) {
	b.finish()
	b.start = vec(p)
	b.pen = b.start
}

// LineTo implements pathdata.Sink.
func (b *ShapeBuilder) LineTo(p svgmsdf.Point) {
	b.open()
	end := vec(p)
	// Skip degenerate lines
	if end.Sub(b.pen).LengthSquared() > 1e-12 {
		b.cur.AddEdge(NewLinearEdge(b.pen, end))
	}
	b.pen = end
}

// CubicTo implements pathdata.Sink.
func (b *ShapeBuilder) CubicTo(c1, c2, p svgmsdf.Point) {
	b.open()
	control1, control2, end := vec(c1), vec(c2), vec(p)
	if end.Sub(b.pen).LengthSquared() > 1e-12 ||
		control1.Sub(b.pen).LengthSquared() > 1e-12 ||
		control2.Sub(b.pen).LengthSquared() > 1e-12 {
		b.cur.AddEdge(NewCubicEdge(b.pen, control1, control2, end))
	}
	b.pen = end
}

// Close implements pathdata.Sink.
func (b *ShapeBuilder) Close() {
	b.finish()
	b.pen = b.start
}

// Shape finishes the last contour and returns the shape with its bounds
// computed.
func (b *ShapeBuilder) Shape() *Shape {
	b.finish()
	b.shape.CalculateBounds()
	for _, c := range b.shape.Contours {
		c.flatten()
	}
	return b.shape
}

func (b *ShapeBuilder) open() {
	if b.cur == nil {
		b.cur = NewContour()
	}
}

func (b *ShapeBuilder) finish() {
	c := b.cur
	b.cur = nil
	if c == nil || len(c.Edges) == 0 {
		return
	}
	if b.start.Sub(b.pen).LengthSquared() > 1e-12 {
		c.AddEdge(NewLinearEdge(b.pen, b.start))
	}
	c.CalculateWinding()
	b.shape.AddContour(c)
}

// BuildShape interprets absolute path data into a shape. Diagnostics from
// the path interpreter are returned alongside.
func BuildShape(path string) (*Shape, pathdata.Result) {
	b := NewShapeBuilder()
	res := pathdata.Walk(path, svgmsdf.Identity(), b)
	return b.Shape(), res
}

// AssignColors assigns edge colors to preserve corners.
// Corners get different colors on either side so that the median
// operation can preserve them.
func AssignColors(shape *Shape, angleThreshold float64) {
	crossThreshold := math.Sin(angleThreshold)
	for _, contour := range shape.Contours {
		if len(contour.Edges) == 0 {
			continue
		}
		assignContourColors(contour, crossThreshold)
	}
}

// palette is the colour cycle for runs of edges between corners. Any two
// entries share exactly one channel.
var palette = [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}

// assignContourColors assigns colors to edges in a single contour.
func assignContourColors(contour *Contour, crossThreshold float64) {
	n := len(contour.Edges)

	// corners[i] is the index of the edge that starts at a corner.
	corners := make([]int, 0)
	for i := 0; i < n; i++ {
		prev := &contour.Edges[(i+n-1)%n]
		next := &contour.Edges[i]
		if isCorner(prev.DirectionAt(1).Normalized(), next.DirectionAt(0).Normalized(), crossThreshold) {
			corners = append(corners, i)
		}
	}

	switch len(corners) {
	case 0:
		// Smooth contour
		for i := range contour.Edges {
			contour.Edges[i].Color = ColorWhite
		}

	case 1:
		// Teardrop: split the contour into three runs starting at the corner.
		colors := [3]EdgeColor{ColorMagenta, ColorWhite, ColorYellow}
		switch n {
		case 1:
			contour.Edges[0].Color = ColorWhite
			return
		case 2:
			contour.Edges[corners[0]].Color = colors[0]
			contour.Edges[(corners[0]+1)%n].Color = colors[2]
			return
		}
		for i := 0; i < n; i++ {
			contour.Edges[(corners[0]+i)%n].Color = colors[3*i/n]
		}

	default:
		m := len(corners)
		for s := 0; s < m; s++ {
			color := palette[s%3]
			if s == m-1 && s%3 == 0 {
				// The last run meets the first one, which is also palette[0].
				color = palette[1]
			}
			start := corners[s]
			end := corners[(s+1)%m]
			if end <= start {
				end += n
			}
			for j := start; j < end; j++ {
				contour.Edges[j%n].Color = color
			}
		}
	}
}

// isCorner reports whether the direction change from a to b is sharp. Both
// directions are unit vectors.
func isCorner(a, b Vector, crossThreshold float64) bool {
	return a.Dot(b) <= 0 || math.Abs(a.Cross(b)) > crossThreshold
}
