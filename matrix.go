package svgmsdf

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation in SVG coefficient order.
// The six coefficients map onto the column-major 3x3 matrix
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// The zero value is not the identity; use [Identity].
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// NewMatrix returns the matrix with the given coefficients, in the order of
// the SVG matrix(a b c d e f) transform function.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians). With the y axis
// pointing down, positive angles rotate clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// SkewX creates a matrix that skews along the x axis (angle in radians).
func SkewX(angle float64) Matrix {
	return Matrix{A: 1, C: math.Tan(angle), D: 1}
}

// SkewY creates a matrix that skews along the y axis (angle in radians).
func SkewY(angle float64) Matrix {
	return Matrix{A: 1, B: math.Tan(angle), D: 1}
}

// Multiply multiplies two matrices (m * other). The result applies other
// first and m second, so a parent's transform multiplied by its child's
// yields the child's transform in the parent's coordinate space.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix and whether it exists.
// A singular matrix, or one whose inverse would overflow, yields the
// identity and false.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || math.IsInf(1/det, 0) || !m.IsFinite() {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// IsFinite reports whether all six coefficients are finite numbers.
func (m Matrix) IsFinite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// String formats the matrix as an SVG matrix() transform function.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}
