package msdf

import (
	"math"

	"github.com/gogpu/svgmsdf"
)

// MaxSize is the largest accepted output width or height.
const MaxSize = 4096

// Config holds MSDF generation parameters.
type Config struct {
	// Width and Height are the output size in pixels.
	// Default: 64x64
	Width, Height int

	// PixelRange is the width of the distance range in output pixels.
	// The shape is framed with this much margin on every side.
	// Default: 4.0
	PixelRange float64

	// AngleThreshold is the minimum turning angle (in radians) that makes a
	// corner sharp enough to switch edge colour. Corners that turn by 90
	// degrees or more always count.
	// Default: 3.0
	AngleThreshold float64
}

// DefaultConfig returns the default MSDF configuration.
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         64,
		PixelRange:     4.0,
		AngleThreshold: 3.0,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Height <= 0 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.Width > MaxSize || c.Height > MaxSize {
		return &ConfigError{Field: "Size", Reason: "must be at most 4096"}
	}
	if !(c.PixelRange > 0) || math.IsInf(c.PixelRange, 0) {
		return &ConfigError{Field: "PixelRange", Reason: "must be positive"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}

// Vector is a 2D point or direction used in distance calculations.
type Vector struct {
	X, Y float64
}

// vec converts a path point.
func vec(p svgmsdf.Point) Vector {
	return Vector{p.X, p.Y}
}

// Add returns v + q.
func (v Vector) Add(q Vector) Vector {
	return Vector{v.X + q.X, v.Y + q.Y}
}

// Sub returns v - q.
func (v Vector) Sub(q Vector) Vector {
	return Vector{v.X - q.X, v.Y - q.Y}
}

// Mul returns v * scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and q.
func (v Vector) Dot(q Vector) float64 {
	return v.X*q.X + v.Y*q.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vector) Cross(q Vector) float64 {
	return v.X*q.Y - v.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared length (avoids sqrt).
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the same direction.
// Returns zero vector if length is zero.
func (v Vector) Normalized() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length}
}

// Lerp returns linear interpolation between v and q: v + t*(q-v).
func (v Vector) Lerp(q Vector, t float64) Vector {
	return Vector{
		v.X + t*(q.X-v.X),
		v.Y + t*(q.Y-v.Y),
	}
}

// Rect represents a 2D rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// SignedDistance represents a signed distance with additional metadata.
type SignedDistance struct {
	// Distance is the signed Euclidean distance. The sign follows the
	// edge direction; the generator orients it so positive is inside.
	Distance float64

	// Dot breaks ties between edges at equal distance, typically at a
	// shared endpoint. Smaller means the point lies more squarely in
	// front of the edge.
	Dot float64
}

// NewSignedDistance creates a new signed distance.
func NewSignedDistance(distance, dot float64) SignedDistance {
	return SignedDistance{Distance: distance, Dot: dot}
}

// Infinite returns a signed distance representing infinity.
func Infinite() SignedDistance {
	return SignedDistance{Distance: math.MaxFloat64, Dot: 0}
}

// IsCloserThan returns true if d is closer to the edge than other.
func (d SignedDistance) IsCloserThan(other SignedDistance) bool {
	absD := math.Abs(d.Distance)
	absO := math.Abs(other.Distance)
	if absD < absO {
		return true
	}
	if absD > absO {
		return false
	}
	return d.Dot < other.Dot
}

// Combine returns the closer distance of the two.
func (d SignedDistance) Combine(other SignedDistance) SignedDistance {
	if d.IsCloserThan(other) {
		return d
	}
	return other
}
