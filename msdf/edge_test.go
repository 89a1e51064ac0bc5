package msdf

import (
	"math"
	"testing"
)

func TestEdgeTypeString(t *testing.T) {
	tests := []struct {
		et   EdgeType
		want string
	}{
		{EdgeLinear, "Linear"},
		{EdgeCubic, "Cubic"},
		{EdgeType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("EdgeType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

func TestEdgeColorString(t *testing.T) {
	tests := []struct {
		c    EdgeColor
		want string
	}{
		{ColorBlack, "Black"},
		{ColorRed, "Red"},
		{ColorGreen, "Green"},
		{ColorBlue, "Blue"},
		{ColorYellow, "Yellow"},
		{ColorCyan, "Cyan"},
		{ColorMagenta, "Magenta"},
		{ColorWhite, "White"},
		{EdgeColor(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("EdgeColor(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestEdgeColorChannels(t *testing.T) {
	tests := []struct {
		c                EdgeColor
		hasR, hasG, hasB bool
	}{
		{ColorBlack, false, false, false},
		{ColorRed, true, false, false},
		{ColorGreen, false, true, false},
		{ColorBlue, false, false, true},
		{ColorYellow, true, true, false},
		{ColorCyan, false, true, true},
		{ColorMagenta, true, false, true},
		{ColorWhite, true, true, true},
	}

	for _, tt := range tests {
		if tt.c.HasRed() != tt.hasR || tt.c.HasGreen() != tt.hasG || tt.c.HasBlue() != tt.hasB {
			t.Errorf("EdgeColor(%v) channels = %v/%v/%v, want %v/%v/%v", tt.c,
				tt.c.HasRed(), tt.c.HasGreen(), tt.c.HasBlue(), tt.hasR, tt.hasG, tt.hasB)
		}
	}
}

func TestEdgeEndpoints(t *testing.T) {
	line := NewLinearEdge(Vector{0, 0}, Vector{10, 10})
	cubic := NewCubicEdge(Vector{0, 0}, Vector{1, 2}, Vector{3, 4}, Vector{5, 6})

	if line.StartPoint() != (Vector{0, 0}) || line.EndPoint() != (Vector{10, 10}) {
		t.Errorf("line endpoints = %v, %v", line.StartPoint(), line.EndPoint())
	}
	if cubic.StartPoint() != (Vector{0, 0}) || cubic.EndPoint() != (Vector{5, 6}) {
		t.Errorf("cubic endpoints = %v, %v", cubic.StartPoint(), cubic.EndPoint())
	}
	if line.Color != ColorWhite || cubic.Color != ColorWhite {
		t.Errorf("new edges should be White, got %v and %v", line.Color, cubic.Color)
	}
	if mid := line.PointAt(0.5); mid != (Vector{5, 5}) {
		t.Errorf("line.PointAt(0.5) = %v, want (5,5)", mid)
	}
	if p := cubic.PointAt(1); p.Sub(Vector{5, 6}).Length() > 1e-12 {
		t.Errorf("cubic.PointAt(1) = %v, want (5,6)", p)
	}
}

func TestEdgeDirectionAt(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		t    float64
		want Vector
	}{
		{"line", NewLinearEdge(Vector{0, 0}, Vector{3, 4}), 0.7, Vector{0.6, 0.8}},
		{"cubic start", NewCubicEdge(Vector{0, 0}, Vector{1, 0}, Vector{1, 1}, Vector{2, 1}), 0, Vector{1, 0}},
		{"cubic end", NewCubicEdge(Vector{0, 0}, Vector{1, 0}, Vector{1, 1}, Vector{2, 1}), 1, Vector{1, 0}},
		{"control on start", NewCubicEdge(Vector{0, 0}, Vector{0, 0}, Vector{0, 5}, Vector{5, 5}), 0, Vector{0, 1}},
		{"control on end", NewCubicEdge(Vector{0, 0}, Vector{5, 0}, Vector{5, 5}, Vector{5, 5}), 1, Vector{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.edge.DirectionAt(tt.t).Normalized()
			if got.Sub(tt.want).Length() > 1e-9 {
				t.Errorf("DirectionAt(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestEdgeSignedDistance(t *testing.T) {
	line := NewLinearEdge(Vector{0, 0}, Vector{10, 0})
	straightCubic := NewCubicEdge(Vector{0, 0}, Vector{10.0 / 3, 0}, Vector{20.0 / 3, 0}, Vector{10, 0})
	arch := NewCubicEdge(Vector{0, 0}, Vector{0, -10}, Vector{10, -10}, Vector{10, 0})

	tests := []struct {
		name    string
		edge    Edge
		p       Vector
		want    float64
		wantDot float64
	}{
		{"line left side", line, Vector{5, 5}, 5, 0},
		{"line right side", line, Vector{5, -5}, -5, 0},
		{"line beyond start", line, Vector{-3, 4}, 5, 0.6},
		{"line beyond end", line, Vector{13, 0}, 3, 1},
		{"straight cubic left", straightCubic, Vector{5, 5}, 5, 0},
		{"straight cubic right", straightCubic, Vector{5, -2}, -2, 0},
		{"arch apex", arch, Vector{5, -10}, -2.5, 0},
		{"arch chord midpoint", arch, Vector{5, 0}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd := tt.edge.SignedDistance(tt.p)
			if math.Abs(sd.Distance-tt.want) > 1e-6 {
				t.Errorf("SignedDistance(%v).Distance = %v, want %v", tt.p, sd.Distance, tt.want)
			}
			if math.Abs(sd.Dot-tt.wantDot) > 1e-6 {
				t.Errorf("SignedDistance(%v).Dot = %v, want %v", tt.p, sd.Dot, tt.wantDot)
			}
		})
	}
}

func TestSignedDistanceCombine(t *testing.T) {
	near := NewSignedDistance(-1, 0)
	far := NewSignedDistance(2, 0)
	if got := far.Combine(near); got != near {
		t.Errorf("Combine() = %v, want %v", got, near)
	}
	// Equal distances fall back to the tie-breaker.
	square := NewSignedDistance(1, 0.1)
	oblique := NewSignedDistance(-1, 0.9)
	if got := oblique.Combine(square); got != square {
		t.Errorf("Combine() tie = %v, want %v", got, square)
	}
	if !near.IsCloserThan(Infinite()) {
		t.Error("finite distance should be closer than Infinite()")
	}
}

func TestEdgeBounds(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		want Rect
	}{
		{"line", NewLinearEdge(Vector{5, -1}, Vector{-2, 3}), Rect{-2, -1, 5, 3}},
		{"arch", NewCubicEdge(Vector{0, 0}, Vector{0, -10}, Vector{10, -10}, Vector{10, 0}), Rect{0, -7.5, 10, 0}},
		{"s curve", NewCubicEdge(Vector{0, 0}, Vector{10, 0}, Vector{-10, 10}, Vector{0, 10}), Rect{-2.886751345948129, 0, 2.886751345948129, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.edge.Bounds()
			if math.Abs(got.MinX-tt.want.MinX) > 1e-9 || math.Abs(got.MinY-tt.want.MinY) > 1e-9 ||
				math.Abs(got.MaxX-tt.want.MaxX) > 1e-9 || math.Abs(got.MaxY-tt.want.MaxY) > 1e-9 {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCubicDistanceMatchesSampling(t *testing.T) {
	curves := []cubic{
		{{0, 0}, {0, -10}, {10, -10}, {10, 0}},
		{{0, 0}, {10, 0}, {-10, 10}, {0, 10}},
	}
	points := []Vector{{5, -3}, {-4, 2}, {12, 7}, {1, 5}}

	for _, c := range curves {
		for _, p := range points {
			want := math.MaxFloat64
			for i := 0; i <= 10000; i++ {
				want = min(want, p.Sub(c.at(float64(i)/10000)).Length())
			}
			if got := math.Abs(c.distance(p).Distance); math.Abs(got-want) > 1e-3 {
				t.Errorf("cubic %v distance to %v = %v, want %v", c, p, got, want)
			}
		}
	}
}
