package svgmsdf

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(10, 0), Pt(0, 10)},
		{"rotate 180deg", Rotate(math.Pi), Pt(1, 2), Pt(-1, -2)},
		{"skewX 45deg", SkewX(math.Pi / 4), Pt(0, 2), Pt(2, 2)},
		{"skewY 45deg", SkewY(math.Pi / 4), Pt(2, 0), Pt(2, 2)},
		{"svg matrix", NewMatrix(1, 2, 3, 4, 5, 6), Pt(1, 1), Pt(9, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointsClose(got, tt.want) {
				t.Errorf("%v.TransformPoint(%v) = %v, want %v", tt.m, tt.in, got, tt.want)
			}
		})
	}
}

func TestMultiplyAppliesRightOperandFirst(t *testing.T) {
	// translate(10,0) enclosing scale(2): scale first, then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if want := Pt(12, 2); !pointsClose(got, want) {
		t.Errorf("Translate*Scale applied to (1,1) = %v, want %v", got, want)
	}

	m = Scale(2, 2).Multiply(Translate(10, 0))
	got = m.TransformPoint(Pt(1, 1))
	if want := Pt(22, 2); !pointsClose(got, want) {
		t.Errorf("Scale*Translate applied to (1,1) = %v, want %v", got, want)
	}
}

func TestMultiplyIdentity(t *testing.T) {
	m := NewMatrix(1.5, 0.2, -0.3, 0.9, 7, 8)
	if got := Identity().Multiply(m); got != m {
		t.Errorf("Identity*m = %v, want %v", got, m)
	}
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m*Identity = %v, want %v", got, m)
	}
}

func TestInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported a singular matrix")
	}
	p := Pt(3, -4)
	if got := inv.TransformPoint(m.TransformPoint(p)); !pointsClose(got, p) {
		t.Errorf("inverse round trip = %v, want %v", got, p)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0,1).Invert() ok = true, want false")
	}

	tiny := Scale(1e-7, 1e-7)
	inv, ok = tiny.Invert()
	if !ok {
		t.Fatal("Scale(1e-7,1e-7).Invert() reported a singular matrix")
	}
	if got := inv.TransformPoint(tiny.TransformPoint(p)); !pointsClose(got, p) {
		t.Errorf("tiny inverse round trip = %v, want %v", got, p)
	}
}

func TestMatrixPredicates(t *testing.T) {
	tests := []struct {
		name        string
		m           Matrix
		identity    bool
		translation bool
		finite      bool
	}{
		{"identity", Identity(), true, true, true},
		{"translation", Translate(1, 2), false, true, true},
		{"zero translation", Translate(0, 0), true, true, true},
		{"scale", Scale(2, 2), false, false, true},
		{"zero value", Matrix{}, false, false, true},
		{"nan", Matrix{A: math.NaN(), D: 1}, false, false, false},
		{"inf", Translate(math.Inf(1), 0), false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
			if got := tt.m.IsTranslation(); got != tt.translation {
				t.Errorf("IsTranslation() = %v, want %v", got, tt.translation)
			}
			if got := tt.m.IsFinite(); got != tt.finite {
				t.Errorf("IsFinite() = %v, want %v", got, tt.finite)
			}
		})
	}
}

func TestMatrixString(t *testing.T) {
	if got, want := NewMatrix(1, 0, 0, 1, 10, 20).String(), "matrix(1 0 0 1 10 20)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
