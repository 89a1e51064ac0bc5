package pathdata

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgmsdf"
)

func TestRewriteIdentityPassthrough(t *testing.T) {
	inputs := []string{
		"",
		"M0,0 1,1 2,2",
		"m10 20l5-5h3v-2z",
		"M0,0 Q1,1 2,2 garbage###",
		"  M 1.50000 , 2e0  ",
	}
	for _, d := range inputs {
		got, res := Rewrite(d, svgmsdf.Identity())
		if got != d {
			t.Errorf("Rewrite(%q, identity) = %q, want input unchanged", d, got)
		}
		if !res.Passthrough {
			t.Errorf("Rewrite(%q, identity) Passthrough = false, want true", d)
		}
	}
}

func TestRewriteIdentityDiagnostics(t *testing.T) {
	tests := []struct {
		d    string
		want []DiagnosticKind
	}{
		{"M0,0 1,1 2,2", nil},
		{"M0,0 L10,0 Q5,5 0,10 L10,10 Z", []DiagnosticKind{UnsupportedCommand}},
		{"M0,0 L1e400,5", []DiagnosticKind{MalformedNumber}},
	}
	for _, tt := range tests {
		got, res := Rewrite(tt.d, svgmsdf.Identity())
		if got != tt.d {
			t.Errorf("Rewrite(%q, identity) = %q, want input unchanged", tt.d, got)
		}
		var kinds []DiagnosticKind
		for _, d := range res.Diagnostics {
			kinds = append(kinds, d.Kind)
		}
		if diff := cmp.Diff(tt.want, kinds); diff != "" {
			t.Errorf("Rewrite(%q, identity) diagnostics mismatch (-want +got):\n%s", tt.d, diff)
		}
	}
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		d    string
		m    svgmsdf.Matrix
		want string
	}{
		{"implicit repetition", "M0,0 1,1 2,2", svgmsdf.Translate(1, 0), "M 1,0 L 2,1 L 3,2"},
		{"cubic translated", "M0,0 C1,1 2,2 3,3 Z", svgmsdf.Translate(10, 5), "M 10,5 C 11,6 12,7 13,8 Z"},
		{"relative cubic translated", "m1,1 c1,0 1,1 0,1", svgmsdf.Translate(-1, -1), "M 0,0 C 1,0 1,1 0,1"},
		{"horizontal lowered", "M1,1 H3 V4", svgmsdf.Scale(2, 2), "M 2,2 L 6,2 L 6,8"},
		{"close then relative", "M0,0 L10,0 Z l5,5", svgmsdf.Translate(0, 1), "M 0,1 L 10,1 Z L 5,6"},
		{"fractions", "M0.5,0.25", svgmsdf.Scale(3, 2), "M 1.5,0.5"},
		{"unsupported dropped", "M0,0 Q1,1 2,2 L3,3", svgmsdf.Translate(1, 1), "M 1,1 L 4,4"},
		{"empty", "", svgmsdf.Translate(1, 1), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := Rewrite(tt.d, tt.m)
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.d, got, tt.want)
			}
			if res.Passthrough {
				t.Errorf("Rewrite(%q) Passthrough = true for non-identity matrix", tt.d)
			}
		})
	}
}

func TestRewriteHorizontalUnderRotation(t *testing.T) {
	got, _ := Rewrite("M0,0 H10", svgmsdf.Rotate(math.Pi/2))
	fields := strings.Fields(got)
	if len(fields) != 4 || fields[0] != "M" || fields[2] != "L" {
		t.Fatalf("Rewrite() = %q, want M and L commands", got)
	}
	xy := strings.Split(fields[3], ",")
	x, _ := strconv.ParseFloat(xy[0], 64)
	y, _ := strconv.ParseFloat(xy[1], 64)
	if math.Abs(x) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("L point = (%g,%g), want rotate(90) of (10,0) = (0,10)", x, y)
	}
}

func TestRewriteReportsDiagnostics(t *testing.T) {
	_, res := Rewrite("M0,0 A1,1 0 0 1 2,2", svgmsdf.Translate(1, 1))
	if res.Count(UnsupportedCommand) != 1 {
		t.Errorf("diagnostics = %v, want one UnsupportedCommand", res.Diagnostics)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{0.30000000000000004, "0.30000000000000004"},
		{123456789, "123456789"},
		{1e-6, "0.000001"},
		{6.1e-7, "6.1e-7"},
		{-1.5e-10, "-1.5e-10"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{2.5e300, "2.5e+300"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
