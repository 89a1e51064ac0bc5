package pathdata

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/svgmsdf"
)

// Rewrite maps path data through m and returns it in absolute form.
//
// The output uses only M, L, C and Z with comma-joined coordinate pairs
// separated by single spaces, for example "M 10,20 L 30,40 Z". H and V are
// lowered to L. When m is the identity the input is returned unchanged
// and Result.Passthrough is set; the path is still interpreted so that
// its diagnostics are reported.
func Rewrite(d string, m svgmsdf.Matrix) (string, Result) {
	if m.IsIdentity() {
		res := Walk(d, m, discard{})
		res.Passthrough = true
		return d, res
	}
	var w Writer
	res := Walk(d, m, &w)
	return w.String(), res
}

// Writer is a Sink that serializes segments as absolute path data.
type Writer struct {
	sb strings.Builder
}

// MoveTo implements Sink.
func (w *Writer) MoveTo(p svgmsdf.Point) {
	w.cmd('M')
	w.pair(p)
}

// LineTo implements Sink.
func (w *Writer) LineTo(p svgmsdf.Point) {
	w.cmd('L')
	w.pair(p)
}

// CubicTo implements Sink.
func (w *Writer) CubicTo(c1, c2, p svgmsdf.Point) {
	w.cmd('C')
	w.pair(c1)
	w.sb.WriteByte(' ')
	w.pair(c2)
	w.sb.WriteByte(' ')
	w.pair(p)
}

// Close implements Sink.
func (w *Writer) Close() {
	if w.sb.Len() > 0 {
		w.sb.WriteByte(' ')
	}
	w.sb.WriteByte('Z')
}

// String returns the path data written so far.
func (w *Writer) String() string {
	return w.sb.String()
}

func (w *Writer) cmd(c byte) {
	if w.sb.Len() > 0 {
		w.sb.WriteByte(' ')
	}
	w.sb.WriteByte(c)
	w.sb.WriteByte(' ')
}

func (w *Writer) pair(p svgmsdf.Point) {
	w.sb.WriteString(FormatNumber(p.X))
	w.sb.WriteByte(',')
	w.sb.WriteString(FormatNumber(p.Y))
}

// FormatNumber renders v as the shortest decimal that round-trips.
//
// Plain notation is used for magnitudes in [1e-6, 1e21); exponent notation
// outside that range, without leading exponent zeros ("6.1e-7", "1e+21").
// Negative zero prints as "0".
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
