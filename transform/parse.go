package transform

import (
	"math"

	"github.com/gogpu/svgmsdf"
	"github.com/tdewolff/parse/v2/strconv"
)

// argCounts lists the accepted argument counts per transform function.
var argCounts = map[string][]int{
	"matrix":    {6},
	"translate": {1, 2},
	"scale":     {1, 2},
	"rotate":    {1, 3},
	"skewX":     {1},
	"skewY":     {1},
}

// Parse parses an SVG transform list such as
// "translate(10 20) rotate(45, 5, 5)" and returns the composed matrix.
// Functions compose left to right, each one nested inside the previous.
// Angles are in degrees. An empty or blank list is the identity.
func Parse(s string) (svgmsdf.Matrix, error) {
	p := parser{in: s, b: []byte(s)}
	m := svgmsdf.Identity()

	p.skipSpace()
	for p.pos < len(p.b) {
		fn, args, err := p.function()
		if err != nil {
			return svgmsdf.Identity(), err
		}
		m = m.Multiply(apply(fn, args))

		p.skipCommaSpace()
	}
	return m, nil
}

// apply builds the matrix of a single, already validated transform function.
func apply(fn string, a []float64) svgmsdf.Matrix {
	switch fn {
	case "matrix":
		return svgmsdf.NewMatrix(a[0], a[1], a[2], a[3], a[4], a[5])
	case "translate":
		if len(a) == 1 {
			return svgmsdf.Translate(a[0], 0)
		}
		return svgmsdf.Translate(a[0], a[1])
	case "scale":
		if len(a) == 1 {
			return svgmsdf.Scale(a[0], a[0])
		}
		return svgmsdf.Scale(a[0], a[1])
	case "rotate":
		r := svgmsdf.Rotate(radians(a[0]))
		if len(a) == 3 {
			return svgmsdf.Translate(a[1], a[2]).Multiply(r).Multiply(svgmsdf.Translate(-a[1], -a[2]))
		}
		return r
	case "skewX":
		return svgmsdf.SkewX(radians(a[0]))
	case "skewY":
		return svgmsdf.SkewY(radians(a[0]))
	}
	return svgmsdf.Identity()
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

type parser struct {
	in  string
	b   []byte
	pos int
}

func (p *parser) fail(reason string) error {
	return &SyntaxError{Input: p.in, Offset: p.pos, Reason: reason}
}

// function parses name "(" args ")" at the current position.
func (p *parser) function() (string, []float64, error) {
	start := p.pos
	for p.pos < len(p.b) && isLetter(p.b[p.pos]) {
		p.pos++
	}
	name := p.in[start:p.pos]
	counts, ok := argCounts[name]
	if !ok {
		p.pos = start
		return "", nil, p.fail("unknown transform function")
	}

	p.skipSpace()
	if p.pos >= len(p.b) || p.b[p.pos] != '(' {
		return "", nil, p.fail("expected '('")
	}
	p.pos++

	var args []float64
	p.skipSpace()
	for p.pos < len(p.b) && p.b[p.pos] != ')' {
		if len(args) > 0 {
			p.skipCommaSpace()
		}
		v, n := strconv.ParseFloat(p.b[p.pos:])
		if n == 0 {
			return "", nil, p.fail("expected number")
		}
		args = append(args, v)
		p.pos += n
		p.skipSpace()
	}
	if p.pos >= len(p.b) {
		return "", nil, p.fail("expected ')'")
	}
	p.pos++

	for _, c := range counts {
		if c == len(args) {
			return name, args, nil
		}
	}
	return "", nil, p.fail(name + ": wrong number of arguments")
}

func (p *parser) skipSpace() {
	for p.pos < len(p.b) && isSpace(p.b[p.pos]) {
		p.pos++
	}
}

func (p *parser) skipCommaSpace() {
	p.skipSpace()
	if p.pos < len(p.b) && p.b[p.pos] == ',' {
		p.pos++
		p.skipSpace()
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
