package pathdata

import (
	"github.com/gogpu/svgmsdf"
)

// Sink receives interpreted path segments. All points are absolute and
// already mapped through the matrix given to Walk.
type Sink interface {
	MoveTo(p svgmsdf.Point)
	LineTo(p svgmsdf.Point)
	CubicTo(c1, c2, p svgmsdf.Point)
	Close()
}

// discard is a Sink that drops every segment.
type discard struct{}

func (discard) MoveTo(svgmsdf.Point) {}
func (discard) LineTo(svgmsdf.Point) {}
func (discard) CubicTo(_, _, _ svgmsdf.Point) {}
func (discard) Close() {}

// Walk interprets path data and reports its segments to sink.
//
// Coordinates are accumulated in path-local units; only the points handed
// to sink are transformed by m. Relative commands add to the current point,
// Z resets the current point to the start of the subpath, and bare
// coordinate pairs after M are implicit line-to's (relative after m).
// Walk always consumes the whole input; problems end up in the returned
// Result.
func Walk(d string, m svgmsdf.Matrix, sink Sink) Result {
	return WalkTokens(Tokenize(d), m, sink)
}

// WalkTokens is like Walk for an already tokenized path.
func WalkTokens(tokens []Token, m svgmsdf.Matrix, sink Sink) Result {
	in := interpreter{tokens: tokens, m: m, sink: sink}
	in.run()

	log := svgmsdf.Logger()
	for _, d := range in.res.Diagnostics {
		log.Warn("pathdata: "+d.Kind.String(), "command", string(rune(d.Command)), "offset", d.Offset)
	}
	in.res.End = in.cur
	return in.res
}

// groupStatus is the outcome of reading one parameter group.
type groupStatus uint8

const (
	groupOK     groupStatus = iota
	groupNone               // next token is not a number; nothing consumed
	groupBroken             // incomplete or malformed; diagnostic recorded
)

// interpreter holds the state of one Walk call. Points are path-local.
type interpreter struct {
	tokens []Token
	pos    int
	m      svgmsdf.Matrix
	sink   Sink

	cur   svgmsdf.Point
	start svgmsdf.Point

	args [6]float64
	res  Result
}

func (in *interpreter) run() {
	for in.pos < len(in.tokens) {
		tok := in.tokens[in.pos]
		switch tok.Kind {
		case TokenCommand:
			in.pos++
			in.command(tok)
		case TokenNumber:
			in.report(StrayNumber, 0, tok.Offset)
			in.skipNumbers()
		default:
			in.report(InvalidCharacter, tok.Letter, tok.Offset)
			in.pos++
		}
	}
}

// command executes one command letter including its implicit repetitions.
func (in *interpreter) command(tok Token) {
	c := tok.Letter
	rel := 'a' <= c && c <= 'z'

	switch c {
	case 'M', 'm':
		if !in.first(c, tok.Offset, 2) {
			return
		}
		p := in.point(0, rel)
		in.cur, in.start = p, p
		in.emitMove(p)
		// Subsequent pairs are implicit line-to's of the same relativity.
		in.repeat(c, 2, func() { in.lineTo(in.point(0, rel)) })

	case 'L', 'l':
		in.repeatAtLeastOnce(c, tok.Offset, 2, func() { in.lineTo(in.point(0, rel)) })

	case 'H', 'h':
		in.repeatAtLeastOnce(c, tok.Offset, 1, func() {
			x := in.args[0]
			if rel {
				x += in.cur.X
			}
			in.lineTo(svgmsdf.Pt(x, in.cur.Y))
		})

	case 'V', 'v':
		in.repeatAtLeastOnce(c, tok.Offset, 1, func() {
			y := in.args[0]
			if rel {
				y += in.cur.Y
			}
			in.lineTo(svgmsdf.Pt(in.cur.X, y))
		})

	case 'C', 'c':
		in.repeatAtLeastOnce(c, tok.Offset, 6, func() {
			c1 := in.point(0, rel)
			c2 := in.point(2, rel)
			p := in.point(4, rel)
			in.cur = p
			in.res.Segments++
			in.sink.CubicTo(in.m.TransformPoint(c1), in.m.TransformPoint(c2), in.m.TransformPoint(p))
		})

	case 'Z', 'z':
		in.cur = in.start
		in.res.Segments++
		in.sink.Close()

	default:
		in.report(UnsupportedCommand, c, tok.Offset)
		in.skipNumbers()
	}
}

// first reads the mandatory first parameter group of a command.
func (in *interpreter) first(c byte, offset, n int) bool {
	switch in.group(c, n) {
	case groupOK:
		return true
	case groupNone:
		in.report(MissingParameters, c, offset)
	}
	return false
}

// repeatAtLeastOnce runs fn for the mandatory first group and every
// following complete group.
func (in *interpreter) repeatAtLeastOnce(c byte, offset, n int, fn func()) {
	if !in.first(c, offset, n) {
		return
	}
	fn()
	in.repeat(c, n, fn)
}

// repeat runs fn for every following complete group of n numbers.
func (in *interpreter) repeat(c byte, n int, fn func()) {
	for in.group(c, n) == groupOK {
		fn()
	}
}

// group reads n numbers into in.args.
func (in *interpreter) group(c byte, n int) groupStatus {
	if in.pos >= len(in.tokens) || !in.tokens[in.pos].IsNumber() {
		return groupNone
	}
	for i := 0; i < n; i++ {
		if in.pos >= len(in.tokens) || !in.tokens[in.pos].IsNumber() {
			in.report(MissingParameters, c, in.offset())
			return groupBroken
		}
		tok := in.tokens[in.pos]
		if tok.Value != tok.Value { // NaN
			in.report(MalformedNumber, c, tok.Offset)
			in.skipNumbers()
			return groupBroken
		}
		in.args[i] = tok.Value
		in.pos++
	}
	return groupOK
}

// point returns the coordinate pair at args[i], args[i+1], made absolute
// against the current point when rel is set.
func (in *interpreter) point(i int, rel bool) svgmsdf.Point {
	p := svgmsdf.Pt(in.args[i], in.args[i+1])
	if rel {
		p = p.Add(in.cur)
	}
	return p
}

func (in *interpreter) lineTo(p svgmsdf.Point) {
	in.cur = p
	in.res.Segments++
	in.sink.LineTo(in.m.TransformPoint(p))
}

func (in *interpreter) emitMove(p svgmsdf.Point) {
	in.res.Segments++
	in.sink.MoveTo(in.m.TransformPoint(p))
}

// skipNumbers advances past numeric tokens up to the next non-number.
func (in *interpreter) skipNumbers() {
	for in.pos < len(in.tokens) && in.tokens[in.pos].IsNumber() {
		in.pos++
	}
}

// offset returns the byte offset of the current token, or one past the
// last token at the end of input.
func (in *interpreter) offset() int {
	if in.pos < len(in.tokens) {
		return in.tokens[in.pos].Offset
	}
	if len(in.tokens) == 0 {
		return 0
	}
	return in.tokens[len(in.tokens)-1].Offset + 1
}

func (in *interpreter) report(kind DiagnosticKind, c byte, offset int) {
	in.res.Diagnostics = append(in.res.Diagnostics, Diagnostic{Kind: kind, Command: c, Offset: offset})
}
