package pathdata

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/svgmsdf"
)

func cmd(c byte, off int) Token { return Token{Kind: TokenCommand, Letter: c, Offset: off} }
func num(v float64, off int) Token { return Token{Kind: TokenNumber, Value: v, Offset: off} }

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{"empty", "", []Token{}},
		{"separators only", " ,\t\n", []Token{}},
		{"move", "M10,20", []Token{cmd('M', 0), num(10, 1), num(20, 4)}},
		{"spaces", "M 1 2", []Token{cmd('M', 0), num(1, 2), num(2, 4)}},
		{"sign splits", "l10-5", []Token{cmd('l', 0), num(10, 1), num(-5, 3)}},
		{"second dot splits", "L1.5.5", []Token{cmd('L', 0), num(1.5, 1), num(0.5, 4)}},
		{"exponent", "h1e2", []Token{cmd('h', 0), num(100, 1)}},
		{"negative exponent", "V-2.5E-1", []Token{cmd('V', 0), num(-0.25, 1)}},
		{"leading plus", "v+3", []Token{cmd('v', 0), num(3, 1)}},
		{"letters adjacent", "ZM0,0", []Token{cmd('Z', 0), cmd('M', 1), num(0, 2), num(0, 4)}},
		{"invalid byte", "M0#", []Token{cmd('M', 0), num(0, 1), {Kind: TokenInvalid, Letter: '#', Offset: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenizeMalformedNumber(t *testing.T) {
	got := Tokenize("L-,5")
	if len(got) != 3 {
		t.Fatalf("Tokenize() = %v, want 3 tokens", got)
	}
	if !got[1].IsNumber() || !math.IsNaN(got[1].Value) {
		t.Errorf("token 1 = %+v, want NaN number", got[1])
	}
	if got[2].Value != 5 || got[2].Offset != 3 {
		t.Errorf("token 2 = %+v, want 5 at offset 3", got[2])
	}
}

func TestTokenizeOutOfRange(t *testing.T) {
	tests := []struct {
		d   string
		off int
	}{
		{"L1e400,5", 1},
		{"L-1e400 5", 1},
		{"L 2 1e999", 4},
	}
	for _, tt := range tests {
		var got *Token
		tokens := Tokenize(tt.d)
		for i := range tokens {
			if tokens[i].Offset == tt.off {
				got = &tokens[i]
			}
		}
		if got == nil || !got.IsNumber() || !math.IsNaN(got.Value) {
			t.Errorf("Tokenize(%q) token at %d = %+v, want NaN number", tt.d, tt.off, got)
		}
	}
}

func TestRewriteOutOfRangeNumber(t *testing.T) {
	got, res := Rewrite("M0,0 L1e400,5 L2,2", svgmsdf.Translate(1, 1))
	if want := "M 1,1 L 3,3"; got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
	if n := res.Count(MalformedNumber); n != 1 {
		t.Errorf("MalformedNumber count = %d, want 1", n)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{cmd('C', 0), "C"},
		{num(1.25, 0), "1.25"},
		{num(math.NaN(), 0), "NaN"},
		{Token{Kind: TokenInvalid, Letter: '#'}, "'#'"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestIsSupported(t *testing.T) {
	for _, c := range []byte("MmLlHhVvCcZz") {
		if !IsSupported(c) {
			t.Errorf("IsSupported(%q) = false", c)
		}
	}
	for _, c := range []byte("QqSsTtAaXe") {
		if IsSupported(c) {
			t.Errorf("IsSupported(%q) = true", c)
		}
	}
}
