package pathdata

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// Tokenize splits path data into command letters and numbers.
//
// Whitespace and commas separate tokens and are not emitted. A number is
// the longest prefix matching a signed decimal with optional fraction and
// exponent, so "1.5.5" yields 1.5 and .5, and "10-5" yields 10 and -5. A
// sign or dot that does not start a number, and a number outside the
// float64 range, become numeric tokens with a NaN value. The tokenizer
// never fails.
func Tokenize(d string) []Token {
	b := []byte(d)
	tokens := make([]Token, 0, len(b)/2)

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case isSeparator(c):
			i++
		case isLetter(c):
			tokens = append(tokens, Token{Kind: TokenCommand, Letter: c, Offset: i})
			i++
		case isNumberStart(c):
			v, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				tokens = append(tokens, Token{Kind: TokenNumber, Value: math.NaN(), Offset: i})
				i++
				continue
			}
			if math.IsInf(v, 0) {
				// Out of float64 range, e.g. "1e400".
				v = math.NaN()
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Value: v, Offset: i})
			i += n
		default:
			tokens = append(tokens, Token{Kind: TokenInvalid, Letter: c, Offset: i})
			i++
		}
	}
	return tokens
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNumberStart(c byte) bool {
	return '0' <= c && c <= '9' || c == '.' || c == '+' || c == '-'
}
