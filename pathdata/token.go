package pathdata

import (
	"fmt"
	"math"
	"strconv"
)

// TokenKind classifies a path-data token.
type TokenKind uint8

const (
	// TokenCommand is a single ASCII letter. Letters outside the supported
	// command set are tokens too, so the interpreter can report them.
	TokenCommand TokenKind = iota

	// TokenNumber is a numeric literal. Malformed runs carry a NaN value.
	TokenNumber

	// TokenInvalid is a byte that is neither a letter, a number, whitespace
	// nor a comma.
	TokenInvalid
)

// String returns a string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenCommand:
		return "Command"
	case TokenNumber:
		return "Number"
	case TokenInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Token is one lexical element of path data.
type Token struct {
	Kind TokenKind

	// Letter is the command letter, or the offending byte of an invalid token.
	Letter byte

	// Value is the parsed number; NaN when the run did not parse.
	Value float64

	// Offset is the byte offset of the token in the input.
	Offset int
}

// IsNumber reports whether t is a numeric token.
func (t Token) IsNumber() bool {
	return t.Kind == TokenNumber
}

// String returns the token as it would appear in path data.
func (t Token) String() string {
	switch t.Kind {
	case TokenCommand:
		return string(t.Letter)
	case TokenNumber:
		if math.IsNaN(t.Value) {
			return "NaN"
		}
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	default:
		return fmt.Sprintf("%q", t.Letter)
	}
}

// IsSupported reports whether c is one of M m L l H h V v C c Z z.
func IsSupported(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}
