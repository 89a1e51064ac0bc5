package transform

import (
	"errors"
	"fmt"
)

// Sentinel errors for transform package.
var (
	// ErrUnresolved is returned by Resolver.Resolve when the oracle cannot
	// produce a matrix. The accompanying matrix is the identity.
	ErrUnresolved = errors.New("transform: chain could not be resolved")

	// ErrDegenerate is returned by an oracle when the composed matrix is
	// singular or has non-finite coefficients.
	ErrDegenerate = errors.New("transform: degenerate matrix")

	// ErrDisconnected is returned by an oracle when the leaf is not a
	// descendant of the root it is resolved against.
	ErrDisconnected = errors.New("transform: leaf is not attached to root")
)

// SyntaxError describes a malformed transform list.
type SyntaxError struct {
	// Input is the transform list being parsed.
	Input string

	// Offset is the byte offset of the problem within Input.
	Offset int

	// Reason describes what was expected.
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("transform: syntax error at offset %d in %q: %s", e.Offset, e.Input, e.Reason)
}
