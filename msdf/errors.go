package msdf

import "errors"

// Sentinel errors for msdf package.
var (
	// ErrEmptyShape is returned when the path data yields no edges.
	ErrEmptyShape = errors.New("msdf: path has no edges")

	// ErrRangeTooLarge is returned when twice the pixel range does not
	// leave room for the shape in the output.
	ErrRangeTooLarge = errors.New("msdf: cannot fit the pixel range in the output size")
)
