package raster

import "errors"

// Sentinel errors for raster package.
var (
	// ErrInvalidSize is returned when dimensions are not positive or the
	// pixel slice does not hold exactly width*height*4 bytes.
	ErrInvalidSize = errors.New("raster: invalid buffer size")

	// ErrSizeMismatch is returned when two buffers must share dimensions
	// and do not.
	ErrSizeMismatch = errors.New("raster: buffer dimensions differ")

	// ErrNotImage is returned by Decode for data that is not a raster image.
	ErrNotImage = errors.New("raster: not an image")
)
