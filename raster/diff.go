package raster

import (
	"fmt"

	"github.com/anthonynsimon/bild/blend"
)

// Diff returns the per-channel absolute difference of a and b. Identical
// pixels come out black and opaque. The buffers must share dimensions.
func Diff(a, b *Buffer) (*Buffer, error) {
	if !a.SameSize(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.width, a.height, b.width, b.height)
	}
	return FromImage(blend.Difference(a.ToImage(), b.ToImage())), nil
}
