package raster

// Similarity returns the percentage of pixels whose four channels are all
// exactly equal in a and b.
//
// Buffers with different dimensions, nil buffers and empty buffers score 0.
// There is no tolerance: a single differing channel value makes the pixel
// a mismatch.
func Similarity(a, b *Buffer) float64 {
	if a == nil || b == nil || !a.SameSize(b) || a.Len() == 0 {
		return 0
	}
	return float64(Matching(a, b)) / float64(a.Len()) * 100
}

// Matching counts the pixels that are identical in a and b. It returns 0
// for buffers of different dimensions.
func Matching(a, b *Buffer) int {
	if a == nil || b == nil || !a.SameSize(b) {
		return 0
	}
	n := 0
	for i := 0; i+3 < len(a.pix); i += 4 {
		if a.pix[i] == b.pix[i] && a.pix[i+1] == b.pix[i+1] &&
			a.pix[i+2] == b.pix[i+2] && a.pix[i+3] == b.pix[i+3] {
			n++
		}
	}
	return n
}
