// Package preview renders a whole SVG document into a raster buffer.
//
// The preview shows the source document as a browser would draw it, with
// fills, strokes and gradients, next to the generated distance field. It
// is independent of the geometry pipeline and is backed by oksvg.
package preview
