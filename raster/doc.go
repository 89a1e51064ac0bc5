// Package raster holds the RGBA pixel buffer shared by the generator, the
// preview renderer and the comparator.
//
// A Buffer is width×height pixels, 4 bytes (R, G, B, A) each, row-major with
// the origin at the top left. Buffers convert to and from image.Image, encode
// as PNG and decode reference images in PNG, JPEG, BMP, TIFF or WebP.
//
// Similarity scores two buffers by exact per-pixel equality:
//
//	score := raster.Similarity(generated, reference) // 0..100
//
// Buffers of different dimensions score 0.
package raster
