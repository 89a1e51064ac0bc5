// Package pipeline runs the end-to-end generation flow for an SVG icon.
//
// The flow is:
//
//	parse document -> first path -> transform chain -> resolve matrix
//	    -> rewrite path data -> generate MSDF -> optional comparison
//
// Geometry problems along the way (unsupported commands, unresolvable
// transforms) are collected in [Result] and logged; only a missing path,
// I/O and the generator itself produce errors.
package pipeline
