// Package pathdata tokenizes SVG path data and rewrites it into absolute,
// pre-transformed form.
//
// The supported command set is M, L, H, V, C and Z in both absolute
// (uppercase) and relative (lowercase) form. [Walk] interprets a path and
// reports every segment to a [Sink] with its end points already mapped
// through an affine matrix; [Rewrite] uses it to produce a canonical path
// string.
//
// # Output alphabet
//
// Rewritten paths only contain M, L, C and Z with absolute coordinates. H
// and V are lowered to L because a rotation or skew can turn a horizontal
// or vertical line into an arbitrary one. Quadratic, smooth and arc
// commands are not supported: they are reported as diagnostics and their
// arguments are skipped.
//
// # Diagnostics
//
// Interpretation never fails. Problems are collected in [Result] and logged
// at warning level; the output is always syntactically valid path data.
package pathdata
