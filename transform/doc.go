// Package transform resolves a chain of SVG transform declarations to a
// single affine matrix.
//
// Resolution mirrors what a browser does with getCTM: the chain is rebuilt
// as a transient, hidden hierarchy of containers under the live document,
// a synthetic path carrying the original path data is attached as the leaf,
// and an [Oracle] is asked for the leaf's transform relative to the
// outermost container. The hierarchy is removed again on every exit path.
//
// The default oracle, [ListOracle], parses the SVG transform-list grammar
// (matrix, translate, scale, rotate, skewX, skewY) with [Parse] and composes
// the levels root-to-leaf by right multiplication.
package transform
