package transform

import (
	"fmt"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/document"
)

// Oracle resolves nested transform declarations to a matrix.
//
// Implementations receive a leaf element and one of its ancestors and
// return the matrix mapping leaf-local coordinates into the ancestor's
// user space. The ancestor's own transform attribute is not part of the
// result. An error means no matrix could be produced.
type Oracle interface {
	LeafTransform(leaf, root *document.Element) (svgmsdf.Matrix, error)
}

// ListOracle is the default Oracle. It parses each level's transform
// attribute with [Parse] and multiplies the levels root-to-leaf.
//
// A level whose attribute does not parse contributes the identity, the way
// a user agent ignores an invalid presentation attribute; the problem is
// logged at warning level. A composed matrix that is singular or not
// finite is reported as [ErrDegenerate].
type ListOracle struct{}

// LeafTransform implements Oracle.
func (ListOracle) LeafTransform(leaf, root *document.Element) (svgmsdf.Matrix, error) {
	if leaf == nil || root == nil || !root.Contains(leaf) {
		return svgmsdf.Identity(), ErrDisconnected
	}

	var levels []*document.Element
	for n := leaf; n != root; n = n.Parent() {
		levels = append(levels, n)
	}

	m := svgmsdf.Identity()
	for i := len(levels) - 1; i >= 0; i-- {
		v, ok := levels[i].Attr("transform")
		if !ok {
			continue
		}
		lm, err := Parse(v)
		if err != nil {
			svgmsdf.Logger().Warn("transform: ignoring invalid declaration",
				"element", levels[i].Name, "transform", v, "error", err)
			continue
		}
		m = m.Multiply(lm)
	}

	if !m.IsFinite() {
		return svgmsdf.Identity(), fmt.Errorf("%w: %v", ErrDegenerate, m)
	}
	if _, ok := m.Invert(); !ok {
		return svgmsdf.Identity(), fmt.Errorf("%w: %v is not invertible", ErrDegenerate, m)
	}
	return m, nil
}
