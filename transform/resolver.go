package transform

import (
	"fmt"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/document"
)

// Resolver turns a transform chain into one matrix by way of an Oracle.
// A Resolver holds no state between calls and is safe for concurrent use
// as long as concurrent calls do not share a document.
type Resolver struct {
	oracle Oracle
}

// NewResolver creates a resolver backed by oracle. A nil oracle selects
// [ListOracle].
func NewResolver(oracle Oracle) *Resolver {
	if oracle == nil {
		oracle = ListOracle{}
	}
	return &Resolver{oracle: oracle}
}

// DefaultResolver creates a resolver backed by [ListOracle].
func DefaultResolver() *Resolver {
	return NewResolver(nil)
}

// Resolve returns the matrix mapping path-local coordinates into root space
// for the given chain.
//
// An empty chain resolves to the identity without consulting the oracle.
// Otherwise the chain is mirrored as nested hidden containers under doc's
// root (or under a detached root when doc is nil), a synthetic path with
// data d is attached as the leaf and the oracle is queried. The transient
// containers are removed before Resolve returns.
//
// When the oracle fails Resolve returns the identity together with an error
// wrapping [ErrUnresolved]. The error is a diagnostic: callers are expected
// to carry on with the untransformed path.
func (r *Resolver) Resolve(doc *document.Document, chain document.Chain, d string) (svgmsdf.Matrix, error) {
	if chain.IsEmpty() {
		return svgmsdf.Identity(), nil
	}

	host := document.NewElement("svg")
	if doc != nil && doc.Root != nil {
		host = doc.Root
	}

	container := host.AppendChild(document.NewElement("g", "visibility", "hidden"))
	defer container.Remove()

	parent := container
	for _, decl := range chain {
		parent = parent.AppendChild(document.NewElement("g", "transform", decl))
	}
	leaf := parent.AppendChild(document.NewElement("path", "d", d))

	m, err := r.oracle.LeafTransform(leaf, container)
	if err != nil {
		svgmsdf.Logger().Warn("transform: chain unresolved, using identity",
			"chain", []string(chain), "error", err)
		return svgmsdf.Identity(), fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	svgmsdf.Logger().Debug("transform: chain resolved", "levels", len(chain), "matrix", m.String())
	return m, nil
}

// ResolveElement collects el's transform chain from the live document and
// resolves it against el's path data.
func (r *Resolver) ResolveElement(doc *document.Document, el *document.Element) (svgmsdf.Matrix, error) {
	d, _ := el.Attr("d")
	return r.Resolve(doc, document.CollectTransforms(el), d)
}
