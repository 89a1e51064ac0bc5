package document

import "encoding/xml"

// Element is a node of the SVG element tree.
type Element struct {
	// Name is the local element name, e.g. "g" or "path".
	Name string

	// Attrs holds the attributes in document order.
	Attrs []xml.Attr

	// Children are the child elements in document order.
	Children []*Element

	parent *Element
}

// NewElement creates a detached element. Attributes are given as
// name/value pairs; a trailing name without value is ignored.
func NewElement(name string, attrs ...string) *Element {
	e := &Element{Name: name}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.SetAttr(attrs[i], attrs[i+1])
	}
	return e
}

// Parent returns the parent element, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Attr returns the value of the attribute with the given local name.
// Namespaced attributes (xlink:href and friends) are not matched.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the attribute with the given local name, replacing an
// existing value.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name.Space == "" && e.Attrs[i].Name.Local == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// AppendChild adds c as the last child of e, detaching it from its
// previous parent first. It returns c for chaining.
func (e *Element) AppendChild(c *Element) *Element {
	c.Remove()
	c.parent = e
	e.Children = append(e.Children, c)
	return c
}

// Remove detaches e from its parent. Removing a detached element is a no-op.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == e {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants in document order. Returning false
// from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first element named name in document order, starting
// with e itself, or nil.
func (e *Element) Find(name string) *Element {
	var found *Element
	e.Walk(func(n *Element) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}
