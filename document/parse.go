package document

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/htmlindex"
)

// sniffLen is the number of leading bytes inspected for binary signatures.
const sniffLen = 262

// Document is a parsed SVG document.
type Document struct {
	// Root is the outermost svg element.
	Root *Element
}

// Parse reads an SVG document.
//
// Binary files with a known signature (PNG, JPEG, archives...) are rejected
// with [ErrNotSVG] before any XML decoding happens. Non-UTF-8 documents are
// decoded according to their XML declaration.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes is like [Parse] for an in-memory document.
func ParseBytes(data []byte) (*Document, error) {
	head := data[:min(len(data), sniffLen)]
	if kind, _ := filetype.Match(head); kind != filetype.Unknown {
		return nil, fmt.Errorf("%w: detected %s", ErrNotSVG, kind.MIME.Value)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader

	var root, cur *Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document: decode token: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Attrs: copyAttrs(t.Attr)}
			if cur == nil {
				if root != nil {
					return nil, fmt.Errorf("document: second root element <%s>", t.Name.Local)
				}
				root = el
			} else {
				cur.AppendChild(el)
			}
			cur = el
		case xml.EndElement:
			if cur != nil {
				cur = cur.parent
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	if root.Name != "svg" {
		return nil, fmt.Errorf("%w: root element is <%s>", ErrNotSVG, root.Name)
	}
	return &Document{Root: root}, nil
}

// FirstPath returns the first path element in document order, or nil when
// the document has none.
func (d *Document) FirstPath() *Element {
	return d.Root.Find("path")
}

// copyAttrs detaches attributes from the decoder's internal buffers and
// drops namespace declarations.
func copyAttrs(attrs []xml.Attr) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, label)
	}
	return enc.NewDecoder().Reader(input), nil
}
