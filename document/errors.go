package document

import "errors"

// Sentinel errors for document package.
var (
	// ErrNotSVG is returned when the input is not an SVG document.
	ErrNotSVG = errors.New("document: input is not an SVG document")

	// ErrNoRoot is returned when the input contains no root element.
	ErrNoRoot = errors.New("document: no root element")

	// ErrUnsupportedCharset is returned when the XML declaration names an
	// encoding that has no decoder.
	ErrUnsupportedCharset = errors.New("document: unsupported charset")
)
