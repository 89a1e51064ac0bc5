package pipeline

import "errors"

// ErrNoPath is returned when the document holds no path element.
var ErrNoPath = errors.New("pipeline: no path element in document")
