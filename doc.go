// Package svgmsdf turns the first path of an SVG icon into a multi-channel
// signed distance field.
//
// # Overview
//
// The hard part of the job is geometry resolution: a path inherits the
// coordinate-space transforms of all its ancestors, and its path data is a
// compact, stateful mini-language of relative and absolute commands with
// implicit repetition. Before rasterization the path is rewritten so every
// coordinate is absolute and already transformed into the root space.
//
// # Quick Start
//
//	import "github.com/gogpu/svgmsdf/pipeline"
//
//	res, err := pipeline.GenerateFile("icon.svg",
//	    pipeline.WithSize(64, 64),
//	    pipeline.WithPixelRange(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Image.SavePNG("icon_msdf.png")
//
// # Architecture
//
// The module is organized into:
//   - Root: Matrix, Point and the shared logger
//   - document: minimal live SVG element tree and the transform chain collector
//   - transform: transform-list parsing and chain resolution
//   - pathdata: path tokenizer and the rewriting interpreter
//   - msdf: the distance field generator (the rasterizer)
//   - raster: RGBA pixel buffers, similarity scoring, coverage rendering
//   - preview: rendering of the source document
//   - pipeline: the end-to-end generation flow
//
// # Coordinate System
//
// Uses SVG user-space coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Diagnostics
//
// The geometry core never aborts on bad input. Unsupported commands,
// malformed numbers and unresolvable transforms are reported as diagnostics
// and logged at warning level through [Logger]; only the rasterizer and I/O
// return hard errors.
package svgmsdf

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
