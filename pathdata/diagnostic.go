package pathdata

import (
	"fmt"

	"github.com/gogpu/svgmsdf"
)

// DiagnosticKind classifies a non-fatal interpretation problem.
type DiagnosticKind uint8

const (
	// UnsupportedCommand is a letter outside the supported command set.
	// Its numeric arguments are skipped up to the next letter.
	UnsupportedCommand DiagnosticKind = iota

	// MalformedNumber is a numeric run that did not parse. It ends the
	// current command's repetition; numbers up to the next letter are skipped.
	MalformedNumber

	// MissingParameters is a command followed by fewer numbers than one
	// parameter group needs. The incomplete group is dropped.
	MissingParameters

	// StrayNumber is a number with no command in effect, e.g. at the start
	// of the data or after Z.
	StrayNumber

	// InvalidCharacter is a byte that is not part of the path-data grammar.
	InvalidCharacter
)

// String returns a string representation of the diagnostic kind.
func (k DiagnosticKind) String() string {
	switch k {
	case UnsupportedCommand:
		return "UnsupportedCommand"
	case MalformedNumber:
		return "MalformedNumber"
	case MissingParameters:
		return "MissingParameters"
	case StrayNumber:
		return "StrayNumber"
	case InvalidCharacter:
		return "InvalidCharacter"
	default:
		return "Unknown"
	}
}

// Diagnostic describes one problem found while interpreting path data.
type Diagnostic struct {
	Kind DiagnosticKind

	// Command is the command letter in effect (or the offending byte).
	Command byte

	// Offset is the byte offset in the path data.
	Offset int
}

func (d Diagnostic) String() string {
	if d.Command == 0 {
		return fmt.Sprintf("%s at offset %d", d.Kind, d.Offset)
	}
	return fmt.Sprintf("%s %q at offset %d", d.Kind, d.Command, d.Offset)
}

// Result summarizes one interpretation run.
type Result struct {
	// Diagnostics lists the problems in input order.
	Diagnostics []Diagnostic

	// Segments is the number of commands reported to the sink.
	Segments int

	// End is the final current point in path-local, pre-transform units.
	End svgmsdf.Point

	// Passthrough is set when Rewrite returned its input unmodified
	// because the matrix was the identity.
	Passthrough bool
}

// HasDiagnostics reports whether any problem was recorded.
func (r Result) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0
}

// Count returns the number of diagnostics of the given kind.
func (r Result) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
