// Package status prints the command line tool's one-line status messages.
package status

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Kind selects the styling of a status line.
type Kind int

const (
	Info Kind = iota
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Info:
		return "info"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Printer writes status lines, coloured when the writer is a terminal.
type Printer struct {
	out *termenv.Output
}

// New creates a printer writing to w. Colour support is detected from w
// and the environment.
func New(w io.Writer) *Printer {
	return &Printer{out: termenv.NewOutput(w)}
}

// NewPlain creates a printer that never emits escape sequences.
func NewPlain(w io.Writer) *Printer {
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
}

// Show prints one status line.
func (p *Printer) Show(kind Kind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	style := p.out.String(prefix(kind) + msg)
	switch kind {
	case Success:
		style = style.Foreground(p.out.Color("2"))
	case Error:
		style = style.Foreground(p.out.Color("1")).Bold()
	}
	fmt.Fprintln(p.out, style.String())
}

// Infof prints an informational line.
func (p *Printer) Infof(format string, args ...any) { p.Show(Info, format, args...) }

// Successf prints a success line.
func (p *Printer) Successf(format string, args ...any) { p.Show(Success, format, args...) }

// Errorf prints an error line.
func (p *Printer) Errorf(format string, args ...any) { p.Show(Error, format, args...) }

func prefix(kind Kind) string {
	switch kind {
	case Success:
		return "ok: "
	case Error:
		return "error: "
	default:
		return ""
	}
}
