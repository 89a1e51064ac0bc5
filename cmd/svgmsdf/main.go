// Command svgmsdf generates multi-channel signed distance fields from SVG
// icons.
//
// Usage:
//
//	svgmsdf generate [-config file.toml] [-width 64] [-height 64] [-range 4] [-o dir] [-ref ref.png] [-watch] icon.svg
//	svgmsdf rewrite [-png out.png] [-size 256] icon.svg
//	svgmsdf compare [-diff diff.png] a.png b.png
//	svgmsdf preview [-width 256] [-height 256] [-o out.png] icon.svg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/internal/status"
)

const usage = `usage: svgmsdf <command> [flags] [args]

commands:
  generate   generate an MSDF image from the first path of an SVG file
  rewrite    print the absolute, transformed path data of an SVG file
  compare    compare two images pixel by pixel
  preview    render an SVG file as it would be displayed
  version    print the version
`

// errUsage marks command line mistakes; the usage text has been printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	st := status.New(stderr)
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "generate":
		err = runGenerate(ctx, rest, stdout, stderr, st)
	case "rewrite":
		err = runRewrite(rest, stdout, stderr, st)
	case "compare":
		err = runCompare(rest, stdout, stderr, st)
	case "preview":
		err = runPreview(rest, stderr, st)
	case "version":
		fmt.Fprintln(stdout, "svgmsdf", svgmsdf.Version)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "svgmsdf: unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		st.Errorf("%v", err)
		return 1
	}
}

// newFlagSet creates a sub-command flag set with the shared -v flag.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "verbose (debug) logging")
	return fs, verbose
}

// setupLogging installs a text logger on stderr. Warnings are always shown;
// -v adds debug output.
func setupLogging(stderr io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	svgmsdf.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
}

// parseArgs parses flags and checks the number of positional arguments.
func parseArgs(fs *flag.FlagSet, args []string, n int, names string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		// The flag set has already reported the problem.
		return nil, errUsage
	}
	if fs.NArg() != n {
		fmt.Fprintf(fs.Output(), "usage: svgmsdf %s [flags] %s\n", fs.Name(), names)
		fs.PrintDefaults()
		return nil, errUsage
	}
	return fs.Args(), nil
}
