package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/document"
	"github.com/gogpu/svgmsdf/internal/status"
	"github.com/gogpu/svgmsdf/pathdata"
	"github.com/gogpu/svgmsdf/pipeline"
	"github.com/gogpu/svgmsdf/preview"
	"github.com/gogpu/svgmsdf/raster"
	"github.com/gogpu/svgmsdf/transform"
)

func runRewrite(args []string, stdout, stderr io.Writer, st *status.Printer) error {
	fs, verbose := newFlagSet("rewrite", stderr)
	var (
		pngOut = fs.String("png", "", "also fill the rewritten path into this PNG file")
		size   = fs.Int("size", 256, "PNG size in pixels")
	)
	rest, err := parseArgs(fs, args, 1, "icon.svg")
	if err != nil {
		return err
	}
	setupLogging(stderr, *verbose)

	f, err := os.Open(rest[0])
	if err != nil {
		return err
	}
	defer f.Close()
	doc, err := document.Parse(f)
	if err != nil {
		return err
	}
	el := doc.FirstPath()
	if el == nil {
		return pipeline.ErrNoPath
	}
	d, _ := el.Attr("d")

	m, err := transform.DefaultResolver().ResolveElement(doc, el)
	if err != nil {
		st.Infof("transform not applied: %v", err)
	}
	out, res := pathdata.Rewrite(d, m)
	for _, diag := range res.Diagnostics {
		st.Infof("path: %v", diag)
	}
	fmt.Fprintln(stdout, out)

	if *pngOut == "" {
		return nil
	}
	lo, hi, ok := pathdata.Bounds(out, svgmsdf.Identity())
	if !ok {
		return fmt.Errorf("rewrite: path %q has no points", d)
	}
	buf := raster.NewBuffer(*size, *size)
	buf.Clear(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	raster.Fill(buf, out, raster.FitMatrix(lo, hi, *size, *size, 4), color.Black)
	if err := buf.SavePNG(*pngOut); err != nil {
		return err
	}
	st.Successf("saved %s", *pngOut)
	return nil
}

func runCompare(args []string, stdout, stderr io.Writer, st *status.Printer) error {
	fs, verbose := newFlagSet("compare", stderr)
	diffOut := fs.String("diff", "", "write the per-channel difference image to this PNG file")
	rest, err := parseArgs(fs, args, 2, "a.png b.png")
	if err != nil {
		return err
	}
	setupLogging(stderr, *verbose)

	a, err := raster.Load(rest[0])
	if err != nil {
		return err
	}
	b, err := raster.Load(rest[1])
	if err != nil {
		return err
	}

	if !a.SameSize(b) {
		st.Infof("sizes differ: %dx%d vs %dx%d", a.Width(), a.Height(), b.Width(), b.Height())
	}
	fmt.Fprintf(stdout, "similarity: %.2f%% (%d of %d pixels)\n",
		raster.Similarity(a, b), raster.Matching(a, b), a.Len())

	if *diffOut == "" {
		return nil
	}
	diff, err := raster.Diff(a, b)
	if err != nil {
		return err
	}
	if err := diff.SavePNG(*diffOut); err != nil {
		return err
	}
	st.Successf("saved %s", *diffOut)
	return nil
}

func runPreview(args []string, stderr io.Writer, st *status.Printer) error {
	fs, verbose := newFlagSet("preview", stderr)
	var (
		width  = fs.Int("width", 256, "output width in pixels")
		height = fs.Int("height", 256, "output height in pixels")
		out    = fs.String("o", "preview.png", "output file")
	)
	rest, err := parseArgs(fs, args, 1, "icon.svg")
	if err != nil {
		return err
	}
	setupLogging(stderr, *verbose)

	f, err := os.Open(rest[0])
	if err != nil {
		return err
	}
	defer f.Close()
	buf, err := preview.Render(f, *width, *height)
	if err != nil {
		return err
	}
	if err := buf.SavePNG(*out); err != nil {
		return err
	}
	st.Successf("saved %s", *out)
	return nil
}
