package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/document"
	"github.com/gogpu/svgmsdf/msdf"
	"github.com/gogpu/svgmsdf/pathdata"
	"github.com/gogpu/svgmsdf/raster"
	"github.com/gogpu/svgmsdf/transform"
)

// DefaultOutputName is used when the input has no file name.
const DefaultOutputName = "msdf_output.png"

// Result is the outcome of a successful run.
type Result struct {
	// Image is the generated distance field.
	Image *raster.Buffer

	// Path is the d attribute of the selected path element.
	Path string

	// Rewritten is the absolute, transformed path handed to the generator.
	// It equals Path when no transform applies.
	Rewritten string

	// Matrix maps path-local coordinates into the document root space.
	Matrix svgmsdf.Matrix

	// Unresolved is non-nil when the transform chain could not be resolved
	// and the path was used untransformed.
	Unresolved error

	// Diagnostics are the rewriter's findings for Path.
	Diagnostics []pathdata.Diagnostic

	// Metrics describes the generator run.
	Metrics *msdf.Metrics

	// Compared reports whether a reference image was supplied.
	Compared bool

	// Similarity is the percentage of pixels identical to the reference.
	// It is zero when the sizes differ or nothing was compared.
	Similarity float64

	// Cached reports whether Image came from the cache given with
	// [WithCache].
	Cached bool

	// Output is the suggested file name for the image.
	Output string
}

// Generate runs the flow on the first path of doc.
//
// The resolver temporarily attaches hidden containers to doc while it runs;
// concurrent calls must not share a document.
func Generate(doc *document.Document, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	el := doc.FirstPath()
	if el == nil {
		svgmsdf.Logger().Warn("pipeline: document has no path element")
		return nil, ErrNoPath
	}
	d, _ := el.Attr("d")

	res := &Result{Path: d, Output: DefaultOutputName}

	m, err := transform.NewResolver(o.oracle).ResolveElement(doc, el)
	res.Matrix = m
	res.Unresolved = err

	rewritten, rr := pathdata.Rewrite(d, m)
	res.Rewritten = rewritten
	res.Diagnostics = rr.Diagnostics

	img, metrics, cached, err := generate(rewritten, o)
	if err != nil {
		return nil, fmt.Errorf("pipeline: generate: %w", err)
	}
	res.Image = img
	res.Metrics = metrics
	res.Cached = cached

	if o.reference != nil {
		res.Compared = true
		res.Similarity = raster.Similarity(img, o.reference)
	}

	svgmsdf.Logger().Info("pipeline: generated",
		"width", o.config.Width, "height", o.config.Height,
		"transformed", !m.IsIdentity(), "diagnostics", len(res.Diagnostics), "cached", cached)
	return res, nil
}

// generate runs the generator, going through the cache when one is set.
func generate(path string, o options) (*raster.Buffer, *msdf.Metrics, bool, error) {
	key := msdf.CacheKey{Path: path, Config: o.config}
	if o.cache != nil {
		if img, metrics, ok := o.cache.Get(key); ok {
			return img, metrics, true, nil
		}
	}
	img, metrics, err := msdf.NewGenerator(o.config).GenerateWithMetrics(path)
	if err != nil {
		return nil, nil, false, err
	}
	if o.cache != nil {
		o.cache.Set(key, img, metrics)
	}
	return img, metrics, false, nil
}

// GenerateReader parses an SVG document from r and runs [Generate].
func GenerateReader(r io.Reader, opts ...Option) (*Result, error) {
	doc, err := document.Parse(r)
	if err != nil {
		return nil, err
	}
	return Generate(doc, opts...)
}

// GenerateFile reads the SVG file at path and runs [Generate]. The result's
// Output is derived from the file name.
func GenerateFile(path string, opts ...Option) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	defer f.Close()

	res, err := GenerateReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Output = OutputName(path)
	return res, nil
}

// OutputName derives the image file name for an input file: the base name
// with its first ".svg" removed and "_msdf.png" appended. An empty name
// gives [DefaultOutputName].
func OutputName(input string) string {
	if input == "" {
		return DefaultOutputName
	}
	base := strings.Replace(filepath.Base(input), ".svg", "", 1)
	if base == "" {
		return DefaultOutputName
	}
	return base + "_msdf.png"
}
