package msdf

import (
	"math"
	"sync"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/pathdata"
	"github.com/gogpu/svgmsdf/raster"
)

// Generator creates MSDF images from path data.
type Generator struct {
	config Config
}

// NewGenerator creates a new MSDF generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{
		config: config,
	}
}

// DefaultGenerator creates a new MSDF generator with default configuration.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultConfig())
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// SetConfig updates the generator's configuration.
func (g *Generator) SetConfig(config Config) {
	g.config = config
}

// Generate renders an MSDF of width×height pixels from absolute path data.
// It is the package-level form of Generator.Generate with the default
// angle threshold.
func Generate(width, height int, path string, pxRange float64) (*raster.Buffer, error) {
	config := DefaultConfig()
	config.Width = width
	config.Height = height
	config.PixelRange = pxRange
	return NewGenerator(config).Generate(path)
}

// Generate renders an MSDF from path data. The result holds exactly
// Width*Height*4 bytes.
func (g *Generator) Generate(path string) (*raster.Buffer, error) {
	buf, _, err := g.GenerateWithMetrics(path)
	return buf, err
}

// Metrics describes one generation run.
type Metrics struct {
	// Width and Height of the output.
	Width, Height int

	// NumContours is the number of contours in the shape.
	NumContours int

	// NumEdges is the total number of edges.
	NumEdges int

	// Bounds is the shape's bounding box in path units.
	Bounds Rect

	// Frame is the mapping from path units to pixels.
	Frame Frame

	// Diagnostics are the path interpreter's findings.
	Diagnostics []pathdata.Diagnostic
}

// GenerateWithMetrics generates an MSDF and returns metrics. Metrics are
// returned even when generation fails after the path was interpreted.
func (g *Generator) GenerateWithMetrics(path string) (*raster.Buffer, *Metrics, error) {
	if err := g.config.Validate(); err != nil {
		return nil, nil, err
	}

	shape, res := BuildShape(path)
	metrics := &Metrics{
		Width:       g.config.Width,
		Height:      g.config.Height,
		NumContours: len(shape.Contours),
		NumEdges:    shape.EdgeCount(),
		Bounds:      shape.Bounds,
		Diagnostics: res.Diagnostics,
	}
	if metrics.NumEdges == 0 {
		return nil, metrics, ErrEmptyShape
	}

	frame, err := AutoFrame(shape.Bounds, g.config.Width, g.config.Height, g.config.PixelRange)
	if err != nil {
		return nil, metrics, err
	}
	metrics.Frame = frame

	AssignColors(shape, g.config.AngleThreshold)

	buf := raster.NewBuffer(g.config.Width, g.config.Height)
	g.generateDistanceField(buf, shape, frame)

	svgmsdf.Logger().Debug("msdf: generated",
		"width", metrics.Width, "height", metrics.Height,
		"contours", metrics.NumContours, "edges", metrics.NumEdges,
		"scale", frame.Scale)
	return buf, metrics, nil
}

// generateDistanceField fills the buffer with distance values.
func (g *Generator) generateDistanceField(buf *raster.Buffer, shape *Shape, frame Frame) {
	height := buf.Height()

	// Process rows in parallel for performance
	var wg sync.WaitGroup
	numWorkers := 4 // Reasonable default for most systems

	rowsPerWorker := (height + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, height)
		if startRow >= endRow {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			processRows(buf, shape, frame, start, end)
		}(startRow, endRow)
	}

	wg.Wait()
}

// processRows processes a range of rows. Rows are disjoint between
// workers, so writes need no locking.
func processRows(buf *raster.Buffer, shape *Shape, frame Frame, startRow, endRow int) {
	width := buf.Width()
	pix := buf.Pix()

	for y := startRow; y < endRow; y++ {
		for x := 0; x < width; x++ {
			// Pixel centre, unprojected to path space
			p := frame.Unproject(Vector{float64(x) + 0.5, float64(y) + 0.5})

			r, gr, b := pixelDistances(shape, p)

			i := (y*width + x) * 4
			pix[i+0] = distanceToPixel(r, frame.Range)
			pix[i+1] = distanceToPixel(gr, frame.Range)
			pix[i+2] = distanceToPixel(b, frame.Range)
			pix[i+3] = 255
		}
	}
}

// pixelDistances returns the per-channel signed distances at p, oriented so
// that positive is inside the shape.
func pixelDistances(shape *Shape, p Vector) (r, g, b float64) {
	minR, minG, minB, minAll := Infinite(), Infinite(), Infinite(), Infinite()

	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			edge := &contour.Edges[i]
			sd := edge.SignedDistance(p)
			minAll = minAll.Combine(sd)
			if edge.Color.HasRed() {
				minR = minR.Combine(sd)
			}
			if edge.Color.HasGreen() {
				minG = minG.Combine(sd)
			}
			if edge.Color.HasBlue() {
				minB = minB.Combine(sd)
			}
		}
	}

	// A channel without edges falls back to the true distance.
	for _, d := range []*SignedDistance{&minR, &minG, &minB} {
		if d.Distance == math.MaxFloat64 {
			*d = minAll
		}
	}

	// Edge-relative signs depend on contour direction. Orient them by the
	// non-zero fill rule so either direction renders the same.
	sign := 1.0
	if (minAll.Distance > 0) != shape.Inside(p) {
		sign = -1
	}
	return sign * minR.Distance, sign * minG.Distance, sign * minB.Distance
}

// distanceToPixel converts a signed distance to a pixel value [0, 255].
// 0.5 represents the edge; higher is inside.
func distanceToPixel(distance, rangeWidth float64) byte {
	v := distance/rangeWidth + 0.5
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(v * 255)
}

// Median returns the median of three channel values. Applied to an MSDF
// pixel it yields the encoded signed distance.
func Median(a, b, c byte) byte {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}
