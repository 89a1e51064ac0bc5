package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/document"
	"github.com/gogpu/svgmsdf/raster"
)

// ErrInvalidSize is returned for a non-positive output size.
var ErrInvalidSize = errors.New("preview: invalid output size")

// Render reads an SVG document and draws it into a width×height buffer.
// The document's view box is fitted into the buffer preserving its aspect
// ratio and centred on the short axis.
func Render(r io.Reader, width, height int) (*raster.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("preview: read: %w", err)
	}
	return RenderBytes(data, width, height)
}

// RenderBytes is like [Render] for an in-memory document.
func RenderBytes(data []byte, width, height int) (*raster.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	// Reject binary and non-svg input the same way the pipeline does.
	if _, err := document.ParseBytes(data); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	x, y, w, h := fit(icon.ViewBox.W, icon.ViewBox.H, width, height)
	icon.SetTarget(x, y, w, h)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	svgmsdf.Logger().Debug("preview: rendered",
		"viewBoxW", icon.ViewBox.W, "viewBoxH", icon.ViewBox.H,
		"width", width, "height", height)
	return raster.FromImage(img), nil
}

// fit returns the target rectangle for a w×h view box inside the output.
// A missing view box fills the output.
func fit(w, h float64, width, height int) (x, y, tw, th float64) {
	fw, fh := float64(width), float64(height)
	if w <= 0 || h <= 0 {
		return 0, 0, fw, fh
	}
	scale := min(fw/w, fh/h)
	tw, th = w*scale, h*scale
	return (fw - tw) / 2, (fh - th) / 2, tw, th
}
