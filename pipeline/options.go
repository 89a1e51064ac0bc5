package pipeline

import (
	"github.com/gogpu/svgmsdf/msdf"
	"github.com/gogpu/svgmsdf/raster"
	"github.com/gogpu/svgmsdf/transform"
)

// Option configures a generation run.
//
// Example:
//
//	res, err := pipeline.GenerateFile("icon.svg",
//	    pipeline.WithSize(32, 32),
//	    pipeline.WithPixelRange(2),
//	)
type Option func(*options)

// options holds the settings for one run.
type options struct {
	config    msdf.Config
	oracle    transform.Oracle
	reference *raster.Buffer
	cache     *msdf.Cache
}

// defaultOptions returns the default run settings: a 64×64 output with a
// 4 pixel distance range, resolved by the transform-list oracle.
func defaultOptions() options {
	return options{
		config: msdf.DefaultConfig(),
		oracle: nil, // transform.ListOracle
	}
}

// WithSize sets the output dimensions in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.config.Width = width
		o.config.Height = height
	}
}

// WithPixelRange sets the distance range in output pixels.
func WithPixelRange(pxRange float64) Option {
	return func(o *options) {
		o.config.PixelRange = pxRange
	}
}

// WithAngleThreshold sets the corner detection threshold in radians used
// for edge colouring.
func WithAngleThreshold(radians float64) Option {
	return func(o *options) {
		o.config.AngleThreshold = radians
	}
}

// WithOracle replaces the oracle used to resolve transform chains.
func WithOracle(oracle transform.Oracle) Option {
	return func(o *options) {
		o.oracle = oracle
	}
}

// WithReference compares the generated image against ref. The score is
// reported in Result.Similarity.
func WithReference(ref *raster.Buffer) Option {
	return func(o *options) {
		o.reference = ref
	}
}

// WithCache reuses fields from c when the rewritten path and configuration
// match an earlier run, and stores new ones in it.
func WithCache(c *msdf.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}
