// Package config loads the command line tool's TOML settings file.
package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/svgmsdf/msdf"
	"github.com/gogpu/svgmsdf/pipeline"
)

// Config holds generation settings. Zero values in a file keep the
// defaults.
type Config struct {
	// Width and Height of the output image in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// PixelRange is the distance range in output pixels.
	PixelRange float64 `toml:"px_range"`

	// AngleThreshold is the corner detection angle in radians.
	AngleThreshold float64 `toml:"angle_threshold"`

	// OutputDir is where generated images are written. Empty means next
	// to the input file.
	OutputDir string `toml:"output_dir"`

	// Reference is an optional image to compare the result against.
	Reference string `toml:"reference"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	d := msdf.DefaultConfig()
	return Config{
		Width:          d.Width,
		Height:         d.Height,
		PixelRange:     d.PixelRange,
		AngleThreshold: d.AngleThreshold,
	}
}

// Error describes an invalid setting.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Load reads a settings file on top of [Default].
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads settings from r on top of [Default]. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Width > msdf.MaxSize:
		return &Error{Field: "width", Reason: fmt.Sprintf("must be in 1..%d", msdf.MaxSize)}
	case c.Height <= 0 || c.Height > msdf.MaxSize:
		return &Error{Field: "height", Reason: fmt.Sprintf("must be in 1..%d", msdf.MaxSize)}
	case !(c.PixelRange > 0) || math.IsInf(c.PixelRange, 0):
		return &Error{Field: "px_range", Reason: "must be positive"}
	case 2*c.PixelRange >= float64(min(c.Width, c.Height)):
		return &Error{Field: "px_range", Reason: "leaves no room inside the output"}
	case !(c.AngleThreshold > 0) || c.AngleThreshold > math.Pi:
		return &Error{Field: "angle_threshold", Reason: "must be in (0, pi]"}
	}
	return nil
}

// Options converts the settings into pipeline options.
func (c Config) Options() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithSize(c.Width, c.Height),
		pipeline.WithPixelRange(c.PixelRange),
		pipeline.WithAngleThreshold(c.AngleThreshold),
	}
}

// OutputPath returns where the image generated from input is written.
func (c Config) OutputPath(input string) string {
	dir := c.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, pipeline.OutputName(input))
}
