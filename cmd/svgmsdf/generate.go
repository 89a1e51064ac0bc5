package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/svgmsdf"
	"github.com/gogpu/svgmsdf/internal/config"
	"github.com/gogpu/svgmsdf/internal/status"
	"github.com/gogpu/svgmsdf/msdf"
	"github.com/gogpu/svgmsdf/pipeline"
	"github.com/gogpu/svgmsdf/raster"
)

func runGenerate(ctx context.Context, args []string, stdout, stderr io.Writer, st *status.Printer) error {
	fs, verbose := newFlagSet("generate", stderr)
	var (
		configPath = fs.String("config", "", "TOML settings file")
		width      = fs.Int("width", 64, "output width in pixels")
		height     = fs.Int("height", 64, "output height in pixels")
		pxRange    = fs.Float64("range", 4, "distance range in pixels")
		outDir     = fs.String("o", "", "output directory (default: next to the input)")
		reference  = fs.String("ref", "", "reference image to compare against")
		watch      = fs.Bool("watch", false, "regenerate whenever the input changes")
	)
	rest, err := parseArgs(fs, args, 1, "icon.svg")
	if err != nil {
		return err
	}
	setupLogging(stderr, *verbose)
	input := rest[0]

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// Flags given explicitly win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "range":
			cfg.PixelRange = *pxRange
		case "o":
			cfg.OutputDir = *outDir
		case "ref":
			cfg.Reference = *reference
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !*watch {
		return generateOnce(input, cfg, nil, stdout, st)
	}

	// Saves that leave the geometry unchanged reuse the previous field.
	cache := msdf.NewCache(msdf.DefaultCacheCapacity)
	regenerate := func() {
		if err := generateOnce(input, cfg, cache, stdout, st); err != nil {
			st.Errorf("%v", err)
		}
	}
	regenerate()
	return watchFile(ctx, input, regenerate, st)
}

// generateOnce runs the pipeline for input and writes the image.
func generateOnce(input string, cfg config.Config, cache *msdf.Cache, stdout io.Writer, st *status.Printer) error {
	st.Infof("generating %s (%dx%d, range %g)", input, cfg.Width, cfg.Height, cfg.PixelRange)

	opts := cfg.Options()
	if cfg.Reference != "" {
		ref, err := raster.Load(cfg.Reference)
		if err != nil {
			return err
		}
		opts = append(opts, pipeline.WithReference(ref))
	}
	if cache != nil {
		opts = append(opts, pipeline.WithCache(cache))
	}

	res, err := pipeline.GenerateFile(input, opts...)
	if err != nil {
		return err
	}
	if res.Cached {
		st.Infof("geometry unchanged, reusing the previous field")
	}
	if res.Unresolved != nil {
		st.Infof("transform not applied: %v", res.Unresolved)
	}
	for _, d := range res.Diagnostics {
		st.Infof("path: %v", d)
	}

	out := cfg.OutputPath(input)
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return err
		}
	}
	if err := res.Image.SavePNG(out); err != nil {
		return err
	}
	svgmsdf.Logger().Info("output written", "path", out)

	if res.Compared {
		fmt.Fprintf(stdout, "similarity: %.2f%%\n", res.Similarity)
	}
	st.Successf("saved %s", out)
	return nil
}

// watchFile calls fn after every write to path until ctx is done. The
// directory is watched so that editors replacing the file are noticed.
func watchFile(ctx context.Context, path string, fn func(), st *status.Printer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	st.Infof("watching %s, press Ctrl+C to stop", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			svgmsdf.Logger().Debug("watch: change", "op", ev.Op.String(), "path", ev.Name)
			fn()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			st.Errorf("watch: %v", err)
		}
	}
}
