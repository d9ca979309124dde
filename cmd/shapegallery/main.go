// Command shapegallery renders preset and custom DrawingML geometries to an SVG
// contact sheet and one PNG per shape.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	pptgeom "github.com/VantageDataChat/goppt-geometry"
)

type options struct {
	out         string
	config      string
	scale       float64
	concurrency int
	png         bool
	svg         bool
	verbose     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "shapegallery",
		Short:        "Render DrawingML shape geometry to SVG and PNG",
		Version:      pptgeom.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return run(cmd, opts, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "gallery", "output directory")
	f.StringVarP(&opts.config, "config", "c", "", "YAML gallery config (default: every preset)")
	f.Float64Var(&opts.scale, "scale", 2, "pixels per device unit in PNG output")
	f.IntVar(&opts.concurrency, "concurrency", 0, "shapes synthesized at once (0: GOMAXPROCS)")
	f.BoolVar(&opts.png, "png", true, "write one PNG per shape")
	f.BoolVar(&opts.svg, "svg", true, "write gallery.svg")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log validation details")
	return cmd
}

func run(cmd *cobra.Command, opts *options, logger *slog.Logger) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	shapes, err := cfg.shapes()
	if err != nil {
		return err
	}

	reqs := make([]pptgeom.Request, len(shapes))
	for i, s := range shapes {
		reqs[i] = s.req
	}
	engine := pptgeom.NewEngine(pptgeom.WithLogger(logger), pptgeom.WithConcurrency(opts.concurrency))
	results, err := engine.Render(cmd.Context(), reqs)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	cells := make([]cell, len(results))
	degraded := 0
	for i, res := range results {
		if res.Err != nil {
			degraded++
		}
		cells[i] = cell{
			name:     res.Request.Name,
			title:    title(res.Request.Name),
			box:      res.Request.Box,
			drawable: pptgeom.Emit(res.Path, shapes[i].fill, shapes[i].stroke),
		}
	}

	if opts.svg {
		if err := writeGallery(opts.out, cells, cfg.Columns); err != nil {
			return err
		}
	}
	if opts.png {
		if err := writeImages(opts.out, cells, opts.scale); err != nil {
			return err
		}
	}
	logger.Info("gallery written", "dir", opts.out, "shapes", len(cells), "degraded", degraded)
	return nil
}
