package pptgeom

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result pairs a request with its synthesized path. Err describes substitutions made
// while synthesizing; Path is usable either way.
type Result struct {
	Request Request
	Path    RenderedPath
	Err     error
}

// Engine synthesizes batches of shapes concurrently. Shapes share no state, so the
// only coordination is the concurrency limit.
type Engine struct {
	logger *slog.Logger
	limit  int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger diagnostics are reported to. The default discards them.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConcurrency caps the number of shapes synthesized at once. n <= 0 means
// GOMAXPROCS.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) { e.limit = n }
}

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(e)
	}
	if e.limit <= 0 {
		e.limit = runtime.GOMAXPROCS(0)
	}
	return e
}

// Render synthesizes every request and returns results in request order. A shape
// that degrades is logged and kept; the returned error is only ever the context's,
// in which case shapes not yet started have zero results.
func (e *Engine) Render(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)
	for i, r := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.renderOne(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

func (e *Engine) renderOne(r Request) Result {
	if err := r.Validate(); err != nil {
		e.logger.Debug("request has problems", "shape", r.Name, "err", err)
	}
	path, err := r.Synthesize()
	if err != nil {
		e.logger.Warn("shape degraded", "shape", r.Name, "preset", r.Preset.String(), "err", err)
	}
	return Result{Request: r, Path: path, Err: err}
}
