package pptgeom

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RenderKeepsOrder(t *testing.T) {
	var reqs []Request
	for _, k := range PresetKinds() {
		reqs = append(reqs, PresetRequest(k, Box(120, 80)))
	}
	results, err := NewEngine(WithConcurrency(3)).Render(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))
	for i, res := range results {
		assert.Equal(t, reqs[i].Preset, res.Request.Preset)
		assert.NoError(t, res.Err)
		want, _ := reqs[i].Synthesize()
		assert.Equal(t, want, res.Path, "%s", reqs[i].Preset)
	}
}

func TestEngine_LogsDegradedShapes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	reqs := []Request{
		{Name: "ok", Preset: PresetRect, Box: Box(10, 10)},
		{Name: "broken", Preset: PresetUnknown, Box: Box(10, 10)},
	}
	results, err := NewEngine(WithLogger(logger)).Render(context.Background(), reqs)
	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, ErrUnsupportedPreset)
	assert.True(t, results[1].Path.Empty())

	out := buf.String()
	assert.Contains(t, out, "shape degraded")
	assert.Contains(t, out, "shape=broken")
	assert.NotContains(t, out, "shape=ok")
}

func TestEngine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := NewEngine().Render(ctx, []Request{PresetRequest(PresetRect, Box(10, 10))})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.True(t, results[0].Path.Empty())
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine(WithLogger(nil), WithConcurrency(-1))
	assert.NotNil(t, e.logger)
	assert.Positive(t, e.limit)
}
