package pptgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size float64) []OrderedCommand {
	return []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 0}}},
		{Kind: CmdLineTo, Order: 1, Pts: []Point{{size, 0}}},
		{Kind: CmdLineTo, Order: 2, Pts: []Point{{size, size}}},
		{Kind: CmdClose, Order: 3},
	}
}

func TestAssemble_FollowsOrderTags(t *testing.T) {
	cmds := square(10)
	shuffled := []OrderedCommand{cmds[3], cmds[2], cmds[0], cmds[1]}

	p, err := Assemble(shuffled, Box(10, 10), Box(100, 100))
	require.NoError(t, err)
	pts, ok := p.Polygon()
	require.True(t, ok)
	assert.Equal(t, []Point{{0, 0}, {100, 0}, {100, 100}}, pts)
}

func TestAssemble_StableForEqualTags(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 0}}},
		{Kind: CmdLineTo, Order: 1, Pts: []Point{{5, 0}}},
		{Kind: CmdLineTo, Order: 1, Pts: []Point{{5, 5}}},
	}
	p, err := Assemble(cmds, Box(10, 10), Box(10, 10))
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)
	assert.Equal(t, Pt(5, 0), p.Segments[1].P)
	assert.Equal(t, Pt(5, 5), p.Segments[2].P)
}

func TestGroupedCommands_Flatten(t *testing.T) {
	g := GroupedCommands{
		MoveTo: []OrderedCommand{{Order: 0, Pts: []Point{{0, 0}}}},
		LnTo: []OrderedCommand{
			{Order: 2, Pts: []Point{{10, 10}}},
			{Order: 1, Pts: []Point{{10, 0}}},
		},
		Close: []OrderedCommand{{Order: 3}},
	}
	flat := g.Flatten()
	require.Len(t, flat, 4)
	assert.Equal(t, CmdMoveTo, flat[0].Kind)
	assert.Equal(t, CmdLineTo, flat[1].Kind)
	assert.Equal(t, CmdClose, flat[3].Kind)

	p, err := Assemble(flat, Box(10, 10), Box(10, 10))
	require.NoError(t, err)
	want, _ := Assemble(square(10), Box(10, 10), Box(10, 10))
	assert.Equal(t, want.Segments, p.Segments)
}

func TestAssemble_OneSegmentPerCommand(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 0}}},
		{Kind: CmdLineTo, Order: 1, Pts: []Point{{10, 0}}},
		{Kind: CmdLineTo, Order: 2, Pts: []Point{{10, 0}}},
		{Kind: CmdLineTo, Order: 3, Pts: []Point{{10, 10}}},
		{Kind: CmdClose, Order: 4},
	}
	p, err := Assemble(cmds, Box(10, 10), Box(10, 10))
	require.NoError(t, err)
	require.Len(t, p.Segments, len(cmds))
	assert.Equal(t, "M0,0 L10,0 L10,0 L10,10 Z", p.PathData())
}

func TestAssemble_ZeroPathSize(t *testing.T) {
	p, err := Assemble(square(3), BoundingBox{}, Box(50, 20))
	require.NoError(t, err)
	for _, s := range p.Segments {
		assert.False(t, math.IsNaN(s.P.X) || math.IsInf(s.P.X, 0))
		assert.False(t, math.IsNaN(s.P.Y) || math.IsInf(s.P.Y, 0))
	}
	assert.Equal(t, Pt(150, 0), p.Segments[1].P)
}

func TestAssemble_SkipsQuadratic(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 0}}},
		{Kind: CmdQuadBezTo, Order: 1, Pts: []Point{{5, 10}, {10, 0}}},
		{Kind: CmdLineTo, Order: 2, Pts: []Point{{10, 10}}},
	}
	p, err := Assemble(cmds, Box(10, 10), Box(10, 10))
	assert.ErrorIs(t, err, ErrUnsupportedCustomCommand)
	require.Len(t, p.Segments, 2)
	assert.Equal(t, SegLineTo, p.Segments[1].Kind)
	assert.Equal(t, Pt(10, 10), p.Segments[1].P)
}

func TestAssemble_SkipsMalformed(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 0}}},
		{Kind: CmdLineTo, Order: 1},
		{Kind: CmdCubicBezTo, Order: 2, Pts: []Point{{1, 1}}},
		{Kind: CmdCubicBezTo, Order: 3, Pts: []Point{{0, 5}, {5, 10}, {10, 10}}},
	}
	p, err := Assemble(cmds, Box(10, 10), Box(10, 10))
	assert.ErrorIs(t, err, ErrMalformedCommand)
	require.Len(t, p.Segments, 2)
	assert.Equal(t, SegCubicTo, p.Segments[1].Kind)
}

func TestAssemble_ArcContinuesFromPen(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 50}}},
		{Kind: CmdArcTo, Order: 1, WR: 50, HR: 50, StAng: 10800000, SwAng: 5400000},
		{Kind: CmdClose, Order: 2},
	}
	p, err := Assemble(cmds, Box(100, 100), Box(100, 100))
	require.NoError(t, err)
	require.Len(t, p.Segments, 3)
	arc := p.Segments[1]
	require.Equal(t, SegArcTo, arc.Kind)
	assertPoint(t, Pt(50, 50), arc.Center)
	assertPoint(t, Pt(0, 50), arc.From())
	assertPoint(t, Pt(50, 0), arc.To())
	assert.True(t, arc.Sweep())
}

func TestAssemble_NegativeSweep(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{100, 50}}},
		{Kind: CmdArcTo, Order: 1, WR: 50, HR: 50, StAng: 0, SwAng: -5400000},
	}
	p, err := Assemble(cmds, Box(100, 100), Box(100, 100))
	require.NoError(t, err)
	arc := p.Segments[1]
	assertPoint(t, Pt(100, 50), arc.From())
	assertPoint(t, Pt(50, 0), arc.To())
	assert.False(t, arc.Sweep())
}

func TestAssemble_ArcScalesAndShifts(t *testing.T) {
	cmds := []OrderedCommand{
		{Kind: CmdMoveTo, Order: 0, Pts: []Point{{0, 5}}},
		{Kind: CmdArcTo, Order: 1, WR: 5, HR: 5, StAng: 10800000, SwAng: 5400000, Shift: Pt(1, 0)},
	}
	p, err := Assemble(cmds, Box(10, 10), Box(200, 100))
	require.NoError(t, err)
	arc := p.Segments[len(p.Segments)-1]
	require.Equal(t, SegArcTo, arc.Kind)
	assert.InDelta(t, 100, arc.RX, 1e-9)
	assert.InDelta(t, 50, arc.RY, 1e-9)
	assertPoint(t, Pt(120, 50), arc.Center)
	// The shifted arc no longer starts at the pen, so a line joins them.
	assert.Equal(t, SegLineTo, p.Segments[1].Kind)
}

func TestAssembleGeometry_ExtraBlocks(t *testing.T) {
	g := &CustomGeometry{Paths: []CustomPath{
		{Size: Box(10, 10), Commands: square(10)},
		{Size: Box(10, 10), Commands: square(5)},
	}}
	p, err := AssembleGeometry(g, Box(10, 10))
	assert.ErrorIs(t, err, ErrExtraPathBlocks)
	want, _ := Assemble(square(10), Box(10, 10), Box(10, 10))
	assert.Equal(t, want.Segments, p.Segments)
}

func TestAssembleGeometry_Empty(t *testing.T) {
	p, err := AssembleGeometry(nil, Box(10, 10))
	assert.NoError(t, err)
	assert.True(t, p.Empty())

	p, err = AssembleGeometry(&CustomGeometry{}, Box(10, 10))
	assert.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestParseCommandKind(t *testing.T) {
	for _, name := range []string{"moveTo", "lnTo", "cubicBezTo", "quadBezTo", "arcTo", "close"} {
		k, ok := ParseCommandKind(name)
		require.True(t, ok, name)
		assert.Equal(t, name, k.String())
	}
	_, ok := ParseCommandKind("spline")
	assert.False(t, ok)
}
