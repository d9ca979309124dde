package pptgeom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPoint(t *testing.T, want, got Point, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-6, msgAndArgs...)
}

func TestPolarToCartesian_VerticalOrigin(t *testing.T) {
	tests := []struct {
		angle float64
		want  Point
	}{
		{0, Pt(50, 0)},
		{90, Pt(100, 50)},
		{180, Pt(50, 100)},
		{270, Pt(0, 50)},
		{360, Pt(50, 0)},
		{-90, Pt(0, 50)},
	}
	for _, tt := range tests {
		assertPoint(t, tt.want, PolarToCartesian(50, 50, 50, 50, tt.angle), "angle %v", tt.angle)
	}
}

func TestPolarToCartesian_Ellipse(t *testing.T) {
	assertPoint(t, Pt(40, 0), PolarToCartesian(0, 0, 40, 10, 90))
	assertPoint(t, Pt(0, -10), PolarToCartesian(0, 0, 40, 10, 0))
}

func TestPolarToCartesian_RoundTrip(t *testing.T) {
	radii := [][2]float64{{50, 50}, {80, 20}, {10, 60}}
	for _, r := range radii {
		rx, ry := r[0], r[1]
		for a := 0.0; a < 360; a += 0.5 {
			p := PolarToCartesian(7, -3, rx, ry, a)
			back := degrees(math.Atan2((p.Y+3)/ry, (p.X-7)/rx)) + 90
			diff := math.Mod(back-a+540, 360) - 180
			assert.InDelta(t, 0, diff, 1e-9, "angle %v on %vx%v", a, rx, ry)

			// Following the visual direction instead lands on the ray at a.
			q := PolarToCartesian(0, 0, rx, ry, visualToParametric(rx, ry, a))
			dir := PolarToCartesian(0, 0, 1, 1, a)
			assert.InDelta(t, 0, q.X*dir.Y-q.Y*dir.X, 1e-6, "angle %v on %vx%v", a, rx, ry)
			assert.Greater(t, q.X*dir.X+q.Y*dir.Y, 0.0, "angle %v on %vx%v", a, rx, ry)
		}
	}
}

func TestArcSegment_Flags(t *testing.T) {
	tests := []struct {
		name         string
		start, end   float64
		clockwise    bool
		large, sweep bool
		from, to     Point
	}{
		{"quarter", 0, 90, false, false, true, Pt(50, 0), Pt(100, 50)},
		{"quarter reversed", 0, 90, true, false, false, Pt(100, 50), Pt(50, 0)},
		{"three quarters", 0, 270, false, true, true, Pt(50, 0), Pt(0, 50)},
		{"half", 90, 270, false, false, true, Pt(100, 50), Pt(0, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := ArcSegment(50, 50, 50, 50, tt.start, tt.end, tt.clockwise)
			require.Equal(t, SegMoveTo, segs[0].Kind)
			require.Equal(t, SegArcTo, segs[1].Kind)
			assert.Equal(t, tt.large, segs[1].LargeArc())
			assert.Equal(t, tt.sweep, segs[1].Sweep())
			assertPoint(t, tt.from, segs[0].P)
			assertPoint(t, tt.from, segs[1].From())
			assertPoint(t, tt.to, segs[1].To())
		})
	}
}

func TestSteppedArc_OneSegmentPerDegree(t *testing.T) {
	segs := SteppedArc(0, 0, 10, 10, 0, 90, false)
	require.Len(t, segs, 91)
	assert.Equal(t, SegMoveTo, segs[0].Kind)
	assertPoint(t, Pt(0, -10), segs[0].P)
	assertPoint(t, Pt(10, 0), segs[90].P)
	for _, s := range segs[1:] {
		assert.Equal(t, SegLineTo, s.Kind)
		assert.InDelta(t, 10, math.Hypot(s.P.X, s.P.Y), 1e-9)
	}
}

func TestSteppedArc_Descending(t *testing.T) {
	segs := SteppedArc(0, 0, 10, 10, 90, 0, true)
	require.Len(t, segs, 92)
	assertPoint(t, Pt(10, 0), segs[0].P)
	assertPoint(t, Pt(0, -10), segs[90].P)
	assert.Equal(t, SegClose, segs[91].Kind)
}

func TestSteppedArc_FractionalEnd(t *testing.T) {
	segs := SteppedArc(0, 0, 10, 10, 0, 2.5, false)
	require.Len(t, segs, 4)
	assertPoint(t, PolarToCartesian(0, 0, 10, 10, 2.5), segs[3].P)
}

func TestSteppedArc_Bounded(t *testing.T) {
	segs := SteppedArc(0, 0, 10, 10, 0, 5000, false)
	assert.Len(t, segs, maxArcSteps+1)

	segs = SteppedArc(0, 0, 10, 10, 30, 30, false)
	assert.Len(t, segs, 1)
}

func TestVisualToParametric(t *testing.T) {
	// Directions along the axes need no correction.
	for _, a := range []float64{0, 90, 180, 270} {
		assert.InDelta(t, a, visualToParametric(40, 10, a), 1e-6)
	}
	// The point found through the parametric angle lies on the requested ray.
	for _, a := range []float64{30, 135, 200, 330} {
		p := PolarToCartesian(0, 0, 40, 10, visualToParametric(40, 10, a))
		dir := PolarToCartesian(0, 0, 1, 1, a)
		assert.InDelta(t, 0, p.X*dir.Y-p.Y*dir.X, 1e-6, "angle %v", a)
		assert.Greater(t, p.X*dir.X+p.Y*dir.Y, 0.0, "angle %v", a)
	}
}

func TestFlattenArc(t *testing.T) {
	arc := ArcSegment(0, 0, 10, 10, 0, 90, false)[1]
	pts := flattenArc(arc, 10)
	require.Len(t, pts, 9)
	assertPoint(t, arc.To(), pts[len(pts)-1])

	rev := ArcSegment(0, 0, 10, 10, 0, 90, true)[1]
	pts = flattenArc(rev, 10)
	assertPoint(t, rev.To(), pts[len(pts)-1])
	assertPoint(t, Pt(0, -10), pts[len(pts)-1])
}
