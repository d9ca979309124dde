package pptgeom

import (
	"math"

	"golang.org/x/image/math/f64"
)

const fullTurn = 21600000 // 360° in 1/60000 degree units

func angleGuides(st, end float64) []GuideSpec {
	return []GuideSpec{
		{Name: "adj1", Default: st, Unit: UnitAngle, Bounds: fixed(0, fullTurn-1)},
		{Name: "adj2", Default: end, Unit: UnitAngle, Bounds: fixed(0, fullTurn-1)},
	}
}

var (
	pieGuides   = angleGuides(0, 16200000)
	arcGuides   = angleGuides(16200000, 0)
	chordGuides = angleGuides(2700000, 16200000)

	blockArcGuides = append(angleGuides(10800000, 0),
		GuideSpec{Name: "adj3", Default: 25000, Unit: UnitFraction, Bounds: fixed(0, 50000)})
)

// pieSpan returns the start as a vertical-origin angle and the clockwise sweep from
// adj1 to adj2. Equal angles mean a full turn.
func pieSpan(g Guides) (start, sweep float64) {
	st, end := g.Get("adj1"), g.Get("adj2")
	sweep = end - st
	if sweep <= 0 {
		sweep += 360
	}
	return st + 90, sweep
}

// piePath draws the wedge in a local frame, starting at the top of a circle of
// radius ss/2 around the origin, and leaves the rotation to the start angle and
// the stretch onto the box to the path transform. The stretch keeps parameter
// angles, so the span is converted before it is drawn.
func piePath(box BoundingBox, g Guides) RenderedPath {
	start, end := pieAngles(box, g)
	r := box.ss() / 2
	var b pathBuilder
	b.moveTo(0, 0)
	b.arc(Pt(0, 0), r, r, 0, end-start)
	b.close()

	p := b.path()
	p.Transform = frameTransform(start, box.W/box.ss(), box.H/box.ss(), box.W/2, box.H/2)
	return p
}

// pieAngles returns the parameter angles on the box ellipse where the rays at adj1
// and adj2 leave it. Every angle-driven member of the pie family draws from these.
func pieAngles(box BoundingBox, g Guides) (start, end float64) {
	st, sweep := pieSpan(g)
	return parametricSpan(box.W/2, box.H/2, st, st+sweep)
}

// frameTransform rotates by deg (clockwise on screen), scales by (sx, sy) and moves
// the origin to (tx, ty).
func frameTransform(deg, sx, sy, tx, ty float64) *f64.Aff3 {
	sin, cos := math.Sincos(radians(deg))
	return &f64.Aff3{
		sx * cos, -sx * sin, tx,
		sy * sin, sy * cos, ty,
	}
}

func pieWedgePath(box BoundingBox, _ Guides) RenderedPath {
	var b pathBuilder
	b.moveTo(0, box.H)
	b.arcTo(box.W, box.H, 180, 90, Point{})
	b.lineTo(box.W, box.H)
	b.close()
	return b.path()
}

func arcBuilder(closed bool) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		start, end := pieAngles(box, g)
		var b pathBuilder
		b.arc(Pt(box.W/2, box.H/2), box.W/2, box.H/2, start, end)
		if closed {
			b.close()
		}
		return b.path()
	}
}

// blockArcPath draws an annulus sector: the outer arc clockwise, a radial edge, the
// inner arc back counterclockwise, and the closing radial edge. Both edges follow
// the rays at the start and end angles, so the arc end points are found by
// intersecting those rays with each ellipse.
func blockArcPath(box BoundingBox, g Guides) RenderedPath {
	start, sweep := pieSpan(g)
	end := start + sweep
	c := Pt(box.W/2, box.H/2)
	rx, ry := box.W/2, box.H/2
	dr := box.ss() * g.Get("adj3")
	irx, iry := math.Max(rx-dr, 0), math.Max(ry-dr, 0)

	os, oe := pieAngles(box, g)
	is, ie := parametricSpan(irx, iry, start, end)

	var b pathBuilder
	b.arc(c, rx, ry, os, oe)
	if irx > 0 && iry > 0 {
		b.arc(c, irx, iry, ie, is)
	} else {
		b.lineTo(c.X, c.Y)
	}
	b.close()
	return b.path()
}

// parametricSpan converts a visual angular span on an ellipse into parameter angles,
// keeping end >= start and full turns full.
func parametricSpan(rx, ry, start, end float64) (float64, float64) {
	ps := visualToParametric(rx, ry, start)
	if end-start >= 360 {
		return ps, ps + 360
	}
	pe := visualToParametric(rx, ry, end)
	for pe < ps {
		pe += 360
	}
	return ps, pe
}
