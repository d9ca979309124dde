package pptgeom

import "math"

// pathBuilder accumulates segments and tracks the pen so arcs can be spliced into an
// open subpath without starting a new one.
type pathBuilder struct {
	segs  []Segment
	pen   Point
	start Point
	open  bool

	// keepRepeats emits a LineTo even when it does not move the pen, so every
	// command of a custom walk has its segment.
	keepRepeats bool
}

const penEpsilon = 1e-6

func (b *pathBuilder) moveTo(x, y float64) {
	p := Point{X: x, Y: y}
	b.segs = append(b.segs, MoveTo(p))
	b.pen, b.start, b.open = p, p, true
}

func (b *pathBuilder) lineTo(x, y float64) {
	if !b.open {
		b.moveTo(x, y)
		return
	}
	p := Point{X: x, Y: y}
	if samePoint(b.pen, p) && !b.keepRepeats {
		return
	}
	b.segs = append(b.segs, LineTo(p))
	b.pen = p
}

func (b *pathBuilder) cubicTo(c1, c2, end Point) {
	if !b.open {
		b.moveTo(c1.X, c1.Y)
	}
	b.segs = append(b.segs, CubicTo(c1, c2, end))
	b.pen = end
}

func (b *pathBuilder) close() {
	if !b.open {
		return
	}
	b.segs = append(b.segs, ClosePath())
	b.pen = b.start
	b.open = false
}

// polygon adds a closed polyline through pts.
func (b *pathBuilder) polygon(pts ...Point) {
	if len(pts) == 0 {
		return
	}
	b.moveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.lineTo(p.X, p.Y)
	}
	b.close()
}

// arc draws the elliptical arc around c from angle from to angle to (vertical-origin
// degrees). to > from runs clockwise on screen, to < from counterclockwise. The arc
// joins the open subpath with a line when the pen is elsewhere.
func (b *pathBuilder) arc(c Point, rx, ry, from, to float64) {
	// A full turn has coincident end points, which SVG arcs cannot express.
	if math.Abs(to-from) >= 360-penEpsilon {
		mid := (from + to) / 2
		b.arc(c, rx, ry, from, mid)
		b.arc(c, rx, ry, mid, to)
		return
	}
	var pair [2]Segment
	if from <= to {
		pair = ArcSegment(c.X, c.Y, rx, ry, from, to, false)
	} else {
		pair = ArcSegment(c.X, c.Y, rx, ry, to, from, true)
	}
	b.splice(pair)
}

// arcTo continues from the pen along an ellipse with radii (wr, hr), starting at
// DrawingML angle st and sweeping sw degrees (both measured clockwise from the
// positive x axis). The ellipse center is placed so the arc begins at the pen, then
// moved by shift.
func (b *pathBuilder) arcTo(wr, hr, st, sw float64, shift Point) {
	from := st + 90
	start := PolarToCartesian(0, 0, wr, hr, from)
	c := Point{X: b.pen.X - start.X + shift.X, Y: b.pen.Y - start.Y + shift.Y}
	b.arc(c, wr, hr, from, from+sw)
}

func (b *pathBuilder) splice(pair [2]Segment) {
	move, arc := pair[0], pair[1]
	switch {
	case !b.open:
		b.segs = append(b.segs, move)
		b.start, b.open = move.P, true
	case !samePoint(b.pen, move.P):
		b.segs = append(b.segs, LineTo(move.P))
	}
	end := arc.To()
	switch {
	case arc.RX > 0 && arc.RY > 0 && arc.StartAngle != arc.EndAngle:
		b.segs = append(b.segs, arc)
	case !samePoint(move.P, end):
		// A flat ellipse degenerates to a line.
		b.segs = append(b.segs, LineTo(end))
	}
	b.pen = end
}

// steppedArc adds a polyline arc as its own subpath.
func (b *pathBuilder) steppedArc(c Point, rx, ry, from, to float64, close bool) {
	segs := SteppedArc(c.X, c.Y, rx, ry, from, to, close)
	b.segs = append(b.segs, segs...)
	b.start = segs[0].P
	b.open = !close
	if close {
		b.pen = b.start
	} else {
		b.pen = segs[len(segs)-1].P
	}
}

func (b *pathBuilder) path() RenderedPath {
	return RenderedPath{Segments: b.segs}
}

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < penEpsilon && math.Abs(a.Y-b.Y) < penEpsilon
}
