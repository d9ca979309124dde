package pptgeom

import "math"

// maxArcSteps bounds the polyline produced by SteppedArc.
const maxArcSteps = 360

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// PolarToCartesian maps an angle measured from the vertical axis (0° at the top,
// increasing clockwise) to a point on the ellipse centered at (cx, cy).
func PolarToCartesian(cx, cy, rx, ry, angleDeg float64) Point {
	a := radians(angleDeg - 90)
	return Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
}

// ArcSegment returns a MoveTo to the arc start followed by the elliptical arc
// covering the angular span [start, end].
//
// With clockwise false the arc is traversed from start to end (sweep flag 1);
// with clockwise true it is traversed from end back to start (sweep flag 0).
// The large-arc flag is set when the span exceeds 180°.
func ArcSegment(cx, cy, rx, ry, start, end float64, clockwise bool) [2]Segment {
	arc := Segment{
		Kind:       SegArcTo,
		Center:     Point{X: cx, Y: cy},
		RX:         rx,
		RY:         ry,
		StartAngle: start,
		EndAngle:   end,
		Clockwise:  clockwise,
	}
	return [2]Segment{MoveTo(arc.From()), arc}
}

// SteppedArc approximates an arc with one line segment per degree. The angle is
// incremented when end >= start and decremented otherwise. It is used where several
// overlapping outlines share one path and a true arc command would join them.
func SteppedArc(cx, cy, rx, ry, start, end float64, close bool) []Segment {
	step := 1.0
	if end < start {
		step = -1
	}
	n := int(math.Min(math.Floor(math.Abs(end-start)), maxArcSteps))
	segs := make([]Segment, 0, n+3)
	segs = append(segs, MoveTo(PolarToCartesian(cx, cy, rx, ry, start)))
	a := start
	for i := 0; i < n; i++ {
		a += step
		segs = append(segs, LineTo(PolarToCartesian(cx, cy, rx, ry, a)))
	}
	if a != end && math.Abs(end-start) <= maxArcSteps {
		segs = append(segs, LineTo(PolarToCartesian(cx, cy, rx, ry, end)))
	}
	if close {
		segs = append(segs, ClosePath())
	}
	return segs
}

// ellipsePointAt returns where a ray from the ellipse center, leaving at the
// vertical-origin angle deg, crosses the ellipse boundary. The offset is relative to
// the center.
func ellipsePointAt(rx, ry, deg float64) Point {
	// Work with the x-axis angle so tan() gives the slope of the ray.
	theta := math.Mod(deg-90, 360)
	if theta < 0 {
		theta += 360
	}
	switch {
	case theta == 90:
		return Point{X: 0, Y: ry}
	case theta == 270:
		return Point{X: 0, Y: -ry}
	}
	t := math.Tan(radians(theta))
	x := rx * ry / math.Sqrt(ry*ry+rx*rx*t*t)
	switch {
	case theta < 90:
		return Point{X: x, Y: x * t}
	case theta < 270:
		return Point{X: -x, Y: -x * t}
	default:
		return Point{X: x, Y: x * t}
	}
}

// visualToParametric converts a vertical-origin angle describing a direction from
// the center into the ellipse parameter angle that PolarToCartesian needs to land on
// the same boundary point.
func visualToParametric(rx, ry, deg float64) float64 {
	if rx <= 0 || ry <= 0 || rx == ry {
		return deg
	}
	p := ellipsePointAt(rx, ry, deg)
	a := degrees(math.Atan2(p.Y/ry, p.X/rx)) + 90
	// Keep the result in the same turn as the input so spans stay monotonic.
	for a < deg-180 {
		a += 360
	}
	for a > deg+180 {
		a -= 360
	}
	return a
}

// flattenArc returns points along an ArcTo segment in traversal order, excluding the
// start point. tol is the maximum angular step in degrees.
func flattenArc(s Segment, tol float64) []Point {
	if tol <= 0 {
		tol = 2
	}
	from, to := s.StartAngle, s.EndAngle
	if s.Clockwise {
		from, to = to, from
	}
	n := int(math.Ceil(math.Abs(to-from) / tol))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		a := from + (to-from)*float64(i)/float64(n)
		pts = append(pts, PolarToCartesian(s.Center.X, s.Center.Y, s.RX, s.RY, a))
	}
	return pts
}
