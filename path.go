package pptgeom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/f64"
)

// Point is a position in device units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// BoundingBox is the target rendering size of a shape in device units.
type BoundingBox struct {
	W, H float64
}

// Box is shorthand for BoundingBox{w, h}.
func Box(w, h float64) BoundingBox { return BoundingBox{W: w, H: h} }

// Normalize clamps each side of the box to a minimum of 1 so that no formula divides
// by zero. A clamped box is returned together with ErrDegenerateBoundingBox.
func (b BoundingBox) Normalize() (BoundingBox, error) {
	if b.W >= 1 && b.H >= 1 {
		return b, nil
	}
	var err error
	if b.W <= 0 || b.H <= 0 || math.IsNaN(b.W) || math.IsNaN(b.H) {
		err = fmt.Errorf("box %gx%g: %w", b.W, b.H, ErrDegenerateBoundingBox)
	}
	if !(b.W >= 1) {
		b.W = 1
	}
	if !(b.H >= 1) {
		b.H = 1
	}
	return b, err
}

// ss is the shorter side of the box, the base length of most preset guides.
func (b BoundingBox) ss() float64 { return math.Min(b.W, b.H) }

// SegmentKind tags the variant held by a Segment.
type SegmentKind int

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegCubicTo
	SegArcTo
	SegClose
)

func (k SegmentKind) String() string {
	switch k {
	case SegMoveTo:
		return "MoveTo"
	case SegLineTo:
		return "LineTo"
	case SegCubicTo:
		return "CubicTo"
	case SegArcTo:
		return "ArcTo"
	case SegClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Segment is one drawing step of a path.
//
// MoveTo and LineTo use P. CubicTo uses CP1, CP2 and P (the end point). ArcTo uses
// Center, RX, RY, StartAngle, EndAngle and Clockwise; its end points are derived.
// Angles are degrees measured clockwise from the top of the ellipse.
type Segment struct {
	Kind SegmentKind

	P        Point
	CP1, CP2 Point

	Center     Point
	RX, RY     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// MoveTo starts a new subpath at p.
func MoveTo(p Point) Segment { return Segment{Kind: SegMoveTo, P: p} }

// LineTo draws a straight line to p.
func LineTo(p Point) Segment { return Segment{Kind: SegLineTo, P: p} }

// CubicTo draws a cubic bezier to end.
func CubicTo(cp1, cp2, end Point) Segment {
	return Segment{Kind: SegCubicTo, CP1: cp1, CP2: cp2, P: end}
}

// ClosePath closes the current subpath.
func ClosePath() Segment { return Segment{Kind: SegClose} }

// LargeArc reports the SVG large-arc flag of an ArcTo segment.
func (s Segment) LargeArc() bool {
	return math.Abs(s.EndAngle-s.StartAngle) > 180
}

// Sweep reports the SVG sweep flag of an ArcTo segment. The flag is inverted with
// respect to Clockwise because angles originate at the vertical axis.
func (s Segment) Sweep() bool { return !s.Clockwise }

// From returns the point an ArcTo segment starts at.
func (s Segment) From() Point {
	if s.Clockwise {
		return PolarToCartesian(s.Center.X, s.Center.Y, s.RX, s.RY, s.EndAngle)
	}
	return PolarToCartesian(s.Center.X, s.Center.Y, s.RX, s.RY, s.StartAngle)
}

// To returns the end point of the segment. Close has no end point of its own and
// returns the zero Point.
func (s Segment) To() Point {
	if s.Kind != SegArcTo {
		return s.P
	}
	if s.Clockwise {
		return PolarToCartesian(s.Center.X, s.Center.Y, s.RX, s.RY, s.StartAngle)
	}
	return PolarToCartesian(s.Center.X, s.Center.Y, s.RX, s.RY, s.EndAngle)
}

// RenderedPath is the output of preset synthesis and custom assembly.
type RenderedPath struct {
	Segments []Segment
	// Transform, when set, maps the local frame the segments were built in to the
	// shape's box. Angle-driven shapes (pie) use it to rotate their frame.
	Transform *f64.Aff3
}

// Empty reports whether the path has no segments.
func (p RenderedPath) Empty() bool { return len(p.Segments) == 0 }

// AuxTransform returns the transform as an SVG matrix(...) string, or "" when the
// path is drawn in the box frame directly.
func (p RenderedPath) AuxTransform() string {
	if p.Transform == nil {
		return ""
	}
	m := p.Transform
	return "matrix(" + strings.Join([]string{
		formatNum(m[0]), formatNum(m[3]),
		formatNum(m[1]), formatNum(m[4]),
		formatNum(m[2]), formatNum(m[5]),
	}, " ") + ")"
}

// Polygon returns the vertices of the path when it is a single closed polyline.
func (p RenderedPath) Polygon() ([]Point, bool) {
	n := len(p.Segments)
	if n < 3 || p.Segments[0].Kind != SegMoveTo || p.Segments[n-1].Kind != SegClose {
		return nil, false
	}
	pts := make([]Point, 0, n-1)
	pts = append(pts, p.Segments[0].P)
	for _, s := range p.Segments[1 : n-1] {
		if s.Kind != SegLineTo {
			return nil, false
		}
		pts = append(pts, s.P)
	}
	return pts, true
}

// PathData serializes the segments as SVG path data.
func (p RenderedPath) PathData() string {
	var sb strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch s.Kind {
		case SegMoveTo:
			sb.WriteString("M" + formatPoint(s.P))
		case SegLineTo:
			sb.WriteString("L" + formatPoint(s.P))
		case SegCubicTo:
			sb.WriteString("C" + formatPoint(s.CP1) + " " + formatPoint(s.CP2) + " " + formatPoint(s.P))
		case SegArcTo:
			sb.WriteString(fmt.Sprintf("A%s %s 0 %s %s %s",
				formatNum(s.RX), formatNum(s.RY), flag(s.LargeArc()), flag(s.Sweep()), formatPoint(s.To())))
		case SegClose:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatPoint(p Point) string {
	return formatNum(p.X) + "," + formatNum(p.Y)
}

// formatNum prints v with at most three decimals and no trailing zeros.
func formatNum(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
