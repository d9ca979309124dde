package pptgeom

// arrowAxis says which way an arrow points. Horizontal arrows run their shaft along
// the width, vertical ones along the height.
type arrowAxis int

const (
	pointRight arrowAxis = iota
	pointLeft
	pointDown
	pointUp
)

func (a arrowAxis) vertical() bool { return a == pointDown || a == pointUp }

// arrowGuides returns the shaft thickness (adj1) and head length (adj2) guides. The
// head length maximum depends on the arrow's axis length over the short side, so
// it is computed per orientation. double halves it for two-headed arrows.
func arrowGuides(vertical, double bool) []GuideSpec {
	scale := 100000.0
	if double {
		scale = 50000
	}
	head := widthBound(scale)
	if vertical {
		head = heightBound(scale)
	}
	return []GuideSpec{
		{Name: "adj1", Default: 50000, Unit: UnitFraction, Bounds: fixed(0, 100000)},
		{Name: "adj2", Default: 50000, Unit: UnitFraction, Bounds: head},
	}
}

var (
	horizontalArrowGuides       = arrowGuides(false, false)
	verticalArrowGuides         = arrowGuides(true, false)
	horizontalDoubleArrowGuides = arrowGuides(false, true)
	verticalDoubleArrowGuides   = arrowGuides(true, true)
)

// arrowOutline returns the polygon of an arrow pointing along +u in a frame whose u
// axis has the given length and v axis the given breadth. The shaft is
// thickness*breadth wide and each head is head long. Double arrows get a head at
// both ends (10 points), single arrows one (7 points).
func arrowOutline(length, breadth, thickness, head float64, double bool) []Point {
	vc := breadth / 2
	dy := breadth * thickness / 2
	y1, y2 := vc-dy, vc+dy
	x1 := length - head
	if !double {
		return []Point{
			{0, y1}, {x1, y1}, {x1, 0}, {length, vc}, {x1, breadth}, {x1, y2}, {0, y2},
		}
	}
	return []Point{
		{0, vc}, {head, 0}, {head, y1}, {x1, y1}, {x1, 0},
		{length, vc}, {x1, breadth}, {x1, y2}, {head, y2}, {head, breadth},
	}
}

// orient maps arrow-frame points into the box for the given direction by mirroring
// and transposing.
func orient(pts []Point, axis arrowAxis, box BoundingBox) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		switch axis {
		case pointRight:
			out[i] = p
		case pointLeft:
			out[i] = Pt(box.W-p.X, p.Y)
		case pointDown:
			out[i] = Pt(p.Y, p.X)
		case pointUp:
			out[i] = Pt(p.Y, box.H-p.X)
		}
	}
	return out
}

func arrowBuilder(axis arrowAxis, double bool) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		length, breadth := box.W, box.H
		if axis.vertical() {
			length, breadth = box.H, box.W
		}
		head := box.ss() * g.Get("adj2")
		pts := arrowOutline(length, breadth, g.Get("adj1"), head, double)
		return polygonPath(orient(pts, axis, box)...)
	}
}
