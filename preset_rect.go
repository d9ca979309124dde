package pptgeom

// CornerKind selects how a rectangle corner is cut.
type CornerKind int

const (
	CornerSquare CornerKind = iota
	CornerRound
	CornerSnip
)

// Corner describes one rectangle corner. Size is the radius of a round corner or
// the leg length of a snipped one.
type Corner struct {
	Kind CornerKind
	Size float64
}

// Corner indexes, clockwise from the top left.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// CornerRect builds a rectangle whose corners are independently square, rounded by
// a quarter arc, or snipped by a straight chamfer. Sizes are clamped to half the
// shorter side.
func CornerRect(box BoundingBox, corners [4]Corner) RenderedPath {
	box, _ = box.Normalize()
	w, h := box.W, box.H
	var s [4]float64
	for i, c := range corners {
		if c.Kind != CornerSquare {
			s[i] = pin(0, c.Size, box.ss()/2)
		}
	}

	var b pathBuilder
	b.moveTo(s[TopLeft], 0)

	b.lineTo(w-s[TopRight], 0)
	corner(&b, corners[TopRight].Kind, s[TopRight], Pt(w-s[TopRight], s[TopRight]), 0, Pt(w, s[TopRight]))

	b.lineTo(w, h-s[BottomRight])
	corner(&b, corners[BottomRight].Kind, s[BottomRight], Pt(w-s[BottomRight], h-s[BottomRight]), 90, Pt(w-s[BottomRight], h))

	b.lineTo(s[BottomLeft], h)
	corner(&b, corners[BottomLeft].Kind, s[BottomLeft], Pt(s[BottomLeft], h-s[BottomLeft]), 180, Pt(0, h-s[BottomLeft]))

	// The top left corner ends where the outline started; a chamfer there is the
	// closing edge itself.
	if s[TopLeft] > 0 {
		b.lineTo(0, s[TopLeft])
		if corners[TopLeft].Kind == CornerRound {
			b.arc(Pt(s[TopLeft], s[TopLeft]), s[TopLeft], s[TopLeft], 270, 360)
		}
	}
	b.close()
	return b.path()
}

// corner finishes one corner whose quarter arc would start at angle from around
// center and end at end.
func corner(b *pathBuilder, kind CornerKind, size float64, center Point, from float64, end Point) {
	switch {
	case size <= 0:
	case kind == CornerRound:
		b.arc(center, size, size, from, from+90)
	default:
		b.lineTo(end.X, end.Y)
	}
}

func cornerGuides(def1, def2 float64) []GuideSpec {
	return []GuideSpec{
		{Name: "adj1", Default: def1, Unit: UnitFraction, Bounds: fixed(0, 50000)},
		{Name: "adj2", Default: def2, Unit: UnitFraction, Bounds: fixed(0, 50000)},
	}
}

var (
	roundRectGuides     = single(16667, fixed(0, 50000))
	oneCornerGuides     = single(16667, fixed(0, 50000))
	sameCornerGuides    = cornerGuides(16667, 0)
	diagRoundGuides     = cornerGuides(16667, 0)
	diagSnipGuides      = cornerGuides(0, 16667)
	snipRoundRectGuides = cornerGuides(16667, 16667)
)

// cornerBuilder maps resolved guides to the four corners. layout names, per corner,
// the guide that sizes it ("" leaves it square) and kinds gives its cut.
func cornerBuilder(layout [4]string, kinds [4]CornerKind) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		var corners [4]Corner
		for i, name := range layout {
			if name == "" {
				continue
			}
			corners[i] = Corner{Kind: kinds[i], Size: box.ss() * g.Get(name)}
		}
		return CornerRect(box, corners)
	}
}

var (
	allRound  = [4]CornerKind{CornerRound, CornerRound, CornerRound, CornerRound}
	allSnip   = [4]CornerKind{CornerSnip, CornerSnip, CornerSnip, CornerSnip}
	snipRound = [4]CornerKind{CornerRound, CornerSnip, CornerSquare, CornerSquare}
)
