package pptgeom

// braceGuides resolves the tip position (adj2) first, then the curl size (adj1)
// whose maximum is half the shorter of the two spans adj2 leaves above and below
// the tip.
var braceGuides = []GuideSpec{
	{Name: "adj2", Default: 50000, Unit: UnitFraction, Bounds: fixed(0, 100000)},
	{Name: "adj1", Default: 8333, Unit: UnitFraction, Bounds: func(g Guides, b BoundingBox) (float64, float64) {
		a2 := g.raw("adj2", UnitFraction)
		q := min(a2, fractionScale-a2) / 2
		return 0, q * b.H / b.ss()
	}},
}

var (
	bracketGuides     = []GuideSpec{{Name: "adj", Default: 8333, Unit: UnitFraction, Bounds: heightBound(50000)}}
	bracePairGuides   = []GuideSpec{{Name: "adj", Default: 8333, Unit: UnitFraction, Bounds: fixed(0, 25000)}}
	bracketPairGuides = []GuideSpec{{Name: "adj", Default: 16667, Unit: UnitFraction, Bounds: fixed(0, 50000)}}
)

// hframe places a left-facing outline drawn in [0, w] at x0, optionally mirrored
// so it faces right.
type hframe struct {
	x0, w  float64
	mirror bool
}

func (f hframe) x(v float64) float64 {
	if f.mirror {
		return f.x0 + f.w - v
	}
	return f.x0 + v
}

func (f hframe) angle(deg float64) float64 {
	if f.mirror {
		return -deg
	}
	return deg
}

func (f hframe) arc(b *pathBuilder, c Point, rx, ry, from, to float64) {
	b.arc(Pt(f.x(c.X), c.Y), rx, ry, f.angle(from), f.angle(to))
}

// addBrace draws a "{" of width f.w between y=0 and y=h with its tip at yTip. Each
// of the four curls is a quarter arc of radii (f.w/2, ry).
func addBrace(b *pathBuilder, f hframe, h, ry, yTip float64) {
	rx := f.w / 2
	b.moveTo(f.x(f.w), 0)
	f.arc(b, Pt(f.w, ry), rx, ry, 0, -90)
	b.lineTo(f.x(rx), yTip-ry)
	f.arc(b, Pt(0, yTip-ry), rx, ry, 90, 180)
	f.arc(b, Pt(0, yTip+ry), rx, ry, 0, 90)
	b.lineTo(f.x(rx), h-ry)
	f.arc(b, Pt(f.w, h-ry), rx, ry, 270, 180)
}

// addBracket draws a "[" of width f.w with corner radii (f.w, ry).
func addBracket(b *pathBuilder, f hframe, h, ry float64) {
	b.moveTo(f.x(f.w), h)
	f.arc(b, Pt(f.w, h-ry), f.w, ry, 180, 270)
	b.lineTo(f.x(0), ry)
	f.arc(b, Pt(f.w, ry), f.w, ry, 270, 360)
}

func braceBuilder(mirror bool) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		var b pathBuilder
		ry := box.ss() * g.Get("adj1")
		addBrace(&b, hframe{w: box.W, mirror: mirror}, box.H, ry, box.H*g.Get("adj2"))
		return b.path()
	}
}

func bracketBuilder(mirror bool) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		var b pathBuilder
		addBracket(&b, hframe{w: box.W, mirror: mirror}, box.H, box.ss()*g.Get("adj"))
		return b.path()
	}
}

func bracePairPath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj")
	var b pathBuilder
	addBrace(&b, hframe{w: 2 * x1}, box.H, x1, box.H/2)
	addBrace(&b, hframe{x0: box.W - 2*x1, w: 2 * x1, mirror: true}, box.H, x1, box.H/2)
	return b.path()
}

func bracketPairPath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj")
	var b pathBuilder
	addBracket(&b, hframe{w: x1}, box.H, x1)
	addBracket(&b, hframe{x0: box.W - x1, w: x1, mirror: true}, box.H, x1)
	return b.path()
}
