package pptgeom

import "math"

// widthBound returns a [0, scale*w/ss] range; heightBound the same for h.
func widthBound(scale float64) func(Guides, BoundingBox) (float64, float64) {
	return func(_ Guides, b BoundingBox) (float64, float64) { return 0, scale * b.W / b.ss() }
}

func heightBound(scale float64) func(Guides, BoundingBox) (float64, float64) {
	return func(_ Guides, b BoundingBox) (float64, float64) { return 0, scale * b.H / b.ss() }
}

func single(def float64, bounds func(Guides, BoundingBox) (float64, float64)) []GuideSpec {
	return []GuideSpec{{Name: "adj", Default: def, Unit: UnitFraction, Bounds: bounds}}
}

var (
	triangleGuides      = single(50000, fixed(0, 100000))
	parallelogramGuides = single(25000, widthBound(100000))
	trapezoidGuides     = single(25000, widthBound(50000))
	hexagonGuides       = single(25000, widthBound(50000))
	octagonGuides       = single(29289, fixed(0, 50000))
	plusGuides          = single(25000, fixed(0, 50000))
	chevronGuides       = single(50000, widthBound(100000))
	homePlateGuides     = single(50000, widthBound(100000))
	frameGuides         = []GuideSpec{{Name: "adj1", Default: 12500, Unit: UnitFraction, Bounds: fixed(0, 50000)}}
	donutGuides         = single(25000, fixed(0, 50000))
	smileyGuides        = single(4653, fixed(-4653, 4653))
)

func polygonPath(pts ...Point) RenderedPath {
	var b pathBuilder
	b.polygon(pts...)
	return b.path()
}

func rectPath(box BoundingBox, _ Guides) RenderedPath {
	return polygonPath(Pt(0, 0), Pt(box.W, 0), Pt(box.W, box.H), Pt(0, box.H))
}

func ellipsePath(box BoundingBox, _ Guides) RenderedPath {
	var b pathBuilder
	addEllipse(&b, Pt(box.W/2, box.H/2), box.W/2, box.H/2, false)
	return b.path()
}

// addEllipse adds a closed ellipse in two half arcs. reverse runs it
// counterclockwise, which punches holes under the nonzero fill rule.
func addEllipse(b *pathBuilder, c Point, rx, ry float64, reverse bool) {
	if reverse {
		b.arc(c, rx, ry, 360, 180)
		b.arc(c, rx, ry, 180, 0)
	} else {
		b.arc(c, rx, ry, 0, 180)
		b.arc(c, rx, ry, 180, 360)
	}
	b.close()
}

func trianglePath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.W * g.Get("adj")
	return polygonPath(Pt(x1, 0), Pt(box.W, box.H), Pt(0, box.H))
}

func rtTrianglePath(box BoundingBox, _ Guides) RenderedPath {
	return polygonPath(Pt(0, 0), Pt(box.W, box.H), Pt(0, box.H))
}

func diamondPath(box BoundingBox, _ Guides) RenderedPath {
	hc, vc := box.W/2, box.H/2
	return polygonPath(Pt(hc, 0), Pt(box.W, vc), Pt(hc, box.H), Pt(0, vc))
}

func parallelogramPath(box BoundingBox, g Guides) RenderedPath {
	x2 := box.ss() * g.Get("adj")
	return polygonPath(Pt(0, box.H), Pt(x2, 0), Pt(box.W, 0), Pt(box.W-x2, box.H))
}

func trapezoidPath(box BoundingBox, g Guides) RenderedPath {
	x2 := box.ss() * g.Get("adj")
	return polygonPath(Pt(0, box.H), Pt(x2, 0), Pt(box.W-x2, 0), Pt(box.W, box.H))
}

// regularPolygonPath places n vertices on a circle, first one at the top, then
// stretches the vertex bounds onto the box.
func regularPolygonPath(box BoundingBox, n int) RenderedPath {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = PolarToCartesian(0, 0, 1, 1, float64(i)*360/float64(n))
	}
	return polygonPath(fitPoints(pts, box)...)
}

func fitPoints(pts []Point, box BoundingBox) []Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	sx := box.W / math.Max(maxX-minX, penEpsilon)
	sy := box.H / math.Max(maxY-minY, penEpsilon)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Pt((p.X-minX)*sx, (p.Y-minY)*sy)
	}
	return out
}

func pentagonPath(box BoundingBox, _ Guides) RenderedPath {
	return regularPolygonPath(box, 5)
}

func hexagonPath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj")
	w, h := box.W, box.H
	return polygonPath(Pt(0, h/2), Pt(x1, 0), Pt(w-x1, 0), Pt(w, h/2), Pt(w-x1, h), Pt(x1, h))
}

func octagonPath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj")
	w, h := box.W, box.H
	return polygonPath(
		Pt(0, x1), Pt(x1, 0), Pt(w-x1, 0), Pt(w, x1),
		Pt(w, h-x1), Pt(w-x1, h), Pt(x1, h), Pt(0, h-x1),
	)
}

func plusPath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj")
	w, h := box.W, box.H
	x2, y2 := w-x1, h-x1
	return polygonPath(
		Pt(0, x1), Pt(x1, x1), Pt(x1, 0), Pt(x2, 0),
		Pt(x2, x1), Pt(w, x1), Pt(w, y2), Pt(x2, y2),
		Pt(x2, h), Pt(x1, h), Pt(x1, y2), Pt(0, y2),
	)
}

func chevronPath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj")
	w, h := box.W, box.H
	return polygonPath(Pt(0, 0), Pt(w-x1, 0), Pt(w, h/2), Pt(w-x1, h), Pt(0, h), Pt(x1, h/2))
}

func homePlatePath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.W - box.ss()*g.Get("adj")
	w, h := box.W, box.H
	return polygonPath(Pt(0, 0), Pt(x1, 0), Pt(w, h/2), Pt(x1, h), Pt(0, h))
}

func framePath(box BoundingBox, g Guides) RenderedPath {
	x1 := box.ss() * g.Get("adj1")
	w, h := box.W, box.H
	var b pathBuilder
	b.polygon(Pt(0, 0), Pt(w, 0), Pt(w, h), Pt(0, h))
	b.polygon(Pt(x1, x1), Pt(x1, h-x1), Pt(w-x1, h-x1), Pt(w-x1, x1))
	return b.path()
}

func donutPath(box BoundingBox, g Guides) RenderedPath {
	dr := box.ss() * g.Get("adj")
	c := Pt(box.W/2, box.H/2)
	var b pathBuilder
	addEllipse(&b, c, box.W/2, box.H/2, false)
	addEllipse(&b, c, box.W/2-dr, box.H/2-dr, true)
	return b.path()
}

// smileyFacePath draws head, eyes and mouth in one path. Head and eyes are stepped
// arcs so each stays a separate closed outline.
func smileyFacePath(box BoundingBox, g Guides) RenderedPath {
	w, h := box.W, box.H
	var b pathBuilder
	b.steppedArc(Pt(w/2, h/2), w/2, h/2, 0, 360, true)

	eyeRX, eyeRY := w*1125/21600, h*1125/21600
	eyeY := h * 7570 / 21600
	b.steppedArc(Pt(w*6215/21600, eyeY), eyeRX, eyeRY, 0, 360, true)
	b.steppedArc(Pt(w*13135/21600, eyeY), eyeRX, eyeRY, 0, 360, true)

	dy2 := h * g.Get("adj")
	y3 := h * 16515 / 21600
	p0 := Pt(w*4969/21600, y3-dy2)
	q := Pt(w/2, y3+3*dy2)
	p2 := Pt(w*16631/21600, y3-dy2)
	b.moveTo(p0.X, p0.Y)
	c1, c2 := quadToCubic(p0, q, p2)
	b.cubicTo(c1, c2, p2)
	return b.path()
}

// quadToCubic returns the cubic control points equivalent to a quadratic bezier.
func quadToCubic(p0, q, p2 Point) (Point, Point) {
	c1 := Pt(p0.X+2.0/3*(q.X-p0.X), p0.Y+2.0/3*(q.Y-p0.Y))
	c2 := Pt(p2.X+2.0/3*(q.X-p2.X), p2.Y+2.0/3*(q.Y-p2.Y))
	return c1, c2
}
