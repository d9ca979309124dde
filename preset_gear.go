package pptgeom

import "math"

const maxToothWidth = 5358

var gearGuides = []GuideSpec{
	{Name: "adj1", Default: 15000, Unit: UnitFraction, Bounds: fixed(0, 20000)},
	{Name: "adj2", Default: 3526, Unit: UnitFraction, Bounds: fixed(0, maxToothWidth)},
}

// Gear builds a toothed outline with the given number of notches inscribed in the
// box. The loop walks 2*notches half steps, alternating between the outer ellipse
// and one shrunk by depth. shoulder, a fraction in [0, 1), slides every root vertex
// towards the following tip so the flanks taper unevenly. The outline is MoveTo,
// 2*notches LineTo ending back on the first tip, and Close.
func Gear(box BoundingBox, notches int, depth, shoulder float64) RenderedPath {
	if notches < 1 {
		return RenderedPath{}
	}
	box, _ = box.Normalize()
	c := Pt(box.W/2, box.H/2)
	rx, ry := box.W/2, box.H/2
	irx, iry := math.Max(rx-depth, 0), math.Max(ry-depth, 0)
	half := 180 / float64(notches)
	shift := pin(0, shoulder, 1) * half

	var b pathBuilder
	first := PolarToCartesian(c.X, c.Y, rx, ry, 0)
	b.moveTo(first.X, first.Y)
	for i := 1; i < 2*notches; i++ {
		a := float64(i) * half
		p := PolarToCartesian(c.X, c.Y, rx, ry, a)
		if i%2 == 1 {
			p = PolarToCartesian(c.X, c.Y, irx, iry, a+shift)
		}
		b.lineTo(p.X, p.Y)
	}
	b.lineTo(first.X, first.Y)
	b.close()
	return b.path()
}

func gearBuilder(notches int) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		depth := box.ss() * g.Get("adj1")
		shoulder := g.Get("adj2") * fractionScale / maxToothWidth / 2
		return Gear(box, notches, depth, shoulder)
	}
}
