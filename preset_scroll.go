package pptgeom

var scrollGuides = single(12500, fixed(0, 25000))

// scrollFrame draws the vertical scroll; transposed it becomes the horizontal one.
// Transposing swaps x and y and maps a vertical-origin angle a to 270-a.
type scrollFrame struct {
	b         *pathBuilder
	transpose bool
}

func (f scrollFrame) p(x, y float64) Point {
	if f.transpose {
		return Pt(y, x)
	}
	return Pt(x, y)
}

func (f scrollFrame) moveTo(x, y float64) {
	p := f.p(x, y)
	f.b.moveTo(p.X, p.Y)
}

func (f scrollFrame) lineTo(x, y float64) {
	p := f.p(x, y)
	f.b.lineTo(p.X, p.Y)
}

func (f scrollFrame) arc(cx, cy, r, from, to float64) {
	if f.transpose {
		from, to = 270-from, 270-to
	}
	f.b.arc(f.p(cx, cy), r, r, from, to)
}

// curl is the roll motif: a half turn of radius r around (cx, cy) starting at angle
// a, then a half turn of radius r/2 that spirals back into the center.
func (f scrollFrame) curl(cx, cy, r, a float64) {
	u := PolarToCartesian(0, 0, 1, 1, a)
	f.arc(cx, cy, r, a, a+180)
	f.arc(cx-u.X*r/2, cy-u.Y*r/2, r/2, a+180, a+360)
	f.b.close()
}

// scroll draws a sheet rolled at the top right and bottom left. w and h are in the
// untransposed frame.
func (f scrollFrame) scroll(w, h, ch float64) {
	ch2 := ch / 2
	x3, x5, x6, x7 := ch+ch2, w-ch-ch2, w-ch, w-ch2
	y3, y4 := h-ch, h-ch2

	f.moveTo(ch, y3)
	f.lineTo(ch, ch2)
	f.arc(x3, ch2, ch2, 270, 360)
	f.lineTo(x7, 0)
	f.arc(x7, ch2, ch2, 0, 180)
	f.lineTo(x6, ch)
	f.lineTo(x6, y4)
	f.arc(x5, y4, ch2, 90, 180)
	f.lineTo(ch2, h)
	f.arc(ch2, y4, ch2, 180, 360)
	f.b.close()

	f.curl(x3, ch2, ch2, 180)
	f.curl(ch2, y4, ch2, 0)
}

func scrollBuilder(horizontal bool) func(BoundingBox, Guides) RenderedPath {
	return func(box BoundingBox, g Guides) RenderedPath {
		var b pathBuilder
		f := scrollFrame{b: &b, transpose: horizontal}
		w, h := box.W, box.H
		if horizontal {
			w, h = h, w
		}
		f.scroll(w, h, box.ss()*g.Get("adj"))
		return b.path()
	}
}
