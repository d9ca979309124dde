package main

import (
	"fmt"
	"html"
	"io"
	"strings"

	pptgeom "github.com/VantageDataChat/goppt-geometry"
)

// svgWriter serializes drawables as SVG markup. The first write error is kept and
// later writes are skipped.
type svgWriter struct {
	w   io.Writer
	err error
}

func newSVGWriter(w io.Writer) *svgWriter {
	return &svgWriter{w: w}
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *svgWriter) start(w, h float64) {
	s.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="0 0 %g %g" width="%g" height="%g"
     xmlns="http://www.w3.org/2000/svg">
`, w, h, w, h)
}

func (s *svgWriter) end() error {
	s.printf("</svg>\n")
	return s.err
}

func (s *svgWriter) openGroup(x, y float64) {
	s.printf("<g transform='translate(%g %g)'>\n", x, y)
}

func (s *svgWriter) closeGroup() {
	s.printf("</g>\n")
}

func (s *svgWriter) label(x, y float64, text string) {
	s.printf("<text x='%g' y='%g' font-family='sans-serif' font-size='11' text-anchor='middle'>%s</text>\n",
		x, y, html.EscapeString(text))
}

// drawable writes d as a path or polygon element.
func (s *svgWriter) drawable(d pptgeom.Drawable) {
	if d.Data == "" {
		return
	}
	attr := "d"
	if d.Element == pptgeom.ElementPolygon {
		attr = "points"
	}
	s.printf("<%s %s='%s' %s/>\n", d.Element, attr, d.Data, paintParams(d))
}

func paintParams(d pptgeom.Drawable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill='%s'", d.Fill.Value())
	if d.Stroke.Width > 0 {
		fmt.Fprintf(&b, " stroke='%s' stroke-width='%g'", d.Stroke.Color.Hex(), d.Stroke.Width)
		if len(d.Stroke.Dash) > 0 {
			fmt.Fprintf(&b, " stroke-dasharray='%s'", d.Stroke.DashArray())
		}
	} else {
		b.WriteString(" stroke='none'")
	}
	if d.Transform != "" {
		fmt.Fprintf(&b, " transform='%s'", d.Transform)
	}
	return b.String()
}
