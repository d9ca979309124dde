package pptgeom

import "strings"

// ElementKind is the primitive a Drawable is serialized as.
type ElementKind int

const (
	ElementPath ElementKind = iota
	ElementPolygon
)

func (k ElementKind) String() string {
	if k == ElementPolygon {
		return "polygon"
	}
	return "path"
}

// Drawable is a synthesized outline with its paint attached, ready for a
// serializer.
type Drawable struct {
	Element ElementKind
	// Data is the "d" attribute of a path element or the "points" attribute of a
	// polygon element.
	Data      string
	Transform string
	Fill      Paint
	Stroke    Stroke

	// Path is the geometry the element was built from.
	Path RenderedPath
}

// Emit wraps a path with externally resolved paint. A single closed polyline
// becomes a polygon, anything else a path.
func Emit(path RenderedPath, fill Paint, stroke Stroke) Drawable {
	d := Drawable{
		Element:   ElementPath,
		Transform: path.AuxTransform(),
		Fill:      fill,
		Stroke:    stroke,
		Path:      path,
	}
	if pts, ok := path.Polygon(); ok {
		d.Element = ElementPolygon
		d.Data = formatPoints(pts)
		return d
	}
	d.Data = path.PathData()
	return d
}

func formatPoints(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = formatPoint(p)
	}
	return strings.Join(parts, " ")
}
