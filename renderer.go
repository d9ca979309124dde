package pptgeom

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/core/paint/ppath/stroke"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// FormatFromPath picks the image format from a file extension. Anything that is
// not .jpg or .jpeg is PNG.
func FormatFromPath(path string) ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ImageFormatJPEG
	default:
		return ImageFormatPNG
	}
}

// RenderOptions configures shape-to-image rendering.
type RenderOptions struct {
	// Scale is the number of pixels per device unit. Default: 1.
	Scale float64
	// Padding is the margin in pixels around the shape box, so strokes on the box
	// edge are not clipped. Default: 4.
	Padding int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// Background fills the image before drawing. Nil leaves it transparent.
	Background *color.RGBA
	// ArcStep is the angular step in degrees arcs are flattened at. Default: 2.
	ArcStep float64
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	return &RenderOptions{
		Scale:       1,
		Padding:     4,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
		Background:  &white,
		ArcStep:     2,
	}
}

// placeholderFill stands in for gradient and pattern paints, which are defined by
// the output document rather than by the drawable.
var placeholderFill = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

// RasterizeDrawable draws d, synthesized for box, into a new image. Fills and
// strokes are anti-aliased; strokes use butt caps and miter joins, the SVG
// defaults, and honour the dash pattern.
func RasterizeDrawable(d Drawable, box BoundingBox, opts *RenderOptions) *image.RGBA {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	box, _ = box.Normalize()
	pad := max(opts.Padding, 0)
	w := int(math.Ceil(box.W*scale)) + 2*pad
	h := int(math.Ceil(box.H*scale)) + 2*pad

	r := &renderer{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		step: opts.ArcStep,
	}
	if opts.Background != nil {
		draw.Draw(r.img, r.img.Bounds(), image.NewUniform(*opts.Background), image.Point{}, draw.Src)
	}
	view := f64.Aff3{scale, 0, float64(pad), 0, scale, float64(pad)}

	if src, ok := fillSource(d.Fill); ok {
		fs := &fillSink{z: vector.NewRasterizer(w, h)}
		r.walk(d.Path, view, fs)
		fs.z.Draw(r.img, r.img.Bounds(), image.NewUniform(src), image.Point{})
	}

	if d.Stroke.Width > 0 {
		ps := &ppathSink{}
		r.walk(d.Path, view, ps)
		z := vector.NewRasterizer(w, h)
		addPPath(z, strokeOutline(ps.p, d.Stroke, scale))
		z.Draw(r.img, r.img.Bounds(), image.NewUniform(d.Stroke.Color.RGBA()), image.Point{})
	}
	return r.img
}

func fillSource(p Paint) (color.RGBA, bool) {
	switch p.Kind {
	case PaintSolid:
		return p.Color.RGBA(), true
	case PaintGradient, PaintPattern:
		return placeholderFill, true
	default:
		return color.RGBA{}, false
	}
}

// SaveImage encodes img to path, creating parent directories as needed.
func SaveImage(img image.Image, path string, opts *RenderOptions) (err error) {
	if opts == nil {
		opts = DefaultRenderOptions()
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close file: %w", cerr)
		}
	}()

	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(f, img)
	}
}

// --- renderer ---

type renderer struct {
	img  *image.RGBA
	step float64
}

// pathSink receives a path in pixel coordinates with arcs already flattened.
type pathSink interface {
	moveTo(p Point)
	lineTo(p Point)
	cubeTo(c1, c2, p Point)
	closePath()
}

// walk feeds p to s, mapping every point through view after the path's own
// transform.
func (r *renderer) walk(p RenderedPath, view f64.Aff3, s pathSink) {
	m := view
	if p.Transform != nil {
		m = mulAff3(view, *p.Transform)
	}
	for _, seg := range p.Segments {
		switch seg.Kind {
		case SegMoveTo:
			s.moveTo(applyAff3(m, seg.P))
		case SegLineTo:
			s.lineTo(applyAff3(m, seg.P))
		case SegCubicTo:
			s.cubeTo(applyAff3(m, seg.CP1), applyAff3(m, seg.CP2), applyAff3(m, seg.P))
		case SegArcTo:
			for _, q := range flattenArc(seg, r.step) {
				s.lineTo(applyAff3(m, q))
			}
		case SegClose:
			s.closePath()
		}
	}
}

// mulAff3 returns the transform applying b first, then a.
func mulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

func applyAff3(m f64.Aff3, p Point) Point {
	return Point{X: m[0]*p.X + m[1]*p.Y + m[2], Y: m[3]*p.X + m[4]*p.Y + m[5]}
}

type fillSink struct {
	z *vector.Rasterizer
}

func (s *fillSink) moveTo(p Point) { s.z.MoveTo(float32(p.X), float32(p.Y)) }
func (s *fillSink) lineTo(p Point) { s.z.LineTo(float32(p.X), float32(p.Y)) }
func (s *fillSink) cubeTo(c1, c2, p Point) {
	s.z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}
func (s *fillSink) closePath() { s.z.ClosePath() }

// ppathSink collects a path in pixel coordinates for stroking.
type ppathSink struct {
	p ppath.Path
}

func (s *ppathSink) moveTo(p Point) { s.p.MoveTo(float32(p.X), float32(p.Y)) }
func (s *ppathSink) lineTo(p Point) { s.p.LineTo(float32(p.X), float32(p.Y)) }
func (s *ppathSink) cubeTo(c1, c2, p Point) {
	s.p.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}
func (s *ppathSink) closePath() { s.p.Close() }

// strokeOutline dashes p and returns the outline of its stroke, ready to be filled.
// Widths and dash lengths are in device units and scaled to pixels.
func strokeOutline(p ppath.Path, st Stroke, scale float64) ppath.Path {
	if len(st.Dash) > 0 {
		dash := make([]float32, len(st.Dash))
		for i, v := range st.Dash {
			dash[i] = float32(v * scale)
		}
		p = stroke.Dash(p, 0, dash...)
	}
	return stroke.Stroke(p, float32(st.Width*scale), stroke.ButtCap, stroke.MiterJoin, ppath.PixelTolerance)
}

// addPPath adds p to z, replacing arcs by cubics.
func addPPath(z *vector.Rasterizer, p ppath.Path) {
	p = p.ReplaceArcs()
	for s := p.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case ppath.MoveTo:
			z.MoveTo(end.X, end.Y)
		case ppath.LineTo:
			z.LineTo(end.X, end.Y)
		case ppath.QuadTo:
			cp := s.CP1()
			z.QuadTo(cp.X, cp.Y, end.X, end.Y)
		case ppath.CubeTo:
			cp1, cp2 := s.CP1(), s.CP2()
			z.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		case ppath.Close:
			z.ClosePath()
		}
	}
}
