package pptgeom

import (
	"image/color"
	"strconv"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack = Color{ARGB: "FF000000"}
	ColorWhite = Color{ARGB: "FFFFFFFF"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return ColorBlack
	}
	return Color{ARGB: argb}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

// RGBA converts the color for image drawing. An invalid color is opaque black.
func (c Color) RGBA() color.RGBA {
	v, err := strconv.ParseUint(c.ARGB, 16, 32)
	if err != nil || len(c.ARGB) != 8 {
		return color.RGBA{A: 0xFF}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

// Hex returns the "#RRGGBB" form used in markup.
func (c Color) Hex() string {
	if len(c.ARGB) != 8 {
		return "#000000"
	}
	return "#" + c.ARGB[2:]
}

// PaintKind selects what a Paint refers to.
type PaintKind int

const (
	PaintNone PaintKind = iota
	PaintSolid
	PaintGradient
	PaintPattern
)

// Paint is a fill resolved outside this package: a flat color, or a handle to a
// gradient or image pattern defined elsewhere in the output document.
type Paint struct {
	Kind  PaintKind
	Color Color  // PaintSolid
	Ref   string // PaintGradient, PaintPattern
}

// NoPaint leaves the shape unfilled.
func NoPaint() Paint { return Paint{Kind: PaintNone} }

// SolidPaint fills with c.
func SolidPaint(c Color) Paint { return Paint{Kind: PaintSolid, Color: c} }

// GradientPaint fills with the gradient defined under id.
func GradientPaint(id string) Paint { return Paint{Kind: PaintGradient, Ref: id} }

// PatternPaint fills with the image pattern defined under id.
func PatternPaint(id string) Paint { return Paint{Kind: PaintPattern, Ref: id} }

// Value returns the paint as an SVG paint value.
func (p Paint) Value() string {
	switch p.Kind {
	case PaintSolid:
		return p.Color.Hex()
	case PaintGradient, PaintPattern:
		return "url(#" + p.Ref + ")"
	default:
		return "none"
	}
}

// Stroke describes an outline. A zero Width means no outline.
type Stroke struct {
	Color Color
	Width float64   // device units
	Dash  []float64 // on/off lengths in device units; nil draws solid
}

// DashArray returns the dash pattern as an SVG stroke-dasharray value.
func (s Stroke) DashArray() string {
	parts := make([]string, len(s.Dash))
	for i, d := range s.Dash {
		parts[i] = formatNum(d)
	}
	return strings.Join(parts, " ")
}
