package pptgeom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// errNoGeometry is returned when a fragment holds neither prstGeom nor custGeom.
var errNoGeometry = errors.New("no prstGeom or custGeom element")

// DecodeGeometry reads the DrawingML geometry of one shape from r: a <a:prstGeom>
// or <a:custGeom> element, or any element containing one such as <p:spPr>. When box
// is zero and the fragment carries an <a:ext>, the box is taken from it at
// DefaultDPI.
//
// Malformed XML or a fragment without geometry is an error with a zero Request.
// Unreadable numbers inside an otherwise valid fragment are reported alongside a
// usable Request: guide literals are left for the resolver to default, and
// coordinates read as 0 with ErrMalformedCommand.
func DecodeGeometry(r io.Reader, box BoundingBox) (Request, error) {
	var (
		req      Request
		found    bool
		diags    []error
		extCX    int64
		extCY    int64
		hasExt   bool
		inAvLst  bool
		inCust   bool
		inPathLs bool
		path     *CustomPath
		order    int
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Request{}, fmt.Errorf("decode geometry: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "ext":
				if cx, ok := attrInt(t, "cx"); ok {
					extCX, hasExt = cx, true
				}
				if cy, ok := attrInt(t, "cy"); ok {
					extCY = cy
				}
			case "prstGeom":
				found = true
				req.Preset, _ = ParsePresetKind(attr(t, "prst"))
				if req.Preset == PresetUnknown {
					req.Name = attr(t, "prst")
				}
			case "custGeom":
				found = true
				inCust = true
				req.Custom = &CustomGeometry{}
			case "avLst":
				inAvLst = true
			case "gd":
				// Guides under custGeom's gdLst are formulas, not adjustments.
				if inAvLst && !inCust {
					req.Adjustments = append(req.Adjustments, AdjustmentGuide{
						Name:  attr(t, "name"),
						Value: attr(t, "fmla"),
					})
				}
			case "pathLst":
				if inCust {
					inPathLs = true
				}
			case "path":
				if inPathLs {
					path = &CustomPath{}
					order = 0
					w, _ := attrFloat(t, "w")
					h, _ := attrFloat(t, "h")
					path.Size = BoundingBox{W: w, H: h}
				}
			case "moveTo", "lnTo", "cubicBezTo", "quadBezTo", "close":
				if path != nil {
					kind, _ := ParseCommandKind(t.Name.Local)
					path.Commands = append(path.Commands, OrderedCommand{Kind: kind, Order: order})
					order++
				}
			case "arcTo":
				if path != nil {
					cmd := OrderedCommand{Kind: CmdArcTo, Order: order}
					for _, f := range []struct {
						name string
						dst  *float64
					}{
						{"wR", &cmd.WR}, {"hR", &cmd.HR}, {"stAng", &cmd.StAng}, {"swAng", &cmd.SwAng},
					} {
						v, err := attrFloat(t, f.name)
						if err != nil {
							diags = append(diags, fmt.Errorf("arcTo %s=%q: %w", f.name, attr(t, f.name), ErrMalformedCommand))
						}
						*f.dst = v
					}
					path.Commands = append(path.Commands, cmd)
					order++
				}
			case "pt":
				if path != nil && len(path.Commands) > 0 {
					x, errX := attrFloat(t, "x")
					y, errY := attrFloat(t, "y")
					if errX != nil || errY != nil {
						diags = append(diags, fmt.Errorf("pt x=%q y=%q: %w", attr(t, "x"), attr(t, "y"), ErrMalformedCommand))
					}
					last := &path.Commands[len(path.Commands)-1]
					last.Pts = append(last.Pts, Pt(x, y))
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "avLst":
				inAvLst = false
			case "path":
				if path != nil {
					req.Custom.Paths = append(req.Custom.Paths, *path)
					path = nil
				}
			case "pathLst":
				inPathLs = false
			case "custGeom":
				inCust = false
			}
		}
	}

	if !found {
		return Request{}, fmt.Errorf("decode geometry: %w", errNoGeometry)
	}
	if box == (BoundingBox{}) && hasExt {
		box = BoxFromEMU(extCX, extCY, DefaultDPI)
	}
	req.Box = box
	return req, errors.Join(diags...)
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attrInt(t xml.StartElement, name string) (int64, bool) {
	v, err := strconv.ParseInt(attr(t, name), 10, 64)
	return v, err == nil
}

// attrFloat parses a numeric attribute. A missing attribute reads as 0 without error.
func attrFloat(t xml.StartElement, name string) (float64, error) {
	s := attr(t, name)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
