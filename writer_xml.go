package pptgeom

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// XML namespace constants
const (
	nsDrawingML = "http://schemas.openxmlformats.org/drawingml/2006/main"
)

// --- Preset geometry ---

type xmlPrstGeom struct {
	XMLName xml.Name `xml:"a:prstGeom"`
	XmlnsA  string   `xml:"xmlns:a,attr"`
	Prst    string   `xml:"prst,attr"`
	AvLst   xmlAvLst `xml:"a:avLst"`
}

type xmlAvLst struct {
	Guides []xmlGuide `xml:"a:gd"`
}

type xmlGuide struct {
	Name string `xml:"name,attr"`
	Fmla string `xml:"fmla,attr"`
}

// --- Custom geometry ---

type xmlCustGeom struct {
	XMLName xml.Name   `xml:"a:custGeom"`
	XmlnsA  string     `xml:"xmlns:a,attr"`
	AvLst   xmlAvLst   `xml:"a:avLst"`
	PathLst xmlPathLst `xml:"a:pathLst"`
}

type xmlPathLst struct {
	Paths []xmlPath `xml:"a:path"`
}

type xmlPath struct {
	W        string   `xml:"w,attr,omitempty"`
	H        string   `xml:"h,attr,omitempty"`
	Commands []xmlCmd // element names come from each XMLName
}

type xmlCmd struct {
	XMLName xml.Name
	WR      string  `xml:"wR,attr,omitempty"`
	HR      string  `xml:"hR,attr,omitempty"`
	StAng   string  `xml:"stAng,attr,omitempty"`
	SwAng   string  `xml:"swAng,attr,omitempty"`
	Pts     []xmlPt `xml:"a:pt"`
}

type xmlPt struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

// EncodeGeometry writes the geometry of r as a DrawingML <a:prstGeom> or
// <a:custGeom> fragment that DecodeGeometry reads back. Custom commands are written
// in drawing order. Arc center shifts have no DrawingML attribute and are dropped.
func EncodeGeometry(w io.Writer, r Request) error {
	var v any
	if r.Custom != nil {
		v = custGeomXML(r.Custom)
	} else {
		if !r.Preset.valid() {
			return fmt.Errorf("encode geometry: %v: %w", r.Preset, ErrUnsupportedPreset)
		}
		v = xmlPrstGeom{
			XmlnsA: nsDrawingML,
			Prst:   r.Preset.String(),
			AvLst:  avLstXML(r.Adjustments),
		}
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode geometry: %w", err)
	}
	return enc.Close()
}

// avLstXML writes literals in the "val n" formula form. Literals that do not
// parse are kept verbatim.
func avLstXML(adj []AdjustmentGuide) xmlAvLst {
	var l xmlAvLst
	for _, a := range adj {
		fmla := a.Value
		if v, err := parseGuideLiteral(a.Value); err == nil {
			fmla = "val " + xmlNum(v)
		}
		l.Guides = append(l.Guides, xmlGuide{Name: a.Name, Fmla: fmla})
	}
	return l
}

func custGeomXML(g *CustomGeometry) xmlCustGeom {
	out := xmlCustGeom{XmlnsA: nsDrawingML}
	for _, p := range g.Paths {
		xp := xmlPath{}
		if p.Size.W > 0 {
			xp.W = xmlNum(p.Size.W)
		}
		if p.Size.H > 0 {
			xp.H = xmlNum(p.Size.H)
		}
		cmds := slices.Clone(p.Commands)
		slices.SortStableFunc(cmds, func(a, b OrderedCommand) int { return cmp.Compare(a.Order, b.Order) })
		for _, c := range cmds {
			if c.Kind < CmdMoveTo || c.Kind > CmdClose {
				continue
			}
			xc := xmlCmd{XMLName: xml.Name{Local: "a:" + c.Kind.String()}}
			if c.Kind == CmdArcTo {
				xc.WR, xc.HR = xmlNum(c.WR), xmlNum(c.HR)
				xc.StAng, xc.SwAng = xmlNum(c.StAng), xmlNum(c.SwAng)
			}
			for _, pt := range c.Pts {
				xc.Pts = append(xc.Pts, xmlPt{X: xmlNum(pt.X), Y: xmlNum(pt.Y)})
			}
			xp.Commands = append(xp.Commands, xc)
		}
		out.PathLst.Paths = append(out.PathLst.Paths, xp)
	}
	return out
}

// xmlNum formats v without an exponent, as DrawingML coordinates are plain
// integers in practice.
func xmlNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
