package pptgeom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetFragment = `<p:spPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
        xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <a:xfrm><a:off x="0" y="0"/><a:ext cx="1905000" cy="952500"/></a:xfrm>
  <a:prstGeom prst="rightArrow">
    <a:avLst>
      <a:gd name="adj1" fmla="val 30000"/>
      <a:gd name="adj2" fmla="val 60000"/>
    </a:avLst>
  </a:prstGeom>
</p:spPr>`

const customFragment = `<a:custGeom xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <a:avLst/>
  <a:gdLst><a:gd name="x1" fmla="*/ w 1 2"/></a:gdLst>
  <a:pathLst>
    <a:path w="100" h="100">
      <a:moveTo><a:pt x="0" y="50"/></a:moveTo>
      <a:arcTo wR="50" hR="50" stAng="10800000" swAng="5400000"/>
      <a:lnTo><a:pt x="100" y="100"/></a:lnTo>
      <a:cubicBezTo><a:pt x="80" y="100"/><a:pt x="20" y="100"/><a:pt x="0" y="100"/></a:cubicBezTo>
      <a:close/>
    </a:path>
    <a:path w="10" h="10">
      <a:moveTo><a:pt x="0" y="0"/></a:moveTo>
    </a:path>
  </a:pathLst>
</a:custGeom>`

func TestDecodeGeometry_Preset(t *testing.T) {
	req, err := DecodeGeometry(strings.NewReader(presetFragment), BoundingBox{})
	require.NoError(t, err)
	assert.Equal(t, PresetRightArrow, req.Preset)
	assert.Nil(t, req.Custom)
	assert.Equal(t, []AdjustmentGuide{{"adj1", "val 30000"}, {"adj2", "val 60000"}}, req.Adjustments)
	// 1905000 x 952500 EMU at 96 DPI.
	assert.InDelta(t, 200, req.Box.W, 1e-9)
	assert.InDelta(t, 100, req.Box.H, 1e-9)

	p, err := req.Synthesize()
	require.NoError(t, err)
	pts, ok := p.Polygon()
	require.True(t, ok)
	assertPoint(t, Pt(0, 35), pts[0])
	assertPoint(t, Pt(140, 35), pts[1])
}

func TestDecodeGeometry_ExplicitBoxWins(t *testing.T) {
	req, err := DecodeGeometry(strings.NewReader(presetFragment), Box(50, 50))
	require.NoError(t, err)
	assert.Equal(t, Box(50, 50), req.Box)
}

func TestDecodeGeometry_UnknownPreset(t *testing.T) {
	req, err := DecodeGeometry(strings.NewReader(`<a:prstGeom prst="cloudCallout"/>`), Box(10, 10))
	require.NoError(t, err)
	assert.Equal(t, PresetUnknown, req.Preset)
	assert.Equal(t, "cloudCallout", req.Name)

	_, err = req.Synthesize()
	assert.ErrorIs(t, err, ErrUnsupportedPreset)
}

func TestDecodeGeometry_Custom(t *testing.T) {
	req, err := DecodeGeometry(strings.NewReader(customFragment), Box(100, 100))
	require.NoError(t, err)
	require.NotNil(t, req.Custom)
	assert.Empty(t, req.Adjustments, "gdLst formulas are not adjustments")
	require.Len(t, req.Custom.Paths, 2)

	first := req.Custom.Paths[0]
	assert.Equal(t, Box(100, 100), first.Size)
	require.Len(t, first.Commands, 5)
	for i, c := range first.Commands {
		assert.Equal(t, i, c.Order)
	}
	assert.Equal(t, CmdArcTo, first.Commands[1].Kind)
	assert.Equal(t, 50.0, first.Commands[1].WR)
	assert.Equal(t, 5400000.0, first.Commands[1].SwAng)
	assert.Len(t, first.Commands[3].Pts, 3)
	assert.Equal(t, CmdClose, first.Commands[4].Kind)

	p, err := req.Synthesize()
	assert.ErrorIs(t, err, ErrExtraPathBlocks)
	assert.Equal(t, 1, countKind(p, SegArcTo))
	assert.Equal(t, 1, countKind(p, SegCubicTo))
}

func TestDecodeGeometry_QuadBezier(t *testing.T) {
	const frag = `<custGeom><pathLst><path w="10" h="10">
		<moveTo><pt x="0" y="0"/></moveTo>
		<quadBezTo><pt x="5" y="10"/><pt x="10" y="0"/></quadBezTo>
	</path></pathLst></custGeom>`
	req, err := DecodeGeometry(strings.NewReader(frag), Box(10, 10))
	require.NoError(t, err)
	cmds := req.Custom.Paths[0].Commands
	require.Len(t, cmds, 2)
	assert.Equal(t, CmdQuadBezTo, cmds[1].Kind)
	assert.Len(t, cmds[1].Pts, 2)
}

func TestDecodeGeometry_UnreadableCoordinate(t *testing.T) {
	const frag = `<custGeom><pathLst><path w="10" h="10">
		<moveTo><pt x="l" y="t"/></moveTo>
		<lnTo><pt x="10" y="10"/></lnTo>
	</path></pathLst></custGeom>`
	req, err := DecodeGeometry(strings.NewReader(frag), Box(10, 10))
	assert.ErrorIs(t, err, ErrMalformedCommand)
	require.NotNil(t, req.Custom)
	assert.Equal(t, Pt(0, 0), req.Custom.Paths[0].Commands[0].Pts[0])
}

func TestDecodeGeometry_Errors(t *testing.T) {
	_, err := DecodeGeometry(strings.NewReader(`<a:spPr><a:xfrm/></a:spPr>`), Box(10, 10))
	assert.ErrorIs(t, err, errNoGeometry)

	_, err = DecodeGeometry(strings.NewReader(`<a:prstGeom prst="rect">`), Box(10, 10))
	assert.Error(t, err)
}
