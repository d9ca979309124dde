package pptgeom

import (
	"errors"
	"fmt"
)

// PresetKind identifies a preset geometry formula.
type PresetKind int

// PresetUnknown stands for a preset name with no formula.
const PresetUnknown PresetKind = -1

const (
	PresetRect PresetKind = iota
	PresetEllipse
	PresetTriangle
	PresetRtTriangle
	PresetDiamond
	PresetParallelogram
	PresetTrapezoid
	PresetPentagon
	PresetHexagon
	PresetOctagon
	PresetPlus
	PresetChevron
	PresetHomePlate
	PresetFrame
	PresetDonut
	PresetSmileyFace
	PresetFlowChartProcess
	PresetFlowChartDecision

	PresetRightArrow
	PresetLeftArrow
	PresetUpArrow
	PresetDownArrow
	PresetLeftRightArrow
	PresetUpDownArrow

	PresetLeftBrace
	PresetRightBrace
	PresetLeftBracket
	PresetRightBracket
	PresetBracePair
	PresetBracketPair

	PresetPie
	PresetPieWedge
	PresetArc
	PresetChord
	PresetBlockArc

	PresetVerticalScroll
	PresetHorizontalScroll

	PresetGear6
	PresetGear9

	PresetRoundRect
	PresetRound1Rect
	PresetRound2SameRect
	PresetRound2DiagRect
	PresetSnip1Rect
	PresetSnip2SameRect
	PresetSnip2DiagRect
	PresetSnipRoundRect

	numPresetKinds
)

// presetNames holds the DrawingML prst attribute value of each kind.
var presetNames = [numPresetKinds]string{
	PresetRect:              "rect",
	PresetEllipse:           "ellipse",
	PresetTriangle:          "triangle",
	PresetRtTriangle:        "rtTriangle",
	PresetDiamond:           "diamond",
	PresetParallelogram:     "parallelogram",
	PresetTrapezoid:         "trapezoid",
	PresetPentagon:          "pentagon",
	PresetHexagon:           "hexagon",
	PresetOctagon:           "octagon",
	PresetPlus:              "plus",
	PresetChevron:           "chevron",
	PresetHomePlate:         "homePlate",
	PresetFrame:             "frame",
	PresetDonut:             "donut",
	PresetSmileyFace:        "smileyFace",
	PresetFlowChartProcess:  "flowChartProcess",
	PresetFlowChartDecision: "flowChartDecision",
	PresetRightArrow:        "rightArrow",
	PresetLeftArrow:         "leftArrow",
	PresetUpArrow:           "upArrow",
	PresetDownArrow:         "downArrow",
	PresetLeftRightArrow:    "leftRightArrow",
	PresetUpDownArrow:       "upDownArrow",
	PresetLeftBrace:         "leftBrace",
	PresetRightBrace:        "rightBrace",
	PresetLeftBracket:       "leftBracket",
	PresetRightBracket:      "rightBracket",
	PresetBracePair:         "bracePair",
	PresetBracketPair:       "bracketPair",
	PresetPie:               "pie",
	PresetPieWedge:          "pieWedge",
	PresetArc:               "arc",
	PresetChord:             "chord",
	PresetBlockArc:          "blockArc",
	PresetVerticalScroll:    "verticalScroll",
	PresetHorizontalScroll:  "horizontalScroll",
	PresetGear6:             "gear6",
	PresetGear9:             "gear9",
	PresetRoundRect:         "roundRect",
	PresetRound1Rect:        "round1Rect",
	PresetRound2SameRect:    "round2SameRect",
	PresetRound2DiagRect:    "round2DiagRect",
	PresetSnip1Rect:         "snip1Rect",
	PresetSnip2SameRect:     "snip2SameRect",
	PresetSnip2DiagRect:     "snip2DiagRect",
	PresetSnipRoundRect:     "snipRoundRect",
}

var presetByName = func() map[string]PresetKind {
	m := make(map[string]PresetKind, numPresetKinds)
	for k, name := range presetNames {
		m[name] = PresetKind(k)
	}
	return m
}()

func (k PresetKind) String() string {
	if k == PresetUnknown {
		return "unknown"
	}
	if !k.valid() {
		return fmt.Sprintf("PresetKind(%d)", int(k))
	}
	return presetNames[k]
}

func (k PresetKind) valid() bool { return k >= 0 && k < numPresetKinds }

// ParsePresetKind looks up a kind by its DrawingML name, e.g. "rightArrow".
func ParsePresetKind(name string) (PresetKind, bool) {
	k, ok := presetByName[name]
	if !ok {
		return PresetUnknown, false
	}
	return k, true
}

// MarshalText implements encoding.TextMarshaler.
func (k PresetKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("marshal %v: %w", k, ErrUnsupportedPreset)
	}
	return []byte(presetNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An unknown name sets
// PresetUnknown and returns ErrUnsupportedPreset.
func (k *PresetKind) UnmarshalText(text []byte) error {
	kind, ok := ParsePresetKind(string(text))
	*k = kind
	if !ok {
		return fmt.Errorf("preset %q: %w", text, ErrUnsupportedPreset)
	}
	return nil
}

// PresetKinds returns every supported kind in declaration order.
func PresetKinds() []PresetKind {
	kinds := make([]PresetKind, numPresetKinds)
	for i := range kinds {
		kinds[i] = PresetKind(i)
	}
	return kinds
}

// presetHandler is the guide table and formula of one kind.
type presetHandler struct {
	guides []GuideSpec
	build  func(box BoundingBox, g Guides) RenderedPath
}

// presetHandlers is indexed by kind; TestEveryPresetHasHandler fails when a kind
// is added without a formula.
var presetHandlers = [numPresetKinds]presetHandler{
	PresetRect:              {nil, rectPath},
	PresetEllipse:           {nil, ellipsePath},
	PresetTriangle:          {triangleGuides, trianglePath},
	PresetRtTriangle:        {nil, rtTrianglePath},
	PresetDiamond:           {nil, diamondPath},
	PresetParallelogram:     {parallelogramGuides, parallelogramPath},
	PresetTrapezoid:         {trapezoidGuides, trapezoidPath},
	PresetPentagon:          {nil, pentagonPath},
	PresetHexagon:           {hexagonGuides, hexagonPath},
	PresetOctagon:           {octagonGuides, octagonPath},
	PresetPlus:              {plusGuides, plusPath},
	PresetChevron:           {chevronGuides, chevronPath},
	PresetHomePlate:         {homePlateGuides, homePlatePath},
	PresetFrame:             {frameGuides, framePath},
	PresetDonut:             {donutGuides, donutPath},
	PresetSmileyFace:        {smileyGuides, smileyFacePath},
	PresetFlowChartProcess:  {nil, rectPath},
	PresetFlowChartDecision: {nil, diamondPath},

	PresetRightArrow:     {horizontalArrowGuides, arrowBuilder(pointRight, false)},
	PresetLeftArrow:      {horizontalArrowGuides, arrowBuilder(pointLeft, false)},
	PresetUpArrow:        {verticalArrowGuides, arrowBuilder(pointUp, false)},
	PresetDownArrow:      {verticalArrowGuides, arrowBuilder(pointDown, false)},
	PresetLeftRightArrow: {horizontalDoubleArrowGuides, arrowBuilder(pointRight, true)},
	PresetUpDownArrow:    {verticalDoubleArrowGuides, arrowBuilder(pointDown, true)},

	PresetLeftBrace:    {braceGuides, braceBuilder(false)},
	PresetRightBrace:   {braceGuides, braceBuilder(true)},
	PresetLeftBracket:  {bracketGuides, bracketBuilder(false)},
	PresetRightBracket: {bracketGuides, bracketBuilder(true)},
	PresetBracePair:    {bracePairGuides, bracePairPath},
	PresetBracketPair:  {bracketPairGuides, bracketPairPath},

	PresetPie:      {pieGuides, piePath},
	PresetPieWedge: {nil, pieWedgePath},
	PresetArc:      {arcGuides, arcBuilder(false)},
	PresetChord:    {chordGuides, arcBuilder(true)},
	PresetBlockArc: {blockArcGuides, blockArcPath},

	PresetVerticalScroll:   {scrollGuides, scrollBuilder(false)},
	PresetHorizontalScroll: {scrollGuides, scrollBuilder(true)},

	PresetGear6: {gearGuides, gearBuilder(6)},
	PresetGear9: {gearGuides, gearBuilder(9)},

	PresetRoundRect:      {roundRectGuides, cornerBuilder([4]string{"adj", "adj", "adj", "adj"}, allRound)},
	PresetRound1Rect:     {oneCornerGuides, cornerBuilder([4]string{TopRight: "adj"}, allRound)},
	PresetRound2SameRect: {sameCornerGuides, cornerBuilder([4]string{"adj1", "adj1", "adj2", "adj2"}, allRound)},
	PresetRound2DiagRect: {diagRoundGuides, cornerBuilder([4]string{"adj1", "adj2", "adj1", "adj2"}, allRound)},
	PresetSnip1Rect:      {oneCornerGuides, cornerBuilder([4]string{TopRight: "adj"}, allSnip)},
	PresetSnip2SameRect:  {sameCornerGuides, cornerBuilder([4]string{"adj1", "adj1", "adj2", "adj2"}, allSnip)},
	PresetSnip2DiagRect:  {diagSnipGuides, cornerBuilder([4]string{"adj1", "adj2", "adj1", "adj2"}, allSnip)},
	PresetSnipRoundRect:  {snipRoundRectGuides, cornerBuilder([4]string{TopLeft: "adj1", TopRight: "adj2"}, snipRound)},
}

// PresetGuideSpecs returns the guide table of a kind, in declaration order.
func PresetGuideSpecs(kind PresetKind) []GuideSpec {
	if !kind.valid() {
		return nil
	}
	return presetHandlers[kind].guides
}

// ResolvePresetGuides resolves raw adjustments against the kind's guide table.
func ResolvePresetGuides(kind PresetKind, box BoundingBox, adj []AdjustmentGuide) (Guides, error) {
	box, boxErr := box.Normalize()
	g, err := ResolveGuides(adj, PresetGuideSpecs(kind), box)
	return g, errors.Join(boxErr, err)
}

// SynthesizePreset builds the path of a preset shape fitted to box.
//
// The returned path is always safe to use. A non-nil error lists what was
// substituted: a clamped box, defaulted guides, or ErrUnsupportedPreset with an
// empty path.
func SynthesizePreset(kind PresetKind, box BoundingBox, adj []AdjustmentGuide) (RenderedPath, error) {
	if !kind.valid() || presetHandlers[kind].build == nil {
		return RenderedPath{}, fmt.Errorf("%v: %w", kind, ErrUnsupportedPreset)
	}
	box, boxErr := box.Normalize()
	h := presetHandlers[kind]
	g, guideErr := ResolveGuides(adj, h.guides, box)
	path := h.build(box, g)
	if err := errors.Join(boxErr, guideErr); err != nil {
		return path, fmt.Errorf("%v: %w", kind, err)
	}
	return path, nil
}

// SynthesizePresetName is SynthesizePreset keyed by the DrawingML name.
func SynthesizePresetName(name string, box BoundingBox, adj []AdjustmentGuide) (RenderedPath, error) {
	kind, ok := ParsePresetKind(name)
	if !ok {
		return RenderedPath{}, fmt.Errorf("%q: %w", name, ErrUnsupportedPreset)
	}
	return SynthesizePreset(kind, box, adj)
}
