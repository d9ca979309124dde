package pptgeom

// Request is everything the synthesis engine needs for one shape: either a preset
// kind with its adjustments, or a custom geometry, plus the target box.
type Request struct {
	// Name identifies the shape in diagnostics; it is not used for drawing.
	Name string

	Preset      PresetKind
	Adjustments []AdjustmentGuide

	// Custom, when set, takes precedence over Preset.
	Custom *CustomGeometry

	Box BoundingBox
}

// PresetRequest builds a preset request.
func PresetRequest(kind PresetKind, box BoundingBox, adj ...AdjustmentGuide) Request {
	return Request{Preset: kind, Box: box, Adjustments: adj}
}

// CustomRequest builds a custom geometry request.
func CustomRequest(g *CustomGeometry, box BoundingBox) Request {
	return Request{Custom: g, Box: box}
}

// Synthesize dispatches the request to the preset library or the custom assembler.
func (r Request) Synthesize() (RenderedPath, error) {
	if r.Custom != nil {
		return AssembleGeometry(r.Custom, r.Box)
	}
	return SynthesizePreset(r.Preset, r.Box, r.Adjustments)
}
