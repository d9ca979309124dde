package pptgeom

import "errors"

// Diagnostic errors. None of them is fatal: every synthesis call still returns a
// usable (possibly empty) path alongside the error that describes what was
// substituted or skipped. Test with errors.Is.
var (
	// ErrMalformedAdjustment reports a guide literal that could not be parsed.
	// The guide's default value is used instead.
	ErrMalformedAdjustment = errors.New("malformed adjustment")

	// ErrDegenerateBoundingBox reports a width or height <= 0. The side is clamped to 1.
	ErrDegenerateBoundingBox = errors.New("degenerate bounding box")

	// ErrUnsupportedPreset reports a preset kind with no synthesis formula.
	ErrUnsupportedPreset = errors.New("unsupported preset")

	// ErrUnsupportedCustomCommand reports a custom path command with no synthesis
	// formula (quadBezTo). The command is skipped.
	ErrUnsupportedCustomCommand = errors.New("unsupported custom command")

	// ErrMalformedCommand reports a custom path command with the wrong number of points.
	ErrMalformedCommand = errors.New("malformed custom command")

	// ErrExtraPathBlocks reports a custom geometry with more than one path block.
	// Only the first block is drawn.
	ErrExtraPathBlocks = errors.New("extra custom path blocks ignored")
)
