package pptgeom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AdjustmentGuide is a raw adjustment value as read from a shape's guide list,
// e.g. {Name: "adj1", Value: "val 50000"}.
type AdjustmentGuide struct {
	Name  string
	Value string
}

// GuideUnit selects how a raw guide value is converted for the formulas.
type GuideUnit int

const (
	// UnitFraction values are 1/100000 of a length (50000 -> 0.5).
	UnitFraction GuideUnit = iota
	// UnitAngle values are 1/60000 of a degree (5400000 -> 90).
	UnitAngle
)

const (
	fractionScale = 100000
	angleScale    = 60000
)

func (u GuideUnit) convert(raw float64) float64 {
	if u == UnitAngle {
		return raw / angleScale
	}
	return raw / fractionScale
}

// GuideSpec documents one guide of a preset: its default and legal range, both in
// raw encoded units. Bounds may depend on the box and on guides declared earlier.
type GuideSpec struct {
	Name    string
	Default float64
	Unit    GuideUnit
	Bounds  func(g Guides, box BoundingBox) (lo, hi float64)
}

// Guides maps guide names to resolved values in formula units.
type Guides map[string]float64

// Get returns the resolved value of a guide, or 0 when it is unknown.
func (g Guides) Get(name string) float64 { return g[name] }

// raw returns the resolved value of name in raw encoded units.
func (g Guides) raw(name string, unit GuideUnit) float64 {
	if unit == UnitAngle {
		return g[name] * angleScale
	}
	return g[name] * fractionScale
}

// fixed returns a Bounds func for a constant [lo, hi] range.
func fixed(lo, hi float64) func(Guides, BoundingBox) (float64, float64) {
	return func(Guides, BoundingBox) (float64, float64) { return lo, hi }
}

// ResolveGuides resolves every guide in specs, in declaration order, from the raw
// list. Missing guides take their default; malformed literals take their default
// and are reported with ErrMalformedAdjustment. Every value is clamped into its
// range before the next guide's bounds are evaluated.
func ResolveGuides(raw []AdjustmentGuide, specs []GuideSpec, box BoundingBox) (Guides, error) {
	given := make(map[string]string, len(raw))
	for _, a := range raw {
		given[a.Name] = a.Value
	}

	// Single-guide presets accept "adj" and "adj1" interchangeably.
	if len(specs) == 1 {
		alias := map[string]string{"adj": "adj1", "adj1": "adj"}[specs[0].Name]
		if _, ok := given[specs[0].Name]; !ok && alias != "" {
			if v, ok := given[alias]; ok {
				given[specs[0].Name] = v
			}
		}
	}

	var errs []error
	g := make(Guides, len(specs))
	for _, spec := range specs {
		v := spec.Default
		if lit, ok := given[spec.Name]; ok {
			parsed, err := parseGuideLiteral(lit)
			if err != nil {
				errs = append(errs, fmt.Errorf("guide %s=%q: %w", spec.Name, lit, err))
			} else {
				v = parsed
			}
		}
		if spec.Bounds != nil {
			lo, hi := spec.Bounds(g, box)
			v = pin(lo, v, hi)
		}
		g[spec.Name] = spec.Unit.convert(v)
	}
	return g, errors.Join(errs...)
}

// parseGuideLiteral accepts "val 50000" (the DrawingML formula form) or a bare number.
func parseGuideLiteral(lit string) (float64, error) {
	s := strings.TrimSpace(lit)
	s = strings.TrimSpace(strings.TrimPrefix(s, "val"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrMalformedAdjustment
	}
	return v, nil
}

// pin clamps v into [lo, hi]. An inverted range collapses to lo.
func pin(lo, v, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
