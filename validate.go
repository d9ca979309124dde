package pptgeom

import (
	"fmt"
	"strings"
)

// Validate checks the request for structural issues and returns an error
// describing all problems found, or nil if the request is well formed.
// Synthesis copes with every problem reported here; Validate exists so callers can
// surface them before drawing.
func (r Request) Validate() error {
	var errs []string

	if !(r.Box.W > 0) {
		errs = append(errs, "box width must be positive")
	}
	if !(r.Box.H > 0) {
		errs = append(errs, "box height must be positive")
	}

	if r.Custom == nil {
		if !r.Preset.valid() {
			errs = append(errs, fmt.Sprintf("preset %v has no formula", r.Preset))
		}
	} else {
		errs = append(errs, validateCustom(r.Custom)...)
	}

	if len(errs) == 0 {
		return nil
	}
	prefix := "validation failed"
	if r.Name != "" {
		prefix += " for " + r.Name
	}
	return fmt.Errorf("%s:\n  %s", prefix, strings.Join(errs, "\n  "))
}

func validateCustom(g *CustomGeometry) []string {
	var errs []string
	if len(g.Paths) == 0 {
		return []string{"custom geometry has no path blocks"}
	}
	if len(g.Paths) > 1 {
		errs = append(errs, fmt.Sprintf("%d path blocks; only the first is drawn", len(g.Paths)))
	}
	p := g.Paths[0]
	if len(p.Commands) == 0 {
		errs = append(errs, "first path block has no commands")
	}
	seen := make(map[int]bool, len(p.Commands))
	for _, c := range p.Commands {
		if seen[c.Order] {
			errs = append(errs, fmt.Sprintf("order tag %d used more than once", c.Order))
		}
		seen[c.Order] = true
		if err := c.check(); err != nil {
			errs = append(errs, fmt.Sprintf("%v at order %d: %v", c.Kind, c.Order, err))
		}
	}
	return errs
}
