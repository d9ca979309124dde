package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	pptgeom "github.com/VantageDataChat/goppt-geometry"
)

// galleryConfig is the YAML layout of a gallery. Shape fields left empty inherit
// the gallery-wide values.
type galleryConfig struct {
	Columns     int           `yaml:"columns"`
	Width       float64       `yaml:"width"`
	Height      float64       `yaml:"height"`
	Fill        string        `yaml:"fill"`
	Stroke      string        `yaml:"stroke"`
	StrokeWidth float64       `yaml:"strokeWidth"`
	Shapes      []shapeConfig `yaml:"shapes"`
}

type shapeConfig struct {
	Name string `yaml:"name"`
	// Preset defaults to rect. Geometry, a DrawingML prstGeom or custGeom
	// fragment, takes precedence when set.
	Preset      pptgeom.PresetKind `yaml:"preset"`
	Geometry    string             `yaml:"geometry"`
	Width       float64            `yaml:"width"`
	Height      float64            `yaml:"height"`
	Adjustments []adjustmentConfig `yaml:"adjustments"`
	Fill        string             `yaml:"fill"`
	Stroke      string             `yaml:"stroke"`
}

type adjustmentConfig struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// shape is one resolved gallery entry.
type shape struct {
	req    pptgeom.Request
	fill   pptgeom.Paint
	stroke pptgeom.Stroke
}

func defaultConfig() *galleryConfig {
	return &galleryConfig{
		Columns:     6,
		Width:       120,
		Height:      80,
		Fill:        "#4472C4",
		Stroke:      "#1F3864",
		StrokeWidth: 1.5,
	}
}

// loadConfig reads a gallery from path. An empty path yields the default gallery
// of every preset.
func loadConfig(path string) (*galleryConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Columns <= 0 {
		cfg.Columns = 1
	}
	return cfg, nil
}

// shapes resolves the configured entries, or one entry per preset when the config
// lists none.
func (c *galleryConfig) shapes() ([]shape, error) {
	if len(c.Shapes) == 0 {
		out := make([]shape, 0, len(pptgeom.PresetKinds()))
		for _, k := range pptgeom.PresetKinds() {
			r := pptgeom.PresetRequest(k, pptgeom.Box(c.Width, c.Height))
			r.Name = k.String()
			out = append(out, shape{req: r, fill: c.paint(""), stroke: c.stroke("")})
		}
		return out, nil
	}

	out := make([]shape, 0, len(c.Shapes))
	for i, s := range c.Shapes {
		box := pptgeom.Box(or(s.Width, c.Width), or(s.Height, c.Height))
		var r pptgeom.Request
		if strings.TrimSpace(s.Geometry) != "" {
			var err error
			r, err = pptgeom.DecodeGeometry(strings.NewReader(s.Geometry), box)
			if err != nil && !errors.Is(err, pptgeom.ErrMalformedCommand) {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
			if r.Box == (pptgeom.BoundingBox{}) {
				r.Box = box
			}
		} else {
			r = pptgeom.PresetRequest(s.Preset, box)
			for _, a := range s.Adjustments {
				r.Adjustments = append(r.Adjustments, pptgeom.AdjustmentGuide{Name: a.Name, Value: a.Value})
			}
		}
		r.Name = s.Name
		if r.Name == "" {
			r.Name = fmt.Sprintf("%s-%d", r.Preset, i)
			if r.Custom != nil {
				r.Name = fmt.Sprintf("custom-%d", i)
			}
		}
		out = append(out, shape{req: r, fill: c.paint(s.Fill), stroke: c.stroke(s.Stroke)})
	}
	return out, nil
}

func (c *galleryConfig) paint(hex string) pptgeom.Paint {
	hex = orString(hex, c.Fill)
	if hex == "" || hex == "none" {
		return pptgeom.NoPaint()
	}
	return pptgeom.SolidPaint(pptgeom.NewColor(hex))
}

func (c *galleryConfig) stroke(hex string) pptgeom.Stroke {
	hex = orString(hex, c.Stroke)
	if hex == "" || hex == "none" {
		return pptgeom.Stroke{}
	}
	return pptgeom.Stroke{Color: pptgeom.NewColor(hex), Width: c.StrokeWidth}
}

func or(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func orString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
