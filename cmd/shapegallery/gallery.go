package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pptgeom "github.com/VantageDataChat/goppt-geometry"
)

const (
	cellPadding  = 16
	labelHeight  = 18
	galleryFile  = "gallery.svg"
	imageFileExt = ".png"
)

type cell struct {
	name     string
	title    string
	box      pptgeom.BoundingBox
	drawable pptgeom.Drawable
}

// title turns a shape name such as "leftRightArrow" into "Left Right Arrow".
func title(name string) string {
	var b strings.Builder
	prev := rune(0)
	for _, r := range name {
		switch {
		case r == '-' || r == '_':
			r = ' '
		case unicode.IsUpper(r) && prev != 0 && !unicode.IsUpper(prev) && prev != ' ':
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return cases.Title(language.English).String(b.String())
}

// fileName keeps letters, digits, dashes and underscores of name.
func fileName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
}

// layout returns the cell size shared by every shape in the grid.
func layout(cells []cell) (w, h float64) {
	for _, c := range cells {
		w = math.Max(w, c.box.W)
		h = math.Max(h, c.box.H)
	}
	return w + 2*cellPadding, h + 2*cellPadding + labelHeight
}

func writeGallery(dir string, cells []cell, columns int) error {
	path := filepath.Join(dir, galleryFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := renderGallery(newSVGWriter(bw), cells, columns); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return bw.Flush()
}

func renderGallery(svg *svgWriter, cells []cell, columns int) error {
	columns = max(columns, 1)
	rows := (len(cells) + columns - 1) / columns
	cw, ch := layout(cells)
	svg.start(cw*float64(min(columns, max(len(cells), 1))), ch*float64(rows))
	for i, c := range cells {
		x := float64(i%columns) * cw
		y := float64(i/columns) * ch
		svg.openGroup(x+cellPadding, y+cellPadding)
		svg.drawable(c.drawable)
		svg.closeGroup()
		svg.label(x+cw/2, y+ch-cellPadding/2, c.title)
	}
	return svg.end()
}

func writeImages(dir string, cells []cell, scale float64) error {
	opts := pptgeom.DefaultRenderOptions()
	opts.Scale = scale
	for _, c := range cells {
		img := pptgeom.RasterizeDrawable(c.drawable, c.box, opts)
		path := filepath.Join(dir, fileName(c.name)+imageFileExt)
		opts.Format = pptgeom.FormatFromPath(path)
		if err := pptgeom.SaveImage(img, path, opts); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}
