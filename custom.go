package pptgeom

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// CommandKind identifies a custom geometry path command.
type CommandKind int

const (
	CmdMoveTo CommandKind = iota
	CmdLineTo
	CmdCubicBezTo
	CmdQuadBezTo
	CmdArcTo
	CmdClose
)

var commandNames = [...]string{
	CmdMoveTo:     "moveTo",
	CmdLineTo:     "lnTo",
	CmdCubicBezTo: "cubicBezTo",
	CmdQuadBezTo:  "quadBezTo",
	CmdArcTo:      "arcTo",
	CmdClose:      "close",
}

// String returns the DrawingML element name of the command.
func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
	return commandNames[k]
}

// ParseCommandKind looks up a command by its DrawingML element name.
func ParseCommandKind(name string) (CommandKind, bool) {
	i := slices.Index(commandNames[:], name)
	return CommandKind(i), i >= 0
}

// OrderedCommand is one custom path command tagged with its position in the
// drawing sequence. Coordinates and radii are in the declared path space.
type OrderedCommand struct {
	Kind  CommandKind
	Order int
	// Pts holds 1 point for moveTo and lnTo, 3 (control1, control2, end) for
	// cubicBezTo, 2 for quadBezTo.
	Pts []Point

	// Arc parameters: radii, then start and sweep angles in 1/60000 degree.
	WR, HR       float64
	StAng, SwAng float64
	// Shift moves the arc center off the position derived from the pen.
	Shift Point
}

// GroupedCommands holds commands bucketed by kind, the way a path element's
// children are often collected. The Order tags still carry the drawing sequence.
type GroupedCommands struct {
	MoveTo     []OrderedCommand
	LnTo       []OrderedCommand
	CubicBezTo []OrderedCommand
	QuadBezTo  []OrderedCommand
	ArcTo      []OrderedCommand
	Close      []OrderedCommand
}

// Flatten merges the buckets into one list, setting each command's Kind from its
// bucket. The result is in bucket order, not drawing order.
func (g GroupedCommands) Flatten() []OrderedCommand {
	buckets := []struct {
		kind CommandKind
		cmds []OrderedCommand
	}{
		{CmdMoveTo, g.MoveTo},
		{CmdLineTo, g.LnTo},
		{CmdCubicBezTo, g.CubicBezTo},
		{CmdQuadBezTo, g.QuadBezTo},
		{CmdArcTo, g.ArcTo},
		{CmdClose, g.Close},
	}
	var out []OrderedCommand
	for _, bk := range buckets {
		for _, c := range bk.cmds {
			c.Kind = bk.kind
			out = append(out, c)
		}
	}
	return out
}

// CustomPath is one path block of a custom geometry with its declared coordinate
// space. Size may be zero when the source omits it.
type CustomPath struct {
	Size     BoundingBox
	Commands []OrderedCommand
}

// CustomGeometry is the full custom geometry of a shape.
type CustomGeometry struct {
	Paths []CustomPath
}

// AssembleGeometry assembles the first path block of g into box. Further blocks are
// not drawn and are reported with ErrExtraPathBlocks.
func AssembleGeometry(g *CustomGeometry, box BoundingBox) (RenderedPath, error) {
	if g == nil || len(g.Paths) == 0 {
		return RenderedPath{}, nil
	}
	first := g.Paths[0]
	path, err := Assemble(first.Commands, first.Size, box)
	if extra := len(g.Paths) - 1; extra > 0 {
		err = errors.Join(err, fmt.Errorf("%d block(s): %w", extra, ErrExtraPathBlocks))
	}
	return path, err
}

// Assemble orders commands by their Order tags (stably, so equal tags keep their
// input order), rescales them from pathSize into box, and emits one segment walk.
// Unsupported or malformed commands are skipped and reported; the walk continues.
func Assemble(cmds []OrderedCommand, pathSize, box BoundingBox) (RenderedPath, error) {
	box, boxErr := box.Normalize()
	errs := []error{boxErr}

	sx := box.W / math.Max(pathSize.W, 1)
	sy := box.H / math.Max(pathSize.H, 1)
	scale := func(p Point) Point { return Pt(p.X*sx, p.Y*sy) }

	sorted := slices.Clone(cmds)
	slices.SortStableFunc(sorted, func(a, b OrderedCommand) int { return cmp.Compare(a.Order, b.Order) })

	b := pathBuilder{keepRepeats: true}
	for _, c := range sorted {
		if err := c.check(); err != nil {
			errs = append(errs, fmt.Errorf("%v at order %d: %w", c.Kind, c.Order, err))
			continue
		}
		switch c.Kind {
		case CmdMoveTo:
			p := scale(c.Pts[0])
			b.moveTo(p.X, p.Y)
		case CmdLineTo:
			p := scale(c.Pts[0])
			b.lineTo(p.X, p.Y)
		case CmdCubicBezTo:
			b.cubicTo(scale(c.Pts[0]), scale(c.Pts[1]), scale(c.Pts[2]))
		case CmdArcTo:
			b.arcTo(c.WR*sx, c.HR*sy, c.StAng/angleScale, c.SwAng/angleScale, scale(c.Shift))
		case CmdClose:
			b.close()
		}
	}
	return b.path(), errors.Join(errs...)
}

// check reports whether the walk can draw c.
func (c OrderedCommand) check() error {
	want := 0
	switch c.Kind {
	case CmdMoveTo, CmdLineTo:
		want = 1
	case CmdCubicBezTo:
		want = 3
	case CmdArcTo, CmdClose:
	case CmdQuadBezTo:
		return ErrUnsupportedCustomCommand
	default:
		return fmt.Errorf("unknown kind: %w", ErrUnsupportedCustomCommand)
	}
	if len(c.Pts) != want {
		return fmt.Errorf("%d point(s), want %d: %w", len(c.Pts), want, ErrMalformedCommand)
	}
	return nil
}
