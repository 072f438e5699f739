package pathkit

// contourFlags describe properties of a finalized contour.
type contourFlags uint8

const (
	// flagClosed is set when the contour was ended with Close. A closed
	// contour joins its start and end point with a line join when
	// stroked, instead of ending with line caps.
	flagClosed contourFlags = 1 << iota
	// flagFlat is set while the contour contains only straight-line
	// segments. The first quadratic or cubic operation clears it.
	flagFlat
)

// Contour is one connected sub-path: a Move followed by zero or more
// drawing operations, optionally terminated by Close. Contours are
// immutable once finalized by the Builder.
type Contour struct {
	flags  contourFlags
	ops    []operation
	points []Point
}

// Closed reports whether the contour was ended with Close.
func (c *Contour) Closed() bool {
	return c.flags&flagClosed != 0
}

// Flat reports whether the contour contains only straight-line segments.
func (c *Contour) Flat() bool {
	return c.flags&flagFlat != 0
}

// NumOps returns the number of operations, including the leading Move.
func (c *Contour) NumOps() int {
	return len(c.ops)
}

// StartPoint returns the contour's first point.
func (c *Contour) StartPoint() Point {
	return c.points[0]
}

// EndPoint returns the contour's last point. For a closed contour this
// equals StartPoint.
func (c *Contour) EndPoint() Point {
	return c.points[len(c.points)-1]
}

// Elements decodes the contour's operations into typed path elements.
func (c *Contour) Elements() []PathElement {
	elems := make([]PathElement, 0, len(c.ops))
	for _, op := range c.ops {
		pts := c.points[op.index : op.index+op.pointCount()]
		switch op.verb {
		case VerbMove:
			elems = append(elems, MoveTo{Point: pts[0]})
		case VerbLine:
			elems = append(elems, LineTo{Point: pts[1]})
		case VerbQuad:
			elems = append(elems, QuadTo{Control: pts[1], Point: pts[2]})
		case VerbCubic:
			elems = append(elems, CubicTo{Control1: pts[1], Control2: pts[2], Point: pts[3]})
		case VerbClose:
			elems = append(elems, Close{Point: pts[1]})
		}
	}
	return elems
}

// bounds returns the tight bounding box of the contour, or false for a
// contour with no extent in either direction (it still reports the
// degenerate rectangle around its points).
func (c *Contour) bounds() Rect {
	r := Rect{X: c.points[0].X, Y: c.points[0].Y}
	for _, op := range c.ops {
		pts := c.points[op.index : op.index+op.pointCount()]
		switch op.verb {
		case VerbMove, VerbLine, VerbClose:
			r = r.ExpandToPoint(pts[len(pts)-1])
		case VerbQuad:
			r = r.Union(quadBounds(pts[0], pts[1], pts[2]))
		case VerbCubic:
			r = r.Union(cubicBounds(pts[0], pts[1], pts[2], pts[3]))
		}
	}
	return r
}

// reverse returns a contour with the same geometry traversed in the
// opposite direction. Closed stays closed, flat stays flat.
func (c *Contour) reverse() *Contour {
	b := NewBuilder()
	b.MoveTo(c.EndPoint().X, c.EndPoint().Y)

	// For a closed contour whose first drawing operation is a line,
	// that line becomes the reversed contour's closing segment.
	last := 1
	if c.Closed() && len(c.ops) > 1 && c.ops[1].verb == VerbLine {
		last = 2
	}
	for i := len(c.ops) - 1; i >= last; i-- {
		op := c.ops[i]
		pts := c.points[op.index : op.index+op.pointCount()]
		start := pts[0]
		switch op.verb {
		case VerbLine, VerbClose:
			b.LineTo(start.X, start.Y)
		case VerbQuad:
			b.QuadTo(pts[1].X, pts[1].Y, start.X, start.Y)
		case VerbCubic:
			b.CubicTo(pts[2].X, pts[2].Y, pts[1].X, pts[1].Y, start.X, start.Y)
		}
	}
	if c.Closed() {
		b.Close()
	}
	return b.Path().contours[0]
}
