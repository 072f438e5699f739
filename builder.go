package pathkit

// Builder accumulates drawing commands and produces an immutable [Path].
// All drawing methods return the builder for chaining.
//
// A path is constructed like this:
//
//	p := pathkit.NewBuilder().
//		MoveTo(10, 10).
//		LineTo(90, 10).
//		Close().
//		Path()
//
// The builder keeps the operations of the contour currently being built
// in two parallel growable buffers: one of operation records and one of
// points. Operations reference their points by index into the point
// buffer, never by pointer, so appending can grow the buffer freely.
//
// A Builder is a single-owner object. It must not be used from multiple
// goroutines without external synchronization.
type Builder struct {
	contours []*Contour

	flags   contourFlags
	current Point // the point all drawing ops start from
	ops     []operation
	points  []Point
}

// NewBuilder creates an empty path builder. The current point starts at
// the origin.
func NewBuilder() *Builder {
	return &Builder{}
}

// CurrentPoint returns the current point. The current point is used for
// relative drawing commands and updated after every operation.
func (b *Builder) CurrentPoint() Point {
	return b.current
}

// ensureCurrent opens a contour at the current point if none is open.
func (b *Builder) ensureCurrent() {
	if len(b.ops) != 0 {
		return
	}
	b.flags = flagFlat
	b.ops = append(b.ops, operation{verb: VerbMove, index: 0})
	b.points = append(b.points, b.current)
}

// appendCurrent records one operation and its trailing points. The
// operation's index addresses its start point, which is the previous
// operation's end point already present in the buffer.
func (b *Builder) appendCurrent(verb Verb, pts ...Point) {
	b.ensureCurrent()
	b.ops = append(b.ops, operation{verb: verb, index: len(b.points) - 1})
	b.points = append(b.points, pts...)
	b.current = pts[len(pts)-1]
}

// endCurrent finalizes the open contour, if any, into the contour list.
func (b *Builder) endCurrent() {
	if len(b.ops) == 0 {
		return
	}
	c := &Contour{
		flags:  b.flags,
		ops:    append([]operation(nil), b.ops...),
		points: append([]Point(nil), b.points...),
	}
	b.ops = b.ops[:0]
	b.points = b.points[:0]

	// Buffers are cleared first so the nested endCurrent in addContour
	// returns immediately.
	b.addContour(c)
}

// addContour finalizes any open contour and appends c.
func (b *Builder) addContour(c *Contour) {
	b.endCurrent()
	b.contours = append(b.contours, c)
}

// MoveTo starts a new contour by placing the pen at (x, y).
//
// If MoveTo is called twice in succession, the first call results in a
// contour made up of a single point; the second starts a new contour.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.endCurrent()
	b.current = Pt(x, y)
	b.ensureCurrent()
	return b
}

// RelMoveTo starts a new contour at (x, y) relative to the current point.
func (b *Builder) RelMoveTo(x, y float64) *Builder {
	return b.MoveTo(b.current.X+x, b.current.Y+y)
}

// LineTo draws a line from the current point to (x, y) and makes it the
// new current point. A line to the exact current point is dropped.
func (b *Builder) LineTo(x, y float64) *Builder {
	// skip the line if it goes to the same point
	if b.current == Pt(x, y) {
		return b
	}
	b.appendCurrent(VerbLine, Pt(x, y))
	return b
}

// RelLineTo draws a line to a point offset from the current point by
// (x, y).
func (b *Builder) RelLineTo(x, y float64) *Builder {
	return b.LineTo(b.current.X+x, b.current.Y+y)
}

// QuadTo adds a quadratic Bézier curve from the current point to
// (x2, y2) with (x1, y1) as the control point. After this, (x2, y2) is
// the new current point.
func (b *Builder) QuadTo(x1, y1, x2, y2 float64) *Builder {
	b.ensureCurrent()
	b.flags &^= flagFlat
	b.appendCurrent(VerbQuad, Pt(x1, y1), Pt(x2, y2))
	return b
}

// RelQuadTo adds a quadratic Bézier curve with all coordinates given
// relative to the current point.
func (b *Builder) RelQuadTo(x1, y1, x2, y2 float64) *Builder {
	return b.QuadTo(
		b.current.X+x1, b.current.Y+y1,
		b.current.X+x2, b.current.Y+y2,
	)
}

// CubicTo adds a cubic Bézier curve from the current point to (x3, y3)
// with (x1, y1) and (x2, y2) as the control points.
func (b *Builder) CubicTo(x1, y1, x2, y2, x3, y3 float64) *Builder {
	b.ensureCurrent()
	b.flags &^= flagFlat
	b.appendCurrent(VerbCubic, Pt(x1, y1), Pt(x2, y2), Pt(x3, y3))
	return b
}

// RelCubicTo adds a cubic Bézier curve with all coordinates given
// relative to the current point.
func (b *Builder) RelCubicTo(x1, y1, x2, y2, x3, y3 float64) *Builder {
	return b.CubicTo(
		b.current.X+x1, b.current.Y+y1,
		b.current.X+x2, b.current.Y+y2,
		b.current.X+x3, b.current.Y+y3,
	)
}

// Close ends the current contour with a line back to its start point
// and finalizes it. Without an open contour Close is a no-op.
//
// This differs from LineTo with the start point in that the contour is
// marked closed: when stroked, its start and end point are joined with
// the line join instead of ending in line caps. The closing segment
// always targets the contour's first recorded point, so the contour is
// geometrically closed even if floating-point drift accumulated.
func (b *Builder) Close() *Builder {
	if len(b.ops) == 0 {
		return b
	}
	b.flags |= flagClosed
	b.appendCurrent(VerbClose, b.points[0])
	b.endCurrent()
	return b
}

// AddRect adds a closed rectangular contour with origin (x, y) and the
// given signed extents. Any open contour is finalized first.
//
// Negative width or height flip the winding direction, with the start
// point staying at the signed origin. Zero width or height collapse the
// contour to a closed line, or a closed point if both are zero.
func (b *Builder) AddRect(x, y, w, h float64) *Builder {
	r := NewBuilder()
	r.MoveTo(x, y)
	r.LineTo(x+w, y)
	r.LineTo(x+w, y+h)
	r.LineTo(x, y+h)
	r.Close()
	c := r.Path().contours[0]

	b.addContour(c)
	b.current = c.EndPoint()
	return b
}

// AddCircle adds a closed contour approximating the circle around
// center with the given radius, starting at its rightmost point and
// sweeping a full turn. The radius must be positive.
func (b *Builder) AddCircle(center Point, radius float64) *Builder {
	if radius <= 0 {
		panic("pathkit: AddCircle requires a positive radius")
	}
	b.MoveTo(center.X+radius, center.Y)
	b.arcSegments(center.X, center.Y, radius, radius, 0, 1, 0, 2*pi)
	b.Close()
	return b
}

// AddPath appends every contour of p to the builder as finalized
// contours. The open contour, if any, is finalized first and not merged
// with the imported ones.
func (b *Builder) AddPath(p *Path) *Builder {
	if p == nil {
		panic("pathkit: AddPath requires a non-nil path")
	}
	for _, c := range p.contours {
		// Contours are immutable and can be shared.
		b.addContour(c)
	}
	return b
}

// AddReversePath appends every contour of p in reverse order, each with
// its direction reversed.
func (b *Builder) AddReversePath(p *Path) *Builder {
	if p == nil {
		panic("pathkit: AddReversePath requires a non-nil path")
	}
	for i := len(p.contours); i > 0; i-- {
		b.addContour(p.contours[i-1].reverse())
	}
	return b
}

// Path finalizes any open contour and returns the accumulated contours
// as an immutable Path. The builder is reset and can be reused to build
// another path from scratch.
func (b *Builder) Path() *Path {
	b.endCurrent()
	p := &Path{contours: b.contours}
	b.contours = nil
	b.flags = 0
	b.current = Point{}
	return p
}
