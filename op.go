package pathkit

// Verb identifies the kind of a path operation.
type Verb uint8

const (
	// VerbMove starts a new contour at a point.
	VerbMove Verb = iota
	// VerbLine draws a straight line.
	VerbLine
	// VerbQuad draws a quadratic Bézier curve.
	VerbQuad
	// VerbCubic draws a cubic Bézier curve.
	VerbCubic
	// VerbClose draws a line back to the contour's start point and
	// marks the contour closed.
	VerbClose
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbCubic:
		return "Cubic"
	case VerbClose:
		return "Close"
	}
	return "Unknown"
}

// operation is one recorded drawing command. Points are referenced by
// index into the owning contour's point store rather than by pointer,
// so growing the store never invalidates earlier operations.
//
// index addresses the operation's start point; the operation spans
// pointCount() consecutive points from there. A Move has no separate
// start point, so its single point is both start and target.
type operation struct {
	verb  Verb
	index int
}

// pointCount returns the number of points the operation spans in the
// point store, counting its start point.
func (op operation) pointCount() int {
	switch op.verb {
	case VerbMove:
		return 1
	case VerbLine, VerbClose:
		return 2
	case VerbQuad:
		return 3
	case VerbCubic:
		return 4
	}
	return 0
}

// PathElement is a decoded path operation with its points resolved.
// It is one of [MoveTo], [LineTo], [QuadTo], [CubicTo] or [Close].
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bézier curve to Point with control Control.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bézier curve to Point with controls Control1
// and Control2.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close draws a line back to the contour's start point, which is
// recorded in Point, and closes the contour.
type Close struct {
	Point Point
}

func (Close) isPathElement() {}
