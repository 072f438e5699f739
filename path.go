package pathkit

import (
	"fmt"
	"strings"
)

// Path is an immutable ordered sequence of contours produced by a
// [Builder]. Once built it is never mutated and is safe to share and
// read concurrently.
type Path struct {
	contours []*Contour
}

// NumContours returns the number of contours.
func (p *Path) NumContours() int {
	return len(p.contours)
}

// Contour returns the i-th contour, in the order the builder produced
// them.
func (p *Path) Contour(i int) *Contour {
	return p.contours[i]
}

// IsEmpty reports whether the path contains no contours.
func (p *Path) IsEmpty() bool {
	return len(p.contours) == 0
}

// Elements decodes all contours into one flat element sequence.
func (p *Path) Elements() []PathElement {
	var elems []PathElement
	for _, c := range p.contours {
		elems = append(elems, c.Elements()...)
	}
	return elems
}

// Bounds returns the tight bounding box of the path. The second return
// value is false for an empty path.
func (p *Path) Bounds() (Rect, bool) {
	if len(p.contours) == 0 {
		return Rect{}, false
	}
	r := p.contours[0].bounds()
	for _, c := range p.contours[1:] {
		r = r.Union(c.bounds())
	}
	return r, true
}

// String serializes the path in SVG path-data form, using absolute
// commands. ParsePath reads the result back into an equal path.
func (p *Path) String() string {
	var sb strings.Builder
	for _, c := range p.contours {
		for _, e := range c.Elements() {
			switch e := e.(type) {
			case MoveTo:
				fmt.Fprintf(&sb, "M %g %g ", e.Point.X, e.Point.Y)
			case LineTo:
				fmt.Fprintf(&sb, "L %g %g ", e.Point.X, e.Point.Y)
			case QuadTo:
				fmt.Fprintf(&sb, "Q %g %g, %g %g ", e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
			case CubicTo:
				fmt.Fprintf(&sb, "C %g %g, %g %g, %g %g ",
					e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			case Close:
				sb.WriteString("Z ")
			}
		}
	}
	return strings.TrimSuffix(sb.String(), " ")
}
