package pathkit

// Rect is an axis-aligned rectangle. W and H may be negative, in which
// case the rectangle extends left or up from its origin.
type Rect struct {
	X, Y, W, H float64
}

// Rectangle is a convenience function to create a Rect.
func Rectangle(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Canon returns the rectangle with non-negative width and height.
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X: r.X + d,
		Y: r.Y + d,
		W: r.W - 2*d,
		H: r.H - 2*d,
	}
}

// Union returns the smallest rectangle containing both r and s.
// Both rectangles must be canonical.
func (r Rect) Union(s Rect) Rect {
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.X+r.W, s.X+s.W)
	y1 := max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ExpandToPoint grows the canonical rectangle to contain p.
func (r Rect) ExpandToPoint(p Point) Rect {
	return r.Union(Rect{X: p.X, Y: p.Y})
}

// Contains reports whether p lies inside the canonical rectangle,
// including its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
