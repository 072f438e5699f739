package pathkit

import "math"

// Tolerance is the default maximum distance between a curve and its
// flattened approximation, in path units.
const Tolerance = 0.1

// quadAt evaluates a quadratic Bézier at t.
func quadAt(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicAt evaluates a cubic Bézier at t.
func cubicAt(p0, c1, c2, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}

// quadBounds returns the tight bounding box of a quadratic Bézier,
// using the derivative root per axis instead of the control hull.
func quadBounds(p0, c, p1 Point) Rect {
	r := Rect{X: p0.X, Y: p0.Y}
	r = r.ExpandToPoint(p1)
	for axis := 0; axis < 2; axis++ {
		a0, ac, a1 := p0.X, c.X, p1.X
		if axis == 1 {
			a0, ac, a1 = p0.Y, c.Y, p1.Y
		}
		denom := a0 - 2*ac + a1
		if denom == 0 {
			continue
		}
		t := (a0 - ac) / denom
		if t > 0 && t < 1 {
			r = r.ExpandToPoint(quadAt(p0, c, p1, t))
		}
	}
	return r
}

// cubicBounds returns the tight bounding box of a cubic Bézier.
func cubicBounds(p0, c1, c2, p1 Point) Rect {
	r := Rect{X: p0.X, Y: p0.Y}
	r = r.ExpandToPoint(p1)
	for axis := 0; axis < 2; axis++ {
		a0, a1, a2, a3 := p0.X, c1.X, c2.X, p1.X
		if axis == 1 {
			a0, a1, a2, a3 = p0.Y, c1.Y, c2.Y, p1.Y
		}
		// Derivative coefficients: at² + bt + c (up to a factor of 3).
		a := -a0 + 3*a1 - 3*a2 + a3
		bb := 2 * (a0 - 2*a1 + a2)
		c := a1 - a0
		for _, t := range solveQuadratic(a, bb, c) {
			if t > 0 && t < 1 {
				r = r.ExpandToPoint(cubicAt(p0, c1, c2, p1, t))
			}
		}
	}
	return r
}

// solveQuadratic returns the real roots of at² + bt + c, degrading to
// the linear solution when a is zero.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

// flattenQuad appends a polyline approximation of a quadratic Bézier to
// dst, excluding the start point.
func flattenQuad(dst []Point, p0, c, p1 Point, tol float64) []Point {
	if quadFlat(p0, c, p1, tol) {
		return append(dst, p1)
	}
	// Split at the midpoint (de Casteljau).
	l := p0.Lerp(c, 0.5)
	r := c.Lerp(p1, 0.5)
	m := l.Lerp(r, 0.5)
	dst = flattenQuad(dst, p0, l, m, tol)
	return flattenQuad(dst, m, r, p1, tol)
}

// flattenCubic appends a polyline approximation of a cubic Bézier to
// dst, excluding the start point.
func flattenCubic(dst []Point, p0, c1, c2, p1 Point, tol float64) []Point {
	if cubicFlat(p0, c1, c2, p1, tol) {
		return append(dst, p1)
	}
	l1 := p0.Lerp(c1, 0.5)
	m := c1.Lerp(c2, 0.5)
	r2 := c2.Lerp(p1, 0.5)
	l2 := l1.Lerp(m, 0.5)
	r1 := m.Lerp(r2, 0.5)
	mid := l2.Lerp(r1, 0.5)
	dst = flattenCubic(dst, p0, l1, l2, mid, tol)
	return flattenCubic(dst, mid, r1, r2, p1, tol)
}

// quadFlat reports whether the control point is within tol of the chord.
func quadFlat(p0, c, p1 Point, tol float64) bool {
	return distanceToChord(c, p0, p1) <= tol
}

// cubicFlat reports whether both control points are within tol of the
// chord.
func cubicFlat(p0, c1, c2, p1 Point, tol float64) bool {
	return distanceToChord(c1, p0, p1) <= tol && distanceToChord(c2, p0, p1) <= tol
}

// distanceToChord returns the distance from p to the segment a-b,
// falling back to the distance to a for a degenerate chord.
func distanceToChord(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return p.Distance(a.Add(ab.Mul(t)))
}
