// Package raster provides scanline fill rasterization for flattened
// 2D polygons, with non-zero winding and even-odd fill rules and
// vertically supersampled antialiasing.
package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge represents a line segment for scanline rasterization. Edges are
// stored with y0 < y1; dir keeps the original direction for the
// winding rule.
type Edge struct {
	x0, y0 float64
	x1, y1 float64
	dir    int
}

// NewEdge creates an edge from two points. Horizontal edges contribute
// nothing to scanline crossings and must be filtered by the caller.
func NewEdge(p0, p1 Point) Edge {
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dir: dir}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	if e.y1 == e.y0 {
		return e.x0
	}
	t := (y - e.y0) / (e.y1 - e.y0)
	return e.x0 + (e.x1-e.x0)*t
}
