package raster

import (
	"math"
	"sort"
)

// FillRule specifies how crossings are turned into filled spans.
type FillRule int

const (
	// FillRuleNonZero fills where the winding number is non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills between odd and even crossings.
	FillRuleEvenOdd
)

// samples is the number of subscanlines per pixel row.
const samples = 4

// crossing is one edge intersection with a subscanline.
type crossing struct {
	x   float64
	dir int
}

// Rasterizer fills polygons into per-pixel coverage values. Create one
// per target size and reuse it; internal buffers grow as needed. A
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width, height int

	edges     []Edge
	crossings []crossing
	cov       []float32
}

// NewRasterizer creates a rasterizer for a width x height pixel grid.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		cov:    make([]float32, width),
	}
}

// AddPolygon appends a closed polygon ring. The ring is closed
// implicitly: a segment from the last point back to the first is added
// when they differ.
func (r *Rasterizer) AddPolygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	add := func(p0, p1 Point) {
		if p0.Y == p1.Y {
			return // horizontal edges never cross a scanline
		}
		r.edges = append(r.edges, NewEdge(p0, p1))
	}
	for i := 0; i < len(pts)-1; i++ {
		add(pts[i], pts[i+1])
	}
	add(pts[len(pts)-1], pts[0])
}

// Reset discards all accumulated polygons.
func (r *Rasterizer) Reset() {
	r.edges = r.edges[:0]
}

// Fill rasterizes the accumulated polygons and calls emit once per row
// that has any coverage. The coverage slice has one entry per pixel of
// the row, in [0, 1], and is reused between calls.
func (r *Rasterizer) Fill(rule FillRule, emit func(y int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	yMin, yMax := r.yBounds()
	for y := yMin; y < yMax; y++ {
		clear(r.cov)
		any := false
		for s := 0; s < samples; s++ {
			scanY := float64(y) + (float64(s)+0.5)/samples
			if r.scanline(scanY, rule) {
				any = true
			}
		}
		if any {
			emit(y, r.cov)
		}
	}
}

// yBounds returns the pixel row range touched by any edge, clamped to
// the rasterizer's height.
func (r *Rasterizer) yBounds() (int, int) {
	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range r.edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	lo := int(math.Floor(yMin))
	hi := int(math.Ceil(yMax))
	if lo < 0 {
		lo = 0
	}
	if hi > r.height {
		hi = r.height
	}
	return lo, hi
}

// scanline accumulates one subscanline's spans into the coverage row.
// It reports whether anything was covered.
func (r *Rasterizer) scanline(y float64, rule FillRule) bool {
	r.crossings = r.crossings[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.y0 <= y && y < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.XAtY(y), dir: e.dir})
		}
	}
	if len(r.crossings) == 0 {
		return false
	}
	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	any := false
	if rule == FillRuleNonZero {
		winding := 0
		var x0 float64
		for _, c := range r.crossings {
			if winding == 0 {
				x0 = c.x
			}
			winding += c.dir
			if winding == 0 {
				any = r.addSpan(x0, c.x) || any
			}
		}
	} else {
		for i := 0; i+1 < len(r.crossings); i += 2 {
			any = r.addSpan(r.crossings[i].x, r.crossings[i+1].x) || any
		}
	}
	return any
}

// addSpan accumulates fractional horizontal coverage for [x0, x1) into
// the row buffer, weighted by one subscanline's share.
func (r *Rasterizer) addSpan(x0, x1 float64) bool {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(r.width) {
		x1 = float64(r.width)
	}
	if x1 <= x0 {
		return false
	}

	const weight = 1.0 / samples
	first := int(x0)
	last := int(math.Ceil(x1)) - 1
	if first == last {
		r.cov[first] += float32((x1 - x0) * weight)
		return true
	}
	r.cov[first] += float32((float64(first+1) - x0) * weight)
	for x := first + 1; x < last; x++ {
		r.cov[x] += weight
	}
	r.cov[last] += float32((x1 - float64(last)) * weight)
	return true
}
