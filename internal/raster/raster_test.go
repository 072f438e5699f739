package raster

import (
	"math"
	"testing"
)

// collect runs Fill and copies the emitted coverage rows.
func collect(r *Rasterizer, rule FillRule) map[int][]float32 {
	rows := make(map[int][]float32)
	r.Fill(rule, func(y int, coverage []float32) {
		rows[y] = append([]float32(nil), coverage...)
	})
	return rows
}

func square(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestRasterizer_FullSquare(t *testing.T) {
	r := NewRasterizer(10, 10)
	r.AddPolygon(square(2, 2, 8, 8))
	rows := collect(r, FillRuleNonZero)

	if len(rows) != 6 {
		t.Fatalf("covered %d rows, want 6", len(rows))
	}
	row := rows[5]
	for x := 2; x < 8; x++ {
		if math.Abs(float64(row[x])-1) > 1e-6 {
			t.Errorf("cov[%d] = %g, want 1", x, row[x])
		}
	}
	for _, x := range []int{0, 1, 8, 9} {
		if row[x] != 0 {
			t.Errorf("cov[%d] = %g, want 0", x, row[x])
		}
	}
}

func TestRasterizer_FractionalCoverage(t *testing.T) {
	// A square starting at x = 1.5 half-covers its first pixel column.
	r := NewRasterizer(10, 10)
	r.AddPolygon(square(1.5, 0, 5, 10))
	rows := collect(r, FillRuleNonZero)

	row := rows[4]
	if math.Abs(float64(row[1])-0.5) > 1e-6 {
		t.Errorf("cov[1] = %g, want 0.5", row[1])
	}
	if math.Abs(float64(row[2])-1) > 1e-6 {
		t.Errorf("cov[2] = %g, want 1", row[2])
	}
}

func TestRasterizer_VerticalAntialiasing(t *testing.T) {
	// A square ending at y = 4.5 half-covers row 4 via subscanlines.
	r := NewRasterizer(10, 10)
	r.AddPolygon(square(0, 0, 10, 4.5))
	rows := collect(r, FillRuleNonZero)

	if math.Abs(float64(rows[3][5])-1) > 1e-6 {
		t.Errorf("row 3 cov = %g, want 1", rows[3][5])
	}
	if math.Abs(float64(rows[4][5])-0.5) > 1e-6 {
		t.Errorf("row 4 cov = %g, want 0.5", rows[4][5])
	}
}

func TestRasterizer_FillRules(t *testing.T) {
	addNested := func(r *Rasterizer, reverseInner bool) {
		r.AddPolygon(square(0, 0, 12, 12))
		inner := square(3, 3, 9, 9)
		if reverseInner {
			for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
				inner[i], inner[j] = inner[j], inner[i]
			}
		}
		r.AddPolygon(inner)
	}

	// Same winding: non-zero fills through, even-odd cuts a hole.
	r := NewRasterizer(12, 12)
	addNested(r, false)
	if rows := collect(r, FillRuleNonZero); math.Abs(float64(rows[6][6])-1) > 1e-6 {
		t.Errorf("non-zero center = %g, want 1", rows[6][6])
	}
	r.Reset()
	addNested(r, false)
	rows := collect(r, FillRuleEvenOdd)
	if rows[6][6] != 0 {
		t.Errorf("even-odd center = %g, want 0", rows[6][6])
	}
	if math.Abs(float64(rows[6][1])-1) > 1e-6 {
		t.Errorf("even-odd ring = %g, want 1", rows[6][1])
	}

	// Opposite winding: non-zero cuts the hole too.
	r.Reset()
	addNested(r, true)
	rows = collect(r, FillRuleNonZero)
	if rows[6][6] != 0 {
		t.Errorf("reversed non-zero center = %g, want 0", rows[6][6])
	}
}

func TestRasterizer_ImplicitClose(t *testing.T) {
	// The ring is closed implicitly from the last point to the first.
	r := NewRasterizer(10, 10)
	r.AddPolygon([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	rows := collect(r, FillRuleNonZero)

	if math.Abs(float64(rows[5][0])-1) > 1e-6 {
		t.Errorf("left column cov = %g, want 1 (missing closing edge?)", rows[5][0])
	}
}

func TestRasterizer_ClipsToGrid(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.AddPolygon(square(-5, -5, 10, 10))
	rows := collect(r, FillRuleNonZero)

	for y, row := range rows {
		if y < 0 || y >= 4 {
			t.Errorf("emitted out-of-range row %d", y)
		}
		if len(row) != 4 {
			t.Errorf("row %d has %d entries, want 4", y, len(row))
		}
	}
	if len(rows) != 4 {
		t.Errorf("covered %d rows, want 4", len(rows))
	}
}

func TestRasterizer_Empty(t *testing.T) {
	r := NewRasterizer(10, 10)
	called := false
	r.Fill(FillRuleNonZero, func(int, []float32) { called = true })
	if called {
		t.Error("Fill emitted rows without any polygon")
	}

	r.AddPolygon(square(0, 0, 5, 5))
	r.Reset()
	r.Fill(FillRuleNonZero, func(int, []float32) { called = true })
	if called {
		t.Error("Fill emitted rows after Reset")
	}
}

func TestRasterizer_DegeneratePolygons(t *testing.T) {
	r := NewRasterizer(10, 10)
	r.AddPolygon(nil)
	r.AddPolygon([]Point{{1, 1}})
	r.AddPolygon([]Point{{1, 1}, {5, 1}}) // purely horizontal
	called := false
	r.Fill(FillRuleNonZero, func(int, []float32) { called = true })
	if called {
		t.Error("degenerate polygons produced coverage")
	}
}

func TestEdge_XAtY(t *testing.T) {
	e := NewEdge(Point{0, 0}, Point{10, 10})
	if got := e.XAtY(5); got != 5 {
		t.Errorf("XAtY(5) = %g, want 5", got)
	}

	// Orientation is normalized but direction is kept.
	down := NewEdge(Point{0, 0}, Point{0, 10})
	up := NewEdge(Point{0, 10}, Point{0, 0})
	if down.dir != 1 || up.dir != -1 {
		t.Errorf("dirs = %d, %d, want 1, -1", down.dir, up.dir)
	}
	if up.y0 != 0 || up.y1 != 10 {
		t.Errorf("edge not normalized: y0=%g y1=%g", up.y0, up.y1)
	}
}
