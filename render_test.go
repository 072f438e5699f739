package pathkit

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestRender_TriangleWinding(t *testing.T) {
	p := MustParsePath("M 0 0 L 10 0 L 10 10 Z")
	img := Render(p, FillRuleWinding, Black, White, Rectangle(0, 0, 10, 10))

	if got := img.Bounds().Dx(); got != 10 {
		t.Fatalf("width = %d, want 10", got)
	}
	if got := img.Bounds().Dy(); got != 10 {
		t.Fatalf("height = %d, want 10", got)
	}

	// The triangle covers the region right of the diagonal. Sample well
	// away from edges to avoid antialiased pixels.
	inside := img.RGBAAt(8, 4)
	if inside != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("inside pixel = %v, want opaque black", inside)
	}
	outside := img.RGBAAt(1, 8)
	if outside != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("outside pixel = %v, want opaque white", outside)
	}
}

func TestRender_Antialiasing(t *testing.T) {
	p := MustParsePath("M 0 0 L 10 0 L 10 10 Z")
	img := Render(p, FillRuleWinding, Black, White, Rectangle(0, 0, 10, 10))

	// A pixel centered on the diagonal edge gets partial coverage.
	edge := img.RGBAAt(5, 5)
	if edge.R == 0 || edge.R == 255 {
		t.Errorf("edge pixel = %v, want an intermediate gray", edge)
	}
}

func TestRender_FillRules(t *testing.T) {
	// Two nested squares wound in the same direction. Non-zero winding
	// fills the inner square too; even-odd leaves it as a hole.
	p := MustParsePath("M 0 0 H 12 V 12 H 0 Z M 3 3 H 9 V 9 H 3 Z")
	bounds := Rectangle(0, 0, 12, 12)

	winding := Render(p, FillRuleWinding, Black, White, bounds)
	if got := winding.RGBAAt(6, 6); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("winding center = %v, want filled", got)
	}

	evenOdd := Render(p, FillRuleEvenOdd, Black, White, bounds)
	if got := evenOdd.RGBAAt(6, 6); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("even-odd center = %v, want hole", got)
	}
	// The ring between the squares is filled either way.
	if got := evenOdd.RGBAAt(1, 6); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("even-odd ring = %v, want filled", got)
	}
}

func TestRender_HoleByReversal(t *testing.T) {
	// Reversing the inner contour flips its winding, so the non-zero
	// rule also produces a hole.
	outer := MustParsePath("M 0 0 H 12 V 12 H 0 Z")
	inner := MustParsePath("M 3 3 H 9 V 9 H 3 Z")
	p := NewBuilder().AddPath(outer).AddReversePath(inner).Path()

	img := Render(p, FillRuleWinding, Black, White, Rectangle(0, 0, 12, 12))
	if got := img.RGBAAt(6, 6); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("center = %v, want hole", got)
	}
	if got := img.RGBAAt(1, 6); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("ring = %v, want filled", got)
	}
}

func TestRender_OffsetBounds(t *testing.T) {
	// The path is translated into image space by the bounds origin.
	p := MustParsePath("M 100 100 L 110 100 L 110 110 L 100 110 Z")
	img := Render(p, FillRuleWinding, Red, Transparent, Rectangle(95, 95, 20, 20))

	if got := img.Bounds().Dx(); got != 20 {
		t.Fatalf("width = %d, want 20", got)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("square interior = %v, want opaque red", got)
	}
	if got := img.RGBAAt(2, 2); got != (color.RGBA{0, 0, 0, 0}) {
		t.Errorf("margin = %v, want transparent", got)
	}
}

func TestRender_CurvedPath(t *testing.T) {
	p := NewBuilder().AddCircle(Pt(10, 10), 8).Path()
	img := Render(p, FillRuleWinding, Black, White, Rectangle(0, 0, 20, 20))

	if got := img.RGBAAt(10, 10); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("circle center = %v, want filled", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner = %v, want background", got)
	}
}

func TestRender_MinimumSize(t *testing.T) {
	p := MustParsePath("M 0 0")
	img := Render(p, FillRuleWinding, Black, White, Rectangle(0, 0, 0, 0))
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("degenerate bounds produced %v, want 1x1", img.Bounds())
	}
}

func TestRender_PanicsOnNilPath(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil path")
		}
	}()
	Render(nil, FillRuleWinding, Black, White, Rectangle(0, 0, 1, 1))
}

func TestWritePNG(t *testing.T) {
	p := MustParsePath("M 0 0 L 4 0 L 4 4 Z")
	img := Render(p, FillRuleWinding, Black, White, Rectangle(0, 0, 4, 4))

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding written PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
