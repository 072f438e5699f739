package pathkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContour_StartEndPoints(t *testing.T) {
	open := NewBuilder().MoveTo(1, 2).LineTo(3, 4).QuadTo(5, 6, 7, 8).Path().Contour(0)
	if got := open.StartPoint(); got != Pt(1, 2) {
		t.Errorf("start = %v, want (1,2)", got)
	}
	if got := open.EndPoint(); got != Pt(7, 8) {
		t.Errorf("end = %v, want (7,8)", got)
	}

	closed := NewBuilder().MoveTo(1, 2).LineTo(3, 4).Close().Path().Contour(0)
	if got := closed.EndPoint(); got != closed.StartPoint() {
		t.Errorf("closed contour end = %v, want start %v", got, closed.StartPoint())
	}
}

func TestContour_ReverseSquare(t *testing.T) {
	square := NewBuilder().AddRect(0, 0, 10, 10).Path()
	rev := NewBuilder().AddReversePath(square).Path().Contour(0)

	if !rev.Closed() {
		t.Fatal("reversed closed contour must stay closed")
	}
	if !rev.Flat() {
		t.Error("reversed flat contour must stay flat")
	}
	want := []PathElement{
		MoveTo{Pt(0, 0)},
		LineTo{Pt(0, 10)},
		LineTo{Pt(10, 10)},
		LineTo{Pt(10, 0)},
		Close{Pt(0, 0)},
	}
	if diff := cmp.Diff(want, rev.Elements()); diff != "" {
		t.Errorf("reversed square mismatch (-want +got):\n%s", diff)
	}
}

func TestContour_ReverseOpenCurve(t *testing.T) {
	orig := NewBuilder().
		MoveTo(0, 0).
		QuadTo(5, 10, 10, 0).
		CubicTo(12, -4, 18, -4, 20, 0).
		Path()
	rev := NewBuilder().AddReversePath(orig).Path().Contour(0)

	want := []PathElement{
		MoveTo{Pt(20, 0)},
		CubicTo{Control1: Pt(18, -4), Control2: Pt(12, -4), Point: Pt(10, 0)},
		QuadTo{Control: Pt(5, 10), Point: Pt(0, 0)},
	}
	if diff := cmp.Diff(want, rev.Elements()); diff != "" {
		t.Errorf("reversed curve mismatch (-want +got):\n%s", diff)
	}
	if rev.Closed() {
		t.Error("reversed open contour must stay open")
	}
}

func TestContour_ReverseSinglePoint(t *testing.T) {
	orig := NewBuilder().MoveTo(5, 5).Path()
	rev := NewBuilder().AddReversePath(orig).Path().Contour(0)

	if got := rev.NumOps(); got != 1 {
		t.Errorf("ops = %d, want 1", got)
	}
	if got := rev.StartPoint(); got != Pt(5, 5) {
		t.Errorf("start = %v, want (5,5)", got)
	}
}

func TestContour_ReverseContourOrder(t *testing.T) {
	p := NewBuilder().
		MoveTo(0, 0).LineTo(1, 0).
		MoveTo(10, 0).LineTo(11, 0).
		Path()
	rev := NewBuilder().AddReversePath(p).Path()

	if got := rev.Contour(0).StartPoint(); got != Pt(11, 0) {
		t.Errorf("first reversed contour starts at %v, want (11,0)", got)
	}
	if got := rev.Contour(1).StartPoint(); got != Pt(1, 0) {
		t.Errorf("second reversed contour starts at %v, want (1,0)", got)
	}
}
