package appicon

import "testing"

func TestRNormalizesCorners(t *testing.T) {
	r := R(10, 20, 0, 5)
	if r.Min != Pt(0, 5) || r.Max != Pt(10, 20) {
		t.Errorf("R() = %v", r)
	}
	if r.Dx() != 10 || r.Dy() != 15 {
		t.Errorf("size = %vx%v, want 10x15", r.Dx(), r.Dy())
	}
}

func TestRectInset(t *testing.T) {
	r := R(16, 16, 496, 496).Inset(8)
	if r != R(24, 24, 488, 488) {
		t.Errorf("Inset(8) = %v", r)
	}

	collapsed := R(0, 0, 10, 10).Inset(6)
	if collapsed.Min != Pt(5, 5) || collapsed.Max != Pt(5, 5) {
		t.Errorf("Inset past center = %v, want point at (5, 5)", collapsed)
	}
	if !collapsed.Empty() {
		t.Error("collapsed rect should be empty")
	}
}

func TestRectIn(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{R(0, 0, 511, 511), true},
		{R(16, 16, 496, 496), true},
		{R(0, 0, 512, 10), false},
		{R(-1, 0, 10, 10), false},
	}
	for _, tt := range tests {
		if got := tt.r.In(512, 512); got != tt.want {
			t.Errorf("%v.In(512, 512) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Pt(120, 180), Pt(80, 220), Pt(140, 280))
	if b != R(80, 180, 140, 280) {
		t.Errorf("BoundsOf() = %v", b)
	}
	if got := BoundsOf(); got != (Rect{}) {
		t.Errorf("BoundsOf() with no points = %v", got)
	}
	if u := R(0, 0, 1, 1).Union(R(5, 5, 6, 6)); u != R(0, 0, 6, 6) {
		t.Errorf("Union() = %v", u)
	}
}

func TestRectCenter(t *testing.T) {
	if c := R(175, 175, 225, 225).Center(); c != Pt(200, 200) {
		t.Errorf("Center() = %v", c)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(511.5, 511.9), true},
		{Pt(512, 0), false},
		{Pt(0, -0.1), false},
	}
	for _, tt := range tests {
		if got := tt.p.In(512, 512); got != tt.want {
			t.Errorf("%v.In(512, 512) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
