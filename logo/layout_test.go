package logo

import (
	"testing"

	"github.com/arkadasbulma/appicon"
)

func TestLayout(t *testing.T) {
	shapes := Layout()
	if len(shapes) != 17 {
		t.Fatalf("Layout() has %d shapes, want 17", len(shapes))
	}
	if shapes[0].Name != "badge" {
		t.Errorf("first shape = %q, want the badge drawn underneath everything", shapes[0].Name)
	}

	seen := make(map[string]bool)
	for _, sh := range shapes {
		if sh.Name == "" {
			t.Errorf("shape of kind %s has no name", sh.Kind)
		}
		if seen[sh.Name] {
			t.Errorf("duplicate shape name %q", sh.Name)
		}
		seen[sh.Name] = true
	}
}

func TestLayoutKinds(t *testing.T) {
	counts := make(map[Kind]int)
	for _, sh := range Layout() {
		counts[sh.Kind]++
	}

	want := map[Kind]int{
		KindEllipse:     9, // badge, two heads, six dots
		KindPolygon:     2,
		KindRoundedRect: 2,
		KindPolyline:    4,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s count = %d, want %d", k, counts[k], n)
		}
	}
}

func TestLayoutBadge(t *testing.T) {
	badge := Layout()[0]

	if c := badge.Box.Center(); c != appicon.Pt(256, 256) {
		t.Errorf("badge center = %v, want (256, 256)", c)
	}
	if r := badge.Box.Dx() / 2; r != 240 {
		t.Errorf("badge radius = %g, want 240", r)
	}
	if badge.Fill.NRGBA() != appicon.RGBA8(33, 150, 243, 255).NRGBA() {
		t.Errorf("badge fill = %v", badge.Fill.NRGBA())
	}
}

func TestLayoutIsFresh(t *testing.T) {
	a := Layout()
	a[0].Name = "changed"
	a[1].Points[0] = appicon.Pt(0, 0)

	b := Layout()
	if b[0].Name != "badge" {
		t.Error("Layout shares shape values between calls")
	}
	if b[1].Points[0] != appicon.Pt(120, 180) {
		t.Error("Layout shares point slices between calls")
	}
}

func TestLayoutWithinCanvas(t *testing.T) {
	for _, sh := range Layout() {
		b := sh.Bounds()
		if !b.In(Size, Size) {
			t.Errorf("%s bounds %s leave the %dx%d canvas", sh.Name, b, Size, Size)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{KindEllipse, "ellipse"},
		{KindPolygon, "polygon"},
		{KindRoundedRect, "rounded-rect"},
		{KindPolyline, "polyline"},
		{Kind(42), "Kind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestShapeCoordinates(t *testing.T) {
	ellipse := Shape{Kind: KindEllipse, Box: appicon.R(10, 20, 30, 40)}
	if got := ellipse.Coordinates(); len(got) != 2 || got[0] != appicon.Pt(10, 20) || got[1] != appicon.Pt(30, 40) {
		t.Errorf("ellipse coordinates = %v", got)
	}

	line := Shape{Kind: KindPolyline, Points: []appicon.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 0, Y: 9}}}
	if got := line.Bounds(); got != appicon.R(0, 2, 3, 9) {
		t.Errorf("polyline bounds = %v", got)
	}
}
