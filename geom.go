package appicon

import "fmt"

// Point is a position on the canvas in pixels. (0, 0) is the top-left
// corner of the top-left pixel, so pixel (x, y) spans [x, x+1) x [y, y+1).
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// In reports whether p lies in the half-open rectangle [0, w) x [0, h).
func (p Point) In(w, h float64) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Rect is an axis-aligned rectangle given by its top-left and bottom-right
// corners. It is the bounding box form used for ellipses and rounded
// rectangles.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle spanning (x0, y0) to (x1, y1). Corners are
// reordered so that Min is top-left.
func R(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// BoundsOf returns the smallest rectangle containing all points.
func BoundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Inset returns the rectangle shrunk by d on every side. Insetting past the
// center collapses the rectangle to its center point.
func (r Rect) Inset(d float64) Rect {
	if 2*d >= r.Dx() || 2*d >= r.Dy() {
		c := r.Center()
		return Rect{Min: c, Max: c}
	}
	return Rect{
		Min: Pt(r.Min.X+d, r.Min.Y+d),
		Max: Pt(r.Max.X-d, r.Max.Y-d),
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return BoundsOf(r.Min, r.Max, s.Min, s.Max)
}

// In reports whether both corners lie in [0, w) x [0, h).
func (r Rect) In(w, h float64) bool {
	return r.Min.In(w, h) && r.Max.In(w, h)
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
