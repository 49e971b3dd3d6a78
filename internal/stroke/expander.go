package stroke

import (
	"math"
	"slices"

	"github.com/arkadasbulma/appicon/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt ends the line flush with its endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the line with a half disc.
	LineCapRound
	// LineCapSquare extends the line by half its width.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the corner with a disc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// Style holds the stroke parameters used by Expand.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

const epsilon = 1e-9

// Expand converts subpaths into fill polygons according to style.
// A non-positive width produces no polygons.
func Expand(subpaths []path.Subpath, style Style) [][]path.Point {
	if style.Width <= 0 {
		return nil
	}
	hw := style.Width / 2

	var polys [][]path.Point
	for _, sp := range subpaths {
		pts := dedup(sp.Points, sp.Closed)
		if len(pts) < 2 {
			if len(pts) == 1 && style.Cap == LineCapRound {
				polys = append(polys, disc(pts[0], hw))
			}
			continue
		}
		polys = append(polys, expandSubpath(pts, sp.Closed && len(pts) > 2, hw, style)...)
	}

	for _, p := range polys {
		if path.SignedArea(p) < 0 {
			slices.Reverse(p)
		}
	}
	return polys
}

func expandSubpath(pts []path.Point, closed bool, hw float64, style Style) [][]path.Point {
	var polys [][]path.Point
	n := len(pts)

	segs := n - 1
	if closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		dir := b.Sub(a).Normalize()
		if !closed && style.Cap == LineCapSquare {
			if i == 0 {
				a = a.Sub(dir.Mul(hw))
			}
			if i == segs-1 {
				b = b.Add(dir.Mul(hw))
			}
		}
		nrm := perp(dir).Mul(hw)
		polys = append(polys, []path.Point{a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm)})
	}

	if !closed && style.Cap == LineCapRound {
		polys = append(polys, disc(pts[0], hw), disc(pts[n-1], hw))
	}

	first, last := 1, n-1
	if closed {
		first, last = 0, n
	}
	for i := first; i < last; i++ {
		prev := pts[(i-1+n)%n]
		v := pts[i]
		next := pts[(i+1)%n]
		if j := join(prev, v, next, hw, style); j != nil {
			polys = append(polys, j)
		}
	}

	return polys
}

// join returns the polygon filling the outer corner at v, or nil when the
// segments are collinear.
func join(prev, v, next path.Point, hw float64, style Style) []path.Point {
	d0 := v.Sub(prev).Normalize()
	d1 := next.Sub(v).Normalize()
	cross := d0.Cross(d1)
	if math.Abs(cross) < epsilon {
		return nil
	}

	// In y-down coordinates a positive cross product turns toward perp(d),
	// so the outer corner lies on the opposite side.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	u0 := perp(d0).Mul(side)
	u1 := perp(d1).Mul(side)
	p0 := v.Add(u0.Mul(hw))
	p1 := v.Add(u1.Mul(hw))

	switch style.Join {
	case LineJoinRound:
		return disc(v, hw)
	case LineJoinMiter:
		half := u0.Add(u1)
		cosHalf := half.Length() / 2
		if cosHalf > epsilon {
			ratio := 1 / cosHalf
			if ratio <= style.MiterLimit {
				tip := v.Add(half.Normalize().Mul(hw * ratio))
				return []path.Point{v, p0, tip, p1}
			}
		}
	}
	return []path.Point{v, p0, p1}
}

// disc approximates a circle with a polygon whose edges are about one pixel long.
func disc(c path.Point, r float64) []path.Point {
	n := int(math.Ceil(2 * math.Pi * r))
	if n < 12 {
		n = 12
	}
	pts := make([]path.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = path.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// dedup drops consecutive duplicate points, including a closing duplicate.
func dedup(pts []path.Point, closed bool) []path.Point {
	out := make([]path.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(p) < epsilon {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Distance(out[len(out)-1]) < epsilon {
		out = out[:len(out)-1]
	}
	return out
}

func perp(d path.Point) path.Point {
	return path.Point{X: -d.Y, Y: d.X}
}
