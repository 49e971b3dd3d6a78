// Package raster provides anti-aliased scanline rasterization for 2D paths.
//
// Coverage is accumulated by golang.org/x/image/vector and composited onto the
// destination with the Porter-Duff source-over operator.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/arkadasbulma/appicon/internal/path"
)

// Rasterizer fills paths onto an image. It is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	z      *vector.Rasterizer
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		z:      vector.NewRasterizer(width, height),
	}
}

// Width returns the rasterizer width in pixels.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the rasterizer height in pixels.
func (r *Rasterizer) Height() int { return r.height }

// FillPath rasterizes path elements with the non-zero winding rule.
// Open subpaths are closed implicitly. Curves are passed to the rasterizer
// unflattened.
func (r *Rasterizer) FillPath(dst draw.Image, elements []path.Element, c color.Color) {
	if len(elements) == 0 {
		return
	}
	r.z.Reset(r.width, r.height)

	open := false
	for _, elem := range elements {
		switch e := elem.(type) {
		case path.MoveTo:
			if open {
				r.z.ClosePath()
			}
			r.z.MoveTo(f32(e.Point))
			open = true
		case path.LineTo:
			r.z.LineTo(f32(e.Point))
			open = true
		case path.QuadTo:
			bx, by := f32(e.Control)
			cx, cy := f32(e.Point)
			r.z.QuadTo(bx, by, cx, cy)
			open = true
		case path.CubicTo:
			bx, by := f32(e.Control1)
			cx, cy := f32(e.Control2)
			dx, dy := f32(e.Point)
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
			open = true
		case path.Close:
			if open {
				r.z.ClosePath()
			}
			open = false
		}
	}
	if open {
		r.z.ClosePath()
	}

	r.draw(dst, c)
}

// FillPolygons rasterizes closed polygons in a single pass. Overlapping
// polygons with the same winding are painted once.
func (r *Rasterizer) FillPolygons(dst draw.Image, polys [][]path.Point, c color.Color) {
	drawn := false
	r.z.Reset(r.width, r.height)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		r.z.MoveTo(f32(poly[0]))
		for _, p := range poly[1:] {
			r.z.LineTo(f32(p))
		}
		r.z.ClosePath()
		drawn = true
	}
	if drawn {
		r.draw(dst, c)
	}
}

func (r *Rasterizer) draw(dst draw.Image, c color.Color) {
	bounds := dst.Bounds().Intersect(image.Rect(0, 0, r.width, r.height))
	if bounds.Empty() {
		return
	}
	r.z.DrawOp = draw.Over
	r.z.Draw(dst, bounds, image.NewUniform(c), bounds.Min)
}

func f32(p path.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}
