package appicon

import (
	"github.com/arkadasbulma/appicon/internal/path"
	"github.com/arkadasbulma/appicon/internal/raster"
	"github.com/arkadasbulma/appicon/internal/stroke"
)

// Renderer paints a Path onto a Pixmap. Context calls it for every Fill and
// Stroke; implementations must not retain the path or paint after returning.
type Renderer interface {
	Fill(pixmap *Pixmap, path *Path, paint *Paint) error
	Stroke(pixmap *Pixmap, path *Path, paint *Paint) error
}

// SoftwareRenderer is a CPU-based anti-aliasing rasterizer.
// Fills use the non-zero winding rule and composite source-over.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

var _ Renderer = (*SoftwareRenderer)(nil)

// convertPath converts Path elements to path.Element for rasterization.
func convertPath(p *Path) []path.Element {
	elements := make([]path.Element, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: toInternal(e.Point)})
		case LineTo:
			elements = append(elements, path.LineTo{Point: toInternal(e.Point)})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: toInternal(e.Control),
				Point:   toInternal(e.Point),
			})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: toInternal(e.Control1),
				Control2: toInternal(e.Control2),
				Point:    toInternal(e.Point),
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

func toInternal(p Point) path.Point {
	return path.Point{X: p.X, Y: p.Y}
}

// Fill implements Renderer.Fill.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	if paint.Color.IsTransparent() {
		return nil
	}
	r.rasterizer.FillPath(pixmap.target(), convertPath(p), paint.Color.NRGBA())
	return nil
}

// Stroke implements Renderer.Stroke. The path is flattened, expanded into
// polygons and painted in one pass, so overlapping segments are not
// blended twice.
func (r *SoftwareRenderer) Stroke(pixmap *Pixmap, p *Path, paint *Paint) error {
	if paint.Color.IsTransparent() {
		return nil
	}
	subpaths := path.Flatten(convertPath(p))
	polys := stroke.Expand(subpaths, paint.Stroke.style())
	r.rasterizer.FillPolygons(pixmap.target(), polys, paint.Color.NRGBA())
	return nil
}
