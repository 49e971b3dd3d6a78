// Package stroke converts stroked polylines into polygons that can be filled.
//
// Each segment of a polyline becomes a quad offset by half the line width on
// both sides. Caps are added at the two ends of open polylines and joins at
// every interior vertex (every vertex for closed polylines).
//
// All emitted polygons share one winding direction, so a rasterizer that
// accumulates signed coverage and clamps it (such as golang.org/x/image/vector)
// paints their union without seams or double-blended overlaps:
//
//	polys := stroke.Expand(subpaths, stroke.Style{
//		Width:      8,
//		Cap:        stroke.LineCapButt,
//		Join:       stroke.LineJoinMiter,
//		MiterLimit: 4,
//	})
package stroke
