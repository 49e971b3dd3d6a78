package logo

import (
	"fmt"

	"github.com/arkadasbulma/appicon"
)

// Kind is the geometry of a Shape.
type Kind int

const (
	// KindEllipse is the ellipse inscribed in Box, with an optional
	// inward outline of Width pixels.
	KindEllipse Kind = iota
	// KindPolygon is a closed polygon through Points, with an optional
	// outline of Width pixels.
	KindPolygon
	// KindRoundedRect fills Box with corners of Radius.
	KindRoundedRect
	// KindPolyline strokes the open line through Points with Width.
	KindPolyline
)

func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	case KindRoundedRect:
		return "rounded-rect"
	case KindPolyline:
		return "polyline"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape describes one drawing call: its geometry, colors and stroke width.
type Shape struct {
	Name string
	Kind Kind

	// Box bounds ellipses and rounded rectangles.
	Box appicon.Rect
	// Points are the vertices of polygons and polylines.
	Points []appicon.Point
	// Radius is the corner radius of rounded rectangles.
	Radius float64

	// Fill paints the interior, or the line itself for polylines.
	Fill appicon.RGBA
	// Outline paints the edge; transparent means no outline.
	Outline appicon.RGBA
	// Width is the outline width, or the line width for polylines.
	Width float64
}

// Coordinates returns every coordinate the shape is defined by.
func (s Shape) Coordinates() []appicon.Point {
	switch s.Kind {
	case KindPolygon, KindPolyline:
		return s.Points
	default:
		return []appicon.Point{s.Box.Min, s.Box.Max}
	}
}

// Bounds returns the bounding box of the shape's coordinates.
func (s Shape) Bounds() appicon.Rect {
	return appicon.BoundsOf(s.Coordinates()...)
}

func (s Shape) hasOutline() bool {
	return s.Width > 0 && !s.Outline.IsTransparent()
}

// draw issues the drawing calls for s on dc.
func (s Shape) draw(dc *appicon.Context) error {
	switch s.Kind {
	case KindEllipse:
		return s.drawEllipse(dc)
	case KindPolygon:
		return s.drawPolygon(dc)
	case KindRoundedRect:
		dc.SetColor(s.Fill)
		dc.DrawRoundedRect(s.Box, s.Radius)
		return dc.Fill()
	case KindPolyline:
		dc.SetColor(s.Fill)
		dc.SetStroke(appicon.DefaultStroke().WithWidth(s.Width))
		dc.DrawPolyline(s.Points...)
		return dc.Stroke()
	default:
		return fmt.Errorf("unknown shape kind %v", s.Kind)
	}
}

// drawEllipse fills the ellipse and paints the outline ring over its edge.
// With an outline the fill stops halfway into the ring, so its anti-aliased
// edge lies under the ring's solid band and the outer edge is painted by the
// ring alone.
func (s Shape) drawEllipse(dc *appicon.Context) error {
	if !s.hasOutline() {
		dc.SetColor(s.Fill)
		dc.DrawEllipseInRect(s.Box)
		return dc.Fill()
	}

	dc.SetColor(s.Fill)
	dc.DrawEllipseInRect(s.Box.Inset(s.Width / 2))
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetColor(s.Outline)
	dc.DrawRing(s.Box, s.Width)
	return dc.Fill()
}

func (s Shape) drawPolygon(dc *appicon.Context) error {
	dc.SetColor(s.Fill)
	dc.DrawPolygon(s.Points...)
	if err := dc.Fill(); err != nil {
		return err
	}
	if !s.hasOutline() {
		return nil
	}

	dc.SetColor(s.Outline)
	dc.SetStroke(appicon.DefaultStroke().WithWidth(s.Width))
	dc.DrawPolygon(s.Points...)
	return dc.Stroke()
}
