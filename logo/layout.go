package logo

import (
	"fmt"

	"github.com/arkadasbulma/appicon"
)

const (
	// Size is the width and height of the icon in pixels.
	Size = 512

	// FileName is the name the icon is written under.
	FileName = "app_icon.png"
)

// Palette.
var (
	badgeFill    = appicon.RGBA8(33, 150, 243, 255)
	badgeOutline = appicon.RGBA8(25, 118, 210, 255)
	glyphWhite   = appicon.RGBA8(255, 255, 255, 230)
	edgeWhite    = appicon.RGBA8(255, 255, 255, 255)
	dotWhite     = appicon.RGBA8(255, 255, 255, 180)
)

// Layout returns the icon's shapes in drawing order. Later shapes are
// composited over earlier ones. Each call returns a fresh slice.
func Layout() []Shape {
	const (
		cx, cy = Size / 2, Size / 2
		radius = 240
	)

	shapes := []Shape{
		{
			Name:    "badge",
			Kind:    KindEllipse,
			Box:     appicon.R(cx-radius, cy-radius, cx+radius, cy+radius),
			Fill:    badgeFill,
			Outline: badgeOutline,
			Width:   8,
		},
		{
			Name: "left-bracket",
			Kind: KindPolygon,
			Points: []appicon.Point{
				{X: 120, Y: 180}, {X: 80, Y: 220}, {X: 80, Y: 240}, {X: 120, Y: 280},
				{X: 140, Y: 260}, {X: 110, Y: 230}, {X: 110, Y: 210}, {X: 140, Y: 180},
			},
			Fill:    glyphWhite,
			Outline: edgeWhite,
			Width:   1,
		},
		{
			Name: "right-bracket",
			Kind: KindPolygon,
			Points: []appicon.Point{
				{X: 392, Y: 180}, {X: 372, Y: 180}, {X: 402, Y: 210}, {X: 402, Y: 230},
				{X: 372, Y: 260}, {X: 392, Y: 280}, {X: 432, Y: 240}, {X: 432, Y: 220},
			},
			Fill:    glyphWhite,
			Outline: edgeWhite,
			Width:   1,
		},
		{Name: "person-1-head", Kind: KindEllipse, Box: appicon.R(175, 175, 225, 225), Fill: glyphWhite},
		{Name: "person-1-body", Kind: KindRoundedRect, Box: appicon.R(175, 240, 225, 280), Radius: 10, Fill: glyphWhite},
		{Name: "person-2-head", Kind: KindEllipse, Box: appicon.R(287, 175, 337, 225), Fill: glyphWhite},
		{Name: "person-2-body", Kind: KindRoundedRect, Box: appicon.R(287, 240, 337, 280), Radius: 10, Fill: glyphWhite},
		{
			Name:   "link",
			Kind:   KindPolyline,
			Points: []appicon.Point{{X: 225, Y: 200}, {X: 287, Y: 200}},
			Fill:   glyphWhite,
			Width:  6,
		},
		{
			Name:   "glyph-less-than",
			Kind:   KindPolyline,
			Points: []appicon.Point{{X: 220, Y: 320}, {X: 200, Y: 340}, {X: 220, Y: 360}},
			Fill:   glyphWhite,
			Width:  8,
		},
		{
			Name:   "glyph-slash",
			Kind:   KindPolyline,
			Points: []appicon.Point{{X: 240, Y: 360}, {X: 260, Y: 320}},
			Fill:   glyphWhite,
			Width:  8,
		},
		{
			Name:   "glyph-greater-than",
			Kind:   KindPolyline,
			Points: []appicon.Point{{X: 280, Y: 320}, {X: 300, Y: 340}, {X: 280, Y: 360}},
			Fill:   glyphWhite,
			Width:  8,
		},
	}

	return append(shapes, dots()...)
}

// dots returns the two diagonal rows of decorative dots flanking the glyphs.
func dots() []Shape {
	const r = 4
	centers := []appicon.Point{
		{X: 160, Y: 320}, {X: 180, Y: 340}, {X: 200, Y: 360},
		{X: 352, Y: 320}, {X: 332, Y: 340}, {X: 312, Y: 360},
	}
	shapes := make([]Shape, 0, len(centers))
	for i, c := range centers {
		shapes = append(shapes, Shape{
			Name: fmt.Sprintf("dot-%d", i+1),
			Kind: KindEllipse,
			Box:  appicon.R(c.X-r, c.Y-r, c.X+r, c.Y+r),
			Fill: dotWhite,
		})
	}
	return shapes
}
