package appicon

// Paint represents the styling information for drawing.
type Paint struct {
	// Color is the solid fill and stroke color.
	Color RGBA

	// Stroke holds line width, caps and joins.
	Stroke Stroke
}

// NewPaint creates a new Paint with default values: opaque black,
// DefaultStroke.
func NewPaint() *Paint {
	return &Paint{
		Color:  Black,
		Stroke: DefaultStroke(),
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
