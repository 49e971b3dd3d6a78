package appicon

import (
	"errors"
	"image"
	"image/color"
	"io"
)

// ErrContextClosed is returned when filling or stroking a closed Context.
var ErrContextClosed = errors.New("appicon: context is closed")

// Context is the main drawing context.
// It maintains a pixmap, the current path and the paint state.
// Context implements io.Closer for proper resource cleanup.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	path  *Path
	paint *Paint

	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// The canvas starts fully transparent.
//
//	dc := appicon.NewContext(512, 512)
//	dc.SetRGBA8(33, 150, 243, 255)
//	dc.DrawCircle(256, 256, 240)
//	_ = dc.Fill()
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	Logger().Debug("appicon: context created", "width", width, "height", height)

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		path:     NewPath(),
		paint:    NewPaint(),
	}
}

// Close releases resources associated with the Context.
// After Close, Fill and Stroke return ErrContextClosed.
// Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.ClearPath()
	return nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the pixmap the context draws into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the context's image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// EncodePNG writes the context's image to w in PNG format.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// Clear resets every pixel to transparent.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current drawing color.
func (c *Context) SetColor(col color.Color) {
	if rgba, ok := col.(RGBA); ok {
		c.paint.Color = rgba
		return
	}
	c.paint.Color = FromColor(col)
}

// SetRGBA sets the current color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.paint.Color = RGBA{R: r, G: g, B: b, A: a}
}

// SetRGBA8 sets the current color using 8-bit channel values.
func (c *Context) SetRGBA8(r, g, b, a uint8) {
	c.paint.Color = RGBA8(r, g, b, a)
}

// SetLineWidth sets the line width for stroking.
func (c *Context) SetLineWidth(width float64) {
	c.paint.Stroke.Width = width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.paint.Stroke.Cap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.paint.Stroke.Join = join
}

// SetMiterLimit sets the miter limit for line joins.
func (c *Context) SetMiterLimit(limit float64) {
	c.paint.Stroke.MiterLimit = limit
}

// SetStroke sets the complete stroke style.
//
//	dc.SetStroke(appicon.DefaultStroke().WithWidth(8).WithJoin(appicon.LineJoinRound))
func (c *Context) SetStroke(stroke Stroke) {
	c.paint.Stroke = stroke
}

// GetStroke returns the current stroke style.
func (c *Context) GetStroke() Stroke {
	return c.paint.Stroke
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(x, y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.path.MoveTo(x, y)
		return
	}
	c.path.LineTo(x, y)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.path.MoveTo(cx, cy)
	}
	c.path.QuadraticTo(cx, cy, x, y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !c.path.HasCurrentPoint() {
		c.path.MoveTo(c1x, c1y)
	}
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	if c.path.HasCurrentPoint() {
		c.path.Close()
	}
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// NewSubPath starts a new subpath at the current point without closing
// the previous one.
func (c *Context) NewSubPath() {
	if c.path.HasCurrentPoint() {
		p := c.path.CurrentPoint()
		c.path.MoveTo(p.X, p.Y)
	}
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.path.Rectangle(x, y, w, h)
}

// DrawRoundedRectangle adds a rectangle with corners of radius r.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	c.path.RoundedRectangle(x, y, w, h, r)
}

// DrawRoundedRect adds a rounded rectangle filling the bounding box.
func (c *Context) DrawRoundedRect(box Rect, r float64) {
	c.path.RoundedRectangle(box.Min.X, box.Min.Y, box.Dx(), box.Dy(), r)
}

// DrawCircle adds a circle to the current path.
func (c *Context) DrawCircle(x, y, r float64) {
	c.path.Circle(x, y, r)
}

// DrawEllipse adds an ellipse with radii rx and ry to the current path.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	c.path.Ellipse(x, y, rx, ry)
}

// DrawEllipseInRect adds the ellipse inscribed in the bounding box.
func (c *Context) DrawEllipseInRect(box Rect) {
	ctr := box.Center()
	c.path.Ellipse(ctr.X, ctr.Y, box.Dx()/2, box.Dy()/2)
}

// DrawRing adds an elliptical ring of the given width whose outer edge is
// the ellipse inscribed in box. The ring grows inward. Filling it paints
// only the band between the two edges.
func (c *Context) DrawRing(box Rect, width float64) {
	ctr := box.Center()
	rx, ry := box.Dx()/2, box.Dy()/2
	c.path.Ellipse(ctr.X, ctr.Y, rx, ry)
	if irx, iry := rx-width, ry-width; irx > 0 && iry > 0 {
		c.path.ReverseEllipse(ctr.X, ctr.Y, irx, iry)
	}
}

// DrawPolygon adds a closed polygon through the given points.
func (c *Context) DrawPolygon(pts ...Point) {
	c.path.Polygon(pts...)
}

// DrawLine adds a line segment to the current path.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.path.MoveTo(x1, y1)
	c.path.LineTo(x2, y2)
}

// DrawPolyline adds an open polyline through the given points.
func (c *Context) DrawPolyline(pts ...Point) {
	c.path.Polyline(pts...)
}

// Fill fills the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.ClearPath()
	return err
}

// Stroke strokes the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Context) Stroke() error {
	err := c.StrokePreserve()
	c.ClearPath()
	return err
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() error {
	if c.closed {
		return ErrContextClosed
	}
	Logger().Debug("appicon: fill", "bounds", c.path.Bounds().String(), "color", c.paint.Color.NRGBA())
	return c.renderer.Fill(c.pixmap, c.path, c.paint)
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() error {
	if c.closed {
		return ErrContextClosed
	}
	Logger().Debug("appicon: stroke", "bounds", c.path.Bounds().String(), "width", c.paint.Stroke.Width)
	return c.renderer.Stroke(c.pixmap, c.path, c.paint)
}
