package appicon

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Pixmap represents a rectangular pixel buffer. Pixels are stored
// premultiplied, 4 bytes per pixel, and start out fully transparent.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel, replacing what was there.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.Set(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel.
// Pixels outside the pixmap are transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	return FromColor(p.NRGBA(x, y))
}

// NRGBA returns the 8-bit non-premultiplied color of a single pixel, as it
// is written to PNG.
func (p *Pixmap) NRGBA(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(p.img.RGBAAt(x, y)).(color.NRGBA)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// target exposes the backing image to renderers.
func (p *Pixmap) target() draw.Image {
	return p.img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	draw.Draw(pm.img, pm.img.Rect, img, b.Min, draw.Src)
	return pm
}

// EncodePNG writes the pixmap to w in PNG format.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// SavePNG saves the pixmap to a PNG file. The image is encoded in memory
// first so that an encoding failure never leaves a truncated file behind.
func (p *Pixmap) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644) //nolint:gosec // icon output is world-readable
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.NRGBA(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
