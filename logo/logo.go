// Package logo draws the application icon: a blue circular badge with two
// code brackets, two people joined by a line, a "</>" glyph and six
// decorative dots.
//
// The geometry is a fixed list of named shapes returned by [Layout]; [Draw]
// issues them in order onto an [appicon.Context]. [Save] writes the result
// as a PNG file.
package logo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arkadasbulma/appicon"
)

// ErrOutOfBounds is returned when a shape has a coordinate outside the canvas.
var ErrOutOfBounds = errors.New("logo: shape outside canvas")

// Validate checks that every coordinate of every shape lies in
// [0, size) x [0, size). The error names the first offending shape.
func Validate(shapes []Shape, size int) error {
	s := float64(size)
	for i, sh := range shapes {
		for _, p := range sh.Coordinates() {
			if !p.In(s, s) {
				return fmt.Errorf("%w: #%d %q (%s) at (%g, %g), canvas %dx%d",
					ErrOutOfBounds, i, sh.Name, sh.Kind, p.X, p.Y, size, size)
			}
		}
	}
	return nil
}

// Draw validates the layout against the canvas and draws every shape in
// order. Drawing stops at the first failure.
func Draw(dc *appicon.Context) error {
	shapes := Layout()
	if err := Validate(shapes, min(dc.Width(), dc.Height())); err != nil {
		return err
	}

	log := appicon.Logger()
	for _, sh := range shapes {
		log.Debug("logo: draw shape", "name", sh.Name, "kind", sh.Kind.String(), "bounds", sh.Bounds().String())
		if err := sh.draw(dc); err != nil {
			return fmt.Errorf("logo: draw %s: %w", sh.Name, err)
		}
	}
	return nil
}

// Render allocates a transparent Size x Size canvas and draws the icon.
func Render() (*appicon.Context, error) {
	dc := appicon.NewContext(Size, Size)
	if err := Draw(dc); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Encode renders the icon and writes it to w as PNG.
func Encode(w io.Writer) error {
	dc, err := Render()
	if err != nil {
		return err
	}
	defer func() {
		_ = dc.Close()
	}()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("logo: encode png: %w", err)
	}
	return nil
}

// Save renders the icon and writes it to path, creating or overwriting the
// file. The PNG is encoded in memory first, so the file is only touched
// once the image is complete.
func Save(path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // icon output is world-readable
		return fmt.Errorf("logo: write %s: %w", path, err)
	}

	appicon.Logger().Info("logo: icon written", "path", path, "bytes", buf.Len())
	return nil
}
