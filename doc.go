// Package appicon provides a small 2D drawing library used to author the
// application icon.
//
// # Overview
//
// appicon offers an immediate-mode drawing API: build a path on a
// [Context], pick a color and stroke, then Fill or Stroke. Shapes are
// anti-aliased and composited source-over onto a transparent RGBA canvas,
// so later shapes layer on top of earlier ones.
//
// # Quick Start
//
//	dc := appicon.NewContext(512, 512)
//	defer dc.Close()
//
//	dc.SetRGBA8(33, 150, 243, 255)
//	dc.DrawCircle(256, 256, 240)
//	if err := dc.Fill(); err != nil {
//		return err
//	}
//
//	return dc.SavePNG("icon.png")
//
// The icon itself lives in the logo sub-package; cmd/appicon writes it to
// app_icon.png.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the top-left pixel
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to route its
// log/slog records somewhere.
package appicon
