// Package gg provides a simple 2D graphics library for Go.
//
// # Overview
//
// gg is a Pure Go 2D graphics library inspired by fogleman/gg, built around
// an antialiased software scanline rasterizer. It provides an immediate-mode
// drawing API similar to HTML Canvas.
//
// # Quick Start
//
//	import "github.com/gogpu/gg"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc := gg.NewContext(512, 512)
//
//	// Draw shapes
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(256, 256, 100)
//	dc.Fill()
//
//	// Save to PNG
//	dc.SavePNG("output.png")
//
// # API Compatibility
//
// The API is designed to be compatible with fogleman/gg for easy migration.
// Most fogleman/gg code should work with minimal changes.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Path, Paint, Matrix, Point
//   - Internal: raster (scanline), stroke (offset outlines), blend (compositing),
//     clip (span algebra), color (sRGB/linear conversion), image (texture sampling)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Performance
//
// The software renderer prioritizes correctness first; the analytic-AA
// filler and span-based compositing keep the hot paths allocation-free.
package gg
