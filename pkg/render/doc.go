// Package render provides the 2D drawing surface the plot layer paints on.
//
// # Overview
//
// The [Canvas] interface exposes a small set of primitives (lines, rects,
// circles, polylines, polygons, text); everything a karyotype plot draws is
// expressed through them. Plot code takes a Canvas and stays backend
// agnostic.
//
// # Backends
//
// Two backends are included:
//
//   - [SVGCanvas]: emits SVG elements into a buffer
//   - [RasterCanvas]: rasterizes into an RGBA image for PNG output
//
// Usage:
//
//	canvas := render.NewSVG(1200, 800)
//	kp.Ideograms(canvas)
//	os.WriteFile("out.svg", canvas.Bytes(), 0o644)
//
// The raster backend takes a scale factor for higher pixel density:
//
//	canvas := render.NewRaster(1200, 800, 2.0)
//	kp.Ideograms(canvas)
//	canvas.EncodePNG(out)
package render
