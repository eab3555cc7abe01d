// Package pkg provides the core libraries for karyoplot genome plotting.
//
// # Overview
//
// Karyoplot draws genomic data along chromosome ideograms, producing
// karyotype figures in the style of genome browsers. The pkg directory is
// organized into five main areas:
//
//  1. [genome] - Domain model (genomes, regions, cytobands, BED parsing)
//  2. [plot] - Coordinate mapping and data overlays
//  3. [render] - Output canvases (SVG, raster/PNG)
//  4. [integrations] - External data sources (UCSC Genome Browser)
//  5. [pipeline] - Orchestration (load → build → render)
//
// # Architecture
//
// The typical data flow through karyoplot:
//
//	Assembly (embedded or UCSC) + BED data
//	         ↓
//	    [genome] package (chromosomes, regions, metadata columns)
//	         ↓
//	    [plot] package (row layout + coordinate change + overlays)
//	         ↓
//	    [render] package (canvas primitives)
//	         ↓
//	    SVG/PNG output
//
// # Quick Start
//
// Build a plot and draw an overlay:
//
//	import (
//	    "github.com/bio-traven/karyoploteR/pkg/genome"
//	    "github.com/bio-traven/karyoploteR/pkg/plot"
//	    "github.com/bio-traven/karyoploteR/pkg/render"
//	)
//
//	// 1. Load a genome
//	g, _ := genome.Load("hg38")
//
//	// 2. Build the karyotype layout
//	kp, _ := plot.New(g, plot.WithSize(1200, 800))
//
//	// 3. Draw onto a canvas
//	c := render.NewSVG(1200, 800)
//	_ = kp.Ideograms(c, plot.IdeogramOptions{})
//	_ = kp.ChromosomeNames(c, plot.NameOptions{})
//
//	data, _ := genome.ReadBEDFile("peaks.bed")
//	_ = kp.Points(c, data, plot.PointOptions{Column: "score"})
//
//	svg := c.Bytes()
//
// # Main Packages
//
// [genome] - Chromosome sets with stable ordering, 1-based inclusive
// regions, region sets with numeric and label metadata columns, cytoband
// tables, BED I/O, and the embedded assembly registry.
//
// [plot] - The karyotype layout: one horizontal row per visible
// chromosome (or a single zoomed window), ideogram drawing with Giemsa
// staining, and the data overlays (points, rects, segments, links). The
// pluggable coordinate-change function maps genomic positions to canvas
// points.
//
// [palette] - Named categorical palettes recycled over chromosomes.
//
// [render] - The Canvas interface with SVG and raster implementations.
//
// [integrations] - Cached HTTP clients for remote data; [integrations/ucsc]
// fetches chromosome sizes and cytoband tables.
//
// [cache] - File, Redis, and null cache backends plus key generation.
//
// [pipeline] - The complete load → build → render pipeline shared by the
// CLI and the HTTP server.
//
// [errors] - Structured error codes and input validation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/plot/...      # Specific package
//	go test -run Example        # Examples only
//
// [genome]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/genome
// [plot]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/plot
// [palette]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/palette
// [render]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/render
// [integrations]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/integrations
// [integrations/ucsc]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/integrations/ucsc
// [cache]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/bio-traven/karyoploteR/pkg/errors
package pkg
