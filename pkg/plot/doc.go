// Package plot builds karyotype plots: chromosome ideograms with data
// overlays positioned by genomic coordinates.
//
// # Overview
//
// A [Plot] lays out one horizontal row per visible chromosome and maps
// genomic positions into it through a coordinate-change function
// ([CoordChange]). The default, [AutotrackCoord], places positions
// linearly across the visible window and data values through a [Scale]
// into a panel above (and with plot type 2, below) the ideogram.
//
// # Basic Usage
//
//	g, _ := genome.Load("hg38")
//	kp, _ := plot.New(g)
//	canvas := render.NewSVG(kp.Params().Width, kp.Params().Height)
//	kp.Ideograms(canvas, plot.IdeogramOptions{Cytobands: bands})
//	kp.ChromosomeNames(canvas, plot.NameOptions{})
//	kp.Points(canvas, data, plot.PointOptions{})
//	kp.Links(canvas, pairs, nil, plot.LinkOptions{})
//
// Overlays skip data outside the visible window, so the same region sets
// can be drawn on a whole-genome plot or a zoomed single-chromosome view
// without filtering first.
package plot
