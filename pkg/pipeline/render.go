package pipeline

import (
	"bytes"
	"fmt"

	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/plot"
	"github.com/bio-traven/karyoploteR/pkg/render"
)

// renderFormats draws the plot once per requested format.
func renderFormats(kp *plot.Plot, bands map[string][]genome.Cytoband, data, links *genome.RegionSet, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			c := render.NewSVG(opts.Width, opts.Height)
			if err := drawPlot(kp, c, bands, data, links); err != nil {
				return nil, err
			}
			artifacts[format] = c.Bytes()

		case FormatPNG:
			c := render.NewRaster(opts.Width, opts.Height, opts.Scale)
			if err := drawPlot(kp, c, bands, data, links); err != nil {
				return nil, err
			}
			var buf bytes.Buffer
			if err := c.EncodePNG(&buf); err != nil {
				return nil, fmt.Errorf("encode png: %w", err)
			}
			artifacts[format] = buf.Bytes()

		default:
			return nil, ValidateFormat(format)
		}
	}

	return artifacts, nil
}

// drawPlot paints the standard karyotype composition: ideograms with
// chromosome names, then the data overlays.
func drawPlot(kp *plot.Plot, c render.Canvas, bands map[string][]genome.Cytoband, data, links *genome.RegionSet) error {
	if err := kp.Ideograms(c, plot.IdeogramOptions{Cytobands: bands}); err != nil {
		return fmt.Errorf("ideograms: %w", err)
	}
	if err := kp.ChromosomeNames(c, plot.NameOptions{}); err != nil {
		return fmt.Errorf("chromosome names: %w", err)
	}

	if data != nil {
		if err := drawData(kp, c, data); err != nil {
			return fmt.Errorf("data overlay: %w", err)
		}
	}
	if links != nil {
		if err := kp.Links(c, links, nil, plot.LinkOptions{}); err != nil {
			return fmt.Errorf("links overlay: %w", err)
		}
	}
	return nil
}

// drawData renders the BED regions. Sets with a score column become a
// scatter over the score range; sets without become full-height bars.
func drawData(kp *plot.Plot, c render.Canvas, data *genome.RegionSet) error {
	scores, hasScore := data.Numeric("score")
	if !hasScore {
		return kp.Rects(c, data, plot.RectOptions{})
	}

	sc := plot.Scale{Ymax: maxValue(scores)}
	return kp.Points(c, data, plot.PointOptions{
		Scale:  sc,
		Column: "score",
	})
}

// maxValue returns the largest score, floored at 1 so degenerate inputs
// still produce a usable scale.
func maxValue(vals []float64) float64 {
	max := 1.0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}
