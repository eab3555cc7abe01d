package plot

import (
	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/render"
)

// IdeogramOptions controls ideogram drawing.
type IdeogramOptions struct {
	// Cytobands maps chromosome names to their banding. When set, bands
	// are filled by stain and centromeric bands drawn as triangles.
	// Chromosomes without bands fall back to a plain box.
	Cytobands map[string][]genome.Cytoband
	// Fill is the plain-box fill. Defaults to white.
	Fill string
	// Border is the outline color. Defaults to black.
	Border string
}

// xOf maps a genomic position to a canvas x within the row, clamped to
// the row's horizontal extent.
func (kp *Plot) xOf(row chromRow, pos int64) float64 {
	left, right := kp.plotLeft(), kp.plotRight()
	vr := row.visible
	span := float64(vr.End - vr.Start)
	if span <= 0 {
		span = 1
	}
	x := left + float64(pos-vr.Start)/span*(right-left)
	if x < left {
		return left
	}
	if x > right {
		return right
	}
	return x
}

// Ideograms draws the chromosome body for every visible chromosome.
func (kp *Plot) Ideograms(c render.Canvas, opts IdeogramOptions) error {
	fill := opts.Fill
	if fill == "" {
		fill = "#FFFFFF"
	}
	border := opts.Border
	if border == "" {
		border = "#000000"
	}

	for _, name := range kp.order {
		row := kp.rows[name]
		x0 := kp.xOf(row, row.visible.Start)
		x1 := kp.xOf(row, row.visible.End)

		bands := opts.Cytobands[name]
		if len(bands) == 0 {
			c.Rect(x0, row.ideoTop, x1-x0, row.ideoBottom-row.ideoTop,
				render.Style{Fill: fill, Stroke: border})
			continue
		}
		kp.drawBands(c, row, bands)
		c.Rect(x0, row.ideoTop, x1-x0, row.ideoBottom-row.ideoTop,
			render.Style{Stroke: border})
	}
	return nil
}

// drawBands fills the banding of one chromosome. Centromeric bands (acen)
// are drawn as triangles pointing into the centromere.
func (kp *Plot) drawBands(c render.Canvas, row chromRow, bands []genome.Cytoband) {
	mid := (row.ideoTop + row.ideoBottom) / 2
	for _, band := range bands {
		reg, ok := band.Trim(row.visible)
		if !ok {
			continue
		}
		x0 := kp.xOf(row, reg.Start)
		x1 := kp.xOf(row, reg.End)
		style := render.Style{Fill: genome.StainColor(band.Stain)}

		if !band.IsCentromeric() {
			c.Rect(x0, row.ideoTop, x1-x0, row.ideoBottom-row.ideoTop, style)
			continue
		}
		// The two acen bands taper toward each other. The p-arm band
		// (name starts with "p") narrows rightward, the q-arm band
		// narrows leftward.
		if len(band.Name) > 0 && band.Name[0] == 'p' {
			c.Polygon([]render.Point{
				{X: x0, Y: row.ideoTop},
				{X: x1, Y: mid},
				{X: x0, Y: row.ideoBottom},
			}, style)
		} else {
			c.Polygon([]render.Point{
				{X: x1, Y: row.ideoTop},
				{X: x0, Y: mid},
				{X: x1, Y: row.ideoBottom},
			}, style)
		}
	}
}

// NameOptions controls chromosome name labels.
type NameOptions struct {
	Color string  // defaults to black
	Size  float64 // font size, defaults to 12
}

// ChromosomeNames writes each chromosome's name in the label gutter left
// of its ideogram.
func (kp *Plot) ChromosomeNames(c render.Canvas, opts NameOptions) error {
	size := opts.Size
	if size <= 0 {
		size = 12
	}
	for _, name := range kp.order {
		row := kp.rows[name]
		y := (row.ideoTop+row.ideoBottom)/2 + size/3
		c.Text(kp.plotLeft()-8, y, name, render.TextStyle{
			Fill:   opts.Color,
			Size:   size,
			Anchor: render.AnchorEnd,
		})
	}
	return nil
}
