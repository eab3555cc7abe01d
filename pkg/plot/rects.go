package plot

import (
	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/palette"
	"github.com/bio-traven/karyoploteR/pkg/render"
)

// RectOptions controls the rectangle overlay.
type RectOptions struct {
	Scale Scale
	// Y0 and Y1 give the vertical extent of each rectangle in data
	// units. Empty slices fall back to the numeric columns "y0" and
	// "y1". If neither exists, rectangles span the full scale range.
	Y0, Y1  []float64
	Colors  []string
	Border  string
	Palette palette.Spec
}

// Rects draws one filled rectangle per region, spanning the region's
// genomic extent horizontally and [y0, y1] vertically. Regions outside
// the visible window are skipped; partially visible regions are trimmed.
func (kp *Plot) Rects(c render.Canvas, set *genome.RegionSet, opts RectOptions) error {
	if set == nil {
		return ErrNilRegionSet
	}
	y0, err0 := overlayValues(set, opts.Y0, "y0")
	y1, err1 := overlayValues(set, opts.Y1, "y1")
	fullSpan := err0 != nil && err1 != nil
	if !fullSpan {
		if err0 != nil {
			return err0
		}
		if err1 != nil {
			return err1
		}
	}
	colors, err := kp.overlayColors(set, opts.Colors, opts.Palette)
	if err != nil {
		return err
	}

	sc, err := opts.Scale.normalize()
	if err != nil {
		return err
	}

	for i := 0; i < set.Len(); i++ {
		reg := set.Region(i)
		vr, ok := kp.VisibleRegion(reg.Chrom)
		if !ok {
			continue
		}
		trimmed, ok := reg.Trim(vr)
		if !ok {
			continue
		}
		v0, v1 := sc.Ymin, sc.Ymax
		if !fullSpan {
			v0, v1 = y0[i], y1[i]
		}
		pts, err := kp.Coord(reg.Chrom,
			[]int64{trimmed.Start, trimmed.End}, []float64{v0, v1}, opts.Scale)
		if err != nil {
			return err
		}
		x, y := pts[0].X, pts[0].Y
		w, h := pts[1].X-x, pts[1].Y-y
		if h < 0 {
			y, h = y+h, -h
		}
		c.Rect(x, y, w, h, render.Style{Fill: colors[i], Stroke: opts.Border})
	}
	return nil
}

// SegmentOptions controls the segment overlay.
type SegmentOptions struct {
	Scale Scale
	// Y holds one value per region; falls back to the "y" column.
	Y       []float64
	Column  string
	Width   float64 // stroke width, defaults to 1
	Colors  []string
	Palette palette.Spec
}

// Segments draws one horizontal line per region at its data value.
// Regions outside the visible window are skipped; partially visible
// regions are trimmed.
func (kp *Plot) Segments(c render.Canvas, set *genome.RegionSet, opts SegmentOptions) error {
	if set == nil {
		return ErrNilRegionSet
	}
	y, err := overlayValues(set, opts.Y, opts.Column)
	if err != nil {
		return err
	}
	colors, err := kp.overlayColors(set, opts.Colors, opts.Palette)
	if err != nil {
		return err
	}
	width := opts.Width
	if width <= 0 {
		width = 1
	}

	for i := 0; i < set.Len(); i++ {
		reg := set.Region(i)
		vr, ok := kp.VisibleRegion(reg.Chrom)
		if !ok {
			continue
		}
		trimmed, ok := reg.Trim(vr)
		if !ok {
			continue
		}
		pts, err := kp.Coord(reg.Chrom,
			[]int64{trimmed.Start, trimmed.End}, []float64{y[i], y[i]}, opts.Scale)
		if err != nil {
			return err
		}
		c.Line(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y,
			render.Style{Stroke: colors[i], StrokeWidth: width})
	}
	return nil
}
