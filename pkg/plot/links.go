package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/palette"
	"github.com/bio-traven/karyoploteR/pkg/render"
)

// ErrPairMismatch is returned when link starts and ends differ in length.
var ErrPairMismatch = errors.New("starts and ends must pair up one to one")

// LinkOptions controls the link/ribbon overlay.
type LinkOptions struct {
	// Scale maps Y and ArchHeight into the panel.
	Scale Scale
	// Y is the data value both link endpoints attach at. Zero means
	// unset and anchors the links at Ymin; a literal zero in a scale
	// where Ymin != 0 is not representable, shift the scale instead.
	Y float64
	// ArchHeight is the arch's rise in data units. Defaults to half the
	// scale range.
	ArchHeight float64
	// Colors gives one fill per pair. When empty, pairs are colored by
	// their start chromosome.
	Colors []string
	// Opacity of the ribbon fill. Defaults to 0.5 so overlapping links
	// stay readable.
	Opacity float64
	// Border strokes each boundary curve. Empty means no border.
	Border string
	// Palette used for per-chromosome coloring. Zero value uses the
	// plot's palette.
	Palette palette.Spec
}

// linkEnd is one side of a link after strand resolution: the canvas
// points of the interval's two boundary coordinates.
type linkEnd struct {
	a, b render.Point
}

// endPoints transforms one interval's boundaries at data value y. A minus
// strand swaps the boundaries so the ribbon visually flips at that end.
func (kp *Plot) endPoints(reg genome.Region, y float64, sc Scale) (linkEnd, error) {
	lo, hi := reg.Start, reg.End
	if reg.Strand == genome.StrandMinus {
		lo, hi = hi, lo
	}
	pts, err := kp.Coord(reg.Chrom, []int64{lo, hi}, []float64{y, y}, sc)
	if err != nil {
		return linkEnd{}, err
	}
	return linkEnd{a: pts[0], b: pts[1]}, nil
}

// archOffset computes the canvas displacement of the control points. The
// magnitude comes from ArchHeight run through the transform; the sign
// follows the relative vertical position of the two ends, with ties
// resolved by the panel's y direction so the arch bends away from the
// ideogram.
func (kp *Plot) archOffset(start linkEnd, end linkEnd, chrom string, y, height float64, sc Scale) (float64, error) {
	probe, err := kp.Coord(chrom, []int64{1, 1}, []float64{y, y + height}, sc)
	if err != nil {
		return 0, err
	}
	mag := math.Abs(probe[1].Y - probe[0].Y)

	switch {
	case start.a.Y > end.a.Y:
		return -mag, nil
	case start.a.Y < end.a.Y:
		return mag, nil
	default:
		return mag * float64(kp.PanelYDirection(sc.Panel)), nil
	}
}

// Links draws a Bezier ribbon for each start/end interval pair. When ends
// is nil it is derived from the start set's paired-end metadata columns.
// Pairs with either side outside the visible window are dropped.
func (kp *Plot) Links(c render.Canvas, starts, ends *genome.RegionSet, opts LinkOptions) error {
	if starts == nil {
		return ErrNilRegionSet
	}
	if ends == nil {
		derived, err := starts.PairedEnds()
		if err != nil {
			return err
		}
		ends = derived
	}
	if starts.Len() != ends.Len() {
		return fmt.Errorf("%w: %d starts, %d ends", ErrPairMismatch, starts.Len(), ends.Len())
	}
	colors, err := kp.overlayColors(starts, opts.Colors, opts.Palette)
	if err != nil {
		return err
	}

	sc, err := opts.Scale.normalize()
	if err != nil {
		return err
	}
	height := opts.ArchHeight
	if height == 0 {
		height = (sc.Ymax - sc.Ymin) / 2
	}
	y := opts.Y
	if opts.Y == 0 {
		y = sc.Ymin
	}
	opacity := opts.Opacity
	if opacity <= 0 {
		opacity = 0.5
	}

	for i := 0; i < starts.Len(); i++ {
		sReg, eReg := starts.Region(i), ends.Region(i)
		if !kp.pairVisible(sReg, eReg) {
			continue
		}

		start, err := kp.endPoints(sReg, y, opts.Scale)
		if err != nil {
			return err
		}
		end, err := kp.endPoints(eReg, y, opts.Scale)
		if err != nil {
			return err
		}
		dy, err := kp.archOffset(start, end, sReg.Chrom, y, height, opts.Scale)
		if err != nil {
			return err
		}

		curveA := arc(start.a, end.a, dy).sample(linkSamples)
		curveB := arc(start.b, end.b, dy).sample(linkSamples)

		// Ribbon: first boundary curve forward, second backward.
		ribbon := make([]render.Point, 0, 2*linkSamples)
		ribbon = append(ribbon, curveA...)
		for j := len(curveB) - 1; j >= 0; j-- {
			ribbon = append(ribbon, curveB[j])
		}
		c.Polygon(ribbon, render.Style{Fill: colors[i], Opacity: opacity})

		if opts.Border != "" {
			style := render.Style{Stroke: opts.Border}
			c.Polyline(curveA, style)
			c.Polyline(curveB, style)
		}
	}
	return nil
}

// pairVisible reports whether both link ends overlap their chromosome's
// visible window.
func (kp *Plot) pairVisible(a, b genome.Region) bool {
	va, ok := kp.VisibleRegion(a.Chrom)
	if !ok || !a.Overlaps(va) {
		return false
	}
	vb, ok := kp.VisibleRegion(b.Chrom)
	return ok && b.Overlaps(vb)
}
