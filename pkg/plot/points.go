package plot

import (
	"errors"
	"fmt"

	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/palette"
	"github.com/bio-traven/karyoploteR/pkg/render"
)

var (
	// ErrNilRegionSet is returned by overlays given a nil region set.
	ErrNilRegionSet = errors.New("region set must not be nil")

	// ErrMissingValues is returned when an overlay needs per-region
	// values and neither the options nor the set's columns provide them.
	ErrMissingValues = errors.New("no data values for overlay")
)

// PointOptions controls the point overlay.
type PointOptions struct {
	// Scale maps values into the panel. Zero value means panel 1, data
	// range [0,1].
	Scale Scale
	// Y holds one value per region. When empty, values come from the
	// set's numeric column named by Column.
	Y []float64
	// Column is the numeric column to read when Y is empty. Defaults
	// to "y".
	Column string
	// Radius of each point in canvas units. Defaults to 2.
	Radius float64
	// Colors gives one color per region. When empty, points are colored
	// by chromosome using Palette.
	Colors []string
	// Palette used for per-chromosome coloring. Zero value uses the
	// plot's palette.
	Palette palette.Spec
}

// values resolves the per-region value slice for an overlay from an
// explicit slice or a numeric column.
func overlayValues(set *genome.RegionSet, explicit []float64, column string) ([]float64, error) {
	if len(explicit) > 0 {
		if len(explicit) != set.Len() {
			return nil, fmt.Errorf("%w: %d values for %d regions",
				genome.ErrColumnLength, len(explicit), set.Len())
		}
		return explicit, nil
	}
	if column == "" {
		column = "y"
	}
	vals, ok := set.Numeric(column)
	if !ok {
		return nil, fmt.Errorf("%w: column %q", ErrMissingValues, column)
	}
	return vals, nil
}

// overlayColors resolves one color per region: explicit colors win,
// otherwise regions are colored by chromosome against the genome's
// chromosome order.
func (kp *Plot) overlayColors(set *genome.RegionSet, explicit []string, spec palette.Spec) ([]string, error) {
	if len(explicit) > 0 {
		if len(explicit) != set.Len() {
			return nil, fmt.Errorf("%w: %d colors for %d regions",
				genome.ErrColumnLength, len(explicit), set.Len())
		}
		return explicit, nil
	}
	if spec.IsZero() {
		spec = kp.pal
	}
	return palette.ForLabels(set.Chroms(), kp.genome.Names(), spec)
}

// Points draws one marker per region at its midpoint. Regions outside the
// visible window are skipped.
func (kp *Plot) Points(c render.Canvas, set *genome.RegionSet, opts PointOptions) error {
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
	radius := opts.Radius
	if radius <= 0 {
		radius = 2
	}

	for i := 0; i < set.Len(); i++ {
		reg := set.Region(i)
		vr, ok := kp.VisibleRegion(reg.Chrom)
		if !ok || !reg.Overlaps(vr) {
			continue
		}
		pts, err := kp.Coord(reg.Chrom, []int64{reg.Mid()}, []float64{y[i]}, opts.Scale)
		if err != nil {
			return err
		}
		c.Circle(pts[0].X, pts[0].Y, radius, render.Style{Fill: colors[i]})
	}
	return nil
}
