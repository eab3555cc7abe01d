package plot

import (
	"errors"
	"fmt"

	"github.com/bio-traven/karyoploteR/pkg/render"
)

var (
	// ErrBadScale is returned when a scale has Ymin equal to Ymax.
	ErrBadScale = errors.New("ymin and ymax must differ")

	// ErrUnknownPanel is returned for panels a plot type does not have.
	ErrUnknownPanel = errors.New("unknown data panel")

	// ErrLengthMismatch is returned when position and value slices differ
	// in length.
	ErrLengthMismatch = errors.New("position and value slices differ in length")
)

// DataPanel selects where data is drawn relative to the ideogram.
type DataPanel int

const (
	// Panel1 is the panel above the ideogram. Values grow upward. It is
	// the zero value, so an unset Scale draws into panel 1.
	Panel1 DataPanel = iota
	// Panel2 is the panel below the ideogram (plot type 2 only). Values
	// grow downward.
	Panel2
	// PanelIdeogram draws on top of the ideogram itself.
	PanelIdeogram
)

// Scale maps data values into a panel. R0 and R1 pick the vertical slice
// of the panel to use (0 is the panel edge at the ideogram, 1 the far
// edge), and Ymin/Ymax define the data range mapped onto that slice.
//
// The zero value is normalized to R0=0, R1=1, Ymin=0, Ymax=1, Panel1.
type Scale struct {
	R0    float64
	R1    float64
	Ymin  float64
	Ymax  float64
	Panel DataPanel
}

// normalize fills zero-value defaults and validates the scale.
func (sc Scale) normalize() (Scale, error) {
	if sc.R0 == 0 && sc.R1 == 0 {
		sc.R1 = 1
	}
	if sc.Ymin == 0 && sc.Ymax == 0 {
		sc.Ymax = 1
	}
	if sc.Ymax == sc.Ymin {
		return sc, fmt.Errorf("%w: ymin=%v ymax=%v", ErrBadScale, sc.Ymin, sc.Ymax)
	}
	return sc, nil
}

// CoordChange converts genomic positions and data values on one chromosome
// into canvas points. Implementations receive the plot for its layout and
// visible region; pos and y must have equal length.
//
// Replacing the coordinate-change function on a plot changes where every
// overlay draws, which is how non-standard layouts are built.
type CoordChange func(kp *Plot, chrom string, pos []int64, y []float64, sc Scale) ([]render.Point, error)

// Coord maps genomic positions on a chromosome to canvas points using the
// plot's coordinate-change function.
func (kp *Plot) Coord(chrom string, pos []int64, y []float64, sc Scale) ([]render.Point, error) {
	return kp.coord(kp, chrom, pos, y, sc)
}

// PanelYDirection reports how canvas y moves as data values grow in the
// panel: -1 for upward (canvas y shrinks), +1 for downward.
func (kp *Plot) PanelYDirection(panel DataPanel) int {
	if panel == Panel2 {
		return 1
	}
	return -1
}

// panelBand returns the canvas y extent of a panel within a row. near is
// the edge adjacent to the ideogram (r=0), far the opposite edge (r=1).
func (kp *Plot) panelBand(row chromRow, panel DataPanel) (near, far float64, err error) {
	switch panel {
	case Panel1:
		return row.upperBottom, row.upperTop, nil
	case Panel2:
		if kp.plotType != TypeAboveBelow {
			return 0, 0, fmt.Errorf("%w: panel 2 requires plot type 2", ErrUnknownPanel)
		}
		return row.lowerTop, row.lowerBottom, nil
	case PanelIdeogram:
		return row.ideoBottom, row.ideoTop, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownPanel, panel)
	}
}

// AutotrackCoord is the default coordinate-change function. Positions map
// linearly across the visible region of the chromosome row, and values map
// through the scale into the requested panel.
//
// Positions outside the visible region are not clipped here; callers that
// need clipping filter their data first.
func AutotrackCoord(kp *Plot, chrom string, pos []int64, y []float64, sc Scale) ([]render.Point, error) {
	if len(pos) != len(y) {
		return nil, fmt.Errorf("%w: %d positions, %d values", ErrLengthMismatch, len(pos), len(y))
	}
	row, ok := kp.rows[chrom]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChromNotVisible, chrom)
	}
	sc, err := sc.normalize()
	if err != nil {
		return nil, err
	}
	near, far, err := kp.panelBand(row, sc.Panel)
	if err != nil {
		return nil, err
	}

	left, right := kp.plotLeft(), kp.plotRight()
	vr := row.visible
	span := float64(vr.End - vr.Start)
	if span <= 0 {
		span = 1
	}

	pts := make([]render.Point, len(pos))
	for i := range pos {
		fx := float64(pos[i]-vr.Start) / span
		r := sc.R0 + (y[i]-sc.Ymin)/(sc.Ymax-sc.Ymin)*(sc.R1-sc.R0)
		pts[i] = render.Point{
			X: left + fx*(right-left),
			Y: near + r*(far-near),
		}
	}
	return pts, nil
}
