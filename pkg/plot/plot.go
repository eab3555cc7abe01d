package plot

import (
	"errors"
	"fmt"

	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/palette"
)

var (
	// ErrNilGenome is returned by [New] when no genome is supplied.
	ErrNilGenome = errors.New("genome must not be nil")

	// ErrBadPlotType is returned by [New] for plot types other than 1 and 2.
	ErrBadPlotType = errors.New("plot type must be 1 or 2")

	// ErrBadDimensions is returned by [New] when the canvas area left after
	// margins cannot fit the chromosome rows.
	ErrBadDimensions = errors.New("plot dimensions too small")

	// ErrChromNotVisible is returned by [Plot.Coord] when the chromosome is
	// not part of the visible region (zoomed out of view or unknown).
	ErrChromNotVisible = errors.New("chromosome not in visible region")
)

// Plot types, matching the two supported panel arrangements.
const (
	// TypeAbove draws one data panel above each ideogram.
	TypeAbove = 1
	// TypeAboveBelow draws data panels above and below each ideogram.
	// The lower panel's y axis grows downward.
	TypeAboveBelow = 2
)

// Params holds the geometry of a karyotype plot in canvas units.
type Params struct {
	Width          float64 // total canvas width
	Height         float64 // total canvas height
	MarginLeft     float64
	MarginRight    float64
	MarginTop      float64
	MarginBottom   float64
	IdeogramHeight float64 // vertical extent of each ideogram
	ChromSpacing   float64 // gap between chromosome rows
	LabelWidth     float64 // space reserved left of each row for names
}

// DefaultParams returns the standard plot geometry.
func DefaultParams() Params {
	return Params{
		Width:          1200,
		Height:         800,
		MarginLeft:     10,
		MarginRight:    10,
		MarginTop:      20,
		MarginBottom:   20,
		IdeogramHeight: 14,
		ChromSpacing:   10,
		LabelWidth:     60,
	}
}

// chromRow is the computed vertical band for one chromosome: its ideogram
// and the data panels around it.
type chromRow struct {
	top, bottom   float64
	ideoTop       float64
	ideoBottom    float64
	upperTop      float64 // data panel above the ideogram
	upperBottom   float64
	lowerTop      float64 // data panel below (type 2 only)
	lowerBottom   float64
	visible       genome.Region
}

// Plot maps genomic coordinates onto a canvas. Chromosomes are stacked in
// horizontal rows (one per visible chromosome), each row holding an
// ideogram with data panels above and optionally below.
//
// Build a Plot with [New], then call overlay methods (Ideograms, Points,
// Links, ...) with a render.Canvas. Plot is safe for concurrent reads
// after construction.
type Plot struct {
	genome   *genome.Genome
	params   Params
	plotType int
	zoom     *genome.Region
	coord    CoordChange
	pal      palette.Spec
	rows     map[string]chromRow
	order    []string // visible chromosomes in genome order
}

// Option configures a Plot during construction.
type Option func(*Plot)

// WithParams replaces the full geometry parameter set.
func WithParams(p Params) Option { return func(kp *Plot) { kp.params = p } }

// WithSize sets the canvas dimensions, keeping other defaults.
func WithSize(w, h float64) Option {
	return func(kp *Plot) { kp.params.Width, kp.params.Height = w, h }
}

// WithType selects the panel arrangement (TypeAbove or TypeAboveBelow).
func WithType(t int) Option { return func(kp *Plot) { kp.plotType = t } }

// WithZoom restricts the plot to a single chromosome window. The plot then
// contains one row spanning the full data area.
func WithZoom(r genome.Region) Option {
	return func(kp *Plot) {
		reg := r
		kp.zoom = &reg
	}
}

// WithCoordChange replaces the coordinate-change function that maps
// genomic positions to canvas points.
func WithCoordChange(fn CoordChange) Option { return func(kp *Plot) { kp.coord = fn } }

// WithPalette sets the default per-chromosome color assignment used by
// overlays when their options carry no explicit colors.
func WithPalette(spec palette.Spec) Option { return func(kp *Plot) { kp.pal = spec } }

// New creates a Plot for the genome and computes the row layout.
func New(g *genome.Genome, opts ...Option) (*Plot, error) {
	if g == nil {
		return nil, ErrNilGenome
	}
	kp := &Plot{
		genome:   g,
		params:   DefaultParams(),
		plotType: TypeAbove,
		pal:      palette.DefaultSpec(),
	}
	for _, opt := range opts {
		opt(kp)
	}
	if kp.coord == nil {
		kp.coord = AutotrackCoord
	}
	if kp.plotType != TypeAbove && kp.plotType != TypeAboveBelow {
		return nil, fmt.Errorf("%w: %d", ErrBadPlotType, kp.plotType)
	}
	if kp.zoom != nil {
		if err := kp.zoom.Validate(); err != nil {
			return nil, err
		}
		if _, ok := g.Chromosome(kp.zoom.Chrom); !ok {
			return nil, fmt.Errorf("%w: %s", genome.ErrUnknownChromosome, kp.zoom.Chrom)
		}
	}
	if err := kp.layout(); err != nil {
		return nil, err
	}
	return kp, nil
}

// layout computes one chromRow per visible chromosome.
func (kp *Plot) layout() error {
	p := kp.params

	if kp.zoom != nil {
		kp.order = []string{kp.zoom.Chrom}
	} else {
		kp.order = kp.genome.Names()
	}

	n := len(kp.order)
	if n == 0 {
		return fmt.Errorf("%w: no chromosomes", ErrBadDimensions)
	}
	dataHeight := p.Height - p.MarginTop - p.MarginBottom
	rowHeight := (dataHeight - float64(n-1)*p.ChromSpacing) / float64(n)
	if rowHeight <= p.IdeogramHeight {
		return fmt.Errorf("%w: row height %.1f with ideogram height %.1f",
			ErrBadDimensions, rowHeight, p.IdeogramHeight)
	}

	kp.rows = make(map[string]chromRow, n)
	for i, name := range kp.order {
		top := p.MarginTop + float64(i)*(rowHeight+p.ChromSpacing)
		row := chromRow{top: top, bottom: top + rowHeight}

		free := rowHeight - p.IdeogramHeight
		switch kp.plotType {
		case TypeAbove:
			// Ideogram sits at the bottom of the row, panel above.
			row.ideoBottom = row.bottom
			row.ideoTop = row.bottom - p.IdeogramHeight
			row.upperTop = row.top
			row.upperBottom = row.ideoTop
		case TypeAboveBelow:
			// Ideogram centered, panels above and below.
			half := free / 2
			row.upperTop = row.top
			row.upperBottom = row.top + half
			row.ideoTop = row.upperBottom
			row.ideoBottom = row.ideoTop + p.IdeogramHeight
			row.lowerTop = row.ideoBottom
			row.lowerBottom = row.bottom
		}

		if kp.zoom != nil {
			row.visible = *kp.zoom
		} else {
			whole, err := kp.genome.WholeRegion(name)
			if err != nil {
				return err
			}
			row.visible = whole
		}
		kp.rows[name] = row
	}
	return nil
}

// Genome returns the genome the plot was built for.
func (kp *Plot) Genome() *genome.Genome { return kp.genome }

// Params returns the plot geometry.
func (kp *Plot) Params() Params { return kp.params }

// Type returns the panel arrangement (TypeAbove or TypeAboveBelow).
func (kp *Plot) Type() int { return kp.plotType }

// VisibleChromosomes returns the plotted chromosomes in display order.
func (kp *Plot) VisibleChromosomes() []string {
	out := make([]string, len(kp.order))
	copy(out, kp.order)
	return out
}

// VisibleRegion returns the visible window of the chromosome and true, or
// a zero Region and false when the chromosome is not plotted.
func (kp *Plot) VisibleRegion(chrom string) (genome.Region, bool) {
	row, ok := kp.rows[chrom]
	if !ok {
		return genome.Region{}, false
	}
	return row.visible, true
}

// plotLeft and plotRight bound the genomic x extent of every row.
func (kp *Plot) plotLeft() float64  { return kp.params.MarginLeft + kp.params.LabelWidth }
func (kp *Plot) plotRight() float64 { return kp.params.Width - kp.params.MarginRight }
