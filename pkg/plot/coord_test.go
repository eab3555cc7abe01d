package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/render"
)

// testParams gives round numbers: plot area x 10..110, two rows of
// height 50 (10..60 and 60..110) with 10-unit ideograms at the bottom.
func testParams() Params {
	return Params{
		Width: 120, Height: 120,
		MarginLeft: 10, MarginRight: 10, MarginTop: 10, MarginBottom: 10,
		IdeogramHeight: 10,
	}
}

func testGenome(t *testing.T) *genome.Genome {
	t.Helper()
	g, err := genome.New("test", []genome.Chromosome{
		{Name: "chr1", Length: 1000},
		{Name: "chr2", Length: 2000},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func testPlot(t *testing.T, opts ...Option) *Plot {
	t.Helper()
	kp, err := New(testGenome(t), append([]Option{WithParams(testParams())}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return kp
}

func closeTo(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestAutotrackCoord(t *testing.T) {
	kp := testPlot(t)

	tests := []struct {
		name  string
		chrom string
		pos   int64
		y     float64
		sc    Scale
		want  render.Point
	}{
		{"chr1 start bottom", "chr1", 1, 0, Scale{}, render.Point{X: 10, Y: 50}},
		{"chr1 end top", "chr1", 1000, 1, Scale{}, render.Point{X: 110, Y: 10}},
		{"chr1 mid half", "chr1", 1, 0.5, Scale{}, render.Point{X: 10, Y: 30}},
		{"chr2 row offset", "chr2", 1, 0, Scale{}, render.Point{X: 10, Y: 100}},
		{"r0 r1 slice", "chr1", 1, 1, Scale{R0: 0, R1: 0.5}, render.Point{X: 10, Y: 30}},
		{"custom y range", "chr1", 1, 50, Scale{Ymin: 0, Ymax: 100}, render.Point{X: 10, Y: 30}},
		{"ideogram panel", "chr1", 1, 0, Scale{Panel: PanelIdeogram}, render.Point{X: 10, Y: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := kp.Coord(tt.chrom, []int64{tt.pos}, []float64{tt.y}, tt.sc)
			if err != nil {
				t.Fatal(err)
			}
			if !closeTo(pts[0].X, tt.want.X) || !closeTo(pts[0].Y, tt.want.Y) {
				t.Errorf("got (%.2f, %.2f), want (%.2f, %.2f)",
					pts[0].X, pts[0].Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestZeroScaleDrawsInPanel1(t *testing.T) {
	kp := testPlot(t)

	def, err := kp.Coord("chr1", []int64{500}, []float64{0.25}, Scale{})
	if err != nil {
		t.Fatal(err)
	}
	p1, err := kp.Coord("chr1", []int64{500}, []float64{0.25}, Scale{Panel: Panel1})
	if err != nil {
		t.Fatal(err)
	}
	if !closeTo(def[0].Y, p1[0].Y) {
		t.Errorf("zero scale y = %.2f, panel 1 y = %.2f; must match", def[0].Y, p1[0].Y)
	}
	// Panel 1 sits above the ideogram band (50..60 in test geometry).
	if def[0].Y >= 50 {
		t.Errorf("zero scale y = %.2f lands in the ideogram band", def[0].Y)
	}
}

func TestCoordErrors(t *testing.T) {
	kp := testPlot(t)

	_, err := kp.Coord("chrX", []int64{1}, []float64{0}, Scale{})
	if !errors.Is(err, ErrChromNotVisible) {
		t.Errorf("unknown chromosome: got %v", err)
	}

	_, err = kp.Coord("chr1", []int64{1}, []float64{0}, Scale{Ymin: 2, Ymax: 2})
	if !errors.Is(err, ErrBadScale) {
		t.Errorf("flat scale: got %v", err)
	}

	_, err = kp.Coord("chr1", []int64{1, 2}, []float64{0}, Scale{})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("length mismatch: got %v", err)
	}

	_, err = kp.Coord("chr1", []int64{1}, []float64{0}, Scale{Panel: Panel2})
	if !errors.Is(err, ErrUnknownPanel) {
		t.Errorf("panel 2 on plot type 1: got %v", err)
	}
}

func TestLowerPanel(t *testing.T) {
	g, err := genome.New("test", []genome.Chromosome{{Name: "chr1", Length: 1000}})
	if err != nil {
		t.Fatal(err)
	}
	kp, err := New(g, WithParams(testParams()), WithType(TypeAboveBelow))
	if err != nil {
		t.Fatal(err)
	}

	// One row 10..110: upper 10..55, ideogram 55..65, lower 65..110.
	pts, err := kp.Coord("chr1", []int64{1, 1}, []float64{0, 1}, Scale{Panel: Panel2})
	if err != nil {
		t.Fatal(err)
	}
	if !closeTo(pts[0].Y, 65) || !closeTo(pts[1].Y, 110) {
		t.Errorf("lower panel ys = %.2f, %.2f; want 65, 110", pts[0].Y, pts[1].Y)
	}

	if dir := kp.PanelYDirection(Panel2); dir != 1 {
		t.Errorf("panel 2 direction = %d, want 1", dir)
	}
	if dir := kp.PanelYDirection(Panel1); dir != -1 {
		t.Errorf("panel 1 direction = %d, want -1", dir)
	}
}

func TestCustomCoordChange(t *testing.T) {
	called := false
	fn := func(kp *Plot, chrom string, pos []int64, y []float64, sc Scale) ([]render.Point, error) {
		called = true
		return make([]render.Point, len(pos)), nil
	}
	kp := testPlot(t, WithCoordChange(fn))
	if _, err := kp.Coord("chr1", []int64{5}, []float64{0}, Scale{}); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("custom coordinate-change function not used")
	}
}

func TestZoomLayout(t *testing.T) {
	kp := testPlot(t, WithZoom(genome.Region{Chrom: "chr2", Start: 501, End: 1500}))

	if got := kp.VisibleChromosomes(); len(got) != 1 || got[0] != "chr2" {
		t.Fatalf("visible chromosomes = %v", got)
	}
	if _, ok := kp.VisibleRegion("chr1"); ok {
		t.Error("chr1 should not be visible when zoomed to chr2")
	}

	// Zoomed plots get the full data area: x spans window 501..1500.
	pts, err := kp.Coord("chr2", []int64{501, 1500}, []float64{0, 0}, Scale{})
	if err != nil {
		t.Fatal(err)
	}
	if !closeTo(pts[0].X, 10) || !closeTo(pts[1].X, 110) {
		t.Errorf("zoom window xs = %.2f, %.2f; want 10, 110", pts[0].X, pts[1].X)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilGenome) {
		t.Errorf("nil genome: got %v", err)
	}
	if _, err := New(testGenome(t), WithType(3)); !errors.Is(err, ErrBadPlotType) {
		t.Errorf("plot type 3: got %v", err)
	}
	if _, err := New(testGenome(t), WithZoom(genome.Region{Chrom: "chrX", Start: 1, End: 2})); !errors.Is(err, genome.ErrUnknownChromosome) {
		t.Errorf("zoom to unknown chromosome: got %v", err)
	}
	small := testParams()
	small.Height = 30
	if _, err := New(testGenome(t), WithParams(small)); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("too small: got %v", err)
	}
}
