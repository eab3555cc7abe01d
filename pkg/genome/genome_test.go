package genome

import (
	"errors"
	"testing"
)

func testChroms() []Chromosome {
	return []Chromosome{
		{Name: "chr1", Length: 1000},
		{Name: "chr2", Length: 800},
		{Name: "chrX", Length: 600},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		chroms  []Chromosome
		wantErr error
	}{
		{
			name:   "Valid",
			chroms: testChroms(),
		},
		{
			name:    "EmptyName",
			chroms:  []Chromosome{{Name: "", Length: 10}},
			wantErr: ErrEmptyChromosomeName,
		},
		{
			name:    "ZeroLength",
			chroms:  []Chromosome{{Name: "chr1", Length: 0}},
			wantErr: ErrInvalidChromosomeLength,
		},
		{
			name:    "NegativeLength",
			chroms:  []Chromosome{{Name: "chr1", Length: -5}},
			wantErr: ErrInvalidChromosomeLength,
		},
		{
			name: "Duplicate",
			chroms: []Chromosome{
				{Name: "chr1", Length: 10},
				{Name: "chr1", Length: 20},
			},
			wantErr: ErrDuplicateChromosome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New("test", tt.chroms)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if g.Count() != len(tt.chroms) {
				t.Errorf("Count = %d, want %d", g.Count(), len(tt.chroms))
			}
		})
	}
}

func TestGenomeLookups(t *testing.T) {
	g, err := New("test", testChroms())
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := g.Length("chr2"); got != 800 {
		t.Errorf("Length(chr2) = %d, want 800", got)
	}
	if _, err := g.Length("chr99"); !errors.Is(err, ErrUnknownChromosome) {
		t.Errorf("Length(chr99) error = %v, want ErrUnknownChromosome", err)
	}

	if i, _ := g.Index("chrX"); i != 2 {
		t.Errorf("Index(chrX) = %d, want 2", i)
	}

	if got := g.TotalLength(); got != 2400 {
		t.Errorf("TotalLength = %d, want 2400", got)
	}

	names := g.Names()
	if len(names) != 3 || names[0] != "chr1" || names[2] != "chrX" {
		t.Errorf("Names = %v", names)
	}

	r, err := g.WholeRegion("chr1")
	if err != nil {
		t.Fatalf("WholeRegion: %v", err)
	}
	if r.Start != 1 || r.End != 1000 {
		t.Errorf("WholeRegion = %v, want chr1:1-1000", r)
	}
}

func TestGenomeOrderPreserved(t *testing.T) {
	// Chromosome order drives ideogram stacking and color recycling,
	// so it must survive construction untouched.
	chroms := []Chromosome{
		{Name: "chrM", Length: 16000},
		{Name: "chr1", Length: 1000},
	}
	g, err := New("test", chroms)
	if err != nil {
		t.Fatal(err)
	}
	got := g.Chromosomes()
	if got[0].Name != "chrM" || got[1].Name != "chr1" {
		t.Errorf("order not preserved: %v", got)
	}
}
