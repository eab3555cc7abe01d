package genome

import (
	"errors"
	"testing"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Region
		wantErr bool
	}{
		{
			name:  "Plain",
			input: "chr1:100-200",
			want:  Region{Chrom: "chr1", Start: 100, End: 200, Strand: StrandNone},
		},
		{
			name:  "ThousandsSeparators",
			input: "chr2:1,000,000-2,000,000",
			want:  Region{Chrom: "chr2", Start: 1000000, End: 2000000, Strand: StrandNone},
		},
		{
			name:  "Underscores",
			input: "chrX:1_500-2_500",
			want:  Region{Chrom: "chrX", Start: 1500, End: 2500, Strand: StrandNone},
		},
		{
			name:  "PlusStrand",
			input: "chr1:100-200(+)",
			want:  Region{Chrom: "chr1", Start: 100, End: 200, Strand: StrandPlus},
		},
		{
			name:  "MinusStrand",
			input: "chr1:100-200(-)",
			want:  Region{Chrom: "chr1", Start: 100, End: 200, Strand: StrandMinus},
		},
		{
			name:    "MissingSpan",
			input:   "chr1",
			wantErr: true,
		},
		{
			name:    "MissingEnd",
			input:   "chr1:100",
			wantErr: true,
		},
		{
			name:    "EmptyChrom",
			input:   ":100-200",
			wantErr: true,
		},
		{
			name:    "EndBeforeStart",
			input:   "chr1:200-100",
			wantErr: true,
		},
		{
			name:    "ZeroStart",
			input:   "chr1:0-100",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRegion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRegion(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRegion(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRegion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRegionOverlaps(t *testing.T) {
	base := Region{Chrom: "chr1", Start: 100, End: 200}

	tests := []struct {
		name  string
		other Region
		want  bool
	}{
		{"Inside", Region{Chrom: "chr1", Start: 150, End: 160}, true},
		{"LeftEdge", Region{Chrom: "chr1", Start: 50, End: 100}, true},
		{"RightEdge", Region{Chrom: "chr1", Start: 200, End: 300}, true},
		{"LeftOut", Region{Chrom: "chr1", Start: 50, End: 99}, false},
		{"RightOut", Region{Chrom: "chr1", Start: 201, End: 300}, false},
		{"OtherChrom", Region{Chrom: "chr2", Start: 150, End: 160}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRegionTrim(t *testing.T) {
	window := Region{Chrom: "chr1", Start: 100, End: 200}

	r := Region{Chrom: "chr1", Start: 50, End: 250}
	trimmed, ok := r.Trim(window)
	if !ok {
		t.Fatal("Trim returned no overlap")
	}
	if trimmed.Start != 100 || trimmed.End != 200 {
		t.Errorf("Trim = %v, want chr1:100-200", trimmed)
	}

	if _, ok := (Region{Chrom: "chr2", Start: 50, End: 250}).Trim(window); ok {
		t.Error("Trim across chromosomes should report no overlap")
	}
}

func TestRegionString(t *testing.T) {
	r := Region{Chrom: "chr1", Start: 100, End: 200, Strand: StrandMinus}
	if got := r.String(); got != "chr1:100-200(-)" {
		t.Errorf("String = %q", got)
	}
	r.Strand = StrandNone
	if got := r.String(); got != "chr1:100-200" {
		t.Errorf("String = %q", got)
	}
}

func TestRegionWidthMid(t *testing.T) {
	r := Region{Chrom: "chr1", Start: 100, End: 100}
	if r.Width() != 1 {
		t.Errorf("single-base width = %d, want 1", r.Width())
	}
	r.End = 199
	if r.Width() != 100 {
		t.Errorf("Width = %d, want 100", r.Width())
	}
	if r.Mid() != 149 {
		t.Errorf("Mid = %d, want 149", r.Mid())
	}
}

func TestParseStrand(t *testing.T) {
	for _, s := range []string{"*", ".", ""} {
		st, err := ParseStrand(s)
		if err != nil || st != StrandNone {
			t.Errorf("ParseStrand(%q) = %v, %v", s, st, err)
		}
	}
	if _, err := ParseStrand("x"); !errors.Is(err, ErrBadRegionSyntax) {
		t.Errorf("ParseStrand(x) error = %v", err)
	}
}
