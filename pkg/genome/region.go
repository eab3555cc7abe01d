package genome

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidRegion is returned when a region has a non-positive start,
	// or an end smaller than its start.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrBadRegionSyntax is returned by [ParseRegion] when the input string
	// cannot be parsed as "chrom:start-end" with an optional strand suffix.
	ErrBadRegionSyntax = errors.New("malformed region string")
)

// Strand marks the orientation of a region.
type Strand byte

const (
	// StrandNone marks an unstranded region.
	StrandNone Strand = '*'
	// StrandPlus marks the forward strand.
	StrandPlus Strand = '+'
	// StrandMinus marks the reverse strand. Reverse-strand link endpoints
	// are drawn flipped.
	StrandMinus Strand = '-'
)

// String returns the strand as a one-character string.
func (s Strand) String() string { return string(s) }

// ParseStrand converts "+", "-", "*", "." or "" into a Strand.
// "." and "" both map to StrandNone, matching BED conventions.
func ParseStrand(s string) (Strand, error) {
	switch s {
	case "+":
		return StrandPlus, nil
	case "-":
		return StrandMinus, nil
	case "*", ".", "":
		return StrandNone, nil
	}
	return StrandNone, fmt.Errorf("%w: bad strand %q", ErrBadRegionSyntax, s)
}

// Region is a genomic interval with 1-based inclusive coordinates.
// A single base at position n is represented as Start == End == n.
type Region struct {
	Chrom  string `json:"chrom"`
	Start  int64  `json:"start"`
	End    int64  `json:"end"`
	Strand Strand `json:"strand,omitempty"`
}

// Validate checks coordinate sanity. It does not check chromosome bounds;
// use [Region.Trim] against a genome region for that.
func (r Region) Validate() error {
	if r.Chrom == "" {
		return fmt.Errorf("%w: empty chromosome", ErrInvalidRegion)
	}
	if r.Start < 1 {
		return fmt.Errorf("%w: start %d < 1", ErrInvalidRegion, r.Start)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: end %d < start %d", ErrInvalidRegion, r.End, r.Start)
	}
	return nil
}

// Width returns the number of bases covered by the region.
func (r Region) Width() int64 { return r.End - r.Start + 1 }

// Mid returns the midpoint position of the region.
func (r Region) Mid() int64 { return (r.Start + r.End) / 2 }

// Overlaps reports whether r and other share at least one base.
// Regions on different chromosomes never overlap. Strand is ignored.
func (r Region) Overlaps(other Region) bool {
	return r.Chrom == other.Chrom && r.Start <= other.End && other.Start <= r.End
}

// Contains reports whether other lies entirely inside r.
func (r Region) Contains(other Region) bool {
	return r.Chrom == other.Chrom && r.Start <= other.Start && other.End <= r.End
}

// Trim clips r to the bounds of other. The second return value is false
// when the regions do not overlap at all.
func (r Region) Trim(other Region) (Region, bool) {
	if !r.Overlaps(other) {
		return Region{}, false
	}
	out := r
	if out.Start < other.Start {
		out.Start = other.Start
	}
	if out.End > other.End {
		out.End = other.End
	}
	return out, true
}

// String formats the region as "chrom:start-end" with a strand suffix
// for stranded regions, e.g. "chr1:1000-2000(+)".
func (r Region) String() string {
	if r.Strand == StrandPlus || r.Strand == StrandMinus {
		return fmt.Sprintf("%s:%d-%d(%c)", r.Chrom, r.Start, r.End, r.Strand)
	}
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}

// ParseRegion parses "chrom:start-end" with optional thousands separators
// and an optional "(+)" / "(-)" strand suffix. A bare chromosome name is
// not accepted here; use [Genome.WholeRegion] for whole chromosomes.
func ParseRegion(s string) (Region, error) {
	strand := StrandNone
	if n := len(s); n >= 3 && s[n-1] == ')' && s[n-3] == '(' {
		var err error
		if strand, err = ParseStrand(s[n-2 : n-1]); err != nil {
			return Region{}, err
		}
		s = s[:n-3]
	}

	chrom, span, ok := strings.Cut(s, ":")
	if !ok || chrom == "" {
		return Region{}, fmt.Errorf("%w: %q", ErrBadRegionSyntax, s)
	}
	startStr, endStr, ok := strings.Cut(span, "-")
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrBadRegionSyntax, s)
	}

	start, err := parsePosition(startStr)
	if err != nil {
		return Region{}, fmt.Errorf("%w: bad start in %q", ErrBadRegionSyntax, s)
	}
	end, err := parsePosition(endStr)
	if err != nil {
		return Region{}, fmt.Errorf("%w: bad end in %q", ErrBadRegionSyntax, s)
	}

	r := Region{Chrom: chrom, Start: start, End: end, Strand: strand}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// parsePosition parses a coordinate, tolerating "," and "_" separators.
func parsePosition(s string) (int64, error) {
	s = strings.NewReplacer(",", "", "_", "").Replace(s)
	return strconv.ParseInt(s, 10, 64)
}
