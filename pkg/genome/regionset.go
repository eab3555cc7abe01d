package genome

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnLength is returned when a metadata column does not have
	// exactly one value per region.
	ErrColumnLength = errors.New("column length must match region count")

	// ErrUnknownColumn is returned when a required metadata column is
	// missing from the set.
	ErrUnknownColumn = errors.New("unknown metadata column")
)

// Metadata column names used to derive the paired ends of a link when the
// caller supplies only the start intervals.
const (
	ColEndChrom  = "end.chrom"
	ColEndStart  = "end.start"
	ColEndEnd    = "end.end"
	ColEndStrand = "end.strand"
)

// RegionSet is an ordered collection of regions with named metadata columns,
// the Go shape of a GRanges-like object. Numeric and label columns are kept
// in parallel with the region list; every column has exactly one value per
// region.
//
// The zero value is usable as an empty set. RegionSet is not safe for
// concurrent mutation.
type RegionSet struct {
	regions []Region
	numeric map[string][]float64
	labels  map[string][]string
}

// NewRegionSet creates a RegionSet holding the given regions.
func NewRegionSet(regions ...Region) *RegionSet {
	s := &RegionSet{}
	s.regions = append(s.regions, regions...)
	return s
}

// Len returns the number of regions in the set.
func (s *RegionSet) Len() int { return len(s.regions) }

// Region returns the i-th region. It panics when i is out of range,
// matching slice indexing semantics.
func (s *RegionSet) Region(i int) Region { return s.regions[i] }

// Regions returns a copy of the region list.
func (s *RegionSet) Regions() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Add appends a region. Columns set before Add become stale; set columns
// after the region list is complete.
func (s *RegionSet) Add(r Region) { s.regions = append(s.regions, r) }

// SetNumeric attaches a numeric metadata column.
// Returns ErrColumnLength when len(values) != Len().
func (s *RegionSet) SetNumeric(name string, values []float64) error {
	if len(values) != len(s.regions) {
		return fmt.Errorf("%w: column %s has %d values for %d regions",
			ErrColumnLength, name, len(values), len(s.regions))
	}
	if s.numeric == nil {
		s.numeric = make(map[string][]float64)
	}
	s.numeric[name] = values
	return nil
}

// Numeric returns the named numeric column and true, or nil and false.
func (s *RegionSet) Numeric(name string) ([]float64, bool) {
	v, ok := s.numeric[name]
	return v, ok
}

// SetLabels attaches a string metadata column.
// Returns ErrColumnLength when len(values) != Len().
func (s *RegionSet) SetLabels(name string, values []string) error {
	if len(values) != len(s.regions) {
		return fmt.Errorf("%w: column %s has %d values for %d regions",
			ErrColumnLength, name, len(values), len(s.regions))
	}
	if s.labels == nil {
		s.labels = make(map[string][]string)
	}
	s.labels[name] = values
	return nil
}

// Labels returns the named string column and true, or nil and false.
func (s *RegionSet) Labels(name string) ([]string, bool) {
	v, ok := s.labels[name]
	return v, ok
}

// Chroms returns the chromosome name of every region, in order.
func (s *RegionSet) Chroms() []string {
	out := make([]string, len(s.regions))
	for i, r := range s.regions {
		out[i] = r.Chrom
	}
	return out
}

// Filter returns a new RegionSet containing only regions for which keep
// returns true. All metadata columns are subset in step with the regions.
func (s *RegionSet) Filter(keep func(i int, r Region) bool) *RegionSet {
	var idx []int
	out := &RegionSet{}
	for i, r := range s.regions {
		if keep(i, r) {
			idx = append(idx, i)
			out.regions = append(out.regions, r)
		}
	}
	for name, col := range s.numeric {
		sub := make([]float64, len(idx))
		for j, i := range idx {
			sub[j] = col[i]
		}
		if out.numeric == nil {
			out.numeric = make(map[string][]float64)
		}
		out.numeric[name] = sub
	}
	for name, col := range s.labels {
		sub := make([]string, len(idx))
		for j, i := range idx {
			sub[j] = col[i]
		}
		if out.labels == nil {
			out.labels = make(map[string][]string)
		}
		out.labels[name] = sub
	}
	return out
}

// PairedEnds derives the end intervals of a link set from metadata columns
// (end.chrom, end.start, end.end, optional end.strand). This is how a
// single BED-like table carries both sides of each link.
//
// Returns ErrUnknownColumn when a required column is missing and
// ErrInvalidRegion when a derived interval is malformed.
func (s *RegionSet) PairedEnds() (*RegionSet, error) {
	chroms, ok := s.labels[ColEndChrom]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, ColEndChrom)
	}
	starts, ok := s.numeric[ColEndStart]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, ColEndStart)
	}
	ends, ok := s.numeric[ColEndEnd]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, ColEndEnd)
	}
	strands, hasStrand := s.labels[ColEndStrand]

	out := &RegionSet{regions: make([]Region, len(s.regions))}
	for i := range s.regions {
		r := Region{
			Chrom:  chroms[i],
			Start:  int64(starts[i]),
			End:    int64(ends[i]),
			Strand: StrandNone,
		}
		if hasStrand {
			st, err := ParseStrand(strands[i])
			if err != nil {
				return nil, err
			}
			r.Strand = st
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("derived end %d: %w", i, err)
		}
		out.regions[i] = r
	}
	return out, nil
}
