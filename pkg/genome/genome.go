package genome

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyChromosomeName is returned by [New] when a chromosome has an
	// empty name. All chromosomes must have non-empty identifiers.
	ErrEmptyChromosomeName = errors.New("chromosome name must not be empty")

	// ErrDuplicateChromosome is returned by [New] when two chromosomes share
	// the same name. Chromosome names must be unique within a genome.
	ErrDuplicateChromosome = errors.New("duplicate chromosome name")

	// ErrInvalidChromosomeLength is returned by [New] when a chromosome has
	// a zero or negative length.
	ErrInvalidChromosomeLength = errors.New("chromosome length must be positive")

	// ErrUnknownChromosome is returned by lookup methods when the requested
	// chromosome is not part of the genome.
	ErrUnknownChromosome = errors.New("unknown chromosome")
)

// Chromosome is a named sequence with a known length in base pairs.
type Chromosome struct {
	Name   string `json:"name" toml:"name"`
	Length int64  `json:"length" toml:"length"`
}

// Genome is an ordered set of chromosomes. The order is significant: it
// determines the vertical stacking of ideograms and the positional recycling
// of per-chromosome colors.
//
// The zero value is not usable - use New to create a valid Genome.
// A Genome is immutable after construction and safe for concurrent reads.
type Genome struct {
	name   string
	chroms []Chromosome
	index  map[string]int
}

// New creates a Genome from an ordered chromosome list.
// Returns ErrEmptyChromosomeName, ErrInvalidChromosomeLength, or
// ErrDuplicateChromosome when the list is malformed.
func New(name string, chroms []Chromosome) (*Genome, error) {
	index := make(map[string]int, len(chroms))
	for i, c := range chroms {
		if c.Name == "" {
			return nil, ErrEmptyChromosomeName
		}
		if c.Length <= 0 {
			return nil, fmt.Errorf("%w: %s has length %d", ErrInvalidChromosomeLength, c.Name, c.Length)
		}
		if _, exists := index[c.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChromosome, c.Name)
		}
		index[c.Name] = i
	}
	g := &Genome{
		name:   name,
		chroms: make([]Chromosome, len(chroms)),
		index:  index,
	}
	copy(g.chroms, chroms)
	return g, nil
}

// Name returns the assembly name (e.g., "hg38").
func (g *Genome) Name() string { return g.name }

// Count returns the number of chromosomes.
func (g *Genome) Count() int { return len(g.chroms) }

// Chromosomes returns a copy of the ordered chromosome list.
func (g *Genome) Chromosomes() []Chromosome {
	out := make([]Chromosome, len(g.chroms))
	copy(out, g.chroms)
	return out
}

// Names returns the chromosome names in genome order.
func (g *Genome) Names() []string {
	names := make([]string, len(g.chroms))
	for i, c := range g.chroms {
		names[i] = c.Name
	}
	return names
}

// Chromosome returns the chromosome with the given name and true,
// or a zero Chromosome and false when not found.
func (g *Genome) Chromosome(name string) (Chromosome, bool) {
	i, ok := g.index[name]
	if !ok {
		return Chromosome{}, false
	}
	return g.chroms[i], true
}

// Index returns the position of the chromosome in genome order.
// Returns ErrUnknownChromosome when the name is not part of the genome.
func (g *Genome) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownChromosome, name)
	}
	return i, nil
}

// Length returns the length of the named chromosome in base pairs.
// Returns ErrUnknownChromosome when the name is not part of the genome.
func (g *Genome) Length(name string) (int64, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownChromosome, name)
	}
	return g.chroms[i].Length, nil
}

// TotalLength returns the summed length of all chromosomes.
func (g *Genome) TotalLength() int64 {
	var total int64
	for _, c := range g.chroms {
		total += c.Length
	}
	return total
}

// WholeRegion returns a Region spanning the named chromosome end to end.
// Returns ErrUnknownChromosome when the name is not part of the genome.
func (g *Genome) WholeRegion(name string) (Region, error) {
	length, err := g.Length(name)
	if err != nil {
		return Region{}, err
	}
	return Region{Chrom: name, Start: 1, End: length, Strand: StrandNone}, nil
}
