// Package genome provides the genomic data model: genomes, regions,
// region sets with metadata columns, and cytoband annotations.
//
// # Overview
//
// Every plotting operation in this module is expressed against genomic
// coordinates. This package holds the types those coordinates live in:
//
//   - [Genome]: an ordered chromosome set with lengths
//   - [Region]: a single (chrom, start, end, strand) interval
//   - [RegionSet]: an ordered interval collection with named metadata
//     columns, the Go shape of a GRanges-like object
//   - [Cytoband]: one Giemsa-stained chromosome band
//
// # Coordinates
//
// Regions use 1-based inclusive coordinates throughout: the first base of a
// chromosome is position 1, and a region covering a single base has
// Start == End. BED input and UCSC cytoband files are 0-based half-open on
// the wire; [ReadBED] and [ParseCytobands] convert on read, and [WriteBED]
// converts back on write.
//
// # Basic Usage
//
// Load a built-in assembly and parse regions:
//
//	g, err := genome.Load("hg38")
//	r, err := genome.ParseRegion("chr1:1,000,000-2,000,000")
//
// Region sets carry per-region metadata in parallel columns:
//
//	set := genome.NewRegionSet(regions...)
//	set.SetNumeric("score", scores)
//
// Link data stores both sides of each pair in one set; the end intervals
// are derived from the end.* columns with [RegionSet.PairedEnds].
//
// # Built-in Assemblies
//
// Chromosome sets for common assemblies (hg38, hg19, mm10, mm39, dm6) are
// embedded as TOML and loaded with [Load]. Cytobands are not embedded;
// fetch them from UCSC with the integrations/ucsc client.
//
// # Concurrency
//
// Genome values are immutable after construction and safe for concurrent
// reads. RegionSet is not safe for concurrent mutation.
package genome
