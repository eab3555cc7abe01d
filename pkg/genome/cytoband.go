package genome

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Giemsa stain names as they appear in UCSC cytoBand files.
const (
	StainGneg    = "gneg"
	StainGpos25  = "gpos25"
	StainGpos50  = "gpos50"
	StainGpos75  = "gpos75"
	StainGpos100 = "gpos100"
	StainAcen    = "acen" // centromeric
	StainGvar    = "gvar"
	StainStalk   = "stalk"
)

// stainColors maps Giemsa stains to ideogram fill colors.
var stainColors = map[string]string{
	StainGneg:    "#FFFFFF",
	StainGpos25:  "#C8C8C8",
	StainGpos50:  "#808080",
	StainGpos75:  "#404040",
	StainGpos100: "#000000",
	StainAcen:    "#D92F27",
	StainGvar:    "#DCDCDC",
	StainStalk:   "#647FA4",
}

// StainColor returns the fill color for a Giemsa stain. Unknown stains
// render as gneg white so that odd annotation files still draw.
func StainColor(stain string) string {
	if c, ok := stainColors[stain]; ok {
		return c
	}
	return stainColors[StainGneg]
}

// Cytoband is a single chromosome band from a UCSC cytoBand annotation.
type Cytoband struct {
	Region
	Name  string // band name, e.g. "p36.33"
	Stain string // Giemsa stain, e.g. "gpos25"
}

// IsCentromeric reports whether the band is part of the centromere.
func (b Cytoband) IsCentromeric() bool { return b.Stain == StainAcen }

// ParseCytobands reads UCSC cytoBand.txt data: tab-separated
// chrom, chromStart (0-based), chromEnd, name, gieStain.
func ParseCytobands(r io.Reader) ([]Cytoband, error) {
	var bands []Cytoband
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			return nil, fmt.Errorf("cytoband line %d: need 5 columns, got %d", lineNo, len(fields))
		}
		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cytoband line %d: bad start %q", lineNo, fields[1])
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cytoband line %d: bad end %q", lineNo, fields[2])
		}
		band := Cytoband{
			Region: Region{Chrom: fields[0], Start: start + 1, End: end, Strand: StrandNone},
			Name:   fields[3],
			Stain:  fields[4],
		}
		if err := band.Validate(); err != nil {
			return nil, fmt.Errorf("cytoband line %d: %w", lineNo, err)
		}
		bands = append(bands, band)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return bands, nil
}

// BandsByChrom groups cytobands by chromosome, preserving file order
// within each chromosome.
func BandsByChrom(bands []Cytoband) map[string][]Cytoband {
	out := make(map[string][]Cytoband)
	for _, b := range bands {
		out[b.Chrom] = append(out[b.Chrom], b)
	}
	return out
}
