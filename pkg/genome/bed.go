package genome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadBED parses BED data into a RegionSet. BED coordinates are 0-based
// half-open on the wire and are converted to the 1-based inclusive
// convention used everywhere else in this module.
//
// The first three columns (chrom, start, end) are required. When present,
// column 4 becomes the "name" label column, column 5 the "score" numeric
// column, and column 6 the strand. Extra columns named in the header-less
// BED convention for links (end.chrom, end.start, end.end, end.strand in
// columns 7-10) are attached so that [RegionSet.PairedEnds] works directly
// on link files.
//
// Lines starting with "#", "track" or "browser" are skipped.
func ReadBED(r io.Reader) (*RegionSet, error) {
	set := &RegionSet{}
	var names, strandCol, endChroms, endStrands []string
	var scores, endStarts, endEnds []float64
	hasName, hasScore, hasEnds := false, false, false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("bed line %d: %w: need at least 3 columns", lineNo, ErrBadRegionSyntax)
		}

		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bed line %d: bad start %q", lineNo, fields[1])
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bed line %d: bad end %q", lineNo, fields[2])
		}

		reg := Region{Chrom: fields[0], Start: start + 1, End: end, Strand: StrandNone}
		if len(fields) >= 6 {
			st, err := ParseStrand(fields[5])
			if err != nil {
				return nil, fmt.Errorf("bed line %d: %w", lineNo, err)
			}
			reg.Strand = st
		}
		if err := reg.Validate(); err != nil {
			return nil, fmt.Errorf("bed line %d: %w", lineNo, err)
		}
		set.Add(reg)

		if len(fields) >= 4 {
			hasName = true
		}
		names = append(names, fieldOr(fields, 3, ""))
		strandCol = append(strandCol, fieldOr(fields, 5, "."))

		score := 0.0
		if len(fields) >= 5 && fields[4] != "." {
			hasScore = true
			if score, err = strconv.ParseFloat(fields[4], 64); err != nil {
				return nil, fmt.Errorf("bed line %d: bad score %q", lineNo, fields[4])
			}
		}
		scores = append(scores, score)

		if len(fields) >= 9 {
			if !hasEnds && set.Len() > 1 {
				return nil, fmt.Errorf("bed line %d: %w: link end columns absent on earlier lines", lineNo, ErrColumnLength)
			}
			hasEnds = true
			endChroms = append(endChroms, fields[6])
			es, err := strconv.ParseInt(fields[7], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bed line %d: bad end.start %q", lineNo, fields[7])
			}
			ee, err := strconv.ParseInt(fields[8], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bed line %d: bad end.end %q", lineNo, fields[8])
			}
			endStarts = append(endStarts, float64(es+1))
			endEnds = append(endEnds, float64(ee))
			endStrands = append(endStrands, fieldOr(fields, 9, "."))
		} else if hasEnds {
			return nil, fmt.Errorf("bed line %d: %w: missing link end columns", lineNo, ErrColumnLength)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if hasName {
		if err := set.SetLabels("name", names); err != nil {
			return nil, err
		}
	}
	if hasScore {
		if err := set.SetNumeric("score", scores); err != nil {
			return nil, err
		}
	}
	if hasEnds {
		if err := set.SetLabels(ColEndChrom, endChroms); err != nil {
			return nil, err
		}
		if err := set.SetNumeric(ColEndStart, endStarts); err != nil {
			return nil, err
		}
		if err := set.SetNumeric(ColEndEnd, endEnds); err != nil {
			return nil, err
		}
		if err := set.SetLabels(ColEndStrand, endStrands); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// ReadBEDFile reads a BED file from disk.
func ReadBEDFile(path string) (*RegionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	set, err := ReadBED(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// WriteBED writes the set in BED format (0-based half-open), emitting name,
// score and strand columns when the corresponding metadata exists.
func WriteBED(w io.Writer, set *RegionSet) error {
	names, hasName := set.Labels("name")
	scores, hasScore := set.Numeric("score")

	bw := bufio.NewWriter(w)
	for i, r := range set.Regions() {
		fmt.Fprintf(bw, "%s\t%d\t%d", r.Chrom, r.Start-1, r.End)
		if hasName || hasScore {
			name := "."
			if hasName && names[i] != "" {
				name = names[i]
			}
			fmt.Fprintf(bw, "\t%s", name)
		}
		if hasScore {
			fmt.Fprintf(bw, "\t%g\t%c", scores[i], r.Strand)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func fieldOr(fields []string, i int, def string) string {
	if i < len(fields) {
		return fields[i]
	}
	return def
}
