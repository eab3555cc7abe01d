package ucsc

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bio-traven/karyoploteR/pkg/cache"
	apperrors "github.com/bio-traven/karyoploteR/pkg/errors"
	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/integrations"
)

// Client provides access to UCSC Genome Browser downloads.
// It handles HTTP requests with caching and automatic retries.
//
// All methods are safe for concurrent use when the cache backend is.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a UCSC download client with the given cache backend.
//
// Parameters:
//   - backend: Cache backend for response caching (use cache.NewNullCache() for no caching)
//   - cacheTTL: How long responses are cached (assembly data rarely changes; days are fine)
func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "ucsc:", cacheTTL, nil),
		baseURL: "https://hgdownload.soe.ucsc.edu",
	}
}

// canonicalChrom matches primary assembled chromosomes (chr1..chr22,
// chrX, chrY, chrM), excluding scaffolds and alt contigs.
var canonicalChrom = regexp.MustCompile(`^chr([0-9]{1,2}|[XYM])$`)

// FetchGenome retrieves the chromosome sizes for an assembly and builds a
// Genome from its canonical chromosomes, ordered chr1..chrN, chrX, chrY,
// chrM. Scaffolds and alt contigs are dropped.
//
// If refresh is true, the cache is bypassed and a fresh download is made.
//
// Returns [integrations.ErrNotFound] if the assembly doesn't exist
// upstream and [integrations.ErrNetwork] for HTTP failures.
func (c *Client) FetchGenome(ctx context.Context, assembly string, refresh bool) (*genome.Genome, error) {
	chroms, err := c.FetchChromSizes(ctx, assembly, refresh)
	if err != nil {
		return nil, err
	}

	canonical := chroms[:0:0]
	for _, ch := range chroms {
		if canonicalChrom.MatchString(ch.Name) {
			canonical = append(canonical, ch)
		}
	}
	sortChroms(canonical)
	return genome.New(assembly, canonical)
}

// FetchChromSizes retrieves the full chrom.sizes table for an assembly,
// including scaffolds, in file order.
func (c *Client) FetchChromSizes(ctx context.Context, assembly string, refresh bool) ([]genome.Chromosome, error) {
	if err := apperrors.ValidateUCSCAssemblyName(assembly); err != nil {
		return nil, err
	}

	var chroms []genome.Chromosome
	err := c.Cached(ctx, assembly+"/chromsizes", refresh, &chroms, func() error {
		url := fmt.Sprintf("%s/goldenPath/%s/bigZips/%s.chrom.sizes", c.baseURL, assembly, assembly)
		body, err := c.GetText(ctx, url)
		if err != nil {
			return err
		}
		parsed, err := parseChromSizes(body)
		if err != nil {
			return err
		}
		chroms = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chroms, nil
}

// FetchCytobands retrieves the Giemsa banding table for an assembly,
// grouped by chromosome. Assemblies without banding data return
// [integrations.ErrNotFound].
func (c *Client) FetchCytobands(ctx context.Context, assembly string, refresh bool) (map[string][]genome.Cytoband, error) {
	if err := apperrors.ValidateUCSCAssemblyName(assembly); err != nil {
		return nil, err
	}

	var bands []genome.Cytoband
	err := c.Cached(ctx, assembly+"/cytobands", refresh, &bands, func() error {
		url := fmt.Sprintf("%s/goldenPath/%s/database/cytoBand.txt.gz", c.baseURL, assembly)
		data, err := c.GetBytes(ctx, url)
		if err != nil {
			return err
		}
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decompress cytoband table: %w", err)
		}
		defer gz.Close()
		parsed, err := genome.ParseCytobands(gz)
		if err != nil {
			return err
		}
		bands = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return genome.BandsByChrom(bands), nil
}

// parseChromSizes reads the two-column chrom.sizes format: name and
// length separated by a tab.
func parseChromSizes(body string) ([]genome.Chromosome, error) {
	var chroms []genome.Chromosome
	sc := bufio.NewScanner(strings.NewReader(body))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("chrom.sizes line %d: expected 2 columns, got %d", lineNo, len(fields))
		}
		length, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("chrom.sizes line %d: bad length %q", lineNo, fields[1])
		}
		chroms = append(chroms, genome.Chromosome{Name: fields[0], Length: length})
	}
	return chroms, sc.Err()
}

// sortChroms orders canonical chromosomes numerically, then chrX, chrY,
// chrM.
func sortChroms(chroms []genome.Chromosome) {
	rank := func(name string) int {
		s := strings.TrimPrefix(name, "chr")
		switch s {
		case "X":
			return 100
		case "Y":
			return 101
		case "M":
			return 102
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 200
		}
		return n
	}
	sort.SliceStable(chroms, func(i, j int) bool {
		return rank(chroms[i].Name) < rank(chroms[j].Name)
	})
}
