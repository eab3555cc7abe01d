package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bio-traven/karyoploteR/pkg/cache"
	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/integrations/ucsc"
	"github.com/bio-traven/karyoploteR/pkg/plot"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// UCSC performs remote assembly lookups. Constructed over Cache
	// when nil.
	UCSC *ucsc.Client
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, bands, genomeHit, err := r.LoadGenomeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load genome: %w", err)
	}
	data, links, err := loadData(opts)
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	result.Genome = g
	result.Cytobands = bands
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ChromosomeCount = g.Count()
	if data != nil {
		result.Stats.RegionCount = data.Len()
	}
	if links != nil {
		result.Stats.LinkCount = links.Len()
	}
	result.CacheInfo.GenomeHit = genomeHit

	r.Logger.Info("loaded inputs",
		"assembly", g.Name(),
		"chromosomes", g.Count(),
		"regions", result.Stats.RegionCount,
		"links", result.Stats.LinkCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	kp, err := r.BuildPlot(g, opts)
	if err != nil {
		return nil, fmt.Errorf("build plot: %w", err)
	}
	result.Plot = kp
	result.Stats.BuildTime = time.Since(buildStart)

	// Hash over the plot inputs, for cache keys and API responses
	if hash, err := inputHash(g, opts); err == nil {
		result.DataHash = hash
	}

	r.Logger.Info("computed layout",
		"rows", len(kp.VisibleChromosomes()),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, kp, bands, data, links, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadGenomeWithCacheInfo resolves the assembly with caching and returns
// cache hit info. Embedded assemblies are served directly unless
// opts.Remote forces a UCSC lookup; unknown names fall through to UCSC.
func (r *Runner) LoadGenomeWithCacheInfo(ctx context.Context, opts Options) (*genome.Genome, map[string][]genome.Cytoband, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, false, err
	}
	r.applyLogger(&opts)

	var g *genome.Genome
	hit := false

	if !opts.Remote {
		builtin, err := genome.Load(opts.Assembly)
		switch {
		case err == nil:
			g = builtin
		case !errorsIsUnknownAssembly(err):
			return nil, nil, false, err
		}
	}

	if g == nil {
		fetched, fromCache, err := r.fetchGenome(ctx, opts)
		if err != nil {
			return nil, nil, false, err
		}
		g, hit = fetched, fromCache
	}

	var bands map[string][]genome.Cytoband
	if opts.Cytobands {
		fetched, err := r.fetchCytobands(ctx, opts)
		if err != nil {
			return nil, nil, false, err
		}
		bands = fetched
	}

	return g, bands, hit, nil
}

// LoadGenome is a convenience wrapper that calls LoadGenomeWithCacheInfo
// and discards the cache hit info.
func (r *Runner) LoadGenome(ctx context.Context, opts Options) (*genome.Genome, map[string][]genome.Cytoband, error) {
	g, bands, _, err := r.LoadGenomeWithCacheInfo(ctx, opts)
	return g, bands, err
}

// fetchGenome retrieves the canonical chromosome set from UCSC, caching
// the parsed result under an assembly key.
func (r *Runner) fetchGenome(ctx context.Context, opts Options) (*genome.Genome, bool, error) {
	cacheKey := r.Keyer.AssemblyKey(opts.Assembly, cache.AssemblyKeyOpts{Kind: "genome"})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var chroms []genome.Chromosome
			if json.Unmarshal(data, &chroms) == nil {
				if g, err := genome.New(opts.Assembly, chroms); err == nil {
					return g, true, nil // Cache hit
				}
			}
		}
	}

	g, err := r.ucscClient().FetchGenome(ctx, opts.Assembly, opts.Refresh)
	if err != nil {
		return nil, false, err
	}

	// Cache the parsed result
	if data, err := json.Marshal(g.Chromosomes()); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLAssembly)
	}

	return g, false, nil // Cache miss
}

// fetchCytobands retrieves banding data from UCSC, caching the parsed
// tables under an assembly key.
func (r *Runner) fetchCytobands(ctx context.Context, opts Options) (map[string][]genome.Cytoband, error) {
	cacheKey := r.Keyer.AssemblyKey(opts.Assembly, cache.AssemblyKeyOpts{Kind: "cytobands"})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var bands map[string][]genome.Cytoband
			if json.Unmarshal(data, &bands) == nil {
				return bands, nil
			}
		}
	}

	bands, err := r.ucscClient().FetchCytobands(ctx, opts.Assembly, opts.Refresh)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(bands); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLAssembly)
	}

	return bands, nil
}

// BuildPlot constructs the karyotype layout for a loaded genome.
func (r *Runner) BuildPlot(g *genome.Genome, opts Options) (*plot.Plot, error) {
	if err := opts.ValidateForPlot(); err != nil {
		return nil, err
	}

	plotOpts := []plot.Option{
		plot.WithSize(opts.Width, opts.Height),
		plot.WithType(opts.PlotType),
		plot.WithPalette(opts.PaletteSpec()),
	}
	if zoom, ok, err := opts.ZoomRegion(); err != nil {
		return nil, err
	} else if ok {
		plotOpts = append(plotOpts, plot.WithZoom(zoom))
	}

	return plot.New(g, plotOpts...)
}

// RenderWithCacheInfo draws the plot to all requested formats with caching
// and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, kp *plot.Plot, bands map[string][]genome.Cytoband, data, links *genome.RegionSet, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hash, err := inputHash(kp.Genome(), opts)
	if err != nil {
		return nil, false, fmt.Errorf("hash plot inputs: %w", err)
	}

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.PlotKey(hash, opts.plotKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	rendered, err := renderFormats(kp, bands, data, links, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, artifact := range rendered {
		cacheKey := r.Keyer.PlotKey(hash, opts.plotKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, artifact, cache.TTLPlot)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, kp *plot.Plot, bands map[string][]genome.Cytoband, data, links *genome.RegionSet, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, kp, bands, data, links, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// ucscClient returns the configured UCSC client, constructing one over
// the runner's cache on first use.
func (r *Runner) ucscClient() *ucsc.Client {
	if r.UCSC == nil {
		r.UCSC = ucsc.NewClient(r.Cache, cache.TTLAssembly)
	}
	return r.UCSC
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// plotKeyOpts returns cache key options for one rendered format.
func (o *Options) plotKeyOpts(format string) cache.PlotKeyOpts {
	return cache.PlotKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
		Type:   o.PlotType,
	}
}

// inputHash computes a content hash over everything that shapes the
// rendered plot: the assembly, the plot options and the raw data files.
func inputHash(g *genome.Genome, opts Options) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s|%s|%s|%d|%t\n", g.Name(), opts.Zoom, opts.Palette, opts.PlotType, opts.Cytobands)
	for _, path := range []string{opts.DataPath, opts.LinksPath} {
		if path == "" {
			buf.WriteByte('\n')
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}
	return cache.Hash(buf.Bytes()), nil
}

// loadData reads the overlay inputs from disk.
func loadData(opts Options) (data, links *genome.RegionSet, err error) {
	if opts.DataPath != "" {
		data, err = genome.ReadBEDFile(opts.DataPath)
		if err != nil {
			return nil, nil, err
		}
	}
	if opts.LinksPath != "" {
		links, err = genome.ReadBEDFile(opts.LinksPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return data, links, nil
}

func errorsIsUnknownAssembly(err error) bool {
	return errors.Is(err, genome.ErrUnknownAssembly)
}
