// Package pipeline provides the core plotting pipeline for karyoplot.
//
// This package implements the complete load → build → render pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Resolve the genome assembly (embedded registry or UCSC) and
//     read the region data to plot
//  2. Build: Compute the karyotype layout (one row per chromosome, or a
//     single zoomed region)
//  3. Render: Draw ideograms and overlays to the output formats (SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Assembly: "hg38",
//	    DataPath: "variants.bed",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	g, bands, err := runner.LoadGenome(ctx, opts)
//
//	// Build a plot for an already loaded genome
//	kp, err := runner.BuildPlot(g, opts)
//
//	// Render with existing plot and data
//	artifacts, err := runner.Render(ctx, kp, bands, data, links, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/bio-traven/karyoploteR/pkg/errors"
	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/palette"
	"github.com/bio-traven/karyoploteR/pkg/plot"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 1200.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 800.0

	// DefaultPlotType is the default panel arrangement (data above the
	// ideogram).
	DefaultPlotType = plot.TypeAbove

	// DefaultPalette is the default per-chromosome color palette.
	DefaultPalette = "2grays"

	// DefaultScale is the default raster supersampling factor for PNG
	// output.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the plotting pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Assembly  string `json:"assembly"`
	Remote    bool   `json:"remote,omitempty"`    // Fetch from UCSC even when an embedded assembly matches
	Cytobands bool   `json:"cytobands,omitempty"` // Fetch Giemsa banding for the ideograms (remote lookup)
	Refresh   bool   `json:"refresh,omitempty"`

	// Data options
	DataPath  string `json:"data_path,omitempty"`  // BED file plotted as a data overlay
	LinksPath string `json:"links_path,omitempty"` // BED file with paired-end columns, plotted as ribbons
	Zoom      string `json:"zoom,omitempty"`       // chrN:start-end window restricting the plot

	// Plot options
	PlotType int     `json:"plot_type,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Palette  string  `json:"palette,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // Raster supersampling factor

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Genome is the resolved assembly.
	Genome *genome.Genome

	// Cytobands holds banding data per chromosome, when requested.
	Cytobands map[string][]genome.Cytoband

	// Plot is the computed karyotype layout.
	Plot *plot.Plot

	// DataHash is the content hash over the plot's inputs.
	DataHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ChromosomeCount int
	RegionCount     int
	LinkCount       int
	LoadTime        time.Duration
	BuildTime       time.Duration
	RenderTime      time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GenomeHit bool // Whether the assembly came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePlotType checks that a plot type is valid.
func ValidatePlotType(t int) error {
	if t != plot.TypeAbove && t != plot.TypeAboveBelow {
		return fmt.Errorf("invalid plot_type: %d (must be 1 or 2)", t)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForPlot(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for assembly and data loading.
func (o *Options) ValidateForLoad() error {
	if err := apperrors.ValidateAssemblyName(o.Assembly); err != nil {
		return err
	}
	if o.Zoom != "" {
		if _, err := genome.ParseRegion(o.Zoom); err != nil {
			return err
		}
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// SetPlotDefaults sets default values for plot construction.
func (o *Options) SetPlotDefaults() {
	if o.PlotType == 0 {
		o.PlotType = DefaultPlotType
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForPlot validates and sets defaults for plot construction.
func (o *Options) ValidateForPlot() error {
	o.SetPlotDefaults()
	if err := ValidatePlotType(o.PlotType); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid dimensions: %gx%g", o.Width, o.Height)
	}
	// One color is enough to prove the palette name resolves.
	if _, err := palette.Resolve(o.Palette, 1); err != nil {
		return err
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetPlotDefaults()
	o.SetRenderDefaults()
	if err := ValidatePlotType(o.PlotType); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ZoomRegion parses the zoom window. The second return value reports
// whether a zoom was requested.
func (o *Options) ZoomRegion() (genome.Region, bool, error) {
	if o.Zoom == "" {
		return genome.Region{}, false, nil
	}
	r, err := genome.ParseRegion(o.Zoom)
	if err != nil {
		return genome.Region{}, false, err
	}
	return r, true, nil
}

// PaletteSpec returns the palette selection for overlay coloring.
func (o *Options) PaletteSpec() palette.Spec {
	return palette.Spec{Name: o.Palette}
}
