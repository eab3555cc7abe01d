package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bio-traven/karyoploteR/pkg/pipeline"
)

// plotCommand creates the plot command for rendering karyotype figures.
func (c *CLI) plotCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetPlotDefaults()

	cmd := &cobra.Command{
		Use:   "plot [assembly]",
		Short: "Render a karyotype figure for an assembly",
		Long: `Render a karyotype figure for a genome assembly.

The plot command draws one ideogram row per chromosome and overlays the
data you give it: a BED file of scored regions becomes a scatter track,
and a BED file with paired-end columns becomes link ribbons between loci.

Embedded assemblies (see 'karyoplot genomes') are resolved offline;
other assembly names are fetched from UCSC and cached locally.

Examples:

  # Plain hg38 karyotype with Giemsa banding
  karyoplot plot hg38 --cytobands -o karyotype.svg

  # Scatter over a BED file, zoomed into one locus
  karyoplot plot hg38 --data peaks.bed --zoom chr17:7,500,000-7,700,000

  # Fusion links as PNG and SVG
  karyoplot plot hg38 --links fusions.bed -f svg,png -o fusions`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Assembly = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runPlot(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "bypass cached data and re-download")

	// Data flags
	cmd.Flags().StringVar(&opts.DataPath, "data", "", "BED file of regions to overlay")
	cmd.Flags().StringVar(&opts.LinksPath, "links", "", "BED file with paired-end columns, drawn as ribbons")
	cmd.Flags().StringVar(&opts.Zoom, "zoom", "", "restrict the plot to a region (chrN:start-end)")

	// Assembly flags
	cmd.Flags().BoolVar(&opts.Remote, "remote", false, "fetch the assembly from UCSC even when embedded")
	cmd.Flags().BoolVar(&opts.Cytobands, "cytobands", false, "fetch Giemsa banding and paint it on the ideograms")

	// Plot flags
	cmd.Flags().IntVarP(&opts.PlotType, "type", "t", opts.PlotType, "panel arrangement: 1 (data above) or 2 (above and below)")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width in pixels")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height in pixels")
	cmd.Flags().StringVar(&opts.Palette, "palette", opts.Palette, "per-chromosome color palette")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")

	return cmd
}

// runPlot executes the pipeline and writes the rendered artifacts.
func (c *CLI) runPlot(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Plotting %s...", opts.Assembly))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Plot failed")
		return err
	}
	spinner.Stop()

	printSuccess("Plotted %s", StyleHighlight.Render(opts.Assembly))
	printStats(result.Stats.ChromosomeCount, result.Stats.RegionCount,
		result.Stats.LinkCount, result.CacheInfo.RenderHit)

	return writeArtifacts(result.Artifacts, opts.Formats, opts.Assembly, output)
}

// writeArtifacts writes each rendered format to disk. With a single format
// the output path is used as-is; with several, it is treated as a base path
// and the format extension is appended.
func writeArtifacts(artifacts map[string][]byte, formats []string, assembly, output string) error {
	base := artifactBase(output, assembly)

	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if output != "" && len(formats) == 1 && filepath.Ext(output) != "" {
			path = output
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// artifactBase derives the base output path. An empty output falls back to
// the assembly name; a known format extension is stripped so multi-format
// runs don't produce names like "out.svg.png".
func artifactBase(output, assembly string) string {
	if output == "" {
		return assembly
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}
