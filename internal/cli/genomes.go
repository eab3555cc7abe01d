package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bio-traven/karyoploteR/pkg/genome"
	"github.com/bio-traven/karyoploteR/pkg/pipeline"
)

// genomesCommand creates the genomes command for listing and fetching
// assemblies.
func (c *CLI) genomesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "genomes",
		Short: "List the embedded genome assemblies",
		Long: `List the genome assemblies embedded in the binary.

Embedded assemblies resolve offline. Any other UCSC assembly name can
still be plotted; its chromosome sizes are downloaded on first use and
cached locally. Use 'genomes fetch' to warm that cache explicitly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return c.runGenomesPicker()
			}
			return c.runGenomesList()
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick an assembly interactively")

	cmd.AddCommand(c.genomesFetchCommand())
	return cmd
}

// runGenomesList prints the embedded assemblies as a table.
func (c *CLI) runGenomesList() error {
	assemblies, err := loadBuiltinAssemblies()
	if err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(assemblies))
	for _, a := range assemblies {
		rows = append(rows, []string{
			a.Name,
			a.Description,
			fmt.Sprintf("%d", len(a.Chromosomes)),
			formatBases(totalLength(a)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Assembly", "Description", "Chromosomes", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	printNextStep("Plot one", "karyoplot plot hg38 --cytobands")
	return nil
}

// runGenomesPicker shows the interactive assembly selector and prints the
// chromosome table for the chosen assembly.
func (c *CLI) runGenomesPicker() error {
	assemblies, err := loadBuiltinAssemblies()
	if err != nil {
		return err
	}

	model := NewAssemblyListModel(assemblies)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("interactive selection: %w", err)
	}

	m, ok := final.(AssemblyListModel)
	if !ok || m.Selected == nil {
		printInfo("No assembly selected")
		return nil
	}

	printAssembly(*m.Selected)
	return nil
}

// genomesFetchCommand creates the "genomes fetch" subcommand.
func (c *CLI) genomesFetchCommand() *cobra.Command {
	var (
		refresh   bool
		cytobands bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [assembly]",
		Short: "Download an assembly from UCSC into the local cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenomesFetch(cmd.Context(), args[0], refresh, cytobands, noCache)
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-download even when cached")
	cmd.Flags().BoolVar(&cytobands, "cytobands", true, "also fetch Giemsa banding")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runGenomesFetch downloads the assembly and reports what arrived.
func (c *CLI) runGenomesFetch(ctx context.Context, assembly string, refresh, cytobands, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Assembly:  assembly,
		Remote:    true,
		Cytobands: cytobands,
		Refresh:   refresh,
		Logger:    c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s from UCSC...", assembly))
	spinner.Start()

	g, bands, hit, err := runner.LoadGenomeWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Fetch of %s failed", assembly))
		return err
	}
	spinner.Stop()

	printSuccess("Fetched %s", StyleHighlight.Render(assembly))
	printDetail("%d canonical chromosomes, %s", g.Count(), formatBases(g.TotalLength()))
	if cytobands {
		bandCount := 0
		for _, chromBands := range bands {
			bandCount += len(chromBands)
		}
		printDetail("%d cytobands across %d chromosomes", bandCount, len(bands))
	}
	if hit {
		printDetail("served from cache")
	}
	printNewline()
	printNextStep("Plot it", fmt.Sprintf("karyoplot plot %s --cytobands", assembly))
	return nil
}

// printAssembly prints the chromosome table of one assembly.
func printAssembly(a genome.Assembly) {
	fmt.Println(StyleTitle.Render(a.Name) + " " + StyleDim.Render(a.Description))
	printNewline()
	for _, ch := range a.Chromosomes {
		printKeyValue(ch.Name, formatBases(ch.Length))
	}
	printNewline()
	printNextStep("Plot it", fmt.Sprintf("karyoplot plot %s --cytobands", a.Name))
}

// loadBuiltinAssemblies loads all embedded assembly definitions.
func loadBuiltinAssemblies() ([]genome.Assembly, error) {
	names := genome.Builtin()
	assemblies := make([]genome.Assembly, 0, len(names))
	for _, name := range names {
		a, err := genome.LoadAssembly(name)
		if err != nil {
			return nil, fmt.Errorf("load embedded assembly %s: %w", name, err)
		}
		assemblies = append(assemblies, a)
	}
	return assemblies, nil
}

func totalLength(a genome.Assembly) int64 {
	var total int64
	for _, ch := range a.Chromosomes {
		total += ch.Length
	}
	return total
}

// formatBases renders a base count in genome-browser units (bp, kb, Mb, Gb).
func formatBases(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2f Gb", float64(n)/1e9)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1f Mb", float64(n)/1e6)
	case n >= 1_000:
		return fmt.Sprintf("%.1f kb", float64(n)/1e3)
	default:
		return fmt.Sprintf("%d bp", n)
	}
}
