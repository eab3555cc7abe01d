package genome

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownAssembly is returned by [LoadAssembly] and [Load] when the
// assembly is not embedded in the binary.
var ErrUnknownAssembly = errors.New("unknown assembly")

// Built-in assembly definitions. Each file carries the canonical chromosome
// set with lengths; cytobands are fetched separately (see integrations/ucsc)
// because they are bulky and version-churned.
//
//go:embed assets/*.toml
var assemblyFS embed.FS

// Assembly describes a built-in genome assembly.
type Assembly struct {
	Name        string       `toml:"name"`
	Description string       `toml:"description"`
	Chromosomes []Chromosome `toml:"chromosomes"`
}

// Genome builds a Genome from the assembly definition.
func (a Assembly) Genome() (*Genome, error) {
	return New(a.Name, a.Chromosomes)
}

// Builtin returns the names of all embedded assemblies, sorted.
func Builtin() []string {
	entries, err := assemblyFS.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// LoadAssembly returns the embedded assembly definition for name.
// Returns ErrUnknownAssembly when no embedded file matches.
func LoadAssembly(name string) (Assembly, error) {
	data, err := assemblyFS.ReadFile("assets/" + name + ".toml")
	if err != nil {
		return Assembly{}, fmt.Errorf("%w: %s", ErrUnknownAssembly, name)
	}
	var a Assembly
	if err := toml.Unmarshal(data, &a); err != nil {
		return Assembly{}, fmt.Errorf("assembly %s: %w", name, err)
	}
	return a, nil
}

// Load returns a ready Genome for a built-in assembly name.
func Load(name string) (*Genome, error) {
	a, err := LoadAssembly(name)
	if err != nil {
		return nil, err
	}
	return a.Genome()
}
