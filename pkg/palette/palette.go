// Package palette assigns colors to categorical labels, most commonly
// chromosome names. It resolves named palettes to concrete color lists,
// generates rainbow palettes of arbitrary size, and maps per-element labels
// to colors with positional recycling or name-keyed lookup.
package palette

import (
	"errors"
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrUnknownPalette is returned by [Resolve] when the palette name is
	// not in the named table and is not "rainbow".
	ErrUnknownPalette = errors.New("unknown palette")

	// ErrEmptyPalette is returned when color assignment is attempted with
	// an empty color list.
	ErrEmptyPalette = errors.New("empty palette")

	// ErrBadColor is returned when a color string cannot be parsed as
	// "#rrggbb" hex.
	ErrBadColor = errors.New("bad color")
)

// Rainbow is the name of the generated evenly-spaced-hue palette.
const Rainbow = "rainbow"

// named holds the fixed name-to-palette table. Brewer sets use the
// published ColorBrewer qualitative values.
var named = map[string][]string{
	"2grays":     {"#888888", "#444444"},
	"2blues":     {"#6CAEFF", "#2B5D9B"},
	"blackgreen": {"#000000", "#00A600"},
	"greengray":  {"#4DAF4A", "#999999"},
	"brewer.set1": {
		"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00",
		"#FFFF33", "#A65628", "#F781BF", "#999999",
	},
	"brewer.set2": {
		"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3", "#A6D854",
		"#FFD92F", "#E5C494", "#B3B3B3",
	},
	"brewer.set3": {
		"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3",
		"#FDB462", "#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD",
		"#CCEBC5", "#FFED6F",
	},
}

// Names returns all named palettes (including "rainbow"), sorted.
func Names() []string {
	out := make([]string, 0, len(named)+1)
	for name := range named {
		out = append(out, name)
	}
	out = append(out, Rainbow)
	sort.Strings(out)
	return out
}

// Resolve turns a palette name into a concrete ordered color list.
// For "rainbow" the palette is generated with n evenly spaced hues;
// fixed palettes ignore n and return their full color list.
func Resolve(name string, n int) ([]string, error) {
	if name == Rainbow {
		if n < 1 {
			n = 1
		}
		out := make([]string, n)
		for i := range out {
			h := 360.0 * float64(i) / float64(n)
			out[i] = colorful.Hsv(h, 1, 1).Hex()
		}
		return out, nil
	}
	if colors, ok := named[name]; ok {
		out := make([]string, len(colors))
		copy(out, colors)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
}

// Parse validates a "#rrggbb" color string and returns it normalized to
// lowercase hex. Returns ErrBadColor for anything else.
func Parse(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return c.Hex(), nil
}

// Spec selects colors for categorical labels. Exactly one of Name, Colors,
// or ByName should be set; when more than one is set, ByName wins over
// Colors, which wins over Name. The zero value means "2grays".
type Spec struct {
	// Name of a palette from the fixed table, or "rainbow".
	Name string
	// Colors is an explicit ordered palette, recycled positionally.
	Colors []string
	// ByName maps labels directly to colors. Labels absent from the map
	// get Default.
	ByName map[string]string
	// Default is the fallback color for ByName misses. Empty means black.
	Default string
}

// IsZero reports whether the spec selects nothing. Callers use it to fall
// back to a surrounding default; Spec is not comparable because of its
// slice and map fields.
func (s Spec) IsZero() bool {
	return s.Name == "" && s.Colors == nil && s.ByName == nil && s.Default == ""
}

// DefaultSpec is the palette used when the caller supplies none.
func DefaultSpec() Spec { return Spec{Name: "2grays"} }

// ForLabels assigns one color per element of labels.
//
// With a ByName mapping, each label gets its mapped color or the default.
// Otherwise the palette (explicit Colors or resolved Name) is recycled over
// the ordered category universe `all`: an element whose label sits at index
// i in all gets palette[i % len(palette)]. Labels not found in all get the
// default color.
//
// The returned slice always has exactly len(labels) entries.
func ForLabels(labels, all []string, spec Spec) ([]string, error) {
	def := spec.Default
	if def == "" {
		def = "#000000"
	}

	if spec.ByName != nil {
		out := make([]string, len(labels))
		for i, l := range labels {
			if c, ok := spec.ByName[l]; ok {
				out[i] = c
			} else {
				out[i] = def
			}
		}
		return out, nil
	}

	colors := spec.Colors
	if colors == nil {
		name := spec.Name
		if name == "" {
			name = "2grays"
		}
		var err error
		if colors, err = Resolve(name, len(all)); err != nil {
			return nil, err
		}
	}
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	index := make(map[string]int, len(all))
	for i, a := range all {
		index[a] = i
	}

	out := make([]string, len(labels))
	for i, l := range labels {
		if j, ok := index[l]; ok {
			out[i] = colors[j%len(colors)]
		} else {
			out[i] = def
		}
	}
	return out, nil
}
