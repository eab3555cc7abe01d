package genome

import (
	"strings"
	"testing"
)

const cytobandSample = `chr1	0	2300000	p36.33	gneg
chr1	2300000	5300000	p36.32	gpos25
chr1	121700000	123400000	p11.1	acen
chr2	0	4400000	p25.3	gneg
`

func TestParseCytobands(t *testing.T) {
	bands, err := ParseCytobands(strings.NewReader(cytobandSample))
	if err != nil {
		t.Fatalf("ParseCytobands: %v", err)
	}
	if len(bands) != 4 {
		t.Fatalf("got %d bands, want 4", len(bands))
	}

	b := bands[0]
	if b.Chrom != "chr1" || b.Start != 1 || b.End != 2300000 {
		t.Errorf("band 0 = %v", b.Region)
	}
	if b.Name != "p36.33" || b.Stain != StainGneg {
		t.Errorf("band 0 name/stain = %s/%s", b.Name, b.Stain)
	}

	if !bands[2].IsCentromeric() {
		t.Error("acen band should be centromeric")
	}
	if bands[0].IsCentromeric() {
		t.Error("gneg band should not be centromeric")
	}
}

func TestParseCytobandsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"TooFewColumns", "chr1\t0\t100\tp1\n"},
		{"BadStart", "chr1\tx\t100\tp1\tgneg\n"},
		{"BadEnd", "chr1\t0\tx\tp1\tgneg\n"},
		{"EndBeforeStart", "chr1\t200\t100\tp1\tgneg\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCytobands(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestBandsByChrom(t *testing.T) {
	bands, err := ParseCytobands(strings.NewReader(cytobandSample))
	if err != nil {
		t.Fatal(err)
	}
	byChrom := BandsByChrom(bands)
	if len(byChrom["chr1"]) != 3 || len(byChrom["chr2"]) != 1 {
		t.Errorf("grouping = chr1:%d chr2:%d", len(byChrom["chr1"]), len(byChrom["chr2"]))
	}
	// File order preserved within a chromosome.
	if byChrom["chr1"][0].Name != "p36.33" {
		t.Errorf("first chr1 band = %s", byChrom["chr1"][0].Name)
	}
}

func TestStainColor(t *testing.T) {
	if StainColor(StainGpos100) != "#000000" {
		t.Errorf("gpos100 = %s", StainColor(StainGpos100))
	}
	// Unknown stains fall back to gneg white.
	if StainColor("mystery") != "#FFFFFF" {
		t.Errorf("unknown stain = %s", StainColor("mystery"))
	}
}

func TestLoadBuiltinAssemblies(t *testing.T) {
	names := Builtin()
	if len(names) == 0 {
		t.Fatal("no built-in assemblies")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			g, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%s): %v", name, err)
			}
			if g.Count() == 0 {
				t.Error("assembly has no chromosomes")
			}
			if g.Name() != name {
				t.Errorf("Name = %s, want %s", g.Name(), name)
			}
		})
	}
}

func TestLoadUnknownAssembly(t *testing.T) {
	if _, err := Load("nope123"); err == nil {
		t.Error("expected error for unknown assembly")
	}
}

func TestLoadHG38(t *testing.T) {
	g, err := Load("hg38")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := g.Length("chr1"); got != 248956422 {
		t.Errorf("hg38 chr1 length = %d", got)
	}
	if g.Count() != 24 {
		t.Errorf("hg38 chromosome count = %d, want 24", g.Count())
	}
}
