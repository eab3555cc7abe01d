package palette

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		palette string
		n       int
		wantLen int
		wantErr error
	}{
		{"TwoGrays", "2grays", 5, 2, nil},
		{"BrewerSet1", "brewer.set1", 0, 9, nil},
		{"BrewerSet3", "brewer.set3", 0, 12, nil},
		{"Rainbow", "rainbow", 7, 7, nil},
		{"RainbowZero", "rainbow", 0, 1, nil},
		{"Unknown", "brewer.set9", 3, 0, ErrUnknownPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := Resolve(tt.palette, tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if len(colors) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(colors), tt.wantLen)
			}
		})
	}
}

func TestResolveRainbowDistinct(t *testing.T) {
	colors, err := Resolve(Rainbow, 24)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, c := range colors {
		if seen[c] {
			t.Fatalf("duplicate rainbow color %s", c)
		}
		seen[c] = true
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	a, _ := Resolve("2grays", 0)
	a[0] = "#FFFFFF"
	b, _ := Resolve("2grays", 0)
	if b[0] == "#FFFFFF" {
		t.Error("Resolve must not expose the shared palette table")
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse("#E41A1C"); err != nil {
		t.Errorf("Parse(#E41A1C): %v", err)
	}
	if _, err := Parse("red"); !errors.Is(err, ErrBadColor) {
		t.Errorf("Parse(red) error = %v, want ErrBadColor", err)
	}
}

func TestForLabelsRecycling(t *testing.T) {
	all := []string{"chr1", "chr2", "chr3", "chr4"}
	labels := []string{"chr1", "chr3", "chr1", "chr4", "chr2"}

	got, err := ForLabels(labels, all, Spec{Colors: []string{"#AAAAAA", "#BBBBBB"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(labels) {
		t.Fatalf("len = %d, want %d", len(got), len(labels))
	}

	// Recycling is by chromosome index in `all`, not by element index:
	// chr1 and chr3 (even indices) get color 0, chr2 and chr4 color 1.
	want := []string{"#AAAAAA", "#AAAAAA", "#AAAAAA", "#BBBBBB", "#BBBBBB"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestForLabelsByName(t *testing.T) {
	labels := []string{"chr1", "chr2", "chrUn"}
	spec := Spec{
		ByName:  map[string]string{"chr1": "#111111", "chr2": "#222222"},
		Default: "#999999",
	}
	got, err := ForLabels(labels, nil, spec)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#111111", "#222222", "#999999"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSpecIsZero(t *testing.T) {
	if !(Spec{}).IsZero() {
		t.Error("zero Spec should report IsZero")
	}
	set := []Spec{
		{Name: "2grays"},
		{Colors: []string{"#111111"}},
		{ByName: map[string]string{"chr1": "#111111"}},
		{Default: "#999999"},
	}
	for i, s := range set {
		if s.IsZero() {
			t.Errorf("spec %d with a field set should not be zero", i)
		}
	}
}

func TestForLabelsDefaults(t *testing.T) {
	// Zero spec falls back to 2grays; unknown labels get black.
	got, err := ForLabels([]string{"chr1", "weird"}, []string{"chr1"}, Spec{})
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != "#888888" {
		t.Errorf("color[0] = %s, want #888888", got[0])
	}
	if got[1] != "#000000" {
		t.Errorf("color[1] = %s, want #000000", got[1])
	}
}

func TestForLabelsRainbowSizing(t *testing.T) {
	all := []string{"chr1", "chr2", "chr3"}
	got, err := ForLabels([]string{"chr3"}, all, Spec{Name: Rainbow})
	if err != nil {
		t.Fatal(err)
	}
	// Rainbow resolves to exactly len(all) hues, so chr3 gets hue 240.
	want, _ := Resolve(Rainbow, 3)
	if got[0] != want[2] {
		t.Errorf("color = %s, want %s", got[0], want[2])
	}
}

func TestForLabelsEmptyInput(t *testing.T) {
	got, err := ForLabels(nil, []string{"chr1"}, DefaultSpec())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestForLabelsUnknownPalette(t *testing.T) {
	if _, err := ForLabels([]string{"chr1"}, []string{"chr1"}, Spec{Name: "nope"}); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("error = %v, want ErrUnknownPalette", err)
	}
}

func TestForLabelsEmptyColors(t *testing.T) {
	if _, err := ForLabels([]string{"chr1"}, []string{"chr1"}, Spec{Colors: []string{}}); !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("error = %v, want ErrEmptyPalette", err)
	}
}
