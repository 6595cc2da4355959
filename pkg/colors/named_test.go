package colors

import (
	"slices"
	"testing"
)

func TestNamedColors_Table(t *testing.T) {
	names := NamedColors()
	if len(names) < 148 {
		t.Fatalf("table has %d entries, want at least 148", len(names))
	}
	if !slices.IsSorted(names) {
		t.Error("table should iterate in alphabetical order")
	}
	for _, name := range []string{"aliceblue", "rebeccapurple", "transparent", "yellowgreen"} {
		if !slices.Contains(names, name) {
			t.Errorf("table is missing %q", name)
		}
	}

	hex, ok := NamedColorToHex("Transparent")
	if !ok || hex != "#00000000" {
		t.Errorf("NamedColorToHex(transparent): got %q, %v", hex, ok)
	}
	hex, ok = NamedColorToHex("rebeccapurple")
	if !ok || hex != "#663399ff" {
		t.Errorf("NamedColorToHex(rebeccapurple): got %q, %v", hex, ok)
	}
}

func TestIsNamedColor(t *testing.T) {
	for _, s := range []string{"White", "black", "salmon", "antiquewhite", "transparent", "YELLOW"} {
		if !IsNamedColor(s) {
			t.Errorf("IsNamedColor(%q): got false, want true", s)
		}
	}
	for _, s := range []string{"", "#xyz", "#124abc01", "unknown", "black ", " white"} {
		if IsNamedColor(s) {
			t.Errorf("IsNamedColor(%q): got true, want false", s)
		}
	}
}

func TestParseNamedColor(t *testing.T) {
	tests := []struct {
		in   string
		want Channels
	}{
		{"White", Channels{R: 255, G: 255, B: 255, A: 1}},
		{"black", Channels{R: 0, G: 0, B: 0, A: 1}},
		{"salmon", Channels{R: 250, G: 128, B: 114, A: 1}},
		{"antIquewhite", Channels{R: 250, G: 235, B: 215, A: 1}},
		{"transparent", Channels{R: 0, G: 0, B: 0, A: 0}},
		{"YELLOW", Channels{R: 255, G: 255, B: 0, A: 1}},
		{"notacolor", Fallback()},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseNamedColor(tt.in); got != tt.want {
				t.Errorf("ParseNamedColor: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNamedColorAliases(t *testing.T) {
	tests := map[string][]string{
		"white":          {"white"},
		"black":          {"black"},
		"transparent":    {"transparent"},
		"aqua":           {"aqua", "cyan"},
		"cyan":           {"aqua", "cyan"},
		"Magenta":        {"fuchsia", "magenta"},
		"darkgray":       {"darkgray", "darkgrey"},
		"darkslategrey":  {"darkslategray", "darkslategrey"},
		"dimgray":        {"dimgray", "dimgrey"},
		"lightgray":      {"lightgray", "lightgrey"},
		"lightslategray": {"lightslategray", "lightslategrey"},
		"gray":           {"gray", "grey"},
		"slategray":      {"slategray", "slategrey"},
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got := NamedColorAliases(name)
			if !slices.Equal(got, want) {
				t.Errorf("NamedColorAliases: got %v, want %v", got, want)
			}
		})
	}

	if got := NamedColorAliases("notacolor"); got != nil {
		t.Errorf("unknown name: got %v, want nil", got)
	}
}

func TestIsAliasToNamedColor(t *testing.T) {
	if !IsAliasToNamedColor("aqua", "CYAN") {
		t.Error("aqua and cyan should be aliases")
	}
	if !IsAliasToNamedColor("red", "red") {
		t.Error("a name should be its own alias")
	}
	if IsAliasToNamedColor("red", "blue") {
		t.Error("red and blue should not be aliases")
	}
}

func TestClosestNamedColor_SelfMatch(t *testing.T) {
	for _, name := range NamedColors() {
		aliases := NamedColorAliases(name)
		hex, _ := NamedColorToHex(name)

		if got := ClosestNamedColor(ParseNamedColor(name)); !slices.Contains(aliases, got) {
			t.Errorf("closest to %s: got %s, want one of %v", name, got, aliases)
		}
		if got := ClosestNamedColor(ParseHex(hex)); !slices.Contains(aliases, got) {
			t.Errorf("closest to %s (%s): got %s, want one of %v", name, hex, got, aliases)
		}
	}
}

func TestClosestNamedColor_Nearby(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#001", "black"},
		{"#fefefe", "white"},
		{"#f80000", "red"},
		{"#0104fa", "blue"},
		{"#ff000080", "red"},
		{"#00000000", "transparent"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := ClosestNamedColor(ParseHex(tt.hex)); got != tt.want {
				t.Errorf("ClosestNamedColor: got %s, want %s", got, tt.want)
			}
		})
	}
}
