package colors

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// namedColor is one entry of the named color table.
type namedColor struct {
	name     string
	hex      string // "#rrggbbaa"
	channels Channels
}

// The named color table is built once at init and never mutated afterwards.
var (
	namedTable []namedColor
	namedIndex map[string]int
)

// extraNamedColors are CSS named colors missing from the SVG 1.1 keyword list
// that colornames is generated from.
var extraNamedColors = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
	"transparent":   {R: 0, G: 0, B: 0, A: 0},
}

func init() {
	all := make(map[string]color.RGBA, len(colornames.Map)+len(extraNamedColors))
	for name, c := range colornames.Map {
		all[name] = c
	}
	for name, c := range extraNamedColors {
		all[name] = c
	}

	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	namedTable = make([]namedColor, 0, len(names))
	namedIndex = make(map[string]int, len(names))
	for i, name := range names {
		c := all[name]
		hex := fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
		namedTable = append(namedTable, namedColor{
			name:     name,
			hex:      hex,
			channels: ParseHex(hex),
		})
		namedIndex[name] = i
	}
}

// NamedColors returns every name in the table, in table order.
func NamedColors() []string {
	names := make([]string, len(namedTable))
	for i, nc := range namedTable {
		names[i] = nc.name
	}
	return names
}

// IsNamedColor reports whether s names a CSS color. The match is
// case-insensitive but otherwise exact: surrounding spaces do not match.
func IsNamedColor(s string) bool {
	_, ok := namedIndex[strings.ToLower(s)]
	return ok
}

// NamedColorToHex returns the 8 digit "#rrggbbaa" value of a named color.
func NamedColorToHex(name string) (string, bool) {
	i, ok := namedIndex[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return namedTable[i].hex, true
}

// ParseNamedColor returns the channels of a named color, or the fallback
// tuple when the name is not in the table.
func ParseNamedColor(name string) Channels {
	i, ok := namedIndex[strings.ToLower(name)]
	if !ok {
		return fallbackChannels
	}
	return namedTable[i].channels
}

// NamedColorAliases returns every name sharing the hex value of name,
// including name itself, in table order. Unknown names return nil.
func NamedColorAliases(name string) []string {
	i, ok := namedIndex[strings.ToLower(name)]
	if !ok {
		return nil
	}
	target := namedTable[i].hex
	var aliases []string
	for _, nc := range namedTable {
		if nc.hex == target {
			aliases = append(aliases, nc.name)
		}
	}
	return aliases
}

// IsAliasToNamedColor reports whether alias shares the hex value of name.
func IsAliasToNamedColor(name, alias string) bool {
	alias = strings.ToLower(alias)
	for _, a := range NamedColorAliases(name) {
		if a == alias {
			return true
		}
	}
	return false
}

// ClosestNamedColor returns the table entry nearest to c.
//
// The alpha channel only takes part in the distance for candidates that are
// fully opaque. Every opaque candidate then carries the same alpha penalty, so
// a translucent query still ranks them on RGB alone, while "transparent" is
// compared on RGB only and wins for queries that are themselves transparent.
// Ties go to the first candidate in table order.
func ClosestNamedColor(c Channels) string {
	closest := ""
	smallest := 0.0
	for _, nc := range namedTable {
		d := Distance(nc.channels, c, nc.channels.A == 1)
		if closest == "" || d < smallest {
			closest = nc.name
			smallest = d
		}
	}
	return closest
}
