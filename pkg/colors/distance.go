package colors

import "math"

// Distance returns the Euclidean distance between two colors on the 0-255
// scale.
//
// The alpha channel is ignored unless includeAlpha is set, in which case its
// difference is scaled to 0-255 like the other channels.
func Distance(a, b Channels, includeAlpha bool) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	sum := dr*dr + dg*dg + db*db
	if includeAlpha {
		da := (a.A - b.A) * 255
		sum += da * da
	}
	return math.Sqrt(sum)
}
