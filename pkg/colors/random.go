package colors

import (
	"math"
	"math/rand/v2"
)

// ChannelRange constrains one channel of a random color to [Min, Max].
// Min == Max pins the channel to a single value.
type ChannelRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Fixed returns a range pinned to v.
func Fixed(v float64) *ChannelRange {
	return &ChannelRange{Min: v, Max: v}
}

// Between returns a range from lo to hi.
func Between(lo, hi float64) *ChannelRange {
	return &ChannelRange{Min: lo, Max: hi}
}

// Ranges holds optional constraints for each channel of a random color.
// A nil RGB range draws from 0-255, a nil alpha range yields 1.
type Ranges struct {
	R, G, B, A *ChannelRange
}

// Random returns a random opaque color.
func Random() *Color {
	return RandomWith(Ranges{})
}

// RandomWith returns a random color within the given ranges, using the
// global random source. Results are normalized, so out-of-range bounds are
// clamped.
func RandomWith(ranges Ranges) *Color {
	return randomColor(rand.Float64, ranges)
}

// RandomFrom is RandomWith drawing from r, for reproducible sequences.
func RandomFrom(r *rand.Rand, ranges Ranges) *Color {
	return randomColor(r.Float64, ranges)
}

func randomColor(float func() float64, ranges Ranges) *Color {
	red := randomRgbChannel(float, ranges.R)
	green := randomRgbChannel(float, ranges.G)
	blue := randomRgbChannel(float, ranges.B)
	alpha := randomAlphaChannel(float, ranges.A)
	return newColor(normalize(red, green, blue, &alpha, false, false))
}

// randomRgbChannel draws an integer uniformly from the inclusive range.
func randomRgbChannel(float func() float64, r *ChannelRange) float64 {
	if r == nil {
		r = &ChannelRange{Min: 0, Max: 255}
	}
	if r.Min == r.Max {
		return r.Min
	}
	lo, hi := roundedBounds(r)
	return lo + float64(int(float()*(hi-lo+1)))
}

// randomAlphaChannel draws a real number uniformly from the range.
func randomAlphaChannel(float func() float64, r *ChannelRange) float64 {
	if r == nil {
		return 1
	}
	if r.Min == r.Max {
		return r.Min
	}
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + float()*(hi-lo)
}

func roundedBounds(r *ChannelRange) (float64, float64) {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Round(lo), math.Round(hi)
}
