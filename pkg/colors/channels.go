package colors

import "math"

// Channels is the canonical representation of a color.
//
// R, G and B are always within 0-255 and A is always within 0-1. The two flags
// record how the tuple was produced:
//   - IsTransformed: building the tuple required clamping, rounding or
//     defaulting at least one channel away from the literal input.
//   - IsFallback: the input could not be parsed at all and the tuple was
//     replaced by opaque black.
type Channels struct {
	R             uint8   `json:"r"`
	G             uint8   `json:"g"`
	B             uint8   `json:"b"`
	A             float64 `json:"a"`
	IsTransformed bool    `json:"is_transformed"`
	IsFallback    bool    `json:"is_fallback"`
}

// Components is a raw {r,g,b,a?} channel object that has not been normalized.
//
// A nil A means the alpha channel was not provided and defaults to 1.
type Components struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Alpha returns a pointer to v, for use as Components.A.
func Alpha(v float64) *float64 {
	return &v
}

// fallbackChannels is substituted whenever input cannot be parsed.
var fallbackChannels = Channels{R: 0, G: 0, B: 0, A: 1, IsTransformed: true, IsFallback: true}

// Fallback returns the fallback tuple: opaque black flagged as fallback.
func Fallback() Channels {
	return fallbackChannels
}

// IsRgbChannel reports whether v is a number within 0-255.
func IsRgbChannel(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 255
}

// IsAlphaChannel reports whether v is a number within 0-1.
func IsAlphaChannel(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// ToRgbChannel rounds v and clamps it to 0-255. NaN becomes 0.
func ToRgbChannel(v float64) uint8 {
	f, ok := roundChannel(v)
	if !ok {
		return 0
	}
	return uint8(f)
}

// ToAlphaChannel clamps v to 0-1. NaN becomes 1.
func ToAlphaChannel(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return math.Min(math.Max(v, 0), 1)
}

// roundChannel returns v rounded and clamped to 0-255, and false if v is NaN.
func roundChannel(v float64) (float64, bool) {
	r := math.Round(v)
	if math.IsNaN(r) {
		return 0, false
	}
	return math.Min(math.Max(r, 0), 255), true
}

// normalize builds a canonical tuple from raw channel values.
//
// Any NaN among r, g and b yields the fallback tuple regardless of the other
// arguments. fallback is only ever raised by callers that already know the
// source was unparsable.
func normalize(r, g, b float64, a *float64, transformed, fallback bool) Channels {
	fr, okR := roundChannel(r)
	fg, okG := roundChannel(g)
	fb, okB := roundChannel(b)
	if !okR || !okG || !okB {
		return fallbackChannels
	}

	inA := 1.0
	if a != nil {
		inA = *a
	}
	fa := ToAlphaChannel(inA)

	return Channels{
		R:             uint8(fr),
		G:             uint8(fg),
		B:             uint8(fb),
		A:             fa,
		IsTransformed: transformed || fallback || fr != r || fg != g || fb != b || fa != inA,
		IsFallback:    fallback,
	}
}

// Normalize turns a raw channel object into canonical channels.
func Normalize(c Components) Channels {
	return normalize(c.R, c.G, c.B, c.A, false, false)
}

// Normalize re-runs normalization on an existing tuple, carrying its flags
// forward as hints. Normalizing an already canonical tuple returns it
// unchanged.
func (c Channels) Normalize() Channels {
	a := c.A
	return normalize(float64(c.R), float64(c.G), float64(c.B), &a, c.IsTransformed, c.IsFallback)
}

// Components returns the tuple as a raw channel object.
func (c Channels) Components() Components {
	return Components{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: Alpha(c.A)}
}

// IsOpaque reports whether the alpha channel is exactly 1.
func (c Channels) IsOpaque() bool {
	return c.A == 1
}

// IsTransparent reports whether the alpha channel is exactly 0.
func (c Channels) IsTransparent() bool {
	return c.A == 0
}

// IsTranslucent reports whether the color is at least partially transparent.
func (c Channels) IsTranslucent() bool {
	return !c.IsOpaque()
}
