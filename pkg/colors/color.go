package colors

import (
	"image/color"
	"math"
)

// Channel selects one channel of a Color.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// Color is a color value: one canonical channel tuple plus a memo of values
// derived from it.
//
// Setters mutate the receiver, clear the IsFallback and IsTransformed flags
// and drop every memoized value. The With methods, Clone and ToGrayscale
// return new instances instead. A Color must not be mutated concurrently.
//
// *Color implements image/color.Color.
type Color struct {
	ch    Channels
	cache memo
}

// Partial holds the channels to replace in Color.With. Nil fields keep the
// current value.
type Partial struct {
	R, G, B, A *float64
}

func newColor(ch Channels) *Color {
	return &Color{ch: ch}
}

// New creates a color from a raw channel object. It is equivalent to
// FromChannels.
func New(c Components) *Color {
	return FromChannels(c)
}

// FromChannels normalizes a raw channel object into a color.
func FromChannels(c Components) *Color {
	return newColor(ParseChannels(c))
}

// FromHex parses a hex string. Invalid hex yields the fallback color.
func FromHex(s string) *Color {
	return newColor(ParseHex(s))
}

// FromRgb parses an RGB(A) tuple.
func FromRgb(v []float64) *Color {
	return newColor(ParseRgb(v))
}

// FromName looks up a CSS named color. Unknown names yield the fallback color.
func FromName(name string) *Color {
	return newColor(ParseNamedColor(name))
}

// FromNumbers creates a color from positional channel values.
func FromNumbers(r, g, b float64, a ...float64) *Color {
	if len(a) > 0 {
		return newColor(normalize(r, g, b, &a[0], false, false))
	}
	return newColor(normalize(r, g, b, nil, false, false))
}

// FromStdColor converts any image/color.Color, un-premultiplying its alpha.
func FromStdColor(c color.Color) *Color {
	return newColor(parseStdColor(c))
}

// From parses any supported input following the dispatcher precedence. It
// never fails: unrecognized input yields the fallback color.
func From(v any) *Color {
	return newColor(Parse(v))
}

// R returns the red channel.
func (c *Color) R() uint8 { return c.ch.R }

// G returns the green channel.
func (c *Color) G() uint8 { return c.ch.G }

// B returns the blue channel.
func (c *Color) B() uint8 { return c.ch.B }

// A returns the alpha channel.
func (c *Color) A() float64 { return c.ch.A }

// Channels returns a copy of the canonical channel tuple, flags included.
func (c *Color) Channels() Channels { return c.ch }

func (c *Color) IsOpaque() bool      { return c.ch.IsOpaque() }
func (c *Color) IsTransparent() bool { return c.ch.IsTransparent() }
func (c *Color) IsTranslucent() bool { return c.ch.IsTranslucent() }

// IsFallback reports whether the color replaced unparsable input.
func (c *Color) IsFallback() bool { return c.ch.IsFallback }

// IsTransformed reports whether parsing had to alter the input values.
func (c *Color) IsTransformed() bool { return c.ch.IsTransformed }

// SetChannel sets one channel and returns the receiver.
//
// RGB values are rounded and clamped, NaN becoming 0. Alpha is clamped, NaN
// becoming 1. A manual edit is authoritative: both flags are cleared and the
// memo is invalidated.
func (c *Color) SetChannel(ch Channel, v float64) *Color {
	switch ch {
	case ChannelRed:
		c.ch.R = ToRgbChannel(v)
	case ChannelGreen:
		c.ch.G = ToRgbChannel(v)
	case ChannelBlue:
		c.ch.B = ToRgbChannel(v)
	case ChannelAlpha:
		c.ch.A = ToAlphaChannel(v)
	default:
		return c
	}
	c.ch.IsFallback = false
	c.ch.IsTransformed = false
	c.cache.invalidateAll()
	return c
}

func (c *Color) SetRed(v float64) *Color   { return c.SetChannel(ChannelRed, v) }
func (c *Color) SetGreen(v float64) *Color { return c.SetChannel(ChannelGreen, v) }
func (c *Color) SetBlue(v float64) *Color  { return c.SetChannel(ChannelBlue, v) }
func (c *Color) SetAlpha(v float64) *Color { return c.SetChannel(ChannelAlpha, v) }

// Clone returns an independent copy, flags included.
func (c *Color) Clone() *Color {
	return newColor(c.ch)
}

// With returns a new color built from the receiver's channels with the
// fields of p replaced. The result is normalized afresh, so its flags
// describe the combined channels rather than the receiver's history.
func (c *Color) With(p Partial) *Color {
	comp := c.ch.Components()
	if p.R != nil {
		comp.R = *p.R
	}
	if p.G != nil {
		comp.G = *p.G
	}
	if p.B != nil {
		comp.B = *p.B
	}
	if p.A != nil {
		comp.A = p.A
	}
	return FromChannels(comp)
}

func (c *Color) WithRed(v float64) *Color   { return c.With(Partial{R: &v}) }
func (c *Color) WithGreen(v float64) *Color { return c.With(Partial{G: &v}) }
func (c *Color) WithBlue(v float64) *Color  { return c.With(Partial{B: &v}) }
func (c *Color) WithAlpha(v float64) *Color { return c.With(Partial{A: &v}) }

// ToHex renders "#rrggbb", or "#rrggbbaa" when the color is not opaque.
func (c *Color) ToHex() string {
	return cached(c, metricHex, ToHex)
}

// ToRgb renders the [r, g, b, a] tuple.
func (c *Color) ToRgb() [4]float64 {
	return cached(c, metricRgb, ToRgb)
}

// ToChannels renders the channel tuple with every channel re-clamped.
// Flags are not part of the rendered form.
func (c *Color) ToChannels() Channels {
	v := ToRgb(c.ch)
	return Channels{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2]), A: v[3]}
}

// String returns ToHex.
func (c *Color) String() string {
	return c.ToHex()
}

// RGBA implements image/color.Color.
func (c *Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.ch.R, G: c.ch.G, B: c.ch.B, A: uint8(math.Round(c.ch.A * 255))}.RGBA()
}

// Luminance returns the WCAG relative luminance, from 0 to 1.
func (c *Color) Luminance() float64 {
	return cached(c, metricLuminance, Luminance)
}

// Brightness returns the perceived brightness, from 0 to 1.
func (c *Color) Brightness() float64 {
	return cached(c, metricBrightness, Brightness)
}

// IsBright reports whether Brightness is above DefaultBrightnessThreshold.
func (c *Color) IsBright() bool {
	return c.Brightness() > DefaultBrightnessThreshold
}

// IsDark reports whether Brightness is at or below DefaultBrightnessThreshold.
func (c *Color) IsDark() bool {
	return c.Brightness() <= DefaultBrightnessThreshold
}

// IsBrighterThan reports whether the receiver is strictly brighter than other.
func (c *Color) IsBrighterThan(other *Color) bool {
	return c.Brightness() > other.Brightness()
}

// IsDarkerThan reports whether the receiver is strictly darker than other.
func (c *Color) IsDarkerThan(other *Color) bool {
	return c.Brightness() < other.Brightness()
}

// Contrast returns the WCAG contrast ratio against other.
func (c *Color) Contrast(other *Color) float64 {
	return Contrast(c.ch, other.ch)
}

// Distance returns the Euclidean distance to other. See Distance.
func (c *Color) Distance(other *Color, includeAlpha bool) float64 {
	return Distance(c.ch, other.ch, includeAlpha)
}

// ToGrayscale returns a new gray color with the same luminance and alpha.
func (c *Color) ToGrayscale() *Color {
	return newColor(cached(c, metricGrayscale, Grayscale))
}

// ClosestNamedColor returns the name of the nearest CSS named color.
func (c *Color) ClosestNamedColor() string {
	return cached(c, metricClosestName, ClosestNamedColor)
}
