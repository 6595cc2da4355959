package colors

import (
	"image/color"
	"math"
)

// Format is the classification of a color input.
type Format int

const (
	FormatNone Format = iota
	FormatColor
	FormatChannels
	FormatNamed
	FormatHex
	FormatRgb
)

// String returns the format name, or "" for FormatNone.
func (f Format) String() string {
	switch f {
	case FormatColor:
		return "color"
	case FormatChannels:
		return "channels"
	case FormatNamed:
		return "named"
	case FormatHex:
		return "hex"
	case FormatRgb:
		return "rgb"
	default:
		return ""
	}
}

// Type classifies v strictly: a value is only given a format when it is a
// fully valid instance of it. Accepted Go types are listed on Parse.
func Type(v any) Format {
	switch t := v.(type) {
	case nil:
		return FormatNone
	case *Color:
		if t == nil {
			return FormatNone
		}
		return FormatColor
	case Color:
		return FormatColor
	case string:
		switch {
		case t == "":
			return FormatNone
		case IsNamedColor(t):
			return FormatNamed
		case IsHex(t):
			return FormatHex
		}
		return FormatNone
	}

	if seq, ok := numericSequence(v); ok {
		if IsRgb(seq) {
			return FormatRgb
		}
		return FormatNone
	}
	if comp, ok := channelObject(v); ok && IsColorChannels(comp) {
		return FormatChannels
	}
	return FormatNone
}

// IsColor reports whether v is any supported color input.
func IsColor(v any) bool {
	return Type(v) != FormatNone
}

// Parse turns any supported input into canonical channels. It never fails.
//
// Precedence, first match wins:
//  1. a Color, cloned with its flags
//  2. a channel object (Channels, Components or an image/color.Color) whose
//     fields are all in range
//  3. a CSS named color string
//  4. a hex string
//  5. a numeric sequence ([]float64, []int, [3]float64, [4]float64 or []any
//     of numbers) of length 3 or 4, parsed as RGB even when out of range
//
// Anything else, including nil and "", yields the fallback tuple.
func Parse(v any) Channels {
	switch t := v.(type) {
	case nil:
		return fallbackChannels
	case *Color:
		if t == nil {
			return fallbackChannels
		}
		return t.ch
	case Color:
		return t.ch
	}

	if comp, ok := channelObject(v); ok {
		if IsColorChannels(comp) {
			if ch, ok := v.(Channels); ok {
				return ch.Normalize()
			}
			return Normalize(comp)
		}
		return fallbackChannels
	}

	if s, ok := v.(string); ok {
		switch {
		case IsNamedColor(s):
			return ParseNamedColor(s)
		case IsHex(s):
			return ParseHex(s)
		}
		return fallbackChannels
	}

	if seq, ok := numericSequence(v); ok && len(seq) >= 3 && len(seq) <= 4 {
		return ParseRgb(seq)
	}
	return fallbackChannels
}

// channelObject extracts a channel object from v.
func channelObject(v any) (Components, bool) {
	switch t := v.(type) {
	case Channels:
		return t.Components(), true
	case *Channels:
		if t == nil {
			return Components{}, false
		}
		return t.Components(), true
	case Components:
		return t, true
	case *Components:
		if t == nil {
			return Components{}, false
		}
		return *t, true
	case color.Color:
		return parseStdColor(t).Components(), true
	}
	return Components{}, false
}

// numericSequence extracts a slice of numbers from v.
func numericSequence(v any) ([]float64, bool) {
	switch t := v.(type) {
	case []float64:
		return t, true
	case [3]float64:
		return t[:], true
	case [4]float64:
		return t[:], true
	case []int:
		seq := make([]float64, len(t))
		for i, n := range t {
			seq[i] = float64(n)
		}
		return seq, true
	case []any:
		seq := make([]float64, len(t))
		for i, n := range t {
			f, ok := toFloat(n)
			if !ok {
				return nil, false
			}
			seq[i] = f
		}
		return seq, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	}
	return math.NaN(), false
}

// parseStdColor converts an image/color.Color to channels. Fully transparent
// colors carry no recoverable RGB and become transparent black.
func parseStdColor(c color.Color) Channels {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := float64(n.A) / 255
	return normalize(float64(n.R), float64(n.G), float64(n.B), &a, false, false)
}
