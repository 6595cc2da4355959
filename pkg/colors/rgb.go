package colors

// IsRgb reports whether v is a strictly valid RGB tuple: three channels within
// 0-255 and an optional fourth alpha channel within 0-1.
func IsRgb(v []float64) bool {
	if len(v) < 3 || len(v) > 4 {
		return false
	}
	for i, n := range v {
		if i == 3 {
			if !IsAlphaChannel(n) {
				return false
			}
			continue
		}
		if !IsRgbChannel(n) {
			return false
		}
	}
	return true
}

// ParseRgb parses an RGB(A) tuple into canonical channels.
//
// Validation is left entirely to the normalizer: out-of-range or fractional
// values are clamped and rounded and the result is flagged as transformed.
// Tuples that are not 3 or 4 numbers long yield the fallback tuple.
func ParseRgb(v []float64) Channels {
	switch len(v) {
	case 3:
		return normalize(v[0], v[1], v[2], nil, false, false)
	case 4:
		a := v[3]
		return normalize(v[0], v[1], v[2], &a, false, false)
	default:
		return fallbackChannels
	}
}

// ToRgb renders channels as an [r, g, b, a] tuple, each channel re-clamped.
func ToRgb(c Channels) [4]float64 {
	return [4]float64{
		float64(ToRgbChannel(float64(c.R))),
		float64(ToRgbChannel(float64(c.G))),
		float64(ToRgbChannel(float64(c.B))),
		ToAlphaChannel(c.A),
	}
}

// IsColorChannels reports whether c is a structurally valid channel object:
// every RGB field within 0-255 and, when present, alpha within 0-1.
func IsColorChannels(c Components) bool {
	if !IsRgbChannel(c.R) || !IsRgbChannel(c.G) || !IsRgbChannel(c.B) {
		return false
	}
	return c.A == nil || IsAlphaChannel(*c.A)
}

// ParseChannels passes a channel object straight to the normalizer.
func ParseChannels(c Components) Channels {
	return Normalize(c)
}
