package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsHex reports whether s is a hex color: an optional leading '#' followed by
// exactly 3, 4, 6 or 8 hexadecimal digits in either case.
func IsHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParseHex parses a hex color into canonical channels.
//
// Short forms (3 or 4 digits) have each digit doubled, so "#f0f" is read as
// "#ff00ff". The 4 and 8 digit forms carry an alpha byte, which is divided by
// 255. Input that is not a valid hex color yields the fallback tuple.
func ParseHex(s string) Channels {
	if !IsHex(s) {
		return fallbackChannels
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) < 6 {
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			b.WriteByte(s[i])
			b.WriteByte(s[i])
		}
		s = b.String()
	}

	// IsHex guarantees at most 8 digits, so the value fits in 32 bits.
	v, _ := strconv.ParseUint(s, 16, 32)
	if len(s) == 6 {
		return normalize(float64(v>>16&0xff), float64(v>>8&0xff), float64(v&0xff), nil, false, false)
	}
	a := float64(v&0xff) / 255
	return normalize(float64(v>>24&0xff), float64(v>>16&0xff), float64(v>>8&0xff), &a, false, false)
}

// ToHex renders channels as "#rrggbb", appending a two digit alpha byte only
// when the color is not fully opaque. Every channel is re-clamped on output.
func ToHex(c Channels) string {
	a := ToAlphaChannel(c.A)
	if a == 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(math.Round(a*255)))
}
