package colors

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBrightnessThreshold separates bright colors from dark ones.
const DefaultBrightnessThreshold = 0.5

// WCAG relative luminance coefficients.
const (
	redCoefficient   = 0.2126
	greenCoefficient = 0.7152
	blueCoefficient  = 0.0722
)

// CIE lightness constants.
const (
	cieEpsilon = 216.0 / 24389.0
	cieKappa   = 24389.0 / 27.0
)

// SRGBToLinear linearizes a gamma encoded sRGB channel in the 0-1 range.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB is the inverse of SRGBToLinear.
func LinearToSRGB(c float64) float64 {
	if c <= 0.04045/12.92 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// toColorful converts channels to a go-colorful color with 0-1 components.
func toColorful(c Channels) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Luminance returns the WCAG relative luminance of c, in the 0-1 range.
func Luminance(c Channels) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return redCoefficient*r + greenCoefficient*g + blueCoefficient*b
}

// Brightness returns the perceived brightness of c: CIE lightness (L*)
// derived from luminance and normalized to the 0-1 range.
func Brightness(c Channels) float64 {
	return brightnessFromLuminance(Luminance(c))
}

func brightnessFromLuminance(l float64) float64 {
	if l <= cieEpsilon {
		return l * cieKappa / 100
	}
	return (math.Cbrt(l)*116 - 16) / 100
}

// IsBright reports whether the brightness of c is strictly above threshold.
func IsBright(c Channels, threshold float64) bool {
	return Brightness(c) > threshold
}

// IsDark reports whether the brightness of c is at or below threshold.
// IsBright and IsDark never agree for the same threshold.
func IsDark(c Channels, threshold float64) bool {
	return Brightness(c) <= threshold
}

// Contrast returns the WCAG contrast ratio between two colors, from 1 to 21.
// The ratio is symmetric.
func Contrast(a, b Channels) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// Grayscale returns the gray with the same luminance as c. Alpha is kept.
func Grayscale(c Channels) Channels {
	l := Luminance(c)
	gray := colorful.LinearRgb(l, l, l).R * 255
	a := c.A
	return normalize(gray, gray, gray, &a, false, false)
}
