package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/transform"
	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorResult describes a color in its canonical forms along with the
// perceptual values derived from it.
//
// The fields are:
//   - Hex: "#rrggbb", or "#rrggbbaa" when the color is not opaque
//   - RGB: 8-bit components without alpha
//   - Alpha: opacity from 0 (transparent) to 1 (opaque)
//   - Luminance: WCAG relative luminance (0-1)
//   - Brightness: perceived brightness (0-1)
//   - ClosestNamed: nearest CSS named color
type ColorResult struct {
	Hex          string   `json:"hex"`
	RGB          RGBColor `json:"rgb"`
	Alpha        float64  `json:"alpha"`
	Luminance    float64  `json:"luminance"`
	Brightness   float64  `json:"brightness"`
	IsBright     bool     `json:"is_bright"`
	ClosestNamed string   `json:"closest_named"`
}

// NewColorResult builds a ColorResult from a color value.
//
// Parameters:
//   - c: The color to describe. Must not be nil.
//   - threshold: Brightness above which the color is reported as bright.
//     Use colors.DefaultBrightnessThreshold unless configured otherwise.
func NewColorResult(c *colors.Color, threshold float64) ColorResult {
	return ColorResult{
		Hex:          c.ToHex(),
		RGB:          RGBColor{R: c.R(), G: c.G(), B: c.B()},
		Alpha:        c.A(),
		Luminance:    round(c.Luminance(), 4),
		Brightness:   round(c.Brightness(), 4),
		IsBright:     colors.IsBright(c.Channels(), threshold),
		ClosestNamed: c.ClosestNamedColor(),
	}
}

// SampleColor returns the color of the pixel at (x, y).
//
// Coordinates are 0-based with the origin at the top-left corner. The pixel
// is converted to non-premultiplied 8-bit channels, so semi-transparent pixels
// report their true RGB together with their alpha.
//
// Returns an error if (x, y) lies outside the image bounds.
func SampleColor(img image.Image, x, y int, threshold float64) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	result := NewColorResult(colors.FromStdColor(img.At(x, y)), threshold)
	return &result, nil
}

// LabeledPoint is a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledColorResult combines a color sample with its location and label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult contains color samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point in one call. If any point is out of
// bounds no partial results are returned.
//
// Example:
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points, colors.DefaultBrightnessThreshold)
func SampleColorsMulti(img image.Image, points []LabeledPoint, threshold float64) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		sample, err := SampleColor(img, p.X, p.Y, threshold)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *sample,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// ColorFrequency is one palette entry and its share of the analyzed pixels.
type ColorFrequency struct {
	Hex          string   `json:"hex"`
	Percentage   float64  `json:"percentage"`
	RGB          RGBColor `json:"rgb"`
	ClosestNamed string   `json:"closest_named"`
	Aliases      []string `json:"aliases"`
}

// DominantColorsResult lists palette entries by descending frequency.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// PaletteOptions tunes DominantColors.
type PaletteOptions struct {
	// Count is the maximum number of colors returned.
	Count int
	// Quantize is the bucket width per channel. Channel values are floored
	// to a multiple of it before counting, so 16 groups #f0f0f0 and #fafafa.
	Quantize int
	// MaxSide bounds the longer side of the analyzed image. Larger images are
	// downsampled first. Zero disables downsampling.
	MaxSide int
}

// DominantColors extracts the most common colors of an image or region,
// each labeled with its closest CSS named color.
//
// Parameters:
//   - img: The source image.
//   - region: Optional region to analyze. Nil analyzes the whole image.
//   - opts: Palette options. Count and Quantize default to 5 and 16.
//
// # Downsampling
//
// When MaxSide is set, the region is box-filtered down so its longer side is
// at most MaxSide pixels before counting. Box filtering averages neighbours,
// which keeps the proportions of large flat areas intact.
//
// Returns an error if the region is invalid.
func DominantColors(img image.Image, region *Region, opts PaletteOptions) (*DominantColorsResult, error) {
	if opts.Count <= 0 {
		opts.Count = 5
	}
	if opts.Quantize <= 0 {
		opts.Quantize = 16
	}

	src := img
	if region != nil {
		if err := region.Validate(img.Bounds()); err != nil {
			return nil, err
		}
		src = transform.Crop(img, region.Rect())
	}
	src = downsample(src, opts.MaxSide)

	bounds := src.Bounds()
	counts := make(map[[3]uint8]int)
	total := 0
	q := opts.Quantize

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := colors.FromStdColor(src.At(x, y))
			key := [3]uint8{
				uint8(int(c.R()) / q * q),
				uint8(int(c.G()) / q * q),
				uint8(int(c.B()) / q * q),
			}
			counts[key]++
			total++
		}
	}

	palette := make([]ColorFrequency, 0, len(counts))
	for key, n := range counts {
		c := colors.FromNumbers(float64(key[0]), float64(key[1]), float64(key[2]))
		name := c.ClosestNamedColor()
		palette = append(palette, ColorFrequency{
			Hex:          c.ToHex(),
			Percentage:   round(float64(n)/float64(total)*100, 2),
			RGB:          RGBColor{R: key[0], G: key[1], B: key[2]},
			ClosestNamed: name,
			Aliases:      colors.NamedColorAliases(name),
		})
	}

	sort.Slice(palette, func(i, j int) bool {
		if palette[i].Percentage != palette[j].Percentage {
			return palette[i].Percentage > palette[j].Percentage
		}
		return palette[i].Hex < palette[j].Hex
	})

	if len(palette) > opts.Count {
		palette = palette[:opts.Count]
	}

	return &DominantColorsResult{Colors: palette}, nil
}

// downsample shrinks img so that its longer side is at most maxSide.
func downsample(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}
	scale := float64(maxSide) / float64(max(w, h))
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))
	return transform.Resize(img, nw, nh, transform.Box)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
