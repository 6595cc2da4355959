package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

// Region represents a rectangular region within an image.
//
// (X1, Y1) is the inclusive top-left corner and (X2, Y2) the exclusive
// bottom-right corner.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Validate checks that the region is non-empty and lies within bounds.
func (r Region) Validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if !r.Rect().In(bounds) {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// AverageColor returns the mean color of a region.
//
// The region is cropped and box-filtered down to a single pixel, which
// averages every pixel of the region with equal weight.
func AverageColor(img image.Image, region Region) (*colors.Color, error) {
	if err := region.Validate(img.Bounds()); err != nil {
		return nil, err
	}
	cropped := transform.Crop(img, region.Rect())
	pixel := transform.Resize(cropped, 1, 1, transform.Box)
	return colors.FromStdColor(pixel.At(0, 0)), nil
}

// RegionContrastResult compares the average colors of two regions.
type RegionContrastResult struct {
	Region1       ColorResult `json:"region1"`
	Region2       ColorResult `json:"region2"`
	ContrastRatio float64     `json:"contrast_ratio"`
	Distance      float64     `json:"distance"`
	// PassesAA and PassesAAA apply the WCAG thresholds for normal text.
	PassesAA  bool `json:"passes_aa"`
	PassesAAA bool `json:"passes_aaa"`
}

// WCAG minimum contrast ratios for normal text.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// CompareRegions averages two regions and reports how their colors contrast,
// such as a text area against its background.
func CompareRegions(img image.Image, r1, r2 Region, threshold float64) (*RegionContrastResult, error) {
	c1, err := AverageColor(img, r1)
	if err != nil {
		return nil, fmt.Errorf("region1: %w", err)
	}
	c2, err := AverageColor(img, r2)
	if err != nil {
		return nil, fmt.Errorf("region2: %w", err)
	}

	ratio := c1.Contrast(c2)
	return &RegionContrastResult{
		Region1:       NewColorResult(c1, threshold),
		Region2:       NewColorResult(c2, threshold),
		ContrastRatio: math.Round(ratio*100) / 100,
		Distance:      math.Round(c1.Distance(c2, false)*100) / 100,
		PassesAA:      ratio >= ContrastAA,
		PassesAAA:     ratio >= ContrastAAA,
	}, nil
}
