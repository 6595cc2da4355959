package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

// SwatchResult contains a rendered color swatch.
type SwatchResult struct {
	Hex         string `json:"hex"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// maxSwatchSide bounds swatch dimensions.
const maxSwatchSide = 2048

// RenderSwatch renders a solid rectangle of c as a base64 PNG.
//
// Translucent colors keep their alpha in the PNG. Returns an error if either
// dimension is not within 1-2048.
func RenderSwatch(c *colors.Color, width, height int) (*SwatchResult, error) {
	if width <= 0 || height <= 0 || width > maxSwatchSide || height > maxSwatchSide {
		return nil, fmt.Errorf("invalid swatch size %dx%d: each side must be within 1-%d", width, height, maxSwatchSide)
	}

	img := imaging.New(width, height, c)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Hex:         c.ToHex(),
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
