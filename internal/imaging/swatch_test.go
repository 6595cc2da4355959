package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

func TestRenderSwatch(t *testing.T) {
	c := colors.FromHex("#ff000080")

	result, err := RenderSwatch(c, 16, 8)
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}
	if result.Hex != "#ff000080" || result.Width != 16 || result.Height != 8 || result.MimeType != "image/png" {
		t.Errorf("unexpected result metadata: %+v", result)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds: got %v, want 16x8", b)
	}
	if got := colors.FromStdColor(img.At(3, 3)).ToHex(); got != "#ff000080" {
		t.Errorf("pixel: got %s, want #ff000080", got)
	}
}

func TestRenderSwatch_InvalidSize(t *testing.T) {
	c := colors.FromName("red")
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5000, 10}} {
		if _, err := RenderSwatch(c, size[0], size[1]); err == nil {
			t.Errorf("RenderSwatch(%dx%d) should fail", size[0], size[1])
		}
	}
}
