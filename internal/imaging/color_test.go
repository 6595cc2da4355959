package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50, colors.DefaultBrightnessThreshold)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#ff8040" {
		t.Errorf("Hex: got %s, want #ff8040", result.Hex)
	}
	if result.RGB != (RGBColor{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %+v, want (255,128,64)", result.RGB)
	}
	if result.Alpha != 1 {
		t.Errorf("Alpha: got %v, want 1", result.Alpha)
	}
	if result.ClosestNamed != "coral" {
		t.Errorf("ClosestNamed: got %s, want coral", result.ClosestNamed)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name       string
		color      color.Color
		wantHex    string
		wantNamed  string
		wantBright bool
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#ff0000", "red", true},
		{"pure lime", color.RGBA{0, 255, 0, 255}, "#00ff00", "lime", true},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000ff", "blue", false},
		{"white", color.RGBA{255, 255, 255, 255}, "#ffffff", "white", true},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", "black", false},
		{"translucent red", color.NRGBA{255, 0, 0, 128}, "#ff000080", "red", true},
		{"transparent", color.NRGBA{0, 0, 0, 0}, "#00000000", "transparent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
			img.Set(1, 1, tt.color)

			result, err := SampleColor(img, 1, 1, colors.DefaultBrightnessThreshold)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.ClosestNamed != tt.wantNamed {
				t.Errorf("ClosestNamed: got %s, want %s", result.ClosestNamed, tt.wantNamed)
			}
			if result.IsBright != tt.wantBright {
				t.Errorf("IsBright: got %v, want %v", result.IsBright, tt.wantBright)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y, colors.DefaultBrightnessThreshold); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createPatternImage(100, 100)
	points := []LabeledPoint{
		{X: 10, Y: 10, Label: "red"},
		{X: 90, Y: 10, Label: "green"},
		{X: 10, Y: 90},
		{X: 90, Y: 90, Label: "white"},
	}

	result, err := SampleColorsMulti(img, points, colors.DefaultBrightnessThreshold)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}

	want := []string{"#ff0000", "#00ff00", "#0000ff", "#ffffff"}
	if len(result.Samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(result.Samples), len(want))
	}
	for i, s := range result.Samples {
		if s.Color.Hex != want[i] {
			t.Errorf("sample %d: got %s, want %s", i, s.Color.Hex, want[i])
		}
		if s.Label != points[i].Label {
			t.Errorf("sample %d label: got %q, want %q", i, s.Label, points[i].Label)
		}
	}

	points = append(points, LabeledPoint{X: 500, Y: 500})
	if _, err := SampleColorsMulti(img, points, colors.DefaultBrightnessThreshold); err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}

func TestDominantColors(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, nil, PaletteOptions{Count: 10, Quantize: 1})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 4 {
		t.Fatalf("got %d colors, want 4", len(result.Colors))
	}

	wantNamed := map[string]bool{"red": false, "lime": false, "blue": false, "white": false}
	for _, c := range result.Colors {
		if c.Percentage != 25 {
			t.Errorf("%s: got %v%%, want 25%%", c.Hex, c.Percentage)
		}
		if _, ok := wantNamed[c.ClosestNamed]; !ok {
			t.Errorf("%s: unexpected closest name %s", c.Hex, c.ClosestNamed)
		}
		wantNamed[c.ClosestNamed] = true
		if len(c.Aliases) == 0 {
			t.Errorf("%s: aliases should include the name itself", c.Hex)
		}
	}
	for name, seen := range wantNamed {
		if !seen {
			t.Errorf("palette is missing %s", name)
		}
	}
}

func TestDominantColors_CountAndRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := DominantColors(img, nil, PaletteOptions{Count: 2})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 2 {
		t.Errorf("got %d colors, want 2", len(result.Colors))
	}

	result, err = DominantColors(img, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}, PaletteOptions{})
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].ClosestNamed != "red" || result.Colors[0].Percentage != 100 {
		t.Errorf("top-left quadrant: got %+v, want 100%% red", result.Colors)
	}

	if _, err := DominantColors(img, &Region{X1: 50, Y1: 50, X2: 10, Y2: 10}, PaletteOptions{}); err == nil {
		t.Error("DominantColors should reject an inverted region")
	}
}

func TestDominantColors_Downsample(t *testing.T) {
	img := createInMemoryImage(400, 200, color.RGBA{0, 0, 255, 255})

	result, err := DominantColors(img, nil, PaletteOptions{MaxSide: 32})
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 1 || result.Colors[0].ClosestNamed != "blue" {
		t.Errorf("got %+v, want a single blue entry", result.Colors)
	}
}
