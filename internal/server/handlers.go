package server

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/ironsheep/color-tools-mcp/internal/imaging"
	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "image_sample_color").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies configured defaults for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate colors/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Color Values
	case "color_parse":
		return s.handleColorParse(args)
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_distance":
		return s.handleColorDistance(args)
	case "color_closest_named":
		return s.handleColorClosestNamed(args)
	case "color_grayscale":
		return s.handleColorGrayscale(args)
	case "color_random":
		return s.handleColorRandom(args)
	case "color_swatch":
		return s.handleColorSwatch(args)

	// Image Colors
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_average_color":
		return s.handleImageAverageColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_compare_regions":
		return s.handleImageCompareRegions(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ColorReport is the full description of a color returned by the color
// tools.
type ColorReport struct {
	imaging.ColorResult
	// Format is how the input was recognized: "hex", "named", "rgb",
	// "channels", or "" when it was not a color and fell back to black.
	Format        string   `json:"format"`
	IsFallback    bool     `json:"is_fallback"`
	IsTransformed bool     `json:"is_transformed"`
	Aliases       []string `json:"aliases"`
}

func (s *Server) report(c *colors.Color, format colors.Format) *ColorReport {
	name := c.ClosestNamedColor()
	return &ColorReport{
		ColorResult:   imaging.NewColorResult(c, s.cfg.BrightnessThreshold),
		Format:        format.String(),
		IsFallback:    c.IsFallback(),
		IsTransformed: c.IsTransformed(),
		Aliases:       colors.NamedColorAliases(name),
	}
}

// decodeColor reads a color argument. Any JSON the colors package accepts
// is allowed; values that are not colors become the fallback color.
func decodeColor(raw json.RawMessage, field string) (*colors.Color, colors.Format, error) {
	if len(raw) == 0 {
		return nil, colors.FormatNone, fmt.Errorf("missing required argument: %s", field)
	}
	v, err := colors.DecodeJSON(raw)
	if err != nil {
		return nil, colors.FormatNone, fmt.Errorf("%s: %w", field, err)
	}
	return colors.From(v), colors.Type(v), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// === Color Value Handlers ===

type colorValueArgs struct {
	Value json.RawMessage `json:"value"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorValueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, format, err := decodeColor(a.Value, "value")
	if err != nil {
		return nil, err
	}
	return s.report(c, format), nil
}

type colorContrastArgs struct {
	Foreground json.RawMessage `json:"foreground"`
	Background json.RawMessage `json:"background"`
}

// ContrastResult is the WCAG contrast between two colors.
type ContrastResult struct {
	Foreground    string  `json:"foreground"`
	Background    string  `json:"background"`
	ContrastRatio float64 `json:"contrast_ratio"`
	PassesAA      bool    `json:"passes_aa"`
	PassesAAA     bool    `json:"passes_aaa"`
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fg, _, err := decodeColor(a.Foreground, "foreground")
	if err != nil {
		return nil, err
	}
	bg, _, err := decodeColor(a.Background, "background")
	if err != nil {
		return nil, err
	}

	ratio := fg.Contrast(bg)
	return &ContrastResult{
		Foreground:    fg.ToHex(),
		Background:    bg.ToHex(),
		ContrastRatio: round2(ratio),
		PassesAA:      ratio >= imaging.ContrastAA,
		PassesAAA:     ratio >= imaging.ContrastAAA,
	}, nil
}

type colorDistanceArgs struct {
	A            json.RawMessage `json:"a"`
	B            json.RawMessage `json:"b"`
	IncludeAlpha bool            `json:"include_alpha"`
}

// DistanceResult is the Euclidean distance between two colors.
type DistanceResult struct {
	A            string  `json:"a"`
	B            string  `json:"b"`
	Distance     float64 `json:"distance"`
	IncludeAlpha bool    `json:"include_alpha"`
}

func (s *Server) handleColorDistance(args json.RawMessage) (interface{}, error) {
	var a colorDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, _, err := decodeColor(a.A, "a")
	if err != nil {
		return nil, err
	}
	c2, _, err := decodeColor(a.B, "b")
	if err != nil {
		return nil, err
	}
	return &DistanceResult{
		A:            c1.ToHex(),
		B:            c2.ToHex(),
		Distance:     round2(c1.Distance(c2, a.IncludeAlpha)),
		IncludeAlpha: a.IncludeAlpha,
	}, nil
}

// ClosestNamedResult names the CSS color nearest to the input.
type ClosestNamedResult struct {
	Hex      string   `json:"hex"`
	Name     string   `json:"name"`
	NameHex  string   `json:"name_hex"`
	Distance float64  `json:"distance"`
	Aliases  []string `json:"aliases"`
}

func (s *Server) handleColorClosestNamed(args json.RawMessage) (interface{}, error) {
	var a colorValueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, _, err := decodeColor(a.Value, "value")
	if err != nil {
		return nil, err
	}

	name := c.ClosestNamedColor()
	named := colors.FromName(name)
	return &ClosestNamedResult{
		Hex:      c.ToHex(),
		Name:     name,
		NameHex:  named.ToHex(),
		Distance: round2(c.Distance(named, named.IsOpaque())),
		Aliases:  colors.NamedColorAliases(name),
	}, nil
}

func (s *Server) handleColorGrayscale(args json.RawMessage) (interface{}, error) {
	var a colorValueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, _, err := decodeColor(a.Value, "value")
	if err != nil {
		return nil, err
	}
	gray := c.ToGrayscale()
	return s.report(gray, colors.FormatColor), nil
}

type colorRandomArgs struct {
	R    *colors.ChannelRange `json:"r,omitempty"`
	G    *colors.ChannelRange `json:"g,omitempty"`
	B    *colors.ChannelRange `json:"b,omitempty"`
	A    *colors.ChannelRange `json:"a,omitempty"`
	Seed *uint64              `json:"seed,omitempty"`
}

func (s *Server) handleColorRandom(args json.RawMessage) (interface{}, error) {
	var a colorRandomArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	ranges := colors.Ranges{R: a.R, G: a.G, B: a.B, A: a.A}

	var c *colors.Color
	if a.Seed != nil {
		c = colors.RandomFrom(rand.New(rand.NewPCG(*a.Seed, *a.Seed)), ranges)
	} else {
		c = colors.RandomWith(ranges)
	}
	return s.report(c, colors.FormatColor), nil
}

type colorSwatchArgs struct {
	Value  json.RawMessage `json:"value"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
}

func (s *Server) handleColorSwatch(args json.RawMessage) (interface{}, error) {
	var a colorSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.Swatch.Width
	}
	if a.Height == 0 {
		a.Height = s.cfg.Swatch.Height
	}
	c, _, err := decodeColor(a.Value, "value")
	if err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(c, a.Width, a.Height)
}

// === Image Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y, s.cfg.BrightnessThreshold)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []imaging.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorsMulti(img, a.Points, s.cfg.BrightnessThreshold)
}

type imageRegionArgs struct {
	Path string `json:"path"`
	imaging.Region
}

func (s *Server) handleImageAverageColor(args json.RawMessage) (interface{}, error) {
	var a imageRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.AverageColor(img, a.Region)
	if err != nil {
		return nil, err
	}
	return s.report(c, colors.FormatColor), nil
}

type imageDominantColorsArgs struct {
	Path     string          `json:"path"`
	Count    int             `json:"count"`
	Quantize int             `json:"quantize"`
	Region   *imaging.Region `json:"region,omitempty"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.Palette.Count
	}
	if a.Quantize == 0 {
		a.Quantize = s.cfg.Palette.Quantize
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, a.Region, imaging.PaletteOptions{
		Count:    a.Count,
		Quantize: a.Quantize,
		MaxSide:  s.cfg.Palette.MaxSide,
	})
}

type imageCompareRegionsArgs struct {
	Path    string         `json:"path"`
	Region1 imaging.Region `json:"region1"`
	Region2 imaging.Region `json:"region2"`
}

func (s *Server) handleImageCompareRegions(args json.RawMessage) (interface{}, error) {
	var a imageCompareRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CompareRegions(img, a.Region1, a.Region2, s.cfg.BrightnessThreshold)
}
