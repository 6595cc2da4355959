package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorValueSchema describes an argument that accepts any color input.
func colorValueSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description + `. A hex string ("#f0f", "#ff000080"), a CSS color name ("rebeccapurple"), an [r, g, b, a?] array or an {"r","g","b","a"?} object. Anything else is treated as black and reported as a fallback.`,
		"oneOf": []map[string]interface{}{
			{"type": "string"},
			{"type": "array", "items": map[string]interface{}{"type": "number"}, "minItems": 3, "maxItems": 4},
			{"type": "object"},
		},
	}
}

// channelRangeSchema describes a {min, max} constraint for color_random.
func channelRangeSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"min": map[string]interface{}{"type": "number"},
			"max": map[string]interface{}{"type": "number"},
		},
		"required": []string{"min", "max"},
	}
}

// regionSchema describes a rectangular image region.
func regionSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

var pathSchema = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Color Values
		{
			Name:        "color_parse",
			Description: "Parse a color in any supported form and describe it: hex, RGB, alpha, WCAG luminance, perceived brightness, closest CSS name and whether the input had to be clamped or fell back to black.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": colorValueSchema("The color to parse"),
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "color_contrast",
			Description: "Compute the WCAG contrast ratio (1-21) between a foreground and a background color and report whether it passes AA (4.5) and AAA (7.0) for normal text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": colorValueSchema("Text or foreground color"),
					"background": colorValueSchema("Background color"),
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "color_distance",
			Description: "Compute the Euclidean RGB distance between two colors on a 0-255 scale. Identical colors have distance 0; black to white is about 441.67.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"a": colorValueSchema("First color"),
					"b": colorValueSchema("Second color"),
					"include_alpha": map[string]interface{}{
						"type":        "boolean",
						"description": "Include the alpha difference, scaled to 0-255. Default false",
						"default":     false,
					},
				},
				"required": []string{"a", "b"},
			},
		},
		{
			Name:        "color_closest_named",
			Description: "Find the CSS named color nearest to a color, with its hex value, the distance to it and any alias names (e.g. gray/grey).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": colorValueSchema("The color to name"),
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "color_grayscale",
			Description: "Convert a color to the gray of equal luminance. Alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": colorValueSchema("The color to convert"),
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "color_random",
			Description: "Generate a random color. Each channel can be constrained to a range; RGB defaults to 0-255 and alpha to fully opaque.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": channelRangeSchema("Red range (0-255)"),
					"g": channelRangeSchema("Green range (0-255)"),
					"b": channelRangeSchema("Blue range (0-255)"),
					"a": channelRangeSchema("Alpha range (0-1)"),
					"seed": map[string]interface{}{
						"type":        "integer",
						"description": "Optional seed for a reproducible result",
					},
				},
			},
		},
		{
			Name:        "color_swatch",
			Description: "Render a solid swatch of a color and return it as base64-encoded PNG. Translucent colors keep their alpha.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": colorValueSchema("The color to render"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels (1-2048). Defaults to the configured swatch width",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels (1-2048). Defaults to the configured swatch height",
					},
				},
				"required": []string{"value"},
			},
		},

		// Image Colors
		{
			Name:        "image_sample_color",
			Description: "Get the color of a single pixel with its hex value, luminance, brightness and closest CSS name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at multiple points in one call. Useful for comparing text and background colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema,
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_average_color",
			Description: "Compute the average color of a rectangular region and describe it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema,
					"x1":   map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
					"y1":   map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
					"x2":   map[string]interface{}{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
					"y2":   map[string]interface{}{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_dominant_colors",
			Description: "Extract the most common colors of an image or region, each labeled with its closest CSS named color and aliases.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema,
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to return. Defaults to the configured palette count",
					},
					"quantize": map[string]interface{}{
						"type":        "integer",
						"description": "Bucket width per channel; 1 counts exact colors. Defaults to the configured value",
					},
					"region": regionSchema("Optional region to analyze"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_compare_regions",
			Description: "Average two regions and report their WCAG contrast ratio, color distance and AA/AAA results. Useful for checking text against its background.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":    pathSchema,
					"region1": regionSchema("First region"),
					"region2": regionSchema("Second region"),
				},
				"required": []string{"path", "region1", "region2"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
