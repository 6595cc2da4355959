// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// The server exposes the colors package, and its application to images, as
// JSON-RPC 2.0 tools so that MCP clients can parse, compare and name colors
// and read colors out of screenshots.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Color Values:
//   - color_parse: Describe any color input
//   - color_contrast: WCAG contrast ratio with AA/AAA results
//   - color_distance: Euclidean RGB distance
//   - color_closest_named: Nearest CSS named color and its aliases
//   - color_grayscale: Gray of equal luminance
//   - color_random: Random color within channel ranges
//   - color_swatch: Render a color as a PNG
//
// Image Colors:
//   - image_sample_color: Color at a pixel
//   - image_sample_colors_multi: Sample multiple points
//   - image_average_color: Mean color of a region
//   - image_dominant_colors: Extract color palette
//   - image_compare_regions: Contrast between two regions
//
// # Color Arguments
//
// Color arguments accept a hex string, a CSS color name, an [r, g, b, a?]
// array or an {"r","g","b","a"?} object. Inputs that are not colors are not
// errors: they are reported as black with is_fallback set, matching the
// colors package.
//
// # Configuration
//
// Defaults for the brightness threshold, swatch size and palette extraction
// come from config.Config. Explicit tool arguments always win.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
