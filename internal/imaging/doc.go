// Package imaging applies the colors package to images: pixel sampling,
// region averages, dominant palettes and swatch rendering.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner, X
// increasing rightward and Y downward. For regions, (x1,y1) is inclusive and
// (x2,y2) exclusive.
//
// # Color Conversion
//
// Pixels are read through image/color and converted to non-premultiplied
// 8-bit channels before being handed to colors.FromStdColor. Every reported
// color carries its hex form, luminance, brightness and closest CSS name.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The sampling functions are stateless
// and build a fresh colors.Color per call, so they may run concurrently on
// different images.
//
// # Error Handling
//
// Functions return errors for coordinates or regions outside the image,
// empty regions, invalid swatch sizes and file I/O or decode failures.
package imaging
