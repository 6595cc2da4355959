// Package colors represents sRGB colors canonically and derives perceptual
// properties from them.
//
// Input in any supported format is normalized into a single Channels tuple:
//   - hex strings: "#f0f", "f0f8", "#ff00ff", "#ff00ff80" (the '#' is optional)
//   - RGB(A) tuples: []float64{255, 0, 255} or {255, 0, 255, 0.5}
//   - CSS named colors: "magenta", "Transparent" (case-insensitive)
//   - channel objects: Components{R: 255, G: 0, B: 255, A: Alpha(0.5)}
//   - any image/color.Color
//
// # Degradation
//
// Parsing never fails. Input that is recognizable but out of range is clamped
// and rounded, and the result reports IsTransformed. Input that cannot be
// parsed at all becomes opaque black reporting IsFallback. Setting a channel
// by hand clears both flags.
//
// # Derived values
//
// Color exposes WCAG relative luminance and contrast, perceived brightness
// (CIE lightness scaled to 0-1), Euclidean distance, a grayscale projection
// and the closest CSS named color. Derived values are memoized per Color and
// dropped whenever a channel changes.
//
// # Thread Safety
//
// The named color table is read-only and safe to share. A Color memoizes
// lazily on read, so a Color shared between goroutines must be guarded by the
// caller, including for reads.
package colors
