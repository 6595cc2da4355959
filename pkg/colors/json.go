package colors

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the color as its hex string.
func (c *Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ToHex())
}

// UnmarshalJSON decodes a hex or named color string, an [r, g, b, a?] array
// or an {"r","g","b","a"?} object. Values that decode but are not colors
// yield the fallback color, like From. Malformed JSON is an error.
func (c *Color) UnmarshalJSON(data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*c = Color{ch: Parse(v)}
	return nil
}

// DecodeJSON decodes a JSON color value into a form accepted by Type,
// Parse and From. Objects with numeric r, g and b become Components.
func DecodeJSON(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode color: %w", err)
	}
	if obj, ok := raw.(map[string]any); ok {
		return componentsFromMap(obj), nil
	}
	return raw, nil
}

// MarshalText encodes the color as its hex string.
func (c *Color) MarshalText() ([]byte, error) {
	return []byte(c.ToHex()), nil
}

// UnmarshalText parses a hex or named color string.
func (c *Color) UnmarshalText(text []byte) error {
	*c = Color{ch: Parse(string(text))}
	return nil
}

// componentsFromMap reads a decoded JSON object as a channel object. Objects
// missing a numeric r, g or b are returned unchanged so they fall back.
func componentsFromMap(obj map[string]any) any {
	r, okR := obj["r"].(float64)
	g, okG := obj["g"].(float64)
	b, okB := obj["b"].(float64)
	if !okR || !okG || !okB {
		return obj
	}
	comp := Components{R: r, G: g, B: b}
	if a, ok := obj["a"].(float64); ok {
		comp.A = Alpha(a)
	}
	return comp
}
