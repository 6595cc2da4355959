// Package config loads the optional color-tools-mcp.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/color-tools-mcp/pkg/colors"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "COLOR_MCP_CONFIG"
	EnvLogLevel   = "COLOR_MCP_LOG_LEVEL"
)

// Config represents the server configuration.
type Config struct {
	BrightnessThreshold float64       `yaml:"brightness_threshold"`
	Swatch              SwatchConfig  `yaml:"swatch"`
	Palette             PaletteConfig `yaml:"palette"`
	LogLevel            string        `yaml:"log_level,omitempty"`
}

// SwatchConfig holds the default swatch size used when a request omits one.
type SwatchConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaletteConfig holds dominant color extraction defaults.
type PaletteConfig struct {
	Count    int `yaml:"count"`
	Quantize int `yaml:"quantize"`
	MaxSide  int `yaml:"max_side"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BrightnessThreshold: colors.DefaultBrightnessThreshold,
		Swatch:              SwatchConfig{Width: 64, Height: 64},
		Palette:             PaletteConfig{Count: 5, Quantize: 16, MaxSide: 256},
		LogLevel:            "info",
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// LoadOptional reads the file at path if present. A missing file, or an
// empty path, yields the defaults. Fields absent from the file keep their
// default values.
func LoadOptional(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the file named by COLOR_MCP_CONFIG and applies the
// COLOR_MCP_LOG_LEVEL override.
func Load() (*Config, error) {
	cfg, err := LoadOptional(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, err
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		cfg.LogLevel = level
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.BrightnessThreshold < 0 || c.BrightnessThreshold > 1 {
		return fmt.Errorf("brightness_threshold must be within 0-1 (got %v)", c.BrightnessThreshold)
	}
	if c.Swatch.Width <= 0 || c.Swatch.Height <= 0 {
		return fmt.Errorf("swatch size must be positive (got %dx%d)", c.Swatch.Width, c.Swatch.Height)
	}
	if c.Palette.Count <= 0 {
		return fmt.Errorf("palette.count must be positive (got %d)", c.Palette.Count)
	}
	if c.Palette.Quantize <= 0 || c.Palette.Quantize > 128 {
		return fmt.Errorf("palette.quantize must be within 1-128 (got %d)", c.Palette.Quantize)
	}
	if c.Palette.MaxSide <= 0 {
		return fmt.Errorf("palette.max_side must be positive (got %d)", c.Palette.MaxSide)
	}
	return nil
}
