// Package config handles generator configuration loading and management.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds all generator settings.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Render  RenderConfig  `yaml:"render"`
	Noise   NoiseConfig   `yaml:"noise"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapConfig holds grid dimensions and the world seed.
type MapConfig struct {
	Size string `yaml:"size"` // "WxH", e.g. "120x60"
	Seed int64  `yaml:"seed"`
}

// RenderConfig holds renderer selection and sprite output settings.
type RenderConfig struct {
	Renderer string `yaml:"renderer"` // "ascii" or "sprite"
	Tiles    string `yaml:"tiles"`    // sprite sheet path
	TileSize int    `yaml:"tile_size"`
	Out      string `yaml:"out"` // output image path for sprite mode
}

// NoiseConfig holds noise backend selection.
type NoiseConfig struct {
	Algorithm string `yaml:"algorithm"` // "perlin" or "simplex"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Size: "100x60",
			Seed: 0,
		},
		Render: RenderConfig{
			Renderer: "ascii",
			Tiles:    "",
			TileSize: 16,
			Out:      "map.png",
		},
		Noise: NoiseConfig{
			Algorithm: "perlin",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings the core cannot default around.
func (c *Config) Validate() error {
	switch c.Render.Renderer {
	case "ascii", "sprite":
	default:
		return fmt.Errorf("unknown renderer %q (want ascii or sprite)", c.Render.Renderer)
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.Render.TileSize)
	}
	if _, _, err := ParseSize(c.Map.Size); err != nil {
		return err
	}
	return nil
}

// ParseSize parses a "WxH" size string into positive dimensions.
func ParseSize(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size %q is not of the form WxH", s)
	}
	width, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	height, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return width, height, nil
}
