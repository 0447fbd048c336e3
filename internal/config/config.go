// Package config provides YAML-based configuration for world generation and play.
package config

import (
	"errors"
	"fmt"

	"github.com/samdwyer/wayfarer/internal/noise"
	"github.com/samdwyer/wayfarer/internal/terrain"
	"github.com/samdwyer/wayfarer/internal/world"
)

const maxWorldEdge = 4096

// Config is the complete game configuration.
type Config struct {
	World     WorldConfig        `yaml:"world"`
	Noise     noise.Config       `yaml:"noise"`
	Terrain   terrain.Thresholds `yaml:"terrain"`
	Discovery DiscoveryConfig    `yaml:"discovery"`
	POI       POIConfig          `yaml:"poi"`
}

// WorldConfig defines the size and identity of the overworld.
type WorldConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`  // 0 = derive from the clock at startup
	Spawn  *Point `yaml:"spawn"` // nil = world centre
}

// Point is a coordinate in configuration files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Coord converts the point to a world coordinate.
func (p Point) Coord() world.Coord {
	return world.C(p.X, p.Y)
}

// DiscoveryConfig defines fog of war and the camera.
type DiscoveryConfig struct {
	Radius     int    `yaml:"radius"`      // Tiles revealed around the player after each move
	Metric     string `yaml:"metric"`      // "chebyshev" (square) or "euclidean" (circle)
	ViewRadius int    `yaml:"view_radius"` // Half-size of the rendered viewport
}

// POIConfig defines point-of-interest placement.
type POIConfig struct {
	Count       int `yaml:"count"`
	MinDistance int `yaml:"min_distance"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  128,
			Height: 128,
		},
		Noise:   noise.DefaultConfig(0),
		Terrain: terrain.DefaultThresholds(),
		Discovery: DiscoveryConfig{
			Radius:     4,
			Metric:     world.MetricChebyshev.String(),
			ViewRadius: 10,
		},
		POI: POIConfig{
			Count:       24,
			MinDistance: 8,
		},
	}
}

// NoiseConfig returns the noise parameters bound to the world seed and height.
func (c Config) NoiseConfig() noise.Config {
	n := c.Noise
	n.Seed = c.World.Seed
	n.Rows = c.World.Height
	return n
}

// Bounds returns the overworld area.
func (c Config) Bounds() world.Rect {
	return world.Bounds(c.World.Width, c.World.Height)
}

// SpawnHint returns the preferred spawn coordinate.
func (c Config) SpawnHint() world.Coord {
	if c.World.Spawn != nil {
		return c.World.Spawn.Coord()
	}
	return c.Bounds().Center()
}

// Metric returns the parsed discovery metric.
func (c Config) Metric() world.Metric {
	m, _ := world.ParseMetric(c.Discovery.Metric)
	return m
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.Width > maxWorldEdge || c.World.Height > maxWorldEdge {
		errs = append(errs, fmt.Errorf("world size must not exceed %d, got %dx%d", maxWorldEdge, c.World.Width, c.World.Height))
	}
	if sp := c.World.Spawn; sp != nil && !c.Bounds().Contains(sp.Coord()) {
		errs = append(errs, fmt.Errorf("spawn (%d,%d) is outside the world", sp.X, sp.Y))
	}
	if err := c.Noise.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Terrain.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Discovery.Radius < 0 || c.Discovery.Radius > maxWorldEdge {
		errs = append(errs, fmt.Errorf("discovery radius must be in [0, %d], got %d", maxWorldEdge, c.Discovery.Radius))
	}
	if _, err := world.ParseMetric(c.Discovery.Metric); err != nil {
		errs = append(errs, err)
	}
	if c.Discovery.ViewRadius < 1 || c.Discovery.ViewRadius > maxWorldEdge {
		errs = append(errs, fmt.Errorf("view radius must be in [1, %d], got %d", maxWorldEdge, c.Discovery.ViewRadius))
	}
	if c.POI.Count < 0 {
		errs = append(errs, fmt.Errorf("poi count must not be negative, got %d", c.POI.Count))
	}
	if c.POI.MinDistance < 0 {
		errs = append(errs, fmt.Errorf("poi min_distance must not be negative, got %d", c.POI.MinDistance))
	}

	return errors.Join(errs...)
}
