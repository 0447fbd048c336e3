// Package noise provides the deterministic noise field that drives world generation.
package noise

import (
	"errors"
	"fmt"
)

// Config describes a noise field. Identical configs always produce identical fields.
type Config struct {
	Seed        int64   `yaml:"-"`           // World identity, taken from the world section
	Scale       float64 `yaml:"scale"`       // Feature size in tiles
	Octaves     int     `yaml:"octaves"`     // Detail levels
	Persistence float64 `yaml:"persistence"` // Amplitude falloff per octave
	Lacunarity  float64 `yaml:"lacunarity"`  // Frequency growth per octave
	RidgeWeight float64 `yaml:"ridge_weight"`
	RidgeGain   float64 `yaml:"ridge_gain"`

	// Temperature falls from the middle row towards the top and bottom edges.
	LatitudeWeight float64 `yaml:"latitude_weight"` // Share of latitude in temperature; the rest is noise
	Rows           int     `yaml:"-"`               // World height; zero disables the latitude gradient
}

// DefaultConfig returns the field used for a standard overworld.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:        seed,
		Scale:       32,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		RidgeWeight: 0.35,
		RidgeGain:   2.0,

		LatitudeWeight: 0.7,
	}
}

// Validate reports every out-of-range parameter.
func (c Config) Validate() error {
	var errs []error
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("noise scale must be positive, got %v", c.Scale))
	}
	if c.Octaves < 1 {
		errs = append(errs, fmt.Errorf("noise octaves must be at least 1, got %d", c.Octaves))
	}
	if c.Persistence <= 0 || c.Persistence > 1 {
		errs = append(errs, fmt.Errorf("noise persistence must be in (0, 1], got %v", c.Persistence))
	}
	if c.Lacunarity < 1 {
		errs = append(errs, fmt.Errorf("noise lacunarity must be at least 1, got %v", c.Lacunarity))
	}
	if c.RidgeWeight < 0 || c.RidgeWeight > 1 {
		errs = append(errs, fmt.Errorf("noise ridge_weight must be in [0, 1], got %v", c.RidgeWeight))
	}
	if c.RidgeGain < 0 {
		errs = append(errs, fmt.Errorf("noise ridge_gain must not be negative, got %v", c.RidgeGain))
	}
	if c.LatitudeWeight < 0 || c.LatitudeWeight > 1 {
		errs = append(errs, fmt.Errorf("noise latitude_weight must be in [0, 1], got %v", c.LatitudeWeight))
	}
	if c.Rows < 0 {
		errs = append(errs, fmt.Errorf("noise rows must not be negative, got %d", c.Rows))
	}
	return errors.Join(errs...)
}
