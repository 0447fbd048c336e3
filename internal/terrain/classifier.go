package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/samdwyer/wayfarer/internal/noise"
)

// Thresholds are the band edges used by the classifier. All values are in the
// [-1, 1] range of noise samples. A value equal to an edge belongs to the band above it.
type Thresholds struct {
	WaterLevel     float64 `yaml:"water_level"`
	HillLevel      float64 `yaml:"hill_level"`
	MountainLevel  float64 `yaml:"mountain_level"`
	RuggedHills    float64 `yaml:"rugged_hills"`
	RuggedMountain float64 `yaml:"rugged_mountain"`
	DesertMoisture float64 `yaml:"desert_moisture"`
	ForestMoisture float64 `yaml:"forest_moisture"`
	SwampMoisture  float64 `yaml:"swamp_moisture"`

	SnowTemperature   float64 `yaml:"snow_temperature"`   // Colder land is snow
	JungleTemperature float64 `yaml:"jungle_temperature"` // Hotter land at forest moisture or above is jungle
}

// DefaultThresholds returns the standard band edges.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WaterLevel:     -0.12,
		HillLevel:      0.35,
		MountainLevel:  0.55,
		RuggedHills:    0.45,
		RuggedMountain: 0.75,
		DesertMoisture: -0.35,
		ForestMoisture: 0.05,
		SwampMoisture:  0.45,

		SnowTemperature:   -0.5,
		JungleTemperature: 0.3,
	}
}

// Validate checks that the bands are ordered.
func (t Thresholds) Validate() error {
	var errs []error
	if t.WaterLevel >= t.HillLevel {
		errs = append(errs, fmt.Errorf("water_level (%v) must be below hill_level (%v)", t.WaterLevel, t.HillLevel))
	}
	if t.HillLevel > t.MountainLevel {
		errs = append(errs, fmt.Errorf("hill_level (%v) must not exceed mountain_level (%v)", t.HillLevel, t.MountainLevel))
	}
	if t.RuggedHills > t.RuggedMountain {
		errs = append(errs, fmt.Errorf("rugged_hills (%v) must not exceed rugged_mountain (%v)", t.RuggedHills, t.RuggedMountain))
	}
	if t.DesertMoisture > t.ForestMoisture || t.ForestMoisture > t.SwampMoisture {
		errs = append(errs, fmt.Errorf("moisture bands must be ordered desert <= forest <= swamp, got %v, %v, %v",
			t.DesertMoisture, t.ForestMoisture, t.SwampMoisture))
	}
	if t.SnowTemperature >= t.JungleTemperature {
		errs = append(errs, fmt.Errorf("snow_temperature (%v) must be below jungle_temperature (%v)",
			t.SnowTemperature, t.JungleTemperature))
	}
	return errors.Join(errs...)
}

// Classifier maps noise samples to terrain types.
type Classifier struct {
	t Thresholds
}

// NewClassifier creates a classifier with the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify returns the terrain for a sample. Every input, including NaN, maps
// to exactly one type.
func (c *Classifier) Classify(s noise.Sample) Type {
	h := finite(s.Height)
	r := finite(s.Ruggedness)
	m := finite(s.Moisture)
	temp := finite(s.Temperature)

	switch {
	case h < c.t.WaterLevel:
		return Water
	case h >= c.t.MountainLevel || r >= c.t.RuggedMountain:
		return Mountain
	case h >= c.t.HillLevel || r >= c.t.RuggedHills:
		return Hills
	case temp < c.t.SnowTemperature:
		return Snow
	case m < c.t.DesertMoisture:
		return Desert
	case m < c.t.ForestMoisture:
		return Plains
	case temp >= c.t.JungleTemperature:
		return Jungle
	case m < c.t.SwampMoisture:
		return Forest
	default:
		return Swamp
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
