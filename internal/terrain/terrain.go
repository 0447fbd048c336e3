// Package terrain classifies noise samples into discrete tile types.
package terrain

import "fmt"

// Type is the terrain of a single overworld tile.
type Type uint8

const (
	Water Type = iota
	Plains
	Forest
	Mountain
	Desert
	Hills
	Swamp
	Snow
	Jungle
)

// All lists every terrain type in declaration order.
var All = []Type{Water, Plains, Forest, Mountain, Desert, Hills, Swamp, Snow, Jungle}

// String returns a human-readable terrain name.
func (t Type) String() string {
	switch t {
	case Water:
		return "Water"
	case Plains:
		return "Plains"
	case Forest:
		return "Forest"
	case Mountain:
		return "Mountain"
	case Desert:
		return "Desert"
	case Hills:
		return "Hills"
	case Swamp:
		return "Swamp"
	case Snow:
		return "Snow"
	case Jungle:
		return "Jungle"
	default:
		return "Unknown"
	}
}

// ID returns the identifier used in data files.
func (t Type) ID() string {
	switch t {
	case Water:
		return "water"
	case Plains:
		return "plains"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	case Desert:
		return "desert"
	case Hills:
		return "hills"
	case Swamp:
		return "swamp"
	case Snow:
		return "snow"
	case Jungle:
		return "jungle"
	default:
		return "unknown"
	}
}

// ParseType resolves a data-file identifier to a terrain type.
func ParseType(id string) (Type, error) {
	for _, t := range All {
		if t.ID() == id {
			return t, nil
		}
	}
	return Water, fmt.Errorf("unknown terrain %q", id)
}

// IsTraversable reports whether the player may stand on the terrain.
func (t Type) IsTraversable() bool {
	return t != Water && t != Mountain
}
