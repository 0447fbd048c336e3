// Package game provides the mode state machine that owns the player.
package game

import (
	"github.com/samdwyer/wayfarer/internal/poi"
	"github.com/samdwyer/wayfarer/internal/world"
)

// Mode is the interaction context that decides which intents are valid.
type Mode int

const (
	// ModeOverworld is the default mode where the player walks the world grid.
	ModeOverworld Mode = iota
	// ModeWorldMap shows the discovered world and accepts only the toggle.
	ModeWorldMap
	// ModeInsidePOI is active while the player walks a settlement scene.
	ModeInsidePOI
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeOverworld:
		return "overworld"
	case ModeWorldMap:
		return "world_map"
	case ModeInsidePOI:
		return "inside_poi"
	default:
		return "unknown"
	}
}

// PlayerState is where the player is and what they are doing.
// Position never changes while Mode is ModeInsidePOI.
type PlayerState struct {
	Position world.Coord          // Overworld coordinate
	Mode     Mode                 // Active interaction context
	Local    world.Coord          // Scene coordinate, valid only inside a POI
	Inside   *poi.PointOfInterest // Non-nil iff Mode is ModeInsidePOI
}
