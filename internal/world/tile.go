// Package world provides the overworld grid and discovery tracking.
package world

import "github.com/samdwyer/wayfarer/internal/terrain"

// Tile is the state of a single overworld cell.
type Tile struct {
	Type       terrain.Type
	Discovered bool
}

// IsTraversable returns true if the tile can be walked on.
func (t Tile) IsTraversable() bool {
	return t.Type.IsTraversable()
}
