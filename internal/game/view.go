package game

import (
	"github.com/samdwyer/wayfarer/internal/poi"
	"github.com/samdwyer/wayfarer/internal/scene"
	"github.com/samdwyer/wayfarer/internal/terrain"
	"github.com/samdwyer/wayfarer/internal/world"
)

// Landmark is a discovered point of interest as shown on the map.
type Landmark struct {
	Location world.Coord
	Name     string
	Species  string
}

// View is a read-only snapshot of everything the renderer needs for one frame.
// It shares no mutable state with the game.
type View struct {
	Mode     Mode
	Position world.Coord
	Terrain  terrain.Type // Terrain under the player

	Viewport  world.Window  // Square around the player
	Overview  *world.Window // Whole world, only in ModeWorldMap
	Landmarks []Landmark

	Scene  *scene.Scene // Only in ModeInsidePOI
	Local  world.Coord
	Inside *poi.PointOfInterest

	Message    string
	Discovered int
	Total      int
}

// View captures the current state for rendering.
func (g *Game) View() View {
	v := View{
		Mode:       g.player.Mode,
		Position:   g.player.Position,
		Viewport:   g.grid.Window(g.player.Position, g.cfg.Discovery.ViewRadius),
		Message:    g.message,
		Discovered: g.grid.DiscoveredCount(),
		Total:      g.grid.Len(),
	}
	if tile, err := g.grid.TileAt(g.player.Position); err == nil {
		v.Terrain = tile.Type
	}

	for _, p := range g.pois.All() {
		if g.grid.IsDiscovered(p.Location) {
			v.Landmarks = append(v.Landmarks, Landmark{
				Location: p.Location,
				Name:     p.Name(),
				Species:  p.Scene.Descriptor.Species,
			})
		}
	}

	switch g.player.Mode {
	case ModeWorldMap:
		overview := g.grid.Overview()
		v.Overview = &overview
	case ModeInsidePOI:
		v.Inside = g.player.Inside
		v.Scene = g.player.Inside.Scene
		v.Local = g.player.Local
	}
	return v
}
