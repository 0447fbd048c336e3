package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/samdwyer/wayfarer/internal/world"
)

// ErrOutOfBounds is returned for coordinates outside the scene.
var ErrOutOfBounds = errors.New("scene coordinate out of bounds")

const (
	minLeafSize  = 5  // Minimum BSP lot size before stopping split
	minHalfSize  = 6  // Scene edge is between 2*minHalfSize ...
	maxHalfSize  = 16 // ... and 2*maxHalfSize tiles
	walledAbove  = 50 // Settlements larger than this get a wall
	featureReach = 3  // Max offset of landmarks from the centre
)

// Scene is an immutable local map belonging to one point of interest.
type Scene struct {
	Descriptor Descriptor
	Layout     Layout
	Width      int
	Height     int
	Spawn      world.Coord  // Where the player appears on entry
	Lots       []world.Rect // Building plots, in generation order
	Walled     bool
	tiles      []TileType
}

// Generate builds the scene for a settlement. The result depends only on seed and d.
// The layout follows the species; ruined and abandoned settlements are decayed
// afterwards. Every walkable tile is reachable from Spawn.
func Generate(seed int64, d Descriptor) *Scene {
	rng := rand.New(rand.NewSource(seed))

	half := int(math.Sqrt(float64(max(d.Size, 0)))) + rng.Intn(5) - 2
	half = min(max(half, minHalfSize), maxHalfSize)

	layout := LayoutFor(d.Species)
	s := &Scene{
		Descriptor: d,
		Layout:     layout,
		Width:      half * 2,
		Height:     half * 2,
		Walled:     layout == LayoutTown && d.Size > walledAbove,
	}
	s.tiles = make([]TileType, s.Width*s.Height)

	b := builder{scene: s, rng: rng}
	switch layout {
	case LayoutTown:
		b.buildTown()
	case LayoutGrove:
		b.buildGrove()
	default:
		b.buildHamlet()
	}
	if d.Decayed() {
		b.decay()
	}

	s.Spawn = s.nearestWalkable(s.Bounds().Center())
	b.connect(s.Spawn)
	return s
}

// Bounds returns the scene's coordinate space.
func (s *Scene) Bounds() world.Rect {
	return world.Rect{Width: s.Width, Height: s.Height}
}

// TileAt returns the tile at c.
func (s *Scene) TileAt(c world.Coord) (TileType, error) {
	if !s.Bounds().Contains(c) {
		return Ground, fmt.Errorf("scene tile (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
	}
	return s.tiles[s.index(c)], nil
}

// IsWalkable returns true if c is inside the scene and can be walked on.
func (s *Scene) IsWalkable(c world.Coord) bool {
	t, err := s.TileAt(c)
	return err == nil && t.IsWalkable()
}

func (s *Scene) index(c world.Coord) int {
	return c.Y*s.Width + c.X
}

func (s *Scene) set(c world.Coord, t TileType) {
	if s.Bounds().Contains(c) {
		s.tiles[s.index(c)] = t
	}
}

func (s *Scene) get(c world.Coord) TileType {
	return s.tiles[s.index(c)]
}

// buildWall rings the map edge with wall, leaving a road gate in each side.
func (s *Scene) buildWall() {
	for x := 0; x < s.Width; x++ {
		s.set(world.C(x, 0), Wall)
		s.set(world.C(x, s.Height-1), Wall)
	}
	for y := 0; y < s.Height; y++ {
		s.set(world.C(0, y), Wall)
		s.set(world.C(s.Width-1, y), Wall)
	}
	s.set(world.C(s.Width/2, 0), Road)
	s.set(world.C(s.Width/2, s.Height-1), Road)
	s.set(world.C(0, s.Height/2), Road)
	s.set(world.C(s.Width-1, s.Height/2), Road)
}

// nearestWalkable returns the walkable tile closest to c, scanning rings of
// growing radius.
func (s *Scene) nearestWalkable(c world.Coord) world.Coord {
	for r := 0; r < max(s.Width, s.Height); r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if p := c.Add(dx, dy); c.Chebyshev(p) == r && s.IsWalkable(p) {
					return p
				}
			}
		}
	}
	return world.C(0, 0)
}
