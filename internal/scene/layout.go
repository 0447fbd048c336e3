package scene

import (
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/samdwyer/wayfarer/internal/world"
)

// Layout is the building style of a settlement.
type Layout uint8

const (
	// LayoutHamlet is a road cross with huts along the roads.
	LayoutHamlet Layout = iota
	// LayoutTown is a planned town of BSP lots around a road cross, walled when large.
	LayoutTown
	// LayoutGrove is a forest settlement of winding paths and treehouse clusters.
	LayoutGrove
)

const (
	pathScale     = 0.1  // OpenSimplex frequency for grove paths
	pathWidth     = 0.12 // Noise band around zero that becomes path
	clusterRadius = 2    // Treehouse clusters cover a (2r+1)² square
	shrineSpacing = 5    // Minimum Chebyshev distance between shrines and other features
)

// LayoutFor returns the layout a species builds.
func LayoutFor(species string) Layout {
	switch species {
	case "human":
		return LayoutTown
	case "elf":
		return LayoutGrove
	default:
		return LayoutHamlet
	}
}

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutHamlet:
		return "hamlet"
	case LayoutTown:
		return "town"
	case LayoutGrove:
		return "grove"
	default:
		return "unknown"
	}
}

type builder struct {
	scene *Scene
	rng   *rand.Rand
}

func (b *builder) buildTown() {
	s := b.scene
	interior := s.Bounds()
	if s.Walled {
		s.buildWall()
		interior = world.Rect{X: 1, Y: 1, Width: s.Width - 2, Height: s.Height - 2}
	}

	root := &lotNode{area: interior}
	b.splitNode(root)
	b.buildLots(root)
	b.roadCross(interior)
	b.placeFeatures()
}

func (b *builder) buildHamlet() {
	s := b.scene
	b.roadCross(s.Bounds())
	for n := 2 + b.rng.Intn(3); n > 0; n-- {
		y := 0
		if b.rng.Intn(2) == 0 {
			y = s.Height - 1
		}
		b.branchRoad(world.C(b.rng.Intn(s.Width), y))
	}
	b.placeHuts()
	b.placeFeatures()
}

func (b *builder) buildGrove() {
	s := b.scene
	paths := opensimplex.New(b.rng.Int63())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if math.Abs(paths.Eval2(float64(x)*pathScale, float64(y)*pathScale)) < pathWidth {
				s.set(world.C(x, y), Path)
			}
		}
	}

	b.placeTreehouses()
	b.placeGroveFeatures()
}

// roadCross paves the middle row and column of area.
func (b *builder) roadCross(area world.Rect) {
	c := area.Center()
	for x := area.X; x < area.X+area.Width; x++ {
		b.scene.set(world.C(x, c.Y), Road)
	}
	for y := area.Y; y < area.Y+area.Height; y++ {
		b.scene.set(world.C(c.X, y), Road)
	}
}

// branchRoad wanders from start to the centre, preferring horizontal steps.
func (b *builder) branchRoad(start world.Coord) {
	target := b.scene.Bounds().Center()
	c := start
	for c != target {
		b.scene.set(c, Road)
		stepX := c.X != target.X && (c.Y == target.Y || b.rng.Intn(10) < 7)
		if stepX {
			c.X += sign(target.X - c.X)
		} else {
			c.Y += sign(target.Y - c.Y)
		}
	}
}

// placeHuts raises a hut on some of the ground tiles beside a road.
func (b *builder) placeHuts() {
	s := b.scene
	for y := 1; y < s.Height-1; y++ {
		for x := 1; x < s.Width-1; x++ {
			c := world.C(x, y)
			if s.get(c) == Ground && s.besideRoad(c) && b.rng.Intn(10) < 3 {
				s.set(c, Building)
			}
		}
	}
}

// placeTreehouses scatters three to five clusters that do not overlap.
func (b *builder) placeTreehouses() {
	s := b.scene
	side := 2*clusterRadius + 1
	var clusters []world.Rect
	for want, tries := 3+b.rng.Intn(3), 0; len(clusters) < want && tries < 20; tries++ {
		area := world.Rect{
			X:      b.rng.Intn(s.Width - side + 1),
			Y:      b.rng.Intn(s.Height - side + 1),
			Width:  side,
			Height: side,
		}
		if overlapsAny(area, clusters) {
			continue
		}
		clusters = append(clusters, area)

		for n := 3 + b.rng.Intn(4); n > 0; n-- {
			s.set(world.C(area.X+b.rng.Intn(side), area.Y+b.rng.Intn(side)), Treehouse)
		}
	}
	s.Lots = clusters
}

// placeGroveFeatures puts a shrine at the heart of the grove, then gardens and
// more shrines in quiet spots.
func (b *builder) placeGroveFeatures() {
	s := b.scene
	var shrines []world.Coord
	if p, ok := b.nearestOpen(s.Bounds().Center()); ok {
		s.set(p, Shrine)
		shrines = append(shrines, p)
	}

	for n := 3 + b.rng.Intn(4); n > 0; n-- {
		c := world.C(b.rng.Intn(s.Width), b.rng.Intn(s.Height))
		if s.get(c).isOpen() {
			s.set(c, Garden)
		}
	}

	for n := 2 + b.rng.Intn(3); n > 0; n-- {
		c := world.C(b.rng.Intn(s.Width), b.rng.Intn(s.Height))
		if s.get(c).isOpen() && !nearAny(c, shrines, shrineSpacing) {
			s.set(c, Shrine)
			shrines = append(shrines, c)
		}
	}
}

// decay turns a settlement into ruins. Markets and taverns always fall; other
// structures crumble at random.
func (b *builder) decay() {
	s := b.scene
	for i, t := range s.tiles {
		switch t {
		case Market, Tavern:
			s.tiles[i] = Rubble
		case Building, Treehouse:
			if b.rng.Intn(3) > 0 {
				s.tiles[i] = Rubble
			}
		case Wall:
			if b.rng.Intn(10) < 3 {
				s.tiles[i] = Rubble
			}
		case Road, Path:
			if b.rng.Intn(10) < 3 {
				s.tiles[i] = Ground
			}
		}
	}
}

// connect carves a corridor from every walkable pocket that spawn cannot reach.
func (b *builder) connect(spawn world.Coord) {
	s := b.scene
	reached := s.reachable(spawn)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := world.C(x, y)
			if s.IsWalkable(c) && !reached[s.index(c)] {
				b.carve(c, spawn)
				reached = s.reachable(spawn)
			}
		}
	}
}

// carve opens an L-shaped corridor from c to target. Pockets on the top or
// bottom edge leave vertically so they do not run along a wall.
func (b *builder) carve(c, target world.Coord) {
	s := b.scene
	open := Ground
	if s.Layout == LayoutGrove {
		open = Path
	}
	dig := func(p world.Coord) {
		if !s.IsWalkable(p) {
			s.set(p, open)
		}
	}

	verticalFirst := c.Y == 0 || c.Y == s.Height-1
	for c != target {
		if (verticalFirst && c.Y != target.Y) || c.X == target.X {
			c.Y += sign(target.Y - c.Y)
		} else {
			c.X += sign(target.X - c.X)
		}
		dig(c)
	}
}

// reachable flood-fills the walkable tiles connected to start, indexed like tiles.
func (s *Scene) reachable(start world.Coord) []bool {
	seen := make([]bool, len(s.tiles))
	if !s.IsWalkable(start) {
		return seen
	}
	seen[s.index(start)] = true
	queue := []world.Coord{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range []world.Coord{c.Add(0, -1), c.Add(0, 1), c.Add(-1, 0), c.Add(1, 0)} {
			if s.IsWalkable(n) && !seen[s.index(n)] {
				seen[s.index(n)] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// besideRoad reports whether any of the eight neighbours of c is road.
func (s *Scene) besideRoad(c world.Coord) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := c.Add(dx, dy)
			if s.Bounds().Contains(p) && s.get(p) == Road {
				return true
			}
		}
	}
	return false
}

func overlapsAny(r world.Rect, others []world.Rect) bool {
	for _, o := range others {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

func nearAny(c world.Coord, others []world.Coord, dist int) bool {
	for _, o := range others {
		if c.Chebyshev(o) <= dist {
			return true
		}
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
