package poi

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/scene"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/world"
)

// placementSalt separates the placement stream from other uses of the world seed.
const placementSalt int64 = 0x5eed_0f_901

// PlaceOptions control POI selection.
type PlaceOptions struct {
	Seed        int64
	Count       int
	MinDistance int         // Minimum Euclidean distance between any two POIs
	Spawn       world.Coord // Never used as a POI location
}

// Registry holds the points of interest of one world.
type Registry struct {
	byCoord map[world.Coord]*PointOfInterest
	all     []*PointOfInterest
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byCoord: make(map[world.Coord]*PointOfInterest)}
}

// Place selects up to opts.Count traversable locations at least
// opts.MinDistance apart, excluding the spawn, and builds a settlement for each.
// Candidates are visited in a seeded shuffle, so the result depends only on the
// grid and the options. Finding fewer locations than requested is not an error.
func Place(ctx context.Context, grid *world.Grid, tables *gamedata.SettlementTables, opts PlaceOptions) (*Registry, error) {
	tracer := telemetry.Tracer("poi")
	_, span := tracer.Start(ctx, "poi.place")
	defer span.End()

	if opts.Count < 0 {
		return nil, fmt.Errorf("poi count must not be negative, got %d", opts.Count)
	}

	rng := rand.New(rand.NewSource(opts.Seed ^ placementSalt))
	reg := NewRegistry()

	candidates := make([]world.Coord, 0, grid.Len())
	b := grid.Bounds()
	for y := b.Y; y < b.Y+b.Height; y++ {
		for x := b.X; x < b.X+b.Width; x++ {
			c := world.C(x, y)
			if c != opts.Spawn && grid.IsTraversable(c) {
				candidates = append(candidates, c)
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	minSq := opts.MinDistance * opts.MinDistance
	for _, c := range candidates {
		if reg.Len() >= opts.Count {
			break
		}
		if !reg.farFromAll(c, minSq) {
			continue
		}
		tile, err := grid.TileAt(c)
		if err != nil {
			return nil, err
		}
		reg.add(&PointOfInterest{
			ID:       poiID(opts.Seed, c),
			Location: c,
			Terrain:  tile.Type,
			Scene:    scene.Generate(sceneSeed(opts.Seed, c), describe(rng, tables, tile)),
		})
	}

	span.SetAttributes(
		attribute.Int("poi.requested", opts.Count),
		attribute.Int("poi.placed", reg.Len()),
		attribute.Int("poi.candidates", len(candidates)),
		attribute.Int("poi.min_distance", opts.MinDistance),
	)
	return reg, nil
}

// describe rolls the settlement that lives on a tile.
func describe(rng *rand.Rand, tables *gamedata.SettlementTables, tile world.Tile) scene.Descriptor {
	species := tables.PickSpecies(rng, tile.Type)
	state := tables.PickState(rng)
	industry := tables.PickIndustry(rng, tile.Type)
	return scene.Descriptor{
		Name:       tables.Name(rng),
		Species:    species.ID,
		SpeciesTag: species.Name,
		State:      state.Name,
		StateID:    state.ID,
		Governance: tables.PickGovernance(rng).Name,
		Industry:   industry.ID,
		Activity:   industry.Description,
		Size:       tables.PickSize(rng, state),
	}
}

func (r *Registry) farFromAll(c world.Coord, minSq int) bool {
	for _, p := range r.all {
		if p.Location.DistSq(c) < minSq {
			return false
		}
	}
	return true
}

func (r *Registry) add(p *PointOfInterest) {
	r.byCoord[p.Location] = p
	r.all = append(r.all, p)
}

// At returns the point of interest at c, if any.
func (r *Registry) At(c world.Coord) (*PointOfInterest, bool) {
	p, ok := r.byCoord[c]
	return p, ok
}

// Lookup returns the point of interest at c or ErrNotAPOI.
func (r *Registry) Lookup(c world.Coord) (*PointOfInterest, error) {
	if p, ok := r.byCoord[c]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("(%d,%d): %w", c.X, c.Y, ErrNotAPOI)
}

// All returns every point of interest in placement order.
func (r *Registry) All() []*PointOfInterest {
	return r.all
}

// Len returns the number of registered points of interest.
func (r *Registry) Len() int {
	return len(r.all)
}
