package poi

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/noise"
	"github.com/samdwyer/wayfarer/internal/scene"
	"github.com/samdwyer/wayfarer/internal/terrain"
	"github.com/samdwyer/wayfarer/internal/world"
)

func newTestGrid(t *testing.T, seed int64, size int) *world.Grid {
	t.Helper()
	cfg := noise.DefaultConfig(seed)
	cfg.Scale = 12
	field, err := noise.New(cfg)
	if err != nil {
		t.Fatalf("noise.New() error = %v", err)
	}
	g, err := world.Generate(context.Background(), world.Bounds(size, size), field, terrain.NewClassifier(terrain.DefaultThresholds()))
	if err != nil {
		t.Fatalf("world.Generate() error = %v", err)
	}
	return g
}

func loadTables(t *testing.T) *gamedata.SettlementTables {
	t.Helper()
	tables, err := gamedata.LoadSettlementTables()
	if err != nil {
		t.Fatalf("LoadSettlementTables() error = %v", err)
	}
	return tables
}

func TestPlaceRules(t *testing.T) {
	grid := newTestGrid(t, 42, 64)
	spawn, ok := grid.NearestTraversable(grid.Bounds().Center(), 64)
	if !ok {
		t.Fatal("no traversable tile in test grid")
	}
	opts := PlaceOptions{Seed: 42, Count: 12, MinDistance: 6, Spawn: spawn}

	reg, err := Place(context.Background(), grid, loadTables(t), opts)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if reg.Len() == 0 || reg.Len() > opts.Count {
		t.Fatalf("Len() = %d, want 1..%d", reg.Len(), opts.Count)
	}

	all := reg.All()
	for i, p := range all {
		if !grid.IsTraversable(p.Location) {
			t.Errorf("POI %s on non-traversable tile", p)
		}
		if p.Location == spawn {
			t.Errorf("POI %s placed on spawn", p)
		}
		if tile, _ := grid.TileAt(p.Location); tile.Type != p.Terrain {
			t.Errorf("POI %s Terrain = %v, want %v", p, p.Terrain, tile.Type)
		}
		if p.Scene == nil || p.Name() == "" {
			t.Fatalf("POI %s has no scene or name", p)
		}
		d := p.Scene.Descriptor
		if d.StateID == "" || d.State == "" {
			t.Errorf("POI %s has no state: %+v", p, d)
		}
		if want := scene.LayoutFor(d.Species); p.Scene.Layout != want {
			t.Errorf("POI %s (%s) Layout = %v, want %v", p, d.Species, p.Scene.Layout, want)
		}
		for _, q := range all[i+1:] {
			if p.Location.DistSq(q.Location) < opts.MinDistance*opts.MinDistance {
				t.Errorf("POIs %s and %s closer than %d", p, q, opts.MinDistance)
			}
			if p.ID == q.ID {
				t.Errorf("POIs %s and %s share ID %s", p, q, p.ID)
			}
		}
		if got, ok := reg.At(p.Location); !ok || got != p {
			t.Errorf("At(%v) = (%v, %v), want %s", p.Location, got, ok, p)
		}
	}
}

func TestPlaceDeterministic(t *testing.T) {
	grid := newTestGrid(t, 8, 48)
	tables := loadTables(t)
	opts := PlaceOptions{Seed: 8, Count: 10, MinDistance: 5, Spawn: world.C(24, 24)}

	a, err := Place(context.Background(), grid, tables, opts)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	b, err := Place(context.Background(), grid, tables, opts)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if a.Len() != b.Len() {
		t.Fatalf("Len() = %d vs %d", a.Len(), b.Len())
	}
	for i, p := range a.All() {
		q := b.All()[i]
		if p.ID != q.ID || p.Location != q.Location || p.Scene.Descriptor != q.Scene.Descriptor || p.Scene.Spawn != q.Scene.Spawn {
			t.Errorf("POI %d = %s, want %s", i, q, p)
		}
	}
}

func TestPlaceFewerThanRequested(t *testing.T) {
	grid := newTestGrid(t, 3, 16)
	reg, err := Place(context.Background(), grid, loadTables(t), PlaceOptions{Seed: 3, Count: 50, MinDistance: 10, Spawn: world.C(-1, -1)})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if reg.Len() >= 50 {
		t.Errorf("Len() = %d, want fewer than requested", reg.Len())
	}
	for i, p := range reg.All() {
		for _, q := range reg.All()[i+1:] {
			if p.Location.DistSq(q.Location) < 100 {
				t.Errorf("POIs %s and %s closer than 10", p, q)
			}
		}
	}
}

func TestPlaceZeroAndNegative(t *testing.T) {
	grid := newTestGrid(t, 1, 16)
	tables := loadTables(t)

	reg, err := Place(context.Background(), grid, tables, PlaceOptions{Seed: 1, Count: 0})
	if err != nil || reg.Len() != 0 {
		t.Errorf("Place(count 0) = (%d POIs, %v), want (0, nil)", reg.Len(), err)
	}
	if _, err := Place(context.Background(), grid, tables, PlaceOptions{Seed: 1, Count: -1}); err == nil {
		t.Error("Place(count -1) error = nil, want error")
	}
}

func TestLookup(t *testing.T) {
	grid := newTestGrid(t, 5, 32)
	reg, err := Place(context.Background(), grid, loadTables(t), PlaceOptions{Seed: 5, Count: 3, MinDistance: 4, Spawn: world.C(-1, -1)})
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	for _, p := range reg.All() {
		got, err := reg.Lookup(p.Location)
		if err != nil || got != p {
			t.Errorf("Lookup(%v) = (%v, %v), want %s", p.Location, got, err, p)
		}
	}
	if _, err := reg.Lookup(world.C(-5, -5)); !errors.Is(err, ErrNotAPOI) {
		t.Errorf("Lookup(-5,-5) error = %v, want ErrNotAPOI", err)
	}
}

func TestIDsAreStable(t *testing.T) {
	c := world.C(10, 20)
	if poiID(1, c) != poiID(1, c) {
		t.Error("poiID() differs for identical input")
	}
	if poiID(1, c) == poiID(2, c) || poiID(1, c) == poiID(1, world.C(20, 10)) {
		t.Error("poiID() collides for different input")
	}
	if sceneSeed(1, c) != sceneSeed(1, c) {
		t.Error("sceneSeed() differs for identical input")
	}
}
