package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/config"
	"github.com/samdwyer/wayfarer/internal/gamedata"
	"github.com/samdwyer/wayfarer/internal/noise"
	"github.com/samdwyer/wayfarer/internal/poi"
	"github.com/samdwyer/wayfarer/internal/scene"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/terrain"
	"github.com/samdwyer/wayfarer/internal/world"
)

var (
	// ErrNoSpawn is returned when the generated world has no traversable tile.
	ErrNoSpawn = errors.New("no traversable spawn tile")
	// ErrBlocked rejects a move onto a non-traversable tile.
	ErrBlocked = errors.New("tile is not traversable")
	// ErrInvalidIntentForMode rejects an intent the current mode does not accept.
	ErrInvalidIntentForMode = errors.New("intent not valid in current mode")
)

// Game owns the world, its points of interest and the player.
// It is not safe for concurrent use; intents are applied one at a time.
type Game struct {
	cfg     config.Config
	grid    *world.Grid
	pois    *poi.Registry
	player  PlayerState
	message string

	logger *log.Logger
	tables *gamedata.SettlementTables
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for rejected intents and transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithTables replaces the embedded settlement tables.
func WithTables(t *gamedata.SettlementTables) Option {
	return func(g *Game) { g.tables = t }
}

// New generates the world described by cfg and places the player at spawn.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Game, error) {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.tables == nil {
		tables, err := gamedata.LoadSettlementTables()
		if err != nil {
			return nil, err
		}
		g.tables = tables
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	field, err := noise.New(cfg.NoiseConfig())
	if err != nil {
		return nil, err
	}
	grid, err := world.Generate(ctx, cfg.Bounds(), field, terrain.NewClassifier(cfg.Terrain))
	if err != nil {
		return nil, err
	}
	grid.SetMetric(cfg.Metric())
	g.grid = grid

	spawn, ok := grid.NearestTraversable(cfg.SpawnHint(), max(grid.Width(), grid.Height()))
	if !ok {
		return nil, ErrNoSpawn
	}

	g.pois, err = poi.Place(ctx, grid, g.tables, poi.PlaceOptions{
		Seed:        cfg.World.Seed,
		Count:       cfg.POI.Count,
		MinDistance: cfg.POI.MinDistance,
		Spawn:       spawn,
	})
	if err != nil {
		return nil, err
	}

	g.player = PlayerState{Position: spawn, Mode: ModeOverworld}
	grid.MarkDiscovered(spawn, cfg.Discovery.Radius)

	span.SetAttributes(
		attribute.Int64("world.seed", cfg.World.Seed),
		attribute.Int("world.width", grid.Width()),
		attribute.Int("world.height", grid.Height()),
		attribute.Int("player.spawn_x", spawn.X),
		attribute.Int("player.spawn_y", spawn.Y),
		attribute.Int("poi.count", g.pois.Len()),
	)
	g.logger.Info("world generated",
		"seed", cfg.World.Seed,
		"size", fmt.Sprintf("%dx%d", grid.Width(), grid.Height()),
		"spawn", fmt.Sprintf("%d,%d", spawn.X, spawn.Y),
		"pois", g.pois.Len(),
	)
	return g, nil
}

// Player returns a copy of the player state.
func (g *Game) Player() PlayerState {
	return g.player
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.player.Mode
}

// Grid returns the overworld.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// POIs returns the point-of-interest registry.
func (g *Game) POIs() *poi.Registry {
	return g.pois
}

// Config returns the configuration the world was generated from.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Handle applies one intent completely and reports whether any state changed.
// Intents that the current mode rejects leave the game untouched; the reason is
// logged at debug level and never returned.
func (g *Game) Handle(ctx context.Context, in Intent) bool {
	mode := g.player.Mode

	var changed bool
	var err error
	switch mode {
	case ModeOverworld:
		changed, err = g.handleOverworld(ctx, in)
	case ModeWorldMap:
		changed, err = g.handleWorldMap(in)
	case ModeInsidePOI:
		changed, err = g.handleInside(ctx, in)
	}

	if err != nil {
		g.logger.Debug("intent rejected", "intent", in, "mode", mode, "error", err)
	}
	return changed
}

func (g *Game) handleOverworld(ctx context.Context, in Intent) (bool, error) {
	switch {
	case in.IsMove():
		return g.moveOverworld(in)
	case in == IntentInteract:
		if _, err := g.Enter(ctx, g.player.Position); err != nil {
			return false, err
		}
		return true, nil
	case in == IntentToggleWorldMap:
		g.player.Mode = ModeWorldMap
		return true, nil
	default:
		return false, fmt.Errorf("%s in %s: %w", in, ModeOverworld, ErrInvalidIntentForMode)
	}
}

func (g *Game) handleWorldMap(in Intent) (bool, error) {
	if in != IntentToggleWorldMap {
		return false, fmt.Errorf("%s in %s: %w", in, ModeWorldMap, ErrInvalidIntentForMode)
	}
	g.player.Mode = ModeOverworld
	return true, nil
}

func (g *Game) handleInside(ctx context.Context, in Intent) (bool, error) {
	switch {
	case in.IsMove():
		return g.moveLocal(in)
	case in == IntentLeave:
		g.Exit(ctx)
		return true, nil
	default:
		return false, fmt.Errorf("%s in %s: %w", in, ModeInsidePOI, ErrInvalidIntentForMode)
	}
}

func (g *Game) moveOverworld(in Intent) (bool, error) {
	dx, dy, _ := in.Delta()
	target := g.player.Position.Add(dx, dy)

	tile, err := g.grid.TileAt(target)
	if err != nil {
		return false, err
	}
	if !tile.IsTraversable() {
		return false, fmt.Errorf("%s at (%d,%d): %w", tile.Type, target.X, target.Y, ErrBlocked)
	}

	g.player.Position = target
	g.grid.MarkDiscovered(target, g.cfg.Discovery.Radius)
	g.message = ""
	if p, ok := g.pois.At(target); ok {
		g.message = p.Scene.Descriptor.Prompt()
	}
	return true, nil
}

func (g *Game) moveLocal(in Intent) (bool, error) {
	dx, dy, _ := in.Delta()
	target := g.player.Local.Add(dx, dy)
	sc := g.player.Inside.Scene

	tile, err := sc.TileAt(target)
	if err != nil {
		return false, err
	}
	if !tile.IsWalkable() {
		return false, fmt.Errorf("%s at (%d,%d): %w", tile.ID(), target.X, target.Y, ErrBlocked)
	}

	g.player.Local = target
	return true, nil
}

// Enter moves the player into the point of interest at c, which must be the
// player's overworld position. It fails with poi.ErrNotAPOI when nothing is
// registered there and with ErrInvalidIntentForMode outside the overworld.
// The mode becomes ModeInsidePOI only on success.
func (g *Game) Enter(ctx context.Context, c world.Coord) (*scene.Scene, error) {
	if g.player.Mode != ModeOverworld {
		return nil, fmt.Errorf("enter in %s: %w", g.player.Mode, ErrInvalidIntentForMode)
	}
	if c != g.player.Position {
		return nil, fmt.Errorf("enter (%d,%d) away from the player: %w", c.X, c.Y, ErrInvalidIntentForMode)
	}
	p, err := g.pois.Lookup(c)
	if err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "poi.enter")
	defer span.End()
	span.SetAttributes(
		attribute.String("poi.id", p.ID.String()),
		attribute.String("poi.name", p.Name()),
		attribute.Int("poi.x", c.X),
		attribute.Int("poi.y", c.Y),
	)

	g.player.Mode = ModeInsidePOI
	g.player.Inside = p
	g.player.Local = p.Scene.Spawn
	g.message = p.Scene.Descriptor.Greeting()
	g.logger.Debug("entered poi", "name", p.Name(), "at", fmt.Sprintf("%d,%d", c.X, c.Y))
	return p.Scene, nil
}

// Exit returns from a point of interest to the overworld at its location and
// returns the resulting mode. Outside a POI it changes nothing.
func (g *Game) Exit(ctx context.Context) Mode {
	if g.player.Mode != ModeInsidePOI {
		return g.player.Mode
	}
	p := g.player.Inside

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "poi.exit")
	defer span.End()
	span.SetAttributes(
		attribute.String("poi.id", p.ID.String()),
		attribute.Int("scene.local_x", g.player.Local.X),
		attribute.Int("scene.local_y", g.player.Local.Y),
	)

	g.player.Mode = ModeOverworld
	g.player.Position = p.Location
	g.player.Inside = nil
	g.player.Local = world.Coord{}
	g.message = "You leave " + p.Name() + "."
	g.logger.Debug("left poi", "name", p.Name())
	return ModeOverworld
}
