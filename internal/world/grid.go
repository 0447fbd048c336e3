package world

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfarer/internal/noise"
	"github.com/samdwyer/wayfarer/internal/telemetry"
	"github.com/samdwyer/wayfarer/internal/terrain"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the generated world.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidBounds is returned when asked to generate an empty world.
	ErrInvalidBounds = errors.New("invalid world bounds")
)

// Sampler produces the noise sample for a grid coordinate.
type Sampler interface {
	Sample(x, y int) noise.Sample
}

// Classifier maps a noise sample to a terrain type.
type Classifier interface {
	Classify(s noise.Sample) terrain.Type
}

// Grid is the dense overworld tile store. Terrain types are fixed at
// generation; only discovery flags change afterwards.
type Grid struct {
	bounds     Rect
	metric     Metric
	types      []terrain.Type
	discovered []bool
	seen       int
}

// Generate samples and classifies every coordinate in bounds. Rows are sampled
// concurrently; the grid is returned only once every row is complete.
func Generate(ctx context.Context, bounds Rect, field Sampler, classifier Classifier) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBounds, bounds.Width, bounds.Height)
	}

	startTime := time.Now()

	g := &Grid{
		bounds:     bounds,
		metric:     MetricChebyshev,
		types:      make([]terrain.Type, bounds.Area()),
		discovered: make([]bool, bounds.Area()),
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	workers := min(runtime.GOMAXPROCS(0), bounds.Height)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < bounds.Width; x++ {
					c := Coord{X: bounds.X + x, Y: bounds.Y + y}
					g.types[y*bounds.Width+x] = classifier.Classify(field.Sample(c.X, c.Y))
				}
			}
		}()
	}
	for y := 0; y < bounds.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	attrs := []attribute.KeyValue{
		attribute.Int("world.width", bounds.Width),
		attribute.Int("world.height", bounds.Height),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	}
	for t, n := range g.Counts() {
		attrs = append(attrs, attribute.Int("world.tiles."+t.ID(), n))
	}
	span.SetAttributes(attrs...)

	return g, nil
}

// Bounds returns the generated area.
func (g *Grid) Bounds() Rect {
	return g.bounds
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.bounds.Width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.bounds.Height
}

// Len returns the number of tiles in the grid.
func (g *Grid) Len() int {
	return len(g.types)
}

// InBounds reports whether c lies inside the generated area.
func (g *Grid) InBounds(c Coord) bool {
	return g.bounds.Contains(c)
}

func (g *Grid) index(c Coord) int {
	return (c.Y-g.bounds.Y)*g.bounds.Width + (c.X - g.bounds.X)
}

// TileAt returns the tile at c.
func (g *Grid) TileAt(c Coord) (Tile, error) {
	if !g.InBounds(c) {
		return Tile{}, fmt.Errorf("tile (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
	}
	i := g.index(c)
	return Tile{Type: g.types[i], Discovered: g.discovered[i]}, nil
}

// IsTraversable returns true if c is in bounds and its terrain can be walked on.
func (g *Grid) IsTraversable(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.types[g.index(c)].IsTraversable()
}

// Counts returns the number of tiles of each terrain type.
func (g *Grid) Counts() map[terrain.Type]int {
	counts := make(map[terrain.Type]int)
	for _, t := range g.types {
		counts[t]++
	}
	return counts
}

// NearestTraversable searches rings of growing Chebyshev radius around c for a
// traversable tile. Within a ring, cells are scanned row by row.
func (g *Grid) NearestTraversable(c Coord, maxRadius int) (Coord, bool) {
	for r := 0; r <= maxRadius; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				p := c.Add(dx, dy)
				if c.Chebyshev(p) != r {
					continue
				}
				if g.IsTraversable(p) {
					return p, true
				}
			}
		}
	}
	return Coord{}, false
}
