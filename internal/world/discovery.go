package world

import "fmt"

// Metric defines the shape of a discovery reveal.
type Metric int

const (
	// MetricChebyshev reveals a square, matching a square viewport.
	MetricChebyshev Metric = iota
	// MetricEuclidean reveals a disc.
	MetricEuclidean
)

// String returns the configuration name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricChebyshev:
		return "chebyshev"
	case MetricEuclidean:
		return "euclidean"
	default:
		return "unknown"
	}
}

// ParseMetric resolves a configuration name to a metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "chebyshev", "square":
		return MetricChebyshev, nil
	case "euclidean", "circle":
		return MetricEuclidean, nil
	default:
		return MetricChebyshev, fmt.Errorf("unknown discovery metric %q", s)
	}
}

// within reports whether p lies inside radius of c under the metric.
func (m Metric) within(c, p Coord, radius int) bool {
	if m == MetricEuclidean {
		return c.DistSq(p) <= radius*radius
	}
	return c.Chebyshev(p) <= radius
}

// SetMetric changes the shape used by MarkDiscovered.
func (g *Grid) SetMetric(m Metric) {
	g.metric = m
}

// Metric returns the shape used by MarkDiscovered.
func (g *Grid) Metric() Metric {
	return g.metric
}

// MarkDiscovered reveals every in-bounds tile within radius of c and returns
// how many tiles were newly discovered. Tiles never become undiscovered.
// Only the part of the reveal that overlaps the world is visited.
func (g *Grid) MarkDiscovered(c Coord, radius int) int {
	if radius < 0 {
		return 0
	}

	b := g.bounds
	x0, x1 := max(c.X-radius, b.X), min(c.X+radius, b.X+b.Width-1)
	y0, y1 := max(c.Y-radius, b.Y), min(c.Y+radius, b.Y+b.Height-1)

	revealed := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Coord{X: x, Y: y}
			if !g.metric.within(c, p, radius) {
				continue
			}
			i := g.index(p)
			if !g.discovered[i] {
				g.discovered[i] = true
				revealed++
			}
		}
	}
	g.seen += revealed
	return revealed
}

// IsDiscovered reports whether c has been revealed. Out-of-bounds coordinates are never discovered.
func (g *Grid) IsDiscovered(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.discovered[g.index(c)]
}

// DiscoveredCount returns the number of revealed tiles.
func (g *Grid) DiscoveredCount() int {
	return g.seen
}
