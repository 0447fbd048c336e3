package world

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/wayfarer/internal/noise"
	"github.com/samdwyer/wayfarer/internal/terrain"
)

// stripes is water on even columns and plains on odd ones.
type stripes struct{}

func (stripes) Sample(x, y int) noise.Sample {
	if x%2 == 0 {
		return noise.Sample{Height: -1}
	}
	return noise.Sample{}
}

func newTestGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	field, err := noise.New(noise.DefaultConfig(42))
	if err != nil {
		t.Fatalf("noise.New() error = %v", err)
	}
	g, err := Generate(context.Background(), Bounds(w, h), field, terrain.NewClassifier(terrain.DefaultThresholds()))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return g
}

func TestGenerateReproducibility(t *testing.T) {
	a := newTestGrid(t, 40, 30)
	b := newTestGrid(t, 40, 30)

	if a.Len() != 40*30 {
		t.Fatalf("Len() = %d, want %d", a.Len(), 40*30)
	}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			ta, _ := a.TileAt(C(x, y))
			tb, _ := b.TileAt(C(x, y))
			if ta.Type != tb.Type {
				t.Fatalf("TileAt(%d, %d) = %v vs %v, want identical", x, y, ta.Type, tb.Type)
			}
		}
	}
}

func TestGenerateMatchesClassifier(t *testing.T) {
	field, _ := noise.New(noise.DefaultConfig(9))
	classifier := terrain.NewClassifier(terrain.DefaultThresholds())
	g, err := Generate(context.Background(), Bounds(25, 25), field, classifier)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	total := 0
	for y := 0; y < 25; y++ {
		for x := 0; x < 25; x++ {
			tile, err := g.TileAt(C(x, y))
			if err != nil {
				t.Fatalf("TileAt(%d, %d) error = %v", x, y, err)
			}
			if want := classifier.Classify(field.Sample(x, y)); tile.Type != want {
				t.Errorf("TileAt(%d, %d).Type = %v, want %v", x, y, tile.Type, want)
			}
			if tile.Discovered {
				t.Errorf("TileAt(%d, %d).Discovered = true after generation", x, y)
			}
		}
	}
	for _, n := range g.Counts() {
		total += n
	}
	if total != g.Len() {
		t.Errorf("sum of Counts() = %d, want %d", total, g.Len())
	}
	if g.DiscoveredCount() != 0 {
		t.Errorf("DiscoveredCount() = %d, want 0", g.DiscoveredCount())
	}
}

func TestGenerateInvalidBounds(t *testing.T) {
	_, err := Generate(context.Background(), Bounds(0, 10), stripes{}, terrain.NewClassifier(terrain.DefaultThresholds()))
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("Generate(0x10) error = %v, want ErrInvalidBounds", err)
	}
}

func TestTileAtOutOfBounds(t *testing.T) {
	g := newTestGrid(t, 10, 10)

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(10, 0), C(0, 10), C(100, 100)} {
		if _, err := g.TileAt(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%v) error = %v, want ErrOutOfBounds", c, err)
		}
		if g.IsTraversable(c) {
			t.Errorf("IsTraversable(%v) = true outside the world", c)
		}
		if g.IsDiscovered(c) {
			t.Errorf("IsDiscovered(%v) = true outside the world", c)
		}
	}
}

func TestIsTraversable(t *testing.T) {
	g, err := Generate(context.Background(), Bounds(4, 2), stripes{}, terrain.NewClassifier(terrain.DefaultThresholds()))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for x := 0; x < 4; x++ {
		want := x%2 == 1
		if got := g.IsTraversable(C(x, 0)); got != want {
			t.Errorf("IsTraversable(%d, 0) = %v, want %v", x, got, want)
		}
	}
}

func TestNearestTraversable(t *testing.T) {
	g, _ := Generate(context.Background(), Bounds(6, 6), stripes{}, terrain.NewClassifier(terrain.DefaultThresholds()))

	if got, ok := g.NearestTraversable(C(3, 3), 5); !ok || got != C(3, 3) {
		t.Errorf("NearestTraversable(3,3) = (%v, %v), want ((3,3), true)", got, ok)
	}
	got, ok := g.NearestTraversable(C(2, 2), 5)
	if !ok || got.Chebyshev(C(2, 2)) != 1 || !g.IsTraversable(got) {
		t.Errorf("NearestTraversable(2,2) = (%v, %v), want a traversable neighbour", got, ok)
	}
	if _, ok := g.NearestTraversable(C(2, 2), 0); ok {
		t.Error("NearestTraversable(2,2, radius 0) = true on water, want false")
	}
}

func TestMarkDiscovered(t *testing.T) {
	g := newTestGrid(t, 20, 20)

	n := g.MarkDiscovered(C(10, 10), 2)
	if n != 25 {
		t.Errorf("MarkDiscovered() = %d, want 25", n)
	}
	if again := g.MarkDiscovered(C(10, 10), 2); again != 0 {
		t.Errorf("second MarkDiscovered() = %d, want 0", again)
	}
	if g.DiscoveredCount() != 25 {
		t.Errorf("DiscoveredCount() = %d, want 25", g.DiscoveredCount())
	}

	// Corner reveals are clipped to the world.
	if n := g.MarkDiscovered(C(0, 0), 1); n != 4 {
		t.Errorf("MarkDiscovered(corner) = %d, want 4", n)
	}
	if n := g.MarkDiscovered(C(5, 5), -1); n != 0 {
		t.Errorf("MarkDiscovered(radius -1) = %d, want 0", n)
	}
	if n := g.MarkDiscovered(C(5, 5), 0); n != 1 || !g.IsDiscovered(C(5, 5)) {
		t.Errorf("MarkDiscovered(radius 0) = %d, want 1", n)
	}
}

func TestMarkDiscoveredHugeRadius(t *testing.T) {
	for _, m := range []Metric{MetricChebyshev, MetricEuclidean} {
		g := newTestGrid(t, 10, 10)
		g.SetMetric(m)

		// The Euclidean reveal squares the radius, so stay clear of overflow.
		if n := g.MarkDiscovered(C(5, 5), 1<<20); n != g.Len() {
			t.Errorf("%v: MarkDiscovered(huge radius) = %d, want %d", m, n, g.Len())
		}
		if g.DiscoveredCount() != g.Len() {
			t.Errorf("%v: DiscoveredCount() = %d, want %d", m, g.DiscoveredCount(), g.Len())
		}
	}
}

func TestWindowHugeRadius(t *testing.T) {
	g := newTestGrid(t, 10, 8)

	w := g.Window(C(3, 3), 1<<20)
	if w.Area != (Rect{X: -7, Y: -7, Width: 21, Height: 21}) {
		t.Errorf("Window(huge radius).Area = %+v, want 21x21 at (-7,-7)", w.Area)
	}
	if len(w.Cells) != 21*21 {
		t.Errorf("len(Window().Cells) = %d, want %d", len(w.Cells), 21*21)
	}
}

func TestDiscoveryIsMonotonic(t *testing.T) {
	g := newTestGrid(t, 30, 30)
	path := []Coord{C(3, 3), C(4, 3), C(10, 20), C(29, 29), C(4, 3), C(15, 15)}

	var seen []Coord
	prev := 0
	for _, c := range path {
		g.MarkDiscovered(c, 3)
		seen = append(seen, c)
		if g.DiscoveredCount() < prev {
			t.Fatalf("DiscoveredCount() decreased from %d to %d", prev, g.DiscoveredCount())
		}
		prev = g.DiscoveredCount()
		for _, s := range seen {
			if !g.IsDiscovered(s) {
				t.Errorf("IsDiscovered(%v) = false after later reveals", s)
			}
		}
	}
}

func TestMetricShapes(t *testing.T) {
	tests := []struct {
		metric   Metric
		expected int
	}{
		{MetricChebyshev, 49},
		{MetricEuclidean, 29},
	}

	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			g := newTestGrid(t, 20, 20)
			g.SetMetric(tt.metric)
			if n := g.MarkDiscovered(C(10, 10), 3); n != tt.expected {
				t.Errorf("MarkDiscovered(radius 3) = %d, want %d", n, tt.expected)
			}
			corner := g.IsDiscovered(C(13, 13))
			if corner != (tt.metric == MetricChebyshev) {
				t.Errorf("IsDiscovered(13,13) = %v under %v", corner, tt.metric)
			}
		})
	}
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in      string
		want    Metric
		wantErr bool
	}{
		{"", MetricChebyshev, false},
		{"chebyshev", MetricChebyshev, false},
		{"square", MetricChebyshev, false},
		{"euclidean", MetricEuclidean, false},
		{"circle", MetricEuclidean, false},
		{"manhattan", MetricChebyshev, true},
	}

	for _, tt := range tests {
		got, err := ParseMetric(tt.in)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseMetric(%q) = (%v, %v), want (%v, err %v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestWindow(t *testing.T) {
	g := newTestGrid(t, 10, 10)
	g.MarkDiscovered(C(0, 0), 1)

	w := g.Window(C(0, 0), 2)
	if w.Area != (Rect{X: -2, Y: -2, Width: 5, Height: 5}) {
		t.Errorf("Window().Area = %+v, want 5x5 at (-2,-2)", w.Area)
	}
	if len(w.Cells) != 25 {
		t.Fatalf("len(Window().Cells) = %d, want 25", len(w.Cells))
	}
	if cell := w.At(C(-1, -1)); cell.InBounds {
		t.Error("Window().At(-1,-1).InBounds = true")
	}
	cell := w.At(C(1, 1))
	if !cell.InBounds || !cell.Tile.Discovered {
		t.Errorf("Window().At(1,1) = %+v, want in bounds and discovered", cell)
	}
	if cell := w.At(C(2, 2)); cell.Tile.Discovered {
		t.Error("Window().At(2,2).Discovered = true outside the reveal")
	}

	// Snapshots do not follow later changes.
	g.MarkDiscovered(C(2, 2), 0)
	if w.At(C(2, 2)).Tile.Discovered {
		t.Error("Window snapshot changed after MarkDiscovered")
	}

	ov := g.Overview()
	if ov.Area != g.Bounds() || len(ov.Cells) != g.Len() {
		t.Errorf("Overview() area %+v with %d cells, want %+v with %d", ov.Area, len(ov.Cells), g.Bounds(), g.Len())
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 5}

	if r.Center() != C(4, 5) {
		t.Errorf("Center() = %v, want (4,5)", r.Center())
	}
	if !r.Contains(C(2, 3)) || !r.Contains(C(5, 7)) || r.Contains(C(6, 3)) || r.Contains(C(2, 8)) {
		t.Error("Contains() edges wrong")
	}
	if !r.Intersects(Rect{X: 5, Y: 7, Width: 2, Height: 2}) {
		t.Error("Intersects() = false for overlapping corner")
	}
	if r.Intersects(Rect{X: 6, Y: 3, Width: 2, Height: 2}) {
		t.Error("Intersects() = true for adjacent rectangle")
	}
	if r.Area() != 20 || r.Empty() {
		t.Errorf("Area() = %d, Empty() = %v", r.Area(), r.Empty())
	}
}
