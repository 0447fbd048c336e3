package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samdwyer/wayfarer/internal/world"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(defaultYAML) error = %v", err)
	}
	want := Default()
	if cfg.World != want.World || cfg.Noise != want.Noise || cfg.Terrain != want.Terrain ||
		cfg.Discovery != want.Discovery || cfg.POI != want.POI {
		t.Errorf("embedded default = %+v, want %+v", cfg, want)
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("world:\n  width: 20\n  seed: 42\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.World.Width != 20 {
		t.Errorf("World.Width = %d, want 20", cfg.World.Width)
	}
	if cfg.World.Height != Default().World.Height {
		t.Errorf("World.Height = %d, want default %d", cfg.World.Height, Default().World.Height)
	}
	if cfg.Discovery.Radius != Default().Discovery.Radius {
		t.Errorf("Discovery.Radius = %d, want default %d", cfg.Discovery.Radius, Default().Discovery.Radius)
	}
	if got := cfg.NoiseConfig().Seed; got != 42 {
		t.Errorf("NoiseConfig().Seed = %d, want 42", got)
	}
	if got := cfg.NoiseConfig().Rows; got != cfg.World.Height {
		t.Errorf("NoiseConfig().Rows = %d, want %d", got, cfg.World.Height)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.World.Width = 0
	cfg.Discovery.Radius = -1
	cfg.Discovery.Metric = "hexagonal"
	cfg.POI.Count = -3

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"world size", "discovery radius", "hexagonal", "poi count"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestValidateCapsRadii(t *testing.T) {
	cfg := Default()
	cfg.Discovery.Radius = 100000
	cfg.Discovery.ViewRadius = 100000

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for oversized radii")
	}
	for _, want := range []string{"discovery radius", "view radius"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}

	cfg.Discovery.Radius = maxWorldEdge
	cfg.Discovery.ViewRadius = maxWorldEdge
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() at the cap = %v, want nil", err)
	}
}

func TestSpawn(t *testing.T) {
	cfg := Default()
	if got, want := cfg.SpawnHint(), world.C(64, 64); got != want {
		t.Errorf("SpawnHint() = %v, want %v", got, want)
	}

	cfg.World.Spawn = &Point{X: 3, Y: 4}
	if got, want := cfg.SpawnHint(), world.C(3, 4); got != want {
		t.Errorf("SpawnHint() = %v, want %v", got, want)
	}

	cfg.World.Spawn = &Point{X: 500, Y: 4}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with spawn outside the world = nil, want error")
	}
}

func TestMetric(t *testing.T) {
	cfg := Default()
	if cfg.Metric() != world.MetricChebyshev {
		t.Errorf("Metric() = %v, want chebyshev", cfg.Metric())
	}
	cfg.Discovery.Metric = "euclidean"
	if cfg.Metric() != world.MetricEuclidean {
		t.Errorf("Metric() = %v, want euclidean", cfg.Metric())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "world:\n  width: 16\n  height: 12\npoi:\n  count: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.World.Width != 16 || cfg.World.Height != 12 {
		t.Errorf("World = %dx%d, want 16x12", cfg.World.Width, cfg.World.Height)
	}
	if cfg.POI.Count != 2 {
		t.Errorf("POI.Count = %d, want 2", cfg.POI.Count)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("world: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load(broken) error = nil, want error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("noise:\n  octaves: 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load(invalid) error = nil, want error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.World.Width != Default().World.Width {
		t.Errorf("World.Width = %d, want %d", cfg.World.Width, Default().World.Width)
	}
}
