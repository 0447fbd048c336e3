package noise

import "math"

// climateScale stretches the temperature noise so climate bands are broader than relief.
const climateScale = 2

// Sample is the per-coordinate noise used for classification. It is not persisted.
type Sample struct {
	Height      float64
	Ruggedness  float64
	Moisture    float64
	Temperature float64
}

// Field combines the noise sources used for the overworld.
type Field struct {
	cfg         Config
	height      Source
	ruggedness  Source
	moisture    Source
	temperature Source
}

// New builds a field from cfg.
func New(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ridged := NewRidged(cfg.Seed+1, cfg.Octaves, cfg.Persistence, cfg.Lacunarity, cfg.RidgeGain)
	return &Field{
		cfg: cfg,
		height: Blend{
			Sources: []Source{NewPerlin(cfg.Seed, cfg.Octaves, cfg.Persistence, cfg.Lacunarity), ridged},
			Weights: []float64{1 - cfg.RidgeWeight, cfg.RidgeWeight},
		},
		ruggedness:  ridged,
		moisture:    NewPerlin(cfg.Seed+2, cfg.Octaves, cfg.Persistence, cfg.Lacunarity),
		temperature: NewPerlin(cfg.Seed+3, cfg.Octaves, cfg.Persistence, cfg.Lacunarity),
	}, nil
}

// Sample evaluates the field at grid coordinate (x, y).
func (f *Field) Sample(x, y int) Sample {
	fx := float64(x) / f.cfg.Scale
	fy := float64(y) / f.cfg.Scale
	return Sample{
		Height:      f.height.Eval(fx, fy),
		Ruggedness:  f.ruggedness.Eval(fx, fy),
		Moisture:    f.moisture.Eval(fx, fy),
		Temperature: f.temperatureAt(fx, fy, y),
	}
}

func (f *Field) temperatureAt(fx, fy float64, row int) float64 {
	n := f.temperature.Eval(fx/climateScale, fy/climateScale)
	if f.cfg.Rows <= 0 {
		return n
	}
	w := f.cfg.LatitudeWeight
	return clampUnit(w*latitude(row, f.cfg.Rows) + (1-w)*n)
}

// latitude maps a row to 1 on the middle row and -1 on the top and bottom edges.
func latitude(row, rows int) float64 {
	if rows <= 0 {
		return 0
	}
	pos := (float64(row) + 0.5) / float64(rows)
	return clampUnit(1 - 2*math.Abs(2*pos-1))
}
