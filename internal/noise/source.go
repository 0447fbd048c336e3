package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is a scalar noise function over continuous 2D space.
// Implementations return values in [-1, 1] and are safe for concurrent reads.
type Source interface {
	Eval(x, y float64) float64
}

// Perlin is classic coherent noise summed over several octaves (fBm).
type Perlin struct {
	p    *perlin.Perlin
	norm float64
}

// NewPerlin builds an fBm source. go-perlin divides each octave by alpha,
// so alpha is the inverse of persistence.
func NewPerlin(seed int64, octaves int, persistence, lacunarity float64) *Perlin {
	norm := 0.0
	amp := 1.0
	for i := 0; i < octaves; i++ {
		norm += amp
		amp *= persistence
	}
	return &Perlin{
		p:    perlin.NewPerlin(1/persistence, lacunarity, int32(octaves), seed),
		norm: norm,
	}
}

// Eval returns the normalised fBm value at (x, y).
func (s *Perlin) Eval(x, y float64) float64 {
	// A single go-perlin octave peaks around ±0.7; stretch it back to the unit range.
	return clampUnit(s.p.Noise2D(x, y) / s.norm * math.Sqrt2)
}

// Ridged is a ridged multifractal: octaves are folded with an absolute value and
// inverted so that zero crossings of the base noise become sharp ridgelines.
type Ridged struct {
	base        opensimplex.Noise
	octaves     int
	persistence float64
	lacunarity  float64
	gain        float64
}

// NewRidged builds a ridged multifractal source over OpenSimplex noise.
func NewRidged(seed int64, octaves int, persistence, lacunarity, gain float64) *Ridged {
	return &Ridged{
		base:        opensimplex.New(seed),
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
		gain:        gain,
	}
}

// Eval returns the ridged value at (x, y).
func (s *Ridged) Eval(x, y float64) float64 {
	total, maxAmp := 0.0, 0.0
	freq, amp, weight := 1.0, 1.0, 1.0

	for i := 0; i < s.octaves; i++ {
		signal := 1 - math.Abs(s.base.Eval2(x*freq, y*freq))
		signal *= signal
		signal *= weight

		weight = signal * s.gain
		if weight > 1 {
			weight = 1
		} else if weight < 0 {
			weight = 0
		}

		total += signal * amp
		maxAmp += amp
		amp *= s.persistence
		freq *= s.lacunarity
	}

	// total/maxAmp lies in [0, 1]
	return clampUnit(total/maxAmp*2 - 1)
}

// Blend is a weighted composition of sources.
type Blend struct {
	Sources []Source
	Weights []float64
}

// Eval returns the weighted sum of the sources, clamped to [-1, 1].
func (b Blend) Eval(x, y float64) float64 {
	total := 0.0
	for i, src := range b.Sources {
		total += src.Eval(x, y) * b.Weights[i]
	}
	return clampUnit(total)
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
