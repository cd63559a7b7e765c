package analytics

import (
	"math/rand/v2"
	"sync"
)

// Source yields bounded pseudo-random values for the non-deterministic
// parts of the forecast (confidence and health-score noise).
type Source interface {
	// Float returns a value in [min, max).
	Float(min, max float64) float64
}

type randSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource returns a PCG-backed Source safe for concurrent use.
func NewRandSource(seed uint64) Source {
	return &randSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randSource) Float(min, max float64) float64 {
	s.mu.Lock()
	f := s.rng.Float64()
	s.mu.Unlock()
	return min + f*(max-min)
}

// FixedSource always lands at the same relative position of the range.
// Fraction must be in [0, 1).
type FixedSource struct {
	Fraction float64
}

func (s FixedSource) Float(min, max float64) float64 {
	return min + s.Fraction*(max-min)
}
