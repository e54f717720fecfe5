package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillDensity sets each cell to 1 when a uniform draw falls below density and
// to 0 otherwise.
func (r *RNG) FillDensity(buf []uint8, density float64) {
	for i := range buf {
		buf[i] = 0
		if r.Float64() < density {
			buf[i] = 1
		}
	}
}
