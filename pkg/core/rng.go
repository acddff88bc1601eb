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

// Reseed restarts the generator from seed, discarding its current stream.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// FillBernoulli sets each cell of buf to 1 with probability p and to 0
// otherwise. It returns the number of cells set to 1. p must already lie in
// [0, 1]; p == 0 and p == 1 never consume randomness.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) int {
	switch {
	case p <= 0:
		clear(buf)
		return 0
	case p >= 1:
		for i := range buf {
			buf[i] = 1
		}
		return len(buf)
	}
	set := 0
	for i := range buf {
		if r.Float64() < p {
			buf[i] = 1
			set++
			continue
		}
		buf[i] = 0
	}
	return set
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
