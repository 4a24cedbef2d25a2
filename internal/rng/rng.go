// Package rng provides the seedable random source used during forest construction.
package rng

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
// It is not safe for concurrent use; each forest owns its own instance.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// New creates a new RNG instance with the specified seed.
func New(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.seed = seed
	r.rand.Seed(seed)
}

// Seed returns the most recent seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Interval returns a uniformly distributed integer in [0, max].
// It returns 0 when max <= 0.
func (r *RNG) Interval(max int) int {
	if max <= 0 {
		return 0
	}
	return r.rand.Intn(max + 1)
}
