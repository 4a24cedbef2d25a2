package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	r := New(42)

	seen := make(map[int]bool)
	for range 1000 {
		v := r.Interval(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	// Both endpoints are reachable.
	assert.Len(t, seen, 5)

	assert.Equal(t, 0, r.Interval(0))
	assert.Equal(t, 0, r.Interval(-3))
}

func TestReseed(t *testing.T) {
	r := New(4711)
	first := make([]int, 16)
	for i := range first {
		first[i] = r.Interval(100)
	}

	r.Reseed(4711)
	for i := range first {
		assert.Equal(t, first[i], r.Interval(100))
	}
	assert.Equal(t, int64(4711), r.Seed())
}

func TestDeterministicAcrossInstances(t *testing.T) {
	a, b := New(42), New(42)
	for range 64 {
		assert.Equal(t, a.Interval(9), b.Interval(9))
	}
}
