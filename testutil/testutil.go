package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/kdforest/distance"
)

// SearchResult represents a search result.
type SearchResult struct {
	Index    uint32
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// UniformPoints generates num row-major points with values in range [0, 1).
func (r *RNG) UniformPoints(num, dimensions int) []float32 {
	data := make([]float32, num*dimensions)
	r.FillUniform(data)
	return data
}

// UniformPoints64 is UniformPoints with float64 coordinates.
func (r *RNG) UniformPoints64(num, dimensions int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	for i := range data {
		data[i] = r.rand.Float64()
	}
	return data
}

// UniformBytes generates num row-major byte points with values in [0, 255].
func (r *RNG) UniformBytes(num, dimensions int) []uint8 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]uint8, num*dimensions)
	for i := range data {
		data[i] = uint8(r.rand.Intn(256))
	}
	return data
}

// GaussianPoints generates num row-major points from a standard normal distribution.
func (r *RNG) GaussianPoints(num, dimensions int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	for i := range data {
		data[i] = float32(r.rand.NormFloat64())
	}
	return data
}

// ClusteredPoints generates row-major points scattered around random centroids.
// Useful for testing index quality on non-uniform data.
func (r *RNG) ClusteredPoints(num, dim, clusters int, spread float32) []float32 {
	centroids := r.GaussianPoints(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dim)
	for i := range num {
		c := i % clusters
		for j := range dim {
			data[i*dim+j] = centroids[c*dim+j] + float32(r.rand.NormFloat64())*spread
		}
	}
	return data
}

// Row returns point i of a row-major array.
func Row[T distance.Scalar](points []T, dim, i int) []T {
	return points[i*dim : (i+1)*dim]
}

// ExactTopK computes the exact k nearest points to query by brute force.
// Results are sorted by distance, ties by index.
func ExactTopK[T distance.Scalar](query, points []T, dim, k int, dist distance.Func[T]) []SearchResult {
	n := len(points) / dim
	all := make([]SearchResult, n)
	for i := range n {
		all[i] = SearchResult{Index: uint32(i), Distance: dist(query, Row(points, dim, i))}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Distance != all[j].Distance {
			return all[i].Distance < all[j].Distance
		}
		return all[i].Index < all[j].Index
	})

	return all[:min(k, n)]
}

// ComputeRecall computes recall@k by comparing approximate results against ground truth.
func ComputeRecall(groundTruth, approximate []SearchResult) float64 {
	if len(groundTruth) == 0 || len(approximate) == 0 {
		if len(groundTruth) == 0 && len(approximate) == 0 {
			return 1.0
		}
		return 0.0
	}

	k := min(len(approximate), len(groundTruth))

	truthSet := make(map[uint32]struct{}, k)
	for i := range k {
		truthSet[groundTruth[i].Index] = struct{}{}
	}

	hits := 0
	for _, r := range approximate {
		if _, ok := truthSet[r.Index]; ok {
			hits++
		}
	}

	return float64(hits) / float64(k)
}
