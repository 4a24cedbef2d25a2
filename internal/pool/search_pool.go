// Package pool provides object pools for zero-allocation search operations.
// Uses sync.Pool so concurrent searches each get a private Searcher.
package pool

import (
	"sync"

	"github.com/hupe1980/kdforest/internal/searcher"
)

const (
	// DefaultMaxPoints is the default initial capacity for visited bitsets.
	DefaultMaxPoints = 1 << 16

	// maxRetainedPoints bounds the visited bitset size kept in the pool.
	maxRetainedPoints = DefaultMaxPoints * 16
)

// searcherPool is the global pool of Searcher objects.
var searcherPool = sync.Pool{
	New: func() interface{} {
		return searcher.New(DefaultMaxPoints)
	},
}

// Get retrieves a cleared Searcher able to track n points.
func Get(n int) *searcher.Searcher {
	s := searcherPool.Get().(*searcher.Searcher)
	s.Reset(n)
	return s
}

// Put returns a Searcher to the pool for reuse.
// Searchers whose visited set exceeds maxRetainedPoints are dropped.
func Put(s *searcher.Searcher) {
	if s == nil {
		return
	}
	if s.Visited.Len() > maxRetainedPoints {
		return
	}
	searcherPool.Put(s)
}
