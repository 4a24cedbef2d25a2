package kdforest

import (
	"context"
	"time"

	"github.com/hupe1980/kdforest/distance"
	"github.com/hupe1980/kdforest/internal/kdtree"
	"github.com/hupe1980/kdforest/internal/pool"
	"github.com/hupe1980/kdforest/internal/rng"
)

// Neighbor is a search result: a point index and its distance to the query.
type Neighbor struct {
	Index    uint32
	Distance float64
}

// TreeStats describes the shape of one tree in a forest.
type TreeStats struct {
	Internal int // Internal nodes
	Leaves   int // Leaf nodes
	Depth    int // Edges on the longest root-to-leaf path
}

// Forest is an approximate nearest-neighbor index made of randomized kd-trees
// searched jointly. It is immutable after construction and safe for
// concurrent searches.
type Forest[T distance.Scalar] struct {
	points []T
	n      int
	dim    int

	trees []*kdtree.Tree[T]
	rng   *rng.RNG

	opts Options[T]
}

// New builds a forest over n row-major points of dimension dim.
//
// points is referenced, not copied, and must not be modified while the
// forest is in use.
func New[T distance.Scalar](points []T, n, dim int, optFns ...func(o *Options[T])) (*Forest[T], error) {
	opts := applyOptions(optFns)
	start := time.Now()

	f, err := build(points, n, dim, opts)

	opts.MetricsCollector.RecordBuild(n, opts.NumTrees, time.Since(start), err)
	opts.Logger.LogBuild(context.Background(), n, dim, opts.NumTrees, time.Since(start), err)

	return f, err
}

func build[T distance.Scalar](points []T, n, dim int, opts Options[T]) (*Forest[T], error) {
	switch {
	case dim <= 0:
		return nil, &ErrInvalidDimension{Dimension: dim}
	case n <= 0:
		return nil, ErrEmptyDataset
	case n > kdtree.MaxPoints:
		return nil, ErrTooManyPoints
	case len(points) < n*dim:
		return nil, &ErrInsufficientData{Expected: n * dim, Actual: len(points)}
	case opts.NumTrees < 1:
		return nil, ErrInvalidNumTrees
	case opts.DistanceFunc == nil:
		return nil, ErrNilDistanceFunc
	}

	f := &Forest[T]{
		points: points[:n*dim],
		n:      n,
		dim:    dim,
		trees:  make([]*kdtree.Tree[T], 0, opts.NumTrees),
		rng:    rng.New(opts.Seed),
		opts:   opts,
	}

	// The permutation is shared: each tree partitions the order left by the previous one.
	inds := make([]uint32, n)
	for i := range inds {
		inds[i] = uint32(i)
	}

	for t := 0; t < opts.NumTrees; t++ {
		f.trees = append(f.trees, kdtree.Build(t, f.points, inds, dim, f.rng))
	}

	return f, nil
}

// Search returns up to k approximate nearest neighbors of query, closest first.
//
// budget is the minimum number of distinct distance evaluations performed
// before stopping; it is raised to k if smaller. Evaluation happens a whole
// leaf at a time, so slightly more points may be examined. The result holds
// min(k, N) neighbors unless a filter excludes points.
func (f *Forest[T]) Search(query []T, k, budget int, optFns ...func(o *SearchOptions[T])) ([]Neighbor, error) {
	start := time.Now()

	res, checks, err := f.search(query, k, budget, optFns)

	f.opts.MetricsCollector.RecordSearch(k, checks, time.Since(start), err)
	f.opts.Logger.LogSearch(context.Background(), k, checks, len(res), err)

	return res, err
}

// SearchByIndex searches with stored point i as the query. The point itself
// is part of the result, at distance zero.
func (f *Forest[T]) SearchByIndex(i, k, budget int, optFns ...func(o *SearchOptions[T])) ([]Neighbor, error) {
	if i < 0 || i >= f.n {
		return nil, &ErrIndexOutOfRange{Index: i, Len: f.n}
	}
	return f.Search(f.point(i), k, budget, optFns...)
}

func (f *Forest[T]) search(query []T, k, budget int, optFns []func(o *SearchOptions[T])) ([]Neighbor, int, error) {
	if len(query) != f.dim {
		return nil, 0, &ErrDimensionMismatch{Expected: f.dim, Actual: len(query)}
	}
	if k <= 0 {
		return nil, 0, ErrInvalidK
	}

	so := SearchOptions[T]{DistanceFunc: f.opts.DistanceFunc}
	for _, fn := range optFns {
		if fn != nil {
			fn(&so)
		}
	}
	if so.DistanceFunc == nil {
		return nil, 0, ErrNilDistanceFunc
	}

	budget = max(budget, k)

	s := pool.Get(f.n)
	defer pool.Put(s)

	q := kdtree.Query[T]{Point: query, Distance: so.DistanceFunc, Filter: so.Filter}

	// Every tree contributes its first leaf and seeds the shared queue.
	for _, t := range f.trees {
		t.Search(q, t.Root(), 0, s)
	}

	// Expand the globally most promising branch, whichever tree it belongs to.
	for len(s.Candidates) < budget {
		item, ok := s.Branches.PopItem()
		if !ok {
			break // every point has been examined
		}
		f.trees[item.Value.Tree].Search(q, kdtree.NodeRef(item.Value.Node), item.Distance, s)
	}

	top := s.SelectTopK(min(k, budget))

	res := make([]Neighbor, len(top))
	for i, c := range top {
		res[i] = Neighbor{Index: c.Index, Distance: c.Distance}
	}

	return res, len(s.Candidates), nil
}

func (f *Forest[T]) point(i int) []T {
	return f.points[i*f.dim : (i+1)*f.dim]
}

// Len returns the number of indexed points.
func (f *Forest[T]) Len() int { return f.n }

// Dimension returns the point dimensionality.
func (f *Forest[T]) Dimension() int { return f.dim }

// NumTrees returns the number of trees in the forest.
func (f *Forest[T]) NumTrees() int { return len(f.trees) }

// Stats returns the shape of every tree, in construction order.
func (f *Forest[T]) Stats() []TreeStats {
	stats := make([]TreeStats, len(f.trees))
	for i, t := range f.trees {
		st := t.Stats()
		stats[i] = TreeStats{Internal: st.Internal, Leaves: st.Leaves, Depth: st.Depth}
	}
	return stats
}
