package kdtree

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kdforest/distance"
	"github.com/hupe1980/kdforest/internal/rng"
	"github.com/hupe1980/kdforest/internal/searcher"
	"github.com/hupe1980/kdforest/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDescendsToOneLeaf(t *testing.T) {
	const n, dim = 1000, 4
	points := testutil.NewRNG(21).UniformPoints(n, dim)
	tree := Build(3, points, identity(n), dim, rng.New(42))

	query := points[17*dim : 18*dim]
	s := searcher.New(n)
	tree.Search(Query[float32]{Point: query, Distance: distance.SquaredL2[float32]}, tree.Root(), 0, s)

	require.NotEmpty(t, s.Candidates)
	assert.LessOrEqual(t, len(s.Candidates), LeafMaxPoints)

	// The query is a stored point, so its own leaf is the one reached.
	var found bool
	for _, c := range s.Candidates {
		assert.True(t, s.IsVisited(c.Index))
		assert.Equal(t, distance.SquaredL2(query, points[int(c.Index)*dim:int(c.Index+1)*dim]), c.Distance)
		if c.Index == 17 {
			found = true
			assert.Zero(t, c.Distance)
		}
	}
	assert.True(t, found)

	// One deferred sibling per internal node on the path.
	assert.Positive(t, s.Branches.Len())
	assert.LessOrEqual(t, s.Branches.Len(), tree.Stats().Depth)
	for _, item := range s.Branches.Items() {
		assert.Equal(t, uint32(3), item.Value.Tree)
		assert.GreaterOrEqual(t, item.Distance, 0.0)
	}
}

func TestSearchBoundsAccumulate(t *testing.T) {
	const n, dim = 500, 3
	points := testutil.NewRNG(4).UniformPoints(n, dim)
	tree := Build(0, points, identity(n), dim, rng.New(42))

	query := []float32{0.5, 0.5, 0.5}
	q := Query[float32]{Point: query, Distance: distance.SquaredL2[float32]}

	s := searcher.New(n)
	tree.Search(q, tree.Root(), 2.5, s)
	for _, item := range s.Branches.Items() {
		assert.GreaterOrEqual(t, item.Distance, 2.5, "bounds start from mindsq")
	}
}

func TestSearchSkipsVisited(t *testing.T) {
	const n, dim = LeafMaxPoints, 2
	points := testutil.NewRNG(8).UniformPoints(n, dim)
	tree := Build(0, points, identity(n), dim, rng.New(42))
	q := Query[float32]{Point: points[:dim], Distance: distance.SquaredL2[float32]}

	s := searcher.New(n)
	s.MarkVisited(0)
	s.MarkVisited(5)

	tree.Search(q, tree.Root(), 0, s)
	assert.Len(t, s.Candidates, n-2)

	// A second pass over the same leaf scores nothing new.
	tree.Search(q, tree.Root(), 0, s)
	assert.Len(t, s.Candidates, n-2)

	for i := range n {
		assert.True(t, s.IsVisited(uint32(i)), "index %d marked visited", i)
	}
}

func TestSearchFilter(t *testing.T) {
	const n, dim = LeafMaxPoints, 2
	points := testutil.NewRNG(8).UniformPoints(n, dim)
	tree := Build(0, points, identity(n), dim, rng.New(42))

	allow := roaring.BitmapOf(1, 3, 5)
	q := Query[float32]{Point: points[:dim], Distance: distance.SquaredL2[float32], Filter: allow}

	s := searcher.New(n)
	tree.Search(q, tree.Root(), 0, s)

	require.Len(t, s.Candidates, 3)
	for _, c := range s.Candidates {
		assert.True(t, allow.Contains(c.Index))
	}
}
