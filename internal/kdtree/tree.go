package kdtree

import (
	"github.com/hupe1980/kdforest/distance"
	"github.com/hupe1980/kdforest/internal/rng"
)

// Tree is an immutable randomized kd-tree over a caller-owned point array.
type Tree[T distance.Scalar] struct {
	id     uint32
	points []T
	dim    int
	size   int

	root      NodeRef
	internals []internalNode
	leaves    []leafNode
}

// Build constructs a tree over the points named by inds.
//
// points is row-major with stride dim. inds is partitioned in place and may
// be reused by the caller for the next tree. id tags the branches this tree
// pushes into a shared search queue.
func Build[T distance.Scalar](id int, points []T, inds []uint32, dim int, r *rng.RNG) *Tree[T] {
	n := len(inds)
	t := &Tree[T]{
		id:        uint32(id),
		points:    points,
		dim:       dim,
		size:      n,
		internals: make([]internalNode, 0, n/LeafMaxPoints+1),
		leaves:    make([]leafNode, 0, 2*n/LeafMaxPoints+1),
	}

	b := &builder[T]{
		tree:     t,
		splitter: newSplitter(points, dim, r),
	}
	t.root = b.build(inds)

	return t
}

type builder[T distance.Scalar] struct {
	tree     *Tree[T]
	splitter *splitter[T]
}

func (b *builder[T]) build(inds []uint32) NodeRef {
	t := b.tree
	n := len(inds)

	if n <= LeafMaxPoints {
		var leaf leafNode
		leaf.count = uint8(copy(leaf.indices[:], inds))
		t.leaves = append(t.leaves, leaf)
		return leafRef(len(t.leaves) - 1)
	}

	dim, split := b.splitter.choose(inds)

	l := partition(t.points, t.dim, inds, dim, split)
	if l == 0 || l == n {
		// Nothing separated (e.g. identical coordinates); halve to keep depth logarithmic.
		l = n / 2
	}

	ref := internalRef(len(t.internals))
	t.internals = append(t.internals, internalNode{split: split, dim: dim})

	left := b.build(inds[:l])
	right := b.build(inds[l:])

	// The arena may have grown during recursion; index again.
	node := &t.internals[ref.index()]
	node.left = left
	node.right = right

	return ref
}

// ID returns the tree's ordinal within its forest.
func (t *Tree[T]) ID() int { return int(t.id) }

// Root returns the root node reference.
func (t *Tree[T]) Root() NodeRef { return t.root }

// Len returns the number of indexed points.
func (t *Tree[T]) Len() int { return t.size }
