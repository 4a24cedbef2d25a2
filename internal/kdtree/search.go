package kdtree

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kdforest/distance"
	"github.com/hupe1980/kdforest/internal/queue"
	"github.com/hupe1980/kdforest/internal/searcher"
)

// Query bundles the per-call inputs of a tree search.
type Query[T distance.Scalar] struct {
	Point    []T
	Distance distance.Func[T]

	// Filter, if non-nil, restricts scored candidates to its members.
	Filter *roaring.Bitmap
}

// Search descends from ref to a leaf, always following the side of the
// query, and pushes every skipped sibling onto s.Branches with the bound
// mindsq + diff². Unvisited leaf points are marked visited and, if they pass
// the filter, scored into s.Candidates.
func (t *Tree[T]) Search(q Query[T], ref NodeRef, mindsq float64, s *searcher.Searcher) {
	cur := ref
	for !cur.IsLeaf() {
		node := &t.internals[cur.index()]
		diff := float64(q.Point[node.dim]) - node.split

		var near, far NodeRef
		if diff < 0 {
			near, far = node.left, node.right
		} else {
			near, far = node.right, node.left
		}

		s.Branches.PushItem(queue.Item[searcher.Branch]{
			Value:    searcher.Branch{Tree: t.id, Node: uint32(far)},
			Distance: mindsq + diff*diff,
		})
		cur = near
	}

	leaf := &t.leaves[cur.index()]
	for _, idx := range leaf.points() {
		if s.MarkVisited(idx) {
			continue
		}
		if q.Filter != nil && !q.Filter.Contains(idx) {
			continue
		}
		off := int(idx) * t.dim
		s.Add(idx, q.Distance(q.Point, t.points[off:off+t.dim]))
	}
}
