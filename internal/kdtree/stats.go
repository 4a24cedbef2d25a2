package kdtree

// TreeStats describes the shape of a built tree.
type TreeStats struct {
	Points   int // Indexed points
	Internal int // Internal nodes
	Leaves   int // Leaf nodes
	Depth    int // Edges on the longest root-to-leaf path
}

// Stats walks the tree and reports its shape.
func (t *Tree[T]) Stats() TreeStats {
	st := TreeStats{
		Points:   t.size,
		Internal: len(t.internals),
		Leaves:   len(t.leaves),
	}

	type frame struct {
		ref   NodeRef
		depth int
	}
	stack := []frame{{ref: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.ref.IsLeaf() {
			st.Depth = max(st.Depth, f.depth)
			continue
		}
		node := &t.internals[f.ref.index()]
		stack = append(stack, frame{node.left, f.depth + 1}, frame{node.right, f.depth + 1})
	}

	return st
}
