package searcher

// Branch references a deferred subtree of one tree in a forest.
// Node is the tree-local node reference.
type Branch struct {
	Tree uint32
	Node uint32
}

// Candidate is a scored point.
type Candidate struct {
	Index    uint32
	Distance float64
}
