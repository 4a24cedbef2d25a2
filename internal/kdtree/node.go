package kdtree

const (
	// LeafMaxPoints is the maximum number of indices stored in a leaf.
	LeafMaxPoints = 14

	// VarianceSampleSize is the number of points sampled to estimate per-dimension variance.
	VarianceSampleSize = 128

	// SplitCandidates is the number of highest-variance dimensions a split is drawn from.
	SplitCandidates = 5

	// MaxPoints is the largest point count a tree can index.
	MaxPoints = int(leafBit) - 1
)

// NodeRef addresses a node in a tree's arenas. The top bit tags leaves.
type NodeRef uint32

const leafBit NodeRef = 1 << 31

func leafRef(i int) NodeRef     { return NodeRef(i) | leafBit }
func internalRef(i int) NodeRef { return NodeRef(i) }

// IsLeaf reports whether the reference points at a leaf.
func (r NodeRef) IsLeaf() bool { return r&leafBit != 0 }

func (r NodeRef) index() uint32 { return uint32(r &^ leafBit) }

// internalNode splits its points on dim: left holds coord < split, right the rest,
// except where a degenerate partition forced a split at the middle.
type internalNode struct {
	split float64
	dim   uint32
	left  NodeRef
	right NodeRef
}

type leafNode struct {
	indices [LeafMaxPoints]uint32
	count   uint8
}

func (l *leafNode) points() []uint32 { return l.indices[:l.count] }
