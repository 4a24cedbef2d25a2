package kdtree

import (
	"github.com/hupe1980/kdforest/distance"
	"github.com/hupe1980/kdforest/internal/queue"
	"github.com/hupe1980/kdforest/internal/rng"
	"gonum.org/v1/gonum/stat"
)

// splitter chooses split planes. Its buffers are reused across every node of a build.
type splitter[T distance.Scalar] struct {
	points []T
	dim    int
	rng    *rng.RNG

	column []float64
	means  []float64
	top    *queue.PriorityQueue[uint32]
}

func newSplitter[T distance.Scalar](points []T, dim int, r *rng.RNG) *splitter[T] {
	return &splitter[T]{
		points: points,
		dim:    dim,
		rng:    r,
		column: make([]float64, VarianceSampleSize),
		means:  make([]float64, dim),
		top:    queue.NewMin[uint32](SplitCandidates),
	}
}

// choose returns the split dimension and threshold for inds.
//
// Mean and unbiased variance are estimated per dimension over the first
// VarianceSampleSize indices. The dimension is drawn uniformly from the
// SplitCandidates largest variances; the threshold is that dimension's mean.
func (s *splitter[T]) choose(inds []uint32) (uint32, float64) {
	count := min(len(inds), VarianceSampleSize)
	nrand := min(SplitCandidates, s.dim)
	sample := inds[:count]
	col := s.column[:count]

	// A bounded min-heap keeps the nrand largest variances.
	s.top.Reset()
	for d := 0; d < s.dim; d++ {
		for i, idx := range sample {
			col[i] = float64(s.points[int(idx)*s.dim+d])
		}

		var variance float64
		if count > 1 {
			s.means[d], variance = stat.MeanVariance(col, nil)
		} else {
			s.means[d] = stat.Mean(col, nil)
		}

		s.top.PushItemBounded(queue.Item[uint32]{Value: uint32(d), Distance: variance}, nrand)
	}

	cands := s.top.Items()
	d := cands[s.rng.Interval(len(cands)-1)].Value

	return d, s.means[d]
}

// partition reorders inds in place so that points with coord[dim] < split
// come first, and returns their count. Not stable.
func partition[T distance.Scalar](points []T, stride int, inds []uint32, dim uint32, split float64) int {
	l, r := 0, len(inds)
	for l != r {
		if float64(points[int(inds[l])*stride+int(dim)]) < split {
			l++
		} else {
			r--
			inds[l], inds[r] = inds[r], inds[l]
		}
	}
	return l
}
