package searcher

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/kdforest/internal/queue"
)

const (
	// DefaultBranchCapacity is the initial capacity of the branch queue.
	DefaultBranchCapacity = 256

	// DefaultCandidateCapacity is the initial capacity of the candidate list.
	DefaultCandidateCapacity = 256
)

// Searcher is a reusable execution context for forest search operations.
//
// Searcher is NOT thread-safe. It is intended to be owned by a single goroutine
// during a search operation.
type Searcher struct {
	// Branches holds deferred subtrees ordered by their distance lower bound.
	Branches *queue.PriorityQueue[Branch]

	// Visited marks point indices whose distance was already computed.
	Visited *bitset.BitSet

	// Candidates collects every scored point in discovery order.
	Candidates []Candidate

	// top is scratch for SelectTopK.
	top *queue.PriorityQueue[uint32]
}

// New creates a Searcher sized for n points.
func New(n int) *Searcher {
	return &Searcher{
		Branches:   queue.NewMin[Branch](DefaultBranchCapacity),
		Visited:    bitset.New(uint(n)),
		Candidates: make([]Candidate, 0, DefaultCandidateCapacity),
		top:        queue.NewMax[uint32](0),
	}
}

// Reset clears all state and makes room for n points in the visited set.
func (s *Searcher) Reset(n int) {
	s.Branches.Reset()
	s.Candidates = s.Candidates[:0]
	s.top.Reset()
	if s.Visited.Len() < uint(n) {
		s.Visited = bitset.New(uint(n))
		return
	}
	s.Visited.ClearAll()
}

// MarkVisited marks index i as visited.
// Returns true if it was already visited.
func (s *Searcher) MarkVisited(i uint32) bool {
	if s.Visited.Test(uint(i)) {
		return true
	}
	s.Visited.Set(uint(i))
	return false
}

// IsVisited reports whether index i has been visited.
func (s *Searcher) IsVisited(i uint32) bool {
	return s.Visited.Test(uint(i))
}

// Add appends a scored point to the candidate list.
func (s *Searcher) Add(i uint32, dist float64) {
	s.Candidates = append(s.Candidates, Candidate{Index: i, Distance: dist})
}

// SelectTopK returns the k candidates with the smallest distances in
// ascending order. Ties have no defined order. The result is a fresh slice.
func (s *Searcher) SelectTopK(k int) []Candidate {
	return selectTopK(s.top, s.Candidates, k)
}

// SelectTopK is the standalone form of Searcher.SelectTopK.
func SelectTopK(cands []Candidate, k int) []Candidate {
	return selectTopK(queue.NewMax[uint32](min(k, len(cands))), cands, k)
}

func selectTopK(top *queue.PriorityQueue[uint32], cands []Candidate, k int) []Candidate {
	k = min(k, len(cands))
	if k <= 0 {
		return []Candidate{}
	}

	top.Reset()
	for _, c := range cands {
		top.PushItemBounded(queue.Item[uint32]{Value: c.Index, Distance: c.Distance}, k)
	}

	out := make([]Candidate, top.Len())
	for i := len(out) - 1; i >= 0; i-- {
		item, _ := top.PopItem()
		out[i] = Candidate{Index: item.Value, Distance: item.Distance}
	}
	return out
}
