// Package searcher provides the per-query scratch state of a forest search.
//
// A Searcher owns the three structures threaded through every traversal step:
//   - Branches: the min-priority queue of deferred subtrees, shared by all trees
//   - Visited: a bitset marking points whose distance has been computed
//   - Candidates: every (index, distance) pair scored so far
//
// A Searcher is owned by exactly one search call at a time. Searchers are
// recycled through internal/pool.
package searcher
