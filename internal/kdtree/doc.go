// Package kdtree implements a single randomized kd-tree for approximate
// nearest-neighbor search.
//
// Nodes live in two per-tree arenas, one for internal nodes and one for
// fixed-capacity leaves, and reference each other through a tagged NodeRef.
// A tree never owns point coordinates: it stores indices into a row-major
// point array held by the caller.
//
// Construction picks each split dimension uniformly at random among the
// highest-variance dimensions of a sample, which is what makes the trees of a
// forest differ. Search is a best-bin-first descent that defers the far side
// of every split into a queue shared with the other trees of the forest.
package kdtree
