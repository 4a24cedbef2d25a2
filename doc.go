// Package kdforest provides an approximate nearest-neighbor index built from
// a forest of randomized kd-trees.
//
// Each tree splits on a dimension drawn at random from the few with the
// highest variance, so the trees partition the same points differently. A
// search descends every tree once, then keeps expanding whichever deferred
// branch, from any tree, has the smallest distance lower bound, until a
// budget of distinct distance evaluations is spent. Points reached through
// more than one tree are scored only once.
//
// # Quick Start
//
//	points := make([]float32, n*dim) // row-major, owned by the caller
//	forest, _ := kdforest.New(points, n, dim)
//
//	neighbors, _ := forest.Search(query, 10, 200)
//	for _, nb := range neighbors {
//	    fmt.Println(nb.Index, nb.Distance)
//	}
//
// # Accuracy
//
// The budget is the accuracy knob: a search stops once at least budget
// distinct points have been scored. A budget of N makes the search exact.
// More trees raise recall for a fixed budget.
//
// # Configuration
//
//	forest, _ := kdforest.New(points, n, dim, func(o *kdforest.Options[float32]) {
//	    o.NumTrees = 16
//	    o.Seed = 7
//	    o.Logger = kdforest.NewTextLogger(slog.LevelDebug)
//	})
//
// # Filtering
//
//	allow := roaring.BitmapOf(1, 2, 3)
//	forest.Search(query, 10, 200, func(o *kdforest.SearchOptions[float32]) {
//	    o.Filter = allow
//	})
//
// # Concurrency
//
// A Forest is read-only after New returns. Search may be called from many
// goroutines; SearchBatch fans a set of queries out over GOMAXPROCS workers.
package kdforest
